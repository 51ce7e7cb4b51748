package utils

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Razorpay  RazorpayConfig
	Firebase  FirebaseConfig
	Concierge ConciergeConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type RazorpayConfig struct {
	KeyID     string
	KeySecret string
	Currency  string
}

type FirebaseConfig struct {
	CredentialsFile string
}

// ConciergeConfig carries the dialog timings and capacity policy.
type ConciergeConfig struct {
	FinishNoticeDelay time.Duration // FINISHED -> "session ending" notice
	FinishCloseDelay  time.Duration // notice -> close and navigate
	CancelNoticeDelay time.Duration // decline/dismiss -> notice
	CancelCloseDelay  time.Duration // notice -> close
	ResetDelay        time.Duration // close -> state reset
	QuantityShortcuts int           // max tappable quantity options
	FallbackCapacity  int           // assumed capacity when the availability snapshot is missing
	SessionIdleTTL    time.Duration // idle sessions are swept after this
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("RAZORPAY_CURRENCY", "INR")
	viper.SetDefault("CHAT_FINISH_NOTICE_DELAY", "2s")
	viper.SetDefault("CHAT_FINISH_CLOSE_DELAY", "4s")
	viper.SetDefault("CHAT_CANCEL_NOTICE_DELAY", "1500ms")
	viper.SetDefault("CHAT_CANCEL_CLOSE_DELAY", "3s")
	viper.SetDefault("CHAT_RESET_DELAY", "500ms")
	viper.SetDefault("CHAT_QUANTITY_SHORTCUTS", 6)
	viper.SetDefault("CHAT_FALLBACK_CAPACITY", 100)
	viper.SetDefault("CHAT_SESSION_IDLE_TTL", "30m")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASS"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Razorpay: RazorpayConfig{
			KeyID:     viper.GetString("RAZORPAY_KEY_ID"),
			KeySecret: viper.GetString("RAZORPAY_KEY_SECRET"),
			Currency:  viper.GetString("RAZORPAY_CURRENCY"),
		},
		Firebase: FirebaseConfig{
			CredentialsFile: viper.GetString("FIREBASE_CREDENTIALS_FILE"),
		},
		Concierge: ConciergeConfig{
			FinishNoticeDelay: viper.GetDuration("CHAT_FINISH_NOTICE_DELAY"),
			FinishCloseDelay:  viper.GetDuration("CHAT_FINISH_CLOSE_DELAY"),
			CancelNoticeDelay: viper.GetDuration("CHAT_CANCEL_NOTICE_DELAY"),
			CancelCloseDelay:  viper.GetDuration("CHAT_CANCEL_CLOSE_DELAY"),
			ResetDelay:        viper.GetDuration("CHAT_RESET_DELAY"),
			QuantityShortcuts: viper.GetInt("CHAT_QUANTITY_SHORTCUTS"),
			FallbackCapacity:  viper.GetInt("CHAT_FALLBACK_CAPACITY"),
			SessionIdleTTL:    viper.GetDuration("CHAT_SESSION_IDLE_TTL"),
		},
	}

	return config, nil
}
