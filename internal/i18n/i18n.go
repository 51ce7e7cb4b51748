// Package i18n holds the concierge message catalog. The table is fixed at build
// time; Resolve falls back to the default language per key, so a partially
// translated locale degrades to English instead of erroring.
package i18n

import (
	"strings"
)

// Default is the language every session starts in and the fallback for
// missing keys.
const Default = "English"

// Message keys.
const (
	KeyWelcome        = "welcome"
	KeyStart          = "start"
	KeyLangSelect     = "langSelect"
	KeyExperience     = "experience"
	KeyDate           = "date"
	KeyGuests         = "guests"
	KeyTotal          = "total"
	KeyConfirmPay     = "confirmPay"
	KeyCancel         = "cancel"
	KeySignIn         = "signin"
	KeySignInBtn      = "signinBtn"
	KeyPaying         = "paying"
	KeySuccess        = "success"
	KeyConfirmed      = "confirmed"
	KeyError          = "error"
	KeyCancelled      = "cancelled"
	KeyNoted          = "noted"
	KeyReopen         = "reopen"
	KeySoldOut        = "soldOut"
	KeyGuestName      = "guestName"
	KeyGuestGender    = "guestGender"
	KeyGuestAge       = "guestAge"
	KeyAgeWarning     = "ageWarning"
	KeyNotEnoughSpots = "notEnoughSpots"
	KeyInvalidNumber  = "invalidNumber"
	KeyMore           = "more"
)

type locale struct {
	name       string
	nativeName string
	iso        string
	genders    []string // male, female, other — in this order
	messages   map[string]string
}

// languageOrder fixes the order the picker offers languages in.
var languageOrder = []string{
	"English", "French", "Spanish", "Hindi", "German", "Italian", "Japanese",
}

// Languages returns the offered language names in picker order.
func Languages() []string {
	out := make([]string, len(languageOrder))
	copy(out, languageOrder)
	return out
}

// Genders returns the localized gender labels (male, female, other order).
func Genders(language string) []string {
	loc, ok := locales[language]
	if !ok {
		loc = locales[Default]
	}
	out := make([]string, len(loc.genders))
	copy(out, loc.genders)
	return out
}

// Resolve looks up a message template and substitutes {name} placeholders from
// params. Unknown languages and missing keys fall back to the default language;
// unresolved placeholders are left verbatim.
func Resolve(language, key string, params map[string]string) string {
	text, ok := lookup(language, key)
	if !ok {
		text, ok = lookup(Default, key)
	}
	if !ok {
		return key
	}

	for name, value := range params {
		text = strings.ReplaceAll(text, "{"+name+"}", value)
	}
	return text
}

func lookup(language, key string) (string, bool) {
	loc, ok := locales[language]
	if !ok {
		return "", false
	}
	text, ok := loc.messages[key]
	return text, ok
}

// Match fuzzy-resolves a language from free text: exact name first, then
// substring of the English or native name, then an exact ISO code. Returns
// the default language when nothing matches.
func Match(input string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(input))
	if lower == "" {
		return Default, false
	}

	for _, name := range languageOrder {
		if strings.ToLower(name) == lower {
			return name, true
		}
	}

	for _, name := range languageOrder {
		loc := locales[name]
		if strings.Contains(lower, strings.ToLower(loc.name)) ||
			strings.Contains(lower, strings.ToLower(loc.nativeName)) {
			return name, true
		}
	}

	for _, name := range languageOrder {
		if locales[name].iso == lower {
			return name, true
		}
	}

	return Default, false
}
