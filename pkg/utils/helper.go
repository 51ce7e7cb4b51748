package utils

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// visit dates arrive from the date picker as ISO, but typed input is tolerated
var visitDateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"Jan 2, 2006",
	"2 January 2006",
}

// ParseVisitDate parses a calendar date string in any accepted layout.
func ParseVisitDate(value string) (time.Time, error) {
	for _, layout := range visitDateLayouts {
		if d, err := time.Parse(layout, value); err == nil {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparsable date %q", value)
}

// GenerateBookingReference creates a visitor-facing booking reference.
// Format: LXM-NNNNN
func GenerateBookingReference() string {
	rand.New(rand.NewSource(time.Now().UnixNano()))
	return fmt.Sprintf("LXM-%05d", rand.Intn(100000))
}

// GenerateReceiptID creates a unique payment receipt ID with timestamp.
// Format: BOOK-YYYYMMDD-HHMMSS-RANDOM
func GenerateReceiptID() string {
	rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now()

	datePart := now.Format("20060102")
	timePart := now.Format("150405")
	randomPart := fmt.Sprintf("%04d", rand.Intn(10000))

	return fmt.Sprintf("BOOK-%s-%s-%s", datePart, timePart, randomPart)
}
