package catalog

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	// DefaultDurationMinutes is the documented fallback for an unparseable
	// duration cell, matching the shop's most common service length.
	DefaultDurationMinutes = 45
	// DefaultPriceMinor is the fallback for an unparseable price cell.
	DefaultPriceMinor = 0
)

var firstInteger = regexp.MustCompile(`\d+`)

// ParseDurationMinutes extracts the integer minute count from free-text
// duration cells such as "45 Menit", "60m" or "30". The second return value
// is true when the default was substituted.
func ParseDurationMinutes(raw string) (int, bool) {
	cleaned := strings.ToLower(strings.TrimSpace(raw))
	cleaned = strings.ReplaceAll(cleaned, "menit", "")
	cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "m")
	cleaned = strings.TrimSpace(cleaned)

	if n, err := strconv.Atoi(cleaned); err == nil && n > 0 {
		return n, false
	}
	if match := firstInteger.FindString(cleaned); match != "" {
		if n, err := strconv.Atoi(match); err == nil && n > 0 {
			return n, false
		}
	}
	return DefaultDurationMinutes, true
}

// ParsePriceMinor extracts an integer price from cells such as "70.000",
// "70,000" or "Rp 70000". The second return value is true when the default
// was substituted.
func ParsePriceMinor(raw string) (int64, bool) {
	cleaned := strings.ToLower(strings.TrimSpace(raw))
	cleaned = strings.TrimPrefix(cleaned, "rp")
	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)

	if n, err := strconv.ParseInt(cleaned, 10, 64); err == nil && n >= 0 {
		return n, false
	}
	return DefaultPriceMinor, true
}
