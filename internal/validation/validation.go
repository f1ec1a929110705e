// Package validation holds the pure sanitize/normalize helpers used at the
// API boundary. Every function takes raw user input and returns either a
// normalized value or a zero value meaning "rejected"; nothing here touches
// the database.
package validation

import (
	"html"
	"regexp"
	"strings"
)

var (
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	nonDigit        = regexp.MustCompile(`\D`)
	whatsappStrip   = regexp.MustCompile(`[^\d+]`)
	whatsappPattern = regexp.MustCompile(`^\+?[1-9]\d{6,14}$`)
)

const (
	MaxEmailLength = 120
	MaxAmount      = 1_000_000
)

// SanitizeString trims, HTML-escapes and length-caps free text. Stored values
// are escaped again at display time; both layers must hold on their own.
func SanitizeString(value string, maxLength int) string {
	s := strings.TrimSpace(html.EscapeString(strings.TrimSpace(value)))
	if maxLength > 0 && len(s) > maxLength {
		s = s[:maxLength]
	}
	return s
}

// ValidName requires at least 2 characters after trimming.
func ValidName(name string) bool {
	return len(strings.TrimSpace(name)) >= 2
}

func ValidEmail(email string) bool {
	if email == "" {
		return false
	}
	return len(email) <= MaxEmailLength && emailPattern.MatchString(email)
}

// ValidPhone accepts any formatting as long as 8 to 20 digits remain after
// stripping.
func ValidPhone(phone string) bool {
	digits := nonDigit.ReplaceAllString(phone, "")
	return len(digits) >= 8 && len(digits) <= 20
}

// NormalizeWhatsapp reduces a WhatsApp number to its E.164 form: strip
// everything but digits and '+', turn a leading 00 into '+', then require
// '+' followed by 7-15 digits starting non-zero. Returns "" when the input
// cannot be normalized. The returned form is the uniqueness key, so two
// differently formatted inputs that normalize identically collide.
func NormalizeWhatsapp(value string) string {
	raw := whatsappStrip.ReplaceAllString(strings.TrimSpace(value), "")
	if strings.HasPrefix(raw, "00") {
		raw = "+" + raw[2:]
	}
	if !whatsappPattern.MatchString(raw) {
		return ""
	}
	if !strings.HasPrefix(raw, "+") {
		raw = "+" + raw
	}
	return raw
}

// ValidAmount bounds self-reported donation amounts.
func ValidAmount(amount float64) bool {
	return amount > 0 && amount <= MaxAmount
}
