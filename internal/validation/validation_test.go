package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeWhatsapp(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already normalized", "+22501020304", "+22501020304"},
		{"leading 00", "00225 01 02 03 04", "+22501020304"},
		{"no plus", "22501020304", "+22501020304"},
		{"dashes and spaces", "+225-01-02 03 04", "+22501020304"},
		{"leading zero after prefix", "+0123456789", ""},
		{"too short", "+123456", ""},
		{"too long", "+1234567890123456", ""},
		{"letters", "call-me", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeWhatsapp(tt.input))
		})
	}
}

func TestNormalizeWhatsappCollision(t *testing.T) {
	// Differently formatted inputs must normalize to the same key.
	a := NormalizeWhatsapp("00225 01 02 03 04")
	b := NormalizeWhatsapp("+22501020304")
	assert.NotEmpty(t, a)
	assert.Equal(t, a, b)
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("user@example.com"))
	assert.True(t, ValidEmail("user.name+tag@sub.example.org"))
	assert.False(t, ValidEmail(""))
	assert.False(t, ValidEmail("no-at-sign"))
	assert.False(t, ValidEmail("user@nodot"))
	assert.False(t, ValidEmail(strings.Repeat("a", 115)+"@example.com"))
}

func TestValidPhone(t *testing.T) {
	assert.True(t, ValidPhone("01 02 03 04"))
	assert.True(t, ValidPhone("+225 01 02 03 04 05"))
	assert.False(t, ValidPhone("1234567"))
	assert.False(t, ValidPhone(strings.Repeat("9", 21)))
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "&lt;b&gt;salut&lt;/b&gt;", SanitizeString("<b>salut</b>", 0))
	assert.Equal(t, "abc", SanitizeString("  abc  ", 0))
	assert.Equal(t, "ab", SanitizeString("abcdef", 2))
	assert.Equal(t, "", SanitizeString("   ", 10))
}

func TestValidName(t *testing.T) {
	assert.True(t, ValidName("Al"))
	assert.False(t, ValidName("A"))
	assert.False(t, ValidName("   "))
}

func TestValidAmount(t *testing.T) {
	assert.True(t, ValidAmount(50_000))
	assert.True(t, ValidAmount(0.5))
	assert.False(t, ValidAmount(0))
	assert.False(t, ValidAmount(-5))
	assert.False(t, ValidAmount(1_000_001))
}
