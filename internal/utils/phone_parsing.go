package utils

import (
	"strconv"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// ParseTelefone keeps only the digits of a free-text phone number.
// ok is false for blank input, input without digits, or values that do not
// fit in an int64.
func ParseTelefone(telefone string) (numero int64, ok bool) {
	if strings.TrimSpace(telefone) == "" {
		return 0, false
	}

	digitos := SomenteDigitos(telefone)
	if digitos == "" {
		return 0, false
	}

	numero, err := strconv.ParseInt(digitos, 10, 64)
	if err != nil {
		return 0, false
	}
	return numero, true
}

// SomenteDigitos drops every non-digit character.
func SomenteDigitos(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// FormatarTelefone renders a stored phone number for display based on its
// digit count:
//
//	11 -> (XX) XXXXX-XXXX
//	10 -> (XX) XXXX-XXXX
//	13 -> +XX (XX) XXXXX-XXXX
//	12 -> +XX (XX) XXXX-XXXX
//
// Any other length is returned as raw digits.
func FormatarTelefone(telefone int64) string {
	tel := strconv.FormatInt(telefone, 10)

	switch len(tel) {
	case 11:
		return "(" + tel[0:2] + ") " + tel[2:7] + "-" + tel[7:11]
	case 10:
		return "(" + tel[0:2] + ") " + tel[2:6] + "-" + tel[6:10]
	case 13:
		return "+" + tel[0:2] + " (" + tel[2:4] + ") " + tel[4:9] + "-" + tel[9:13]
	case 12:
		return "+" + tel[0:2] + " (" + tel[2:4] + ") " + tel[4:8] + "-" + tel[8:12]
	default:
		return tel
	}
}

// TelefoneE164 returns the E.164 form of a stored phone number when
// libphonenumber recognizes it as valid. Numbers with 10 or 11 digits are
// treated as Brazilian numbers without country code.
func TelefoneE164(telefone int64) (string, bool) {
	tel := strconv.FormatInt(telefone, 10)

	var candidate string
	switch len(tel) {
	case 10, 11:
		candidate = "+55" + tel
	default:
		candidate = "+" + tel
	}

	num, err := phonenumbers.Parse(candidate, "BR")
	if err != nil {
		return "", false
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", false
	}

	return phonenumbers.Format(num, phonenumbers.E164), true
}
