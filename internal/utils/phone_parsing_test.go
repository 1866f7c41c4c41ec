package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatarTelefone(t *testing.T) {
	tests := []struct {
		name     string
		telefone int64
		expected string
	}{
		{name: "Local mobile (11 digits)", telefone: 47999999999, expected: "(47) 99999-9999"},
		{name: "Local landline (10 digits)", telefone: 1123456789, expected: "(11) 2345-6789"},
		{name: "International mobile (13 digits)", telefone: 5521987654321, expected: "+55 (21) 98765-4321"},
		{name: "International landline (12 digits)", telefone: 552133334444, expected: "+55 (21) 3333-4444"},
		{name: "Short number is returned raw", telefone: 190, expected: "190"},
		{name: "Nine digits is returned raw", telefone: 987654321, expected: "987654321"},
		{name: "Fourteen digits is returned raw", telefone: 12345678901234, expected: "12345678901234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatarTelefone(tt.telefone))
		})
	}
}

func TestParseTelefone(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int64
		ok       bool
	}{
		{name: "Formatted mobile", input: "(47) 99999-9999", expected: 47999999999, ok: true},
		{name: "Digits only", input: "1123456789", expected: 1123456789, ok: true},
		{name: "International with plus", input: "+55 21 98765-4321", expected: 5521987654321, ok: true},
		{name: "Blank", input: "   ", ok: false},
		{name: "Empty", input: "", ok: false},
		{name: "No digits", input: "sem telefone", ok: false},
		{name: "Overflow", input: "99999999999999999999999", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseTelefone(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestParseThenFormat(t *testing.T) {
	numero, ok := ParseTelefone("(47) 99999-9999")
	assert.True(t, ok)
	assert.Equal(t, "(47) 99999-9999", FormatarTelefone(numero))
}

func TestTelefoneE164(t *testing.T) {
	e164, ok := TelefoneE164(21987654321)
	assert.True(t, ok)
	assert.Equal(t, "+5521987654321", e164)

	e164, ok = TelefoneE164(5511999887766)
	assert.True(t, ok)
	assert.Equal(t, "+5511999887766", e164)

	_, ok = TelefoneE164(190)
	assert.False(t, ok)
}

func TestSomenteDigitos(t *testing.T) {
	assert.Equal(t, "12345", SomenteDigitos("1-2.3 4/5"))
	assert.Equal(t, "", SomenteDigitos("abc"))
}
