package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	logger := Logger()
	require.NotNil(t, logger)

	// Should be safe to use
	logger.Info("test message")
}

func TestMaskCPF(t *testing.T) {
	tests := []struct {
		name     string
		cpf      string
		expected string
	}{
		{name: "digits only", cpf: "12345678901", expected: "123.***.789-**"},
		{name: "formatted", cpf: "035.613.507-12", expected: "035.***.507-**"},
		{name: "too short", cpf: "123456789", expected: "***.***.***-**"},
		{name: "too long", cpf: "123456789012", expected: "***.***.***-**"},
		{name: "empty", cpf: "", expected: "***.***.***-**"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MaskCPF(tt.cpf))
		})
	}
}

func TestMaskCNPJ(t *testing.T) {
	tests := []struct {
		name     string
		cnpj     string
		expected string
	}{
		{name: "numeric", cnpj: "11222333000181", expected: "11.***.***/0001-**"},
		{name: "alphanumeric formatted", cnpj: "12.abc.345/01de-35", expected: "12.***.***/01DE-**"},
		{name: "wrong length", cnpj: "1122233300018", expected: "**.***.***/****-**"},
		{name: "empty", cnpj: "", expected: "**.***.***/****-**"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MaskCNPJ(tt.cnpj))
		})
	}
}
