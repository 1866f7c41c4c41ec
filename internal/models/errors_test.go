package models

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorConstants(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		expectedMsg string
	}{
		{name: "ErrPessoaNaoEncontrada", err: ErrPessoaNaoEncontrada, expectedMsg: "pessoa not found"},
		{name: "ErrUsuarioNaoEncontrado", err: ErrUsuarioNaoEncontrado, expectedMsg: "usuario not found"},
		{name: "ErrCredenciaisInvalidas", err: ErrCredenciaisInvalidas, expectedMsg: "invalid credentials"},
		{name: "ErrLoginBloqueado", err: ErrLoginBloqueado, expectedMsg: "too many failed login attempts"},
		{name: "ErrCNPJInvalido", err: ErrCNPJInvalido, expectedMsg: "CNPJ alfanumérico inválido. Verifique os dígitos verificadores."},
		{name: "ErrSenhasNaoCoincidem", err: ErrSenhasNaoCoincidem, expectedMsg: "As senhas não coincidem"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.expectedMsg {
				t.Errorf("%s error message = %q, want %q", tt.name, tt.err.Error(), tt.expectedMsg)
			}

			wrapped := fmt.Errorf("context: %w", tt.err)
			if !errors.Is(wrapped, tt.err) {
				t.Errorf("%s should match through wrapping using errors.Is", tt.name)
			}
		})
	}
}

func TestIsBusinessError(t *testing.T) {
	wrapped := fmt.Errorf("create pessoa juridica: %w", ErrCNPJInvalido)

	be, ok := IsBusinessError(wrapped)
	if !ok {
		t.Fatal("expected wrapped BusinessError to be detected")
	}
	if be.Message != ErrCNPJInvalido.Message {
		t.Errorf("Message = %q, want %q", be.Message, ErrCNPJInvalido.Message)
	}

	if _, ok := IsBusinessError(ErrPessoaNaoEncontrada); ok {
		t.Error("sentinel errors must not be reported as business errors")
	}
	if _, ok := IsBusinessError(nil); ok {
		t.Error("nil must not be reported as a business error")
	}
}

func TestErrorUniqueness(t *testing.T) {
	errorVars := []error{
		ErrPessoaNaoEncontrada,
		ErrUsuarioNaoEncontrado,
		ErrCredenciaisInvalidas,
		ErrLoginBloqueado,
		ErrTokenInvalido,
		ErrCepNaoEncontrado,
		ErrCNPJInvalido,
		ErrSenhasNaoCoincidem,
		ErrUsuarioJaCadastrado,
		ErrTipoUsuarioInvalido,
		ErrCodigoNaoCorresponde,
	}

	for i, err1 := range errorVars {
		for j, err2 := range errorVars {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("Error at index %d and %d are the same: %v", i, j, err1)
			}
		}
	}
}
