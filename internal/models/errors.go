package models

import "errors"

// Error constants for registry operations
var (
	ErrPessoaNaoEncontrada   = errors.New("pessoa not found")
	ErrUsuarioNaoEncontrado  = errors.New("usuario not found")
	ErrCredenciaisInvalidas  = errors.New("invalid credentials")
	ErrLoginBloqueado        = errors.New("too many failed login attempts")
	ErrTokenInvalido         = errors.New("invalid token")
	ErrTokenExpirado         = errors.New("token has expired")
	ErrAcessoNegado          = errors.New("access denied")
	ErrCepNaoEncontrado      = errors.New("cep not found")
	ErrRegistroNaoEncontrado = errors.New("record not found")
)

// Client-facing business rule violations
var (
	ErrCNPJInvalido         = NewBusinessError("CNPJ alfanumérico inválido. Verifique os dígitos verificadores.")
	ErrSenhasNaoCoincidem   = NewBusinessError("As senhas não coincidem")
	ErrSenhaMuitoLonga      = NewBusinessError("A senha deve ter no máximo 72 bytes")
	ErrUsuarioJaCadastrado  = NewBusinessError("Este usuário já está cadastrado")
	ErrTipoUsuarioInvalido  = NewBusinessError("Tipo de usuário inválido")
	ErrCodigoNaoCorresponde = NewBusinessError("Código informado não corresponde ao código da URL")
)

// BusinessError is a validation failure whose message is safe to return to clients
type BusinessError struct {
	Message string
}

// NewBusinessError creates a BusinessError with the given client message
func NewBusinessError(message string) *BusinessError {
	return &BusinessError{Message: message}
}

func (e *BusinessError) Error() string {
	return e.Message
}

// IsBusinessError reports whether err wraps a BusinessError and returns it
func IsBusinessError(err error) (*BusinessError, bool) {
	var be *BusinessError
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}
