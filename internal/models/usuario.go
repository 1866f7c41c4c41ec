package models

import "time"

// User roles carried in the token role claim
const (
	TipoAdministrador = 1
	TipoUsuario       = 2
	TipoConvidado     = 3
)

// DescricaoTipoUsuario returns the display name of a role code
func DescricaoTipoUsuario(tipo int) string {
	switch tipo {
	case TipoAdministrador:
		return "Administrador"
	case TipoUsuario:
		return "Usuário"
	case TipoConvidado:
		return "Convidado"
	default:
		return tipoDesconhecido
	}
}

// TipoUsuarioValido reports whether tipo is one of the known roles
func TipoUsuarioValido(tipo int) bool {
	return tipo >= TipoAdministrador && tipo <= TipoConvidado
}

// Usuario is a row of tb_usuario. Senha holds the password hash and is never serialized.
type Usuario struct {
	Codigo   int        `json:"codigo"`
	Usuario  string     `json:"usuario"`
	Senha    string     `json:"-"`
	Tipo     *int       `json:"tipo"`
	Pessoa   *int       `json:"pessoa"`
	Cadastro *time.Time `json:"cadastro"`
}

// UsuarioDTO is the public summary of a user account
type UsuarioDTO struct {
	Codigo        int        `json:"codigo"`
	Usuario       string     `json:"usuario"`
	Tipo          *int       `json:"tipo"`
	TipoDescricao *string    `json:"tipoDescricao"`
	Pessoa        *int       `json:"pessoa"`
	NomePessoa    *string    `json:"nomePessoa"`
	Cadastro      *time.Time `json:"cadastro"`
}

// LoginRequest is the body of POST /api/auth/login
type LoginRequest struct {
	Usuario string `json:"usuario" binding:"required"`
	Senha   string `json:"senha" binding:"required"`
}

// LoginResponse is returned by login and registration
type LoginResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Token   *string     `json:"token,omitempty"`
	Usuario *UsuarioDTO `json:"usuario,omitempty"`
}

// MaxSenhaBytes is the longest password bcrypt accepts
const MaxSenhaBytes = 72

// RegistrarUsuarioRequest is the body of POST /api/auth/registrar
type RegistrarUsuarioRequest struct {
	Usuario        string `json:"usuario" binding:"required,max=50"`
	Senha          string `json:"senha" binding:"required"`
	ConfirmarSenha string `json:"confirmarSenha" binding:"required"`
	Tipo           int    `json:"tipo"`
	Pessoa         *int   `json:"pessoa"`
}

// AlterarSenhaRequest is the body of POST /api/auth/alterar-senha
type AlterarSenhaRequest struct {
	SenhaAtual         string `json:"senhaAtual" binding:"required"`
	NovaSenha          string `json:"novaSenha" binding:"required"`
	ConfirmarNovaSenha string `json:"confirmarNovaSenha" binding:"required"`
}

// ValidarTokenResponse is returned by GET /api/auth/validar-token
type ValidarTokenResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}
