package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/prefeitura-rio/app-cadastro/internal/models"
)

type authDeps struct {
	*serviceDeps
	hasher  *PasswordHasher
	tokens  *TokenService
	service *AuthService
}

// setupAuthTest wires the service with lockout enabled when withLimiter is set
func setupAuthTest(t *testing.T, withLimiter bool) *authDeps {
	deps := setupServiceTest(t)
	hasher := NewPasswordHasher(bcrypt.MinCost)
	tokens := newTestTokenService()

	limiter := NewLoginLimiter(nil, 0, 0, deps.logger)
	if withLimiter {
		limiter = NewLoginLimiter(deps.redis, 3, 15*time.Minute, deps.logger)
	}

	return &authDeps{
		serviceDeps: deps,
		hasher:      hasher,
		tokens:      tokens,
		service:     NewAuthService(deps.repos, tokens, hasher, limiter, deps.logger),
	}
}

func (d *authDeps) usuario(t *testing.T, codigo int, login, senha string, tipo int) *models.Usuario {
	t.Helper()
	hash, err := d.hasher.Hash(senha)
	require.NoError(t, err)
	cadastro := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	return &models.Usuario{Codigo: codigo, Usuario: login, Senha: hash, Tipo: intPtr(tipo), Cadastro: &cadastro}
}

func TestAuthService_Login_Success(t *testing.T) {
	deps := setupAuthTest(t, false)
	ctx := context.Background()

	u := deps.usuario(t, 3, "maria", "senha123", models.TipoUsuario)
	u.Pessoa = intPtr(42)

	deps.usuarios.EXPECT().GetByUsuario(gomock.Any(), "maria").Return(u, nil)
	deps.pessoas.EXPECT().GetByID(gomock.Any(), 42).Return(&models.Pessoa{Codigo: 42, Nome: strPtr("Maria Silva")}, nil)

	resp, err := deps.service.Login(ctx, models.LoginRequest{Usuario: "maria", Senha: "senha123"}, "10.0.0.1")
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, "Login realizado com sucesso", resp.Message)
	require.NotNil(t, resp.Token)
	require.NotNil(t, resp.Usuario)
	assert.Equal(t, 3, resp.Usuario.Codigo)
	assert.Equal(t, "Maria Silva", *resp.Usuario.NomePessoa)
	assert.Equal(t, "Usuário", *resp.Usuario.TipoDescricao)

	claims, err := deps.tokens.ValidateToken(*resp.Token)
	require.NoError(t, err)
	assert.Equal(t, 3, claims.UserID)
	assert.Equal(t, "maria", claims.Username)
	assert.Equal(t, models.TipoUsuario, claims.Role)
}

func TestAuthService_Login_SameResponseForUnknownUserAndWrongPassword(t *testing.T) {
	deps := setupAuthTest(t, false)
	ctx := context.Background()

	deps.usuarios.EXPECT().GetByUsuario(gomock.Any(), "ninguem").Return(nil, nil)
	unknown, err := deps.service.Login(ctx, models.LoginRequest{Usuario: "ninguem", Senha: "x"}, "10.0.0.1")
	require.NoError(t, err)

	u := deps.usuario(t, 3, "maria", "senha123", models.TipoUsuario)
	deps.usuarios.EXPECT().GetByUsuario(gomock.Any(), "maria").Return(u, nil)
	wrong, err := deps.service.Login(ctx, models.LoginRequest{Usuario: "maria", Senha: "errada"}, "10.0.0.1")
	require.NoError(t, err)

	assert.Equal(t, unknown, wrong)
	assert.False(t, wrong.Success)
	assert.Equal(t, "Usuário ou senha inválidos", wrong.Message)
	assert.Nil(t, wrong.Token)
	assert.Nil(t, wrong.Usuario)
}

func TestAuthService_Login_UpgradesLegacyHash(t *testing.T) {
	deps := setupAuthTest(t, false)

	u := &models.Usuario{Codigo: 1, Usuario: "admin", Senha: legacyHash("admin123"), Tipo: intPtr(models.TipoAdministrador)}
	deps.usuarios.EXPECT().GetByUsuario(gomock.Any(), "admin").Return(u, nil)
	deps.usuarios.EXPECT().AlterarSenha(gomock.Any(), 1, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int, hash string) (bool, error) {
			assert.True(t, strings.HasPrefix(hash, "$2"))
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("admin123")))
			return true, nil
		})

	resp, err := deps.service.Login(context.Background(), models.LoginRequest{Usuario: "admin", Senha: "admin123"}, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestAuthService_Login_UpgradeFailureDoesNotBlockLogin(t *testing.T) {
	deps := setupAuthTest(t, false)

	u := &models.Usuario{Codigo: 1, Usuario: "admin", Senha: legacyHash("admin123"), Tipo: intPtr(models.TipoAdministrador)}
	deps.usuarios.EXPECT().GetByUsuario(gomock.Any(), "admin").Return(u, nil)
	deps.usuarios.EXPECT().AlterarSenha(gomock.Any(), 1, gomock.Any()).Return(false, errors.New("db down"))

	resp, err := deps.service.Login(context.Background(), models.LoginRequest{Usuario: "admin", Senha: "admin123"}, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestAuthService_Login_Lockout(t *testing.T) {
	deps := setupAuthTest(t, true)
	ctx := context.Background()
	key := "login_attempts:maria:10.0.0.1"

	t.Run("failure is counted", func(t *testing.T) {
		deps.redismock.ExpectGet(key).RedisNil()
		deps.usuarios.EXPECT().GetByUsuario(gomock.Any(), "maria").Return(nil, nil)
		deps.redismock.ExpectIncr(key).SetVal(1)
		deps.redismock.ExpectExpire(key, 15*time.Minute).SetVal(true)

		resp, err := deps.service.Login(ctx, models.LoginRequest{Usuario: "maria", Senha: "x"}, "10.0.0.1")
		require.NoError(t, err)
		assert.False(t, resp.Success)
	})

	t.Run("blocked pair never reaches the repository", func(t *testing.T) {
		deps.redismock.ExpectGet(key).SetVal("3")
		deps.redismock.ExpectTTL(key).SetVal(10 * time.Minute)

		resp, err := deps.service.Login(ctx, models.LoginRequest{Usuario: "maria", Senha: "senha123"}, "10.0.0.1")
		assert.Nil(t, resp)
		assert.ErrorIs(t, err, models.ErrLoginBloqueado)
	})

	t.Run("success clears the counter", func(t *testing.T) {
		u := deps.usuario(t, 3, "maria", "senha123", models.TipoUsuario)
		deps.redismock.ExpectGet(key).SetVal("2")
		deps.usuarios.EXPECT().GetByUsuario(gomock.Any(), "maria").Return(u, nil)
		deps.redismock.ExpectDel(key).SetVal(1)

		resp, err := deps.service.Login(ctx, models.LoginRequest{Usuario: "maria", Senha: "senha123"}, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, resp.Success)
	})
}

func TestAuthService_Login_RepositoryError(t *testing.T) {
	deps := setupAuthTest(t, false)

	deps.usuarios.EXPECT().GetByUsuario(gomock.Any(), "maria").Return(nil, errors.New("connection reset"))

	resp, err := deps.service.Login(context.Background(), models.LoginRequest{Usuario: "maria", Senha: "x"}, "10.0.0.1")
	assert.Nil(t, resp)
	assert.Error(t, err)
}

func TestAuthService_Register_Validation(t *testing.T) {
	tests := []struct {
		name       string
		req        models.RegistrarUsuarioRequest
		callerRole int
		setup      func(d *authDeps)
		wantErr    error
	}{
		{
			name:    "passwords differ",
			req:     models.RegistrarUsuarioRequest{Usuario: "novo", Senha: "a", ConfirmarSenha: "b", Tipo: models.TipoUsuario},
			wantErr: models.ErrSenhasNaoCoincidem,
		},
		{
			name:    "password longer than bcrypt accepts",
			req:     models.RegistrarUsuarioRequest{Usuario: "novo", Senha: strings.Repeat("x", 73), ConfirmarSenha: strings.Repeat("x", 73), Tipo: models.TipoUsuario},
			wantErr: models.ErrSenhaMuitoLonga,
		},
		{
			name: "login taken",
			req:  models.RegistrarUsuarioRequest{Usuario: "maria", Senha: "a", ConfirmarSenha: "a", Tipo: models.TipoUsuario},
			setup: func(d *authDeps) {
				d.usuarios.EXPECT().GetByUsuario(gomock.Any(), "maria").Return(&models.Usuario{Codigo: 3, Usuario: "maria"}, nil)
			},
			wantErr: models.ErrUsuarioJaCadastrado,
		},
		{
			name: "unknown role",
			req:  models.RegistrarUsuarioRequest{Usuario: "novo", Senha: "a", ConfirmarSenha: "a", Tipo: 0},
			setup: func(d *authDeps) {
				d.usuarios.EXPECT().GetByUsuario(gomock.Any(), "novo").Return(nil, nil)
			},
			wantErr: models.ErrTipoUsuarioInvalido,
		},
		{
			name: "anonymous administrator",
			req:  models.RegistrarUsuarioRequest{Usuario: "novo", Senha: "a", ConfirmarSenha: "a", Tipo: models.TipoAdministrador},
			setup: func(d *authDeps) {
				d.usuarios.EXPECT().GetByUsuario(gomock.Any(), "novo").Return(nil, nil)
			},
			wantErr: models.ErrAcessoNegado,
		},
		{
			name:       "administrator created by a regular user",
			req:        models.RegistrarUsuarioRequest{Usuario: "novo", Senha: "a", ConfirmarSenha: "a", Tipo: models.TipoAdministrador},
			callerRole: models.TipoUsuario,
			setup: func(d *authDeps) {
				d.usuarios.EXPECT().GetByUsuario(gomock.Any(), "novo").Return(nil, nil)
			},
			wantErr: models.ErrAcessoNegado,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := setupAuthTest(t, false)
			if tt.setup != nil {
				tt.setup(deps)
			}

			resp, err := deps.service.Register(context.Background(), tt.req, tt.callerRole)
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	deps := setupAuthTest(t, false)

	deps.usuarios.EXPECT().GetByUsuario(gomock.Any(), "novo").Return(nil, nil)
	deps.usuarios.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.Usuario) (int, error) {
			assert.Equal(t, "novo", u.Usuario)
			assert.Equal(t, models.TipoConvidado, *u.Tipo)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Senha), []byte("segredo")))
			return 10, nil
		})

	req := models.RegistrarUsuarioRequest{Usuario: "novo", Senha: "segredo", ConfirmarSenha: "segredo", Tipo: models.TipoConvidado}
	resp, err := deps.service.Register(context.Background(), req, 0)
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, "Usuário registrado com sucesso", resp.Message)
	assert.Equal(t, 10, resp.Usuario.Codigo)
	assert.Equal(t, "Convidado", *resp.Usuario.TipoDescricao)

	claims, err := deps.tokens.ValidateToken(*resp.Token)
	require.NoError(t, err)
	assert.Equal(t, 10, claims.UserID)
	assert.Equal(t, models.TipoConvidado, claims.Role)
}

func TestAuthService_Register_AdministratorByAdministrator(t *testing.T) {
	deps := setupAuthTest(t, false)

	deps.usuarios.EXPECT().GetByUsuario(gomock.Any(), "chefe").Return(nil, nil)
	deps.usuarios.EXPECT().Create(gomock.Any(), gomock.Any()).Return(11, nil)
	deps.pessoas.EXPECT().GetByID(gomock.Any(), 5).Return(nil, nil)

	req := models.RegistrarUsuarioRequest{Usuario: "chefe", Senha: "s", ConfirmarSenha: "s", Tipo: models.TipoAdministrador, Pessoa: intPtr(5)}
	resp, err := deps.service.Register(context.Background(), req, models.TipoAdministrador)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Usuario.NomePessoa)
}

func TestAuthService_AlterarSenha(t *testing.T) {
	ctx := context.Background()

	t.Run("confirmation mismatch", func(t *testing.T) {
		deps := setupAuthTest(t, false)

		ok, err := deps.service.AlterarSenha(ctx, 3, models.AlterarSenhaRequest{SenhaAtual: "a", NovaSenha: "b", ConfirmarNovaSenha: "c"})
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("new password longer than bcrypt accepts", func(t *testing.T) {
		deps := setupAuthTest(t, false)
		longa := strings.Repeat("x", models.MaxSenhaBytes+1)

		ok, err := deps.service.AlterarSenha(ctx, 3, models.AlterarSenhaRequest{SenhaAtual: "a", NovaSenha: longa, ConfirmarNovaSenha: longa})
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("unknown user", func(t *testing.T) {
		deps := setupAuthTest(t, false)
		deps.usuarios.EXPECT().GetByID(gomock.Any(), 3).Return(nil, nil)

		ok, err := deps.service.AlterarSenha(ctx, 3, models.AlterarSenhaRequest{SenhaAtual: "a", NovaSenha: "b", ConfirmarNovaSenha: "b"})
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("wrong current password", func(t *testing.T) {
		deps := setupAuthTest(t, false)
		deps.usuarios.EXPECT().GetByID(gomock.Any(), 3).Return(deps.usuario(t, 3, "maria", "senha123", models.TipoUsuario), nil)

		ok, err := deps.service.AlterarSenha(ctx, 3, models.AlterarSenhaRequest{SenhaAtual: "errada", NovaSenha: "b", ConfirmarNovaSenha: "b"})
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("password replaced", func(t *testing.T) {
		deps := setupAuthTest(t, false)
		deps.usuarios.EXPECT().GetByID(gomock.Any(), 3).Return(deps.usuario(t, 3, "maria", "senha123", models.TipoUsuario), nil)
		deps.usuarios.EXPECT().AlterarSenha(gomock.Any(), 3, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int, hash string) (bool, error) {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("nova-senha")))
				return true, nil
			})

		ok, err := deps.service.AlterarSenha(ctx, 3, models.AlterarSenhaRequest{SenhaAtual: "senha123", NovaSenha: "nova-senha", ConfirmarNovaSenha: "nova-senha"})
		assert.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestAuthService_Me(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		deps := setupAuthTest(t, false)
		deps.usuarios.EXPECT().GetByID(gomock.Any(), 99).Return(nil, nil)

		_, err := deps.service.Me(ctx, 99)
		assert.ErrorIs(t, err, models.ErrUsuarioNaoEncontrado)
	})

	t.Run("found", func(t *testing.T) {
		deps := setupAuthTest(t, false)
		u := deps.usuario(t, 3, "maria", "senha123", models.TipoUsuario)
		deps.usuarios.EXPECT().GetByID(gomock.Any(), 3).Return(u, nil)

		dto, err := deps.service.Me(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, "maria", dto.Usuario)
		assert.Nil(t, dto.NomePessoa)
	})
}

func TestAuthService_ListUsers(t *testing.T) {
	deps := setupAuthTest(t, false)

	deps.usuarios.EXPECT().GetAll(gomock.Any()).Return([]models.Usuario{
		{Codigo: 2, Usuario: "joao", Tipo: intPtr(models.TipoConvidado)},
		{Codigo: 1, Usuario: "admin", Tipo: intPtr(models.TipoAdministrador)},
		{Codigo: 3, Usuario: "sem-tipo"},
	}, nil)

	users, err := deps.service.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "Convidado", *users[0].TipoDescricao)
	assert.Equal(t, "Administrador", *users[1].TipoDescricao)
	assert.Nil(t, users[2].TipoDescricao)
}
