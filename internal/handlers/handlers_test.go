package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/prefeitura-rio/app-cadastro/internal/logging"
	"github.com/prefeitura-rio/app-cadastro/internal/models"
	"github.com/prefeitura-rio/app-cadastro/internal/redisclient"
	"github.com/prefeitura-rio/app-cadastro/internal/repository"
	"github.com/prefeitura-rio/app-cadastro/internal/repository/mock"
	"github.com/prefeitura-rio/app-cadastro/internal/services"
)

const (
	testClientIP   = "192.0.2.1"
	testMaxLogins  = 3
	testLockout    = 15 * time.Minute
	testSigningKey = "handlers-test-signing-key-0123456789"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// handlerDeps wires the real services over mocked repositories and mounts
// them with RegisterRoutes, so every request runs through the access policies
type handlerDeps struct {
	sqlMock   sqlmock.Sqlmock
	redismock redismock.ClientMock

	pessoas   *mock.MockPessoaRepository
	fisicas   *mock.MockPessoaFisicaRepository
	juridicas *mock.MockPessoaJuridicaRepository
	telefones *mock.MockTelefoneRepository
	enderecos *mock.MockEnderecoEletronicoRepository
	lookups   *mock.MockLookupRepository
	usuarios  *mock.MockUsuarioRepository

	tokens *services.TokenService
	hasher *services.PasswordHasher
	router *gin.Engine
}

func setupHandlersTest(t *testing.T) *handlerDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	client, redisMock := redismock.NewClientMock()
	redisClient := redisclient.NewClient(client)

	deps := &handlerDeps{
		sqlMock:   sqlMock,
		redismock: redisMock,
		pessoas:   mock.NewMockPessoaRepository(ctrl),
		fisicas:   mock.NewMockPessoaFisicaRepository(ctrl),
		juridicas: mock.NewMockPessoaJuridicaRepository(ctrl),
		telefones: mock.NewMockTelefoneRepository(ctrl),
		enderecos: mock.NewMockEnderecoEletronicoRepository(ctrl),
		lookups:   mock.NewMockLookupRepository(ctrl),
		usuarios:  mock.NewMockUsuarioRepository(ctrl),
		tokens:    services.NewTokenService(testSigningKey, "test-issuer", "test-audience", time.Hour),
		hasher:    services.NewPasswordHasher(bcrypt.MinCost),
	}

	repos := services.Repositories{
		Pessoas:              deps.pessoas,
		Fisicas:              deps.fisicas,
		Juridicas:            deps.juridicas,
		Telefones:            deps.telefones,
		EnderecosEletronicos: deps.enderecos,
		Lookups:              deps.lookups,
		Usuarios:             deps.usuarios,
	}
	logger := logging.Logger
	tx := repository.NewTxRunner(db)

	limiter := services.NewLoginLimiter(redisClient, testMaxLogins, testLockout, logger)
	authService := services.NewAuthService(repos, deps.tokens, deps.hasher, limiter, logger)

	h := Handlers{
		Auth:           NewAuthHandlers(authService, logger),
		Pessoa:         NewPessoaHandlers(services.NewPessoaService(tx, repos, logger), logger),
		PessoaFisica:   NewPessoaFisicaHandlers(services.NewPessoaFisicaService(tx, repos, logger), logger),
		PessoaJuridica: NewPessoaJuridicaHandlers(services.NewPessoaJuridicaService(tx, repos, logger), logger),
		Lookup:         NewLookupHandlers(services.NewLookupService(deps.lookups, redisClient, time.Hour, logger), logger),
		Health:         NewHealthHandlers(db, redisClient, nil, "test", logger),
	}

	deps.router = gin.New()
	RegisterRoutes(deps.router, h, authService)

	t.Cleanup(func() {
		require.NoError(t, sqlMock.ExpectationsWereMet())
		require.NoError(t, redisMock.ExpectationsWereMet())
		db.Close()
	})
	return deps
}

// token signs a token for an account with the given role
func (d *handlerDeps) token(t *testing.T, userID int, username string, role int) string {
	t.Helper()
	token, err := d.tokens.GenerateToken(userID, username, role)
	require.NoError(t, err)
	return token
}

func (d *handlerDeps) adminToken(t *testing.T) string {
	return d.token(t, 1, "admin", models.TipoAdministrador)
}

func (d *handlerDeps) userToken(t *testing.T) string {
	return d.token(t, 2, "maria", models.TipoUsuario)
}

func (d *handlerDeps) guestToken(t *testing.T) string {
	return d.token(t, 3, "visitante", models.TipoConvidado)
}

func (d *handlerDeps) do(method, path, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	d.router.ServeHTTP(w, req)
	return w
}

func (d *handlerDeps) expectTx(commit bool) {
	d.sqlMock.ExpectBegin()
	if commit {
		d.sqlMock.ExpectCommit()
	} else {
		d.sqlMock.ExpectRollback()
	}
}

func decodeMap(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

func decodeInto(t *testing.T, w *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dst), w.Body.String())
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }
