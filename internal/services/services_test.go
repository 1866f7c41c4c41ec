package services

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/mock/gomock"

	"github.com/prefeitura-rio/app-cadastro/internal/logging"
	"github.com/prefeitura-rio/app-cadastro/internal/redisclient"
	"github.com/prefeitura-rio/app-cadastro/internal/repository"
	"github.com/prefeitura-rio/app-cadastro/internal/repository/mock"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	tx        *repository.TxRunner
	redis     *redisclient.Client
	redismock redismock.ClientMock

	pessoas   *mock.MockPessoaRepository
	fisicas   *mock.MockPessoaFisicaRepository
	juridicas *mock.MockPessoaJuridicaRepository
	telefones *mock.MockTelefoneRepository
	enderecos *mock.MockEnderecoEletronicoRepository
	lookups   *mock.MockLookupRepository
	usuarios  *mock.MockUsuarioRepository

	repos  Repositories
	logger *logging.SafeLogger
}

func setupServiceTest(t *testing.T) *serviceDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)

	redisClient, redisMock := redismock.NewClientMock()

	deps := &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		tx:        repository.NewTxRunner(db),
		redis:     redisclient.NewClient(redisClient),
		redismock: redisMock,
		pessoas:   mock.NewMockPessoaRepository(ctrl),
		fisicas:   mock.NewMockPessoaFisicaRepository(ctrl),
		juridicas: mock.NewMockPessoaJuridicaRepository(ctrl),
		telefones: mock.NewMockTelefoneRepository(ctrl),
		enderecos: mock.NewMockEnderecoEletronicoRepository(ctrl),
		lookups:   mock.NewMockLookupRepository(ctrl),
		usuarios:  mock.NewMockUsuarioRepository(ctrl),
		logger:    logging.Logger,
	}
	deps.repos = Repositories{
		Pessoas:              deps.pessoas,
		Fisicas:              deps.fisicas,
		Juridicas:            deps.juridicas,
		Telefones:            deps.telefones,
		EnderecosEletronicos: deps.enderecos,
		Lookups:              deps.lookups,
		Usuarios:             deps.usuarios,
	}

	t.Cleanup(func() {
		assert := require.New(t)
		assert.NoError(sqlMock.ExpectationsWereMet())
		assert.NoError(redisMock.ExpectationsWereMet())
		db.Close()
	})
	return deps
}

func expectTx(t *testing.T, sqlMock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	sqlMock.ExpectBegin()
	if commit {
		sqlMock.ExpectCommit()
	} else {
		sqlMock.ExpectRollback()
	}
}

// recordSpans installs a span recorder as the global tracer provider for the test
func recordSpans(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))
	t.Cleanup(func() { otel.SetTracerProvider(previous) })
	return recorder
}

// spanTables lists the db.sql.table attribute of every ended span called name
func spanTables(recorder *tracetest.SpanRecorder, name string) []string {
	var tables []string
	for _, span := range recorder.Ended() {
		if span.Name() != name {
			continue
		}
		for _, attr := range span.Attributes() {
			if attr.Key == "db.sql.table" {
				tables = append(tables, attr.Value.AsString())
			}
		}
	}
	return tables
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func int64Ptr(i int64) *int64 { return &i }
