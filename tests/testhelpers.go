package tests

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/prefeitura-rio/app-cadastro/internal/config"
)

// TestContainers holds references to the containers backing an integration run
type TestContainers struct {
	PostgresContainer *postgres.PostgresContainer
	RedisContainer    *redis.RedisContainer
	MongoContainer    *mongodb.MongoDBContainer
	Cleanup           func()
}

// SetupTestContainers starts PostgreSQL, Redis and MongoDB, points
// config.AppConfig at them and runs the same initialization as the API:
// the schema is applied and config.Postgres, config.Redis and
// config.MongoDB are set.
func SetupTestContainers(t *testing.T) *TestContainers {
	t.Helper()
	if testing.Short() {
		t.Skip("integration test skipped in short mode")
	}
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("cadastro_test"),
		postgres.WithUsername("cadastro"),
		postgres.WithPassword("cadastro"),
		postgres.BasicWaitStrategies(),
	)
	require.NoError(t, err, "Failed to start PostgreSQL container")

	redisContainer, err := redis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err, "Failed to start Redis container")

	mongoContainer, err := mongodb.Run(ctx,
		"mongo:7.0",
		mongodb.WithUsername("root"),
		mongodb.WithPassword("password"),
	)
	require.NoError(t, err, "Failed to start MongoDB container")

	databaseURL, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err, "Failed to get PostgreSQL connection string")

	redisAddr, err := redisContainer.Endpoint(ctx, "")
	require.NoError(t, err, "Failed to get Redis endpoint")

	mongoURI, err := mongoContainer.ConnectionString(ctx)
	require.NoError(t, err, "Failed to get MongoDB connection string")

	config.AppConfig = &config.Config{
		Port:                8080,
		Environment:         "test",
		Version:             "test",
		DatabaseURL:         databaseURL,
		DBMaxOpenConns:      5,
		DBMaxIdleConns:      2,
		DBConnMaxLifetime:   time.Minute,
		MongoURI:            mongoURI,
		MongoDatabase:       "cadastro_test",
		AuditLogsCollection: "audit_logs",
		AuditLogsEnabled:    true,
		AuditWorkerCount:    2,
		AuditBufferSize:     100,
		RedisURI:            redisAddr,
		CEPCacheTTL:         time.Hour,
		LoginMaxAttempts:    3,
		LoginLockoutWindow:  time.Minute,
		JWTSecret:           "integration-test-signing-key-0123456789",
		JWTIssuer:           "app-cadastro-test",
		JWTAudience:         "app-cadastro-test",
		JWTExpirationHours:  1,
	}

	require.NoError(t, config.InitPostgres(ctx), "Failed to initialize PostgreSQL")
	config.InitRedis()
	config.InitMongoDB()
	require.NotNil(t, config.MongoDB, "Failed to initialize MongoDB")

	cleanup := func() {
		ctx := context.Background()

		if config.Postgres != nil {
			config.Postgres.Close()
			config.Postgres = nil
		}
		if config.MongoDB != nil {
			_ = config.MongoDB.Client().Disconnect(ctx)
			config.MongoDB = nil
		}
		config.Redis = nil

		for name, container := range map[string]testcontainers.Container{
			"postgres": pgContainer,
			"redis":    redisContainer,
			"mongodb":  mongoContainer,
		} {
			if err := testcontainers.TerminateContainer(container); err != nil {
				t.Logf("failed to terminate %s container: %v", name, err)
			}
		}
	}

	return &TestContainers{
		PostgresContainer: pgContainer,
		RedisContainer:    redisContainer,
		MongoContainer:    mongoContainer,
		Cleanup:           cleanup,
	}
}

// TruncateRegistry empties the person and user tables between tests and
// keeps the seeded lookup tables
func TruncateRegistry(t *testing.T) {
	t.Helper()
	tables := []string{
		"tb_pessoa_endereco_eletronico",
		"tb_pessoa_telefone",
		"tb_pessoa_fisica",
		"tb_pessoa_juridica",
		"tb_usuario",
		"tb_pessoa",
	}
	for _, table := range tables {
		_, err := config.Postgres.Exec(fmt.Sprintf("TRUNCATE %s RESTART IDENTITY CASCADE", table))
		require.NoError(t, err, "Failed to truncate %s", table)
	}
}
