package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prefeitura-rio/app-cadastro/internal/utils"
)

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name         string
		postgresErr  error
		redisErr     error
		wantCode     int
		wantStatus   string
		wantPostgres string
		wantRedis    string
	}{
		{
			name:         "all services up",
			wantCode:     http.StatusOK,
			wantStatus:   statusHealthy,
			wantPostgres: statusHealthy,
			wantRedis:    statusHealthy,
		},
		{
			name:         "redis down degrades",
			redisErr:     errors.New("connection refused"),
			wantCode:     http.StatusOK,
			wantStatus:   statusDegraded,
			wantPostgres: statusHealthy,
			wantRedis:    statusUnhealthy,
		},
		{
			name:         "postgres down is unavailable",
			postgresErr:  errors.New("connection refused"),
			wantCode:     http.StatusServiceUnavailable,
			wantStatus:   statusUnhealthy,
			wantPostgres: statusUnhealthy,
			wantRedis:    statusHealthy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := setupHandlersTest(t)
			deps.sqlMock.ExpectPing().WillReturnError(tt.postgresErr)
			if tt.redisErr != nil {
				deps.redismock.ExpectPing().SetErr(tt.redisErr)
			} else {
				deps.redismock.ExpectPing().SetVal("PONG")
			}

			w := deps.do(http.MethodGet, "/health", "", "")
			require.Equal(t, tt.wantCode, w.Code)

			var resp HealthResponse
			decodeInto(t, w, &resp)
			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.Equal(t, "test", resp.Version)
			assert.Equal(t, tt.wantPostgres, resp.Services["postgres"])
			assert.Equal(t, tt.wantRedis, resp.Services["redis"])
			assert.Equal(t, statusDisabled, resp.Services["mongodb"])
			assert.Equal(t, "not_initialized", resp.Audit["status"])
		})
	}
}

func TestHealthCheck_ReportsAuditWorker(t *testing.T) {
	deps := setupHandlersTest(t)
	deps.sqlMock.ExpectPing()
	deps.redismock.ExpectPing().SetVal("PONG")

	utils.InitAuditWorker(discardAuditWriter{}, 2, 16)
	t.Cleanup(utils.ShutdownAuditWorker)

	w := deps.do(http.MethodGet, "/health", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	decodeInto(t, w, &resp)
	assert.Equal(t, "running", resp.Audit["status"])
	assert.Equal(t, float64(2), resp.Audit["workers"])
	assert.Equal(t, float64(16), resp.Audit["buffer_capacity"])
}

type discardAuditWriter struct{}

func (discardAuditWriter) WriteAuditLogs(context.Context, []utils.AuditLog) error { return nil }
