package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/prefeitura-rio/app-cadastro/internal/logging"
	"github.com/prefeitura-rio/app-cadastro/internal/redisclient"
	"github.com/prefeitura-rio/app-cadastro/internal/utils"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
	statusDegraded  = "degraded"
	statusDisabled  = "disabled"

	healthPingTimeout = 2 * time.Second
)

// HealthResponse reports the state of the API and each backing service
type HealthResponse struct {
	Status    string                 `json:"status"`
	Version   string                 `json:"version,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	Services  map[string]string      `json:"services"`
	Audit     map[string]interface{} `json:"audit,omitempty"`
}

// HealthHandlers checks the backing services of the API
type HealthHandlers struct {
	db      *sql.DB
	redis   *redisclient.Client
	mongo   *mongo.Database
	version string
	logger  *logging.SafeLogger
}

// NewHealthHandlers creates a new health handlers instance. redis and mongo may be nil.
func NewHealthHandlers(db *sql.DB, redis *redisclient.Client, mongoDB *mongo.Database, version string, logger *logging.SafeLogger) *HealthHandlers {
	return &HealthHandlers{
		db:      db,
		redis:   redis,
		mongo:   mongoDB,
		version: version,
		logger:  logger,
	}
}

// HealthCheck godoc
// @Summary Verificação de saúde
// @Description Verifica a saúde da API e de suas dependências (PostgreSQL, Redis e MongoDB). Falhas no Redis ou no MongoDB degradam o serviço sem torná-lo indisponível.
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "API operacional"
// @Failure 503 {object} HealthResponse "PostgreSQL indisponível"
// @Router /health [get]
func (h *HealthHandlers) HealthCheck(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "HealthCheck")
	defer span.End()

	span.SetAttributes(
		attribute.String("operation", "health_check"),
		attribute.String("service", "health"),
	)

	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()

	health := HealthResponse{
		Status:    statusHealthy,
		Version:   h.version,
		Timestamp: time.Now(),
		Services:  make(map[string]string, 3),
	}

	if h.db == nil || h.db.PingContext(ctx) != nil {
		health.Status = statusUnhealthy
		health.Services["postgres"] = statusUnhealthy
	} else {
		health.Services["postgres"] = statusHealthy
	}

	if h.redis == nil {
		health.Services["redis"] = statusDisabled
	} else if err := h.redis.Ping(ctx).Err(); err != nil {
		h.logger.Warn("redis health check failed", zap.Error(err))
		health.Services["redis"] = statusUnhealthy
		h.degrade(&health)
	} else {
		health.Services["redis"] = statusHealthy
	}

	if h.mongo == nil {
		health.Services["mongodb"] = statusDisabled
	} else if err := h.mongo.Client().Ping(ctx, nil); err != nil {
		h.logger.Warn("mongodb health check failed", zap.Error(err))
		health.Services["mongodb"] = statusUnhealthy
		h.degrade(&health)
	} else {
		health.Services["mongodb"] = statusHealthy
	}

	health.Audit = utils.GetAuditWorker().GetAuditWorkerStats()

	utils.AddSpanAttribute(span, "health.status", health.Status)

	if health.Status == statusUnhealthy {
		h.logger.Error("health check failed", zap.Any("services", health.Services))
		c.JSON(http.StatusServiceUnavailable, health)
		return
	}
	c.JSON(http.StatusOK, health)
}

func (h *HealthHandlers) degrade(health *HealthResponse) {
	if health.Status == statusHealthy {
		health.Status = statusDegraded
	}
}
