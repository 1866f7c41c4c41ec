package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/prefeitura-rio/app-cadastro/internal/logging"
	"github.com/prefeitura-rio/app-cadastro/internal/models"
	"github.com/prefeitura-rio/app-cadastro/internal/observability"
	"github.com/prefeitura-rio/app-cadastro/internal/redisclient"
	"github.com/prefeitura-rio/app-cadastro/internal/repository"
	"github.com/prefeitura-rio/app-cadastro/internal/utils"
)

// LookupService serves the read-only reference tables. Postal codes are
// cached in Redis.
type LookupService struct {
	lookups  repository.LookupRepository
	redis    *redisclient.Client
	cacheTTL time.Duration
	logger   *logging.SafeLogger
}

// NewLookupService creates a new LookupService instance. A nil Redis client disables the CEP cache.
func NewLookupService(lookups repository.LookupRepository, client *redisclient.Client, cacheTTL time.Duration, logger *logging.SafeLogger) *LookupService {
	return &LookupService{
		lookups:  lookups,
		redis:    client,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

func found[T any](item *T, err error, op string) (*T, error) {
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if item == nil {
		return nil, models.ErrRegistroNaoEncontrado
	}
	return item, nil
}

func (s *LookupService) ListEstados(ctx context.Context) ([]models.Estado, error) {
	return s.lookups.ListEstados(ctx)
}

func (s *LookupService) GetEstado(ctx context.Context, codigo int) (*models.Estado, error) {
	item, err := s.lookups.GetEstado(ctx, codigo)
	return found(item, err, "get estado")
}

func (s *LookupService) ListCidades(ctx context.Context) ([]models.Cidade, error) {
	return s.lookups.ListCidades(ctx)
}

// ListCidadesPorEstado returns every city: tb_cidade carries no state column
func (s *LookupService) ListCidadesPorEstado(ctx context.Context, estado int) ([]models.Cidade, error) {
	s.logger.Debug("listing cidades by estado returns the full list", zap.Int("estado", estado))
	return s.lookups.ListCidades(ctx)
}

func (s *LookupService) GetCidade(ctx context.Context, codigo int) (*models.Cidade, error) {
	item, err := s.lookups.GetCidade(ctx, codigo)
	return found(item, err, "get cidade")
}

func (s *LookupService) ListEstadosCivis(ctx context.Context) ([]models.EstadoCivil, error) {
	return s.lookups.ListEstadosCivis(ctx)
}

func (s *LookupService) ListNacionalidades(ctx context.Context) ([]models.Nacionalidade, error) {
	return s.lookups.ListNacionalidades(ctx)
}

func (s *LookupService) GetNacionalidade(ctx context.Context, codigo int) (*models.Nacionalidade, error) {
	item, err := s.lookups.GetNacionalidade(ctx, codigo)
	return found(item, err, "get nacionalidade")
}

func (s *LookupService) ListCBOs(ctx context.Context) ([]models.CBO, error) {
	return s.lookups.ListCBOs(ctx)
}

func (s *LookupService) GetCBO(ctx context.Context, codigo string) (*models.CBO, error) {
	item, err := s.lookups.GetCBO(ctx, codigo)
	return found(item, err, "get cbo")
}

func (s *LookupService) ListAtividades(ctx context.Context) ([]models.AtividadeEconomica, error) {
	return s.lookups.ListAtividades(ctx)
}

func (s *LookupService) GetAtividade(ctx context.Context, codigo int) (*models.AtividadeEconomica, error) {
	item, err := s.lookups.GetAtividade(ctx, codigo)
	return found(item, err, "get atividade")
}

func (s *LookupService) ListAtividadesPorSetor(ctx context.Context, setor int) ([]models.AtividadeEconomica, error) {
	return s.lookups.ListAtividadesPorSetor(ctx, setor)
}

func cepCacheKey(cep string) string {
	return "cep:" + cep
}

// GetCep strips punctuation from cep and returns models.ErrCepNaoEncontrado
// when no record matches. Found records are cached.
func (s *LookupService) GetCep(ctx context.Context, cep string) (*models.Cep, error) {
	cep = utils.NormalizarCEP(cep)
	cacheKey := cepCacheKey(cep)

	if s.redis != nil {
		cacheCtx, span := utils.TraceCacheGet(ctx, cacheKey)
		cached, err := s.redis.Get(cacheCtx, cacheKey).Result()
		span.End()

		if err == nil {
			var item models.Cep
			if jsonErr := json.Unmarshal([]byte(cached), &item); jsonErr == nil {
				observability.CacheHits.WithLabelValues("get_cep").Inc()
				s.logger.Debug("cep cache hit", zap.String("cep", cep))
				return &item, nil
			}
			s.logger.Warn("discarding unreadable cep cache entry", zap.String("cep", cep))
		} else if !errors.Is(err, redis.Nil) {
			s.logger.Warn("cep cache lookup failed", zap.Error(err), zap.String("cep", cep))
		}
		s.logger.Debug("cep cache miss", zap.String("cep", cep))
	}

	ctx, dbSpan := utils.TraceDatabaseFind(ctx, "tb_cep", "cep")
	defer dbSpan.End()

	item, err := s.lookups.GetCep(ctx, cep)
	if err != nil {
		utils.RecordErrorInSpan(dbSpan, err, map[string]interface{}{"cep": cep})
		return nil, fmt.Errorf("get cep: %w", err)
	}
	if item == nil {
		return nil, models.ErrCepNaoEncontrado
	}

	if s.redis != nil {
		payload, err := json.Marshal(item)
		if err == nil {
			setCtx, span := utils.TraceCacheSet(ctx, cacheKey, s.cacheTTL)
			err = s.redis.Set(setCtx, cacheKey, string(payload), s.cacheTTL).Err()
			span.End()
		}
		if err != nil {
			s.logger.Warn("failed to cache cep", zap.Error(err), zap.String("cep", cep))
		}
	}

	return item, nil
}

// TiposTelefone returns the static phone type enumeration
func (s *LookupService) TiposTelefone() []models.TipoInfo {
	return models.TiposTelefone()
}

// TiposEnderecoEletronico returns the static electronic address type enumeration
func (s *LookupService) TiposEnderecoEletronico() []models.TipoInfo {
	return models.TiposEnderecoEletronico()
}
