package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/prefeitura-rio/app-cadastro/internal/logging"
	"github.com/prefeitura-rio/app-cadastro/internal/models"
	"github.com/prefeitura-rio/app-cadastro/internal/services"
	"github.com/prefeitura-rio/app-cadastro/internal/utils"
)

const (
	MsgCepNaoEncontrado      = "CEP não encontrado"
	MsgRegistroNaoEncontrado = "Registro não encontrado"
	msgErroConsulta          = "Erro ao consultar tabela auxiliar"
)

// LookupHandlers serves the reference tables and the static type enumerations
type LookupHandlers struct {
	service *services.LookupService
	logger  *logging.SafeLogger
}

// NewLookupHandlers creates a new lookup handlers instance
func NewLookupHandlers(service *services.LookupService, logger *logging.SafeLogger) *LookupHandlers {
	return &LookupHandlers{
		service: service,
		logger:  logger,
	}
}

func listLookup[T any](c *gin.Context, logger *logging.SafeLogger, table string, list func(context.Context) ([]T, error)) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "List"+table)
	defer span.End()
	span.SetAttributes(attribute.String("lookup.table", table))

	items, err := list(ctx)
	if err != nil {
		respondInternalError(c, span, logger, msgErroConsulta, err)
		return
	}

	utils.AddSpanAttribute(span, "results_count", len(items))
	c.JSON(http.StatusOK, items)
}

func getLookup[T any](c *gin.Context, logger *logging.SafeLogger, table string, get func(context.Context) (*T, error)) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "Get"+table)
	defer span.End()
	span.SetAttributes(attribute.String("lookup.table", table))

	item, err := get(ctx)
	if errors.Is(err, models.ErrRegistroNaoEncontrado) {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: MsgRegistroNaoEncontrado})
		return
	}
	if err != nil {
		respondInternalError(c, span, logger, msgErroConsulta, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// ListEstados godoc
// @Summary Listar estados
// @Tags auxiliares
// @Produce json
// @Success 200 {array} models.Estado
// @Failure 500 {object} ErrorResponse "Erro interno do servidor"
// @Router /api/estado [get]
func (h *LookupHandlers) ListEstados(c *gin.Context) {
	listLookup(c, h.logger, "Estado", h.service.ListEstados)
}

// GetEstado godoc
// @Summary Buscar estado
// @Tags auxiliares
// @Produce json
// @Param codigo path int true "Código do estado"
// @Success 200 {object} models.Estado
// @Failure 400 {object} ErrorResponse "Código inválido"
// @Failure 404 {object} ErrorResponse "Registro não encontrado"
// @Router /api/estado/{codigo} [get]
func (h *LookupHandlers) GetEstado(c *gin.Context) {
	codigo, ok := parseCodigo(c, "codigo")
	if !ok {
		return
	}
	getLookup(c, h.logger, "Estado", func(ctx context.Context) (*models.Estado, error) {
		return h.service.GetEstado(ctx, codigo)
	})
}

// ListCidades godoc
// @Summary Listar cidades
// @Tags auxiliares
// @Produce json
// @Success 200 {array} models.Cidade
// @Failure 500 {object} ErrorResponse "Erro interno do servidor"
// @Router /api/cidade [get]
func (h *LookupHandlers) ListCidades(c *gin.Context) {
	listLookup(c, h.logger, "Cidade", h.service.ListCidades)
}

// ListCidadesPorEstado godoc
// @Summary Listar cidades por estado
// @Description A tabela de cidades não guarda o estado, portanto a lista completa é retornada
// @Tags auxiliares
// @Produce json
// @Param estadoId path int true "Código do estado"
// @Success 200 {array} models.Cidade
// @Failure 400 {object} ErrorResponse "Código inválido"
// @Router /api/cidade/estado/{estadoId} [get]
func (h *LookupHandlers) ListCidadesPorEstado(c *gin.Context) {
	estado, ok := parseCodigo(c, "estadoId")
	if !ok {
		return
	}
	listLookup(c, h.logger, "CidadePorEstado", func(ctx context.Context) ([]models.Cidade, error) {
		return h.service.ListCidadesPorEstado(ctx, estado)
	})
}

// GetCidade godoc
// @Summary Buscar cidade
// @Tags auxiliares
// @Produce json
// @Param codigo path int true "Código da cidade"
// @Success 200 {object} models.Cidade
// @Failure 400 {object} ErrorResponse "Código inválido"
// @Failure 404 {object} ErrorResponse "Registro não encontrado"
// @Router /api/cidade/{codigo} [get]
func (h *LookupHandlers) GetCidade(c *gin.Context) {
	codigo, ok := parseCodigo(c, "codigo")
	if !ok {
		return
	}
	getLookup(c, h.logger, "Cidade", func(ctx context.Context) (*models.Cidade, error) {
		return h.service.GetCidade(ctx, codigo)
	})
}

// GetCep godoc
// @Summary Consultar CEP
// @Description Consulta um CEP com ou sem pontuação. Resultados encontrados ficam em cache no Redis.
// @Tags auxiliares
// @Produce json
// @Param cep path string true "CEP" example(20040-020)
// @Success 200 {object} models.Cep
// @Failure 404 {object} ErrorResponse "CEP não encontrado"
// @Failure 500 {object} ErrorResponse "Erro interno do servidor"
// @Router /api/cep/{cep} [get]
func (h *LookupHandlers) GetCep(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "GetCep")
	defer span.End()

	cep, err := h.service.GetCep(ctx, c.Param("cep"))
	if errors.Is(err, models.ErrCepNaoEncontrado) {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: MsgCepNaoEncontrado})
		return
	}
	if err != nil {
		respondInternalError(c, span, h.logger, msgErroConsulta, err)
		return
	}

	c.JSON(http.StatusOK, cep)
}

// ListCBOs godoc
// @Summary Listar ocupações (CBO)
// @Tags auxiliares
// @Produce json
// @Success 200 {array} models.CBO
// @Failure 500 {object} ErrorResponse "Erro interno do servidor"
// @Router /api/cbo [get]
func (h *LookupHandlers) ListCBOs(c *gin.Context) {
	listLookup(c, h.logger, "CBO", h.service.ListCBOs)
}

// GetCBO godoc
// @Summary Buscar ocupação (CBO)
// @Tags auxiliares
// @Produce json
// @Param codigo path string true "Código CBO"
// @Success 200 {object} models.CBO
// @Failure 404 {object} ErrorResponse "Registro não encontrado"
// @Router /api/cbo/{codigo} [get]
func (h *LookupHandlers) GetCBO(c *gin.Context) {
	codigo := strings.TrimSpace(c.Param("codigo"))
	getLookup(c, h.logger, "CBO", func(ctx context.Context) (*models.CBO, error) {
		return h.service.GetCBO(ctx, codigo)
	})
}

// ListNacionalidades godoc
// @Summary Listar nacionalidades
// @Tags auxiliares
// @Produce json
// @Success 200 {array} models.Nacionalidade
// @Failure 500 {object} ErrorResponse "Erro interno do servidor"
// @Router /api/nacionalidade [get]
func (h *LookupHandlers) ListNacionalidades(c *gin.Context) {
	listLookup(c, h.logger, "Nacionalidade", h.service.ListNacionalidades)
}

// GetNacionalidade godoc
// @Summary Buscar nacionalidade
// @Tags auxiliares
// @Produce json
// @Param codigo path int true "Código da nacionalidade"
// @Success 200 {object} models.Nacionalidade
// @Failure 400 {object} ErrorResponse "Código inválido"
// @Failure 404 {object} ErrorResponse "Registro não encontrado"
// @Router /api/nacionalidade/{codigo} [get]
func (h *LookupHandlers) GetNacionalidade(c *gin.Context) {
	codigo, ok := parseCodigo(c, "codigo")
	if !ok {
		return
	}
	getLookup(c, h.logger, "Nacionalidade", func(ctx context.Context) (*models.Nacionalidade, error) {
		return h.service.GetNacionalidade(ctx, codigo)
	})
}

// ListAtividades godoc
// @Summary Listar atividades econômicas
// @Tags auxiliares
// @Produce json
// @Success 200 {array} models.AtividadeEconomica
// @Failure 500 {object} ErrorResponse "Erro interno do servidor"
// @Router /api/atividadeeconomica [get]
func (h *LookupHandlers) ListAtividades(c *gin.Context) {
	listLookup(c, h.logger, "AtividadeEconomica", h.service.ListAtividades)
}

// GetAtividade godoc
// @Summary Buscar atividade econômica
// @Tags auxiliares
// @Produce json
// @Param codigo path int true "Código da atividade"
// @Success 200 {object} models.AtividadeEconomica
// @Failure 400 {object} ErrorResponse "Código inválido"
// @Failure 404 {object} ErrorResponse "Registro não encontrado"
// @Router /api/atividadeeconomica/{codigo} [get]
func (h *LookupHandlers) GetAtividade(c *gin.Context) {
	codigo, ok := parseCodigo(c, "codigo")
	if !ok {
		return
	}
	getLookup(c, h.logger, "AtividadeEconomica", func(ctx context.Context) (*models.AtividadeEconomica, error) {
		return h.service.GetAtividade(ctx, codigo)
	})
}

// ListAtividadesPorSetor godoc
// @Summary Listar atividades econômicas por setor
// @Tags auxiliares
// @Produce json
// @Param setor path int true "Código do setor"
// @Success 200 {array} models.AtividadeEconomica
// @Failure 400 {object} ErrorResponse "Código inválido"
// @Router /api/atividadeeconomica/setor/{setor} [get]
func (h *LookupHandlers) ListAtividadesPorSetor(c *gin.Context) {
	setor, ok := parseCodigo(c, "setor")
	if !ok {
		return
	}
	listLookup(c, h.logger, "AtividadePorSetor", func(ctx context.Context) ([]models.AtividadeEconomica, error) {
		return h.service.ListAtividadesPorSetor(ctx, setor)
	})
}

// ListEstadosCivis godoc
// @Summary Listar estados civis
// @Tags auxiliares
// @Produce json
// @Success 200 {array} models.EstadoCivil
// @Failure 500 {object} ErrorResponse "Erro interno do servidor"
// @Router /api/estadocivil [get]
func (h *LookupHandlers) ListEstadosCivis(c *gin.Context) {
	listLookup(c, h.logger, "EstadoCivil", h.service.ListEstadosCivis)
}

// ListTiposTelefone godoc
// @Summary Listar tipos de telefone
// @Tags tipos
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.TipoInfo
// @Failure 401 {object} ErrorResponse "Token ausente ou inválido"
// @Router /api/tipotelefone [get]
func (h *LookupHandlers) ListTiposTelefone(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.TiposTelefone())
}

// ListTiposEnderecoEletronico godoc
// @Summary Listar tipos de endereço eletrônico
// @Tags tipos
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.TipoInfo
// @Failure 401 {object} ErrorResponse "Token ausente ou inválido"
// @Router /api/tipoenderecoeletronico [get]
func (h *LookupHandlers) ListTiposEnderecoEletronico(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.TiposEnderecoEletronico())
}
