package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/prefeitura-rio/app-cadastro/internal/logging"
	"github.com/prefeitura-rio/app-cadastro/internal/models"
	"github.com/prefeitura-rio/app-cadastro/internal/observability"
	"github.com/prefeitura-rio/app-cadastro/internal/services"
	"github.com/prefeitura-rio/app-cadastro/internal/utils"
)

const (
	MsgPessoaFisicaCriada        = "Pessoa física criada com sucesso"
	MsgPessoaFisicaAtualizada    = "Pessoa física atualizada com sucesso"
	MsgPessoaFisicaNaoEncontrada = "Pessoa física não encontrada"
	msgErroListarFisicas         = "Erro ao listar pessoas físicas"
	msgErroBuscarFisica          = "Erro ao buscar pessoa física"
	msgErroCriarFisica           = "Erro ao criar pessoa física"
	msgErroAtualizarFisica       = "Erro ao atualizar pessoa física"
)

// PessoaFisicaHandlers handles individual registry requests
type PessoaFisicaHandlers struct {
	service *services.PessoaFisicaService
	logger  *logging.SafeLogger
}

// NewPessoaFisicaHandlers creates a new pessoa física handlers instance
func NewPessoaFisicaHandlers(service *services.PessoaFisicaService, logger *logging.SafeLogger) *PessoaFisicaHandlers {
	return &PessoaFisicaHandlers{
		service: service,
		logger:  logger,
	}
}

// ListPessoasFisicas godoc
// @Summary Listar pessoas físicas
// @Description Lista as pessoas físicas com endereço, telefones e endereços eletrônicos resolvidos, das mais recentes para as mais antigas
// @Tags pessoafisica
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.PessoaFisicaDTO "Pessoas físicas"
// @Failure 401 {object} ErrorResponse "Token ausente ou inválido"
// @Failure 500 {object} ErrorResponse "Erro interno do servidor"
// @Router /api/pessoafisica [get]
func (h *PessoaFisicaHandlers) ListPessoasFisicas(c *gin.Context) {
	startTime := time.Now()
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "ListPessoasFisicas")
	defer span.End()

	pessoas, err := h.service.GetAll(ctx)
	if err != nil {
		respondInternalError(c, span, h.logger, msgErroListarFisicas, err)
		return
	}

	utils.AddSpanAttribute(span, "results_count", len(pessoas))
	utils.AddTimingToSpan(span, startTime)
	c.JSON(http.StatusOK, pessoas)
}

// GetPessoaFisica godoc
// @Summary Buscar pessoa física
// @Description Retorna uma pessoa física pelo código
// @Tags pessoafisica
// @Produce json
// @Security BearerAuth
// @Param codigo path int true "Código da pessoa"
// @Success 200 {object} models.PessoaFisicaDTO "Pessoa física encontrada"
// @Failure 400 {object} ErrorResponse "Código inválido"
// @Failure 404 {object} ErrorResponse "Pessoa física não encontrada"
// @Failure 500 {object} ErrorResponse "Erro interno do servidor"
// @Router /api/pessoafisica/{codigo} [get]
func (h *PessoaFisicaHandlers) GetPessoaFisica(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "GetPessoaFisica")
	defer span.End()

	codigo, ok := parseCodigo(c, "codigo")
	if !ok {
		return
	}
	span.SetAttributes(attribute.Int("pessoa.codigo", codigo))

	pessoa, err := h.service.GetByID(ctx, codigo)
	if errors.Is(err, models.ErrPessoaNaoEncontrada) {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: MsgPessoaFisicaNaoEncontrada})
		return
	}
	if err != nil {
		respondInternalError(c, span, h.logger, msgErroBuscarFisica, err)
		return
	}

	c.JSON(http.StatusOK, pessoa)
}

// CreatePessoaFisica godoc
// @Summary Criar pessoa física
// @Description Cria a pessoa, seu registro de pessoa física, telefones e endereços eletrônicos em uma única transação. Bairro e logradouro são informados pelo nome e criados quando inexistentes.
// @Tags pessoafisica
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param data body models.PessoaFisicaInput true "Dados da pessoa física"
// @Success 201 {object} models.CreatedResponse "Pessoa física criada com sucesso"
// @Failure 400 {object} ValidationErrorResponse "Dados inválidos"
// @Failure 403 {object} ErrorResponse "Acesso negado"
// @Failure 500 {object} ErrorResponse "Erro interno do servidor"
// @Router /api/pessoafisica [post]
func (h *PessoaFisicaHandlers) CreatePessoaFisica(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "CreatePessoaFisica")
	defer span.End()

	in, ok := h.bindInput(c)
	if !ok {
		return
	}

	codigo, err := h.service.Create(ctx, *in)
	if err != nil {
		if respondBusinessError(c, err) {
			return
		}
		respondInternalError(c, span, h.logger, msgErroCriarFisica, err)
		return
	}

	span.SetAttributes(attribute.Int("pessoa.codigo", codigo))
	c.Header("Location", "/api/pessoafisica/"+strconv.Itoa(codigo))
	c.JSON(http.StatusCreated, models.CreatedResponse{Codigo: codigo, Message: MsgPessoaFisicaCriada})
}

// UpdatePessoaFisica godoc
// @Summary Atualizar pessoa física
// @Description Atualiza os dados da pessoa física e substitui seus telefones e endereços eletrônicos. O código do corpo deve ser igual ao da URL.
// @Tags pessoafisica
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param codigo path int true "Código da pessoa"
// @Param data body models.PessoaFisicaInput true "Dados da pessoa física"
// @Success 200 {object} MessageResponse "Pessoa física atualizada com sucesso"
// @Failure 400 {object} ValidationErrorResponse "Dados inválidos"
// @Failure 403 {object} ErrorResponse "Acesso negado"
// @Failure 404 {object} ErrorResponse "Pessoa física não encontrada"
// @Failure 500 {object} ErrorResponse "Erro interno do servidor"
// @Router /api/pessoafisica/{codigo} [put]
func (h *PessoaFisicaHandlers) UpdatePessoaFisica(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "UpdatePessoaFisica")
	defer span.End()

	codigo, ok := parseCodigo(c, "codigo")
	if !ok {
		return
	}
	span.SetAttributes(attribute.Int("pessoa.codigo", codigo))

	in, ok := h.bindInput(c)
	if !ok {
		return
	}
	if in.Codigo != codigo {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: models.ErrCodigoNaoCorresponde.Message})
		return
	}

	err := h.service.Update(ctx, *in)
	if errors.Is(err, models.ErrPessoaNaoEncontrada) {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: MsgPessoaFisicaNaoEncontrada})
		return
	}
	if err != nil {
		if respondBusinessError(c, err) {
			return
		}
		respondInternalError(c, span, h.logger, msgErroAtualizarFisica, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: MsgPessoaFisicaAtualizada})
}

// bindInput decodes, sanitizes and validates a pessoa física payload
func (h *PessoaFisicaHandlers) bindInput(c *gin.Context) (*models.PessoaFisicaInput, bool) {
	ctx, inputSpan := utils.TraceInputParsing(c.Request.Context(), "pessoa_fisica_input")
	defer inputSpan.End()

	var in models.PessoaFisicaInput
	if !bindJSON(c, inputSpan, &in) {
		return nil, false
	}
	utils.SanitizePessoaFisicaInput(&in)

	_, validationSpan := utils.TraceInputValidation(ctx, "pessoa_fisica", "payload")
	defer validationSpan.End()

	if result := utils.ValidatePessoaFisica(in); !result.IsValid {
		utils.AddSpanAttribute(validationSpan, "validation.errors", len(result.Errors))
		cpf := ""
		if in.Cpf != nil {
			cpf = observability.MaskCPF(*in.Cpf)
		}
		h.logger.Debug("pessoa fisica payload rejected",
			zap.String("cpf", cpf),
			zap.Int("errors", len(result.Errors)),
		)
		respondValidation(c, result)
		return nil, false
	}
	return &in, true
}
