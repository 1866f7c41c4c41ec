package handlers

import (
	"errors"
	"net/http"
	"strconv"

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
	MsgPessoaJuridicaCriada        = "Pessoa jurídica criada com sucesso"
	MsgPessoaJuridicaAtualizada    = "Pessoa jurídica atualizada com sucesso"
	MsgPessoaJuridicaNaoEncontrada = "Pessoa jurídica não encontrada"
	msgErroListarJuridicas         = "Erro ao listar pessoas jurídicas"
	msgErroBuscarJuridica          = "Erro ao buscar pessoa jurídica"
	msgErroCriarJuridica           = "Erro ao criar pessoa jurídica"
	msgErroAtualizarJuridica       = "Erro ao atualizar pessoa jurídica"
)

// PessoaJuridicaHandlers handles organization registry requests
type PessoaJuridicaHandlers struct {
	service *services.PessoaJuridicaService
	logger  *logging.SafeLogger
}

// NewPessoaJuridicaHandlers creates a new pessoa jurídica handlers instance
func NewPessoaJuridicaHandlers(service *services.PessoaJuridicaService, logger *logging.SafeLogger) *PessoaJuridicaHandlers {
	return &PessoaJuridicaHandlers{
		service: service,
		logger:  logger,
	}
}

// ListPessoasJuridicas godoc
// @Summary Listar pessoas jurídicas
// @Description Lista as pessoas jurídicas com atividade, representante e contatos resolvidos
// @Tags pessoajuridica
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.PessoaJuridicaDTO "Pessoas jurídicas"
// @Failure 401 {object} ErrorResponse "Token ausente ou inválido"
// @Failure 500 {object} ErrorResponse "Erro interno do servidor"
// @Router /api/pessoajuridica [get]
func (h *PessoaJuridicaHandlers) ListPessoasJuridicas(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "ListPessoasJuridicas")
	defer span.End()

	pessoas, err := h.service.GetAll(ctx)
	if err != nil {
		respondInternalError(c, span, h.logger, msgErroListarJuridicas, err)
		return
	}

	utils.AddSpanAttribute(span, "results_count", len(pessoas))
	c.JSON(http.StatusOK, pessoas)
}

// GetPessoaJuridica godoc
// @Summary Buscar pessoa jurídica
// @Description Retorna uma pessoa jurídica pelo código, com o CNPJ formatado
// @Tags pessoajuridica
// @Produce json
// @Security BearerAuth
// @Param codigo path int true "Código da pessoa"
// @Success 200 {object} models.PessoaJuridicaDTO "Pessoa jurídica encontrada"
// @Failure 400 {object} ErrorResponse "Código inválido"
// @Failure 404 {object} ErrorResponse "Pessoa jurídica não encontrada"
// @Failure 500 {object} ErrorResponse "Erro interno do servidor"
// @Router /api/pessoajuridica/{codigo} [get]
func (h *PessoaJuridicaHandlers) GetPessoaJuridica(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "GetPessoaJuridica")
	defer span.End()

	codigo, ok := parseCodigo(c, "codigo")
	if !ok {
		return
	}
	span.SetAttributes(attribute.Int("pessoa.codigo", codigo))

	pessoa, err := h.service.GetByID(ctx, codigo)
	if errors.Is(err, models.ErrPessoaNaoEncontrada) {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: MsgPessoaJuridicaNaoEncontrada})
		return
	}
	if err != nil {
		respondInternalError(c, span, h.logger, msgErroBuscarJuridica, err)
		return
	}

	c.JSON(http.StatusOK, pessoa)
}

// CreatePessoaJuridica godoc
// @Summary Criar pessoa jurídica
// @Description Cria a pessoa jurídica com seus contatos em uma única transação. O CNPJ alfanumérico é normalizado e tem os dígitos verificadores conferidos.
// @Tags pessoajuridica
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param data body models.PessoaJuridicaInput true "Dados da pessoa jurídica"
// @Success 201 {object} models.CreatedResponse "Pessoa jurídica criada com sucesso"
// @Failure 400 {object} ValidationErrorResponse "Dados inválidos ou CNPJ inválido"
// @Failure 403 {object} ErrorResponse "Acesso negado"
// @Failure 500 {object} ErrorResponse "Erro interno do servidor"
// @Router /api/pessoajuridica [post]
func (h *PessoaJuridicaHandlers) CreatePessoaJuridica(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "CreatePessoaJuridica")
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
		respondInternalError(c, span, h.logger, msgErroCriarJuridica, err)
		return
	}

	span.SetAttributes(attribute.Int("pessoa.codigo", codigo))
	c.Header("Location", "/api/pessoajuridica/"+strconv.Itoa(codigo))
	c.JSON(http.StatusCreated, models.CreatedResponse{Codigo: codigo, Message: MsgPessoaJuridicaCriada})
}

// UpdatePessoaJuridica godoc
// @Summary Atualizar pessoa jurídica
// @Description Atualiza a pessoa jurídica e substitui seus contatos. O código do corpo deve ser igual ao da URL.
// @Tags pessoajuridica
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param codigo path int true "Código da pessoa"
// @Param data body models.PessoaJuridicaInput true "Dados da pessoa jurídica"
// @Success 200 {object} MessageResponse "Pessoa jurídica atualizada com sucesso"
// @Failure 400 {object} ValidationErrorResponse "Dados inválidos ou CNPJ inválido"
// @Failure 403 {object} ErrorResponse "Acesso negado"
// @Failure 404 {object} ErrorResponse "Pessoa jurídica não encontrada"
// @Failure 500 {object} ErrorResponse "Erro interno do servidor"
// @Router /api/pessoajuridica/{codigo} [put]
func (h *PessoaJuridicaHandlers) UpdatePessoaJuridica(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "UpdatePessoaJuridica")
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
		c.JSON(http.StatusNotFound, ErrorResponse{Message: MsgPessoaJuridicaNaoEncontrada})
		return
	}
	if err != nil {
		if respondBusinessError(c, err) {
			return
		}
		respondInternalError(c, span, h.logger, msgErroAtualizarJuridica, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: MsgPessoaJuridicaAtualizada})
}

func (h *PessoaJuridicaHandlers) bindInput(c *gin.Context) (*models.PessoaJuridicaInput, bool) {
	ctx, inputSpan := utils.TraceInputParsing(c.Request.Context(), "pessoa_juridica_input")
	defer inputSpan.End()

	var in models.PessoaJuridicaInput
	if !bindJSON(c, inputSpan, &in) {
		return nil, false
	}
	utils.SanitizePessoaJuridicaInput(&in)

	_, validationSpan := utils.TraceInputValidation(ctx, "pessoa_juridica", "payload")
	defer validationSpan.End()

	if result := utils.ValidatePessoaJuridica(in); !result.IsValid {
		utils.AddSpanAttribute(validationSpan, "validation.errors", len(result.Errors))
		cnpj := ""
		if in.Cnpj != nil {
			cnpj = observability.MaskCNPJ(*in.Cnpj)
		}
		h.logger.Debug("pessoa juridica payload rejected",
			zap.String("cnpj", cnpj),
			zap.Int("errors", len(result.Errors)),
		)
		respondValidation(c, result)
		return nil, false
	}
	return &in, true
}
