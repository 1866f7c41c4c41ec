package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/prefeitura-rio/app-cadastro/internal/logging"
	"github.com/prefeitura-rio/app-cadastro/internal/models"
	"github.com/prefeitura-rio/app-cadastro/internal/services"
	"github.com/prefeitura-rio/app-cadastro/internal/utils"
)

const (
	MsgPessoaNaoEncontrada = "Pessoa não encontrada"
	MsgPessoaExcluida      = "Pessoa excluída com sucesso"
	msgErroListarPessoas   = "Erro ao listar pessoas"
	msgErroBuscarPessoa    = "Erro ao buscar pessoa"
	msgErroPesquisar       = "Erro ao pesquisar pessoas"
	msgErroExcluirPessoa   = "Erro ao excluir pessoa"
)

// PessoaHandlers serves the generic person endpoints shared by both kinds
type PessoaHandlers struct {
	service *services.PessoaService
	logger  *logging.SafeLogger
}

// NewPessoaHandlers creates a new pessoa handlers instance
func NewPessoaHandlers(service *services.PessoaService, logger *logging.SafeLogger) *PessoaHandlers {
	return &PessoaHandlers{
		service: service,
		logger:  logger,
	}
}

// ListPessoas godoc
// @Summary Listar pessoas
// @Description Lista pessoas físicas e jurídicas, das mais recentes para as mais antigas
// @Tags pessoa
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Pessoa "Pessoas"
// @Failure 401 {object} ErrorResponse "Token ausente ou inválido"
// @Failure 500 {object} ErrorResponse "Erro interno do servidor"
// @Router /api/pessoa [get]
func (h *PessoaHandlers) ListPessoas(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "ListPessoas")
	defer span.End()

	pessoas, err := h.service.GetAll(ctx)
	if err != nil {
		respondInternalError(c, span, h.logger, msgErroListarPessoas, err)
		return
	}

	utils.AddSpanAttribute(span, "results_count", len(pessoas))
	c.JSON(http.StatusOK, pessoas)
}

// GetPessoa godoc
// @Summary Buscar pessoa
// @Description Retorna o registro base de uma pessoa pelo código
// @Tags pessoa
// @Produce json
// @Security BearerAuth
// @Param codigo path int true "Código da pessoa"
// @Success 200 {object} models.Pessoa "Pessoa encontrada"
// @Failure 400 {object} ErrorResponse "Código inválido"
// @Failure 404 {object} ErrorResponse "Pessoa não encontrada"
// @Failure 500 {object} ErrorResponse "Erro interno do servidor"
// @Router /api/pessoa/{codigo} [get]
func (h *PessoaHandlers) GetPessoa(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "GetPessoa")
	defer span.End()

	codigo, ok := parseCodigo(c, "codigo")
	if !ok {
		return
	}
	span.SetAttributes(attribute.Int("pessoa.codigo", codigo))

	pessoa, err := h.service.GetByID(ctx, codigo)
	if errors.Is(err, models.ErrPessoaNaoEncontrada) {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: MsgPessoaNaoEncontrada})
		return
	}
	if err != nil {
		respondInternalError(c, span, h.logger, msgErroBuscarPessoa, err)
		return
	}

	c.JSON(http.StatusOK, pessoa)
}

// SearchPessoas godoc
// @Summary Pesquisar pessoas
// @Description Pesquisa por nome, razão social, CPF ou CNPJ
// @Tags pessoa
// @Produce json
// @Security BearerAuth
// @Param termo query string true "Termo de busca"
// @Success 200 {array} models.Pessoa "Pessoas encontradas"
// @Failure 400 {object} ErrorResponse "Termo de busca não pode ser vazio"
// @Failure 500 {object} ErrorResponse "Erro interno do servidor"
// @Router /api/pessoa/search [get]
func (h *PessoaHandlers) SearchPessoas(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "SearchPessoas")
	defer span.End()

	pessoas, err := h.service.Search(ctx, c.Query("termo"))
	if err != nil {
		if respondBusinessError(c, err) {
			return
		}
		respondInternalError(c, span, h.logger, msgErroPesquisar, err)
		return
	}

	utils.AddSpanAttribute(span, "results_count", len(pessoas))
	c.JSON(http.StatusOK, pessoas)
}

// DeletePessoa godoc
// @Summary Excluir pessoa
// @Description Exclui a pessoa com seus contatos e seu registro de pessoa física ou jurídica. Restrito a administradores.
// @Tags pessoa
// @Produce json
// @Security BearerAuth
// @Param codigo path int true "Código da pessoa"
// @Success 200 {object} MessageResponse "Pessoa excluída com sucesso"
// @Failure 400 {object} ErrorResponse "Código inválido"
// @Failure 403 {object} ErrorResponse "Acesso negado"
// @Failure 404 {object} ErrorResponse "Pessoa não encontrada"
// @Failure 500 {object} ErrorResponse "Erro interno do servidor"
// @Router /api/pessoa/{codigo} [delete]
func (h *PessoaHandlers) DeletePessoa(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "DeletePessoa")
	defer span.End()

	codigo, ok := parseCodigo(c, "codigo")
	if !ok {
		return
	}
	span.SetAttributes(attribute.Int("pessoa.codigo", codigo))

	err := h.service.Delete(ctx, codigo)
	if errors.Is(err, models.ErrPessoaNaoEncontrada) {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: MsgPessoaNaoEncontrada})
		return
	}
	if err != nil {
		respondInternalError(c, span, h.logger, msgErroExcluirPessoa, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: MsgPessoaExcluida})
}
