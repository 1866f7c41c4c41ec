package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/prefeitura-rio/app-cadastro/internal/logging"
	"github.com/prefeitura-rio/app-cadastro/internal/middleware"
	"github.com/prefeitura-rio/app-cadastro/internal/models"
	"github.com/prefeitura-rio/app-cadastro/internal/services"
	"github.com/prefeitura-rio/app-cadastro/internal/utils"
)

// Client messages of the auth endpoints
const (
	MsgSenhaAlterada        = "Senha alterada com sucesso"
	MsgSenhaNaoAlterada     = "Não foi possível alterar a senha. Verifique se a senha atual está correta."
	MsgUsuarioNaoEncontrado = "Usuário não encontrado"
	MsgTokenValido          = "Token válido"
	msgErroLogin            = "Erro ao realizar login"
	msgErroRegistro         = "Erro ao registrar usuário"
	msgErroAlterarSenha     = "Erro ao alterar senha"
	msgErroBuscarUsuario    = "Erro ao buscar usuário"
	msgErroListarUsuarios   = "Erro ao listar usuários"
)

// AuthHandlers handles login, registration and account endpoints
type AuthHandlers struct {
	service *services.AuthService
	logger  *logging.SafeLogger
}

// NewAuthHandlers creates a new auth handlers instance
func NewAuthHandlers(service *services.AuthService, logger *logging.SafeLogger) *AuthHandlers {
	return &AuthHandlers{
		service: service,
		logger:  logger,
	}
}

// Login godoc
// @Summary Autenticar usuário
// @Description Valida usuário e senha e devolve um token JWT. Usuário inexistente e senha incorreta produzem a mesma resposta. Após tentativas falhas consecutivas a combinação usuário e IP é bloqueada temporariamente.
// @Tags auth
// @Accept json
// @Produce json
// @Param data body models.LoginRequest true "Credenciais"
// @Success 200 {object} models.LoginResponse "Login realizado com sucesso"
// @Failure 400 {object} ValidationErrorResponse "Dados inválidos"
// @Failure 401 {object} models.LoginResponse "Usuário ou senha inválidos"
// @Failure 429 {object} models.LoginResponse "Muitas tentativas de login"
// @Failure 500 {object} ErrorResponse "Erro interno do servidor"
// @Router /api/auth/login [post]
func (h *AuthHandlers) Login(c *gin.Context) {
	startTime := time.Now()
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "Login")
	defer span.End()

	span.SetAttributes(
		attribute.String("operation", "login"),
		attribute.String("service", "auth"),
	)

	_, inputSpan := utils.TraceInputParsing(ctx, "login_request")
	var req models.LoginRequest
	if !bindJSON(c, inputSpan, &req) {
		inputSpan.End()
		return
	}
	inputSpan.End()

	resp, err := h.service.Login(ctx, req, c.ClientIP())
	if errors.Is(err, models.ErrLoginBloqueado) {
		h.logger.Warn("login blocked", zap.String("usuario", req.Usuario), zap.String("ip", c.ClientIP()))
		c.JSON(http.StatusTooManyRequests, models.LoginResponse{Success: false, Message: services.MsgLoginBloqueado})
		return
	}
	if err != nil {
		respondInternalError(c, span, h.logger, msgErroLogin, err)
		return
	}

	utils.AddTimingToSpan(span, startTime)
	if !resp.Success {
		c.JSON(http.StatusUnauthorized, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Registrar godoc
// @Summary Registrar usuário
// @Description Cria uma conta e devolve um token JWT. Somente administradores autenticados podem criar administradores (tipo 1).
// @Tags auth
// @Accept json
// @Produce json
// @Param data body models.RegistrarUsuarioRequest true "Dados do usuário"
// @Success 200 {object} models.LoginResponse "Usuário registrado com sucesso"
// @Failure 400 {object} models.LoginResponse "Dados inválidos"
// @Failure 403 {object} ErrorResponse "Acesso negado"
// @Failure 500 {object} ErrorResponse "Erro interno do servidor"
// @Router /api/auth/registrar [post]
func (h *AuthHandlers) Registrar(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "Registrar")
	defer span.End()

	span.SetAttributes(
		attribute.String("operation", "registrar"),
		attribute.String("service", "auth"),
	)

	_, inputSpan := utils.TraceInputParsing(ctx, "registrar_request")
	var req models.RegistrarUsuarioRequest
	if !bindJSON(c, inputSpan, &req) {
		inputSpan.End()
		return
	}
	inputSpan.End()

	callerRole, _ := middleware.GetRole(c)
	resp, err := h.service.Register(ctx, req, callerRole)
	if err != nil {
		if errors.Is(err, models.ErrAcessoNegado) {
			c.JSON(http.StatusForbidden, ErrorResponse{Message: middleware.MsgAcessoNegado})
			return
		}
		if be, ok := models.IsBusinessError(err); ok {
			c.JSON(http.StatusBadRequest, models.LoginResponse{Success: false, Message: be.Message})
			return
		}
		respondInternalError(c, span, h.logger, msgErroRegistro, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// AlterarSenha godoc
// @Summary Alterar senha
// @Description Troca a senha do usuário autenticado mediante a senha atual
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param data body models.AlterarSenhaRequest true "Senha atual e nova senha"
// @Success 200 {object} MessageResponse "Senha alterada com sucesso"
// @Failure 400 {object} ErrorResponse "Senha atual incorreta ou confirmação divergente"
// @Failure 401 {object} ErrorResponse "Token ausente ou inválido"
// @Failure 500 {object} ErrorResponse "Erro interno do servidor"
// @Router /api/auth/alterar-senha [post]
func (h *AuthHandlers) AlterarSenha(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "AlterarSenha")
	defer span.End()

	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: middleware.MsgTokenAusente})
		return
	}
	span.SetAttributes(attribute.Int("user.id", userID))

	_, inputSpan := utils.TraceInputParsing(ctx, "alterar_senha_request")
	var req models.AlterarSenhaRequest
	if !bindJSON(c, inputSpan, &req) {
		inputSpan.End()
		return
	}
	inputSpan.End()

	changed, err := h.service.AlterarSenha(ctx, userID, req)
	if err != nil {
		respondInternalError(c, span, h.logger, msgErroAlterarSenha, err)
		return
	}
	if !changed {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: MsgSenhaNaoAlterada})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: MsgSenhaAlterada})
}

// Me godoc
// @Summary Usuário autenticado
// @Description Retorna o resumo da conta do token informado
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UsuarioDTO "Usuário encontrado"
// @Failure 401 {object} ErrorResponse "Token ausente ou inválido"
// @Failure 404 {object} ErrorResponse "Usuário não encontrado"
// @Failure 500 {object} ErrorResponse "Erro interno do servidor"
// @Router /api/auth/me [get]
func (h *AuthHandlers) Me(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "Me")
	defer span.End()

	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: middleware.MsgTokenAusente})
		return
	}

	usuario, err := h.service.Me(ctx, userID)
	if errors.Is(err, models.ErrUsuarioNaoEncontrado) {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: MsgUsuarioNaoEncontrado})
		return
	}
	if err != nil {
		respondInternalError(c, span, h.logger, msgErroBuscarUsuario, err)
		return
	}

	c.JSON(http.StatusOK, usuario)
}

// ValidarToken godoc
// @Summary Validar token
// @Description Confirma que o token enviado no cabeçalho Authorization é válido
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ValidarTokenResponse "Token válido"
// @Failure 401 {object} ErrorResponse "Token ausente, inválido ou expirado"
// @Router /api/auth/validar-token [get]
func (h *AuthHandlers) ValidarToken(c *gin.Context) {
	c.JSON(http.StatusOK, models.ValidarTokenResponse{Valid: true, Message: MsgTokenValido})
}

// ListUsuarios godoc
// @Summary Listar usuários
// @Description Lista todas as contas, das mais recentes para as mais antigas. Restrito a administradores.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.UsuarioDTO "Usuários"
// @Failure 401 {object} ErrorResponse "Token ausente ou inválido"
// @Failure 403 {object} ErrorResponse "Acesso negado"
// @Failure 500 {object} ErrorResponse "Erro interno do servidor"
// @Router /api/auth/usuarios [get]
func (h *AuthHandlers) ListUsuarios(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "ListUsuarios")
	defer span.End()

	usuarios, err := h.service.ListUsers(ctx)
	if err != nil {
		respondInternalError(c, span, h.logger, msgErroListarUsuarios, err)
		return
	}

	utils.AddSpanAttribute(span, "results_count", len(usuarios))
	c.JSON(http.StatusOK, usuarios)
}
