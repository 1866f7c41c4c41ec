package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/prefeitura-rio/app-cadastro/internal/logging"
	"github.com/prefeitura-rio/app-cadastro/internal/models"
	"github.com/prefeitura-rio/app-cadastro/internal/observability"
	"github.com/prefeitura-rio/app-cadastro/internal/repository"
	"github.com/prefeitura-rio/app-cadastro/internal/utils"
)

// Client messages of the authentication flows
const (
	MsgCredenciaisInvalidas = "Usuário ou senha inválidos"
	MsgLoginSucesso         = "Login realizado com sucesso"
	MsgRegistroSucesso      = "Usuário registrado com sucesso"
	MsgLoginBloqueado       = "Muitas tentativas de login. Tente novamente mais tarde."
)

// AuthService handles login, registration and password changes
type AuthService struct {
	usuarios repository.UsuarioRepository
	pessoas  repository.PessoaRepository
	tokens   *TokenService
	hasher   *PasswordHasher
	limiter  *LoginLimiter
	logger   *logging.SafeLogger
}

// NewAuthService creates a new AuthService instance
func NewAuthService(repos Repositories, tokens *TokenService, hasher *PasswordHasher, limiter *LoginLimiter, logger *logging.SafeLogger) *AuthService {
	return &AuthService{
		usuarios: repos.Usuarios,
		pessoas:  repos.Pessoas,
		tokens:   tokens,
		hasher:   hasher,
		limiter:  limiter,
		logger:   logger,
	}
}

// Login authenticates usuario from clientIP. Unknown users and wrong
// passwords produce the same unsuccessful response. A locked out pair
// returns models.ErrLoginBloqueado.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest, clientIP string) (*models.LoginResponse, error) {
	ctx, span := utils.TraceBusinessLogic(ctx, "login")
	defer span.End()

	if s.limiter.Blocked(ctx, req.Usuario, clientIP) {
		observability.LoginAttempts.WithLabelValues("blocked").Inc()
		return nil, models.ErrLoginBloqueado
	}

	usuario, err := s.usuarios.GetByUsuario(ctx, req.Usuario)
	if err != nil {
		utils.RecordErrorInSpan(span, err, nil)
		return nil, fmt.Errorf("login: %w", err)
	}

	if usuario == nil || !s.hasher.Verify(req.Senha, usuario.Senha) {
		s.limiter.RegisterFailure(ctx, req.Usuario, clientIP)
		observability.LoginAttempts.WithLabelValues("invalid").Inc()
		s.logger.Info("login rejected", zap.String("usuario", req.Usuario), zap.String("ip", clientIP))
		return &models.LoginResponse{Success: false, Message: MsgCredenciaisInvalidas}, nil
	}

	if s.hasher.NeedsUpgrade(usuario.Senha) {
		s.upgradeHash(ctx, usuario, req.Senha)
	}
	s.limiter.Reset(ctx, req.Usuario, clientIP)

	dto, err := s.toDTO(ctx, usuario)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	token, err := s.tokens.GenerateToken(usuario.Codigo, usuario.Usuario, derefInt(usuario.Tipo))
	if err != nil {
		utils.RecordErrorInSpan(span, err, nil)
		return nil, fmt.Errorf("login: %w", err)
	}

	observability.LoginAttempts.WithLabelValues("success").Inc()
	s.logger.Info("login succeeded", zap.Int("user_id", usuario.Codigo))
	return &models.LoginResponse{Success: true, Message: MsgLoginSucesso, Token: &token, Usuario: dto}, nil
}

func (s *AuthService) upgradeHash(ctx context.Context, usuario *models.Usuario, senha string) {
	hash, err := s.hasher.Hash(senha)
	if err != nil {
		s.logger.Warn("failed to rehash legacy password", zap.Error(err), zap.Int("user_id", usuario.Codigo))
		return
	}
	if _, err := s.usuarios.AlterarSenha(ctx, usuario.Codigo, hash); err != nil {
		s.logger.Warn("failed to store upgraded password hash", zap.Error(err), zap.Int("user_id", usuario.Codigo))
		return
	}
	s.logger.Info("legacy password hash upgraded", zap.Int("user_id", usuario.Codigo))
}

// Register creates an account and signs a token for it. callerRole is the
// role of the authenticated caller, 0 when anonymous; only administrators
// may create administrators.
func (s *AuthService) Register(ctx context.Context, req models.RegistrarUsuarioRequest, callerRole int) (*models.LoginResponse, error) {
	ctx, span := utils.TraceBusinessLogic(ctx, "register")
	defer span.End()

	if req.Senha != req.ConfirmarSenha {
		return nil, models.ErrSenhasNaoCoincidem
	}
	if len(req.Senha) > models.MaxSenhaBytes {
		return nil, models.ErrSenhaMuitoLonga
	}

	existente, err := s.usuarios.GetByUsuario(ctx, req.Usuario)
	if err != nil {
		utils.RecordErrorInSpan(span, err, nil)
		return nil, fmt.Errorf("register: %w", err)
	}
	if existente != nil {
		return nil, models.ErrUsuarioJaCadastrado
	}

	if !models.TipoUsuarioValido(req.Tipo) {
		return nil, models.ErrTipoUsuarioInvalido
	}
	if req.Tipo == models.TipoAdministrador && callerRole != models.TipoAdministrador {
		s.logger.Warn("administrator registration denied", zap.String("usuario", req.Usuario), zap.Int("caller_role", callerRole))
		return nil, models.ErrAcessoNegado
	}

	hash, err := s.hasher.Hash(req.Senha)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	tipo := req.Tipo
	usuario := &models.Usuario{
		Usuario: req.Usuario,
		Senha:   hash,
		Tipo:    &tipo,
		Pessoa:  req.Pessoa,
	}
	codigo, err := s.usuarios.Create(ctx, usuario)
	if err != nil {
		utils.RecordErrorInSpan(span, err, nil)
		return nil, fmt.Errorf("register: %w", err)
	}
	usuario.Codigo = codigo

	token, err := s.tokens.GenerateToken(codigo, usuario.Usuario, tipo)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	dto, err := s.toDTO(ctx, usuario)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	s.logger.Info("usuario registered", zap.Int("user_id", codigo), zap.Int("tipo", tipo))
	return &models.LoginResponse{Success: true, Message: MsgRegistroSucesso, Token: &token, Usuario: dto}, nil
}

// AlterarSenha replaces the password of userID. It reports false without an
// error when the confirmation differs, the new password is too long for bcrypt, the user is unknown or senhaAtual is wrong.
func (s *AuthService) AlterarSenha(ctx context.Context, userID int, req models.AlterarSenhaRequest) (bool, error) {
	if req.NovaSenha != req.ConfirmarNovaSenha || len(req.NovaSenha) > models.MaxSenhaBytes {
		return false, nil
	}

	usuario, err := s.usuarios.GetByID(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("alterar senha: %w", err)
	}
	if usuario == nil || !s.hasher.Verify(req.SenhaAtual, usuario.Senha) {
		return false, nil
	}

	hash, err := s.hasher.Hash(req.NovaSenha)
	if err != nil {
		return false, fmt.Errorf("alterar senha: %w", err)
	}
	ok, err := s.usuarios.AlterarSenha(ctx, userID, hash)
	if err != nil {
		return false, fmt.Errorf("alterar senha: %w", err)
	}

	if ok {
		s.logger.Info("password changed", zap.Int("user_id", userID))
	}
	return ok, nil
}

// Me returns the summary of userID or models.ErrUsuarioNaoEncontrado
func (s *AuthService) Me(ctx context.Context, userID int) (*models.UsuarioDTO, error) {
	usuario, err := s.usuarios.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	if usuario == nil {
		return nil, models.ErrUsuarioNaoEncontrado
	}
	return s.toDTO(ctx, usuario)
}

// ListUsers returns every account, newest first
func (s *AuthService) ListUsers(ctx context.Context) ([]models.UsuarioDTO, error) {
	usuarios, err := s.usuarios.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}

	out := make([]models.UsuarioDTO, 0, len(usuarios))
	for i := range usuarios {
		out = append(out, summary(&usuarios[i], nil))
	}
	return out, nil
}

// ValidateToken exposes the token check to the HTTP middleware
func (s *AuthService) ValidateToken(token string) (*models.JWTClaims, error) {
	return s.tokens.ValidateToken(token)
}

func (s *AuthService) toDTO(ctx context.Context, usuario *models.Usuario) (*models.UsuarioDTO, error) {
	var nomePessoa *string
	if usuario.Pessoa != nil {
		pessoa, err := s.pessoas.GetByID(ctx, *usuario.Pessoa)
		if err != nil {
			return nil, err
		}
		if pessoa != nil {
			nomePessoa = pessoa.Nome
		}
	}
	dto := summary(usuario, nomePessoa)
	return &dto, nil
}

func summary(usuario *models.Usuario, nomePessoa *string) models.UsuarioDTO {
	dto := models.UsuarioDTO{
		Codigo:     usuario.Codigo,
		Usuario:    usuario.Usuario,
		Tipo:       usuario.Tipo,
		Pessoa:     usuario.Pessoa,
		NomePessoa: nomePessoa,
		Cadastro:   usuario.Cadastro,
	}
	if usuario.Tipo != nil {
		descricao := models.DescricaoTipoUsuario(*usuario.Tipo)
		dto.TipoDescricao = &descricao
	}
	return dto
}

func derefInt(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
