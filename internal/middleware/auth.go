package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/prefeitura-rio/app-cadastro/internal/models"
	"github.com/prefeitura-rio/app-cadastro/internal/observability"
)

// Keys under which the authenticated identity is stored in the gin context
const (
	ContextKeyClaims   = "claims"
	ContextKeyUserID   = "user_id"
	ContextKeyUsername = "username"
	ContextKeyRole     = "role"
)

// Client messages
const (
	MsgTokenAusente  = "Token de autenticação não informado"
	MsgTokenInvalido = "Token inválido"
	MsgTokenExpirado = "Token expirado"
	MsgAcessoNegado  = "Acesso negado. Você não tem permissão para realizar esta ação."
)

// TokenValidator checks a bearer token and returns its claims
type TokenValidator interface {
	ValidateToken(token string) (*models.JWTClaims, error)
}

// Policy is the minimum role a route group requires
type Policy int

const (
	// AnyAuthenticated accepts every valid token
	AnyAuthenticated Policy = iota
	// UserOrAbove accepts administrators and regular users
	UserOrAbove
	// AdminOnly accepts administrators
	AdminOnly
)

// Allows reports whether role satisfies the policy
func (p Policy) Allows(role int) bool {
	switch p {
	case AdminOnly:
		return role == models.TipoAdministrador
	case UserOrAbove:
		return role == models.TipoAdministrador || role == models.TipoUsuario
	case AnyAuthenticated:
		return true
	default:
		return false
	}
}

// RequiredRoles lists the display names of the roles the policy accepts
func (p Policy) RequiredRoles() []string {
	var roles []string
	for _, role := range []int{models.TipoAdministrador, models.TipoUsuario, models.TipoConvidado} {
		if p.Allows(role) {
			roles = append(roles, models.DescricaoTipoUsuario(role))
		}
	}
	return roles
}

func (p Policy) String() string {
	switch p {
	case AdminOnly:
		return "AdminOnly"
	case UserOrAbove:
		return "UserOrAbove"
	case AnyAuthenticated:
		return "AnyAuthenticated"
	default:
		return "Unknown"
	}
}

// bearerToken returns the token of an "Authorization: Bearer <token>" header
func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}

func setIdentity(c *gin.Context, claims *models.JWTClaims) {
	c.Set(ContextKeyClaims, claims)
	c.Set(ContextKeyUserID, claims.UserID)
	c.Set(ContextKeyUsername, claims.Username)
	c.Set(ContextKeyRole, claims.Role)
}

// AuthMiddleware rejects requests without a valid bearer token with 401
func AuthMiddleware(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": MsgTokenAusente})
			return
		}

		claims, err := validator.ValidateToken(token)
		if err != nil {
			message := MsgTokenInvalido
			if errors.Is(err, models.ErrTokenExpirado) {
				message = MsgTokenExpirado
			}
			observability.Logger().Debug("rejected bearer token",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
				zap.String("ip", c.ClientIP()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": message})
			return
		}

		setIdentity(c, claims)
		c.Next()
	}
}

// OptionalAuth stores the identity of a valid bearer token and lets every
// request through
func OptionalAuth(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			if claims, err := validator.ValidateToken(token); err == nil {
				setIdentity(c, claims)
			}
		}
		c.Next()
	}
}

// RequirePolicy must run after AuthMiddleware. Callers whose role does not
// satisfy p get 403 with the accepted role names.
func RequirePolicy(p Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetRole(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": MsgTokenAusente})
			return
		}

		if !p.Allows(role) {
			userID, _ := GetUserID(c)
			observability.Logger().Warn("access denied",
				zap.Int("user_id", userID),
				zap.Int("role", role),
				zap.String("policy", p.String()),
				zap.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"message":       MsgAcessoNegado,
				"tipoRequerido": p.RequiredRoles(),
			})
			return
		}

		c.Next()
	}
}

// GetClaims returns the claims stored by the auth middlewares
func GetClaims(c *gin.Context) (*models.JWTClaims, bool) {
	value, exists := c.Get(ContextKeyClaims)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*models.JWTClaims)
	return claims, ok
}

// GetUserID returns the authenticated user code
func GetUserID(c *gin.Context) (int, bool) {
	value, exists := c.Get(ContextKeyUserID)
	if !exists {
		return 0, false
	}
	id, ok := value.(int)
	return id, ok
}

// GetUsername returns the authenticated login
func GetUsername(c *gin.Context) (string, bool) {
	value, exists := c.Get(ContextKeyUsername)
	if !exists {
		return "", false
	}
	username, ok := value.(string)
	return username, ok
}

// GetRole returns the authenticated role, see models.TipoAdministrador
func GetRole(c *gin.Context) (int, bool) {
	value, exists := c.Get(ContextKeyRole)
	if !exists {
		return 0, false
	}
	role, ok := value.(int)
	return role, ok
}
