package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prefeitura-rio/app-cadastro/internal/models"
)

const (
	testSecret   = "test-secret-key-with-enough-length"
	testIssuer   = "SistemaCadastro.API"
	testAudience = "SistemaCadastro.Client"
)

func newTestTokenService() *TokenService {
	return NewTokenService(testSecret, testIssuer, testAudience, 8*time.Hour)
}

func TestTokenService_GenerateAndValidate(t *testing.T) {
	svc := newTestTokenService()
	fixed := time.Now().Truncate(time.Second)
	svc.now = func() time.Time { return fixed }

	token, err := svc.GenerateToken(7, "maria", models.TipoUsuario)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "maria", claims.Username)
	assert.Equal(t, models.TipoUsuario, claims.Role)
	assert.Equal(t, testIssuer, claims.Issuer)
	assert.Equal(t, jwt.ClaimStrings{testAudience}, claims.Audience)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, fixed.Add(8*time.Hour).Unix(), claims.ExpiresAt.Unix())
	assert.Equal(t, fixed.Unix(), claims.IssuedAt.Unix())
}

func TestTokenService_UniqueTokenIDs(t *testing.T) {
	svc := newTestTokenService()

	first, err := svc.GenerateToken(1, "admin", models.TipoAdministrador)
	require.NoError(t, err)
	second, err := svc.GenerateToken(1, "admin", models.TipoAdministrador)
	require.NoError(t, err)

	c1, err := svc.ValidateToken(first)
	require.NoError(t, err)
	c2, err := svc.ValidateToken(second)
	require.NoError(t, err)
	assert.NotEqual(t, c1.ID, c2.ID)
}

func TestTokenService_ExpiredToken(t *testing.T) {
	issuer := newTestTokenService()
	issuer.now = func() time.Time { return time.Now().Add(-9 * time.Hour) }

	token, err := issuer.GenerateToken(1, "joao", models.TipoUsuario)
	require.NoError(t, err)

	_, err = newTestTokenService().ValidateToken(token)
	assert.ErrorIs(t, err, models.ErrTokenExpirado)
}

func TestTokenService_RejectsForeignTokens(t *testing.T) {
	valid := newTestTokenService()

	signWith := func(method jwt.SigningMethod, key interface{}, issuer, audience string) string {
		claims := models.JWTClaims{
			UserID:   1,
			Username: "joao",
			Role:     models.TipoAdministrador,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
				IssuedAt:  jwt.NewNumericDate(time.Now()),
				Issuer:    issuer,
				Audience:  []string{audience},
			},
		}
		signed, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return signed
	}

	tests := []struct {
		name  string
		token string
	}{
		{name: "wrong secret", token: signWith(jwt.SigningMethodHS256, []byte("another-secret"), testIssuer, testAudience)},
		{name: "wrong issuer", token: signWith(jwt.SigningMethodHS256, []byte(testSecret), "someone-else", testAudience)},
		{name: "wrong audience", token: signWith(jwt.SigningMethodHS256, []byte(testSecret), testIssuer, "other-client")},
		{name: "other hmac algorithm", token: signWith(jwt.SigningMethodHS512, []byte(testSecret), testIssuer, testAudience)},
		{name: "unsigned token", token: signWith(jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, testIssuer, testAudience)},
		{name: "garbage", token: "not-a-token"},
		{name: "empty", token: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := valid.ValidateToken(tt.token)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, models.ErrTokenInvalido)
		})
	}
}

func TestTokenService_MissingExpiration(t *testing.T) {
	claims := models.JWTClaims{
		UserID:   1,
		Username: "joao",
		Role:     models.TipoUsuario,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   testIssuer,
			Audience: []string{testAudience},
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = newTestTokenService().ValidateToken(token)
	assert.ErrorIs(t, err, models.ErrTokenInvalido)
}
