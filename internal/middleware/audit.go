package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	pathpkg "path"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/prefeitura-rio/app-cadastro/internal/observability"
	"github.com/prefeitura-rio/app-cadastro/internal/utils"
)

// maxAuditBodySize caps the request body copied into an audit entry
const maxAuditBodySize = 64 << 10

// AuditMiddleware records every successful write request through
// utils.LogAuditEvent. Credential fields of the body are redacted.
func AuditMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		method := c.Request.Method
		if method != http.MethodPost && method != http.MethodPut && method != http.MethodDelete && method != http.MethodPatch {
			c.Next()
			return
		}

		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/health") || strings.HasPrefix(path, "/metrics") || strings.HasPrefix(path, "/swagger") {
			c.Next()
			return
		}

		var bodyBytes []byte
		if c.Request.Body != nil {
			bodyBytes, _ = io.ReadAll(io.LimitReader(c.Request.Body, maxAuditBodySize+1))
			c.Request.Body = io.NopCloser(io.MultiReader(bytes.NewReader(bodyBytes), c.Request.Body))
		}

		c.Next()

		status := c.Writer.Status()
		if status < 200 || status >= 300 {
			return
		}

		metadata := map[string]string{
			"endpoint":        path,
			"method":          method,
			"response_status": strconv.Itoa(status),
		}
		if c.Request.URL.RawQuery != "" {
			metadata["query_params"] = c.Request.URL.RawQuery
		}

		var newValue interface{}
		if len(bodyBytes) > maxAuditBodySize {
			metadata["request_body"] = "omitted: too large"
		} else if len(bodyBytes) > 0 {
			newValue = utils.SanitizeAuditData(bodyBytes)
		}

		auditCtx := GetAuditContextFromGin(c)
		if auditCtx.Usuario == "" {
			auditCtx.Usuario = usuarioFromBody(bodyBytes)
		}

		action := auditAction(method, path)
		resource := auditResource(path)
		if err := utils.LogAuditEvent(c.Request.Context(), auditCtx, action, resource, auditResourceID(c), newValue, metadata); err != nil {
			observability.Logger().Warn("failed to log audit event",
				zap.Error(err),
				zap.String("endpoint", path),
				zap.String("method", method),
			)
		}
	}
}

// GetAuditContextFromGin builds the audit identity of the current request
func GetAuditContextFromGin(c *gin.Context) utils.AuditContext {
	var userID string
	if id, ok := GetUserID(c); ok {
		userID = strconv.Itoa(id)
	}
	usuario, _ := GetUsername(c)

	return utils.GetAuditContextFromRequest(userID, usuario, GetRequestID(c), c.ClientIP(), c.Request.UserAgent())
}

// usuarioFromBody reads the login of anonymous auth requests
func usuarioFromBody(body []byte) string {
	if len(body) == 0 || len(body) > maxAuditBodySize {
		return ""
	}
	var payload struct {
		Usuario string `json:"usuario"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Usuario
}

// auditResourceID takes the codigo route parameter, or for creates the last
// segment of the Location header the handler set
func auditResourceID(c *gin.Context) string {
	if codigo := c.Param("codigo"); codigo != "" {
		return codigo
	}
	if location := c.Writer.Header().Get("Location"); location != "" {
		return pathpkg.Base(location)
	}
	return ""
}

func auditAction(method, path string) string {
	switch {
	case strings.HasSuffix(path, "/auth/login"):
		return utils.AuditActionLogin
	case strings.HasSuffix(path, "/auth/registrar"):
		return utils.AuditActionRegister
	case strings.HasSuffix(path, "/auth/alterar-senha"):
		return utils.AuditActionChangePassword
	}

	switch method {
	case http.MethodPost:
		return utils.AuditActionCreate
	case http.MethodDelete:
		return utils.AuditActionDelete
	default:
		return utils.AuditActionUpdate
	}
}

func auditResource(path string) string {
	path = strings.TrimPrefix(path, "/api/")
	resource, _, _ := strings.Cut(path, "/")

	switch resource {
	case "pessoafisica":
		return utils.AuditResourcePessoaFisica
	case "pessoajuridica":
		return utils.AuditResourcePessoaJuridica
	case "pessoa":
		return utils.AuditResourcePessoa
	case "auth":
		return utils.AuditResourceUsuario
	case "":
		return "unknown"
	default:
		return resource
	}
}
