package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/prefeitura-rio/app-cadastro/internal/logging"
	"github.com/prefeitura-rio/app-cadastro/internal/models"
	"github.com/prefeitura-rio/app-cadastro/internal/utils"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Message string `json:"message"`
}

// MessageResponse is the body of writes that return no resource
type MessageResponse struct {
	Message string `json:"message"`
}

// ValidationErrorResponse lists the fields rejected by input validation
type ValidationErrorResponse struct {
	Message string                  `json:"message"`
	Errors  []utils.ValidationError `json:"errors"`
}

const (
	msgDadosInvalidos = "Dados inválidos"
	msgCodigoInvalido = "Código inválido"
)

// parseCodigo reads an integer path parameter, answering 400 when it is not one
func parseCodigo(c *gin.Context, param string) (int, bool) {
	codigo, err := strconv.Atoi(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: msgCodigoInvalido})
		return 0, false
	}
	return codigo, true
}

// bindJSON decodes the request body into dst. Malformed JSON and failed
// binding rules answer 400 with the offending fields.
func bindJSON(c *gin.Context, span trace.Span, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"input.type": "json"})
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{
			Message: msgDadosInvalidos,
			Errors:  bindingErrors(err),
		})
		return false
	}
	return true
}

// bindingErrors turns a gin binding failure into field errors
func bindingErrors(err error) []utils.ValidationError {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []utils.ValidationError{{Field: "body", Message: "JSON inválido"}}
	}

	out := make([]utils.ValidationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, utils.ValidationError{
			Field:   jsonFieldName(fe.Field()),
			Message: validationMessage(fe),
		})
	}
	return out
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Campo obrigatório"
	case "max":
		return "Tamanho máximo de " + fe.Param() + " caracteres"
	case "min":
		return "Tamanho mínimo de " + fe.Param() + " caracteres"
	default:
		return "Valor inválido"
	}
}

// jsonFieldName lowers the first rune of a Go field name, which matches
// the camelCase json tags of the request models
func jsonFieldName(field string) string {
	if field == "" {
		return field
	}
	runes := []rune(field)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// respondValidation answers 400 with the result of a utils validator
func respondValidation(c *gin.Context, result *utils.ValidationResult) {
	c.JSON(http.StatusBadRequest, ValidationErrorResponse{
		Message: msgDadosInvalidos,
		Errors:  result.Errors,
	})
}

// respondBusinessError answers 400 when err carries a client-safe message
func respondBusinessError(c *gin.Context, err error) bool {
	be, ok := models.IsBusinessError(err)
	if !ok {
		return false
	}
	c.JSON(http.StatusBadRequest, ErrorResponse{Message: be.Message})
	return true
}

// respondInternalError logs err, records it on span and answers a generic 500
func respondInternalError(c *gin.Context, span trace.Span, logger *logging.SafeLogger, message string, err error) {
	utils.RecordErrorInSpan(span, err, map[string]interface{}{
		"http.route": c.FullPath(),
	})
	logger.Error(strings.ToLower(message),
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
	)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Message: message})
}
