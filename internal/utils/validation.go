package utils

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/prefeitura-rio/app-cadastro/internal/models"
)

// ValidationError represents a validation error with field and message
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult represents the result of validation
type ValidationResult struct {
	IsValid bool              `json:"isValid"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

// NewValidationResult creates a new validation result
func NewValidationResult() *ValidationResult {
	return &ValidationResult{
		IsValid: true,
		Errors:  []ValidationError{},
	}
}

// AddError adds a validation error to the result
func (vr *ValidationResult) AddError(field, message string) {
	vr.IsValid = false
	vr.Errors = append(vr.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// ValidatePessoaFisica checks an individual create/update payload
func ValidatePessoaFisica(input models.PessoaFisicaInput) *ValidationResult {
	result := NewValidationResult()

	validateNome(result, "nome", input.Nome)

	if input.Sexo != nil && *input.Sexo != "" {
		sexo := strings.ToUpper(strings.TrimSpace(*input.Sexo))
		if sexo != "M" && sexo != "F" {
			result.AddError("sexo", "Sexo deve ser M ou F")
		}
	}

	if input.Cpf != nil && *input.Cpf != "" {
		if cpf := SomenteDigitos(*input.Cpf); len(cpf) != 11 {
			result.AddError("cpf", "CPF deve conter 11 dígitos")
		} else {
			validateMaxLen(result, "cpf", input.Cpf, 14)
		}
	}

	validateMaxLen(result, "identidade", input.Identidade, 20)
	validateMaxLen(result, "orgaoIdentidade", input.OrgaoIdentidade, 20)
	validateMaxLen(result, "ctps", input.Ctps, 20)
	validateMaxLen(result, "pis", input.Pis, 20)

	validateCodigo(result, "ufIdentidade", input.UfIdentidade)
	validateCodigo(result, "estadoCivil", input.EstadoCivil)
	validateCodigo(result, "nacionalidade", input.Nacionalidade)
	validateCodigo(result, "profissao", input.Profissao)
	validateCodigo(result, "cidadeNasc", input.CidadeNasc)
	validateCodigo(result, "ufNasc", input.UfNasc)
	validateCodigo(result, "conjuge", input.Conjuge)

	validateEndereco(result, input.EnderecoInput)
	validateTelefones(result, input.Telefones)
	validateEnderecosEletronicos(result, input.EnderecosEletronicos)
	return result
}

// ValidatePessoaJuridica checks an organization create/update payload.
// CNPJ check digits are verified by the service.
func ValidatePessoaJuridica(input models.PessoaJuridicaInput) *ValidationResult {
	result := NewValidationResult()

	validateNome(result, "nome", input.Nome)
	validateNome(result, "razaoSocial", input.RazaoSocial)

	validateMaxLen(result, "inscricaoEstadual", input.InscricaoEstadual, 20)
	validateMaxLen(result, "homepage", input.Homepage, 200)
	validateCodigo(result, "atividade", input.Atividade)
	validateCodigo(result, "representante", input.Representante)

	validateEndereco(result, input.EnderecoInput)
	validateTelefones(result, input.Telefones)
	validateEnderecosEletronicos(result, input.EnderecosEletronicos)
	return result
}

func validateNome(result *ValidationResult, field, value string) {
	if strings.TrimSpace(value) == "" {
		result.AddError(field, "Campo obrigatório")
		return
	}
	if utf8.RuneCountInString(value) > 200 {
		result.AddError(field, "Deve ter no máximo 200 caracteres")
	}
}

func validateEndereco(result *ValidationResult, input models.EnderecoInput) {
	if input.Cep != nil && *input.Cep != "" {
		if len(NormalizarCEP(*input.Cep)) != 8 || len(SomenteDigitos(*input.Cep)) != 8 {
			result.AddError("cep", "CEP deve estar no formato 00000-000 ou 00000000")
		}
	}
	validateCodigo(result, "estado", input.Estado)
	validateCodigo(result, "cidade", input.Cidade)
	validateMaxLen(result, "bairro", input.Bairro, 150)
	validateMaxLen(result, "endereco", input.Endereco, 200)
	validateMaxLen(result, "numero", input.Numero, 20)
	validateMaxLen(result, "complemento", input.Complemento, 200)
}

func validateTelefones(result *ValidationResult, telefones []models.TelefoneInput) {
	for _, t := range telefones {
		if strings.TrimSpace(t.Numero()) == "" {
			continue
		}
		if t.Tipo != nil && (*t.Tipo < 0 || *t.Tipo > math.MaxInt16) {
			result.AddError("telefones", fmt.Sprintf("Tipo de telefone inválido: %d", *t.Tipo))
		}
		validateMaxLen(result, "telefones", t.Descricao, 100)
	}
}

// validateEnderecosEletronicos requires an @ in e-mail entries. A missing
// tipo defaults to e-mail when stored, so it is checked the same way.
func validateEnderecosEletronicos(result *ValidationResult, enderecos []models.EnderecoEletronicoInput) {
	for _, e := range enderecos {
		if e.Endereco == nil || strings.TrimSpace(*e.Endereco) == "" {
			continue
		}
		isEmail := e.Tipo == nil || *e.Tipo == models.TipoEnderecoEmail
		if isEmail && !strings.Contains(*e.Endereco, "@") {
			result.AddError("enderecosEletronicos", "E-mail inválido: "+*e.Endereco)
		}
		validateCodigo(result, "enderecosEletronicos", e.Tipo)
		validateMaxLen(result, "enderecosEletronicos", e.Endereco, 300)
		validateMaxLen(result, "enderecosEletronicos", e.Descricao, 100)
	}
}

// validateMaxLen rejects values longer than the column that stores them
func validateMaxLen(result *ValidationResult, field string, value *string, max int) {
	if value != nil && utf8.RuneCountInString(*value) > max {
		result.AddError(field, fmt.Sprintf("Deve ter no máximo %d caracteres", max))
	}
}

// validateCodigo rejects codes that do not fit an INTEGER column
func validateCodigo(result *ValidationResult, field string, value *int) {
	if value != nil && (*value < 0 || *value > math.MaxInt32) {
		result.AddError(field, "Código fora do intervalo permitido")
	}
}

// NormalizarCEP strips the "-" and "." separators from a postal code
func NormalizarCEP(cep string) string {
	cep = strings.TrimSpace(cep)
	cep = strings.ReplaceAll(cep, "-", "")
	return strings.ReplaceAll(cep, ".", "")
}

// SanitizeString trims surrounding whitespace
func SanitizeString(s string) string {
	return strings.TrimSpace(s)
}

// SanitizePessoaFisicaInput trims free-text fields in place and stores the CEP without separators
func SanitizePessoaFisicaInput(input *models.PessoaFisicaInput) {
	input.Nome = SanitizeString(input.Nome)
	input.Cpf = sanitizeStringPtr(input.Cpf)
	input.Identidade = sanitizeStringPtr(input.Identidade)
	input.OrgaoIdentidade = sanitizeStringPtr(input.OrgaoIdentidade)
	if input.Sexo != nil {
		sexo := strings.ToUpper(strings.TrimSpace(*input.Sexo))
		input.Sexo = &sexo
	}
	sanitizeEndereco(&input.EnderecoInput)
}

// SanitizePessoaJuridicaInput trims free-text fields in place and stores the CEP without separators
func SanitizePessoaJuridicaInput(input *models.PessoaJuridicaInput) {
	input.Nome = SanitizeString(input.Nome)
	input.RazaoSocial = SanitizeString(input.RazaoSocial)
	input.InscricaoEstadual = sanitizeStringPtr(input.InscricaoEstadual)
	input.Homepage = sanitizeStringPtr(input.Homepage)
	sanitizeEndereco(&input.EnderecoInput)
}

func sanitizeEndereco(input *models.EnderecoInput) {
	if input.Cep != nil {
		cep := NormalizarCEP(*input.Cep)
		input.Cep = &cep
	}
	input.Numero = sanitizeStringPtr(input.Numero)
	input.Complemento = sanitizeStringPtr(input.Complemento)
}

func sanitizeStringPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}
