package observability

import (
	"strings"

	"github.com/prefeitura-rio/app-cadastro/internal/logging"
)

// Logger returns the global safe logger instance
func Logger() *logging.SafeLogger {
	return logging.Logger
}

// MaskCPF masks a CPF number for logging
func MaskCPF(cpf string) string {
	digits := onlyAlnum(cpf)
	if len(digits) != 11 {
		return "***.***.***-**"
	}
	return digits[:3] + ".***." + digits[6:9] + "-**"
}

// MaskCNPJ keeps the root and the branch of a CNPJ and hides the rest
func MaskCNPJ(cnpj string) string {
	value := strings.ToUpper(onlyAlnum(cnpj))
	if len(value) != 14 {
		return "**.***.***/****-**"
	}
	return value[:2] + ".***.***/" + value[8:12] + "-**"
}

func onlyAlnum(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
