package utils

import (
	"strings"
)

const cnpjLength = 14

var cnpjPunctuation = strings.NewReplacer(".", "", "/", "", "-", "")

// NormalizarCNPJ trims, uppercases and strips the usual CNPJ punctuation.
func NormalizarCNPJ(cnpj string) string {
	return cnpjPunctuation.Replace(strings.ToUpper(strings.TrimSpace(cnpj)))
}

// ValidarCNPJ validates an alphanumeric CNPJ. The first 12 characters may be
// digits or letters A-Z; the two check digits are always decimal.
func ValidarCNPJ(cnpj string) bool {
	cnpj = NormalizarCNPJ(cnpj)
	if len(cnpj) != cnpjLength {
		return false
	}

	if !isDigit(cnpj[12]) || !isDigit(cnpj[13]) {
		return false
	}

	for i := 0; i < cnpjLength; i++ {
		if !isDigit(cnpj[i]) && !isUpperLetter(cnpj[i]) {
			return false
		}
	}

	dv1 := calcularDigito(cnpj[:12])
	dv2 := calcularDigito(cnpj[:12] + string(dv1))

	return cnpj[12] == dv1 && cnpj[13] == dv2
}

// CalcularDigitosCNPJ returns the two check digits for a 12-character base.
// ok is false when the base is not 12 alphanumeric characters.
func CalcularDigitosCNPJ(base string) (digitos string, ok bool) {
	base = NormalizarCNPJ(base)
	if len(base) != 12 {
		return "", false
	}
	for i := 0; i < len(base); i++ {
		if !isDigit(base[i]) && !isUpperLetter(base[i]) {
			return "", false
		}
	}

	dv1 := calcularDigito(base)
	dv2 := calcularDigito(base + string(dv1))
	return string([]byte{dv1, dv2}), true
}

// FormatarCNPJ renders a 14-character CNPJ as XX.XXX.XXX/XXXX-DD.
// Inputs of any other length are returned unchanged.
func FormatarCNPJ(cnpj string) string {
	if len(cnpj) != cnpjLength {
		return cnpj
	}
	return cnpj[0:2] + "." + cnpj[2:5] + "." + cnpj[5:8] + "/" + cnpj[8:12] + "-" + cnpj[12:14]
}

// calcularDigito applies the modulo 11 rule with weights 2..9 taken from
// right to left. Letters are worth their ASCII code minus 48.
func calcularDigito(s string) byte {
	soma := 0
	peso := 2
	for i := len(s) - 1; i >= 0; i-- {
		soma += int(s[i]-'0') * peso
		peso++
		if peso > 9 {
			peso = 2
		}
	}

	resto := soma % 11
	if resto < 2 {
		return '0'
	}
	return byte('0' + 11 - resto)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isUpperLetter(c byte) bool {
	return c >= 'A' && c <= 'Z'
}
