package models

import "strings"

// TipoTelefone codes stored in tb_pessoa_telefone.tipo
const (
	TipoTelefoneCelular     = 1
	TipoTelefoneFixo        = 2
	TipoTelefoneWhatsApp    = 3
	TipoTelefoneTelegram    = 4
	TipoTelefoneComercial   = 5
	TipoTelefoneResidencial = 6
	TipoTelefoneRecado      = 7
	TipoTelefoneFax         = 8
	TipoTelefoneOutro       = 99
)

// TipoEnderecoEletronico codes stored in tb_pessoa_endereco_eletronico.tipo
const (
	TipoEnderecoEmail     = 1
	TipoEnderecoWebsite   = 2
	TipoEnderecoFacebook  = 3
	TipoEnderecoInstagram = 4
	TipoEnderecoLinkedIn  = 5
	TipoEnderecoTwitter   = 6
	TipoEnderecoWhatsApp  = 7
	TipoEnderecoTelegram  = 8
	TipoEnderecoYouTube   = 9
	TipoEnderecoTikTok    = 10
	TipoEnderecoGitHub    = 11
	TipoEnderecoOutro     = 99
)

const tipoDesconhecido = "Desconhecido"

// TipoInfo describes one entry of a static type enumeration
type TipoInfo struct {
	Codigo    int    `json:"codigo"`
	Descricao string `json:"descricao"`
	Icone     string `json:"icone"`
}

var tiposTelefone = []TipoInfo{
	{Codigo: TipoTelefoneCelular, Descricao: "Celular", Icone: "📱"},
	{Codigo: TipoTelefoneFixo, Descricao: "Fixo", Icone: "☎️"},
	{Codigo: TipoTelefoneWhatsApp, Descricao: "WhatsApp", Icone: "💬"},
	{Codigo: TipoTelefoneTelegram, Descricao: "Telegram", Icone: "✈️"},
	{Codigo: TipoTelefoneComercial, Descricao: "Comercial", Icone: "🏢"},
	{Codigo: TipoTelefoneResidencial, Descricao: "Residencial", Icone: "🏠"},
	{Codigo: TipoTelefoneRecado, Descricao: "Recado", Icone: "📞"},
	{Codigo: TipoTelefoneFax, Descricao: "Fax", Icone: "📠"},
	{Codigo: TipoTelefoneOutro, Descricao: "Outro", Icone: "📞"},
}

var tiposEnderecoEletronico = []TipoInfo{
	{Codigo: TipoEnderecoEmail, Descricao: "E-mail", Icone: "📧"},
	{Codigo: TipoEnderecoWebsite, Descricao: "Website", Icone: "🌐"},
	{Codigo: TipoEnderecoFacebook, Descricao: "Facebook", Icone: "📘"},
	{Codigo: TipoEnderecoInstagram, Descricao: "Instagram", Icone: "📷"},
	{Codigo: TipoEnderecoLinkedIn, Descricao: "LinkedIn", Icone: "💼"},
	{Codigo: TipoEnderecoTwitter, Descricao: "Twitter/X", Icone: "🐦"},
	{Codigo: TipoEnderecoWhatsApp, Descricao: "WhatsApp", Icone: "💬"},
	{Codigo: TipoEnderecoTelegram, Descricao: "Telegram", Icone: "✈️"},
	{Codigo: TipoEnderecoYouTube, Descricao: "YouTube", Icone: "📺"},
	{Codigo: TipoEnderecoTikTok, Descricao: "TikTok", Icone: "🎵"},
	{Codigo: TipoEnderecoGitHub, Descricao: "GitHub", Icone: "💻"},
	{Codigo: TipoEnderecoOutro, Descricao: "Outro", Icone: "🔗"},
}

// TiposTelefone returns a copy of the phone type enumeration
func TiposTelefone() []TipoInfo {
	out := make([]TipoInfo, len(tiposTelefone))
	copy(out, tiposTelefone)
	return out
}

// TiposEnderecoEletronico returns a copy of the electronic address type enumeration
func TiposEnderecoEletronico() []TipoInfo {
	out := make([]TipoInfo, len(tiposEnderecoEletronico))
	copy(out, tiposEnderecoEletronico)
	return out
}

// DescricaoTipoTelefone returns the label for a phone type code
func DescricaoTipoTelefone(tipo int) string {
	for _, t := range tiposTelefone {
		if t.Codigo == tipo {
			return t.Descricao
		}
	}
	return tipoDesconhecido
}

// DescricaoTipoEnderecoEletronico returns the label for an electronic address type code
func DescricaoTipoEnderecoEletronico(tipo int) string {
	for _, t := range tiposEnderecoEletronico {
		if t.Codigo == tipo {
			return t.Descricao
		}
	}
	return tipoDesconhecido
}

// Telefone is a row of tb_pessoa_telefone. Telefone holds digits only.
type Telefone struct {
	Codigo    int     `json:"codigo"`
	Pessoa    int     `json:"pessoa"`
	Tipo      *int    `json:"tipo"`
	Telefone  *int64  `json:"telefone"`
	Descricao *string `json:"descricao"`
}

// EnderecoEletronico is a row of tb_pessoa_endereco_eletronico
type EnderecoEletronico struct {
	Codigo    int     `json:"codigo"`
	Pessoa    int     `json:"pessoa"`
	Endereco  *string `json:"endereco"`
	Tipo      *int    `json:"tipo"`
	Descricao *string `json:"descricao"`
}

// TelefoneInput is one phone of a create/update payload.
// Valor is accepted as an alias for Telefone.
type TelefoneInput struct {
	Telefone  *string `json:"telefone,omitempty"`
	Valor     *string `json:"valor,omitempty"`
	Tipo      *int    `json:"tipo,omitempty"`
	Descricao *string `json:"descricao,omitempty"`
}

// Numero returns the submitted number, preferring Telefone over Valor
func (t TelefoneInput) Numero() string {
	if t.Telefone != nil && strings.TrimSpace(*t.Telefone) != "" {
		return *t.Telefone
	}
	if t.Valor != nil {
		return *t.Valor
	}
	return ""
}

// EnderecoEletronicoInput is one electronic address of a create/update payload
type EnderecoEletronicoInput struct {
	Endereco  *string `json:"endereco,omitempty"`
	Tipo      *int    `json:"tipo,omitempty"`
	Descricao *string `json:"descricao,omitempty"`
}

// TelefoneDTO is the read model of a phone, with the number formatted for display
type TelefoneDTO struct {
	Codigo        int     `json:"codigo"`
	Telefone      string  `json:"telefone"`
	E164          *string `json:"e164,omitempty"`
	Tipo          *int    `json:"tipo"`
	TipoDescricao string  `json:"tipoDescricao"`
	Descricao     *string `json:"descricao"`
}

// EnderecoEletronicoDTO is the read model of an electronic address
type EnderecoEletronicoDTO struct {
	Codigo        int     `json:"codigo"`
	Endereco      *string `json:"endereco"`
	Tipo          *int    `json:"tipo"`
	TipoDescricao *string `json:"tipoDescricao"`
	Descricao     *string `json:"descricao"`
}
