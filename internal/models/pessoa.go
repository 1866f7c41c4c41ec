package models

import (
	"time"
)

// Person kinds stored in tb_pessoa.tipo
const (
	TipoPessoaFisica   = "F"
	TipoPessoaJuridica = "J"
)

// Pessoa is the base row shared by individuals and organizations
type Pessoa struct {
	Codigo      int        `json:"codigo"`
	Tipo        string     `json:"tipo"`
	Nome        *string    `json:"nome"`
	Cep         *string    `json:"cep"`
	Estado      *int       `json:"estado"`
	Cidade      *int       `json:"cidade"`
	Bairro      *int       `json:"bairro"`
	Endereco    *int       `json:"endereco"`
	Numero      *string    `json:"numero"`
	Complemento *string    `json:"complemento"`
	Obs         *string    `json:"obs"`
	Cadastro    *time.Time `json:"cadastro"`
}

// PessoaFisica holds the individual-specific columns, keyed by the Pessoa code
type PessoaFisica struct {
	Pessoa          int     `json:"pessoa"`
	Nascimento      *Date   `json:"nascimento"`
	CidadeNasc      *int    `json:"cidadeNasc"`
	UfNasc          *int    `json:"ufNasc"`
	Nacionalidade   *int    `json:"nacionalidade"`
	Sexo            *string `json:"sexo"`
	Cpf             *string `json:"cpf"`
	Identidade      *string `json:"identidade"`
	OrgaoIdentidade *string `json:"orgaoIdentidade"`
	UfIdentidade    *int    `json:"ufIdentidade"`
	EstadoCivil     *int    `json:"estadoCivil"`
	Conjuge         *int    `json:"conjuge"`
	Profissao       *int    `json:"profissao"`
	Ctps            *string `json:"ctps"`
	Pis             *string `json:"pis"`
}

// PessoaJuridica holds the organization-specific columns, keyed by the Pessoa code
type PessoaJuridica struct {
	Pessoa            int     `json:"pessoa"`
	RazaoSocial       *string `json:"razaoSocial"`
	Cnpj              *string `json:"cnpj"`
	InscricaoEstadual *string `json:"inscricaoEstadual"`
	Atividade         *int    `json:"atividade"`
	Homepage          *string `json:"homepage"`
	Representante     *int    `json:"representante"`
}

// EnderecoInput carries the address fields shared by both create payloads.
// Bairro and Endereco are names resolved through get-or-create lookups.
type EnderecoInput struct {
	Cep         *string `json:"cep"`
	Estado      *int    `json:"estado"`
	Cidade      *int    `json:"cidade"`
	Bairro      *string `json:"bairro"`
	Endereco    *string `json:"endereco"`
	Numero      *string `json:"numero"`
	Complemento *string `json:"complemento"`
}

// PessoaFisicaInput is the create/update payload for individuals
type PessoaFisicaInput struct {
	Codigo          int     `json:"codigo"`
	Nome            string  `json:"nome"`
	Cpf             *string `json:"cpf"`
	Identidade      *string `json:"identidade"`
	OrgaoIdentidade *string `json:"orgaoIdentidade"`
	UfIdentidade    *int    `json:"ufIdentidade"`
	Nascimento      *Date   `json:"nascimento" swaggertype:"string" example:"1990-05-10"`
	Sexo            *string `json:"sexo"`
	EstadoCivil     *int    `json:"estadoCivil"`
	Nacionalidade   *int    `json:"nacionalidade"`
	Profissao       *int    `json:"profissao"`
	Ctps            *string `json:"ctps"`
	Pis             *string `json:"pis"`
	CidadeNasc      *int    `json:"cidadeNasc"`
	UfNasc          *int    `json:"ufNasc"`
	Conjuge         *int    `json:"conjuge"`
	EnderecoInput

	Telefones            []TelefoneInput           `json:"telefones"`
	EnderecosEletronicos []EnderecoEletronicoInput `json:"enderecosEletronicos"`

	Obs *string `json:"obs"`
}

// PessoaJuridicaInput is the create/update payload for organizations
type PessoaJuridicaInput struct {
	Codigo            int     `json:"codigo"`
	RazaoSocial       string  `json:"razaoSocial"`
	Nome              string  `json:"nome"`
	Cnpj              *string `json:"cnpj"`
	InscricaoEstadual *string `json:"inscricaoEstadual"`
	Atividade         *int    `json:"atividade"`
	Homepage          *string `json:"homepage"`
	Representante     *int    `json:"representante"`
	EnderecoInput

	Telefones            []TelefoneInput           `json:"telefones"`
	EnderecosEletronicos []EnderecoEletronicoInput `json:"enderecosEletronicos"`

	Obs *string `json:"obs"`
}

// PessoaFisicaDTO is the read model for individuals, with lookup names resolved
type PessoaFisicaDTO struct {
	Codigo               int                     `json:"codigo"`
	Nome                 *string                 `json:"nome"`
	Cpf                  *string                 `json:"cpf"`
	Identidade           *string                 `json:"identidade"`
	OrgaoIdentidade      *string                 `json:"orgaoIdentidade"`
	UfIdentidade         *int                    `json:"ufIdentidade"`
	Nascimento           *Date                   `json:"nascimento" swaggertype:"string" example:"1990-05-10"`
	Sexo                 *string                 `json:"sexo"`
	EstadoCivil          *int                    `json:"estadoCivil"`
	Nacionalidade        *int                    `json:"nacionalidade"`
	Profissao            *int                    `json:"profissao"`
	Ctps                 *string                 `json:"ctps"`
	Pis                  *string                 `json:"pis"`
	CidadeNasc           *int                    `json:"cidadeNasc"`
	UfNasc               *int                    `json:"ufNasc"`
	Conjuge              *int                    `json:"conjuge"`
	Cep                  *string                 `json:"cep"`
	Estado               *int                    `json:"estado"`
	EstadoNome           *string                 `json:"estadoNome"`
	Cidade               *int                    `json:"cidade"`
	CidadeNome           *string                 `json:"cidadeNome"`
	Bairro               *int                    `json:"bairro"`
	BairroNome           *string                 `json:"bairroNome"`
	Endereco             *int                    `json:"endereco"`
	EnderecoNome         *string                 `json:"enderecoNome"`
	Numero               *string                 `json:"numero"`
	Complemento          *string                 `json:"complemento"`
	Telefones            []TelefoneDTO           `json:"telefones"`
	EnderecosEletronicos []EnderecoEletronicoDTO `json:"enderecosEletronicos"`
	Obs                  *string                 `json:"obs"`
	Cadastro             *time.Time              `json:"cadastro"`
}

// PessoaJuridicaDTO is the read model for organizations
type PessoaJuridicaDTO struct {
	Codigo               int                     `json:"codigo"`
	RazaoSocial          *string                 `json:"razaoSocial"`
	Nome                 *string                 `json:"nome"`
	Cnpj                 *string                 `json:"cnpj"`
	CnpjFormatado        *string                 `json:"cnpjFormatado,omitempty"`
	InscricaoEstadual    *string                 `json:"inscricaoEstadual"`
	Atividade            *int                    `json:"atividade"`
	AtividadeDescricao   *string                 `json:"atividadeDescricao"`
	Homepage             *string                 `json:"homepage"`
	Representante        *int                    `json:"representante"`
	RepresentanteNome    *string                 `json:"representanteNome"`
	Cep                  *string                 `json:"cep"`
	Estado               *int                    `json:"estado"`
	EstadoNome           *string                 `json:"estadoNome"`
	Cidade               *int                    `json:"cidade"`
	CidadeNome           *string                 `json:"cidadeNome"`
	Bairro               *int                    `json:"bairro"`
	BairroNome           *string                 `json:"bairroNome"`
	Endereco             *int                    `json:"endereco"`
	EnderecoNome         *string                 `json:"enderecoNome"`
	Numero               *string                 `json:"numero"`
	Complemento          *string                 `json:"complemento"`
	Telefones            []TelefoneDTO           `json:"telefones"`
	EnderecosEletronicos []EnderecoEletronicoDTO `json:"enderecosEletronicos"`
	Obs                  *string                 `json:"obs"`
	Cadastro             *time.Time              `json:"cadastro"`
}

// CreatedResponse is returned by the create endpoints
type CreatedResponse struct {
	Codigo  int    `json:"codigo"`
	Message string `json:"message"`
}
