package models

// Estado represents a Brazilian state
type Estado struct {
	Codigo int     `json:"codigo"`
	Sigla  *string `json:"sigla"`
	Nome   string  `json:"nome"`
}

// Cidade represents a city
type Cidade struct {
	Codigo int     `json:"codigo"`
	Nome   *string `json:"nome"`
}

// Bairro represents a neighborhood, created on demand by name
type Bairro struct {
	Codigo int     `json:"codigo"`
	Nome   *string `json:"nome"`
}

// Endereco represents a street, created on demand by name
type Endereco struct {
	Codigo int     `json:"codigo"`
	Nome   *string `json:"nome"`
}

// Cep is a postal code record pointing at the other address lookups
type Cep struct {
	Cep         string  `json:"cep"`
	Complemento *string `json:"complemento"`
	Endereco    *int    `json:"endereco"`
	Bairro      *int    `json:"bairro"`
	Cidade      *int    `json:"cidade"`
	Estado      *int    `json:"estado"`
}

// EstadoCivil represents a marital status
type EstadoCivil struct {
	Codigo    int     `json:"codigo"`
	Descricao *string `json:"descricao"`
}

// Nacionalidade represents a country of nationality
type Nacionalidade struct {
	Codigo  int     `json:"codigo"`
	Pais    *string `json:"pais"`
	Capital *string `json:"capital"`
	Moeda   *string `json:"moeda"`
	Idioma  *string `json:"idioma"`
}

// CBO is an entry of the Brazilian occupation classification
type CBO struct {
	Codigo    *string `json:"codigo"`
	Descricao *string `json:"descricao"`
}

// AtividadeEconomica represents an economic activity classification
type AtividadeEconomica struct {
	Codigo    int     `json:"codigo"`
	Setor     *int    `json:"setor"`
	Subsetor  *int    `json:"subsetor"`
	Atividade *string `json:"atividade"`
	Descricao *string `json:"descricao"`
}
