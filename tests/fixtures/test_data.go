package fixtures

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"

	"github.com/prefeitura-rio/app-cadastro/internal/models"
	"github.com/prefeitura-rio/app-cadastro/internal/utils"
	"github.com/prefeitura-rio/app-cadastro/tests/config"
)

// GetAuthToken signs in through POST /api/auth/login
func GetAuthToken(cfg *config.TestConfig) (string, error) {
	client := NewAPIClient(cfg, "")
	resp, err := client.Post("/api/auth/login", models.LoginRequest{
		Usuario: cfg.Username,
		Senha:   cfg.Password,
	})
	if err != nil {
		return "", fmt.Errorf("failed to request token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("login failed with status %d: %s", resp.StatusCode, string(body))
	}

	var loginResp models.LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&loginResp); err != nil {
		return "", fmt.Errorf("failed to decode login response: %w", err)
	}
	if loginResp.Token == nil {
		return "", fmt.Errorf("login response carries no token: %s", loginResp.Message)
	}

	return *loginResp.Token, nil
}

// APIClient wraps HTTP client with common test functionality
type APIClient struct {
	BaseURL    string
	HTTPClient *http.Client
	Token      string
}

// NewAPIClient creates a new API client for testing
func NewAPIClient(cfg *config.TestConfig, token string) *APIClient {
	return &APIClient{
		BaseURL: cfg.BaseURL,
		HTTPClient: &http.Client{
			Timeout: time.Duration(cfg.APICallTimeout) * time.Second,
		},
		Token: token,
	}
}

// Get performs authenticated GET request
func (c *APIClient) Get(path string) (*http.Response, error) {
	return c.do(http.MethodGet, path, nil)
}

// Post performs authenticated POST request
func (c *APIClient) Post(path string, body interface{}) (*http.Response, error) {
	return c.do(http.MethodPost, path, body)
}

// Put performs authenticated PUT request
func (c *APIClient) Put(path string, body interface{}) (*http.Response, error) {
	return c.do(http.MethodPut, path, body)
}

// Delete performs authenticated DELETE request
func (c *APIClient) Delete(path string) (*http.Response, error) {
	return c.do(http.MethodDelete, path, nil)
}

func (c *APIClient) do(method, path string, body interface{}) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, reader)
	if err != nil {
		return nil, err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	return c.HTTPClient.Do(req)
}

// NewPessoaFisicaInput returns an individual payload with a phone and an
// e-mail. The name carries a suffix so repeated runs stay searchable.
func NewPessoaFisicaInput(suffix string) models.PessoaFisicaInput {
	bairro := "Centro"
	cep := "20040-020"
	estado := 19
	telefone := "(21) 98765-4321"
	email := fmt.Sprintf("smoke.%s@example.com", suffix)

	return models.PessoaFisicaInput{
		Nome:                 "Smoke Test " + suffix,
		EnderecoInput:        models.EnderecoInput{Cep: &cep, Estado: &estado, Bairro: &bairro},
		Telefones:            []models.TelefoneInput{{Telefone: &telefone}},
		EnderecosEletronicos: []models.EnderecoEletronicoInput{{Endereco: &email}},
	}
}

const cnpjAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// RandomCNPJ returns a valid alphanumeric CNPJ, unformatted
func RandomCNPJ() string {
	base := make([]byte, 12)
	for i := range base {
		base[i] = cnpjAlphabet[rand.Intn(len(cnpjAlphabet))]
	}
	digitos, _ := utils.CalcularDigitosCNPJ(string(base))
	return string(base) + digitos
}

// NewPessoaJuridicaInput returns an organization payload with a fresh CNPJ
func NewPessoaJuridicaInput(suffix string) models.PessoaJuridicaInput {
	cnpj := utils.FormatarCNPJ(RandomCNPJ())
	return models.PessoaJuridicaInput{
		Nome:        "Smoke Test " + suffix,
		RazaoSocial: "Smoke Test " + suffix + " Ltda",
		Cnpj:        &cnpj,
	}
}
