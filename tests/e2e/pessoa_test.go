package e2e_test

import (
	"fmt"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prefeitura-rio/app-cadastro/internal/models"
	"github.com/prefeitura-rio/app-cadastro/tests/fixtures"
)

// TestPessoaWorkflow creates an individual and an organization it
// represents, then reads both back. The records are left in place since
// deleting requires an administrator.
func TestPessoaWorkflow(t *testing.T) {
	client := authenticatedClient(t)
	suffix := strconv.FormatInt(time.Now().UnixNano(), 36)

	var fisica int
	t.Run("CreatePessoaFisica", func(t *testing.T) {
		resp, err := client.Post("/api/pessoafisica", fixtures.NewPessoaFisicaInput(suffix))
		require.NoError(t, err)
		defer resp.Body.Close()

		fixtures.AssertStatusCode(t, resp, http.StatusCreated)
		var created models.CreatedResponse
		fixtures.DecodeJSON(t, resp, &created)
		require.NotZero(t, created.Codigo)
		assert.Equal(t, fmt.Sprintf("/api/pessoafisica/%d", created.Codigo), resp.Header.Get("Location"))
		fisica = created.Codigo
	})
	require.NotZero(t, fisica, "individual was not created")

	t.Run("GetPessoaFisica", func(t *testing.T) {
		resp, err := client.Get(fmt.Sprintf("/api/pessoafisica/%d", fisica))
		require.NoError(t, err)
		defer resp.Body.Close()

		fixtures.AssertStatusCode(t, resp, http.StatusOK)
		var dto models.PessoaFisicaDTO
		fixtures.DecodeJSON(t, resp, &dto)
		require.NotNil(t, dto.BairroNome)
		assert.Equal(t, "Centro", *dto.BairroNome)
		assert.Len(t, dto.Telefones, 1)
		assert.Len(t, dto.EnderecosEletronicos, 1)
	})

	t.Run("CreatePessoaJuridica", func(t *testing.T) {
		input := fixtures.NewPessoaJuridicaInput(suffix)
		input.Representante = &fisica

		resp, err := client.Post("/api/pessoajuridica", input)
		require.NoError(t, err)
		defer resp.Body.Close()

		fixtures.AssertStatusCode(t, resp, http.StatusCreated)
	})

	t.Run("Search", func(t *testing.T) {
		resp, err := client.Get("/api/pessoa/search?termo=" + suffix)
		require.NoError(t, err)
		defer resp.Body.Close()

		fixtures.AssertStatusCode(t, resp, http.StatusOK)
		var pessoas []models.Pessoa
		fixtures.DecodeJSON(t, resp, &pessoas)
		assert.Len(t, pessoas, 2)
	})

	t.Run("RejectsInvalidCNPJ", func(t *testing.T) {
		input := fixtures.NewPessoaJuridicaInput(suffix + "-invalid")
		cnpj := "11.222.333/0001-82"
		input.Cnpj = &cnpj

		resp, err := client.Post("/api/pessoajuridica", input)
		require.NoError(t, err)
		defer resp.Body.Close()

		fixtures.AssertStatusCode(t, resp, http.StatusBadRequest)
	})
}
