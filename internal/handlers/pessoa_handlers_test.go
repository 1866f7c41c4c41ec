package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/prefeitura-rio/app-cadastro/internal/middleware"
	"github.com/prefeitura-rio/app-cadastro/internal/models"
	"github.com/prefeitura-rio/app-cadastro/internal/services"
)

func TestListPessoas(t *testing.T) {
	t.Run("requires a token", func(t *testing.T) {
		deps := setupHandlersTest(t)

		w := deps.do(http.MethodGet, "/api/pessoa", "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("guests can read", func(t *testing.T) {
		deps := setupHandlersTest(t)
		deps.pessoas.EXPECT().GetAll(gomock.Any()).Return([]models.Pessoa{
			{Codigo: 2, Tipo: models.TipoPessoaJuridica, Nome: strPtr("Padaria Central")},
			{Codigo: 1, Tipo: models.TipoPessoaFisica, Nome: strPtr("Maria Silva")},
		}, nil)

		w := deps.do(http.MethodGet, "/api/pessoa", "", deps.guestToken(t))
		require.Equal(t, http.StatusOK, w.Code)

		var pessoas []models.Pessoa
		decodeInto(t, w, &pessoas)
		require.Len(t, pessoas, 2)
		assert.Equal(t, 2, pessoas[0].Codigo)
	})

	t.Run("repository failure", func(t *testing.T) {
		deps := setupHandlersTest(t)
		deps.pessoas.EXPECT().GetAll(gomock.Any()).Return(nil, errors.New("boom"))

		w := deps.do(http.MethodGet, "/api/pessoa", "", deps.userToken(t))
		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, msgErroListarPessoas, decodeMap(t, w)["message"])
	})
}

func TestGetPessoa(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		setup      func(d *handlerDeps)
		wantStatus int
		wantMsg    string
	}{
		{
			name: "found",
			path: "/api/pessoa/7",
			setup: func(d *handlerDeps) {
				d.pessoas.EXPECT().GetByID(gomock.Any(), 7).
					Return(&models.Pessoa{Codigo: 7, Tipo: models.TipoPessoaFisica, Nome: strPtr("João")}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "not found",
			path: "/api/pessoa/8",
			setup: func(d *handlerDeps) {
				d.pessoas.EXPECT().GetByID(gomock.Any(), 8).Return(nil, nil)
			},
			wantStatus: http.StatusNotFound,
			wantMsg:    MsgPessoaNaoEncontrada,
		},
		{
			name:       "non numeric code",
			path:       "/api/pessoa/abc",
			setup:      func(d *handlerDeps) {},
			wantStatus: http.StatusBadRequest,
			wantMsg:    msgCodigoInvalido,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := setupHandlersTest(t)
			tt.setup(deps)

			w := deps.do(http.MethodGet, tt.path, "", deps.userToken(t))
			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, decodeMap(t, w)["message"])
			}
		})
	}
}

func TestSearchPessoas(t *testing.T) {
	t.Run("blank term", func(t *testing.T) {
		deps := setupHandlersTest(t)

		w := deps.do(http.MethodGet, "/api/pessoa/search?termo=%20%20", "", deps.userToken(t))
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, services.ErrTermoVazio.Message, decodeMap(t, w)["message"])
	})

	t.Run("term is trimmed", func(t *testing.T) {
		deps := setupHandlersTest(t)
		deps.pessoas.EXPECT().Search(gomock.Any(), "silva").
			Return([]models.Pessoa{{Codigo: 1, Tipo: models.TipoPessoaFisica, Nome: strPtr("Maria Silva")}}, nil)

		w := deps.do(http.MethodGet, "/api/pessoa/search?termo=%20silva%20", "", deps.guestToken(t))
		require.Equal(t, http.StatusOK, w.Code)

		var pessoas []models.Pessoa
		decodeInto(t, w, &pessoas)
		assert.Len(t, pessoas, 1)
	})
}

func TestDeletePessoa(t *testing.T) {
	t.Run("administrators only", func(t *testing.T) {
		deps := setupHandlersTest(t)

		w := deps.do(http.MethodDelete, "/api/pessoa/7", "", deps.userToken(t))
		require.Equal(t, http.StatusForbidden, w.Code)

		body := decodeMap(t, w)
		assert.Equal(t, middleware.MsgAcessoNegado, body["message"])
		assert.Equal(t, []interface{}{"Administrador"}, body["tipoRequerido"])
	})

	t.Run("removes contacts and subtype row", func(t *testing.T) {
		deps := setupHandlersTest(t)
		deps.expectTx(true)
		gomock.InOrder(
			deps.pessoas.EXPECT().GetByID(gomock.Any(), 7).
				Return(&models.Pessoa{Codigo: 7, Tipo: models.TipoPessoaJuridica}, nil),
			deps.enderecos.EXPECT().DeleteByPessoaID(gomock.Any(), 7).Return(int64(1), nil),
			deps.telefones.EXPECT().DeleteByPessoaID(gomock.Any(), 7).Return(int64(2), nil),
			deps.juridicas.EXPECT().Delete(gomock.Any(), 7).Return(true, nil),
			deps.pessoas.EXPECT().Delete(gomock.Any(), 7).Return(true, nil),
		)

		w := deps.do(http.MethodDelete, "/api/pessoa/7", "", deps.adminToken(t))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, MsgPessoaExcluida, decodeMap(t, w)["message"])
	})

	t.Run("not found rolls back", func(t *testing.T) {
		deps := setupHandlersTest(t)
		deps.expectTx(false)
		deps.pessoas.EXPECT().GetByID(gomock.Any(), 9).Return(nil, nil)

		w := deps.do(http.MethodDelete, "/api/pessoa/9", "", deps.adminToken(t))
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, MsgPessoaNaoEncontrada, decodeMap(t, w)["message"])
	})

	t.Run("failure rolls back", func(t *testing.T) {
		deps := setupHandlersTest(t)
		deps.expectTx(false)
		deps.pessoas.EXPECT().GetByID(gomock.Any(), 7).
			Return(&models.Pessoa{Codigo: 7, Tipo: models.TipoPessoaFisica}, nil)
		deps.enderecos.EXPECT().DeleteByPessoaID(gomock.Any(), 7).Return(int64(0), errors.New("lock timeout"))

		w := deps.do(http.MethodDelete, "/api/pessoa/7", "", deps.adminToken(t))
		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, msgErroExcluirPessoa, decodeMap(t, w)["message"])
	})
}
