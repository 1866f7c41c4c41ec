package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/prefeitura-rio/app-cadastro/internal/models"
)

func TestLookupTablesArePublic(t *testing.T) {
	deps := setupHandlersTest(t)
	deps.lookups.EXPECT().ListEstados(gomock.Any()).Return([]models.Estado{
		{Codigo: 19, Sigla: strPtr("RJ"), Nome: "Rio de Janeiro"},
		{Codigo: 25, Sigla: strPtr("SP"), Nome: "São Paulo"},
	}, nil)

	w := deps.do(http.MethodGet, "/api/estado", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var estados []models.Estado
	decodeInto(t, w, &estados)
	require.Len(t, estados, 2)
	assert.Equal(t, "RJ", *estados[0].Sigla)
}

func TestGetLookupRecord(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		setup      func(d *handlerDeps)
		wantStatus int
		wantMsg    string
	}{
		{
			name: "estado found",
			path: "/api/estado/19",
			setup: func(d *handlerDeps) {
				d.lookups.EXPECT().GetEstado(gomock.Any(), 19).
					Return(&models.Estado{Codigo: 19, Nome: "Rio de Janeiro"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "cidade missing",
			path: "/api/cidade/999",
			setup: func(d *handlerDeps) {
				d.lookups.EXPECT().GetCidade(gomock.Any(), 999).Return(nil, nil)
			},
			wantStatus: http.StatusNotFound,
			wantMsg:    MsgRegistroNaoEncontrado,
		},
		{
			name: "cbo by textual code",
			path: "/api/cbo/2124-05",
			setup: func(d *handlerDeps) {
				d.lookups.EXPECT().GetCBO(gomock.Any(), "2124-05").
					Return(&models.CBO{Codigo: strPtr("2124-05"), Descricao: strPtr("Analista de sistemas")}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "atividade repository failure",
			path: "/api/atividadeeconomica/3",
			setup: func(d *handlerDeps) {
				d.lookups.EXPECT().GetAtividade(gomock.Any(), 3).Return(nil, errors.New("timeout"))
			},
			wantStatus: http.StatusInternalServerError,
			wantMsg:    msgErroConsulta,
		},
		{
			name:       "non numeric nacionalidade",
			path:       "/api/nacionalidade/br",
			setup:      func(d *handlerDeps) {},
			wantStatus: http.StatusBadRequest,
			wantMsg:    msgCodigoInvalido,
		},
		{
			name: "cidades by estado route is not shadowed by the id route",
			path: "/api/cidade/estado/19",
			setup: func(d *handlerDeps) {
				d.lookups.EXPECT().ListCidades(gomock.Any()).Return([]models.Cidade{{Codigo: 1, Nome: strPtr("Rio de Janeiro")}}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "atividades by setor",
			path: "/api/atividadeeconomica/setor/2",
			setup: func(d *handlerDeps) {
				d.lookups.EXPECT().ListAtividadesPorSetor(gomock.Any(), 2).Return([]models.AtividadeEconomica{}, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := setupHandlersTest(t)
			tt.setup(deps)

			w := deps.do(http.MethodGet, tt.path, "", "")
			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, decodeMap(t, w)["message"])
			}
		})
	}
}

func TestGetCep(t *testing.T) {
	cep := models.Cep{Cep: "20040020", Bairro: intPtr(30), Cidade: intPtr(1), Estado: intPtr(19)}
	payload, err := json.Marshal(cep)
	require.NoError(t, err)

	t.Run("served from cache", func(t *testing.T) {
		deps := setupHandlersTest(t)
		deps.redismock.ExpectGet("cep:20040020").SetVal(string(payload))

		w := deps.do(http.MethodGet, "/api/cep/20040-020", "", "")
		require.Equal(t, http.StatusOK, w.Code)

		var got models.Cep
		decodeInto(t, w, &got)
		assert.Equal(t, cep, got)
	})

	t.Run("miss is loaded and cached", func(t *testing.T) {
		deps := setupHandlersTest(t)
		deps.redismock.ExpectGet("cep:20040020").RedisNil()
		deps.lookups.EXPECT().GetCep(gomock.Any(), "20040020").Return(&cep, nil)
		deps.redismock.ExpectSet("cep:20040020", string(payload), time.Hour).SetVal("OK")

		w := deps.do(http.MethodGet, "/api/cep/20040020", "", "")
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown cep", func(t *testing.T) {
		deps := setupHandlersTest(t)
		deps.redismock.ExpectGet("cep:99999999").RedisNil()
		deps.lookups.EXPECT().GetCep(gomock.Any(), "99999999").Return(nil, nil)

		w := deps.do(http.MethodGet, "/api/cep/99999-999", "", "")
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, MsgCepNaoEncontrado, decodeMap(t, w)["message"])
	})
}

func TestTipoEnumerations(t *testing.T) {
	t.Run("require a token", func(t *testing.T) {
		deps := setupHandlersTest(t)

		w := deps.do(http.MethodGet, "/api/tipotelefone", "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("phone types", func(t *testing.T) {
		deps := setupHandlersTest(t)

		w := deps.do(http.MethodGet, "/api/tipotelefone", "", deps.guestToken(t))
		require.Equal(t, http.StatusOK, w.Code)

		var tipos []models.TipoInfo
		decodeInto(t, w, &tipos)
		assert.Equal(t, models.TiposTelefone(), tipos)
	})

	t.Run("electronic address types", func(t *testing.T) {
		deps := setupHandlersTest(t)

		w := deps.do(http.MethodGet, "/api/tipoenderecoeletronico", "", deps.userToken(t))
		require.Equal(t, http.StatusOK, w.Code)

		var tipos []models.TipoInfo
		decodeInto(t, w, &tipos)
		require.NotEmpty(t, tipos)
		assert.Equal(t, models.TipoEnderecoEmail, tipos[0].Codigo)
	})
}
