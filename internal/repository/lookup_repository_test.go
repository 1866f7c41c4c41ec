package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupStore_GetOrCreateBairro(t *testing.T) {
	t.Run("existing name returns its codigo", func(t *testing.T) {
		db, mock := setupMock(t)
		store := NewLookupStore(db)

		mock.ExpectQuery("SELECT codigo FROM tb_bairro WHERE nome = \\$1").
			WithArgs("Centro").
			WillReturnRows(sqlmock.NewRows([]string{"codigo"}).AddRow(12))

		codigo, err := store.GetOrCreateBairro(context.Background(), "Centro")

		require.NoError(t, err)
		assert.Equal(t, 12, codigo)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing name is inserted", func(t *testing.T) {
		db, mock := setupMock(t)
		store := NewLookupStore(db)

		mock.ExpectQuery("SELECT codigo FROM tb_bairro").WithArgs("Lapa").WillReturnError(sql.ErrNoRows)
		mock.ExpectQuery("INSERT INTO tb_bairro \\(nome\\)").
			WithArgs("Lapa").
			WillReturnRows(sqlmock.NewRows([]string{"codigo"}).AddRow(13))

		codigo, err := store.GetOrCreateBairro(context.Background(), "Lapa")

		require.NoError(t, err)
		assert.Equal(t, 13, codigo)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLookupStore_GetOrCreateEndereco(t *testing.T) {
	db, mock := setupMock(t)
	store := NewLookupStore(db)

	mock.ExpectQuery("SELECT codigo FROM tb_endereco").WithArgs("Rua A").WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery("INSERT INTO tb_endereco").
		WithArgs("Rua A").
		WillReturnRows(sqlmock.NewRows([]string{"codigo"}).AddRow(1))

	codigo, err := store.GetOrCreateEndereco(context.Background(), "Rua A")

	require.NoError(t, err)
	assert.Equal(t, 1, codigo)
}

func TestLookupStore_ListEstados(t *testing.T) {
	db, mock := setupMock(t)
	store := NewLookupStore(db)

	mock.ExpectQuery("SELECT codigo, sigla, nome FROM tb_estado ORDER BY nome").
		WillReturnRows(sqlmock.NewRows([]string{"codigo", "sigla", "nome"}).
			AddRow(1, "AC", "Acre").
			AddRow(19, "RJ", "Rio de Janeiro"))

	estados, err := store.ListEstados(context.Background())

	require.NoError(t, err)
	require.Len(t, estados, 2)
	assert.Equal(t, "RJ", *estados[1].Sigla)
}

func TestLookupStore_GetCep(t *testing.T) {
	db, mock := setupMock(t)
	store := NewLookupStore(db)

	mock.ExpectQuery("FROM tb_cep WHERE cep = \\$1").
		WithArgs("20040020").
		WillReturnRows(sqlmock.NewRows([]string{"cep", "complemento", "endereco", "bairro", "cidade", "estado"}).
			AddRow("20040020", nil, 1, 2, 3, 19))

	cep, err := store.GetCep(context.Background(), "20040020")
	require.NoError(t, err)
	require.NotNil(t, cep)
	assert.Equal(t, 19, *cep.Estado)

	mock.ExpectQuery("FROM tb_cep").WithArgs("00000000").WillReturnError(sql.ErrNoRows)

	cep, err = store.GetCep(context.Background(), "00000000")
	assert.NoError(t, err)
	assert.Nil(t, cep)
}

func TestLookupStore_ListAtividadesPorSetor(t *testing.T) {
	db, mock := setupMock(t)
	store := NewLookupStore(db)

	mock.ExpectQuery("FROM tb_atividade_economica WHERE setor = \\$1 ORDER BY descricao").
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"codigo", "setor", "subsetor", "atividade", "descricao"}).
			AddRow(5, 2, nil, "4711-3", "Comércio varejista"))

	atividades, err := store.ListAtividadesPorSetor(context.Background(), 2)

	require.NoError(t, err)
	require.Len(t, atividades, 1)
	assert.Nil(t, atividades[0].Subsetor)
	assert.Equal(t, "Comércio varejista", *atividades[0].Descricao)
}
