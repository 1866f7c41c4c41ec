package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prefeitura-rio/app-cadastro/internal/models"
)

func TestTelefoneStore(t *testing.T) {
	db, mock := setupMock(t)
	store := NewTelefoneStore(db)
	numero := int64(47999999999)

	mock.ExpectQuery("INSERT INTO tb_pessoa_telefone").
		WithArgs(1, 1, numero, nil).
		WillReturnRows(sqlmock.NewRows([]string{"codigo"}).AddRow(10))

	codigo, err := store.Create(context.Background(), &models.Telefone{Pessoa: 1, Tipo: intPtr(1), Telefone: &numero})
	require.NoError(t, err)
	assert.Equal(t, 10, codigo)

	mock.ExpectQuery("FROM tb_pessoa_telefone .+ ORDER BY tipo, codigo").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"codigo", "pessoa", "tipo", "telefone", "descricao"}).
			AddRow(10, 1, 1, numero, nil).
			AddRow(11, 1, 2, int64(1123456789), "Casa"))

	telefones, err := store.GetByPessoaID(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, telefones, 2)
	assert.Equal(t, numero, *telefones[0].Telefone)
	assert.Equal(t, "Casa", *telefones[1].Descricao)

	mock.ExpectExec("DELETE FROM tb_pessoa_telefone").WithArgs(1).WillReturnResult(sqlmock.NewResult(0, 2))

	n, err := store.DeleteByPessoaID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnderecoEletronicoStore(t *testing.T) {
	db, mock := setupMock(t)
	store := NewEnderecoEletronicoStore(db)

	mock.ExpectQuery("INSERT INTO tb_pessoa_endereco_eletronico").
		WithArgs(4, "ana@example.com", 1, nil).
		WillReturnRows(sqlmock.NewRows([]string{"codigo"}).AddRow(3))

	_, err := store.Create(context.Background(), &models.EnderecoEletronico{
		Pessoa:   4,
		Endereco: strPtr("ana@example.com"),
		Tipo:     intPtr(models.TipoEnderecoEmail),
	})
	require.NoError(t, err)

	mock.ExpectQuery("FROM tb_pessoa_endereco_eletronico").
		WithArgs(4).
		WillReturnRows(sqlmock.NewRows([]string{"codigo", "pessoa", "endereco", "tipo", "descricao"}))

	enderecos, err := store.GetByPessoaID(context.Background(), 4)
	require.NoError(t, err)
	assert.Empty(t, enderecos)

	assert.NoError(t, mock.ExpectationsWereMet())
}
