package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prefeitura-rio/app-cadastro/internal/models"
)

func TestUsuarioStore_GetByUsuario(t *testing.T) {
	db, mock := setupMock(t)
	store := NewUsuarioStore(db)

	mock.ExpectQuery("FROM tb_usuario WHERE usuario = \\$1").
		WithArgs("admin").
		WillReturnRows(sqlmock.NewRows([]string{"codigo", "usuario", "senha", "tipo", "pessoa", "cadastro"}).
			AddRow(1, "admin", "$2a$12$hash", 1, nil, time.Now()))

	u, err := store.GetByUsuario(context.Background(), "admin")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "$2a$12$hash", u.Senha)
	assert.Equal(t, models.TipoAdministrador, *u.Tipo)
	assert.Nil(t, u.Pessoa)

	mock.ExpectQuery("FROM tb_usuario WHERE usuario").WithArgs("ghost").WillReturnError(sql.ErrNoRows)

	u, err = store.GetByUsuario(context.Background(), "ghost")
	assert.NoError(t, err)
	assert.Nil(t, u)
}

func TestUsuarioStore_CreateAndAlterarSenha(t *testing.T) {
	db, mock := setupMock(t)
	store := NewUsuarioStore(db)
	tipo := models.TipoUsuario

	mock.ExpectQuery("INSERT INTO tb_usuario").
		WithArgs("joao", "hash", 2, nil).
		WillReturnRows(sqlmock.NewRows([]string{"codigo", "cadastro"}).AddRow(9, time.Now()))

	codigo, err := store.Create(context.Background(), &models.Usuario{Usuario: "joao", Senha: "hash", Tipo: &tipo})
	require.NoError(t, err)
	assert.Equal(t, 9, codigo)

	mock.ExpectExec("UPDATE tb_usuario SET senha").WithArgs(9, "novo").WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := store.AlterarSenha(context.Background(), 9, "novo")
	require.NoError(t, err)
	assert.True(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUsuarioStore_GetAllOmitsHashes(t *testing.T) {
	db, mock := setupMock(t)
	store := NewUsuarioStore(db)

	mock.ExpectQuery("SELECT codigo, usuario, tipo, pessoa, cadastro FROM tb_usuario ORDER BY cadastro DESC").
		WillReturnRows(sqlmock.NewRows([]string{"codigo", "usuario", "tipo", "pessoa", "cadastro"}).
			AddRow(2, "maria", 2, 5, time.Now()).
			AddRow(1, "admin", 1, nil, time.Now()))

	usuarios, err := store.GetAll(context.Background())

	require.NoError(t, err)
	require.Len(t, usuarios, 2)
	assert.Empty(t, usuarios[0].Senha)
	assert.Equal(t, 5, *usuarios[0].Pessoa)
}
