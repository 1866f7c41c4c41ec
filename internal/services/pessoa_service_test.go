package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/prefeitura-rio/app-cadastro/internal/models"
)

func TestPessoaService_GetByID(t *testing.T) {
	deps := setupServiceTest(t)
	service := NewPessoaService(deps.tx, deps.repos, deps.logger)
	ctx := context.Background()

	deps.pessoas.EXPECT().GetByID(gomock.Any(), 1).Return(&models.Pessoa{Codigo: 1, Tipo: models.TipoPessoaFisica, Nome: strPtr("Ana")}, nil)
	deps.pessoas.EXPECT().GetByID(gomock.Any(), 2).Return(nil, nil)
	deps.pessoas.EXPECT().GetByID(gomock.Any(), 3).Return(nil, errors.New("connection reset"))

	pessoa, err := service.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Ana", *pessoa.Nome)

	_, err = service.GetByID(ctx, 2)
	assert.ErrorIs(t, err, models.ErrPessoaNaoEncontrada)

	_, err = service.GetByID(ctx, 3)
	require.Error(t, err)
	assert.NotErrorIs(t, err, models.ErrPessoaNaoEncontrada)
	assert.Contains(t, err.Error(), "get pessoa")
}

func TestPessoaService_Search(t *testing.T) {
	deps := setupServiceTest(t)
	service := NewPessoaService(deps.tx, deps.repos, deps.logger)
	ctx := context.Background()

	t.Run("blank term", func(t *testing.T) {
		_, err := service.Search(ctx, "   ")
		assert.ErrorIs(t, err, ErrTermoVazio)
	})

	t.Run("term is trimmed", func(t *testing.T) {
		deps.pessoas.EXPECT().Search(gomock.Any(), "silva").Return([]models.Pessoa{{Codigo: 4}}, nil)

		pessoas, err := service.Search(ctx, "  silva ")
		require.NoError(t, err)
		assert.Len(t, pessoas, 1)
	})
}

func TestPessoaService_Delete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		tipo  string
		setup func(d *serviceDeps)
	}{
		{
			name: "individual",
			tipo: models.TipoPessoaFisica,
			setup: func(d *serviceDeps) {
				d.fisicas.EXPECT().Delete(gomock.Any(), 10).Return(true, nil)
			},
		},
		{
			name: "organization",
			tipo: models.TipoPessoaJuridica,
			setup: func(d *serviceDeps) {
				d.juridicas.EXPECT().Delete(gomock.Any(), 10).Return(true, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := setupServiceTest(t)
			service := NewPessoaService(deps.tx, deps.repos, deps.logger)
			expectTx(t, deps.sqlMock, true)

			gomock.InOrder(
				deps.pessoas.EXPECT().GetByID(gomock.Any(), 10).Return(&models.Pessoa{Codigo: 10, Tipo: tt.tipo}, nil),
				deps.enderecos.EXPECT().DeleteByPessoaID(gomock.Any(), 10).Return(int64(1), nil),
				deps.telefones.EXPECT().DeleteByPessoaID(gomock.Any(), 10).Return(int64(2), nil),
			)
			tt.setup(deps)
			deps.pessoas.EXPECT().Delete(gomock.Any(), 10).Return(true, nil)

			require.NoError(t, service.Delete(ctx, 10))
		})
	}
}

func TestPessoaService_Delete_NotFound(t *testing.T) {
	deps := setupServiceTest(t)
	service := NewPessoaService(deps.tx, deps.repos, deps.logger)
	expectTx(t, deps.sqlMock, false)

	deps.pessoas.EXPECT().GetByID(gomock.Any(), 99).Return(nil, nil)

	err := service.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, models.ErrPessoaNaoEncontrada)
}

func TestPessoaService_Delete_RollsBackOnFailure(t *testing.T) {
	deps := setupServiceTest(t)
	service := NewPessoaService(deps.tx, deps.repos, deps.logger)
	expectTx(t, deps.sqlMock, false)

	deps.pessoas.EXPECT().GetByID(gomock.Any(), 10).Return(&models.Pessoa{Codigo: 10, Tipo: models.TipoPessoaFisica}, nil)
	deps.enderecos.EXPECT().DeleteByPessoaID(gomock.Any(), 10).Return(int64(0), nil)
	deps.telefones.EXPECT().DeleteByPessoaID(gomock.Any(), 10).Return(int64(0), errors.New("lock timeout"))

	err := service.Delete(context.Background(), 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delete pessoa")
	assert.Contains(t, err.Error(), "lock timeout")
}

func TestPessoaService_Delete_RowVanished(t *testing.T) {
	deps := setupServiceTest(t)
	service := NewPessoaService(deps.tx, deps.repos, deps.logger)
	expectTx(t, deps.sqlMock, false)

	deps.pessoas.EXPECT().GetByID(gomock.Any(), 10).Return(&models.Pessoa{Codigo: 10, Tipo: models.TipoPessoaJuridica}, nil)
	deps.enderecos.EXPECT().DeleteByPessoaID(gomock.Any(), 10).Return(int64(0), nil)
	deps.telefones.EXPECT().DeleteByPessoaID(gomock.Any(), 10).Return(int64(0), nil)
	deps.juridicas.EXPECT().Delete(gomock.Any(), 10).Return(false, nil)
	deps.pessoas.EXPECT().Delete(gomock.Any(), 10).Return(false, nil)

	err := service.Delete(context.Background(), 10)
	assert.ErrorIs(t, err, models.ErrPessoaNaoEncontrada)
}
