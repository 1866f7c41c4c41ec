package services

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/prefeitura-rio/app-cadastro/internal/logging"
	"github.com/prefeitura-rio/app-cadastro/internal/models"
	"github.com/prefeitura-rio/app-cadastro/internal/repository"
	"github.com/prefeitura-rio/app-cadastro/internal/utils"
)

// ErrTermoVazio is returned by Search for a blank term
var ErrTermoVazio = models.NewBusinessError("Termo de busca não pode ser vazio")

// PessoaService handles the kind-agnostic person operations
type PessoaService struct {
	tx     repository.Transactor
	repos  Repositories
	logger *logging.SafeLogger
}

// NewPessoaService creates a new PessoaService instance
func NewPessoaService(tx repository.Transactor, repos Repositories, logger *logging.SafeLogger) *PessoaService {
	return &PessoaService{tx: tx, repos: repos, logger: logger}
}

// GetAll lists every person, newest first
func (s *PessoaService) GetAll(ctx context.Context) ([]models.Pessoa, error) {
	ctx, span := utils.TraceDatabaseFind(ctx, "tb_pessoa", "all")
	defer span.End()

	pessoas, err := s.repos.Pessoas.GetAll(ctx)
	if err != nil {
		utils.RecordErrorInSpan(span, err, nil)
		return nil, wrapErr("list pessoas", err)
	}
	return pessoas, nil
}

// GetByID returns models.ErrPessoaNaoEncontrada when the person does not exist
func (s *PessoaService) GetByID(ctx context.Context, codigo int) (*models.Pessoa, error) {
	ctx, span := utils.TraceDatabaseFind(ctx, "tb_pessoa", "codigo")
	defer span.End()

	pessoa, err := s.repos.Pessoas.GetByID(ctx, codigo)
	if err != nil {
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"codigo": codigo})
		return nil, wrapErr("get pessoa", err)
	}
	if pessoa == nil {
		return nil, models.ErrPessoaNaoEncontrada
	}
	return pessoa, nil
}

// Search matches termo against name, CPF and CNPJ
func (s *PessoaService) Search(ctx context.Context, termo string) ([]models.Pessoa, error) {
	termo = strings.TrimSpace(termo)
	if termo == "" {
		return nil, ErrTermoVazio
	}

	ctx, span := utils.TraceDatabaseFind(ctx, "tb_pessoa", "search")
	defer span.End()

	pessoas, err := s.repos.Pessoas.Search(ctx, termo)
	if err != nil {
		utils.RecordErrorInSpan(span, err, nil)
		return nil, wrapErr("search pessoas", err)
	}
	return pessoas, nil
}

// Delete removes a person with its contacts and subtype row in one transaction
func (s *PessoaService) Delete(ctx context.Context, codigo int) error {
	ctx, span := utils.TraceDatabaseTransaction(ctx, "delete_pessoa")
	defer span.End()

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		pessoa, err := s.repos.Pessoas.GetByID(ctx, codigo)
		if err != nil {
			return err
		}
		if pessoa == nil {
			return models.ErrPessoaNaoEncontrada
		}

		if err := s.repos.deleteContatos(ctx, codigo); err != nil {
			return err
		}

		switch pessoa.Tipo {
		case models.TipoPessoaFisica:
			_, err = s.repos.Fisicas.Delete(ctx, codigo)
		case models.TipoPessoaJuridica:
			_, err = s.repos.Juridicas.Delete(ctx, codigo)
		}
		if err != nil {
			return err
		}

		deleted, err := s.repos.Pessoas.Delete(ctx, codigo)
		if err != nil {
			return err
		}
		if !deleted {
			return models.ErrPessoaNaoEncontrada
		}
		return nil
	})
	recordTx("delete_pessoa", err)
	if err != nil {
		if !errors.Is(err, models.ErrPessoaNaoEncontrada) {
			utils.RecordErrorInSpan(span, err, map[string]interface{}{"codigo": codigo})
			s.logger.Error("failed to delete pessoa", zap.Error(err), zap.Int("codigo", codigo))
		}
		return wrapErr("delete pessoa", err)
	}

	s.logger.Info("pessoa deleted", zap.Int("codigo", codigo))
	return nil
}
