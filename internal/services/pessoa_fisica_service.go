package services

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/prefeitura-rio/app-cadastro/internal/logging"
	"github.com/prefeitura-rio/app-cadastro/internal/models"
	"github.com/prefeitura-rio/app-cadastro/internal/repository"
	"github.com/prefeitura-rio/app-cadastro/internal/utils"
)

// listExpansionLimit bounds the concurrent read-by-id calls of the list endpoints
const listExpansionLimit = 4

// PessoaFisicaService handles individuals
type PessoaFisicaService struct {
	tx     repository.Transactor
	repos  Repositories
	logger *logging.SafeLogger
}

// NewPessoaFisicaService creates a new PessoaFisicaService instance
func NewPessoaFisicaService(tx repository.Transactor, repos Repositories, logger *logging.SafeLogger) *PessoaFisicaService {
	return &PessoaFisicaService{tx: tx, repos: repos, logger: logger}
}

func fisicaFromInput(pessoa int, in models.PessoaFisicaInput) *models.PessoaFisica {
	return &models.PessoaFisica{
		Pessoa:          pessoa,
		Nascimento:      in.Nascimento,
		CidadeNasc:      in.CidadeNasc,
		UfNasc:          in.UfNasc,
		Nacionalidade:   in.Nacionalidade,
		Sexo:            in.Sexo,
		Cpf:             in.Cpf,
		Identidade:      in.Identidade,
		OrgaoIdentidade: in.OrgaoIdentidade,
		UfIdentidade:    in.UfIdentidade,
		EstadoCivil:     in.EstadoCivil,
		Conjuge:         in.Conjuge,
		Profissao:       in.Profissao,
		Ctps:            in.Ctps,
		Pis:             in.Pis,
	}
}

// Create stores the person, its individual row and its contacts in one
// transaction and returns the new codigo
func (s *PessoaFisicaService) Create(ctx context.Context, in models.PessoaFisicaInput) (int, error) {
	ctx, span := utils.TraceDatabaseTransaction(ctx, "create_pessoa_fisica")
	defer span.End()

	var codigo int
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		bairro, endereco, err := s.repos.resolveEnderecoIDs(ctx, in.EnderecoInput)
		if err != nil {
			return err
		}

		nome := in.Nome
		pessoa := &models.Pessoa{Tipo: models.TipoPessoaFisica, Nome: &nome, Obs: in.Obs}
		applyEndereco(pessoa, in.EnderecoInput, bairro, endereco)

		codigo, err = s.repos.Pessoas.Create(ctx, pessoa)
		if err != nil {
			return err
		}
		if err := s.repos.Fisicas.Create(ctx, fisicaFromInput(codigo, in)); err != nil {
			return err
		}
		return s.repos.insertContatos(ctx, codigo, in.Telefones, in.EnderecosEletronicos)
	})
	recordTx("create_pessoa_fisica", err)
	if err != nil {
		utils.RecordErrorInSpan(span, err, nil)
		s.logger.Error("failed to create pessoa fisica", zap.Error(err))
		return 0, wrapErr("create pessoa fisica", err)
	}

	s.logger.Info("pessoa fisica created", zap.Int("codigo", codigo))
	return codigo, nil
}

// GetByID returns models.ErrPessoaNaoEncontrada when the person is absent,
// is an organization or lacks its individual row
func (s *PessoaFisicaService) GetByID(ctx context.Context, codigo int) (*models.PessoaFisicaDTO, error) {
	ctx, span := utils.TraceDatabaseFind(ctx, "tb_pessoa_fisica", "codigo")
	defer span.End()

	dto, err := s.getByID(ctx, codigo)
	if err != nil && !errors.Is(err, models.ErrPessoaNaoEncontrada) {
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"codigo": codigo})
	}
	return dto, wrapErr("get pessoa fisica", err)
}

func (s *PessoaFisicaService) getByID(ctx context.Context, codigo int) (*models.PessoaFisicaDTO, error) {
	pessoa, err := s.repos.getPessoaOfTipo(ctx, codigo, models.TipoPessoaFisica)
	if err != nil {
		return nil, err
	}

	pf, err := s.repos.Fisicas.GetByPessoaID(ctx, codigo)
	if err != nil {
		return nil, err
	}
	if pf == nil {
		return nil, models.ErrPessoaNaoEncontrada
	}

	telefones, enderecos, err := s.repos.loadContatos(ctx, codigo)
	if err != nil {
		return nil, err
	}

	nomes, err := s.repos.resolveEnderecoNomes(ctx, pessoa)
	if err != nil {
		return nil, err
	}

	return &models.PessoaFisicaDTO{
		Codigo:               pessoa.Codigo,
		Nome:                 pessoa.Nome,
		Cpf:                  pf.Cpf,
		Identidade:           pf.Identidade,
		OrgaoIdentidade:      pf.OrgaoIdentidade,
		UfIdentidade:         pf.UfIdentidade,
		Nascimento:           pf.Nascimento,
		Sexo:                 pf.Sexo,
		EstadoCivil:          pf.EstadoCivil,
		Nacionalidade:        pf.Nacionalidade,
		Profissao:            pf.Profissao,
		Ctps:                 pf.Ctps,
		Pis:                  pf.Pis,
		CidadeNasc:           pf.CidadeNasc,
		UfNasc:               pf.UfNasc,
		Conjuge:              pf.Conjuge,
		Cep:                  pessoa.Cep,
		Estado:               pessoa.Estado,
		EstadoNome:           nomes.Estado,
		Cidade:               pessoa.Cidade,
		CidadeNome:           nomes.Cidade,
		Bairro:               pessoa.Bairro,
		BairroNome:           nomes.Bairro,
		Endereco:             pessoa.Endereco,
		EnderecoNome:         nomes.Endereco,
		Numero:               pessoa.Numero,
		Complemento:          pessoa.Complemento,
		Telefones:            telefones,
		EnderecosEletronicos: enderecos,
		Obs:                  pessoa.Obs,
		Cadastro:             pessoa.Cadastro,
	}, nil
}

// Update rewrites the person, its individual row and replaces its contacts.
// Only the existence of the person is checked; a missing individual row is left as is.
func (s *PessoaFisicaService) Update(ctx context.Context, in models.PessoaFisicaInput) error {
	ctx, span := utils.TraceDatabaseTransaction(ctx, "update_pessoa_fisica")
	defer span.End()

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		pessoa, err := s.repos.Pessoas.GetByID(ctx, in.Codigo)
		if err != nil {
			return err
		}
		if pessoa == nil {
			return models.ErrPessoaNaoEncontrada
		}

		bairro, endereco, err := s.repos.resolveEnderecoIDs(ctx, in.EnderecoInput)
		if err != nil {
			return err
		}

		nome := in.Nome
		pessoa.Nome = &nome
		pessoa.Obs = in.Obs
		applyEndereco(pessoa, in.EnderecoInput, bairro, endereco)
		if _, err := s.repos.Pessoas.Update(ctx, pessoa); err != nil {
			return err
		}

		pf, err := s.repos.Fisicas.GetByPessoaID(ctx, in.Codigo)
		if err != nil {
			return err
		}
		if pf != nil {
			if _, err := s.repos.Fisicas.Update(ctx, fisicaFromInput(in.Codigo, in)); err != nil {
				return err
			}
		}

		return s.repos.replaceContatos(ctx, in.Codigo, in.Telefones, in.EnderecosEletronicos)
	})
	recordTx("update_pessoa_fisica", err)
	if err != nil {
		if !errors.Is(err, models.ErrPessoaNaoEncontrada) {
			utils.RecordErrorInSpan(span, err, map[string]interface{}{"codigo": in.Codigo})
			s.logger.Error("failed to update pessoa fisica", zap.Error(err), zap.Int("codigo", in.Codigo))
		}
		return wrapErr("update pessoa fisica", err)
	}

	s.logger.Info("pessoa fisica updated", zap.Int("codigo", in.Codigo))
	return nil
}

// GetAll expands every individual through GetByID, newest first. Rows that
// vanish between the listing and the expansion are skipped.
func (s *PessoaFisicaService) GetAll(ctx context.Context) ([]models.PessoaFisicaDTO, error) {
	ctx, span := utils.TraceDatabaseFind(ctx, "tb_pessoa", "tipo_f")
	defer span.End()

	pessoas, err := s.repos.Pessoas.GetByTipo(ctx, models.TipoPessoaFisica)
	if err != nil {
		utils.RecordErrorInSpan(span, err, nil)
		return nil, wrapErr("list pessoas fisicas", err)
	}

	expandCtx, _, done := utils.TraceOperation(ctx, "pessoa_fisica.expand", map[string]interface{}{"rows": len(pessoas)})
	defer done()

	results := make([]*models.PessoaFisicaDTO, len(pessoas))
	g, gctx := errgroup.WithContext(expandCtx)
	g.SetLimit(listExpansionLimit)
	for i, p := range pessoas {
		g.Go(func() error {
			dto, err := s.getByID(gctx, p.Codigo)
			if errors.Is(err, models.ErrPessoaNaoEncontrada) {
				return nil
			}
			if err != nil {
				return err
			}
			results[i] = dto
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		utils.RecordErrorInSpan(span, err, nil)
		return nil, wrapErr("list pessoas fisicas", err)
	}

	out := make([]models.PessoaFisicaDTO, 0, len(results))
	for _, dto := range results {
		if dto != nil {
			out = append(out, *dto)
		}
	}
	return out, nil
}
