package services

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/prefeitura-rio/app-cadastro/internal/logging"
	"github.com/prefeitura-rio/app-cadastro/internal/models"
	"github.com/prefeitura-rio/app-cadastro/internal/observability"
	"github.com/prefeitura-rio/app-cadastro/internal/repository"
	"github.com/prefeitura-rio/app-cadastro/internal/utils"
)

// PessoaJuridicaService handles organizations
type PessoaJuridicaService struct {
	tx     repository.Transactor
	repos  Repositories
	logger *logging.SafeLogger
}

// NewPessoaJuridicaService creates a new PessoaJuridicaService instance
func NewPessoaJuridicaService(tx repository.Transactor, repos Repositories, logger *logging.SafeLogger) *PessoaJuridicaService {
	return &PessoaJuridicaService{tx: tx, repos: repos, logger: logger}
}

// normalizeCNPJ validates a non-blank CNPJ and rewrites it without punctuation
func normalizeCNPJ(in *models.PessoaJuridicaInput) error {
	if isBlank(in.Cnpj) {
		return nil
	}
	if !utils.ValidarCNPJ(*in.Cnpj) {
		return models.ErrCNPJInvalido
	}
	cnpj := utils.NormalizarCNPJ(*in.Cnpj)
	in.Cnpj = &cnpj
	return nil
}

func juridicaFromInput(pessoa int, in models.PessoaJuridicaInput) *models.PessoaJuridica {
	razaoSocial := in.RazaoSocial
	return &models.PessoaJuridica{
		Pessoa:            pessoa,
		RazaoSocial:       &razaoSocial,
		Cnpj:              in.Cnpj,
		InscricaoEstadual: in.InscricaoEstadual,
		Atividade:         in.Atividade,
		Homepage:          in.Homepage,
		Representante:     in.Representante,
	}
}

// Create validates the CNPJ, then stores the person, its organization row
// and its contacts in one transaction
func (s *PessoaJuridicaService) Create(ctx context.Context, in models.PessoaJuridicaInput) (int, error) {
	ctx, span := utils.TraceDatabaseTransaction(ctx, "create_pessoa_juridica")
	defer span.End()

	if err := normalizeCNPJ(&in); err != nil {
		s.logger.Warn("rejected invalid cnpj", zap.String("cnpj", observability.MaskCNPJ(*in.Cnpj)))
		return 0, err
	}

	var codigo int
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		bairro, endereco, err := s.repos.resolveEnderecoIDs(ctx, in.EnderecoInput)
		if err != nil {
			return err
		}

		nome := in.Nome
		pessoa := &models.Pessoa{Tipo: models.TipoPessoaJuridica, Nome: &nome, Obs: in.Obs}
		applyEndereco(pessoa, in.EnderecoInput, bairro, endereco)

		codigo, err = s.repos.Pessoas.Create(ctx, pessoa)
		if err != nil {
			return err
		}
		if err := s.repos.Juridicas.Create(ctx, juridicaFromInput(codigo, in)); err != nil {
			return err
		}
		return s.repos.insertContatos(ctx, codigo, in.Telefones, in.EnderecosEletronicos)
	})
	recordTx("create_pessoa_juridica", err)
	if err != nil {
		utils.RecordErrorInSpan(span, err, nil)
		s.logger.Error("failed to create pessoa juridica", zap.Error(err))
		return 0, wrapErr("create pessoa juridica", err)
	}

	s.logger.Info("pessoa juridica created", zap.Int("codigo", codigo))
	return codigo, nil
}

// GetByID returns models.ErrPessoaNaoEncontrada when the person is absent,
// is an individual or lacks its organization row
func (s *PessoaJuridicaService) GetByID(ctx context.Context, codigo int) (*models.PessoaJuridicaDTO, error) {
	ctx, span := utils.TraceDatabaseFind(ctx, "tb_pessoa_juridica", "codigo")
	defer span.End()

	dto, err := s.getByID(ctx, codigo)
	if err != nil && !errors.Is(err, models.ErrPessoaNaoEncontrada) {
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"codigo": codigo})
	}
	return dto, wrapErr("get pessoa juridica", err)
}

func (s *PessoaJuridicaService) getByID(ctx context.Context, codigo int) (*models.PessoaJuridicaDTO, error) {
	pessoa, err := s.repos.getPessoaOfTipo(ctx, codigo, models.TipoPessoaJuridica)
	if err != nil {
		return nil, err
	}

	pj, err := s.repos.Juridicas.GetByPessoaID(ctx, codigo)
	if err != nil {
		return nil, err
	}
	if pj == nil {
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

	dto := &models.PessoaJuridicaDTO{
		Codigo:               pessoa.Codigo,
		RazaoSocial:          pj.RazaoSocial,
		Nome:                 pessoa.Nome,
		Cnpj:                 pj.Cnpj,
		InscricaoEstadual:    pj.InscricaoEstadual,
		Atividade:            pj.Atividade,
		Homepage:             pj.Homepage,
		Representante:        pj.Representante,
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
	}

	if pj.Cnpj != nil && len(strings.TrimSpace(*pj.Cnpj)) == 14 {
		formatado := utils.FormatarCNPJ(strings.TrimSpace(*pj.Cnpj))
		dto.CnpjFormatado = &formatado
	}

	if pj.Atividade != nil {
		atividade, err := s.repos.Lookups.GetAtividade(ctx, *pj.Atividade)
		if err != nil {
			return nil, err
		}
		if atividade != nil {
			dto.AtividadeDescricao = atividade.Descricao
		}
	}

	if pj.Representante != nil {
		representante, err := s.repos.Pessoas.GetByID(ctx, *pj.Representante)
		if err != nil {
			return nil, err
		}
		if representante != nil {
			dto.RepresentanteNome = representante.Nome
		}
	}

	return dto, nil
}

// Update validates the CNPJ, then rewrites the person, its organization row
// and replaces its contacts. A missing organization row is left as is.
func (s *PessoaJuridicaService) Update(ctx context.Context, in models.PessoaJuridicaInput) error {
	ctx, span := utils.TraceDatabaseTransaction(ctx, "update_pessoa_juridica")
	defer span.End()

	if err := normalizeCNPJ(&in); err != nil {
		s.logger.Warn("rejected invalid cnpj", zap.Int("codigo", in.Codigo), zap.String("cnpj", observability.MaskCNPJ(*in.Cnpj)))
		return err
	}

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

		pj, err := s.repos.Juridicas.GetByPessoaID(ctx, in.Codigo)
		if err != nil {
			return err
		}
		if pj != nil {
			if _, err := s.repos.Juridicas.Update(ctx, juridicaFromInput(in.Codigo, in)); err != nil {
				return err
			}
		}

		return s.repos.replaceContatos(ctx, in.Codigo, in.Telefones, in.EnderecosEletronicos)
	})
	recordTx("update_pessoa_juridica", err)
	if err != nil {
		if !errors.Is(err, models.ErrPessoaNaoEncontrada) {
			utils.RecordErrorInSpan(span, err, map[string]interface{}{"codigo": in.Codigo})
			s.logger.Error("failed to update pessoa juridica", zap.Error(err), zap.Int("codigo", in.Codigo))
		}
		return wrapErr("update pessoa juridica", err)
	}

	s.logger.Info("pessoa juridica updated", zap.Int("codigo", in.Codigo))
	return nil
}

// GetAll expands every organization through GetByID, newest first
func (s *PessoaJuridicaService) GetAll(ctx context.Context) ([]models.PessoaJuridicaDTO, error) {
	ctx, span := utils.TraceDatabaseFind(ctx, "tb_pessoa", "tipo_j")
	defer span.End()

	pessoas, err := s.repos.Pessoas.GetByTipo(ctx, models.TipoPessoaJuridica)
	if err != nil {
		utils.RecordErrorInSpan(span, err, nil)
		return nil, wrapErr("list pessoas juridicas", err)
	}

	expandCtx, _, done := utils.TraceOperation(ctx, "pessoa_juridica.expand", map[string]interface{}{"rows": len(pessoas)})
	defer done()

	results := make([]*models.PessoaJuridicaDTO, len(pessoas))
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
		return nil, wrapErr("list pessoas juridicas", err)
	}

	out := make([]models.PessoaJuridicaDTO, 0, len(results))
	for _, dto := range results {
		if dto != nil {
			out = append(out, *dto)
		}
	}
	return out, nil
}
