package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/prefeitura-rio/app-cadastro/internal/models"
	"github.com/prefeitura-rio/app-cadastro/internal/observability"
	"github.com/prefeitura-rio/app-cadastro/internal/repository"
	"github.com/prefeitura-rio/app-cadastro/internal/utils"
)

// Repositories groups the data access contracts used by the services
type Repositories struct {
	Pessoas              repository.PessoaRepository
	Fisicas              repository.PessoaFisicaRepository
	Juridicas            repository.PessoaJuridicaRepository
	Telefones            repository.TelefoneRepository
	EnderecosEletronicos repository.EnderecoEletronicoRepository
	Lookups              repository.LookupRepository
	Usuarios             repository.UsuarioRepository
}

// NewRepositories builds the PostgreSQL stores over db
func NewRepositories(db *sql.DB) Repositories {
	return Repositories{
		Pessoas:              repository.NewPessoaStore(db),
		Fisicas:              repository.NewPessoaFisicaStore(db),
		Juridicas:            repository.NewPessoaJuridicaStore(db),
		Telefones:            repository.NewTelefoneStore(db),
		EnderecosEletronicos: repository.NewEnderecoEletronicoStore(db),
		Lookups:              repository.NewLookupStore(db),
		Usuarios:             repository.NewUsuarioStore(db),
	}
}

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

// resolveEnderecoIDs turns the neighborhood and street names into codes,
// creating the rows on first use. Blank names resolve to nil.
func (r Repositories) resolveEnderecoIDs(ctx context.Context, in models.EnderecoInput) (bairro, endereco *int, err error) {
	if !isBlank(in.Bairro) {
		codigo, err := r.Lookups.GetOrCreateBairro(ctx, *in.Bairro)
		if err != nil {
			return nil, nil, err
		}
		bairro = &codigo
	}
	if !isBlank(in.Endereco) {
		codigo, err := r.Lookups.GetOrCreateEndereco(ctx, *in.Endereco)
		if err != nil {
			return nil, nil, err
		}
		endereco = &codigo
	}
	return bairro, endereco, nil
}

// applyEndereco copies the address fields of in onto p
func applyEndereco(p *models.Pessoa, in models.EnderecoInput, bairro, endereco *int) {
	p.Cep = in.Cep
	p.Estado = in.Estado
	p.Cidade = in.Cidade
	p.Bairro = bairro
	p.Endereco = endereco
	p.Numero = in.Numero
	p.Complemento = in.Complemento
}

// insertContatos stores every non-blank phone and electronic address of a person
func (r Repositories) insertContatos(ctx context.Context, pessoa int, telefones []models.TelefoneInput, enderecos []models.EnderecoEletronicoInput) error {
	if err := r.insertTelefones(ctx, pessoa, telefones); err != nil {
		return err
	}
	return r.insertEnderecosEletronicos(ctx, pessoa, enderecos)
}

// replaceContatos deletes the current contacts and inserts the new ones
func (r Repositories) replaceContatos(ctx context.Context, pessoa int, telefones []models.TelefoneInput, enderecos []models.EnderecoEletronicoInput) error {
	if _, err := r.Telefones.DeleteByPessoaID(ctx, pessoa); err != nil {
		return err
	}
	if err := r.insertTelefones(ctx, pessoa, telefones); err != nil {
		return err
	}
	if _, err := r.EnderecosEletronicos.DeleteByPessoaID(ctx, pessoa); err != nil {
		return err
	}
	return r.insertEnderecosEletronicos(ctx, pessoa, enderecos)
}

func (r Repositories) insertTelefones(ctx context.Context, pessoa int, telefones []models.TelefoneInput) error {
	for _, in := range telefones {
		numero := in.Numero()
		if strings.TrimSpace(numero) == "" {
			continue
		}

		tipo := models.TipoTelefoneCelular
		if in.Tipo != nil {
			tipo = *in.Tipo
		}

		telefone := &models.Telefone{Pessoa: pessoa, Tipo: &tipo, Descricao: in.Descricao}
		if digits, ok := utils.ParseTelefone(numero); ok {
			telefone.Telefone = &digits
		}
		writeCtx, span := utils.TraceDatabaseWrite(ctx, "tb_pessoa_telefone", "insert")
		_, err := r.Telefones.Create(writeCtx, telefone)
		if err != nil {
			utils.RecordErrorInSpan(span, err, map[string]interface{}{"pessoa": pessoa})
		}
		span.End()
		if err != nil {
			return err
		}
	}
	return nil
}

func (r Repositories) insertEnderecosEletronicos(ctx context.Context, pessoa int, enderecos []models.EnderecoEletronicoInput) error {
	for _, in := range enderecos {
		if isBlank(in.Endereco) {
			continue
		}

		tipo := models.TipoEnderecoEmail
		if in.Tipo != nil {
			tipo = *in.Tipo
		}

		endereco := strings.TrimSpace(*in.Endereco)
		row := &models.EnderecoEletronico{Pessoa: pessoa, Endereco: &endereco, Tipo: &tipo, Descricao: in.Descricao}
		writeCtx, span := utils.TraceDatabaseWrite(ctx, "tb_pessoa_endereco_eletronico", "insert")
		_, err := r.EnderecosEletronicos.Create(writeCtx, row)
		if err != nil {
			utils.RecordErrorInSpan(span, err, map[string]interface{}{"pessoa": pessoa})
		}
		span.End()
		if err != nil {
			return err
		}
	}
	return nil
}

// deleteContatos removes every phone and electronic address of a person
func (r Repositories) deleteContatos(ctx context.Context, pessoa int) error {
	if _, err := r.EnderecosEletronicos.DeleteByPessoaID(ctx, pessoa); err != nil {
		return err
	}
	if _, err := r.Telefones.DeleteByPessoaID(ctx, pessoa); err != nil {
		return err
	}
	return nil
}

// loadContatos reads the contacts of a person as read models
func (r Repositories) loadContatos(ctx context.Context, pessoa int) ([]models.TelefoneDTO, []models.EnderecoEletronicoDTO, error) {
	telefones, err := r.Telefones.GetByPessoaID(ctx, pessoa)
	if err != nil {
		return nil, nil, err
	}
	enderecos, err := r.EnderecosEletronicos.GetByPessoaID(ctx, pessoa)
	if err != nil {
		return nil, nil, err
	}

	telefoneDTOs := make([]models.TelefoneDTO, 0, len(telefones))
	for _, t := range telefones {
		telefoneDTOs = append(telefoneDTOs, toTelefoneDTO(t))
	}

	enderecoDTOs := make([]models.EnderecoEletronicoDTO, 0, len(enderecos))
	for _, e := range enderecos {
		dto := models.EnderecoEletronicoDTO{
			Codigo:    e.Codigo,
			Endereco:  e.Endereco,
			Tipo:      e.Tipo,
			Descricao: e.Descricao,
		}
		if e.Tipo != nil {
			descricao := models.DescricaoTipoEnderecoEletronico(*e.Tipo)
			dto.TipoDescricao = &descricao
		}
		enderecoDTOs = append(enderecoDTOs, dto)
	}

	return telefoneDTOs, enderecoDTOs, nil
}

func toTelefoneDTO(t models.Telefone) models.TelefoneDTO {
	dto := models.TelefoneDTO{
		Codigo:    t.Codigo,
		Tipo:      t.Tipo,
		Descricao: t.Descricao,
	}

	tipo := 0
	if t.Tipo != nil {
		tipo = *t.Tipo
	}
	dto.TipoDescricao = models.DescricaoTipoTelefone(tipo)

	if t.Telefone != nil {
		dto.Telefone = utils.FormatarTelefone(*t.Telefone)
		if e164, ok := utils.TelefoneE164(*t.Telefone); ok {
			dto.E164 = &e164
		}
	}
	return dto
}

// enderecoNomes holds the display names of the address lookups of a person
type enderecoNomes struct {
	Estado   *string
	Cidade   *string
	Bairro   *string
	Endereco *string
}

// resolveEnderecoNomes looks up each address code one at a time
func (r Repositories) resolveEnderecoNomes(ctx context.Context, p *models.Pessoa) (enderecoNomes, error) {
	var nomes enderecoNomes

	if p.Estado != nil {
		estado, err := r.Lookups.GetEstado(ctx, *p.Estado)
		if err != nil {
			return nomes, err
		}
		if estado != nil {
			nome := estado.Nome
			nomes.Estado = &nome
		}
	}
	if p.Cidade != nil {
		cidade, err := r.Lookups.GetCidade(ctx, *p.Cidade)
		if err != nil {
			return nomes, err
		}
		if cidade != nil {
			nomes.Cidade = cidade.Nome
		}
	}
	if p.Bairro != nil {
		bairro, err := r.Lookups.GetBairro(ctx, *p.Bairro)
		if err != nil {
			return nomes, err
		}
		if bairro != nil {
			nomes.Bairro = bairro.Nome
		}
	}
	if p.Endereco != nil {
		endereco, err := r.Lookups.GetEndereco(ctx, *p.Endereco)
		if err != nil {
			return nomes, err
		}
		if endereco != nil {
			nomes.Endereco = endereco.Nome
		}
	}
	return nomes, nil
}

// getPessoaOfTipo returns models.ErrPessoaNaoEncontrada when the person is
// absent or of another kind
func (r Repositories) getPessoaOfTipo(ctx context.Context, codigo int, tipo string) (*models.Pessoa, error) {
	pessoa, err := r.Pessoas.GetByID(ctx, codigo)
	if err != nil {
		return nil, err
	}
	if pessoa == nil || pessoa.Tipo != tipo {
		return nil, models.ErrPessoaNaoEncontrada
	}
	return pessoa, nil
}

// recordTx counts a finished write transaction by operation and outcome
func recordTx(op string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	observability.DatabaseOperations.WithLabelValues(op, status).Inc()
}

// wrapErr adds op to unexpected errors. Business errors and the not-found
// sentinel pass through untouched.
func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := models.IsBusinessError(err); ok {
		return err
	}
	if errors.Is(err, models.ErrPessoaNaoEncontrada) {
		return err
	}
	return fmt.Errorf("%s: %w", op, err)
}
