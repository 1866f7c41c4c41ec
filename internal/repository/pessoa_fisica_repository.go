package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/prefeitura-rio/app-cadastro/internal/models"
)

// PessoaFisicaStore persists rows of tb_pessoa_fisica
type PessoaFisicaStore struct {
	db *sql.DB
}

func NewPessoaFisicaStore(db *sql.DB) *PessoaFisicaStore {
	return &PessoaFisicaStore{db: db}
}

func (s *PessoaFisicaStore) Create(ctx context.Context, pf *models.PessoaFisica) error {
	query := `
		INSERT INTO tb_pessoa_fisica
			(pessoa, nascimento, cidadenasc, ufnasc, nacionalidade, sexo, cpf,
			 identidade, orgaoidentidade, ufidentidade, estadocivil, conjuge, profissao, ctps, pis)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	_, err := executor(ctx, s.db).ExecContext(ctx, query,
		pf.Pessoa, pf.Nascimento, pf.CidadeNasc, pf.UfNasc, pf.Nacionalidade, pf.Sexo, pf.Cpf,
		pf.Identidade, pf.OrgaoIdentidade, pf.UfIdentidade, pf.EstadoCivil, pf.Conjuge, pf.Profissao, pf.Ctps, pf.Pis,
	)
	if err != nil {
		return fmt.Errorf("create pessoa fisica: %w", err)
	}
	return nil
}

func (s *PessoaFisicaStore) GetByPessoaID(ctx context.Context, pessoa int) (*models.PessoaFisica, error) {
	query := `
		SELECT pessoa, nascimento, cidadenasc, ufnasc, nacionalidade, sexo, cpf,
			identidade, orgaoidentidade, ufidentidade, estadocivil, conjuge, profissao, ctps, pis
		FROM tb_pessoa_fisica
		WHERE pessoa = $1
	`
	var pf models.PessoaFisica
	err := executor(ctx, s.db).QueryRowContext(ctx, query, pessoa).Scan(
		&pf.Pessoa, &pf.Nascimento, &pf.CidadeNasc, &pf.UfNasc, &pf.Nacionalidade, &pf.Sexo, &pf.Cpf,
		&pf.Identidade, &pf.OrgaoIdentidade, &pf.UfIdentidade, &pf.EstadoCivil, &pf.Conjuge, &pf.Profissao, &pf.Ctps, &pf.Pis,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pessoa fisica: %w", err)
	}
	return &pf, nil
}

func (s *PessoaFisicaStore) Update(ctx context.Context, pf *models.PessoaFisica) (bool, error) {
	query := `
		UPDATE tb_pessoa_fisica
		SET nascimento = $2, cidadenasc = $3, ufnasc = $4, nacionalidade = $5, sexo = $6, cpf = $7,
			identidade = $8, orgaoidentidade = $9, ufidentidade = $10, estadocivil = $11,
			conjuge = $12, profissao = $13, ctps = $14, pis = $15
		WHERE pessoa = $1
	`
	res, err := executor(ctx, s.db).ExecContext(ctx, query,
		pf.Pessoa, pf.Nascimento, pf.CidadeNasc, pf.UfNasc, pf.Nacionalidade, pf.Sexo, pf.Cpf,
		pf.Identidade, pf.OrgaoIdentidade, pf.UfIdentidade, pf.EstadoCivil, pf.Conjuge, pf.Profissao, pf.Ctps, pf.Pis,
	)
	if err != nil {
		return false, fmt.Errorf("update pessoa fisica: %w", err)
	}
	return affected(res)
}

func (s *PessoaFisicaStore) Delete(ctx context.Context, pessoa int) (bool, error) {
	res, err := executor(ctx, s.db).ExecContext(ctx, `DELETE FROM tb_pessoa_fisica WHERE pessoa = $1`, pessoa)
	if err != nil {
		return false, fmt.Errorf("delete pessoa fisica: %w", err)
	}
	return affected(res)
}
