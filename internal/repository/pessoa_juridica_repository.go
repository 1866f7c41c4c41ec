package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/prefeitura-rio/app-cadastro/internal/models"
)

// PessoaJuridicaStore persists rows of tb_pessoa_juridica
type PessoaJuridicaStore struct {
	db *sql.DB
}

func NewPessoaJuridicaStore(db *sql.DB) *PessoaJuridicaStore {
	return &PessoaJuridicaStore{db: db}
}

func (s *PessoaJuridicaStore) Create(ctx context.Context, pj *models.PessoaJuridica) error {
	query := `
		INSERT INTO tb_pessoa_juridica
			(pessoa, razaosocial, cnpj, inscricaoestadual, atividade, homepage, representante)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := executor(ctx, s.db).ExecContext(ctx, query,
		pj.Pessoa, pj.RazaoSocial, pj.Cnpj, pj.InscricaoEstadual, pj.Atividade, pj.Homepage, pj.Representante,
	)
	if err != nil {
		return fmt.Errorf("create pessoa juridica: %w", err)
	}
	return nil
}

func (s *PessoaJuridicaStore) GetByPessoaID(ctx context.Context, pessoa int) (*models.PessoaJuridica, error) {
	query := `
		SELECT pessoa, razaosocial, cnpj, inscricaoestadual, atividade, homepage, representante
		FROM tb_pessoa_juridica
		WHERE pessoa = $1
	`
	var pj models.PessoaJuridica
	err := executor(ctx, s.db).QueryRowContext(ctx, query, pessoa).Scan(
		&pj.Pessoa, &pj.RazaoSocial, &pj.Cnpj, &pj.InscricaoEstadual, &pj.Atividade, &pj.Homepage, &pj.Representante,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pessoa juridica: %w", err)
	}
	return &pj, nil
}

func (s *PessoaJuridicaStore) Update(ctx context.Context, pj *models.PessoaJuridica) (bool, error) {
	query := `
		UPDATE tb_pessoa_juridica
		SET razaosocial = $2, cnpj = $3, inscricaoestadual = $4, atividade = $5,
			homepage = $6, representante = $7
		WHERE pessoa = $1
	`
	res, err := executor(ctx, s.db).ExecContext(ctx, query,
		pj.Pessoa, pj.RazaoSocial, pj.Cnpj, pj.InscricaoEstadual, pj.Atividade, pj.Homepage, pj.Representante,
	)
	if err != nil {
		return false, fmt.Errorf("update pessoa juridica: %w", err)
	}
	return affected(res)
}

func (s *PessoaJuridicaStore) Delete(ctx context.Context, pessoa int) (bool, error) {
	res, err := executor(ctx, s.db).ExecContext(ctx, `DELETE FROM tb_pessoa_juridica WHERE pessoa = $1`, pessoa)
	if err != nil {
		return false, fmt.Errorf("delete pessoa juridica: %w", err)
	}
	return affected(res)
}
