package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/prefeitura-rio/app-cadastro/internal/models"
)

const pessoaColumns = `p.codigo, p.tipo, p.nome, p.cep, p.estado, p.cidade, p.bairro, p.endereco,
	p.numero, p.complemento, p.obs, p.cadastro`

// PessoaStore persists rows of tb_pessoa
type PessoaStore struct {
	db *sql.DB
}

// NewPessoaStore creates a PostgreSQL-backed person store
func NewPessoaStore(db *sql.DB) *PessoaStore {
	return &PessoaStore{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPessoa(row rowScanner) (*models.Pessoa, error) {
	var p models.Pessoa
	err := row.Scan(
		&p.Codigo, &p.Tipo, &p.Nome, &p.Cep, &p.Estado, &p.Cidade, &p.Bairro, &p.Endereco,
		&p.Numero, &p.Complemento, &p.Obs, &p.Cadastro,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *PessoaStore) queryPessoas(ctx context.Context, query string, args ...any) ([]models.Pessoa, error) {
	rows, err := executor(ctx, s.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pessoas := []models.Pessoa{}
	for rows.Next() {
		p, err := scanPessoa(rows)
		if err != nil {
			return nil, err
		}
		pessoas = append(pessoas, *p)
	}
	return pessoas, rows.Err()
}

// Create inserts the person and returns the generated codigo
func (s *PessoaStore) Create(ctx context.Context, p *models.Pessoa) (int, error) {
	query := `
		INSERT INTO tb_pessoa (tipo, nome, cep, estado, cidade, bairro, endereco, numero, complemento, obs)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING codigo, cadastro
	`
	err := executor(ctx, s.db).QueryRowContext(ctx, query,
		p.Tipo, p.Nome, p.Cep, p.Estado, p.Cidade, p.Bairro, p.Endereco, p.Numero, p.Complemento, p.Obs,
	).Scan(&p.Codigo, &p.Cadastro)
	if err != nil {
		return 0, fmt.Errorf("create pessoa: %w", err)
	}
	return p.Codigo, nil
}

func (s *PessoaStore) GetByID(ctx context.Context, codigo int) (*models.Pessoa, error) {
	query := `SELECT ` + pessoaColumns + ` FROM tb_pessoa p WHERE p.codigo = $1`
	p, err := scanPessoa(executor(ctx, s.db).QueryRowContext(ctx, query, codigo))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pessoa: %w", err)
	}
	return p, nil
}

func (s *PessoaStore) GetAll(ctx context.Context) ([]models.Pessoa, error) {
	query := `SELECT ` + pessoaColumns + ` FROM tb_pessoa p ORDER BY p.cadastro DESC`
	pessoas, err := s.queryPessoas(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list pessoas: %w", err)
	}
	return pessoas, nil
}

// GetByTipo lists persons of one kind, newest first
func (s *PessoaStore) GetByTipo(ctx context.Context, tipo string) ([]models.Pessoa, error) {
	query := `SELECT ` + pessoaColumns + ` FROM tb_pessoa p WHERE p.tipo = $1 ORDER BY p.cadastro DESC`
	pessoas, err := s.queryPessoas(ctx, query, tipo)
	if err != nil {
		return nil, fmt.Errorf("list pessoas by tipo: %w", err)
	}
	return pessoas, nil
}

// Search matches the term against name, CPF and CNPJ, case-insensitively
func (s *PessoaStore) Search(ctx context.Context, termo string) ([]models.Pessoa, error) {
	query := `
		SELECT ` + pessoaColumns + ` FROM tb_pessoa p
		LEFT JOIN tb_pessoa_fisica pf ON p.codigo = pf.pessoa
		LEFT JOIN tb_pessoa_juridica pj ON p.codigo = pj.pessoa
		WHERE p.nome ILIKE $1 OR pf.cpf ILIKE $1 OR pj.cnpj ILIKE $1
		ORDER BY p.cadastro DESC
	`
	pessoas, err := s.queryPessoas(ctx, query, "%"+termo+"%")
	if err != nil {
		return nil, fmt.Errorf("search pessoas: %w", err)
	}
	return pessoas, nil
}

// Update rewrites the mutable columns. tipo and cadastro never change.
func (s *PessoaStore) Update(ctx context.Context, p *models.Pessoa) (bool, error) {
	query := `
		UPDATE tb_pessoa
		SET nome = $2, cep = $3, estado = $4, cidade = $5, bairro = $6, endereco = $7,
			numero = $8, complemento = $9, obs = $10
		WHERE codigo = $1
	`
	res, err := executor(ctx, s.db).ExecContext(ctx, query,
		p.Codigo, p.Nome, p.Cep, p.Estado, p.Cidade, p.Bairro, p.Endereco, p.Numero, p.Complemento, p.Obs,
	)
	if err != nil {
		return false, fmt.Errorf("update pessoa: %w", err)
	}
	return affected(res)
}

func (s *PessoaStore) Delete(ctx context.Context, codigo int) (bool, error) {
	res, err := executor(ctx, s.db).ExecContext(ctx, `DELETE FROM tb_pessoa WHERE codigo = $1`, codigo)
	if err != nil {
		return false, fmt.Errorf("delete pessoa: %w", err)
	}
	return affected(res)
}

func affected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}
