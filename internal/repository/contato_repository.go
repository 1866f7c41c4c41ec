package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/prefeitura-rio/app-cadastro/internal/models"
)

// TelefoneStore persists rows of tb_pessoa_telefone
type TelefoneStore struct {
	db *sql.DB
}

func NewTelefoneStore(db *sql.DB) *TelefoneStore {
	return &TelefoneStore{db: db}
}

func (s *TelefoneStore) Create(ctx context.Context, t *models.Telefone) (int, error) {
	query := `
		INSERT INTO tb_pessoa_telefone (pessoa, tipo, telefone, descricao)
		VALUES ($1, $2, $3, $4)
		RETURNING codigo
	`
	err := executor(ctx, s.db).QueryRowContext(ctx, query, t.Pessoa, t.Tipo, t.Telefone, t.Descricao).Scan(&t.Codigo)
	if err != nil {
		return 0, fmt.Errorf("create telefone: %w", err)
	}
	return t.Codigo, nil
}

// GetByPessoaID lists the phones of a person ordered by tipo, then codigo
func (s *TelefoneStore) GetByPessoaID(ctx context.Context, pessoa int) ([]models.Telefone, error) {
	query := `
		SELECT codigo, pessoa, tipo, telefone, descricao
		FROM tb_pessoa_telefone
		WHERE pessoa = $1
		ORDER BY tipo, codigo
	`
	rows, err := executor(ctx, s.db).QueryContext(ctx, query, pessoa)
	if err != nil {
		return nil, fmt.Errorf("list telefones: %w", err)
	}
	defer rows.Close()

	telefones := []models.Telefone{}
	for rows.Next() {
		var t models.Telefone
		if err := rows.Scan(&t.Codigo, &t.Pessoa, &t.Tipo, &t.Telefone, &t.Descricao); err != nil {
			return nil, fmt.Errorf("scan telefone: %w", err)
		}
		telefones = append(telefones, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list telefones: %w", err)
	}
	return telefones, nil
}

func (s *TelefoneStore) DeleteByPessoaID(ctx context.Context, pessoa int) (int64, error) {
	res, err := executor(ctx, s.db).ExecContext(ctx, `DELETE FROM tb_pessoa_telefone WHERE pessoa = $1`, pessoa)
	if err != nil {
		return 0, fmt.Errorf("delete telefones: %w", err)
	}
	return res.RowsAffected()
}

// EnderecoEletronicoStore persists rows of tb_pessoa_endereco_eletronico
type EnderecoEletronicoStore struct {
	db *sql.DB
}

func NewEnderecoEletronicoStore(db *sql.DB) *EnderecoEletronicoStore {
	return &EnderecoEletronicoStore{db: db}
}

func (s *EnderecoEletronicoStore) Create(ctx context.Context, e *models.EnderecoEletronico) (int, error) {
	query := `
		INSERT INTO tb_pessoa_endereco_eletronico (pessoa, endereco, tipo, descricao)
		VALUES ($1, $2, $3, $4)
		RETURNING codigo
	`
	err := executor(ctx, s.db).QueryRowContext(ctx, query, e.Pessoa, e.Endereco, e.Tipo, e.Descricao).Scan(&e.Codigo)
	if err != nil {
		return 0, fmt.Errorf("create endereco eletronico: %w", err)
	}
	return e.Codigo, nil
}

// GetByPessoaID lists the electronic addresses of a person ordered by tipo, then codigo
func (s *EnderecoEletronicoStore) GetByPessoaID(ctx context.Context, pessoa int) ([]models.EnderecoEletronico, error) {
	query := `
		SELECT codigo, pessoa, endereco, tipo, descricao
		FROM tb_pessoa_endereco_eletronico
		WHERE pessoa = $1
		ORDER BY tipo, codigo
	`
	rows, err := executor(ctx, s.db).QueryContext(ctx, query, pessoa)
	if err != nil {
		return nil, fmt.Errorf("list enderecos eletronicos: %w", err)
	}
	defer rows.Close()

	enderecos := []models.EnderecoEletronico{}
	for rows.Next() {
		var e models.EnderecoEletronico
		if err := rows.Scan(&e.Codigo, &e.Pessoa, &e.Endereco, &e.Tipo, &e.Descricao); err != nil {
			return nil, fmt.Errorf("scan endereco eletronico: %w", err)
		}
		enderecos = append(enderecos, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list enderecos eletronicos: %w", err)
	}
	return enderecos, nil
}

func (s *EnderecoEletronicoStore) DeleteByPessoaID(ctx context.Context, pessoa int) (int64, error) {
	res, err := executor(ctx, s.db).ExecContext(ctx, `DELETE FROM tb_pessoa_endereco_eletronico WHERE pessoa = $1`, pessoa)
	if err != nil {
		return 0, fmt.Errorf("delete enderecos eletronicos: %w", err)
	}
	return res.RowsAffected()
}
