package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/prefeitura-rio/app-cadastro/internal/models"
)

// UsuarioStore persists user accounts in tb_usuario
type UsuarioStore struct {
	db *sql.DB
}

func NewUsuarioStore(db *sql.DB) *UsuarioStore {
	return &UsuarioStore{db: db}
}

func scanUsuario(row rowScanner) (*models.Usuario, error) {
	var u models.Usuario
	if err := row.Scan(&u.Codigo, &u.Usuario, &u.Senha, &u.Tipo, &u.Pessoa, &u.Cadastro); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *UsuarioStore) Create(ctx context.Context, u *models.Usuario) (int, error) {
	query := `
		INSERT INTO tb_usuario (usuario, senha, tipo, pessoa)
		VALUES ($1, $2, $3, $4)
		RETURNING codigo, cadastro
	`
	err := executor(ctx, s.db).QueryRowContext(ctx, query, u.Usuario, u.Senha, u.Tipo, u.Pessoa).Scan(&u.Codigo, &u.Cadastro)
	if err != nil {
		return 0, fmt.Errorf("create usuario: %w", err)
	}
	return u.Codigo, nil
}

func (s *UsuarioStore) GetByID(ctx context.Context, codigo int) (*models.Usuario, error) {
	query := `SELECT codigo, usuario, senha, tipo, pessoa, cadastro FROM tb_usuario WHERE codigo = $1`
	u, err := scanUsuario(executor(ctx, s.db).QueryRowContext(ctx, query, codigo))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return u, nil
}

// GetByUsuario finds an account by its exact login
func (s *UsuarioStore) GetByUsuario(ctx context.Context, usuario string) (*models.Usuario, error) {
	query := `SELECT codigo, usuario, senha, tipo, pessoa, cadastro FROM tb_usuario WHERE usuario = $1`
	u, err := scanUsuario(executor(ctx, s.db).QueryRowContext(ctx, query, usuario))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario by login: %w", err)
	}
	return u, nil
}

// AlterarSenha replaces the stored password hash
func (s *UsuarioStore) AlterarSenha(ctx context.Context, codigo int, senhaHash string) (bool, error) {
	res, err := executor(ctx, s.db).ExecContext(ctx, `UPDATE tb_usuario SET senha = $2 WHERE codigo = $1`, codigo, senhaHash)
	if err != nil {
		return false, fmt.Errorf("update senha: %w", err)
	}
	return affected(res)
}

// GetAll lists accounts newest first. Password hashes are not loaded.
func (s *UsuarioStore) GetAll(ctx context.Context) ([]models.Usuario, error) {
	query := `SELECT codigo, usuario, tipo, pessoa, cadastro FROM tb_usuario ORDER BY cadastro DESC`
	rows, err := executor(ctx, s.db).QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()

	usuarios := []models.Usuario{}
	for rows.Next() {
		var u models.Usuario
		if err := rows.Scan(&u.Codigo, &u.Usuario, &u.Tipo, &u.Pessoa, &u.Cadastro); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		usuarios = append(usuarios, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	return usuarios, nil
}
