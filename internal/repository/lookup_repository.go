package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/prefeitura-rio/app-cadastro/internal/models"
)

// LookupStore reads the reference tables and maintains the get-or-create
// neighborhood and street lookups.
type LookupStore struct {
	db *sql.DB
}

func NewLookupStore(db *sql.DB) *LookupStore {
	return &LookupStore{db: db}
}

// queryList runs query and appends one item per row using scan
func queryList[T any](ctx context.Context, q DBTX, query string, scan func(rowScanner, *T) error, args ...any) ([]T, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []T{}
	for rows.Next() {
		var item T
		if err := scan(rows, &item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// queryOne returns nil when no row matches
func queryOne[T any](ctx context.Context, q DBTX, query string, scan func(rowScanner, *T) error, args ...any) (*T, error) {
	var item T
	if err := scan(q.QueryRowContext(ctx, query, args...), &item); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func scanEstado(r rowScanner, e *models.Estado) error { return r.Scan(&e.Codigo, &e.Sigla, &e.Nome) }
func scanCidade(r rowScanner, c *models.Cidade) error { return r.Scan(&c.Codigo, &c.Nome) }
func scanBairro(r rowScanner, b *models.Bairro) error { return r.Scan(&b.Codigo, &b.Nome) }
func scanEndereco(r rowScanner, e *models.Endereco) error {
	return r.Scan(&e.Codigo, &e.Nome)
}
func scanEstadoCivil(r rowScanner, e *models.EstadoCivil) error {
	return r.Scan(&e.Codigo, &e.Descricao)
}
func scanNacionalidade(r rowScanner, n *models.Nacionalidade) error {
	return r.Scan(&n.Codigo, &n.Pais, &n.Capital, &n.Moeda, &n.Idioma)
}
func scanCBO(r rowScanner, c *models.CBO) error { return r.Scan(&c.Codigo, &c.Descricao) }
func scanAtividade(r rowScanner, a *models.AtividadeEconomica) error {
	return r.Scan(&a.Codigo, &a.Setor, &a.Subsetor, &a.Atividade, &a.Descricao)
}
func scanCep(r rowScanner, c *models.Cep) error {
	return r.Scan(&c.Cep, &c.Complemento, &c.Endereco, &c.Bairro, &c.Cidade, &c.Estado)
}

func (s *LookupStore) ListEstados(ctx context.Context) ([]models.Estado, error) {
	items, err := queryList(ctx, executor(ctx, s.db), `SELECT codigo, sigla, nome FROM tb_estado ORDER BY nome`, scanEstado)
	if err != nil {
		return nil, fmt.Errorf("list estados: %w", err)
	}
	return items, nil
}

func (s *LookupStore) GetEstado(ctx context.Context, codigo int) (*models.Estado, error) {
	item, err := queryOne(ctx, executor(ctx, s.db), `SELECT codigo, sigla, nome FROM tb_estado WHERE codigo = $1`, scanEstado, codigo)
	if err != nil {
		return nil, fmt.Errorf("get estado: %w", err)
	}
	return item, nil
}

// ListCidades lists every city. tb_cidade has no state column, so the
// by-state listing also uses this query.
func (s *LookupStore) ListCidades(ctx context.Context) ([]models.Cidade, error) {
	items, err := queryList(ctx, executor(ctx, s.db), `SELECT codigo, nome FROM tb_cidade ORDER BY nome`, scanCidade)
	if err != nil {
		return nil, fmt.Errorf("list cidades: %w", err)
	}
	return items, nil
}

func (s *LookupStore) GetCidade(ctx context.Context, codigo int) (*models.Cidade, error) {
	item, err := queryOne(ctx, executor(ctx, s.db), `SELECT codigo, nome FROM tb_cidade WHERE codigo = $1`, scanCidade, codigo)
	if err != nil {
		return nil, fmt.Errorf("get cidade: %w", err)
	}
	return item, nil
}

func (s *LookupStore) GetBairro(ctx context.Context, codigo int) (*models.Bairro, error) {
	item, err := queryOne(ctx, executor(ctx, s.db), `SELECT codigo, nome FROM tb_bairro WHERE codigo = $1`, scanBairro, codigo)
	if err != nil {
		return nil, fmt.Errorf("get bairro: %w", err)
	}
	return item, nil
}

func (s *LookupStore) GetEndereco(ctx context.Context, codigo int) (*models.Endereco, error) {
	item, err := queryOne(ctx, executor(ctx, s.db), `SELECT codigo, nome FROM tb_endereco WHERE codigo = $1`, scanEndereco, codigo)
	if err != nil {
		return nil, fmt.Errorf("get endereco: %w", err)
	}
	return item, nil
}

// GetOrCreateBairro returns the codigo of the neighborhood with exactly this
// name, inserting it when absent.
func (s *LookupStore) GetOrCreateBairro(ctx context.Context, nome string) (int, error) {
	codigo, err := s.getOrCreateByName(ctx, "tb_bairro", nome)
	if err != nil {
		return 0, fmt.Errorf("get or create bairro: %w", err)
	}
	return codigo, nil
}

// GetOrCreateEndereco returns the codigo of the street with exactly this
// name, inserting it when absent.
func (s *LookupStore) GetOrCreateEndereco(ctx context.Context, nome string) (int, error) {
	codigo, err := s.getOrCreateByName(ctx, "tb_endereco", nome)
	if err != nil {
		return 0, fmt.Errorf("get or create endereco: %w", err)
	}
	return codigo, nil
}

// table is one of the fixed lookup tables above, never user input.
func (s *LookupStore) getOrCreateByName(ctx context.Context, table, nome string) (int, error) {
	q := executor(ctx, s.db)

	var codigo int
	err := q.QueryRowContext(ctx, `SELECT codigo FROM `+table+` WHERE nome = $1 ORDER BY codigo LIMIT 1`, nome).Scan(&codigo)
	if err == nil {
		return codigo, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, err
	}

	if err := q.QueryRowContext(ctx, `INSERT INTO `+table+` (nome) VALUES ($1) RETURNING codigo`, nome).Scan(&codigo); err != nil {
		return 0, err
	}
	return codigo, nil
}

// GetCep looks up a postal code by its 8 digits
func (s *LookupStore) GetCep(ctx context.Context, cep string) (*models.Cep, error) {
	query := `SELECT cep, complemento, endereco, bairro, cidade, estado FROM tb_cep WHERE cep = $1`
	item, err := queryOne(ctx, executor(ctx, s.db), query, scanCep, cep)
	if err != nil {
		return nil, fmt.Errorf("get cep: %w", err)
	}
	return item, nil
}

func (s *LookupStore) ListEstadosCivis(ctx context.Context) ([]models.EstadoCivil, error) {
	items, err := queryList(ctx, executor(ctx, s.db), `SELECT codigo, descricao FROM tb_estado_civil ORDER BY codigo`, scanEstadoCivil)
	if err != nil {
		return nil, fmt.Errorf("list estados civis: %w", err)
	}
	return items, nil
}

func (s *LookupStore) ListNacionalidades(ctx context.Context) ([]models.Nacionalidade, error) {
	query := `SELECT codigo, pais, capital, moeda, idioma FROM tb_nacionalidade ORDER BY pais`
	items, err := queryList(ctx, executor(ctx, s.db), query, scanNacionalidade)
	if err != nil {
		return nil, fmt.Errorf("list nacionalidades: %w", err)
	}
	return items, nil
}

func (s *LookupStore) GetNacionalidade(ctx context.Context, codigo int) (*models.Nacionalidade, error) {
	query := `SELECT codigo, pais, capital, moeda, idioma FROM tb_nacionalidade WHERE codigo = $1`
	item, err := queryOne(ctx, executor(ctx, s.db), query, scanNacionalidade, codigo)
	if err != nil {
		return nil, fmt.Errorf("get nacionalidade: %w", err)
	}
	return item, nil
}

func (s *LookupStore) ListCBOs(ctx context.Context) ([]models.CBO, error) {
	items, err := queryList(ctx, executor(ctx, s.db), `SELECT cbo, descricao FROM tb_cbo ORDER BY descricao`, scanCBO)
	if err != nil {
		return nil, fmt.Errorf("list cbos: %w", err)
	}
	return items, nil
}

func (s *LookupStore) GetCBO(ctx context.Context, codigo string) (*models.CBO, error) {
	item, err := queryOne(ctx, executor(ctx, s.db), `SELECT cbo, descricao FROM tb_cbo WHERE cbo = $1`, scanCBO, codigo)
	if err != nil {
		return nil, fmt.Errorf("get cbo: %w", err)
	}
	return item, nil
}

const atividadeColumns = `codigo, setor, subsetor, atividade, descricao`

func (s *LookupStore) ListAtividades(ctx context.Context) ([]models.AtividadeEconomica, error) {
	query := `SELECT ` + atividadeColumns + ` FROM tb_atividade_economica ORDER BY descricao`
	items, err := queryList(ctx, executor(ctx, s.db), query, scanAtividade)
	if err != nil {
		return nil, fmt.Errorf("list atividades: %w", err)
	}
	return items, nil
}

func (s *LookupStore) GetAtividade(ctx context.Context, codigo int) (*models.AtividadeEconomica, error) {
	query := `SELECT ` + atividadeColumns + ` FROM tb_atividade_economica WHERE codigo = $1`
	item, err := queryOne(ctx, executor(ctx, s.db), query, scanAtividade, codigo)
	if err != nil {
		return nil, fmt.Errorf("get atividade: %w", err)
	}
	return item, nil
}

func (s *LookupStore) ListAtividadesPorSetor(ctx context.Context, setor int) ([]models.AtividadeEconomica, error) {
	query := `SELECT ` + atividadeColumns + ` FROM tb_atividade_economica WHERE setor = $1 ORDER BY descricao`
	items, err := queryList(ctx, executor(ctx, s.db), query, scanAtividade, setor)
	if err != nil {
		return nil, fmt.Errorf("list atividades por setor: %w", err)
	}
	return items, nil
}
