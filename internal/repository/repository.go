//go:generate mockgen -source=repository.go -destination=mock/repository_mock.go -package=mock

package repository

import (
	"context"

	"github.com/prefeitura-rio/app-cadastro/internal/models"
)

// PessoaRepository is the data access contract for tb_pessoa
type PessoaRepository interface {
	Create(ctx context.Context, p *models.Pessoa) (int, error)
	GetByID(ctx context.Context, codigo int) (*models.Pessoa, error)
	GetAll(ctx context.Context) ([]models.Pessoa, error)
	GetByTipo(ctx context.Context, tipo string) ([]models.Pessoa, error)
	Search(ctx context.Context, termo string) ([]models.Pessoa, error)
	Update(ctx context.Context, p *models.Pessoa) (bool, error)
	Delete(ctx context.Context, codigo int) (bool, error)
}

// PessoaFisicaRepository is the data access contract for tb_pessoa_fisica
type PessoaFisicaRepository interface {
	Create(ctx context.Context, pf *models.PessoaFisica) error
	GetByPessoaID(ctx context.Context, pessoa int) (*models.PessoaFisica, error)
	Update(ctx context.Context, pf *models.PessoaFisica) (bool, error)
	Delete(ctx context.Context, pessoa int) (bool, error)
}

// PessoaJuridicaRepository is the data access contract for tb_pessoa_juridica
type PessoaJuridicaRepository interface {
	Create(ctx context.Context, pj *models.PessoaJuridica) error
	GetByPessoaID(ctx context.Context, pessoa int) (*models.PessoaJuridica, error)
	Update(ctx context.Context, pj *models.PessoaJuridica) (bool, error)
	Delete(ctx context.Context, pessoa int) (bool, error)
}

// TelefoneRepository is the data access contract for tb_pessoa_telefone
type TelefoneRepository interface {
	Create(ctx context.Context, t *models.Telefone) (int, error)
	GetByPessoaID(ctx context.Context, pessoa int) ([]models.Telefone, error)
	DeleteByPessoaID(ctx context.Context, pessoa int) (int64, error)
}

// EnderecoEletronicoRepository is the data access contract for tb_pessoa_endereco_eletronico
type EnderecoEletronicoRepository interface {
	Create(ctx context.Context, e *models.EnderecoEletronico) (int, error)
	GetByPessoaID(ctx context.Context, pessoa int) ([]models.EnderecoEletronico, error)
	DeleteByPessoaID(ctx context.Context, pessoa int) (int64, error)
}

// LookupRepository is the data access contract for the reference tables
type LookupRepository interface {
	ListEstados(ctx context.Context) ([]models.Estado, error)
	GetEstado(ctx context.Context, codigo int) (*models.Estado, error)
	ListCidades(ctx context.Context) ([]models.Cidade, error)
	GetCidade(ctx context.Context, codigo int) (*models.Cidade, error)
	GetBairro(ctx context.Context, codigo int) (*models.Bairro, error)
	GetEndereco(ctx context.Context, codigo int) (*models.Endereco, error)
	GetOrCreateBairro(ctx context.Context, nome string) (int, error)
	GetOrCreateEndereco(ctx context.Context, nome string) (int, error)
	GetCep(ctx context.Context, cep string) (*models.Cep, error)
	ListEstadosCivis(ctx context.Context) ([]models.EstadoCivil, error)
	ListNacionalidades(ctx context.Context) ([]models.Nacionalidade, error)
	GetNacionalidade(ctx context.Context, codigo int) (*models.Nacionalidade, error)
	ListCBOs(ctx context.Context) ([]models.CBO, error)
	GetCBO(ctx context.Context, codigo string) (*models.CBO, error)
	ListAtividades(ctx context.Context) ([]models.AtividadeEconomica, error)
	GetAtividade(ctx context.Context, codigo int) (*models.AtividadeEconomica, error)
	ListAtividadesPorSetor(ctx context.Context, setor int) ([]models.AtividadeEconomica, error)
}

// UsuarioRepository is the data access contract for tb_usuario
type UsuarioRepository interface {
	Create(ctx context.Context, u *models.Usuario) (int, error)
	GetByID(ctx context.Context, codigo int) (*models.Usuario, error)
	GetByUsuario(ctx context.Context, usuario string) (*models.Usuario, error)
	AlterarSenha(ctx context.Context, codigo int, senhaHash string) (bool, error)
	GetAll(ctx context.Context) ([]models.Usuario, error)
}

var (
	_ PessoaRepository             = (*PessoaStore)(nil)
	_ PessoaFisicaRepository       = (*PessoaFisicaStore)(nil)
	_ PessoaJuridicaRepository     = (*PessoaJuridicaStore)(nil)
	_ TelefoneRepository           = (*TelefoneStore)(nil)
	_ EnderecoEletronicoRepository = (*EnderecoEletronicoStore)(nil)
	_ LookupRepository             = (*LookupStore)(nil)
	_ UsuarioRepository            = (*UsuarioStore)(nil)
	_ Transactor                   = (*TxRunner)(nil)
)
