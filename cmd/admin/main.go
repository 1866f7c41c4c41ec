// Command admin bootstraps the first administrator account. Registering an
// administrator through the API requires an administrator token, so the
// first one is created here against the database directly.
//
//	ADMIN_SENHA=... go run ./cmd/admin -usuario admin
//	ADMIN_SENHA=... go run ./cmd/admin -usuario admin -reset
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/prefeitura-rio/app-cadastro/internal/config"
	"github.com/prefeitura-rio/app-cadastro/internal/logging"
	"github.com/prefeitura-rio/app-cadastro/internal/models"
	"github.com/prefeitura-rio/app-cadastro/internal/repository"
	"github.com/prefeitura-rio/app-cadastro/internal/services"
)

const minSenhaLength = 6

func main() {
	usuario := flag.String("usuario", "admin", "login of the administrator account")
	reset := flag.Bool("reset", false, "replace the password when the account already exists")
	flag.Parse()

	_ = godotenv.Load()

	if err := logging.InitLogger(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logging.Logger.Sync()

	if err := run(strings.TrimSpace(*usuario), os.Getenv("ADMIN_SENHA"), *reset); err != nil {
		logging.Logger.Error("admin bootstrap failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(usuario, senha string, reset bool) error {
	if usuario == "" {
		return errors.New("usuario must not be empty")
	}
	if len(senha) < minSenhaLength {
		return fmt.Errorf("ADMIN_SENHA must have at least %d characters", minSenhaLength)
	}

	if err := config.LoadConfig(); err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := config.InitPostgres(ctx); err != nil {
		return err
	}
	defer config.Postgres.Close()

	return bootstrapAdmin(ctx, repository.NewUsuarioStore(config.Postgres), services.NewPasswordHasher(0), usuario, senha, reset)
}

// usuarioStore is the subset of the user repository the bootstrap needs
type usuarioStore interface {
	GetByUsuario(ctx context.Context, usuario string) (*models.Usuario, error)
	Create(ctx context.Context, u *models.Usuario) (int, error)
	AlterarSenha(ctx context.Context, codigo int, senhaHash string) (bool, error)
}

func bootstrapAdmin(ctx context.Context, store usuarioStore, hasher *services.PasswordHasher, usuario, senha string, reset bool) error {
	existente, err := store.GetByUsuario(ctx, usuario)
	if err != nil {
		return fmt.Errorf("lookup usuario: %w", err)
	}

	hash, err := hasher.Hash(senha)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if existente != nil {
		if existente.Tipo == nil || *existente.Tipo != models.TipoAdministrador {
			return fmt.Errorf("usuario %q exists and is not an administrator", usuario)
		}
		if !reset {
			logging.Logger.Info("administrator already exists", zap.String("usuario", usuario))
			return nil
		}
		if _, err := store.AlterarSenha(ctx, existente.Codigo, hash); err != nil {
			return fmt.Errorf("reset password: %w", err)
		}
		logging.Logger.Info("administrator password reset", zap.Int("user_id", existente.Codigo))
		return nil
	}

	tipo := models.TipoAdministrador
	codigo, err := store.Create(ctx, &models.Usuario{Usuario: usuario, Senha: hash, Tipo: &tipo})
	if err != nil {
		return fmt.Errorf("create administrator: %w", err)
	}
	logging.Logger.Info("administrator created", zap.Int("user_id", codigo), zap.String("usuario", usuario))
	return nil
}
