package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/prefeitura-rio/app-cadastro/internal/config"
	"github.com/prefeitura-rio/app-cadastro/internal/repository"
)

// Reference rows for development databases. Production loads the full
// IBGE, CBO and CNAE tables from their official extracts.

var seedCidades = []string{"Rio de Janeiro", "Niterói", "São Gonçalo", "Duque de Caxias", "Nova Iguaçu"}

var seedNacionalidades = []struct{ pais, capital, moeda, idioma string }{
	{"Brasil", "Brasília", "Real", "Português"},
	{"Portugal", "Lisboa", "Euro", "Português"},
	{"Argentina", "Buenos Aires", "Peso argentino", "Espanhol"},
	{"Angola", "Luanda", "Kwanza", "Português"},
}

var seedCBOs = []struct{ codigo, descricao string }{
	{"2124-05", "Analista de desenvolvimento de sistemas"},
	{"2231-10", "Médico clínico"},
	{"2312-10", "Professor de nível médio no ensino fundamental"},
	{"4110-10", "Assistente administrativo"},
	{"5134-05", "Garçom"},
}

var seedAtividades = []struct {
	setor, subsetor      int
	atividade, descricao string
}{
	{1, 1, "1091-1/02", "Fabricação de produtos de padaria e confeitaria"},
	{2, 1, "4711-3/02", "Comércio varejista de mercadorias em geral"},
	{3, 1, "6201-5/01", "Desenvolvimento de programas de computador sob encomenda"},
	{3, 2, "8630-5/03", "Atividade médica ambulatorial restrita a consultas"},
}

var seedCeps = []struct {
	cep, bairro, endereco string
	cidade, estado        int
}{
	{"20040020", "Centro", "Rua da Assembleia", 1, 19},
	{"22250040", "Botafogo", "Praia de Botafogo", 1, 19},
	{"24020005", "Centro", "Rua Visconde de Sepetiba", 2, 19},
}

func main() {
	fmt.Println("🌱 Seeding reference tables...")

	if err := config.LoadConfig(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := config.InitPostgres(ctx); err != nil {
		log.Fatalf("Failed to initialize PostgreSQL: %v", err)
	}
	defer config.Postgres.Close()

	var count int
	if err := config.Postgres.QueryRowContext(ctx, `SELECT COUNT(*) FROM tb_cidade`).Scan(&count); err != nil {
		log.Fatalf("Failed to count existing cities: %v", err)
	}
	if count > 0 {
		fmt.Printf("⚠️  Found %d existing cities. Seed the missing rows anyway? (y/N): ", count)
		var response string
		if _, err := fmt.Scanln(&response); err != nil || (response != "y" && response != "Y") {
			fmt.Println("❌ Seeding cancelled")
			return
		}
	}

	lookups := repository.NewLookupStore(config.Postgres)
	err := repository.NewTxRunner(config.Postgres).RunInTx(ctx, func(ctx context.Context) error {
		tx, ok := repository.TxFrom(ctx)
		if !ok {
			return errors.New("no transaction in context")
		}

		for i, nome := range seedCidades {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO tb_cidade (codigo, nome) VALUES ($1, $2) ON CONFLICT (codigo) DO NOTHING`, i+1, nome); err != nil {
				return fmt.Errorf("insert cidade %s: %w", nome, err)
			}
		}
		if _, err := tx.ExecContext(ctx,
			`SELECT setval(pg_get_serial_sequence('tb_cidade', 'codigo'), GREATEST((SELECT MAX(codigo) FROM tb_cidade), 1))`); err != nil {
			return fmt.Errorf("advance cidade sequence: %w", err)
		}

		for _, n := range seedNacionalidades {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO tb_nacionalidade (pais, capital, moeda, idioma)
				 SELECT $1, $2, $3, $4 WHERE NOT EXISTS (SELECT 1 FROM tb_nacionalidade WHERE pais = $1)`,
				n.pais, n.capital, n.moeda, n.idioma); err != nil {
				return fmt.Errorf("insert nacionalidade %s: %w", n.pais, err)
			}
		}

		for _, c := range seedCBOs {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO tb_cbo (cbo, descricao) VALUES ($1, $2) ON CONFLICT (cbo) DO NOTHING`, c.codigo, c.descricao); err != nil {
				return fmt.Errorf("insert cbo %s: %w", c.codigo, err)
			}
		}

		for _, a := range seedAtividades {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO tb_atividade_economica (setor, subsetor, atividade, descricao)
				 SELECT $1, $2, $3, $4 WHERE NOT EXISTS (SELECT 1 FROM tb_atividade_economica WHERE atividade = $3)`,
				a.setor, a.subsetor, a.atividade, a.descricao); err != nil {
				return fmt.Errorf("insert atividade %s: %w", a.atividade, err)
			}
		}

		for _, c := range seedCeps {
			bairro, err := lookups.GetOrCreateBairro(ctx, c.bairro)
			if err != nil {
				return err
			}
			endereco, err := lookups.GetOrCreateEndereco(ctx, c.endereco)
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO tb_cep (cep, endereco, bairro, cidade, estado) VALUES ($1, $2, $3, $4, $5)
				 ON CONFLICT (cep) DO NOTHING`,
				c.cep, endereco, bairro, c.cidade, c.estado); err != nil {
				return fmt.Errorf("insert cep %s: %w", c.cep, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Fatalf("Failed to seed reference tables: %v", err)
	}

	fmt.Printf("✅ Seeded %d cities, %d nationalities, %d CBO codes, %d activities and %d CEPs\n",
		len(seedCidades), len(seedNacionalidades), len(seedCBOs), len(seedAtividades), len(seedCeps))
	fmt.Println("\n🎉 Seeding completed successfully!")
}
