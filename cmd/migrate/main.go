package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"delegacia/config"
	"delegacia/internal/pkg/database"
)

var timeout time.Duration

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: arquivo .env não encontrado. Usando apenas o ambiente do sistema: %v", err)
	}

	goose.SetLogger(log.New(os.Stderr, "goose: ", log.LstdFlags))

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "migrate",
		Short:        "Gerencia o schema e os dados iniciais do banco da delegacia",
		SilenceUsage: true,
	}
	root.PersistentFlags().DurationVar(&timeout, "timeout", 2*time.Minute, "tempo máximo da operação")

	root.AddCommand(
		gooseCmd("up", "Aplica todas as migrações pendentes"),
		gooseCmd("down", "Reverte a última migração"),
		gooseCmd("status", "Mostra o estado de cada migração"),
		&cobra.Command{
			Use:   "seed",
			Short: "Carrega agentes e casos de exemplo",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withDB(cmd.Context(), func(ctx context.Context, db *sql.DB) error {
					return database.Seed(ctx, db)
				})
			},
		},
	)
	return root
}

func gooseCmd(command, short string) *cobra.Command {
	return &cobra.Command{
		Use:   command,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(cmd.Context(), func(ctx context.Context, db *sql.DB) error {
				return database.Migrate(ctx, db, command)
			})
		},
	}
}

// withDB abre a conexão a partir da configuração e a fecha ao final.
func withDB(parent context.Context, fn func(ctx context.Context, db *sql.DB) error) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	db, err := database.NewPostgresDB(cfg.DatabaseURL, cfg.DBTimeout)
	if err != nil {
		return fmt.Errorf("goose: falha ao conectar ao DB: %w", err)
	}
	defer db.Close()

	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()

	return fn(ctx, db)
}
