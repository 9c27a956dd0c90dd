package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

//go:embed seeds/*.sql
var seedsFS embed.FS

const (
	migrationsDir = "migrations"
	seedsDir      = "seeds"
)

// Migrate executa um comando do goose ("up", "down", "status", "reset"...) sobre as
// migrações embutidas no binário.
func Migrate(ctx context.Context, db *sql.DB, command string, args ...string) error {
	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose: dialeto inválido: %w", err)
	}

	if err := goose.RunContext(ctx, command, db, migrationsDir, args...); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}
	return nil
}

// Seed carrega os dados iniciais (agentes e casos). Os seeds não são versionados:
// cada execução recria o conjunto do zero.
func Seed(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(seedsFS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose: dialeto inválido: %w", err)
	}

	if err := goose.RunWithOptionsContext(ctx, "up", db, seedsDir, nil, goose.WithNoVersioning()); err != nil {
		return fmt.Errorf("goose seed: %w", err)
	}
	return nil
}
