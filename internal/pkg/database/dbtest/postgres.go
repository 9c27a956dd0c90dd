//go:build integration

// Package dbtest sobe um PostgreSQL descartável para os testes de integração dos
// repositórios, já com migrações e seeds aplicados.
package dbtest

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"delegacia/internal/pkg/database"
)

const (
	postgresImage         = "postgres:16-alpine"
	postgresPort          = "5432/tcp"
	testDatabaseName      = "delegacia_test"
	testUser              = "delegacia"
	testPassword          = "delegacia"
	containerStartTimeout = 90 * time.Second
)

// NewPostgres inicia o container, aplica as migrações e os seeds e registra a
// limpeza em t.Cleanup.
func NewPostgres(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        postgresImage,
		ExposedPorts: []string{postgresPort},
		Env: map[string]string{
			"POSTGRES_DB":       testDatabaseName,
			"POSTGRES_USER":     testUser,
			"POSTGRES_PASSWORD": testPassword,
		},
		// O postgres reinicia uma vez após o initdb.
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(containerStartTimeout),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "falha ao iniciar container do PostgreSQL")
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("aviso: falha ao encerrar container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		testUser, testPassword, host, port.Port(), testDatabaseName)

	db, err := database.NewPostgresDB(dsn, 10*time.Second)
	require.NoError(t, err, "falha ao conectar no PostgreSQL de teste")
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, database.Migrate(ctx, db, "up"))
	require.NoError(t, database.Seed(ctx, db))

	return db
}
