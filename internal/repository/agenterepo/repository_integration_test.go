//go:build integration

package agenterepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"delegacia/internal/domain"
	"delegacia/internal/pkg/database/dbtest"
	"delegacia/internal/pkg/logger"
	"delegacia/internal/repository/agenterepo"
)

func strPtr(s string) *string { return &s }

func TestAgenteRepository_Integration(t *testing.T) {
	db := dbtest.NewPostgres(t)
	repo := agenterepo.NewAgenteRepository(db, 5*time.Second, logger.NewNop())
	ctx := context.Background()

	t.Run("GetAll sem filtros ordena por id", func(t *testing.T) {
		agentes, err := repo.GetAllAgentes(ctx, domain.AgenteFilter{})
		require.NoError(t, err)
		require.Len(t, agentes, 3)
		assert.Equal(t, domain.Agente{ID: 1, Nome: "Rommel Carneiro", DataDeIncorporacao: "1992-10-04", Cargo: "Delegado"}, agentes[0])
	})

	t.Run("GetAll filtra cargo por substring sem diferenciar maiúsculas", func(t *testing.T) {
		agentes, err := repo.GetAllAgentes(ctx, domain.AgenteFilter{Cargo: "INVESTIG"})
		require.NoError(t, err)
		require.Len(t, agentes, 1)
		assert.Equal(t, "Ana Paula", agentes[0].Nome)
	})

	t.Run("GetAll ordena pela data de incorporação", func(t *testing.T) {
		asc, err := repo.GetAllAgentes(ctx, domain.AgenteFilter{Sort: domain.SortDataAsc})
		require.NoError(t, err)
		desc, err := repo.GetAllAgentes(ctx, domain.AgenteFilter{Sort: domain.SortDataDesc})
		require.NoError(t, err)

		require.Len(t, asc, 3)
		for i := 1; i < len(asc); i++ {
			assert.LessOrEqual(t, asc[i-1].DataDeIncorporacao, asc[i].DataDeIncorporacao)
			assert.GreaterOrEqual(t, desc[i-1].DataDeIncorporacao, desc[i].DataDeIncorporacao)
		}
	})

	t.Run("GetByID inexistente retorna nil", func(t *testing.T) {
		agente, err := repo.GetAgenteByID(ctx, 9999)
		require.NoError(t, err)
		assert.Nil(t, agente)
	})

	t.Run("Patch altera apenas os campos informados", func(t *testing.T) {
		updated, err := repo.PatchAgente(ctx, 2, domain.AgentePatch{Cargo: strPtr("Delegada")})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, domain.Agente{ID: 2, Nome: "Ana Paula", DataDeIncorporacao: "2005-05-15", Cargo: "Delegada"}, *updated)
	})

	t.Run("Update e Patch de agente inexistente retornam nil", func(t *testing.T) {
		updated, err := repo.UpdateAgente(ctx, 9999, domain.Agente{Nome: "X", DataDeIncorporacao: "2000-01-01", Cargo: "Y"})
		require.NoError(t, err)
		assert.Nil(t, updated)

		patched, err := repo.PatchAgente(ctx, 9999, domain.AgentePatch{Nome: strPtr("X")})
		require.NoError(t, err)
		assert.Nil(t, patched)
	})

	t.Run("Create e Update completo", func(t *testing.T) {
		created, err := repo.CreateAgente(ctx, domain.Agente{Nome: "Joana", DataDeIncorporacao: "2015-01-02", Cargo: "Escrivã"})
		require.NoError(t, err)
		assert.Greater(t, created.ID, 3)
		assert.Equal(t, "2015-01-02", created.DataDeIncorporacao)

		updated, err := repo.UpdateAgente(ctx, created.ID, domain.Agente{Nome: "Joana Lima", DataDeIncorporacao: "2016-03-04", Cargo: "Delegada"})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, domain.Agente{ID: created.ID, Nome: "Joana Lima", DataDeIncorporacao: "2016-03-04", Cargo: "Delegada"}, *updated)
	})

	t.Run("Delete remove os casos do agente em cascata", func(t *testing.T) {
		_, err := db.ExecContext(ctx, `INSERT INTO casos (titulo, descricao, status, agente_id) VALUES ('Extra', 'outro caso', 'aberto', 1)`)
		require.NoError(t, err)

		var before int
		require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM casos WHERE agente_id = 1`).Scan(&before))
		require.Equal(t, 2, before)

		deleted, err := repo.DeleteAgente(ctx, 1)
		require.NoError(t, err)
		assert.True(t, deleted)

		var after int
		require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM casos WHERE agente_id = 1`).Scan(&after))
		assert.Zero(t, after)

		deleted, err = repo.DeleteAgente(ctx, 1)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}
