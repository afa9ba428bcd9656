package services

import (
	"context"
	"testing"
	"time"

	"github.com/bwsolucoes/carteira-api/internal/models"
	"github.com/bwsolucoes/carteira-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditService_Append_SetsIdentityAndTimestamp(t *testing.T) {
	svcs, repos := newTestServices()
	ctx := context.Background()

	before := time.Now().UTC()
	require.NoError(t, svcs.Audit.Append(ctx, "alice", models.ActionCreate, "c1", "Acme", "Cliente 'Acme' criado."))

	events, err := repos.Audit.Query(ctx, "")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.NotEmpty(t, events[0].ID)
	assert.False(t, events[0].Timestamp.Before(before))
	assert.Equal(t, time.UTC, events[0].Timestamp.Location())
}

func TestAuditService_Query_NewestFirst(t *testing.T) {
	repos := repository.NewMemoryRepositories()
	svc := NewAuditService(repos.Audit)
	ctx := context.Background()

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, details := range []string{"primeiro", "segundo", "terceiro"} {
		require.NoError(t, repos.Audit.Append(ctx, &models.AuditEvent{
			ID:        details,
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			User:      "alice",
			Action:    models.ActionCreate,
			Details:   details,
		}))
	}

	events, err := svc.Query(ctx, "")
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "terceiro", events[0].Details)
	assert.Equal(t, "segundo", events[1].Details)
	assert.Equal(t, "primeiro", events[2].Details)
}

func TestAuditService_Query_FiltersCaseInsensitive(t *testing.T) {
	svcs, _ := newTestServices()
	ctx := context.Background()

	require.NoError(t, svcs.Audit.Append(ctx, "Alice", models.ActionCreate, "c1", "Acme", "Cliente 'Acme' criado."))
	require.NoError(t, svcs.Audit.Append(ctx, "bruno", models.ActionDelete, "c2", "Beta", "Cliente 'Beta' e todos os seus contratos foram excluídos."))

	byUser, err := svcs.Audit.Query(ctx, "ali")
	require.NoError(t, err)
	require.Len(t, byUser, 1)
	assert.Equal(t, "Alice", byUser[0].User)

	byDetails, err := svcs.Audit.Query(ctx, "EXCLUÍDOS")
	require.NoError(t, err)
	require.Len(t, byDetails, 1)
	assert.Equal(t, "bruno", byDetails[0].User)

	none, err := svcs.Audit.Query(ctx, "zzz")
	require.NoError(t, err)
	assert.Empty(t, none)
}
