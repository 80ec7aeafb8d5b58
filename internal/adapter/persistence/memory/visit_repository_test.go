package memory

import (
	"context"
	"testing"
	"time"

	"solar_pipeline/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisitRepository_ListByClientID(t *testing.T) {
	ctx := context.Background()
	repo := NewVisitRepository()
	base := time.Date(2025, 3, 5, 9, 0, 0, 0, time.UTC)

	_, err := repo.Create(ctx, entities.Visit{ID: "v2", ClientID: "a", CreatedAt: base.Add(time.Hour)})
	require.NoError(t, err)
	_, err = repo.Create(ctx, entities.Visit{ID: "v1", ClientID: "a", CreatedAt: base})
	require.NoError(t, err)
	_, err = repo.Create(ctx, entities.Visit{ID: "v3", ClientID: "b", CreatedAt: base})
	require.NoError(t, err)

	got, err := repo.ListByClientID(ctx, "a")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "v1", got[0].ID)
	assert.Equal(t, "v2", got[1].ID)

	none, err := repo.ListByClientID(ctx, "zzz")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
