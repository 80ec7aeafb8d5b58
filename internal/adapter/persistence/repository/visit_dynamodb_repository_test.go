package repository

import (
	"testing"
	"time"

	"solar_pipeline/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromVisitItem_LeadIDOnly(t *testing.T) {
	raw, err := attributevalue.MarshalMap(map[string]any{
		"id":         "v1",
		"lead_id":    " 0503AnaSilvaWestEnd ",
		"date":       "05/03/2025",
		"time":       "09:15",
		"gps":        "-27.47,153.02",
		"notes":      "roof faces north",
		"created_at": "2025-03-05T09:15:00Z",
	})
	require.NoError(t, err)

	var it visitItem
	require.NoError(t, attributevalue.UnmarshalMap(raw, &it))
	v := fromVisitItem(it)

	assert.Equal(t, "v1", v.ID)
	assert.Equal(t, "0503AnaSilvaWestEnd", v.ClientID)
	assert.Equal(t, "roof faces north", v.Notes)
	assert.True(t, v.CreatedAt.Equal(time.Date(2025, 3, 5, 9, 15, 0, 0, time.UTC)))
}

func TestFromVisitItem_ClientIDWins(t *testing.T) {
	v := fromVisitItem(visitItem{ID: "v1", ClientID: "new", LeadID: "old"})
	assert.Equal(t, "new", v.ClientID)
}

func TestToVisitItem_WritesClientID(t *testing.T) {
	av, err := attributevalue.MarshalMap(toVisitItem(entities.Visit{ID: "v1", ClientID: "c1"}))
	require.NoError(t, err)

	assert.Contains(t, av, "client_id")
	assert.NotContains(t, av, "lead_id")
}

func TestSortVisits_OldestFirst(t *testing.T) {
	base := time.Date(2025, 3, 5, 9, 0, 0, 0, time.UTC)
	visits := []entities.Visit{
		{ID: "c", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "a", CreatedAt: base},
		{ID: "b", CreatedAt: base.Add(time.Hour)},
	}

	sortVisits(visits)

	assert.Equal(t, []string{"a", "b", "c"}, []string{visits[0].ID, visits[1].ID, visits[2].ID})
}
