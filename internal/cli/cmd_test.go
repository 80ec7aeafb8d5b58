package cli

import (
	"bytes"
	"context"
	"testing"

	"solar_pipeline/internal/adapter/persistence/memory"
	"solar_pipeline/internal/domain/entities"
	"solar_pipeline/internal/usecase"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	app     *App
	clients *memory.ClientRepository
	legacy  *memory.ClientRepository
	sources []string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		clients: memory.NewClientRepository(),
		legacy:  memory.NewClientRepository(),
	}
	env.app = &App{
		Clients: usecase.NewClientUseCase(env.clients, memory.NewProductRepository()),
		Migration: func(source string) usecase.IMigrationUseCase {
			env.sources = append(env.sources, source)
			return usecase.NewMigrationUseCase(env.clients, env.legacy)
		},
	}
	return env
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return buf.String(), err
}

func seedClient(t *testing.T, repo *memory.ClientRepository, rec entities.ClientRecord) {
	t.Helper()
	_, err := repo.Create(context.Background(), rec)
	require.NoError(t, err)
}

func TestMigrateLegacyCmd(t *testing.T) {
	env := newTestEnv(t)
	seedClient(t, env.legacy, entities.ClientRecord{ID: "0101JoWestEnd", Profile: entities.Profile{Name: "Jo"}})

	out, err := executeCmd(t, env.app, "migrate-legacy", "--source", "old_leads", "--delete-source")
	require.NoError(t, err)
	assert.Contains(t, out, "copied:    1")
	assert.Contains(t, out, "deleted:   1")
	assert.Contains(t, out, "visits:    0")
	assert.Equal(t, []string{"old_leads"}, env.sources)

	got, _ := env.clients.GetByID(context.Background(), "0101JoWestEnd")
	assert.Equal(t, entities.StageLead, got.Stage)
}

func TestMigrateLegacyCmd_DefaultSource(t *testing.T) {
	env := newTestEnv(t)

	_, err := executeCmd(t, env.app, "migrate-legacy")
	require.NoError(t, err)
	assert.Equal(t, []string{"leads"}, env.sources)
}

func TestBoardCmd(t *testing.T) {
	env := newTestEnv(t)
	gofakeit.Seed(7)
	for i := 0; i < 5; i++ {
		seedClient(t, env.clients, entities.ClientRecord{
			ID:      gofakeit.UUID(),
			Stage:   entities.StageVisit,
			Profile: entities.Profile{Name: gofakeit.Name(), Neighborhood: gofakeit.City()},
		})
	}
	seedClient(t, env.clients, entities.ClientRecord{
		ID:      "bat",
		Profile: entities.Profile{Name: "Bea Lima"},
		LineItems: map[entities.LineItemKey]entities.LineItem{
			entities.LineItemBattery: {Quantity: 1, UnitPrice: 9000},
		},
	})

	out, err := executeCmd(t, env.app, "board")
	require.NoError(t, err)
	assert.Contains(t, out, "VISIT (5)")
	assert.Contains(t, out, "[battery]")
	assert.Contains(t, out, "total clients: 6")
}

func TestTotalCmd(t *testing.T) {
	env := newTestEnv(t)
	seedClient(t, env.clients, entities.ClientRecord{
		ID: "0503AnaSilvaWestEnd",
		LineItems: map[entities.LineItemKey]entities.LineItem{
			entities.LineItemInverter: {Quantity: 1, UnitPrice: 1500},
			entities.LineItemPanels:   {Quantity: 10, UnitPrice: 250},
		},
	})

	out, err := executeCmd(t, env.app, "total", "0503AnaSilvaWestEnd")
	require.NoError(t, err)
	assert.Contains(t, out, "4000.00")
	assert.Contains(t, out, "inverter")
	assert.NotContains(t, out, "tiledRoof")
}

func TestTotalCmd_Errors(t *testing.T) {
	env := newTestEnv(t)

	_, err := executeCmd(t, env.app, "total")
	assert.Error(t, err)

	_, err = executeCmd(t, env.app, "total", "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, usecase.ErrClientNotFound)
}
