package pricing

import (
	"math"
	"math/rand"
	"testing"

	"solar_pipeline/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineTotal_ZeroOperands(t *testing.T) {
	cases := []entities.LineItem{
		{},
		{Quantity: 0, UnitPrice: 120},
		{Quantity: 3, UnitPrice: 0},
		{Quantity: -1, UnitPrice: 50},
		{Quantity: 2, UnitPrice: -50},
		{Quantity: math.NaN(), UnitPrice: 10},
		{Quantity: 1, UnitPrice: math.Inf(1)},
	}
	for _, item := range cases {
		assert.Equal(t, 0.0, LineTotal(item), "item %+v", item)
	}
}

func TestLineTotal(t *testing.T) {
	assert.Equal(t, 1000.0, LineTotal(entities.LineItem{Quantity: 2, UnitPrice: 500}))
	assert.Equal(t, 0.3, LineTotal(entities.LineItem{Quantity: 3, UnitPrice: 0.1}))
}

func TestClientTotal_Scenario(t *testing.T) {
	record := entities.ClientRecord{
		Profile: entities.Profile{Name: "Ana", Neighborhood: "Oeste"},
		LineItems: map[entities.LineItemKey]entities.LineItem{
			entities.LineItemInverter: {Quantity: 2, UnitPrice: 500},
			entities.LineItemPanels:   {Quantity: 10, UnitPrice: 200},
			entities.LineItemBattery:  {Quantity: 1, UnitPrice: 1000},
			entities.LineItemCB:       {Quantity: 0, UnitPrice: 50},
		},
	}
	assert.Equal(t, 4000.0, ClientTotal(record))
}

func TestClientTotal_NilLineItems(t *testing.T) {
	assert.Equal(t, 0.0, ClientTotal(entities.ClientRecord{}))
}

func TestClientTotal_OrderIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 50; round++ {
		record := entities.ClientRecord{LineItems: map[entities.LineItemKey]entities.LineItem{}}
		for _, key := range entities.LineItemKeys() {
			record.LineItems[key] = entities.LineItem{
				Quantity:  float64(rng.Intn(20)),
				UnitPrice: float64(rng.Intn(100000)) / 100,
			}
		}

		keys := entities.LineItemKeys()
		rng.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
		sum := 0.0
		for _, key := range keys {
			sum += LineTotal(record.LineItems[key])
		}

		assert.InDelta(t, sum, ClientTotal(record), 1e-6)
	}
}

func TestBreakdown(t *testing.T) {
	record := entities.ClientRecord{LineItems: map[entities.LineItemKey]entities.LineItem{
		entities.LineItemHWTimer: {Quantity: 2, UnitPrice: 200},
	}}

	rows := Breakdown(record)
	require.Len(t, rows, 17)
	assert.Equal(t, entities.LineItemInverter, rows[0].Key)
	for _, row := range rows {
		if row.Key == entities.LineItemHWTimer {
			assert.Equal(t, 400.0, row.Total)
			continue
		}
		assert.Zero(t, row.Total)
	}
}
