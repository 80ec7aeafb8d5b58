package usecase

import (
	"context"
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"solar_pipeline/internal/domain/entities"
	"solar_pipeline/internal/domain/pipeline"
	"solar_pipeline/internal/usecase/interfaces"
	mock_interfaces "solar_pipeline/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type recordedTransition struct {
	from, to entities.Stage
}

type fakeRecorder struct {
	created     int
	transitions []recordedTransition
}

func (r *fakeRecorder) ClientCreated() { r.created++ }
func (r *fakeRecorder) StageChanged(from, to entities.Stage) {
	r.transitions = append(r.transitions, recordedTransition{from, to})
}

var fixedNow = time.Date(2025, 3, 5, 14, 30, 0, 0, time.UTC)

func newClientUseCase(t *testing.T, opts ...ClientOption) (*ClientUseCase, *mock_interfaces.MockIClientRepository, *mock_interfaces.MockIProductRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIClientRepository(ctrl)
	products := mock_interfaces.NewMockIProductRepository(ctrl)
	opts = append([]ClientOption{WithClock(func() time.Time { return fixedNow }), WithLocation(time.UTC)}, opts...)
	return NewClientUseCase(repo, products, opts...), repo, products
}

func anaDraft() ClientDraft {
	return ClientDraft{
		Profile:    entities.Profile{Name: " Ana Silva ", Neighborhood: "West End", Phone: "0412 345 678"},
		SystemSize: "6.6",
		LineItems: map[entities.LineItemKey]LineItemDraft{
			entities.LineItemInverter: {Quantity: "2", UnitPrice: "500"},
			entities.LineItemPanels:   {Quantity: "10", UnitPrice: "200"},
			entities.LineItemBattery:  {Quantity: "1", UnitPrice: "1000"},
		},
	}
}

func TestClientUseCase_Create(t *testing.T) {
	t.Run("name required", func(t *testing.T) {
		uc, _, _ := newClientUseCase(t)
		_, err := uc.Create(context.Background(), ClientDraft{Profile: entities.Profile{Name: "  ", Neighborhood: "West End"}})
		var verr *ValidationError
		if !errors.As(err, &verr) || verr.Field != "name" {
			t.Fatalf("expected name validation error, got %v", err)
		}
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("neighborhood required", func(t *testing.T) {
		uc, _, _ := newClientUseCase(t)
		_, err := uc.Create(context.Background(), ClientDraft{Profile: entities.Profile{Name: "Ana"}})
		var verr *ValidationError
		if !errors.As(err, &verr) || verr.Field != "neighborhood" {
			t.Fatalf("expected neighborhood validation error, got %v", err)
		}
	})

	t.Run("free text email is kept", func(t *testing.T) {
		uc, repo, _ := newClientUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "0503AnaX").Return(entities.ClientRecord{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.ClientRecord) (entities.ClientRecord, error) {
				return c, nil
			},
		)

		created, err := uc.Create(context.Background(), ClientDraft{Profile: entities.Profile{Name: "Ana", Neighborhood: "X", Email: "  n/a "}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Profile.Email != "n/a" {
			t.Fatalf("expected trimmed email, got %q", created.Profile.Email)
		}
	})

	t.Run("id date follows the configured location", func(t *testing.T) {
		brisbane, err := time.LoadLocation("Australia/Brisbane")
		if err != nil {
			t.Fatalf("load location: %v", err)
		}
		lateUTC := time.Date(2025, 3, 4, 14, 30, 0, 0, time.UTC)
		uc, repo, _ := newClientUseCase(t, WithClock(func() time.Time { return lateUTC }), WithLocation(brisbane))
		repo.EXPECT().GetByID(gomock.Any(), "0503AnaSilvaWestEnd").Return(entities.ClientRecord{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.ClientRecord) (entities.ClientRecord, error) {
				if !c.CreatedAt.Equal(lateUTC) {
					t.Fatalf("expected timestamps from clock, got %v", c.CreatedAt)
				}
				return c, nil
			},
		)

		created, err := uc.Create(context.Background(), anaDraft())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != "0503AnaSilvaWestEnd" {
			t.Fatalf("expected local date prefix, got %q", created.ID)
		}
	})

	t.Run("unknown line item", func(t *testing.T) {
		uc, _, _ := newClientUseCase(t)
		draft := anaDraft()
		draft.LineItems["solarHeater"] = LineItemDraft{Quantity: "1"}
		_, err := uc.Create(context.Background(), draft)
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("product on an extra", func(t *testing.T) {
		uc, _, _ := newClientUseCase(t)
		draft := anaDraft()
		draft.LineItems[entities.LineItemCB] = LineItemDraft{SelectedProductID: "p1"}
		_, err := uc.Create(context.Background(), draft)
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("duplicate id leaves store untouched", func(t *testing.T) {
		uc, repo, _ := newClientUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "0503AnaSilvaWestEnd").Return(entities.ClientRecord{ID: "0503AnaSilvaWestEnd"}, nil)

		_, err := uc.Create(context.Background(), anaDraft())
		if !errors.Is(err, ErrDuplicateClientID) {
			t.Fatalf("expected ErrDuplicateClientID, got %v", err)
		}
	})

	t.Run("lost create race maps to duplicate", func(t *testing.T) {
		rec := &fakeRecorder{}
		uc, repo, _ := newClientUseCase(t, WithRecorder(rec))
		repo.EXPECT().GetByID(gomock.Any(), "0503AnaSilvaWestEnd").Return(entities.ClientRecord{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.ClientRecord{}, interfaces.ErrDocumentExists)

		_, err := uc.Create(context.Background(), anaDraft())
		if !errors.Is(err, ErrDuplicateClientID) {
			t.Fatalf("expected ErrDuplicateClientID, got %v", err)
		}
		if rec.created != 0 {
			t.Fatalf("expected no created event")
		}
	})

	t.Run("repo error", func(t *testing.T) {
		uc, repo, _ := newClientUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(entities.ClientRecord{}, errors.New("db"))

		_, err := uc.Create(context.Background(), anaDraft())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		rec := &fakeRecorder{}
		uc, repo, _ := newClientUseCase(t, WithRecorder(rec))
		repo.EXPECT().GetByID(gomock.Any(), "0503AnaSilvaWestEnd").Return(entities.ClientRecord{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ClientRecord{})).DoAndReturn(
			func(_ context.Context, c entities.ClientRecord) (entities.ClientRecord, error) {
				if c.ID != "0503AnaSilvaWestEnd" || c.Stage != entities.StageLead {
					t.Fatalf("unexpected record: %+v", c)
				}
				if c.Profile.Name != "Ana Silva" || c.Profile.Phone != "+61412345678" {
					t.Fatalf("profile not normalized: %+v", c.Profile)
				}
				if c.SystemSize == nil || *c.SystemSize != 6.6 {
					t.Fatalf("unexpected system size: %v", c.SystemSize)
				}
				if got := c.Item(entities.LineItemCB); got.UnitPrice != 50 || got.Quantity != 0 {
					t.Fatalf("expected default cb price, got %+v", got)
				}
				if len(c.LineItems) != len(entities.LineItemKeys()) {
					t.Fatalf("expected all line items seeded, got %d", len(c.LineItems))
				}
				if !c.CreatedAt.Equal(fixedNow) || !c.UpdatedAt.Equal(fixedNow) {
					t.Fatalf("expected timestamps from clock")
				}
				return c, nil
			},
		)

		created, err := uc.Create(context.Background(), anaDraft())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.created != 1 {
			t.Fatalf("expected one created event, got %d", rec.created)
		}

		repo.EXPECT().GetByID(gomock.Any(), created.ID).Return(created, nil)
		total, err := uc.Total(context.Background(), created.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if total.Total != 4000 {
			t.Fatalf("expected 4000, got %v", total.Total)
		}
	})

	t.Run("catalog auto-fill on empty unit price", func(t *testing.T) {
		uc, repo, products := newClientUseCase(t)
		draft := anaDraft()
		draft.LineItems[entities.LineItemInverter] = LineItemDraft{Quantity: "1", SelectedProductID: "p-inv"}
		draft.LineItems[entities.LineItemPanels] = LineItemDraft{Quantity: "10", UnitPrice: "180", SelectedProductID: "p-pan"}

		products.EXPECT().ListAll(gomock.Any()).Return([]entities.Product{
			{ID: "p-inv", Category: entities.ProductCategoryInverter, Price: 2100},
			{ID: "p-pan", Category: entities.ProductCategoryPanel, Price: 210},
		}, nil).Times(1)
		repo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(entities.ClientRecord{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.ClientRecord) (entities.ClientRecord, error) {
				return c, nil
			},
		)

		created, err := uc.Create(context.Background(), draft)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := created.Item(entities.LineItemInverter); got.UnitPrice != 2100 || got.SelectedProductID != "p-inv" {
			t.Fatalf("expected auto-filled inverter, got %+v", got)
		}
		if got := created.Item(entities.LineItemPanels); got.UnitPrice != 180 {
			t.Fatalf("typed unit price must win, got %+v", got)
		}
	})
}

func TestClientUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, repo, _ := newClientUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "x").Return(entities.ClientRecord{}, nil)

		_, err := uc.Update(context.Background(), "x", anaDraft())
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("keeps stage notes and id", func(t *testing.T) {
		uc, repo, _ := newClientUseCase(t)
		current := entities.ClientRecord{
			ID:         "0101AnaOeste",
			Stage:      entities.StageContract,
			Profile:    entities.Profile{Name: "Ana", Neighborhood: "Oeste"},
			StageNotes: map[entities.Stage]entities.StageNotes{entities.StageVisit: {StartNote: "hi"}},
			CreatedAt:  fixedNow.Add(-time.Hour),
		}
		repo.EXPECT().GetByID(gomock.Any(), "0101AnaOeste").Return(current, nil)
		repo.EXPECT().Replace(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.ClientRecord) (entities.ClientRecord, error) {
				if c.ID != current.ID || c.Stage != entities.StageContract || c.StageNotes[entities.StageVisit].StartNote != "hi" {
					t.Fatalf("update must keep id, stage and notes: %+v", c)
				}
				if c.Profile.Name != "Ana Silva" || !c.UpdatedAt.Equal(fixedNow) || !c.CreatedAt.Equal(current.CreatedAt) {
					t.Fatalf("unexpected update: %+v", c)
				}
				if got := c.Item(entities.LineItemCB); got.UnitPrice != 0 {
					t.Fatalf("update must not seed defaults, got %+v", got)
				}
				return c, nil
			},
		)

		if _, err := uc.Update(context.Background(), " 0101AnaOeste ", anaDraft()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("record vanished before write", func(t *testing.T) {
		uc, repo, _ := newClientUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "x").Return(entities.ClientRecord{ID: "x"}, nil)
		repo.EXPECT().Replace(gomock.Any(), gomock.Any()).Return(entities.ClientRecord{}, nil)

		_, err := uc.Update(context.Background(), "x", anaDraft())
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})
}

func TestClientUseCase_Transition(t *testing.T) {
	t.Run("unknown target", func(t *testing.T) {
		uc, _, _ := newClientUseCase(t)
		_, err := uc.Transition(context.Background(), "x", "archived")
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		uc, _, _ := newClientUseCase(t)
		_, err := uc.Transition(context.Background(), "  ", "visit")
		if !errors.Is(err, ErrInvalidClientID) {
			t.Fatalf("expected ErrInvalidClientID, got %v", err)
		}
	})

	t.Run("missing record", func(t *testing.T) {
		uc, repo, _ := newClientUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "x").Return(entities.ClientRecord{}, nil)

		_, err := uc.Transition(context.Background(), "x", "visit")
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("deleted between read and write", func(t *testing.T) {
		uc, repo, _ := newClientUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "x").Return(entities.ClientRecord{ID: "x"}, nil)
		repo.EXPECT().UpdateStage(gomock.Any(), "x", entities.StageVisit).Return(entities.ClientRecord{}, nil)

		_, err := uc.Transition(context.Background(), "x", "visit")
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("legacy alias and recorder", func(t *testing.T) {
		rec := &fakeRecorder{}
		uc, repo, _ := newClientUseCase(t, WithRecorder(rec))
		repo.EXPECT().GetByID(gomock.Any(), "x").Return(entities.ClientRecord{ID: "x"}, nil)
		repo.EXPECT().UpdateStage(gomock.Any(), "x", entities.StageAfterSales).Return(entities.ClientRecord{ID: "x", Stage: entities.StageAfterSales}, nil)

		got, err := uc.Transition(context.Background(), "x", "afterSales")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Stage != entities.StageAfterSales {
			t.Fatalf("expected after_sales, got %q", got.Stage)
		}
		want := []recordedTransition{{entities.StageLead, entities.StageAfterSales}}
		if len(rec.transitions) != 1 || rec.transitions[0] != want[0] {
			t.Fatalf("unexpected transitions: %+v", rec.transitions)
		}
	})

	t.Run("restricted engine", func(t *testing.T) {
		engine := pipeline.NewEngineWithTransitions(pipeline.Transitions{
			entities.StageLead: {entities.StageVisit: true},
		})
		uc, repo, _ := newClientUseCase(t, WithEngine(engine))
		repo.EXPECT().GetByID(gomock.Any(), "x").Return(entities.ClientRecord{ID: "x"}, nil)

		_, err := uc.Transition(context.Background(), "x", "billing")
		if !errors.Is(err, pipeline.ErrTransitionNotAllowed) {
			t.Fatalf("expected ErrTransitionNotAllowed, got %v", err)
		}
	})
}

func TestClientUseCase_UpdateStageNotes(t *testing.T) {
	t.Run("lead has no notes", func(t *testing.T) {
		uc, _, _ := newClientUseCase(t)
		_, err := uc.UpdateStageNotes(context.Background(), "x", "lead", NotesPatch{})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("merges into existing notes", func(t *testing.T) {
		uc, repo, _ := newClientUseCase(t)
		current := entities.ClientRecord{
			ID:         "x",
			StageNotes: map[entities.Stage]entities.StageNotes{entities.StageVisit: {StartNote: "arrived", FinalNote: "old"}},
		}
		final := "quoted"
		repo.EXPECT().GetByID(gomock.Any(), "x").Return(current, nil)
		repo.EXPECT().MergeStageNotes(gomock.Any(), "x", entities.StageVisit, entities.StageNotes{StartNote: "arrived", FinalNote: "quoted"}).
			Return(entities.ClientRecord{ID: "x"}, nil)

		if _, err := uc.UpdateStageNotes(context.Background(), "x", "visit", NotesPatch{FinalNote: &final}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestClientUseCase_SelectProduct(t *testing.T) {
	catalog := []entities.Product{
		{ID: "p-inv", Category: entities.ProductCategoryInverter, Brand: "Fronius", Price: 2100},
		{ID: "p-free", Category: entities.ProductCategoryInverter, Brand: "Promo", Price: 0},
		{ID: "p-bat", Category: entities.ProductCategoryBattery, Brand: "BYD", Price: 9000},
	}
	current := entities.ClientRecord{
		ID: "x",
		LineItems: map[entities.LineItemKey]entities.LineItem{
			entities.LineItemInverter: {Quantity: 1, UnitPrice: 1500},
		},
	}

	t.Run("extras cannot take products", func(t *testing.T) {
		uc, _, _ := newClientUseCase(t)
		_, err := uc.SelectProduct(context.Background(), "x", "cb", "p-inv")
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("dangling product", func(t *testing.T) {
		uc, repo, products := newClientUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "x").Return(current, nil)
		products.EXPECT().ListAll(gomock.Any()).Return(catalog, nil)

		_, err := uc.SelectProduct(context.Background(), "x", "inverter", "gone")
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("category mismatch", func(t *testing.T) {
		uc, repo, products := newClientUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "x").Return(current, nil)
		products.EXPECT().ListAll(gomock.Any()).Return(catalog, nil)

		_, err := uc.SelectProduct(context.Background(), "x", "inverter", "p-bat")
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	cases := []struct {
		name      string
		productID string
		wantPrice float64
		wantID    string
	}{
		{name: "auto-fill", productID: "p-inv", wantPrice: 2100, wantID: "p-inv"},
		{name: "zero price keeps unit price", productID: "p-free", wantPrice: 1500, wantID: "p-free"},
		{name: "clear selection", productID: " ", wantPrice: 1500, wantID: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, repo, products := newClientUseCase(t)
			repo.EXPECT().GetByID(gomock.Any(), "x").Return(current, nil)
			products.EXPECT().ListAll(gomock.Any()).Return(catalog, nil).AnyTimes()
			repo.EXPECT().Replace(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, c entities.ClientRecord) (entities.ClientRecord, error) {
					return c, nil
				},
			)

			got, err := uc.SelectProduct(context.Background(), "x", "inverter", tc.productID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			item := got.Item(entities.LineItemInverter)
			if item.UnitPrice != tc.wantPrice || item.SelectedProductID != tc.wantID || item.Quantity != 1 {
				t.Fatalf("unexpected item: %+v", item)
			}
		})
	}

	if current.LineItems[entities.LineItemInverter].UnitPrice != 1500 {
		t.Fatalf("input record must not be mutated")
	}
}

func TestClientUseCase_ListAndBoard(t *testing.T) {
	records := []entities.ClientRecord{
		{ID: "c", Stage: entities.StageVisit},
		{ID: "a"},
		{ID: "b", Stage: entities.StageLead},
		{ID: "d", Stage: "archived"},
	}

	t.Run("filter by stage sorted by id", func(t *testing.T) {
		uc, repo, _ := newClientUseCase(t)
		repo.EXPECT().ListAll(gomock.Any()).Return(append([]entities.ClientRecord(nil), records...), nil)

		got, err := uc.List(context.Background(), "lead")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
			t.Fatalf("unexpected leads: %+v", got)
		}
	})

	t.Run("unknown stage filter passes through", func(t *testing.T) {
		uc, repo, _ := newClientUseCase(t)
		repo.EXPECT().ListAll(gomock.Any()).Return(append([]entities.ClientRecord(nil), records...), nil)

		got, err := uc.List(context.Background(), "archived")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "d" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})

	t.Run("no filter", func(t *testing.T) {
		uc, repo, _ := newClientUseCase(t)
		repo.EXPECT().ListAll(gomock.Any()).Return(append([]entities.ClientRecord(nil), records...), nil)

		got, err := uc.List(context.Background(), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 4 || got[0].ID != "a" || got[3].ID != "d" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})

	t.Run("board", func(t *testing.T) {
		uc, repo, _ := newClientUseCase(t)
		repo.EXPECT().ListAll(gomock.Any()).Return(append([]entities.ClientRecord(nil), records...), nil)

		board, err := uc.Board(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if board.Count() != len(records) || len(board.Columns) != 7 {
			t.Fatalf("unexpected board: %+v", board)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		uc, repo, _ := newClientUseCase(t)
		repo.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("db"))

		if _, err := uc.Board(context.Background()); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestClientUseCase_Stages(t *testing.T) {
	uc, _, _ := newClientUseCase(t)
	stages := uc.Stages()
	if len(stages) != 6 {
		t.Fatalf("expected 6 stages, got %d", len(stages))
	}
	if stages[0].Stage != entities.StageLead || stages[0].HasNotes || len(stages[0].Allowed) != 6 {
		t.Fatalf("unexpected lead info: %+v", stages[0])
	}
	if stages[5].Label != "AFTER SALES" || !stages[5].HasNotes {
		t.Fatalf("unexpected after sales info: %+v", stages[5])
	}
}
