package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"solar_pipeline/internal/domain/entities"
	"solar_pipeline/internal/domain/normalize"
	"solar_pipeline/internal/domain/pipeline"
	"solar_pipeline/internal/domain/pricing"
	"solar_pipeline/internal/infrastructure/logging"
	"solar_pipeline/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

var (
	ErrClientNotFound    = errors.New("client not found")
	ErrDuplicateClientID = errors.New("client id already exists")
	ErrInvalidClientID   = errors.New("invalid client id")
)

// LineItemDraft is a line item as typed by the user. Numbers arrive as text
// and are normalized on save; an empty unit price means "use the default or
// catalog price".
type LineItemDraft struct {
	Quantity          string
	UnitPrice         string
	Info              string
	SelectedProductID string
}

// ClientDraft is the editable part of a client record.
type ClientDraft struct {
	Profile       entities.Profile
	SystemSize    string
	LineItems     map[entities.LineItemKey]LineItemDraft
	ExtraServices string
}

// NotesPatch updates the notes of one stage. Nil fields are left as they are.
type NotesPatch struct {
	StartNote *string
	FinalNote *string
}

type ClientTotal struct {
	ClientID  string
	Total     float64
	Breakdown []pricing.LineTotalEntry
}

// StageInfo describes a pipeline stage and where a record in it may move.
type StageInfo struct {
	Stage    entities.Stage
	Label    string
	HasNotes bool
	Allowed  []entities.Stage
}

// IClientUseCase covers every client screen of the pipeline:
//   - lead form => Create / Update
//   - stage screens and board => List / Board / Transition
//   - per-stage notes => UpdateStageNotes
//   - system parts picker => SelectProduct
//   - price summary => Total
type IClientUseCase interface {
	Create(ctx context.Context, draft ClientDraft) (entities.ClientRecord, error)
	GetByID(ctx context.Context, id string) (entities.ClientRecord, error)
	List(ctx context.Context, stage string) ([]entities.ClientRecord, error)
	Update(ctx context.Context, id string, draft ClientDraft) (entities.ClientRecord, error)
	Transition(ctx context.Context, id string, target string) (entities.ClientRecord, error)
	UpdateStageNotes(ctx context.Context, id string, stage string, patch NotesPatch) (entities.ClientRecord, error)
	SelectProduct(ctx context.Context, id string, key string, productID string) (entities.ClientRecord, error)
	Total(ctx context.Context, id string) (ClientTotal, error)
	Board(ctx context.Context) (pipeline.Board, error)
	Stages() []StageInfo
}

type ClientUseCase struct {
	repo        interfaces.IClientRepository
	products    interfaces.IProductRepository
	engine      *pipeline.Engine
	recorder    interfaces.IPipelineRecorder
	phoneRegion string
	now         func() time.Time
	loc         *time.Location
	log         *logrus.Logger
}

var _ IClientUseCase = (*ClientUseCase)(nil)

type ClientOption func(*ClientUseCase)

func WithPhoneRegion(region string) ClientOption {
	return func(u *ClientUseCase) { u.phoneRegion = region }
}

func WithRecorder(r interfaces.IPipelineRecorder) ClientOption {
	return func(u *ClientUseCase) { u.recorder = r }
}

func WithClock(now func() time.Time) ClientOption {
	return func(u *ClientUseCase) { u.now = now }
}

// WithLocation sets the zone whose calendar date prefixes new client ids.
func WithLocation(loc *time.Location) ClientOption {
	return func(u *ClientUseCase) {
		if loc != nil {
			u.loc = loc
		}
	}
}

func WithEngine(e *pipeline.Engine) ClientOption {
	return func(u *ClientUseCase) { u.engine = e }
}

func NewClientUseCase(repo interfaces.IClientRepository, products interfaces.IProductRepository, opts ...ClientOption) *ClientUseCase {
	u := &ClientUseCase{
		repo:        repo,
		products:    products,
		engine:      pipeline.NewEngine(),
		recorder:    interfaces.NoopRecorder{},
		phoneRegion: normalize.DefaultPhoneRegion,
		now:         func() time.Time { return time.Now().UTC() },
		loc:         time.Local,
		log:         logging.GetLogger(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *ClientUseCase) Create(ctx context.Context, draft ClientDraft) (entities.ClientRecord, error) {
	profile, err := u.normalizeProfile(draft.Profile)
	if err != nil {
		return entities.ClientRecord{}, err
	}
	if profile.Neighborhood == "" {
		return entities.ClientRecord{}, invalid("neighborhood", "is required")
	}
	items, err := u.buildLineItems(ctx, draft.LineItems, true)
	if err != nil {
		return entities.ClientRecord{}, err
	}

	now := u.now()
	id := normalize.GenerateClientID(profile.Name, profile.Neighborhood, now.In(u.loc))

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		logging.LogError(u.log, "client_usecase.go", "Create", "repo.GetByID", id, err)
		return entities.ClientRecord{}, err
	}
	if existing.ID != "" {
		return entities.ClientRecord{}, ErrDuplicateClientID
	}

	record := entities.ClientRecord{
		ID:            id,
		Stage:         entities.StageLead,
		Profile:       profile,
		SystemSize:    normalize.ParseOptionalNumber(draft.SystemSize),
		LineItems:     items,
		StageNotes:    map[entities.Stage]entities.StageNotes{},
		ExtraServices: draft.ExtraServices,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	created, err := u.repo.Create(ctx, record)
	if err != nil {
		if errors.Is(err, interfaces.ErrDocumentExists) {
			return entities.ClientRecord{}, ErrDuplicateClientID
		}
		logging.LogError(u.log, "client_usecase.go", "Create", "repo.Create", id, err)
		return entities.ClientRecord{}, err
	}

	u.recorder.ClientCreated()
	u.log.WithFields(logrus.Fields{"client_id": id}).Info("client created")
	return created, nil
}

func (u *ClientUseCase) GetByID(ctx context.Context, id string) (entities.ClientRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ClientRecord{}, ErrInvalidClientID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		logging.LogError(u.log, "client_usecase.go", "GetByID", "repo.GetByID", id, err)
		return entities.ClientRecord{}, err
	}
	if c.ID == "" {
		return entities.ClientRecord{}, ErrClientNotFound
	}
	return c, nil
}

// List returns the clients classified as stage, ordered by id. An empty stage
// returns every client.
func (u *ClientUseCase) List(ctx context.Context, stage string) ([]entities.ClientRecord, error) {
	records, err := u.listAll(ctx)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(stage) == "" {
		return records, nil
	}
	return pipeline.ListByStage(records, entities.ParseStage(stage)), nil
}

// Update replaces the editable fields of an existing client. Stage, notes,
// id and creation time are kept.
func (u *ClientUseCase) Update(ctx context.Context, id string, draft ClientDraft) (entities.ClientRecord, error) {
	profile, err := u.normalizeProfile(draft.Profile)
	if err != nil {
		return entities.ClientRecord{}, err
	}
	items, err := u.buildLineItems(ctx, draft.LineItems, false)
	if err != nil {
		return entities.ClientRecord{}, err
	}

	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ClientRecord{}, err
	}

	updated := current.Clone()
	updated.Profile = profile
	updated.SystemSize = normalize.ParseOptionalNumber(draft.SystemSize)
	updated.LineItems = items
	updated.ExtraServices = draft.ExtraServices
	updated.UpdatedAt = u.now()

	return u.replace(ctx, "Update", updated)
}

func (u *ClientUseCase) Transition(ctx context.Context, id string, target string) (entities.ClientRecord, error) {
	stage := entities.ParseStage(target)
	if !stage.IsKnown() {
		return entities.ClientRecord{}, invalid("stage", fmt.Sprintf("unknown stage %q", target))
	}

	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ClientRecord{}, err
	}
	from := pipeline.Classify(current)

	moved, err := u.engine.Transition(current, stage)
	if err != nil {
		return entities.ClientRecord{}, fmt.Errorf("%w: %s -> %s", err, from, stage)
	}

	saved, err := u.repo.UpdateStage(ctx, current.ID, moved.Stage)
	if err != nil {
		logging.LogError(u.log, "client_usecase.go", "Transition", "repo.UpdateStage", current.ID, err)
		return entities.ClientRecord{}, err
	}
	if saved.ID == "" {
		return entities.ClientRecord{}, ErrClientNotFound
	}

	u.recorder.StageChanged(from, saved.Stage)
	u.log.WithFields(logrus.Fields{"client_id": saved.ID, "from": from, "to": saved.Stage}).Info("client stage changed")
	return saved, nil
}

func (u *ClientUseCase) UpdateStageNotes(ctx context.Context, id string, stage string, patch NotesPatch) (entities.ClientRecord, error) {
	st := entities.ParseStage(stage)
	if !st.HasNotes() {
		return entities.ClientRecord{}, invalid("stage", fmt.Sprintf("stage %q has no notes", stage))
	}

	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ClientRecord{}, err
	}

	notes := current.StageNotes[st]
	if patch.StartNote != nil {
		notes.StartNote = *patch.StartNote
	}
	if patch.FinalNote != nil {
		notes.FinalNote = *patch.FinalNote
	}

	saved, err := u.repo.MergeStageNotes(ctx, current.ID, st, notes)
	if err != nil {
		logging.LogError(u.log, "client_usecase.go", "UpdateStageNotes", "repo.MergeStageNotes", current.ID, err)
		return entities.ClientRecord{}, err
	}
	if saved.ID == "" {
		return entities.ClientRecord{}, ErrClientNotFound
	}
	return saved, nil
}

// SelectProduct points a system part at a catalog product and copies its
// price into the unit price when the product has one. An empty productID
// clears the selection and keeps the unit price.
func (u *ClientUseCase) SelectProduct(ctx context.Context, id string, key string, productID string) (entities.ClientRecord, error) {
	k := entities.LineItemKey(strings.TrimSpace(key))
	category, ok := k.CatalogCategory()
	if !ok {
		return entities.ClientRecord{}, invalid("key", "must be inverter, panels or battery")
	}

	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ClientRecord{}, err
	}

	item := current.Item(k)
	productID = strings.TrimSpace(productID)
	if productID == "" {
		item.SelectedProductID = ""
	} else {
		catalog, err := u.products.ListAll(ctx)
		if err != nil {
			logging.LogError(u.log, "client_usecase.go", "SelectProduct", "products.ListAll", productID, err)
			return entities.ClientRecord{}, err
		}
		product, found := pricing.ResolveProduct(productID, catalog)
		if !found {
			return entities.ClientRecord{}, ErrProductNotFound
		}
		if product.Category.IsKnown() && product.Category != category {
			return entities.ClientRecord{}, invalid("product_id", fmt.Sprintf("product is a %s, not a %s", product.Category, category))
		}
		item.SelectedProductID = productID
		if price, ok := pricing.AutoFillUnitPrice(productID, catalog); ok {
			item.UnitPrice = price
		}
	}

	updated := current.Clone()
	if updated.LineItems == nil {
		updated.LineItems = map[entities.LineItemKey]entities.LineItem{}
	}
	updated.LineItems[k] = item
	updated.UpdatedAt = u.now()

	return u.replace(ctx, "SelectProduct", updated)
}

func (u *ClientUseCase) Total(ctx context.Context, id string) (ClientTotal, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return ClientTotal{}, err
	}
	return ClientTotal{
		ClientID:  c.ID,
		Total:     pricing.ClientTotal(c),
		Breakdown: pricing.Breakdown(c),
	}, nil
}

func (u *ClientUseCase) Board(ctx context.Context) (pipeline.Board, error) {
	records, err := u.listAll(ctx)
	if err != nil {
		return pipeline.Board{}, err
	}
	return pipeline.BuildBoard(records), nil
}

func (u *ClientUseCase) Stages() []StageInfo {
	stages := entities.AllStages()
	out := make([]StageInfo, 0, len(stages))
	for _, s := range stages {
		out = append(out, StageInfo{
			Stage:    s,
			Label:    s.Label(),
			HasNotes: s.HasNotes(),
			Allowed:  u.engine.AllowedTransitions(s),
		})
	}
	return out
}

func (u *ClientUseCase) listAll(ctx context.Context) ([]entities.ClientRecord, error) {
	records, err := u.repo.ListAll(ctx)
	if err != nil {
		logging.LogError(u.log, "client_usecase.go", "listAll", "repo.ListAll", nil, err)
		return nil, err
	}
	sort.SliceStable(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records, nil
}

func (u *ClientUseCase) replace(ctx context.Context, funcName string, c entities.ClientRecord) (entities.ClientRecord, error) {
	saved, err := u.repo.Replace(ctx, c)
	if err != nil {
		logging.LogError(u.log, "client_usecase.go", funcName, "repo.Replace", c.ID, err)
		return entities.ClientRecord{}, err
	}
	if saved.ID == "" {
		return entities.ClientRecord{}, ErrClientNotFound
	}
	return saved, nil
}

func (u *ClientUseCase) normalizeProfile(p entities.Profile) (entities.Profile, error) {
	p.Name = strings.TrimSpace(p.Name)
	p.Neighborhood = strings.TrimSpace(p.Neighborhood)
	p.Email = strings.TrimSpace(p.Email)
	p.Phone = normalize.NormalizePhone(p.Phone, u.phoneRegion)
	if err := validateStruct(p); err != nil {
		return entities.Profile{}, err
	}
	return p, nil
}

// buildLineItems turns drafts into stored line items. With seedDefaults the
// result starts from pricing.NewLineItems, so extras left without a unit
// price get their default one.
func (u *ClientUseCase) buildLineItems(ctx context.Context, drafts map[entities.LineItemKey]LineItemDraft, seedDefaults bool) (map[entities.LineItemKey]entities.LineItem, error) {
	items := map[entities.LineItemKey]entities.LineItem{}
	if seedDefaults {
		items = pricing.NewLineItems()
	}

	var catalog []entities.Product
	catalogLoaded := false

	for key, d := range drafts {
		field := "line_items." + string(key)
		if !key.IsKnown() {
			return nil, invalid(field, "unknown line item")
		}
		pid := strings.TrimSpace(d.SelectedProductID)
		if pid != "" && !key.IsSystemPart() {
			return nil, invalid(field, "only inverter, panels and battery take a product")
		}

		item := items[key]
		item.Quantity = normalize.ParseLineItemNumber(d.Quantity)
		if strings.TrimSpace(d.UnitPrice) != "" {
			item.UnitPrice = normalize.ParseLineItemNumber(d.UnitPrice)
		}
		item.Info = d.Info
		item.SelectedProductID = pid

		if pid != "" && strings.TrimSpace(d.UnitPrice) == "" {
			if !catalogLoaded {
				var err error
				catalog, err = u.products.ListAll(ctx)
				if err != nil {
					logging.LogError(u.log, "client_usecase.go", "buildLineItems", "products.ListAll", pid, err)
					return nil, err
				}
				catalogLoaded = true
			}
			if price, ok := pricing.AutoFillUnitPrice(pid, catalog); ok {
				item.UnitPrice = price
			}
		}
		items[key] = item
	}
	return items, nil
}
