package usecase

import (
	"context"
	"strings"
	"time"

	"solar_pipeline/internal/domain/entities"
	"solar_pipeline/internal/infrastructure/logging"
	"solar_pipeline/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// VisitDraft is one entry of the site-visit log form.
type VisitDraft struct {
	Date  string
	Time  string
	GPS   string
	Notes string
}

// IVisitUseCase logs site visits against clients. A visit can be logged for
// a client in any stage; it does not move the client.
type IVisitUseCase interface {
	Log(ctx context.Context, clientID string, draft VisitDraft) (entities.Visit, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Visit, error)
}

type VisitUseCase struct {
	repo    interfaces.IVisitRepository
	clients interfaces.IClientRepository
	log     *logrus.Logger
}

var _ IVisitUseCase = (*VisitUseCase)(nil)

func NewVisitUseCase(repo interfaces.IVisitRepository, clients interfaces.IClientRepository) *VisitUseCase {
	return &VisitUseCase{repo: repo, clients: clients, log: logging.GetLogger()}
}

func (u *VisitUseCase) Log(ctx context.Context, clientID string, draft VisitDraft) (entities.Visit, error) {
	draft = VisitDraft{
		Date:  strings.TrimSpace(draft.Date),
		Time:  strings.TrimSpace(draft.Time),
		GPS:   strings.TrimSpace(draft.GPS),
		Notes: strings.TrimSpace(draft.Notes),
	}
	if draft == (VisitDraft{}) {
		return entities.Visit{}, invalid("visit", "needs a date, time, gps or notes")
	}

	client, err := u.loadClient(ctx, "Log", clientID)
	if err != nil {
		return entities.Visit{}, err
	}

	v := entities.Visit{
		ID:        uuid.NewString(),
		ClientID:  client.ID,
		Date:      draft.Date,
		Time:      draft.Time,
		GPS:       draft.GPS,
		Notes:     draft.Notes,
		CreatedAt: time.Now().UTC(),
	}
	created, err := u.repo.Create(ctx, v)
	if err != nil {
		logging.LogError(u.log, "visit_usecase.go", "Log", "repo.Create", v, err)
		return entities.Visit{}, err
	}
	u.log.WithFields(logrus.Fields{"client_id": client.ID, "visit_id": created.ID}).Info("visit logged")
	return created, nil
}

func (u *VisitUseCase) ListByClientID(ctx context.Context, clientID string) ([]entities.Visit, error) {
	client, err := u.loadClient(ctx, "ListByClientID", clientID)
	if err != nil {
		return nil, err
	}

	visits, err := u.repo.ListByClientID(ctx, client.ID)
	if err != nil {
		logging.LogError(u.log, "visit_usecase.go", "ListByClientID", "repo.ListByClientID", client.ID, err)
		return nil, err
	}
	return visits, nil
}

func (u *VisitUseCase) loadClient(ctx context.Context, funcName, clientID string) (entities.ClientRecord, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return entities.ClientRecord{}, ErrInvalidClientID
	}
	c, err := u.clients.GetByID(ctx, clientID)
	if err != nil {
		logging.LogError(u.log, "visit_usecase.go", funcName, "clients.GetByID", clientID, err)
		return entities.ClientRecord{}, err
	}
	if c.ID == "" {
		return entities.ClientRecord{}, ErrClientNotFound
	}
	return c, nil
}
