package interfaces

import (
	"context"

	"solar_pipeline/internal/domain/entities"
)

//go:generate mockgen -source=visit_repository_interface.go -destination=mocks/mock_visit_repository.go -package=mock_interfaces

// IVisitRepository abstracts the visits collection.
type IVisitRepository interface {
	Create(ctx context.Context, v entities.Visit) (entities.Visit, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Visit, error)
}
