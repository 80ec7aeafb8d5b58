package interfaces

import (
	"context"
	"errors"

	"solar_pipeline/internal/domain/entities"
)

//go:generate mockgen -source=client_repository_interface.go -destination=mocks/mock_client_repository.go -package=mock_interfaces

// ErrDocumentExists is returned by Create when the id is already taken.
var ErrDocumentExists = errors.New("document already exists")

// IClientRepository abstracts the clients collection.
//
// Missing records are reported as zero values (empty ID), not errors:
//   - GetByID returns ClientRecord{} when the id is unknown
//   - Replace, UpdateStage and MergeStageNotes return ClientRecord{} when the
//     target does not exist, without writing anything
//
// Create is an atomic create-if-absent and fails with ErrDocumentExists.
type IClientRepository interface {
	ListAll(ctx context.Context) ([]entities.ClientRecord, error)
	GetByID(ctx context.Context, id string) (entities.ClientRecord, error)
	Create(ctx context.Context, c entities.ClientRecord) (entities.ClientRecord, error)
	Replace(ctx context.Context, c entities.ClientRecord) (entities.ClientRecord, error)
	UpdateStage(ctx context.Context, id string, stage entities.Stage) (entities.ClientRecord, error)
	MergeStageNotes(ctx context.Context, id string, stage entities.Stage, notes entities.StageNotes) (entities.ClientRecord, error)
	Delete(ctx context.Context, id string) error
}
