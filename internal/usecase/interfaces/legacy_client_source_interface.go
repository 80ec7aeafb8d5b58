package interfaces

import (
	"context"

	"solar_pipeline/internal/domain/entities"
)

// ILegacyClientSource is a read-and-drain view over a collection holding
// client documents in an older schema.
type ILegacyClientSource interface {
	ListAll(ctx context.Context) ([]entities.ClientRecord, error)
	Delete(ctx context.Context, id string) error
}

// ILegacyVisitLinker gives visits written in the older schema, which only
// carry lead_id, a client_id so they can be listed per client.
type ILegacyVisitLinker interface {
	LinkLegacyVisits(ctx context.Context) (int, error)
}
