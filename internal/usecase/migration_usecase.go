package usecase

import (
	"context"
	"errors"
	"strings"

	"solar_pipeline/internal/domain/pipeline"
	"solar_pipeline/internal/infrastructure/logging"
	"solar_pipeline/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

// MigrationReport counts what a legacy migration did.
type MigrationReport struct {
	Copied    int
	Skipped   int
	Deleted   int
	Rewritten int
	// VisitsLinked counts legacy visits that were given a client id.
	VisitsLinked int
}

type MigrateOptions struct {
	// DeleteSource removes each legacy document once it exists in clients.
	DeleteSource bool
}

type IMigrationUseCase interface {
	MigrateLegacy(ctx context.Context, opts MigrateOptions) (MigrationReport, error)
}

// MigrationUseCase copies documents from the legacy leads collection into
// clients and rewrites every client in the canonical document shape.
type MigrationUseCase struct {
	clients interfaces.IClientRepository
	source  interfaces.ILegacyClientSource
	visits  interfaces.ILegacyVisitLinker
	log     *logrus.Logger
}

var _ IMigrationUseCase = (*MigrationUseCase)(nil)

type MigrationOption func(*MigrationUseCase)

// WithVisitLinker also links legacy visits to their clients. A nil linker
// leaves visits alone.
func WithVisitLinker(v interfaces.ILegacyVisitLinker) MigrationOption {
	return func(u *MigrationUseCase) { u.visits = v }
}

func NewMigrationUseCase(clients interfaces.IClientRepository, source interfaces.ILegacyClientSource, opts ...MigrationOption) *MigrationUseCase {
	u := &MigrationUseCase{clients: clients, source: source, log: logging.GetLogger()}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// MigrateLegacy never overwrites a client that already exists; a legacy
// document whose id is taken is counted as skipped (and still deleted from
// the source when DeleteSource is set, since clients already holds it).
func (u *MigrationUseCase) MigrateLegacy(ctx context.Context, opts MigrateOptions) (MigrationReport, error) {
	var report MigrationReport

	legacy, err := u.source.ListAll(ctx)
	if err != nil {
		logging.LogError(u.log, "migration_usecase.go", "MigrateLegacy", "source.ListAll", nil, err)
		return report, err
	}

	for _, rec := range legacy {
		rec.ID = strings.TrimSpace(rec.ID)
		if rec.ID == "" {
			report.Skipped++
			continue
		}
		rec.Stage = pipeline.Classify(rec)

		_, err := u.clients.Create(ctx, rec)
		switch {
		case err == nil:
			report.Copied++
		case errors.Is(err, interfaces.ErrDocumentExists):
			report.Skipped++
		default:
			logging.LogError(u.log, "migration_usecase.go", "MigrateLegacy", "clients.Create", rec.ID, err)
			return report, err
		}

		if opts.DeleteSource {
			if err := u.source.Delete(ctx, rec.ID); err != nil {
				logging.LogError(u.log, "migration_usecase.go", "MigrateLegacy", "source.Delete", rec.ID, err)
				return report, err
			}
			report.Deleted++
		}
	}

	clients, err := u.clients.ListAll(ctx)
	if err != nil {
		logging.LogError(u.log, "migration_usecase.go", "MigrateLegacy", "clients.ListAll", nil, err)
		return report, err
	}
	for _, c := range clients {
		saved, err := u.clients.Replace(ctx, c)
		if err != nil {
			logging.LogError(u.log, "migration_usecase.go", "MigrateLegacy", "clients.Replace", c.ID, err)
			return report, err
		}
		if saved.ID != "" {
			report.Rewritten++
		}
	}

	if u.visits != nil {
		linked, err := u.visits.LinkLegacyVisits(ctx)
		report.VisitsLinked = linked
		if err != nil {
			logging.LogError(u.log, "migration_usecase.go", "MigrateLegacy", "visits.LinkLegacyVisits", nil, err)
			return report, err
		}
	}

	u.log.WithFields(logrus.Fields{
		"copied":        report.Copied,
		"skipped":       report.Skipped,
		"deleted":       report.Deleted,
		"rewritten":     report.Rewritten,
		"visits_linked": report.VisitsLinked,
	}).Info("legacy migration finished")
	return report, nil
}
