package interfaces

import "solar_pipeline/internal/domain/entities"

// IPipelineRecorder receives business events for metrics.
type IPipelineRecorder interface {
	ClientCreated()
	StageChanged(from, to entities.Stage)
}

// NoopRecorder discards every event.
type NoopRecorder struct{}

func (NoopRecorder) ClientCreated()                   {}
func (NoopRecorder) StageChanged(_, _ entities.Stage) {}
