package traceRepo

import (
	"context"

	"concierge/models"
)

// TraceRepository defines methods for decision-trace data access. Traces are
// append-only; there is no update or delete.
type TraceRepository interface {
	// Save persists a decision trace.
	Save(ctx context.Context, trace *models.DecisionTrace) error
	// GetByID retrieves a trace by its trace ID, (nil, nil) when absent.
	GetByID(ctx context.Context, traceID string) (*models.DecisionTrace, error)
	// List retrieves the most recent traces, newest first.
	List(ctx context.Context, limit int64) ([]models.DecisionTrace, error)
}
