package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"concierge/models"

	"github.com/hibiken/asynq"
)

const TypeTracePersist = "trace:persist"

// NewTracePersistTask builds the task that persists a decision trace off the
// request path.
func NewTracePersistTask(trace *models.DecisionTrace) (*asynq.Task, error) {
	b, err := json.Marshal(trace)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeTracePersist, b), nil
}

// TraceEnqueuer pushes trace-persist tasks onto the queue.
type TraceEnqueuer struct {
	client *asynq.Client
}

// NewTraceEnqueuer wraps an asynq client for trace submission.
func NewTraceEnqueuer(client *asynq.Client) *TraceEnqueuer {
	return &TraceEnqueuer{client: client}
}

// Enqueue submits the trace for background persistence.
func (e *TraceEnqueuer) Enqueue(ctx context.Context, trace *models.DecisionTrace) error {
	task, err := NewTracePersistTask(trace)
	if err != nil {
		return fmt.Errorf("failed to build trace task: %w", err)
	}
	if _, err := e.client.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("failed to enqueue trace %s: %w", trace.TraceID, err)
	}
	return nil
}
