package handler

import (
	"context"

	"github.com/hibiken/asynq"

	"lootvalue/internal/domain/entity"
)

type appraisalService interface {
	Appraise(ctx context.Context, itemID string, policy entity.Policy) (entity.Appraisal, error)
}

type taskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type Handler struct {
	appraisals appraisalService
	tasks      taskEnqueuer
	policy     entity.Policy
	display    entity.DisplaySettings
}

func New(appraisals appraisalService, policy entity.Policy, display entity.DisplaySettings) *Handler {
	return &Handler{
		appraisals: appraisals,
		policy:     policy,
		display:    display,
	}
}

// WithTaskEnqueuer включает команду /sync.
func (h *Handler) WithTaskEnqueuer(tasks taskEnqueuer) *Handler {
	h.tasks = tasks
	return h
}
