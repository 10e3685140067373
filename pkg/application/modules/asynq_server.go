package modules

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"
	"golang.org/x/sync/errgroup"
)

type AsynqQueues map[string]int

type AsynqHandler struct {
	Pattern string
	Handle  func(context.Context, *asynq.Task) error
}

// AsynqPeriodicTask is enqueued by the scheduler on every Cronspec tick.
type AsynqPeriodicTask struct {
	Cronspec string
	Task     *asynq.Task
	Options  []asynq.Option
}

type AsynqServer struct {
	Redis       asynq.RedisClientOpt
	Concurrency int
}

func (s AsynqServer) Run(
	ctx context.Context,
	g *errgroup.Group,
	queues AsynqQueues,
	handlers ...AsynqHandler,
) {
	g.Go(func() error {
		worker := asynq.NewServer(s.Redis, asynq.Config{
			BaseContext: func() context.Context { return ctx },
			Queues:      queues,
			Concurrency: s.Concurrency,
			Logger:      asynqLogger{ctx: ctx},
		})

		mux := asynq.NewServeMux()

		for _, h := range handlers {
			mux.HandleFunc(h.Pattern, h.Handle)
		}

		if err := worker.Start(mux); err != nil {
			return fmt.Errorf("asynqServer.Start: %w", err)
		}

		logger(ctx).Info("asynq server started", slog.String("redis-address", s.Redis.Addr), slog.Int("redis-db", s.Redis.DB))

		<-ctx.Done()

		worker.Shutdown()

		logger(ctx).Info("asynq server stopped", slog.String("redis-address", s.Redis.Addr), slog.Int("redis-db", s.Redis.DB))

		return nil
	})
}

// RunScheduler registers periodic tasks and enqueues them until ctx is done.
func (s AsynqServer) RunScheduler(
	ctx context.Context,
	g *errgroup.Group,
	tasks ...AsynqPeriodicTask,
) {
	g.Go(func() error {
		scheduler := asynq.NewScheduler(s.Redis, &asynq.SchedulerOpts{
			Logger: asynqLogger{ctx: ctx},
		})

		for _, t := range tasks {
			if _, err := scheduler.Register(t.Cronspec, t.Task, t.Options...); err != nil {
				return fmt.Errorf("scheduler.Register(%s): %w", t.Task.Type(), err)
			}
		}

		if err := scheduler.Start(); err != nil {
			return fmt.Errorf("scheduler.Start: %w", err)
		}

		logger(ctx).Info("asynq scheduler started", slog.Int("tasks", len(tasks)))

		<-ctx.Done()

		scheduler.Shutdown()

		logger(ctx).Info("asynq scheduler stopped")

		return nil
	})
}

// asynqLogger routes asynq's internal logging into the context logger.
type asynqLogger struct {
	ctx context.Context //nolint:containedctx
}

func (l asynqLogger) Debug(args ...any) { logger(l.ctx).Debug(fmt.Sprint(args...)) }
func (l asynqLogger) Info(args ...any)  { logger(l.ctx).Info(fmt.Sprint(args...)) }
func (l asynqLogger) Warn(args ...any)  { logger(l.ctx).Warn(fmt.Sprint(args...)) }
func (l asynqLogger) Error(args ...any) { logger(l.ctx).Error(fmt.Sprint(args...)) }
func (l asynqLogger) Fatal(args ...any) { logger(l.ctx).Error(fmt.Sprint(args...)) }
