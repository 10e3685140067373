package application

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/hibiken/asynq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"lootvalue/internal/config"
	"lootvalue/internal/server"
	"lootvalue/internal/transport/bot"
	"lootvalue/internal/transport/bot/handler"
	"lootvalue/internal/worker"
	"lootvalue/pkg/application/connectors"
	"lootvalue/pkg/application/modules"
	"lootvalue/pkg/httpx"
	"lootvalue/pkg/logx"
	"lootvalue/pkg/metrics"
	"lootvalue/pkg/probe"
)

const httpReadHeaderTimeout = 5 * time.Second

// Run поднимает все модули сервиса и ждёт отмены ctx.
func Run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	sql := &connectors.SQL{
		Driver:          cfg.Catalog.Driver,
		DSN:             cfg.Catalog.DSN,
		MaxOpenConns:    cfg.Catalog.MaxOpenConns,
		MaxIdleConns:    cfg.Catalog.MaxIdleConns,
		ConnMaxLifetime: cfg.Catalog.ConnMaxLifetime,
	}
	defer sql.Close(ctx)

	rdb := NewRedis(cfg.Redis)
	defer rdb.Close(ctx)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	appMetrics := metrics.NewAppraisalMetrics(registry)

	c := NewComponents(sql.Client(ctx), rdb.Client(ctx), cfg.Redis.LocalTTL)
	c.Appraisals.WithMetrics(appMetrics)

	policy, display := cfg.Appraisal.Policy(), cfg.Appraisal.Display()

	g, ctx := errgroup.WithContext(ctx)

	srv := server.NewServer(server.NewAppraisalServer(c.Appraisals, policy, display))

	modules.HTTPServer{ShutdownTimeout: cfg.HTTP.ShutdownTimeout}.Run(ctx, g, &http.Server{
		//nolint:exhaustruct
		Addr:              cfg.HTTP.ListenAddress,
		Handler:           srv.Handler(log, logx.NewSensitiveDataMasker(), cfg.HTTP.LogFieldMaxLen),
		ReadHeaderTimeout: httpReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	})

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.Probe.ListenAddress,
		Checks: []probe.Check{
			{Name: "catalog", Check: func(ctx context.Context) error { return sql.Client(ctx).PingContext(ctx) }},
			{Name: "redis", Check: func(ctx context.Context) error { return rdb.Client(ctx).Ping(ctx).Err() }},
		},
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress: cfg.Metrics.ListenAddress,
		Gatherer:      registry,
	}.Run(ctx, g)

	if cfg.Asynq.Enabled {
		if err := runPriceSync(ctx, g, cfg.Asynq, rdb, c, appMetrics); err != nil {
			return err
		}
	}

	if cfg.Bot.Enabled {
		tasks := asynq.NewClient(rdb.AsynqOpt())
		defer tasks.Close()

		h := handler.New(c.Appraisals, policy, display).WithTaskEnqueuer(tasks)

		botClient := &http.Client{
			Transport: httpx.NewLoggingRoundTripper(http.DefaultTransport,
				httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
				httpx.WithLogFieldMaxLen(cfg.HTTP.LogFieldMaxLen),
			),
		}

		telegramBot, err := bot.New(cfg.Bot.Token, cfg.Bot.AdminID, h, botClient)
		if err != nil {
			return fmt.Errorf("bot.New: %w", err)
		}

		g.Go(func() error {
			if err := telegramBot.Run(ctx); err != nil {
				return fmt.Errorf("telegramBot.Run: %w", err)
			}

			return nil
		})
	}

	log.Info("application started",
		slog.String(logx.FieldAppName, cfg.App.Name),
		slog.String(logx.FieldAppVersion, cfg.App.Version),
	)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("errgroup.Wait: %w", err)
	}

	return nil
}

func runPriceSync(
	ctx context.Context,
	g *errgroup.Group,
	cfg config.Asynq,
	rdb *connectors.Redis,
	c Components,
	syncMetrics worker.SyncMetrics,
) error {
	priceSync := worker.NewPriceSync(c.Prices, c.Quotes).WithMetrics(syncMetrics)

	task, err := worker.NewPriceSyncTask("scheduler")
	if err != nil {
		return fmt.Errorf("worker.NewPriceSyncTask: %w", err)
	}

	asynqServer := modules.AsynqServer{
		Redis:       rdb.AsynqOpt(),
		Concurrency: cfg.Concurrency,
	}

	asynqServer.Run(ctx, g, cfg.Queues, modules.AsynqHandler{
		Pattern: worker.TypePriceSync,
		Handle:  priceSync.HandleTask,
	})

	asynqServer.RunScheduler(ctx, g, modules.AsynqPeriodicTask{
		Cronspec: cfg.PriceSyncCron,
		Task:     task,
	})

	return nil
}
