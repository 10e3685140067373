package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"lootvalue/internal/application"
	"lootvalue/internal/config"
	"lootvalue/internal/domain/entity"
	"lootvalue/internal/view"
	"lootvalue/pkg/application/connectors"
	"lootvalue/pkg/contextx"
	"lootvalue/pkg/logx"
	"lootvalue/pkg/lox"
)

// go run ./cmd/appraise [-restricted] <item_id>...
//
// Например:
//
// go run ./cmd/appraise -restricted ak-1 bolts-1

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := logx.NewLogger(os.Stderr, slog.LevelWarn, true)
	ctx = contextx.WithLogger(ctx, log)

	restricted := flag.Bool("restricted", false, "appraise as found in raid")
	flag.Parse()

	if err := run(ctx, flag.Args(), *restricted); err != nil {
		log.Error("appraise failed", logx.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, itemIDs []string, restricted bool) error {
	if len(itemIDs) == 0 {
		return errors.New("usage: appraise [-restricted] <item_id>...")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	sql := &connectors.SQL{
		Driver:          cfg.Catalog.Driver,
		DSN:             cfg.Catalog.DSN,
		MaxOpenConns:    cfg.Catalog.MaxOpenConns,
		MaxIdleConns:    cfg.Catalog.MaxIdleConns,
		ConnMaxLifetime: cfg.Catalog.ConnMaxLifetime,
	}
	defer sql.Close(ctx)

	rdb := application.NewRedis(cfg.Redis)
	defer rdb.Close(ctx)

	var quotes redis.UniversalClient
	if cfg.Redis.Address != "" {
		quotes = rdb.Client(ctx)
	}

	c := application.NewComponents(sql.Client(ctx), quotes, cfg.Redis.LocalTTL)

	policy := cfg.Appraisal.Policy()
	policy.InRestrictedContext = restricted

	appraisals, err := lox.MapErr(itemIDs, func(id string) (entity.Appraisal, error) {
		return c.Appraisals.Appraise(ctx, id, policy)
	})
	if err != nil {
		return fmt.Errorf("appraisals.Appraise: %w", err)
	}

	for _, a := range appraisals {
		fmt.Printf("%s (%s)\n", a.Item.Name, a.Item.ID)
		fmt.Print(view.Text(view.Lines(a, cfg.Appraisal.Display())))
	}

	return nil
}
