package connectors

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // golang postgres driver
	"github.com/jmoiron/sqlx"
	"github.com/samber/lo"
	_ "modernc.org/sqlite" // pure go sqlite driver

	"lootvalue/pkg/logx"
)

const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

// SQL connects the item catalog database. Postgres in production, SQLite for
// local runs and tests; both go through sqlx so repositories stay driver-agnostic.
type SQL struct {
	value           *sqlx.DB
	Driver          string
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	init            sync.Once
}

func (s *SQL) Client(ctx context.Context) *sqlx.DB {
	s.init.Do(func() {
		s.value = lo.Must(sqlx.ConnectContext(ctx, s.Driver, s.DSN))

		s.value.SetMaxOpenConns(s.MaxOpenConns)
		s.value.SetMaxIdleConns(s.MaxIdleConns)
		s.value.SetConnMaxLifetime(s.ConnMaxLifetime)

		logger(ctx).Info(
			"database connected",
			slog.String("driver", s.Driver),
			slog.String("database", s.database()),
		)
	})

	return s.value
}

func (s *SQL) Close(ctx context.Context) {
	if s.value == nil {
		return
	}

	if err := s.value.Close(); err != nil {
		logger(ctx).Error("sqlClient.Close", logx.Error(err))
	}

	logger(ctx).Info(
		"database disconnected",
		slog.String("driver", s.Driver),
		slog.String("database", s.database()),
	)
}

func (s *SQL) database() string {
	if s.Driver == DriverSQLite {
		path, _, _ := strings.Cut(s.DSN, "?")
		return path
	}

	return lo.Must(url.Parse(s.DSN)).Path
}
