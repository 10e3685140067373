package connectors_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"lootvalue/pkg/application/connectors"
)

func TestSQLiteConnector(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	conn := &connectors.SQL{
		Driver:       connectors.DriverSQLite,
		DSN:          ":memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	}
	defer conn.Close(ctx)

	db := conn.Client(ctx)
	rq.Same(db, conn.Client(ctx))
	rq.NoError(db.PingContext(ctx))

	var one int
	rq.NoError(db.GetContext(ctx, &one, `SELECT 1`))
	rq.Equal(1, one)
}
