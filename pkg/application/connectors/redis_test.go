package connectors_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"lootvalue/pkg/application/connectors"
)

func TestRedisConnector(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	srv := miniredis.RunT(t)

	conn := &connectors.Redis{
		Address:  srv.Addr(),
		PoolSize: 2,
	}
	defer conn.Close(ctx)

	client := conn.Client(ctx)
	rq.Same(client, conn.Client(ctx))
	rq.NoError(client.Set(ctx, "k", "v", 0).Err())

	opt := conn.AsynqOpt()
	rq.Equal(srv.Addr(), opt.Addr)
	rq.Equal(2, opt.PoolSize)
}
