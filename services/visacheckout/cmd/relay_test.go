package cmd

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	appctx "github.com/brave-intl/visacheckout/libs/context"
	should "github.com/stretchr/testify/assert"
	must "github.com/stretchr/testify/require"
)

func newRelayContext() context.Context {
	ctx := context.Background()
	ctx = context.WithValue(ctx, appctx.BraintreeServerCTXKey, "https://api.sandbox.braintreegateway.com/merchants/merchant_id/client_api/")
	ctx = context.WithValue(ctx, appctx.BraintreeAuthorizationCTXKey, "fingerprint")
	ctx = context.WithValue(ctx, appctx.StageTTLCTXKey, time.Minute)

	return ctx
}

func TestInitService_InMemory(t *testing.T) {
	svc, checks, cleanup, err := InitService(newRelayContext())
	must.NoError(t, err)
	defer cleanup()

	should.NotNil(t, svc)
	should.Empty(t, checks)
}

func TestInitService_Redis(t *testing.T) {
	mr := miniredis.RunT(t)

	ctx := context.WithValue(newRelayContext(), appctx.RedisAddrCTXKey, mr.Addr())

	svc, checks, cleanup, err := InitService(ctx)
	must.NoError(t, err)
	defer cleanup()

	should.NotNil(t, svc)
	must.Contains(t, checks, "redis")
	should.NoError(t, checks["redis"](context.Background()))

	mr.Close()
	should.Error(t, checks["redis"](context.Background()))
}

func TestInitService_MissingBraintree(t *testing.T) {
	_, _, _, err := InitService(context.Background())
	should.ErrorIs(t, err, appctx.ErrNotInContext)
}
