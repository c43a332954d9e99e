package storage

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/brave-intl/visacheckout/services/visacheckout"
	"github.com/redis/go-redis/v9"
	uuid "github.com/satori/go.uuid"
	"github.com/shopspring/decimal"
	should "github.com/stretchr/testify/assert"
	must "github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*Redis, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	store := New(redis.NewClient(&redis.Options{Addr: mr.Addr()}), time.Minute)
	t.Cleanup(func() { _ = store.Close() })

	return store, mr
}

func TestRedis_StageConsume(t *testing.T) {
	ctx := context.Background()
	store, mr := newStore(t)

	id := uuid.NewV4()
	env := visacheckout.EnvironmentConfig{
		Environment:        visacheckout.EnvironmentProduction,
		MerchantAPIKey:     "gwApikey",
		RequestCode:        visacheckout.RequestCode,
		AcceptedCardBrands: []string{"VISA"},
	}
	req := &visacheckout.PaymentRequest{
		MerchantInfo: &visacheckout.MerchantInfo{APIKey: "gwApikey", DataLevel: visacheckout.DataLevelFull},
		CurrencyCode: "USD",
		Total:        decimal.RequireFromString("10.5"),
	}

	must.NoError(t, store.Ping(ctx))
	must.NoError(t, store.StageEnvironment(ctx, id, env))
	must.NoError(t, store.StageRequest(ctx, id, req))

	should.True(t, mr.Exists(stagePrefix+id.String()))
	should.Equal(t, time.Minute, mr.TTL(stagePrefix+id.String()))

	actual, err := store.Consume(ctx, id)
	must.NoError(t, err)
	should.Equal(t, id, actual.SessionID)
	should.Equal(t, &env, actual.Environment)
	should.Equal(t, "gwApikey", actual.Request.MerchantInfo.APIKey)
	should.True(t, req.Total.Equal(actual.Request.Total))

	should.False(t, mr.Exists(stagePrefix+id.String()))

	_, err = store.Consume(ctx, id)
	should.ErrorIs(t, err, visacheckout.ErrNothingStaged)
}

func TestRedis_StagedStateExpires(t *testing.T) {
	ctx := context.Background()
	store, mr := newStore(t)

	id := uuid.NewV4()
	must.NoError(t, store.StageEnvironment(ctx, id, visacheckout.EnvironmentConfig{}))

	mr.FastForward(2 * time.Minute)

	_, err := store.Consume(ctx, id)
	should.ErrorIs(t, err, visacheckout.ErrNothingStaged)
}

func TestRedis_LaunchClaim(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)

	id := uuid.NewV4()

	_, err := store.Claim(ctx, id)
	should.ErrorIs(t, err, visacheckout.ErrResultDelivered)

	must.NoError(t, store.Launch(ctx, id, visacheckout.RequestCode))
	should.ErrorIs(t, store.Launch(ctx, id, visacheckout.RequestCode), visacheckout.ErrFlowInProgress)

	code, err := store.Claim(ctx, id)
	must.NoError(t, err)
	should.Equal(t, visacheckout.RequestCode, code)

	_, err = store.Claim(ctx, id)
	should.ErrorIs(t, err, visacheckout.ErrResultDelivered)

	// a delivered launch can be followed by a new one
	should.NoError(t, store.Launch(ctx, id, visacheckout.RequestCode))
}
