package context

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestGetLogger(t *testing.T) {
	ctx := context.Background()
	actual, err := GetLogger(ctx)
	assert.Nil(t, actual)
	assert.EqualError(t, err, fmt.Sprintf("logger not found in context: %s", ErrNotInContext.Error()))

	l := zerolog.New(os.Stdout)
	ctx = l.WithContext(ctx)
	actual, err = GetLogger(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, actual)
}

func TestGetStringFromContext(t *testing.T) {
	ctx := context.Background()

	_, err := GetStringFromContext(ctx, BraintreeServerCTXKey)
	assert.ErrorIs(t, err, ErrNotInContext)

	ctx = context.WithValue(ctx, BraintreeServerCTXKey, 1)
	_, err = GetStringFromContext(ctx, BraintreeServerCTXKey)
	assert.ErrorIs(t, err, ErrValueWrongType)

	ctx = context.WithValue(ctx, BraintreeServerCTXKey, "https://api.sandbox.braintreegateway.com")
	s, err := GetStringFromContext(ctx, BraintreeServerCTXKey)
	assert.NoError(t, err)
	assert.Equal(t, "https://api.sandbox.braintreegateway.com", s)
}

func TestGetDurationFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), StageTTLCTXKey, 5*time.Minute)

	d, err := GetDurationFromContext(ctx, StageTTLCTXKey)
	assert.NoError(t, err)
	assert.Equal(t, 5*time.Minute, d)

	_, err = GetDurationFromContext(ctx, ConfigurationCacheTTLCTXKey)
	assert.ErrorIs(t, err, ErrNotInContext)
}

func TestGetLogLevelFromContext(t *testing.T) {
	level, err := GetLogLevelFromContext(context.Background(), LogLevelCTXKey)
	assert.ErrorIs(t, err, ErrNotInContext)
	assert.Equal(t, zerolog.InfoLevel, level)

	ctx := context.WithValue(context.Background(), LogLevelCTXKey, zerolog.WarnLevel)
	level, err = GetLogLevelFromContext(ctx, LogLevelCTXKey)
	assert.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, level)
}
