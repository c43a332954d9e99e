// Package storage keeps staged checkout state and launch markers in redis so a
// checkout can span relay instances.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/brave-intl/visacheckout/services/visacheckout"
	"github.com/redis/go-redis/v9"
	uuid "github.com/satori/go.uuid"
)

const (
	stagePrefix  = "visacheckout:stage:"
	launchPrefix = "visacheckout:launch:"

	fieldEnvironment = "environment"
	fieldRequest     = "request"

	defaultTTL = 15 * time.Minute
)

// Redis implements visacheckout.Stager, visacheckout.Launcher and visacheckout.Claimer.
type Redis struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// New returns a Redis store, a non positive ttl falls back to fifteen minutes.
func New(client redis.UniversalClient, ttl time.Duration) *Redis {
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &Redis{client: client, ttl: ttl}
}

// NewWithAddr connects to the redis server at addr.
func NewWithAddr(addr string, ttl time.Duration) *Redis {
	return New(redis.NewClient(&redis.Options{Addr: addr}), ttl)
}

func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Close() error {
	return r.client.Close()
}

func (r *Redis) StageEnvironment(ctx context.Context, sessionID uuid.UUID, env visacheckout.EnvironmentConfig) error {
	return r.stage(ctx, sessionID, fieldEnvironment, env)
}

func (r *Redis) StageRequest(ctx context.Context, sessionID uuid.UUID, req *visacheckout.PaymentRequest) error {
	return r.stage(ctx, sessionID, fieldRequest, req)
}

// Consume reads and deletes the staged hash in one transaction.
func (r *Redis) Consume(ctx context.Context, sessionID uuid.UUID) (*visacheckout.Staged, error) {
	key := stagePrefix + sessionID.String()

	var get *redis.MapStringStringCmd
	if _, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		get = pipe.HGetAll(ctx, key)
		pipe.Del(ctx, key)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("failed to consume staged state: %w", err)
	}

	fields := get.Val()
	if len(fields) == 0 {
		return nil, visacheckout.ErrNothingStaged
	}

	result := &visacheckout.Staged{SessionID: sessionID}

	if raw, ok := fields[fieldEnvironment]; ok {
		result.Environment = &visacheckout.EnvironmentConfig{}
		if err := json.Unmarshal([]byte(raw), result.Environment); err != nil {
			return nil, fmt.Errorf("failed to decode staged environment: %w", err)
		}
	}

	if raw, ok := fields[fieldRequest]; ok {
		result.Request = &visacheckout.PaymentRequest{}
		if err := json.Unmarshal([]byte(raw), result.Request); err != nil {
			return nil, fmt.Errorf("failed to decode staged request: %w", err)
		}
	}

	return result, nil
}

// Launch records the launch marker, a marker left by a pending launch rejects it.
func (r *Redis) Launch(ctx context.Context, sessionID uuid.UUID, requestCode int) error {
	ok, err := r.client.SetNX(ctx, launchPrefix+sessionID.String(), requestCode, r.ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to record launch: %w", err)
	}

	if !ok {
		return visacheckout.ErrFlowInProgress
	}

	return nil
}

// Claim removes the launch marker, only the first claim of a launch succeeds.
func (r *Redis) Claim(ctx context.Context, sessionID uuid.UUID) (int, error) {
	raw, err := r.client.GetDel(ctx, launchPrefix+sessionID.String()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, visacheckout.ErrResultDelivered
		}

		return 0, fmt.Errorf("failed to claim launch: %w", err)
	}

	code, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("failed to decode launch marker: %w", err)
	}

	return code, nil
}

func (r *Redis) stage(ctx context.Context, sessionID uuid.UUID, field string, v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode staged %s: %w", field, err)
	}

	key := stagePrefix + sessionID.String()
	if _, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, field, b)
		pipe.Expire(ctx, key, r.ttl)
		return nil
	}); err != nil {
		return fmt.Errorf("failed to stage %s: %w", field, err)
	}

	return nil
}
