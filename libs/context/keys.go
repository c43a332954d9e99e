package context

import "errors"

// CTXKey - a type for context keys
type CTXKey string

const (
	// EnvironmentCTXKey - the key used for service context
	EnvironmentCTXKey CTXKey = "environment"
	// LogLevelCTXKey - context key for application logging level
	LogLevelCTXKey CTXKey = "log_level"
	// LogWriterCTXKey - context key for an alternate log writer
	LogWriterCTXKey CTXKey = "log_writer"
	// DebugLoggingCTXKey - context key for debug logging
	DebugLoggingCTXKey CTXKey = "debug_logging"

	// VersionCTXKey - context key for version of code
	VersionCTXKey CTXKey = "version"
	// CommitCTXKey - context key for the commit of the code
	CommitCTXKey CTXKey = "commit"
	// BuildTimeCTXKey - context key for the build time of code
	BuildTimeCTXKey CTXKey = "build_time"

	// BraintreeServerCTXKey - the context key for the braintree client api server
	BraintreeServerCTXKey CTXKey = "braintree_server"
	// BraintreeAuthorizationCTXKey - the context key for the braintree authorization fingerprint
	BraintreeAuthorizationCTXKey CTXKey = "braintree_authorization"
	// ConfigurationCacheTTLCTXKey - context key for how long merchant configuration is cached
	ConfigurationCacheTTLCTXKey CTXKey = "configuration_cache_ttl"

	// RedisAddrCTXKey - context key for the redis address holding staged checkouts
	RedisAddrCTXKey CTXKey = "redis_addr"
	// StageTTLCTXKey - context key for how long staged checkout data lives
	StageTTLCTXKey CTXKey = "stage_ttl"

	// KafkaBrokersCTXKey - context key for kafka brokers
	KafkaBrokersCTXKey CTXKey = "kafka_brokers"
	// AnalyticsTopicCTXKey - context key for the analytics event topic
	AnalyticsTopicCTXKey CTXKey = "analytics_topic"

	// RateLimitPerMinuteCTXKey - context key for rate limit per minute value
	RateLimitPerMinuteCTXKey CTXKey = "rate_limit_per_minute"
	// RateLimiterBurstCTXKey - context key for the rate limiter burst
	RateLimiterBurstCTXKey CTXKey = "rate_limit_burst"
	// AllowedOriginsCTXKey - context key for cors allowed origins
	AllowedOriginsCTXKey CTXKey = "allowed_origins"
)

var (
	// ErrNotInContext - error you get when you ask for something not in the context.
	ErrNotInContext = errors.New("failed to get value from context")
	// ErrValueWrongType - error you get when you ask for something, and it is not the type you expected
	ErrValueWrongType = errors.New("context value of wrong type")
)
