package cmd

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	// pprof imports
	_ "net/http/pprof"

	cmdutils "github.com/brave-intl/visacheckout/cmd"
	appctx "github.com/brave-intl/visacheckout/libs/context"
	"github.com/brave-intl/visacheckout/libs/closers"
	"github.com/brave-intl/visacheckout/libs/handlers"
	"github.com/brave-intl/visacheckout/libs/logging"
	"github.com/brave-intl/visacheckout/libs/middleware"
	"github.com/brave-intl/visacheckout/services/cmd"
	"github.com/brave-intl/visacheckout/services/visacheckout"
	"github.com/brave-intl/visacheckout/services/visacheckout/analytics"
	"github.com/brave-intl/visacheckout/services/visacheckout/braintree"
	"github.com/brave-intl/visacheckout/services/visacheckout/handler"
	"github.com/brave-intl/visacheckout/services/visacheckout/stage"
	"github.com/brave-intl/visacheckout/services/visacheckout/storage"
	sentry "github.com/getsentry/sentry-go"
	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	cmd.ServeCmd.AddCommand(relayCmd)

	cmdutils.NewFlagBuilder(relayCmd).
		String("braintree-server", "https://api.braintreegateway.com/merchants/", "the braintree client api address").
		Bind("braintree-server").
		Env("BRAINTREE_SERVER")

	cmdutils.NewFlagBuilder(relayCmd).
		String("braintree-authorization", "", "the authorization fingerprint the relay tokenizes with").
		Bind("braintree-authorization").
		Env("BRAINTREE_AUTHORIZATION")

	cmdutils.NewFlagBuilder(relayCmd).
		Duration("configuration-cache-ttl", 5*time.Minute, "how long merchant configuration is cached").
		Bind("configuration-cache-ttl").
		Env("CONFIGURATION_CACHE_TTL")

	cmdutils.NewFlagBuilder(relayCmd).
		String("redis-addr", "", "the redis address holding staged checkouts, empty keeps them in memory").
		Bind("redis-addr").
		Env("REDIS_ADDR")

	cmdutils.NewFlagBuilder(relayCmd).
		Duration("stage-ttl", 15*time.Minute, "how long staged checkouts and pending launches live").
		Bind("stage-ttl").
		Env("STAGE_TTL")

	cmdutils.NewFlagBuilder(relayCmd).
		StringSlice("kafka-brokers", []string{}, "the kafka brokers analytics events are produced to").
		Bind("kafka-brokers").
		Env("KAFKA_BROKERS")

	cmdutils.NewFlagBuilder(relayCmd).
		String("analytics-topic", "visacheckout.events", "the kafka topic analytics events are produced to").
		Bind("analytics-topic").
		Env("ANALYTICS_TOPIC")
}

var relayCmd = &cobra.Command{
	Use:   "relay",
	Short: "provides the visa checkout relay micro-service entrypoint",
	Run:   RestRun,
}

// RestRun - Main entrypoint of the relay subcommand
// This function takes a cobra command and starts up the
// visa checkout relay rest microservice.
func RestRun(command *cobra.Command, args []string) {
	ctx := command.Context()
	logger, err := appctx.GetLogger(ctx)
	cmdutils.Must(err)
	// add profiling flag to enable profiling routes
	if viper.GetString("pprof-enabled") != "" {
		// pprof attaches routes to default serve mux
		// host:6061/debug/pprof/
		go func() {
			logger.Error().Err(http.ListenAndServe(":6061", http.DefaultServeMux))
		}()
	}

	if err := cmd.SetupSentry(ctx); err != nil {
		logger.Warn().Err(err).Msg("failed to initialize sentry")
	}

	// add our command line params to context
	ctx = context.WithValue(ctx, appctx.BraintreeServerCTXKey, viper.GetString("braintree-server"))
	ctx = context.WithValue(ctx, appctx.BraintreeAuthorizationCTXKey, viper.GetString("braintree-authorization"))
	ctx = context.WithValue(ctx, appctx.ConfigurationCacheTTLCTXKey, viper.GetDuration("configuration-cache-ttl"))
	ctx = context.WithValue(ctx, appctx.RedisAddrCTXKey, viper.GetString("redis-addr"))
	ctx = context.WithValue(ctx, appctx.StageTTLCTXKey, viper.GetDuration("stage-ttl"))
	ctx = context.WithValue(ctx, appctx.KafkaBrokersCTXKey, viper.GetStringSlice("kafka-brokers"))
	ctx = context.WithValue(ctx, appctx.AnalyticsTopicCTXKey, viper.GetString("analytics-topic"))
	ctx = context.WithValue(ctx, appctx.RateLimitPerMinuteCTXKey, viper.GetInt("rate-limit-per-min"))
	ctx = context.WithValue(ctx, appctx.AllowedOriginsCTXKey, viper.GetStringSlice("allowed-origins"))

	// setup the service now
	svc, checks, cleanup, err := InitService(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize visa checkout relay")
	}
	defer cleanup()

	r := cmd.SetupRouter(ctx, checks)
	r.Mount("/v1/visa-checkout", handler.Router(svc))

	// make sure exceptions go to sentry
	defer sentry.Flush(time.Second * 2)

	go func() {
		err := http.ListenAndServe(":9090", middleware.Metrics())
		if err != nil {
			sentry.CaptureException(err)
			logger.Panic().Err(err).Msg("metrics HTTP server start failed!")
		}
	}()

	// setup server, and run
	srv := http.Server{
		Addr:         viper.GetString("address"),
		Handler:      chi.ServerBaseContext(ctx, r),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 45 * time.Second,
	}

	if err = srv.ListenAndServe(); err != nil {
		sentry.CaptureException(err)
		logger.Fatal().Err(err).Msg("HTTP server start failed!")
	}
}

// InitService wires the relay collaborators from ctx.
//
// The returned checks feed the health check, cleanup releases every connection the service opened.
func InitService(ctx context.Context) (*visacheckout.Service, map[string]handlers.Checker, func(), error) {
	logger := logging.Logger(ctx, "visacheckout.InitService")

	bt, err := braintree.NewWithContext(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize braintree client: %w", err)
	}

	ttl, _ := appctx.GetDurationFromContext(ctx, appctx.StageTTLCTXKey)

	var (
		stager   visacheckout.Stager
		launcher visacheckout.Launcher
		claimer  visacheckout.Claimer
		toClose  = []io.Closer{bt}
		checks   = map[string]handlers.Checker{}
	)

	if addr, _ := appctx.GetStringFromContext(ctx, appctx.RedisAddrCTXKey); addr != "" {
		store := storage.NewWithAddr(addr, ttl)
		stager, launcher, claimer = store, store, store
		checks["redis"] = store.Ping
		toClose = append(toClose, store)
	} else {
		logger.Warn().Msg("no redis address configured, staged checkouts stay in process memory")
		markers := stage.NewMarkers(ttl)
		stager, launcher, claimer = stage.New(ttl), markers, markers
	}

	counter, err := analytics.NewCounter(prometheus.DefaultRegisterer)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to register analytics counter: %w", err)
	}
	sinks := analytics.Multi{counter, analytics.Log{}, bt}

	brokers, _ := appctx.GetStringSliceFromContext(ctx, appctx.KafkaBrokersCTXKey)
	if len(brokers) > 0 {
		topic, err := appctx.GetStringFromContext(ctx, appctx.AnalyticsTopicCTXKey)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to get AnalyticsTopic from context: %w", err)
		}

		producer, err := analytics.NewKafkaWithBrokers(ctx, brokers, topic)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to initialize analytics producer: %w", err)
		}
		sinks = append(sinks, producer)
		toClose = append(toClose, producer)
	}

	svc := visacheckout.NewService(
		bt,
		visacheckout.NewStaticLoader(),
		stager,
		launcher,
		visacheckout.NewTokenizerWithPrometheus(bt, "braintree"),
		visacheckout.WithClaimer(claimer),
		visacheckout.WithAnalytics(sinks),
	)

	cleanup := func() {
		for _, c := range toClose {
			closers.Log(ctx, c)
		}
	}

	return svc, checks, cleanup, nil
}
