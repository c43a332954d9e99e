package cmd

import (
	"context"
	"net/http"
	"time"

	rootcmd "github.com/brave-intl/visacheckout/cmd"
	appctx "github.com/brave-intl/visacheckout/libs/context"
	"github.com/brave-intl/visacheckout/libs/handlers"
	"github.com/brave-intl/visacheckout/libs/logging"
	"github.com/brave-intl/visacheckout/libs/middleware"
	"github.com/getsentry/sentry-go"
	"github.com/go-chi/chi"
	chiware "github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/hlog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	timeout = 60 * time.Second

	defaultRateLimitPerMin = 180
)

func init() {
	rootcmd.RootCmd.AddCommand(ServeCmd)

	// address - sets the address of the server to be started
	ServeCmd.PersistentFlags().String("address", ":8080",
		"the default address to bind to")
	rootcmd.Must(viper.BindPFlag("address", ServeCmd.PersistentFlags().Lookup("address")))
	rootcmd.Must(viper.BindEnv("address", "ADDR"))

	ServeCmd.PersistentFlags().Int("rate-limit-per-min", defaultRateLimitPerMin,
		"rate limit per minute value")
	rootcmd.Must(viper.BindPFlag("rate-limit-per-min", ServeCmd.PersistentFlags().Lookup("rate-limit-per-min")))
	rootcmd.Must(viper.BindEnv("rate-limit-per-min", "RATE_LIMIT_PER_MIN"))

	ServeCmd.PersistentFlags().StringSlice("allowed-origins", []string{},
		"the origins allowed to make cross origin requests")
	rootcmd.Must(viper.BindPFlag("allowed-origins", ServeCmd.PersistentFlags().Lookup("allowed-origins")))
	rootcmd.Must(viper.BindEnv("allowed-origins", "ALLOWED_ORIGINS"))

	ServeCmd.PersistentFlags().String("sentry-dsn", "",
		"the sentry dsn errors are reported to")
	rootcmd.Must(viper.BindPFlag("sentry-dsn", ServeCmd.PersistentFlags().Lookup("sentry-dsn")))
	rootcmd.Must(viper.BindEnv("sentry-dsn", "SENTRY_DSN"))
}

// ServeCmd the serve command
var ServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "entrypoint to serve a micro-service",
}

// SetupSentry initializes error reporting when a dsn is configured
func SetupSentry(ctx context.Context) error {
	dsn := viper.GetString("sentry-dsn")
	if dsn == "" {
		return nil
	}

	release, _ := appctx.GetStringFromContext(ctx, appctx.CommitCTXKey)
	env, _ := appctx.GetStringFromContext(ctx, appctx.EnvironmentCTXKey)

	return sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Release:     release,
		Environment: env,
	})
}

// SetupRouter sets up a router with the common middleware, health check and metrics routes
func SetupRouter(ctx context.Context, checks map[string]handlers.Checker) *chi.Mux {
	logger := logging.FromContext(ctx)

	r := chi.NewRouter()
	r.Use(
		chiware.RequestID,
		chiware.RealIP,
		chiware.Heartbeat("/"),
		chiware.Timeout(timeout),
		middleware.RequestIDTransfer,
	)

	if origins, err := appctx.GetStringSliceFromContext(ctx, appctx.AllowedOriginsCTXKey); err == nil && len(origins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   origins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	if env, _ := appctx.GetStringFromContext(ctx, appctx.EnvironmentCTXKey); env == "production" {
		rl, ok := ctx.Value(appctx.RateLimitPerMinuteCTXKey).(int)
		if !ok || rl <= 0 {
			rl = defaultRateLimitPerMin
		}
		r.Use(middleware.RateLimiter(ctx, rl))
	}

	// Also handles panic recovery
	r.Use(
		hlog.NewHandler(*logger),
		hlog.UserAgentHandler("user_agent"),
		hlog.RequestIDHandler("req_id", "Request-Id"),
		middleware.RequestLogger(logger),
	)

	version, _ := appctx.GetStringFromContext(ctx, appctx.VersionCTXKey)
	commit, _ := appctx.GetStringFromContext(ctx, appctx.CommitCTXKey)
	buildTime, _ := appctx.GetStringFromContext(ctx, appctx.BuildTimeCTXKey)

	logger.Info().
		Str("version", version).
		Str("commit", commit).
		Str("build_time", buildTime).
		Str("address", viper.GetString("address")).
		Str("environment", viper.GetString("environment")).
		Msg("server starting")

	r.Get("/health-check", handlers.HealthCheckHandler(version, buildTime, commit, checks))
	r.Method(http.MethodGet, "/metrics", middleware.Metrics())

	return r
}
