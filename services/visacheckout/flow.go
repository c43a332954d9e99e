package visacheckout

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/brave-intl/visacheckout/libs/logging"
	"github.com/prometheus/client_golang/prometheus"
	uuid "github.com/satori/go.uuid"
)

const (
	StateIdle State = iota
	StateAwaiting
	StateTokenizing
	StateSucceeded
	StateFailed
	StateCanceled
)

var flowOutcomes = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "visacheckout_flow_outcomes_total",
		Help: "Terminal outcomes delivered by Visa Checkout flows",
	},
	[]string{"outcome"},
)

func init() {
	prometheus.MustRegister(flowOutcomes)
}

type State int32

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaiting:
		return "awaiting"
	case StateTokenizing:
		return "tokenizing"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	case StateCanceled:
		return "canceled"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

func (s State) IsTerminal() bool {
	return s == StateSucceeded || s == StateFailed || s == StateCanceled
}

// Flow is a single Visa Checkout attempt.
//
// Its state moves idle -> awaiting -> tokenizing -> succeeded|failed, or from idle/awaiting
// straight to canceled or failed. A flow delivers exactly one terminal outcome to its Callback.
type Flow struct {
	sessionID uuid.UUID
	cfg       *Configuration
	svc       *Service
	cb        Callback

	mu    sync.Mutex
	state State
	env   *EnvironmentConfig
}

func (f *Flow) SessionID() uuid.UUID {
	return f.sessionID
}

func (f *Flow) Configuration() *Configuration {
	return f.cfg
}

func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.state
}

// Environment returns the environment resolved by CreateLibrary.
func (f *Flow) Environment() (EnvironmentConfig, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.env == nil {
		return EnvironmentConfig{}, false
	}

	return *f.env, true
}

// CreateLibrary resolves the environment, stages it and hands the loaded library to the callback.
//
// Configuration errors are delivered to the callback and end the flow. The returned error
// is reserved for staging failures.
func (f *Flow) CreateLibrary(ctx context.Context) error {
	ctx = f.context(ctx)
	logger := logging.Logger(ctx, "visacheckout.CreateLibrary")

	if f.State().IsTerminal() {
		return ErrResultDelivered
	}

	env, err := Resolve(f.cfg, f.svc.loader)
	if err != nil {
		f.fail(ctx, err)
		return nil
	}

	if err := f.svc.stager.StageEnvironment(ctx, f.sessionID, env); err != nil {
		return fmt.Errorf("failed to stage environment: %w", err)
	}

	lib, err := f.svc.loader.Load(ctx, env)
	if err != nil {
		f.fail(ctx, &ConfigurationError{Reason: msgSDKUnavailable, Cause: err})
		return nil
	}

	f.mu.Lock()
	f.env = &env
	f.mu.Unlock()

	logger.Debug().
		Str("environment", string(env.Environment)).
		Bool("loaded", lib != nil).
		Msg("visa checkout library created")

	f.cb.OnLibrary(lib)

	return nil
}

// Authorize merges the request with the merchant configuration, stages it and launches the external flow.
//
// user is attached only when the request carries no user info. A flow with a pending launch
// rejects a second authorize with ErrFlowInProgress.
func (f *Flow) Authorize(ctx context.Context, req *PaymentRequest, user *UserInfo) error {
	ctx = f.context(ctx)
	logger := logging.Logger(ctx, "visacheckout.Authorize")

	f.mu.Lock()
	switch {
	case f.state == StateAwaiting || f.state == StateTokenizing:
		f.mu.Unlock()
		return ErrFlowInProgress
	case f.state.IsTerminal():
		f.mu.Unlock()
		return ErrResultDelivered
	}
	f.state = StateAwaiting
	f.mu.Unlock()

	req = Merge(req, f.cfg)
	if req.UserInfo == nil && user != nil {
		u := *user
		req.UserInfo = &u
	}

	if err := f.svc.stager.StageRequest(ctx, f.sessionID, req); err != nil {
		f.setState(StateIdle)
		return fmt.Errorf("failed to stage payment request: %w", err)
	}

	if err := f.svc.launcher.Launch(ctx, f.sessionID, RequestCode); err != nil {
		f.setState(StateIdle)

		// nothing will start from this launch, drop what was staged for it
		if _, cerr := f.svc.stager.Consume(ctx, f.sessionID); cerr != nil && !errors.Is(cerr, ErrNothingStaged) {
			logger.Warn().Err(cerr).Msg("failed to clear staged state")
		}

		return fmt.Errorf("failed to launch visa checkout: %w", err)
	}

	logger.Debug().Int("requestCode", RequestCode).Msg("visa checkout launched")

	return nil
}

// OnResult dispatches the result of the external flow.
//
// The returned error only reports a rejected result. Outcomes go to the callback.
func (f *Flow) OnResult(ctx context.Context, res Result) error {
	ctx = f.context(ctx)

	if res.RequestCode != 0 && res.RequestCode != RequestCode {
		return ErrUnknownRequestCode
	}

	f.mu.Lock()
	if f.state == StateTokenizing || f.state.IsTerminal() {
		f.mu.Unlock()
		return ErrResultDelivered
	}

	if f.svc.claimer != nil {
		if _, err := f.svc.claimer.Claim(ctx, f.sessionID); err != nil {
			f.mu.Unlock()
			return err
		}
	}

	var (
		summary *PaymentSummary
		derr    error
	)

	switch res.Code {
	case ResultOK:
		summary, derr = DecodeSummary(res.Payload)
		if derr != nil {
			f.state = StateFailed
		} else {
			f.state = StateTokenizing
		}
	case ResultCanceled:
		f.state = StateCanceled
	default:
		f.state = StateFailed
	}
	f.mu.Unlock()

	switch {
	case res.Code == ResultOK && derr == nil:
		f.event(ctx, EventActivityResultOK)
		f.tokenize(ctx, summary)

	case res.Code == ResultOK:
		logging.Logger(ctx, "visacheckout.OnResult").Warn().Err(derr).Msg("undecodable payment summary")
		f.event(ctx, EventActivityResultFailed)
		f.deliver(ctx, StateFailed, func() { f.cb.OnError(ErrMissingSummary) })

	case res.Code == ResultCanceled:
		f.event(ctx, EventActivityResultCanceled)
		f.deliver(ctx, StateCanceled, func() { f.cb.OnCancel(RequestCode) })

	default:
		f.event(ctx, EventActivityResultFailed)
		f.deliver(ctx, StateFailed, func() { f.cb.OnError(&ExternalFlowError{Code: res.Code}) })
	}

	return nil
}

// Tokenize exchanges a payment summary for a nonce and delivers it.
func (f *Flow) Tokenize(ctx context.Context, summary *PaymentSummary) error {
	ctx = f.context(ctx)

	if summary == nil {
		return ErrMissingSummary
	}

	f.mu.Lock()
	if f.state == StateTokenizing || f.state.IsTerminal() {
		f.mu.Unlock()
		return ErrResultDelivered
	}
	f.state = StateTokenizing
	f.mu.Unlock()

	f.tokenize(ctx, summary)

	return nil
}

func (f *Flow) tokenize(ctx context.Context, summary *PaymentSummary) {
	req := NewTokenizeRequest(summary, newMeta(f.sessionID.String()))

	nonce, err := f.svc.tokenizer.Tokenize(ctx, req)
	if err == nil && nonce == nil {
		err = errors.New("tokenization returned no nonce")
	}

	if err != nil {
		f.setState(StateFailed)
		f.event(ctx, EventTokenizeFailed)
		f.deliver(ctx, StateFailed, func() { f.cb.OnError(&TokenizationError{Cause: err}) })
		return
	}

	f.setState(StateSucceeded)
	f.event(ctx, EventTokenizeSucceeded)
	f.deliver(ctx, StateSucceeded, func() { f.cb.OnNonce(nonce) })
}

func (f *Flow) fail(ctx context.Context, err error) {
	f.mu.Lock()
	if f.state.IsTerminal() {
		f.mu.Unlock()
		return
	}
	f.state = StateFailed
	f.mu.Unlock()

	f.deliver(ctx, StateFailed, func() { f.cb.OnError(err) })
}

func (f *Flow) deliver(ctx context.Context, outcome State, fn func()) {
	flowOutcomes.WithLabelValues(outcome.String()).Inc()

	logging.Logger(ctx, "visacheckout.deliver").Info().
		Str("outcome", outcome.String()).
		Msg("visa checkout flow finished")

	fn()
}

func (f *Flow) event(ctx context.Context, name string) {
	if f.svc.analytics != nil {
		f.svc.analytics.SendEvent(ctx, name)
	}
}

func (f *Flow) setState(s State) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.state = s
}

func (f *Flow) context(ctx context.Context) context.Context {
	if id, ok := SessionIDFromContext(ctx); ok && uuid.Equal(id, f.sessionID) {
		return ctx
	}

	ctx = ContextWithSessionID(ctx, f.sessionID)

	return logging.AddSessionIDToContext(ctx, f.sessionID)
}
