// Package handler exposes Visa Checkout flows over HTTP.
//
// A checkout spans three requests bound by the session id minted by the first:
// create the session, authorize (stage and launch), then report the result.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/go-chi/chi"
	uuid "github.com/satori/go.uuid"

	errorutils "github.com/brave-intl/visacheckout/libs/errors"
	"github.com/brave-intl/visacheckout/libs/handlers"
	"github.com/brave-intl/visacheckout/libs/inputs"
	"github.com/brave-intl/visacheckout/libs/logging"
	"github.com/brave-intl/visacheckout/libs/middleware"
	"github.com/brave-intl/visacheckout/libs/requestutils"
	"github.com/brave-intl/visacheckout/services/visacheckout"
)

const (
	errCodeFlowInProgress    = "flow_in_progress"
	errCodeResultDelivered   = "result_delivered"
	errCodeNotConfigured     = "visa_checkout_unavailable"
	errCodeExternalFlow      = "external_flow_failed"
	errCodeTokenization      = "tokenization_failed"
	errCodeUnknownRequest    = "unknown_request_code"
	errCodeGatewayConfigFail = "configuration_unavailable"
	errCodeTimeout           = "checkout_timeout"
)

// outcomeTimeout bounds the dispatch of a result, tokenization included.
var outcomeTimeout = 30 * time.Second

// Router mounts the session endpoints.
func Router(svc *visacheckout.Service) chi.Router {
	r := chi.NewRouter()

	r.Method(http.MethodPost, "/sessions", middleware.InstrumentHandler("CreateSession", CreateSession(svc)))
	r.Route("/sessions/{sessionID}", func(sr chi.Router) {
		sr.Method(http.MethodPost, "/authorize", middleware.InstrumentHandler("AuthorizeSession", Authorize(svc)))
		sr.Method(http.MethodPost, "/result", middleware.InstrumentHandler("SessionResult", Result(svc)))
	})

	return r
}

// SessionResponse carries what the browser library needs to start Visa Checkout.
type SessionResponse struct {
	SessionID uuid.UUID `json:"sessionId"`
	visacheckout.EnvironmentConfig
	SDKURL string `json:"sdkUrl,omitempty"`
}

// CreateSession starts a flow and resolves its library environment.
func CreateSession(svc *visacheckout.Service) handlers.AppHandler {
	return func(w http.ResponseWriter, r *http.Request) *handlers.AppError {
		ctx := r.Context()
		logger := logging.Logger(ctx, "handler.CreateSession")

		rec := visacheckout.NewRecorder()

		flow, err := svc.NewFlow(ctx, rec)
		if err != nil {
			logger.Error().Err(err).Msg("failed to start flow")
			return &handlers.AppError{
				Cause:     err,
				Message:   "Error fetching merchant configuration",
				ErrorCode: errCodeGatewayConfigFail,
				Code:      http.StatusBadGateway,
			}
		}

		if err := flow.CreateLibrary(ctx); err != nil {
			logger.Error().Err(err).Msg("failed to create library")
			return handlers.WrapError(err, "Error creating Visa Checkout library", http.StatusInternalServerError)
		}

		if outcome := rec.Outcome(); outcome != nil && outcome.Err != nil {
			return outcomeError(outcome.Err)
		}

		env, _ := flow.Environment()
		resp := SessionResponse{
			SessionID:         flow.SessionID(),
			EnvironmentConfig: env,
		}

		if lib, _ := rec.Library(); lib != nil {
			resp.SDKURL = lib.SDKURL
		}

		return handlers.RenderContent(ctx, resp, w, http.StatusCreated)
	}
}

// AuthorizeRequest is the payment request for a session. User is attached only
// when the payment request carries no user info.
type AuthorizeRequest struct {
	PaymentRequest *visacheckout.PaymentRequest `json:"paymentRequest" valid:"required"`
	User           *visacheckout.UserInfo       `json:"user,omitempty"`
}

// LaunchResponse is the staged state the external flow starts from.
type LaunchResponse struct {
	RequestCode    int                             `json:"requestCode"`
	Environment    *visacheckout.EnvironmentConfig `json:"environment,omitempty"`
	PaymentRequest *visacheckout.PaymentRequest    `json:"paymentRequest"`
}

// Authorize stages the payment request, launches the external flow and hands
// the staged state to the caller.
func Authorize(svc *visacheckout.Service) handlers.AppHandler {
	return func(w http.ResponseWriter, r *http.Request) *handlers.AppError {
		ctx := r.Context()
		logger := logging.Logger(ctx, "handler.Authorize")

		sessionID, appErr := sessionIDFromRequest(r)
		if appErr != nil {
			return appErr
		}

		var req AuthorizeRequest
		if err := requestutils.ReadJSON(ctx, r.Body, &req); err != nil {
			return handlers.WrapError(err, "Error in request body", http.StatusBadRequest)
		}

		if _, err := govalidator.ValidateStruct(req); err != nil {
			return handlers.WrapValidationError(err)
		}

		flow, err := svc.Resume(ctx, sessionID, nil)
		if err != nil {
			return resumeError(err)
		}

		if err := flow.Authorize(ctx, req.PaymentRequest, req.User); err != nil {
			if ae := conflictError(err); ae != nil {
				return ae
			}

			logger.Error().Err(err).Msg("failed to authorize")
			return handlers.WrapError(err, "Error launching Visa Checkout", http.StatusInternalServerError)
		}

		staged, err := svc.Consume(ctx, sessionID)
		if err != nil {
			if rerr := svc.Release(ctx, sessionID); rerr != nil {
				logger.Error().Err(rerr).Msg("failed to release launch")
			}

			if errorutils.IsErrNotFound(err) {
				return handlers.WrapError(err, "Nothing staged for session", http.StatusNotFound)
			}

			logger.Error().Err(err).Msg("failed to consume staged state")
			return handlers.WrapError(err, "Error reading staged state", http.StatusInternalServerError)
		}

		resp := LaunchResponse{
			RequestCode:    visacheckout.RequestCode,
			Environment:    staged.Environment,
			PaymentRequest: staged.Request,
		}

		return handlers.RenderContent(ctx, resp, w, http.StatusOK)
	}
}

// ResultRequest is the result reported by the external flow.
type ResultRequest struct {
	RequestCode    int                     `json:"requestCode,omitempty"`
	ResultCode     visacheckout.ResultCode `json:"resultCode"`
	PaymentSummary json.RawMessage         `json:"paymentSummary,omitempty"`
}

// CancelResponse reports a checkout the user backed out of.
type CancelResponse struct {
	Canceled    bool `json:"canceled"`
	RequestCode int  `json:"requestCode"`
}

// Result dispatches the result of the external flow and renders its outcome.
func Result(svc *visacheckout.Service) handlers.AppHandler {
	return func(w http.ResponseWriter, r *http.Request) *handlers.AppError {
		ctx := r.Context()
		logger := logging.Logger(ctx, "handler.Result")

		sessionID, appErr := sessionIDFromRequest(r)
		if appErr != nil {
			return appErr
		}

		var req ResultRequest
		if err := requestutils.ReadJSON(ctx, r.Body, &req); err != nil {
			return handlers.WrapError(err, "Error in request body", http.StatusBadRequest)
		}

		rec := visacheckout.NewRecorder()

		flow, err := svc.Resume(ctx, sessionID, rec)
		if err != nil {
			return resumeError(err)
		}

		res := visacheckout.Result{
			RequestCode: req.RequestCode,
			Code:        req.ResultCode,
			Payload:     req.PaymentSummary,
		}

		// bounds the tokenization the result triggers
		dispatchCtx, cancel := context.WithTimeout(ctx, outcomeTimeout)
		defer cancel()

		if err := flow.OnResult(dispatchCtx, res); err != nil {
			if ae := conflictError(err); ae != nil {
				return ae
			}

			if errors.Is(err, visacheckout.ErrUnknownRequestCode) {
				return &handlers.AppError{
					Message:   err.Error(),
					ErrorCode: errCodeUnknownRequest,
					Code:      http.StatusBadRequest,
				}
			}

			logger.Error().Err(err).Msg("failed to dispatch result")
			return handlers.WrapError(err, "Error dispatching result", http.StatusInternalServerError)
		}

		outcome := rec.Outcome()
		if outcome == nil {
			return handlers.WrapError(errors.New("no outcome delivered"), "Error completing checkout", http.StatusInternalServerError)
		}

		if outcome.Err != nil && errors.Is(dispatchCtx.Err(), context.DeadlineExceeded) {
			return &handlers.AppError{
				Cause:     outcome.Err,
				Message:   "Timed out completing Visa Checkout",
				ErrorCode: errCodeTimeout,
				Code:      http.StatusGatewayTimeout,
			}
		}

		switch {
		case outcome.Err != nil:
			return outcomeError(outcome.Err)

		case outcome.Canceled:
			return handlers.RenderContent(ctx, CancelResponse{Canceled: true, RequestCode: outcome.RequestCode}, w, http.StatusOK)

		default:
			return handlers.RenderContent(ctx, outcome.Nonce, w, http.StatusOK)
		}
	}
}

func sessionIDFromRequest(r *http.Request) (uuid.UUID, *handlers.AppError) {
	id := new(inputs.ID)
	if err := inputs.DecodeAndValidateString(r.Context(), id, chi.URLParam(r, "sessionID")); err != nil {
		return uuid.Nil, handlers.ValidationError(
			"request url parameter",
			map[string]interface{}{
				"sessionID": err.Error(),
			},
		)
	}

	return *id.UUID(), nil
}

func resumeError(err error) *handlers.AppError {
	if errors.Is(err, visacheckout.ErrInvalidSessionID) {
		return handlers.ValidationError("request url parameter", map[string]interface{}{"sessionID": err.Error()})
	}

	return &handlers.AppError{
		Cause:     err,
		Message:   "Error fetching merchant configuration",
		ErrorCode: errCodeGatewayConfigFail,
		Code:      http.StatusBadGateway,
	}
}

func conflictError(err error) *handlers.AppError {
	if !errorutils.IsErrConflict(err) {
		return nil
	}

	code := errCodeFlowInProgress
	if errors.Is(err, visacheckout.ErrResultDelivered) {
		code = errCodeResultDelivered
	}

	return &handlers.AppError{
		Message:   err.Error(),
		ErrorCode: code,
		Code:      http.StatusConflict,
	}
}

// outcomeError maps an error delivered to the flow callback.
func outcomeError(err error) *handlers.AppError {
	var (
		cfgErr   *visacheckout.ConfigurationError
		extErr   *visacheckout.ExternalFlowError
		tokenErr *visacheckout.TokenizationError
	)

	switch {
	case errors.As(err, &cfgErr):
		return &handlers.AppError{Message: cfgErr.Reason, ErrorCode: errCodeNotConfigured, Code: http.StatusUnprocessableEntity}

	case errors.As(err, &extErr), errors.Is(err, visacheckout.ErrMissingSummary):
		return &handlers.AppError{Message: err.Error(), ErrorCode: errCodeExternalFlow, Code: http.StatusPaymentRequired}

	case errors.As(err, &tokenErr), errorutils.IsErrUpstream(err):
		return &handlers.AppError{Cause: err, Message: "Error tokenizing Visa Checkout card", ErrorCode: errCodeTokenization, Code: http.StatusBadGateway}

	default:
		return handlers.WrapError(err, "Error completing checkout", http.StatusInternalServerError)
	}
}
