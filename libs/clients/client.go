package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"net/url"
	"regexp"
	"time"

	"github.com/brave-intl/visacheckout/libs/closers"
	appctx "github.com/brave-intl/visacheckout/libs/context"
	errorutils "github.com/brave-intl/visacheckout/libs/errors"
	"github.com/brave-intl/visacheckout/libs/middleware"
	"github.com/brave-intl/visacheckout/libs/requestutils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

const defaultTimeout = 10 * time.Second

// regular expression mapped to the replacement
var redactHeaders = map[*regexp.Regexp][]byte{
	regexp.MustCompile(`(?i)authorization: (?i)basic.+\n`):      []byte("Authorization: Basic <token>\n"),
	regexp.MustCompile(`(?i)authorization: (?i)bearer.+\n`):     []byte("Authorization: Bearer <token>\n"),
	regexp.MustCompile(`(?i)authorizationFingerprint=[^&\s]+`):  []byte("authorizationFingerprint=<fingerprint>"),
	regexp.MustCompile(`(?i)"authorizationFingerprint":"[^"]*"`): []byte(`"authorizationFingerprint":"<fingerprint>"`),
	regexp.MustCompile(`(?i)"encrypted(PaymentData|Key)":"[^"]*"`): []byte(`"encrypted$1":"<redacted>"`),
}

// RedactSensitiveHeaders from http request dumps
func RedactSensitiveHeaders(corpus []byte) []byte {
	for k, v := range redactHeaders {
		corpus = k.ReplaceAll(corpus, v)
	}
	return corpus
}

var concurrentClientRequests = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "concurrent_client_requests",
		Help: "Gauge that holds the current number of client requests",
	},
	[]string{
		"host",
		"method",
	},
)

func init() {
	prometheus.MustRegister(concurrentClientRequests)
}

// QueryStringBody - a type to generate the query string from a request "body" for the client
type QueryStringBody interface {
	// GenerateQueryString - function to generate the query string
	GenerateQueryString() (url.Values, error)
}

// SimpleHTTPClient wraps http.Client for making simple token authorized requests
type SimpleHTTPClient struct {
	BaseURL   *url.URL
	AuthToken string

	client *http.Client
}

// New returns a new SimpleHTTPClient
func New(serverURL string, authToken string) (*SimpleHTTPClient, error) {
	return NewWithHTTPClient(serverURL, authToken, &http.Client{
		Timeout: defaultTimeout,
	})
}

// NewInstrumented returns a new SimpleHTTPClient whose transport reports prometheus metrics under name
func NewInstrumented(name, serverURL, authToken string) (*SimpleHTTPClient, error) {
	return NewWithHTTPClient(serverURL, authToken, &http.Client{
		Timeout:   defaultTimeout,
		Transport: middleware.InstrumentRoundTripper(http.DefaultTransport, name),
	})
}

// NewWithHTTPClient returns a new SimpleHTTPClient, using the provided http.Client
func NewWithHTTPClient(serverURL string, authToken string, client *http.Client) (*SimpleHTTPClient, error) {
	baseURL, err := url.Parse(serverURL)
	if err != nil {
		return nil, err
	}

	return &SimpleHTTPClient{
		BaseURL:   baseURL,
		AuthToken: authToken,
		client:    client,
	}, nil
}

// newRequest creates a request, JSON encoding the body passed
func (c *SimpleHTTPClient) newRequest(
	ctx context.Context,
	method,
	path string,
	body interface{},
	qsb QueryStringBody,
) (*http.Request, string, int, error) {
	var buf io.ReadWriter
	qs := ""

	if qsb != nil {
		v, err := qsb.GenerateQueryString()
		if err != nil {
			return nil, "", 0, fmt.Errorf("failed to generate query string: %w", err)
		}
		qs = v.Encode()
	}

	resolvedURL := c.BaseURL.ResolveReference(&url.URL{
		Path:     path,
		RawQuery: qs,
	}).String()

	if body != nil && method != http.MethodGet {
		buf = new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(body); err != nil {
			return nil, resolvedURL, 0, errorutils.Wrap(err, ErrUnableToEncodeBody)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, resolvedURL, buf)
	if err != nil {
		var (
			escapeErr url.EscapeError
			hostErr   url.InvalidHostError
		)
		switch {
		case errors.As(err, &escapeErr):
			err = errorutils.Wrap(err, ErrUnableToEscapeURL)
		case errors.As(err, &hostErr):
			err = errorutils.Wrap(err, ErrInvalidHost)
		default:
			err = errorutils.Wrap(err, ErrMalformedRequest)
		}
		return nil, resolvedURL, http.StatusBadRequest, err
	}

	req.Header.Set("accept", "application/json")
	if buf != nil {
		req.Header.Add("content-type", "application/json")
	}
	requestutils.SetRequestID(ctx, req)
	if c.AuthToken != "" {
		req.Header.Set("authorization", "Bearer "+c.AuthToken)
	}
	return req, resolvedURL, 0, nil
}

// NewRequest wraps the new request with a particular error type
func (c *SimpleHTTPClient) NewRequest(
	ctx context.Context,
	method,
	path string,
	body interface{},
	qsb QueryStringBody,
) (*http.Request, error) {
	req, resolvedURL, status, err := c.newRequest(ctx, method, path, body, qsb)
	if err != nil {
		return nil, NewHTTPError(err, resolvedURL, "request", status, body)
	}
	return req, nil
}

func (c *SimpleHTTPClient) do(ctx context.Context, req *http.Request, v interface{}) (*http.Response, []byte, error) {
	labels := prometheus.Labels{"host": req.URL.Host, "method": req.Method}
	concurrentClientRequests.With(labels).Inc()
	defer concurrentClientRequests.With(labels).Dec()

	logger := log.Ctx(ctx)
	debug, _ := ctx.Value(appctx.DebugLoggingCTXKey).(bool)

	if debug {
		requestDump, err := httputil.DumpRequestOut(req, true)
		if err != nil {
			logger.Error().Err(err).Str("type", "http.Request").Msg("failed to dump request body")
		} else {
			logger.Debug().Str("type", "http.Request").Msg(string(RedactSensitiveHeaders(requestDump)))
		}
	}

	if _, ok := req.Context().Deadline(); !ok {
		reqCtx, cancel := context.WithTimeout(req.Context(), defaultTimeout)
		defer cancel()
		req = req.WithContext(reqCtx)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer closers.Log(ctx, resp.Body)

	bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, 1024*1024))
	if err != nil {
		return resp, nil, errorutils.Wrap(err, ErrUnableToReadBody)
	}
	resp.Body = io.NopCloser(bytes.NewReader(bodyBytes))

	if debug {
		logger.Debug().
			Str("type", "http.Response").
			Int("status", resp.StatusCode).
			Msg(string(RedactSensitiveHeaders(bodyBytes)))
	}

	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		if v != nil {
			if err := json.Unmarshal(bodyBytes, v); err != nil {
				return resp, bodyBytes, errorutils.Wrap(err, ErrUnableToDecode)
			}
		}
		return resp, bodyBytes, nil
	}

	logger.Warn().
		Int("response_status", resp.StatusCode).
		Str("host", req.URL.Host).
		Str("path", req.URL.Path).
		Msg("failed http client call")
	return resp, bodyBytes, errorutils.Wrap(fmt.Errorf("unexpected status %d", resp.StatusCode), ErrProtocolError)
}

// RespErrData - error data for http response
type RespErrData struct {
	ResponseHeaders interface{}
	Body            interface{}
}

// Do the specified http request, decoding the JSON result into v
func (c *SimpleHTTPClient) Do(ctx context.Context, req *http.Request, v interface{}) (*http.Response, error) {
	resp, body, err := c.do(ctx, req, v)
	if err != nil {
		// errors from do are either transport errors or upstream api errors
		if resp != nil {
			return resp, NewHTTPError(err, req.URL.String(), "response", resp.StatusCode, RespErrData{
				ResponseHeaders: resp.Header,
				Body:            string(body),
			})
		}
		return nil, fmt.Errorf("failed c.do, no response body: %w", err)
	}
	return resp, nil
}
