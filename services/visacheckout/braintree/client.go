// Package braintree talks to the gateway client api on behalf of a Visa Checkout flow.
package braintree

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/brave-intl/visacheckout/libs/backoff"
	"github.com/brave-intl/visacheckout/libs/backoff/retrypolicy"
	"github.com/brave-intl/visacheckout/libs/clients"
	appctx "github.com/brave-intl/visacheckout/libs/context"
	"github.com/brave-intl/visacheckout/libs/logging"
	"github.com/brave-intl/visacheckout/services/visacheckout"
	"github.com/google/go-querystring/query"
	cache "github.com/patrickmn/go-cache"
)

const (
	configVersion = "3"
	configKey     = "configuration"

	configurationPath = "v1/configuration"
	tokenizePath      = "v1/payment_methods/visa_checkout_cards"

	analyticsTimeout = 5 * time.Second
)

// Client implements visacheckout.ConfigurationFetcher, visacheckout.Tokenizer and
// visacheckout.AnalyticsSink against one merchant authorization.
type Client struct {
	client      *clients.SimpleHTTPClient
	fingerprint string
	cache       *cache.Cache
	retry       func() retrypolicy.Retry
	newClient   func(serverURL string) (*clients.SimpleHTTPClient, error)

	// analytics posts still in flight
	inflight sync.WaitGroup
}

// New returns a Client for serverURL that authorizes with fingerprint.
// The configuration is cached for ttl.
func New(serverURL, fingerprint string, ttl time.Duration) (*Client, error) {
	client, err := clients.NewInstrumented("braintree_client", serverURL, "")
	if err != nil {
		return nil, err
	}

	return newClient(client, fingerprint, ttl, func(u string) (*clients.SimpleHTTPClient, error) {
		return clients.NewInstrumented("braintree_analytics", u, "")
	}), nil
}

// NewWithHTTPClient is New with a caller supplied http.Client.
func NewWithHTTPClient(serverURL, fingerprint string, ttl time.Duration, hc *http.Client) (*Client, error) {
	client, err := clients.NewWithHTTPClient(serverURL, "", hc)
	if err != nil {
		return nil, err
	}

	return newClient(client, fingerprint, ttl, func(u string) (*clients.SimpleHTTPClient, error) {
		return clients.NewWithHTTPClient(u, "", hc)
	}), nil
}

// NewWithContext returns a Client configured from ctx.
func NewWithContext(ctx context.Context) (*Client, error) {
	serverURL, err := appctx.GetStringFromContext(ctx, appctx.BraintreeServerCTXKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get BraintreeServer from context: %w", err)
	}

	fingerprint, err := appctx.GetStringFromContext(ctx, appctx.BraintreeAuthorizationCTXKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get BraintreeAuthorization from context: %w", err)
	}

	ttl, err := appctx.GetDurationFromContext(ctx, appctx.ConfigurationCacheTTLCTXKey)
	if err != nil {
		ttl = 5 * time.Minute
	}

	return New(serverURL, fingerprint, ttl)
}

func newClient(
	client *clients.SimpleHTTPClient,
	fingerprint string,
	ttl time.Duration,
	fn func(string) (*clients.SimpleHTTPClient, error),
) *Client {
	return &Client{
		client:      client,
		fingerprint: fingerprint,
		cache:       cache.New(ttl, 2*ttl),
		retry:       retrypolicy.ConfigurationFetch,
		newClient:   fn,
	}
}

// ConfigurationOptions are sent along the configuration request
type ConfigurationOptions struct {
	ConfigVersion            string `url:"configVersion"`
	AuthorizationFingerprint string `url:"authorizationFingerprint"`
}

// GenerateQueryString - implement the QueryStringBody interface
func (o *ConfigurationOptions) GenerateQueryString() (url.Values, error) {
	return query.Values(o)
}

// Configuration fetches the merchant configuration, retrying gateway and transport failures.
func (c *Client) Configuration(ctx context.Context) (*visacheckout.Configuration, error) {
	if cfg, found := c.cache.Get(configKey); found {
		return cfg.(*visacheckout.Configuration), nil
	}

	opts := &ConfigurationOptions{
		ConfigVersion:            configVersion,
		AuthorizationFingerprint: c.fingerprint,
	}

	fetch := func() (*visacheckout.Configuration, error) {
		req, err := c.client.NewRequest(ctx, http.MethodGet, configurationPath, nil, opts)
		if err != nil {
			return nil, err
		}

		result := &visacheckout.Configuration{}
		if _, err := c.client.Do(ctx, req, result); err != nil {
			return nil, err
		}

		return result, nil
	}

	cfg, err := backoff.Retry(ctx, fetch, c.retry(), isRetriable)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch gateway configuration: %w", err)
	}

	c.cache.Set(configKey, cfg, cache.DefaultExpiration)

	return cfg, nil
}

type tokenizeBody struct {
	*visacheckout.TokenizeRequest
	AuthorizationFingerprint string `json:"authorizationFingerprint"`
}

// Tokenize posts the Visa Checkout card and returns the nonce from the response.
func (c *Client) Tokenize(ctx context.Context, tr *visacheckout.TokenizeRequest) (*visacheckout.Nonce, error) {
	body := tokenizeBody{
		TokenizeRequest:          tr,
		AuthorizationFingerprint: c.fingerprint,
	}

	req, err := c.client.NewRequest(ctx, http.MethodPost, tokenizePath, body, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(ctx, req, nil)
	if err != nil {
		if msg := gatewayMessage(err); msg != "" {
			return nil, fmt.Errorf("gateway rejected the visa checkout card: %s: %w", msg, err)
		}

		return nil, err
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read tokenization response: %w", err)
	}

	return visacheckout.NonceFromJSON(b)
}

type analyticsEvent struct {
	Kind      string `json:"kind"`
	Timestamp int64  `json:"timestamp"`
}

type analyticsBody struct {
	Analytics                []analyticsEvent `json:"analytics"`
	Meta                     analyticsMeta    `json:"_meta"`
	AuthorizationFingerprint string           `json:"authorizationFingerprint"`
}

type analyticsMeta struct {
	SessionID   string `json:"sessionId,omitempty"`
	Integration string `json:"integration"`
	Platform    string `json:"platform"`
}

// SendEvent posts name to the analytics url of the merchant configuration
// in the background and returns at once. The post outlives ctx and is bounded
// by its own timeout. Merchants without analytics get nothing sent. Failures are logged.
func (c *Client) SendEvent(ctx context.Context, name string) {
	logger := logging.Logger(ctx, "braintree.SendEvent")
	now := time.Now()

	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), analyticsTimeout)

	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()
		defer cancel()

		if err := c.sendEvent(sendCtx, name, now); err != nil {
			logger.Warn().Err(err).Str("event", name).Msg("failed to send analytics event")
		}
	}()
}

// Close waits for the analytics posts still in flight.
func (c *Client) Close() error {
	c.inflight.Wait()
	return nil
}

func (c *Client) sendEvent(ctx context.Context, name string, now time.Time) error {
	cfg, err := c.Configuration(ctx)
	if err != nil {
		return err
	}

	if !cfg.Analytics.IsEnabled() {
		return nil
	}

	client, err := c.newClient(cfg.Analytics.URL)
	if err != nil {
		return fmt.Errorf("invalid analytics url: %w", err)
	}

	body := analyticsBody{
		Analytics: []analyticsEvent{{Kind: name, Timestamp: now.Unix()}},
		Meta: analyticsMeta{
			Integration: "custom",
			Platform:    "web",
		},
		AuthorizationFingerprint: c.fingerprint,
	}

	if id, ok := visacheckout.SessionIDFromContext(ctx); ok {
		body.Meta.SessionID = id.String()
	}

	req, err := client.NewRequest(ctx, http.MethodPost, "", body, nil)
	if err != nil {
		return err
	}

	_, err = client.Do(ctx, req, nil)

	return err
}

func isRetriable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	state, uerr := clients.UnwrapHTTPState(err)
	if uerr != nil {
		// no response made it back
		return true
	}

	return state.Status == http.StatusTooManyRequests || state.Status >= http.StatusInternalServerError
}

// gatewayMessage digs the message out of a gateway error response.
func gatewayMessage(err error) string {
	state, uerr := clients.UnwrapHTTPState(err)
	if uerr != nil {
		return ""
	}

	data, ok := state.Body.(clients.RespErrData)
	if !ok {
		return ""
	}

	raw, ok := data.Body.(string)
	if !ok {
		return ""
	}

	var resp struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}

	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return ""
	}

	return resp.Error.Message
}
