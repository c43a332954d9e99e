package clients

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	errorutils "github.com/brave-intl/visacheckout/libs/errors"
	"github.com/brave-intl/visacheckout/libs/requestutils"
	testutils "github.com/brave-intl/visacheckout/libs/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type versionQuery struct {
	Version string
}

func (q versionQuery) GenerateQueryString() (url.Values, error) {
	return url.Values{"configVersion": []string{q.Version}}, nil
}

func TestDo_ErrorWithResponse(t *testing.T) {
	errorMsg := testutils.RandomString()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte(errorMsg))
		assert.NoError(t, err)
	}))
	defer ts.Close()

	req, err := http.NewRequest(http.MethodGet, ts.URL, nil)
	require.NoError(t, err)

	client, err := New(ts.URL, "")
	require.NoError(t, err)

	// not json, so decoding fails
	var data map[string]string
	response, err := client.Do(context.Background(), req, &data)

	assert.IsType(t, &errorutils.ErrorBundle{}, err)
	assert.NotNil(t, response)

	var actual *errorutils.ErrorBundle
	require.True(t, errors.As(err, &actual))
	assert.Equal(t, "response", actual.Error())
	assert.NotNil(t, actual.Cause())

	httpState := actual.Data().(HTTPState)
	assert.Equal(t, http.StatusOK, httpState.Status)
	assert.Equal(t, ts.URL, httpState.Path)
	assert.Contains(t, fmt.Sprintf("%+v", httpState.Body), errorMsg)
}

func TestDo_UpstreamStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error":{"message":"bad card"}}`))
	}))
	defer ts.Close()

	client, err := New(ts.URL, "")
	require.NoError(t, err)

	req, err := client.NewRequest(context.Background(), http.MethodPost, "/v1/payment_methods", map[string]string{"a": "b"}, nil)
	require.NoError(t, err)

	_, err = client.Do(context.Background(), req, nil)
	require.Error(t, err)

	state, err := UnwrapHTTPState(err)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, state.Status)
	assert.Contains(t, state.Body.(RespErrData).Body, "bad card")
}

func TestNewRequest(t *testing.T) {
	client, err := New("https://api.sandbox.braintreegateway.com/merchants/abc/client_api/", "tok")
	require.NoError(t, err)

	ctx := context.WithValue(context.Background(), requestutils.RequestID, "req-1")
	req, err := client.NewRequest(ctx, http.MethodGet, "v1/configuration", nil, versionQuery{Version: "3"})
	require.NoError(t, err)

	assert.Equal(t, "https://api.sandbox.braintreegateway.com/merchants/abc/client_api/v1/configuration?configVersion=3", req.URL.String())
	assert.Equal(t, "Bearer tok", req.Header.Get("authorization"))
	assert.Equal(t, "req-1", req.Header.Get(requestutils.RequestIDHeaderKey))
	assert.Empty(t, req.Header.Get("content-type"))
}

func TestRedactSensitiveHeaders(t *testing.T) {
	in := []byte("GET /v1/configuration?authorizationFingerprint=secret&configVersion=3 HTTP/1.1\r\n" +
		"Authorization: Bearer abc\n" +
		`{"encryptedPaymentData":"xyz","encryptedKey":"k"}`)
	out := string(RedactSensitiveHeaders(in))

	assert.NotContains(t, out, "secret")
	assert.NotContains(t, out, "abc")
	assert.NotContains(t, out, "xyz")
	assert.Contains(t, out, `"encryptedKey":"<redacted>"`)
}
