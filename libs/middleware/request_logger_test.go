package middleware

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/brave-intl/visacheckout/libs/requestutils"
	"github.com/go-chi/chi"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestRequestLogger_LogsPanic(t *testing.T) {
	buffer := &bytes.Buffer{}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: buffer}).
		With().
		Timestamp().
		Logger()

	ctx := logger.WithContext(context.Background())

	panicHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("panicky handler")
	})

	rw := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/v1/visa-checkout/sessions", nil).
		WithContext(ctx)

	router := chi.NewRouter()
	router.Handle("/v1/visa-checkout/sessions", RequestLogger(nil)(panicHandler))
	router.ServeHTTP(rw, r)

	actual := buffer.String()

	assert.Equal(t, http.StatusInternalServerError, rw.Code)
	assert.Contains(t, actual, "panic recovered")
	assert.Regexp(t, regexp.MustCompile("panic=.+panicky handler"), actual)
	assert.Regexp(t, regexp.MustCompile("stacktrace=.+"), actual)
}

func TestRequestIDTransfer(t *testing.T) {
	var seen string
	h := RequestIDTransfer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestutils.GetRequestID(r.Context())
	}))

	t.Run("keeps_incoming", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("x-request-id", "abc")
		rw := httptest.NewRecorder()
		h.ServeHTTP(rw, r)

		assert.Equal(t, "abc", seen)
		assert.Equal(t, "abc", rw.Header().Get("x-request-id"))
	})

	t.Run("mints_new", func(t *testing.T) {
		rw := httptest.NewRecorder()
		h.ServeHTTP(rw, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Len(t, seen, 16)
		assert.Equal(t, seen, rw.Header().Get("x-request-id"))
	})
}
