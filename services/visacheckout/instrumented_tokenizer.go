package visacheckout

// DO NOT EDIT!
// This code is generated with http://github.com/hexdigest/gowrap tool
// using ../../.prom-gowrap.tmpl template

//go:generate gowrap gen -p github.com/brave-intl/visacheckout/services/visacheckout -i Tokenizer -t ../../.prom-gowrap.tmpl -o instrumented_tokenizer.go

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// TokenizerWithPrometheus implements Tokenizer interface with all methods wrapped
// with Prometheus metrics
type TokenizerWithPrometheus struct {
	base         Tokenizer
	instanceName string
}

var tokenizerDurationSummaryVec = promauto.NewSummaryVec(
	prometheus.SummaryOpts{
		Name:       "visacheckout_tokenizer_duration_seconds",
		Help:       "tokenizer runtime duration and result",
		MaxAge:     time.Minute,
		Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
	},
	[]string{"instance_name", "method", "result"})

// NewTokenizerWithPrometheus returns an instance of the Tokenizer decorated with prometheus summary metric
func NewTokenizerWithPrometheus(base Tokenizer, instanceName string) TokenizerWithPrometheus {
	return TokenizerWithPrometheus{
		base:         base,
		instanceName: instanceName,
	}
}

// Tokenize implements Tokenizer
func (_d TokenizerWithPrometheus) Tokenize(ctx context.Context, req *TokenizeRequest) (np1 *Nonce, err error) {
	_since := time.Now()
	defer func() {
		result := "ok"
		if err != nil {
			result = "error"
		}

		tokenizerDurationSummaryVec.WithLabelValues(_d.instanceName, "Tokenize", result).Observe(time.Since(_since).Seconds())
	}()
	return _d.base.Tokenize(ctx, req)
}
