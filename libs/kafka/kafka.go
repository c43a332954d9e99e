package kafka

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"time"

	errorutils "github.com/brave-intl/visacheckout/libs/errors"
	"github.com/brave-intl/visacheckout/libs/logging"
	"github.com/linkedin/goavro"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/segmentio/kafka-go"
)

var (
	// ErrCertificateExpired - the kafka client certificate has expired
	ErrCertificateExpired = errors.New("kafka client certificate has expired")

	kafkaCertNotBefore = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "kafka_cert_not_before",
			Help: "Date when the kafka certificate becomes valid.",
		},
	)

	kafkaCertNotAfter = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "kafka_cert_not_after",
			Help: "Date when the kafka certificate expires.",
		},
	)
)

func init() {
	prometheus.MustRegister(kafkaCertNotBefore, kafkaCertNotAfter)
}

// TLSEnabled reports whether a client certificate was configured through the environment
func TLSEnabled() bool {
	return os.Getenv("KAFKA_SSL_CERTIFICATE") != "" || os.Getenv("KAFKA_SSL_CERTIFICATE_LOCATION") != ""
}

// TLSDialer creates a Kafka dialer over TLS. The certificate comes from KAFKA_SSL_CERTIFICATE
// or KAFKA_SSL_CERTIFICATE_LOCATION, the key from KAFKA_SSL_KEY or KAFKA_SSL_KEY_LOCATION
func TLSDialer() (*kafka.Dialer, *x509.Certificate, error) {
	caPEM, err := readFileFromEnvLoc("KAFKA_SSL_CA_LOCATION", false)
	if err != nil {
		return nil, nil, err
	}

	certPEM := []byte(os.Getenv("KAFKA_SSL_CERTIFICATE"))
	if len(certPEM) == 0 {
		certPEM, err = readFileFromEnvLoc("KAFKA_SSL_CERTIFICATE_LOCATION", true)
		if err != nil {
			return nil, nil, err
		}
	}

	keyPEM := []byte(os.Getenv("KAFKA_SSL_KEY"))

	// KAFKA_SSL_CERTIFICATE may carry both certificate and key as json
	if len(certPEM) > 0 && certPEM[0] == '{' {
		var bundle struct {
			Certificate string `json:"certificate"`
			Key         string `json:"key"`
		}
		if err := json.Unmarshal(certPEM, &bundle); err != nil {
			return nil, nil, err
		}
		certPEM = []byte(bundle.Certificate)
		keyPEM = []byte(bundle.Key)
	}

	if len(keyPEM) == 0 {
		keyPEM, err = readFileFromEnvLoc("KAFKA_SSL_KEY_LOCATION", true)
		if err != nil {
			return nil, nil, err
		}
	}

	block, rest := pem.Decode(keyPEM)
	if block == nil || len(rest) > 0 {
		return nil, nil, errors.New("invalid data in KAFKA_SSL_KEY")
	}

	certificate, err := tls.X509KeyPair(certPEM, pem.EncodeToMemory(block))
	if err != nil {
		return nil, nil, errorutils.Wrap(err, "could not parse x509 keypair")
	}

	x509Cert, err := x509.ParseCertificate(certificate.Certificate[0])
	if err != nil {
		return nil, nil, errorutils.Wrap(err, "could not parse certificate")
	}

	if time.Now().After(x509Cert.NotAfter) {
		return nil, nil, ErrCertificateExpired
	}

	config := &tls.Config{
		Certificates: []tls.Certificate{certificate},
		MinVersion:   tls.VersionTLS12,
	}

	if len(caPEM) > 0 {
		pool := x509.NewCertPool()
		if ok := pool.AppendCertsFromPEM(caPEM); !ok {
			return nil, nil, errors.New("could not add custom CA from KAFKA_SSL_CA_LOCATION")
		}
		config.RootCAs = pool
	}

	dialer := &kafka.Dialer{
		Timeout:   10 * time.Second,
		DualStack: true,
		TLS:       config,
	}

	return dialer, x509Cert, nil
}

func readFileFromEnvLoc(env string, required bool) ([]byte, error) {
	loc := os.Getenv(env)
	if len(loc) == 0 {
		if !required {
			return []byte{}, nil
		}
		return []byte{}, errors.New(env + " must be passed")
	}

	return os.ReadFile(loc)
}

// NewWriter creates an asynchronous writer for topic. A TLS dialer is used when a
// client certificate is configured.
func NewWriter(ctx context.Context, brokers []string, topic string) (*kafka.Writer, error) {
	logger := logging.Logger(ctx, "kafka.NewWriter")

	cfg := kafka.WriterConfig{
		Brokers:      brokers,
		Balancer:     &kafka.LeastBytes{},
		Topic:        topic,
		BatchTimeout: time.Second,
		Async:        true,
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
			logger.Warn().Msgf(msg, args...)
		}),
	}

	if TLSEnabled() {
		dialer, cert, err := TLSDialer()
		if err != nil {
			return nil, fmt.Errorf("failed to create kafka dialer: %w", err)
		}

		kafkaCertNotBefore.Set(float64(cert.NotBefore.Unix()))
		kafkaCertNotAfter.Set(float64(cert.NotAfter.Unix()))

		cfg.Dialer = dialer
	}

	return kafka.NewWriter(cfg), nil
}

// GenerateCodecs - create a map of codec name to the avro codec
func GenerateCodecs(codecs map[string]string) (map[string]*goavro.Codec, error) {
	res := make(map[string]*goavro.Codec, len(codecs))
	for k, v := range codecs {
		codec, err := goavro.NewCodec(v)
		if err != nil {
			return nil, fmt.Errorf("failed to generate codec %s: %w", k, err)
		}
		res[k] = codec
	}
	return res, nil
}
