package kafka

import (
	"testing"

	should "github.com/stretchr/testify/assert"
	must "github.com/stretchr/testify/require"
)

func TestGenerateCodecs(t *testing.T) {
	codecs, err := GenerateCodecs(map[string]string{
		"event": `{"type":"record","name":"Event","fields":[{"name":"name","type":"string"}]}`,
	})
	must.NoError(t, err)
	must.Contains(t, codecs, "event")

	b, err := codecs["event"].BinaryFromNative(nil, map[string]interface{}{"name": "visacheckout.activityresult.ok"})
	must.NoError(t, err)

	native, _, err := codecs["event"].NativeFromBinary(b)
	must.NoError(t, err)
	should.Equal(t, "visacheckout.activityresult.ok", native.(map[string]interface{})["name"])

	_, err = GenerateCodecs(map[string]string{"broken": `{"type":"record"}`})
	should.Error(t, err)
}

func TestTLSDialer_MissingCertificate(t *testing.T) {
	t.Setenv("KAFKA_SSL_CERTIFICATE", "")
	t.Setenv("KAFKA_SSL_CERTIFICATE_LOCATION", "")
	t.Setenv("KAFKA_SSL_CA_LOCATION", "")

	should.False(t, TLSEnabled())

	_, _, err := TLSDialer()
	should.EqualError(t, err, "KAFKA_SSL_CERTIFICATE_LOCATION must be passed")
}
