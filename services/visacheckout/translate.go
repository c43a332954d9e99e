package visacheckout

const (
	metaSource      = "visa-checkout"
	metaIntegration = "custom"
	metaPlatform    = "web"
)

// TokenizeRequest is the canonical gateway body for a Visa Checkout card.
type TokenizeRequest struct {
	VisaCheckoutCard VisaCheckoutCard `json:"visaCheckoutCard"`
	Meta             Meta             `json:"_meta"`
}

type VisaCheckoutCard struct {
	CallID               string `json:"callId"`
	EncryptedKey         string `json:"encryptedKey"`
	EncryptedPaymentData string `json:"encryptedPaymentData"`
}

type Meta struct {
	Source      string `json:"source"`
	Integration string `json:"integration"`
	SessionID   string `json:"sessionId"`
	Platform    string `json:"platform"`
}

func newMeta(sessionID string) Meta {
	return Meta{
		Source:      metaSource,
		Integration: metaIntegration,
		SessionID:   sessionID,
		Platform:    metaPlatform,
	}
}

// NewTokenizeRequest maps a payment summary into the tokenization body.
// Currency and amount stay on the summary, the gateway derives them from the
// encrypted payment data.
func NewTokenizeRequest(summary *PaymentSummary, meta Meta) *TokenizeRequest {
	return &TokenizeRequest{
		VisaCheckoutCard: VisaCheckoutCard{
			CallID:               summary.CallID,
			EncryptedKey:         summary.EncryptedKey,
			EncryptedPaymentData: summary.EncryptedPaymentData,
		},
		Meta: meta,
	}
}
