package midtrans

import "encoding/json"

// Outcome is the normalized tri-state result of a provider notification.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomePending Outcome = "pending"
	OutcomeFailed  Outcome = "failed"
)

// CallbackPayload is the HTTP notification body Midtrans posts after a
// transaction changes state.
type CallbackPayload struct {
	OrderID           string `json:"order_id"`
	TransactionID     string `json:"transaction_id"`
	TransactionStatus string `json:"transaction_status"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	PaymentType       string `json:"payment_type"`
	FraudStatus       string `json:"fraud_status"`
	TransactionTime   string `json:"transaction_time"`
}

// ParseCallback decodes a raw notification body.
func ParseCallback(raw []byte) (*CallbackPayload, error) {
	var p CallbackPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// NormalizeTransactionStatus maps the provider status vocabulary to the
// internal outcome. Unknown statuses fall back to pending so a vocabulary
// change on the provider side can only delay, never grant, access.
func NormalizeTransactionStatus(transactionStatus string) Outcome {
	switch transactionStatus {
	case "capture", "settlement":
		return OutcomeSuccess
	case "pending":
		return OutcomePending
	case "deny", "cancel", "expire":
		return OutcomeFailed
	default:
		return OutcomePending
	}
}
