package midtrans

import (
	"context"
	"encoding/base64"
	"testing"
)

func TestVerifySignature_RoundTrip(t *testing.T) {
	serverKey := "SB-Mid-server-key"
	sig := SignaturePayload("ORDER-7-abc", "200", "100000.00", serverKey)

	if !VerifySignature("ORDER-7-abc", "200", "100000.00", serverKey, sig) {
		t.Fatalf("expected signature to verify")
	}
	// any tampered field must fail
	if VerifySignature("ORDER-7-abd", "200", "100000.00", serverKey, sig) {
		t.Fatalf("expected tampered order id to fail")
	}
	if VerifySignature("ORDER-7-abc", "201", "100000.00", serverKey, sig) {
		t.Fatalf("expected tampered status code to fail")
	}
	if VerifySignature("ORDER-7-abc", "200", "100001.00", serverKey, sig) {
		t.Fatalf("expected tampered amount to fail")
	}
	if VerifySignature("ORDER-7-abc", "200", "100000.00", "other-key", sig) {
		t.Fatalf("expected wrong key to fail")
	}
	if VerifySignature("ORDER-7-abc", "200", "100000.00", serverKey, sig[:len(sig)-1]+"0") {
		t.Fatalf("expected flipped signature digit to fail")
	}
}

func TestVerifySignature_EmptyInputs(t *testing.T) {
	if VerifySignature("o", "200", "1.00", "key", "") {
		t.Fatalf("expected empty signature to fail")
	}
	if VerifySignature("o", "200", "1.00", "", "deadbeef") {
		t.Fatalf("expected empty server key to fail")
	}
}

func TestNormalizeTransactionStatus(t *testing.T) {
	tests := []struct {
		in   string
		want Outcome
	}{
		{in: "capture", want: OutcomeSuccess},
		{in: "settlement", want: OutcomeSuccess},
		{in: "pending", want: OutcomePending},
		{in: "deny", want: OutcomeFailed},
		{in: "cancel", want: OutcomeFailed},
		{in: "expire", want: OutcomeFailed},
		{in: "refund", want: OutcomePending},
		{in: "", want: OutcomePending},
		{in: "SETTLEMENT", want: OutcomePending}, // provider sends lowercase only
	}

	for _, tt := range tests {
		if got := NormalizeTransactionStatus(tt.in); got != tt.want {
			t.Fatalf("NormalizeTransactionStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseCallback(t *testing.T) {
	raw := []byte(`{
		"order_id": "ORDER-7-abc",
		"transaction_id": "tx-123",
		"transaction_status": "settlement",
		"status_code": "200",
		"gross_amount": "100000.00",
		"signature_key": "ffff",
		"payment_type": "bank_transfer",
		"fraud_status": "accept"
	}`)

	p, err := ParseCallback(raw)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if p.OrderID != "ORDER-7-abc" || p.TransactionID != "tx-123" {
		t.Fatalf("unexpected ids: order=%q tx=%q", p.OrderID, p.TransactionID)
	}
	if NormalizeTransactionStatus(p.TransactionStatus) != OutcomeSuccess {
		t.Fatalf("expected settlement to normalize to success")
	}

	if _, err := ParseCallback([]byte("{not json")); err == nil {
		t.Fatalf("expected malformed body to fail")
	}
}

func TestSnapToken_DemoMode(t *testing.T) {
	c := NewClient("", false)
	req := NewSnapTokenRequest("ORDER-1-x", 250000, "Budi", "budi@example.com", "Premium 30 hari")

	token, err := c.SnapToken(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected demo token")
	}
	if _, err := base64.StdEncoding.DecodeString(token); err != nil {
		t.Fatalf("expected base64 demo token, got %q", token)
	}
}
