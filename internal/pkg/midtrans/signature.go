package midtrans

import (
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

// SignaturePayload computes the notification signature Midtrans documents:
// hex(sha512(order_id + status_code + gross_amount + server_key)).
func SignaturePayload(orderID, statusCode, grossAmount, serverKey string) string {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(sum[:])
}

// VerifySignature recomputes the notification signature and compares it to
// the supplied one in constant time.
func VerifySignature(orderID, statusCode, grossAmount, serverKey, signature string) bool {
	sig := strings.ToLower(strings.TrimSpace(signature))
	if sig == "" || serverKey == "" {
		return false
	}
	expected := SignaturePayload(orderID, statusCode, grossAmount, serverKey)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(sig)) == 1
}
