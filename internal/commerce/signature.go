package commerce

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// SignBody computes the hex HMAC-SHA256 of body under secret, the scheme the
// provider uses for the x-cc-webhook-signature header.
func SignBody(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature reports whether sig matches the HMAC of the exact raw
// request body. The compare is constant-time.
func VerifySignature(secret string, body []byte, sig string) bool {
	want := SignBody(secret, body)
	return hmac.Equal([]byte(want), []byte(sig))
}
