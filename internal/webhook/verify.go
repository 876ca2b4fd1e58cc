package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
)

// VerifySignature checks the webhook's signature against the shared secret
// using the adapter's declared algorithm.
func VerifySignature(hook IncomingWebhook, req RequestDetails, secret []byte) (bool, error) {
	signature, err := hook.Signature(req)
	if err != nil {
		return false, err
	}
	message, err := hook.VerificationMessage(req)
	if err != nil {
		return false, err
	}

	switch alg := hook.SignatureAlgorithm(); alg {
	case HMACSHA256:
		mac := hmac.New(sha256.New, secret)
		mac.Write(message)
		return hmac.Equal(mac.Sum(nil), signature), nil
	default:
		return false, fmt.Errorf("unsupported signature algorithm %q", alg)
	}
}
