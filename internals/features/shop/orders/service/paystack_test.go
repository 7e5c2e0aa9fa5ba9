package service

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sign(secret string, body []byte) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyWebhookSignature(t *testing.T) {
	InitPaystack("sk_test_abc")
	t.Cleanup(func() { InitPaystack("") })

	body := []byte(`{"event":"charge.success","data":{"reference":"ord-1"}}`)

	assert.True(t, VerifyWebhookSignature(body, sign("sk_test_abc", body)))
	assert.False(t, VerifyWebhookSignature(body, sign("sk_test_wrong", body)))
	assert.False(t, VerifyWebhookSignature([]byte(`tampered`), sign("sk_test_abc", body)))
	assert.False(t, VerifyWebhookSignature(body, ""))
}

func TestVerifyWebhookSignatureWithoutSecret(t *testing.T) {
	InitPaystack("")
	body := []byte(`{}`)
	assert.False(t, VerifyWebhookSignature(body, sign("", body)))
}
