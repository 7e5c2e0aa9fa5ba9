package service

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Minimal Paystack REST client: initialize a transaction and verify the
// webhook signature. Amounts are in kobo.

const paystackBaseURL = "https://api.paystack.co"

var (
	paystackSecretKey string
	paystackHTTP      = &http.Client{Timeout: 15 * time.Second}
)

func InitPaystack(secretKey string) {
	paystackSecretKey = secretKey
}

type InitializeTransactionResult struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

type initializeTransactionEnvelope struct {
	Status  bool                        `json:"status"`
	Message string                      `json:"message"`
	Data    InitializeTransactionResult `json:"data"`
}

// InitializeTransaction starts a hosted checkout for the given reference.
func InitializeTransaction(ctx context.Context, email string, amount int64, reference string) (*InitializeTransactionResult, error) {
	if paystackSecretKey == "" {
		return nil, fmt.Errorf("PAYSTACK_SECRET_KEY is not set")
	}

	payload, err := json.Marshal(map[string]any{
		"email":     email,
		"amount":    amount,
		"reference": reference,
	})
	if err != nil {
		return nil, fmt.Errorf("encode initialize payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		paystackBaseURL+"/transaction/initialize", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build initialize request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+paystackSecretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := paystackHTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send initialize request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read initialize response: %w", err)
	}
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("initialize failed status %d: %s", resp.StatusCode, string(body))
	}

	var envelope initializeTransactionEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decode initialize response: %w", err)
	}
	if !envelope.Status {
		return nil, fmt.Errorf("initialize rejected: %s", envelope.Message)
	}
	return &envelope.Data, nil
}

// VerifyWebhookSignature checks the x-paystack-signature header: an
// HMAC-SHA512 of the raw body keyed with the secret.
func VerifyWebhookSignature(body []byte, signature string) bool {
	if paystackSecretKey == "" || signature == "" {
		return false
	}
	mac := hmac.New(sha512.New, []byte(paystackSecretKey))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
