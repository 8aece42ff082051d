package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
)

func signBody(t *testing.T, secret, id, timestamp string, body []byte) string {
	t.Helper()
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%s.%s.%s", id, timestamp, body)
	return "v1," + hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyWebhookSignature(t *testing.T) {
	t.Setenv("CLERK_WEBHOOK_SECRET", "whsec_test")

	body := []byte(`{"type":"user.created","data":{"id":"user_abc"}}`)

	req := httptest.NewRequest("POST", "/webhooks/clerk", strings.NewReader(string(body)))
	req.Header.Set("svix-id", "msg_1")
	req.Header.Set("svix-timestamp", "1700000000")
	req.Header.Set("svix-signature", signBody(t, "whsec_test", "msg_1", "1700000000", body))

	if !verifyWebhookSignature(req, body) {
		t.Error("valid signature rejected")
	}
}

func TestVerifyWebhookSignatureRejectsTampering(t *testing.T) {
	t.Setenv("CLERK_WEBHOOK_SECRET", "whsec_test")

	body := []byte(`{"type":"user.created"}`)

	req := httptest.NewRequest("POST", "/webhooks/clerk", strings.NewReader(string(body)))
	req.Header.Set("svix-id", "msg_1")
	req.Header.Set("svix-timestamp", "1700000000")
	req.Header.Set("svix-signature", signBody(t, "whsec_test", "msg_1", "1700000000", []byte("other body")))

	if verifyWebhookSignature(req, body) {
		t.Error("tampered body accepted")
	}
}

func TestVerifyWebhookSignatureMissingHeaders(t *testing.T) {
	t.Setenv("CLERK_WEBHOOK_SECRET", "whsec_test")

	body := []byte(`{}`)
	req := httptest.NewRequest("POST", "/webhooks/clerk", strings.NewReader(string(body)))

	if verifyWebhookSignature(req, body) {
		t.Error("request without svix headers accepted")
	}
}
