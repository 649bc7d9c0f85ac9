package payment

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	paymentService "travel-booking/services/payment"

	"github.com/gofiber/fiber/v2"
)

func newTestApp(secret string) *fiber.App {
	app := fiber.New()
	ctrl := NewPaymentController(paymentService.NewVerifier(nil, secret), nil)
	app.Post("/api/payment/verify", ctrl.Verify)
	return app
}

func TestVerifyRejectsMalformedBody(t *testing.T) {
	app := newTestApp("secret")

	req := httptest.NewRequest("POST", "/api/payment/verify", strings.NewReader(`{"order_id":`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestVerifyRejectsMissingFields(t *testing.T) {
	app := newTestApp("secret")

	req := httptest.NewRequest("POST", "/api/payment/verify", strings.NewReader(`{"order_id":"order_1"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestVerifyRejectsBadSignature(t *testing.T) {
	app := newTestApp("secret")

	body := `{"order_id":"order_1","payment_id":"pay_1","signature":"deadbeef"}`
	req := httptest.NewRequest("POST", "/api/payment/verify", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for a forged signature, got %d", resp.StatusCode)
	}

	respBody, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(respBody), "invalid payment signature") {
		t.Fatalf("unexpected error body: %s", respBody)
	}
}
