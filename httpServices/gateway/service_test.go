package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestCreateOrderSuccess(t *testing.T) {
	var gotReq CreateOrderRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "key_id" || pass != "key_secret" {
			t.Errorf("missing or wrong basic auth: %q / %q", user, pass)
		}
		if r.URL.Path != "/v1/orders" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("failed to decode order request: %v", err)
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateOrderResponse{
			ID:       "order_test_1",
			Amount:   gotReq.Amount,
			Currency: gotReq.Currency,
			Receipt:  gotReq.Receipt,
			Status:   "created",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "key_id", "key_secret", 5*time.Second)
	orderID, err := client.CreateOrder(context.Background(), 50000, "INR", "rcpt_abc")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if orderID != "order_test_1" {
		t.Fatalf("unexpected order id %q", orderID)
	}
	if gotReq.Amount != 50000 || gotReq.Currency != "INR" || gotReq.Receipt != "rcpt_abc" {
		t.Fatalf("order request not forwarded correctly: %+v", gotReq)
	}
}

func TestCreateOrderNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(server.URL, "bad", "creds", 5*time.Second)
	if _, err := client.CreateOrder(context.Background(), 100, "INR", "rcpt_x"); err == nil {
		t.Fatalf("expected error for non-OK gateway status")
	}
}

func TestCreateOrderEmptyOrderID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(CreateOrderResponse{Status: "created"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "key_id", "key_secret", 5*time.Second)
	if _, err := client.CreateOrder(context.Background(), 100, "INR", "rcpt_x"); err == nil {
		t.Fatalf("expected error for empty order id")
	}
}

func TestCreateOrderContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	client := NewClient(server.URL, "key_id", "key_secret", 5*time.Second)
	if _, err := client.CreateOrder(ctx, 100, "INR", "rcpt_x"); err == nil {
		t.Fatalf("expected error when context expires")
	}
}
