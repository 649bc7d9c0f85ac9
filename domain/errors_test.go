package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestPredicatesMatchTheirOwnKind(t *testing.T) {
	if !IsValidation(ValidationError{Field: "email", Msg: "email is required"}) {
		t.Fatalf("IsValidation should match ValidationError")
	}
	if !IsGateway(GatewayError{Op: "create order", Err: errors.New("timeout")}) {
		t.Fatalf("IsGateway should match GatewayError")
	}
	if !IsSignature(SignatureError{OrderID: "order_1"}) {
		t.Fatalf("IsSignature should match SignatureError")
	}
	if !IsNotFound(NotFoundError{Resource: "booking"}) {
		t.Fatalf("IsNotFound should match NotFoundError")
	}
	if !IsIllegalTransition(IllegalTransitionError{From: "pending", To: "confirmed"}) {
		t.Fatalf("IsIllegalTransition should match IllegalTransitionError")
	}
	if !IsForbidden(ForbiddenError{}) {
		t.Fatalf("IsForbidden should match ForbiddenError")
	}
	if !IsStore(StoreError{Op: "insert booking"}) {
		t.Fatalf("IsStore should match StoreError")
	}
}

func TestPredicatesSeeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("create booking: %w", GatewayError{Op: "create order"})
	if !IsGateway(wrapped) {
		t.Fatalf("IsGateway should match a wrapped GatewayError")
	}
	if IsValidation(wrapped) {
		t.Fatalf("IsValidation should not match a GatewayError")
	}
}

func TestPredicatesRejectOtherKinds(t *testing.T) {
	err := NotFoundError{Resource: "booking"}
	if IsValidation(err) || IsGateway(err) || IsSignature(err) || IsIllegalTransition(err) || IsForbidden(err) {
		t.Fatalf("NotFoundError should only match IsNotFound")
	}
	if IsNotFound(errors.New("plain error")) {
		t.Fatalf("plain errors should match nothing")
	}
}

func TestErrorMessages(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{ValidationError{Field: "email", Msg: "email is required"}, "email: email is required"},
		{ValidationError{Msg: "missing required fields"}, "missing required fields"},
		{SignatureError{OrderID: "order_1"}, "invalid payment signature for order order_1"},
		{NotFoundError{Resource: "booking"}, "booking not found"},
		{IllegalTransitionError{From: "confirmed", To: "cancelled"}, "illegal booking status transition confirmed -> cancelled"},
		{GatewayError{Op: "create order"}, "payment gateway create order failed"},
	}

	for _, c := range cases {
		if got := c.err.Error(); got != c.want {
			t.Fatalf("got %q, want %q", got, c.want)
		}
	}
}
