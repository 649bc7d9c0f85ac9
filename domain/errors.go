package domain

import (
	"errors"
	"fmt"
)

// ValidationError reports malformed or missing input. Terminal; mapped to 400.
type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	switch {
	case e.Msg != "" && e.Field != "":
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Field != "":
		return fmt.Sprintf("invalid %s", e.Field)
	default:
		return "validation error"
	}
}

func (e ValidationError) Unwrap() error { return e.Err }

// GatewayError reports a failed payment-gateway call. The booking created in
// the same unit of work is rolled back before this surfaces. Mapped to 502.
type GatewayError struct {
	Op  string
	Err error
}

func (e GatewayError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("payment gateway %s failed", e.Op)
	}
	return "payment gateway error"
}

func (e GatewayError) Unwrap() error { return e.Err }

// SignatureError reports a payment-callback signature mismatch. No state is
// mutated when this is returned. Mapped to 400 and logged as a security event.
type SignatureError struct {
	OrderID string
}

func (e SignatureError) Error() string {
	if e.OrderID != "" {
		return fmt.Sprintf("invalid payment signature for order %s", e.OrderID)
	}
	return "invalid payment signature"
}

// NotFoundError covers an unknown booking, an already-confirmed booking and a
// mismatched order id alike; callers cannot distinguish them. Mapped to 404.
type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

// IllegalTransitionError reports a disallowed booking-status change, most
// importantly any attempt to reach "confirmed" outside the verified-payment
// path. Mapped to 400.
type IllegalTransitionError struct {
	From string
	To   string
}

func (e IllegalTransitionError) Error() string {
	if e.From != "" && e.To != "" {
		return fmt.Sprintf("illegal booking status transition %s -> %s", e.From, e.To)
	}
	return "illegal booking status transition"
}

// ForbiddenError reports an operation no caller may ever perform, such as a
// direct payment-status update. Mapped to 403.
type ForbiddenError struct {
	Msg string
}

func (e ForbiddenError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "forbidden"
}

// StoreError wraps a persistence failure. Mapped to 500.
type StoreError struct {
	Op  string
	Err error
}

func (e StoreError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("store %s failed", e.Op)
	}
	return "store error"
}

func (e StoreError) Unwrap() error { return e.Err }

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsGateway(err error) bool {
	var target GatewayError
	return errors.As(err, &target)
}

func IsSignature(err error) bool {
	var target SignatureError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsIllegalTransition(err error) bool {
	var target IllegalTransitionError
	return errors.As(err, &target)
}

func IsForbidden(err error) bool {
	var target ForbiddenError
	return errors.As(err, &target)
}

func IsStore(err error) bool {
	var target StoreError
	return errors.As(err, &target)
}
