package types

import "fmt"

// VerifyPaymentRequest is the payment-gateway callback payload, relayed by
// the client redirect. BookingID is optional; when present it narrows the
// conditional confirmation update.
type VerifyPaymentRequest struct {
	OrderID   string `json:"order_id" validate:"required"`
	PaymentID string `json:"payment_id" validate:"required"`
	Signature string `json:"signature" validate:"required"`
	BookingID uint   `json:"booking_id,omitempty"`
}

func (r VerifyPaymentRequest) Validate() error {
	if r.OrderID == "" {
		return fmt.Errorf("order_id is required")
	}
	if r.PaymentID == "" {
		return fmt.Errorf("payment_id is required")
	}
	if r.Signature == "" {
		return fmt.Errorf("signature is required")
	}
	return nil
}
