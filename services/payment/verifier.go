package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"travel-booking/domain"
	"travel-booking/logger"
	bookingModel "travel-booking/models/booking"
	"travel-booking/types"

	"gorm.io/gorm"
)

// Verifier is the only path by which a booking may become paid/confirmed.
// It checks the gateway callback signature and then applies the
// confirmation as one conditional update keyed on the stored order id.
type Verifier struct {
	DB     *gorm.DB
	secret string
}

func NewVerifier(db *gorm.DB, secret string) *Verifier {
	return &Verifier{
		DB:     db,
		secret: secret,
	}
}

// Signature computes the expected callback signature:
// hex(HMAC-SHA256(secret, orderID|paymentID)).
func (v *Verifier) Signature(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(v.secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// Now is split out so tests can pin the payment timestamp.
var Now = time.Now

// VerifyAndApply validates the callback signature and, on success, flips the
// matching booking to paid/confirmed with a single conditional update. The
// predicate — stored transaction_id equals the callback's order id — is the
// idempotency and anti-replay guard: a duplicate callback finds the column
// already overwritten with the payment id and matches no row. Zero rows is
// final; retrying cannot change a condition that is data, not transience.
func (v *Verifier) VerifyAndApply(ctx context.Context, req types.VerifyPaymentRequest) (*bookingModel.Booking, error) {
	if err := req.Validate(); err != nil {
		return nil, domain.ValidationError{Msg: err.Error()}
	}

	expected := v.Signature(req.OrderID, req.PaymentID)
	if !hmac.Equal([]byte(expected), []byte(req.Signature)) {
		logger.Security(fmt.Sprintf("Payment signature mismatch for order %s, payment %s", req.OrderID, req.PaymentID))
		return nil, domain.SignatureError{OrderID: req.OrderID}
	}

	now := Now()
	q := v.DB.WithContext(ctx).Model(&bookingModel.Booking{}).
		Where("transaction_id = ? AND deleted = ?", req.OrderID, false)
	if req.BookingID != 0 {
		q = q.Where("id = ?", req.BookingID)
	}

	res := q.Updates(map[string]interface{}{
		"payment_status": bookingModel.PaymentStatusPaid,
		"booking_status": bookingModel.BookingStatusConfirmed,
		"transaction_id": req.PaymentID,
		"payment_date":   now,
	})
	if res.Error != nil {
		return nil, domain.StoreError{Op: "confirm booking", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		// Unknown booking, already-confirmed booking, or mismatched order
		// id; indistinguishable by design so callers cannot probe state.
		logger.Warning(fmt.Sprintf("Payment callback matched no booking (order %s, payment %s)", req.OrderID, req.PaymentID))
		return nil, domain.NotFoundError{Resource: "booking"}
	}

	var booking bookingModel.Booking
	err := v.DB.WithContext(ctx).
		Where("transaction_id = ? AND deleted = ?", req.PaymentID, false).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundError{Resource: "booking"}
		}
		return nil, domain.StoreError{Op: "load confirmed booking", Err: err}
	}

	logger.Success(fmt.Sprintf("Booking %d confirmed: payment %s for order %s", booking.ID, req.PaymentID, req.OrderID))
	return &booking, nil
}
