package booking

import (
	"context"
	"errors"
	"fmt"

	"travel-booking/domain"
	"travel-booking/logger"
	bookingModel "travel-booking/models/booking"
	bookingTypes "travel-booking/types/booking"
	"travel-booking/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderCreator is the capability the lifecycle manager needs from the
// payment gateway: create a charge intent, get back an order id.
type OrderCreator interface {
	CreateOrder(ctx context.Context, amount int64, currency, receipt string) (string, error)
}

// DefaultListLimit bounds unfiltered listings the same way the public API
// documents it.
const DefaultListLimit = 50

// Service owns the booking lifecycle: transactional creation together with
// the gateway order, reads, and every status transition that is not the
// verified payment confirmation.
type Service struct {
	DB       *gorm.DB
	Gateway  OrderCreator
	Fraction float64
	Currency string
	validate *validator.Validate
}

func NewService(db *gorm.DB, gw OrderCreator, fraction float64, currency string) *Service {
	if fraction <= 0 || fraction > 1 {
		fraction = 0.05
	}
	if currency == "" {
		currency = "INR"
	}
	return &Service{
		DB:       db,
		Gateway:  gw,
		Fraction: fraction,
		Currency: currency,
		validate: validator.New(),
	}
}

// Create validates the request, merges uploaded ID proofs onto travelers by
// slot index, and then, in one unit of work: inserts the booking row
// (pending/unpaid), creates the gateway order for the deposit, and writes
// the order id back onto the same row. Any failure rolls the whole unit
// back; no booking row exists without an order id.
func (s *Service) Create(ctx context.Context, req bookingTypes.BookingCreateRequest, uploads []bookingTypes.TravelerUpload) (*bookingModel.Booking, *bookingTypes.BookingCreateResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, nil, domain.ValidationError{Msg: "missing required fields", Err: err}
	}
	if err := req.Validate(); err != nil {
		return nil, nil, domain.ValidationError{Msg: err.Error()}
	}

	travelDate, err := utils.ParseTravelDate(req.TravelDate)
	if err != nil {
		return nil, nil, domain.ValidationError{Field: "travel_date", Msg: err.Error()}
	}

	travelers := attachUploads(req.TravelersData, uploads)

	booking := bookingModel.Booking{
		TripID:         req.TripID,
		TripType:       bookingModel.TripType(req.TripType),
		FullName:       req.FullName,
		Email:          req.Email,
		Phone:          req.Phone,
		TravelDate:     travelDate,
		NumberOfPeople: req.NumberOfPeople,
		PricePerPerson: utils.PricePerPerson(req.PricePerPerson, req.TotalAmount, req.NumberOfPeople),
		TotalAmount:    req.TotalAmount,
		PaymentMethod:  utils.StrPtr(req.PaymentMethod),
		TravelersData:  travelers,
		SpecialRequest: utils.StrPtr(req.SpecialRequest),
		BookingStatus:  bookingModel.BookingStatusPending,
		PaymentStatus:  bookingModel.PaymentStatusUnpaid,
	}

	deposit := utils.DepositSubunits(req.TotalAmount, s.Fraction)
	receipt := "rcpt_" + uuid.NewString()
	var orderID string

	// The gateway call happens inside the transaction so its failure rolls
	// the insert back. A crash between order creation and commit leaves an
	// orphaned gateway order; the reconciliation log below is the handle
	// for cleaning those up.
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&booking).Error; err != nil {
			return domain.StoreError{Op: "insert booking", Err: err}
		}

		id, err := s.Gateway.CreateOrder(ctx, deposit, s.Currency, receipt)
		if err != nil {
			return domain.GatewayError{Op: "create order", Err: err}
		}
		orderID = id
		logger.Info(fmt.Sprintf("Gateway order %s (receipt %s) created for booking %d, deposit %d", orderID, receipt, booking.ID, deposit))

		res := tx.Model(&bookingModel.Booking{}).
			Where("id = ?", booking.ID).
			Update("transaction_id", orderID)
		if res.Error != nil {
			return domain.StoreError{Op: "record order id", Err: res.Error}
		}
		return nil
	})
	if err != nil {
		logger.Error(fmt.Sprintf("Booking creation rolled back (receipt %s)", receipt), err)
		return nil, nil, err
	}

	booking.TransactionID = &orderID
	logger.Success(fmt.Sprintf("Booking created successfully with ID: %d, order: %s", booking.ID, orderID))

	return &booking, &bookingTypes.BookingCreateResponse{
		BookingID:      booking.ID,
		GatewayOrderID: orderID,
		DepositAmount:  deposit,
		Currency:       s.Currency,
	}, nil
}

// attachUploads pins each uploaded document to the traveler at the matching
// slot index. Unmatched slots are ignored on purpose: multipart clients may
// send more upload fields than travelers, and extra documents are dropped
// rather than failing the booking.
func attachUploads(travelers bookingModel.TravelerList, uploads []bookingTypes.TravelerUpload) bookingModel.TravelerList {
	for _, up := range uploads {
		if up.SlotIndex < 0 || up.SlotIndex >= len(travelers) {
			logger.Warning(fmt.Sprintf("Ignoring ID proof upload for slot %d: no traveler at that index", up.SlotIndex))
			continue
		}
		travelers[up.SlotIndex].IDProofImage = up.Path
	}
	return travelers
}

// Get returns a booking by id, excluding soft-deleted rows.
func (s *Service) Get(ctx context.Context, id uint) (*bookingModel.Booking, error) {
	var booking bookingModel.Booking
	err := s.DB.WithContext(ctx).
		Where("id = ? AND deleted = ?", id, false).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundError{Resource: "booking"}
		}
		return nil, domain.StoreError{Op: "load booking", Err: err}
	}
	return &booking, nil
}

// List returns non-deleted bookings newest first, filtered by the optional
// email, status and trip-type query parameters.
func (s *Service) List(ctx context.Context, q bookingTypes.BookingListQuery) ([]bookingModel.Booking, error) {
	db := s.DB.WithContext(ctx).Where("deleted = ?", false)

	if q.Email != "" {
		db = db.Where("email = ?", q.Email)
	}
	if q.BookingStatus != "" {
		db = db.Where("booking_status = ?", q.BookingStatus)
	}
	if q.PaymentStatus != "" {
		db = db.Where("payment_status = ?", q.PaymentStatus)
	}
	if q.TripType != "" {
		db = db.Where("trip_type = ?", q.TripType)
	}

	limit := q.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	offset := q.Offset
	if offset < 0 {
		offset = 0
	}

	var bookings []bookingModel.Booking
	err := db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&bookings).Error
	if err != nil {
		return nil, domain.StoreError{Op: "list bookings", Err: err}
	}
	return bookings, nil
}

// ListForCustomer returns all non-deleted bookings for an email, newest first.
func (s *Service) ListForCustomer(ctx context.Context, email string) ([]bookingModel.Booking, error) {
	if email == "" {
		return nil, domain.ValidationError{Field: "email", Msg: "email is required"}
	}

	var bookings []bookingModel.Booking
	err := s.DB.WithContext(ctx).
		Where("email = ? AND deleted = ?", email, false).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, domain.StoreError{Op: "list customer bookings", Err: err}
	}
	return bookings, nil
}

// UpdateStatus applies an administrative status change. The only permitted
// transition is pending -> cancelled; in particular, "confirmed" is
// unreachable through here no matter who asks. Cancellation soft-deletes the
// row and is irreversible.
func (s *Service) UpdateStatus(ctx context.Context, id uint, status string) (*bookingModel.Booking, error) {
	target := bookingModel.BookingStatus(status)
	if !target.IsValid() {
		return nil, domain.ValidationError{Field: "booking_status", Msg: fmt.Sprintf("unknown booking status %q", status)}
	}
	if target != bookingModel.BookingStatusCancelled {
		// Confirmation belongs to the payment verifier alone, and a
		// pending -> pending write is not a transition.
		return nil, domain.IllegalTransitionError{To: target.String()}
	}

	res := s.DB.WithContext(ctx).Model(&bookingModel.Booking{}).
		Where("id = ? AND deleted = ? AND booking_status = ?", id, false, bookingModel.BookingStatusPending).
		Updates(map[string]interface{}{
			"booking_status": bookingModel.BookingStatusCancelled,
			"deleted":        true,
		})
	if res.Error != nil {
		return nil, domain.StoreError{Op: "cancel booking", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return nil, s.explainFailedCancel(ctx, id)
	}

	logger.Info(fmt.Sprintf("Booking %d status updated to %s", id, target))
	return s.loadAny(ctx, id)
}

// Cancel is the DELETE-endpoint path: soft-delete any booking that has not
// been cancelled yet, paid or not. Cancelling an already-cancelled booking
// reports not-found, which makes the endpoint idempotent for clients.
func (s *Service) Cancel(ctx context.Context, id uint) (*bookingModel.Booking, error) {
	res := s.DB.WithContext(ctx).Model(&bookingModel.Booking{}).
		Where("id = ? AND deleted = ?", id, false).
		Updates(map[string]interface{}{
			"booking_status": bookingModel.BookingStatusCancelled,
			"deleted":        true,
		})
	if res.Error != nil {
		return nil, domain.StoreError{Op: "cancel booking", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return nil, domain.NotFoundError{Resource: "booking"}
	}

	logger.Info(fmt.Sprintf("Booking %d cancelled", id))
	return s.loadAny(ctx, id)
}

// UpdatePaymentStatus is permanently rejected. The route exists so forged
// status changes get an explicit 403 instead of silently succeeding; the
// only path to paid/confirmed is the verified payment callback.
func (s *Service) UpdatePaymentStatus(ctx context.Context, id uint) error {
	logger.Security(fmt.Sprintf("Rejected direct payment status update for booking %d", id))
	return domain.ForbiddenError{Msg: "payment status can only be set by the verified payment callback"}
}

// explainFailedCancel turns a zero-row conditional cancel into the right
// error: not-found for unknown/deleted rows, illegal transition otherwise.
// The lookup happens after the only mutation, so it cannot race into a
// partial write.
func (s *Service) explainFailedCancel(ctx context.Context, id uint) error {
	var booking bookingModel.Booking
	err := s.DB.WithContext(ctx).Where("id = ? AND deleted = ?", id, false).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NotFoundError{Resource: "booking"}
		}
		return domain.StoreError{Op: "load booking", Err: err}
	}
	return domain.IllegalTransitionError{
		From: booking.BookingStatus.String(),
		To:   bookingModel.BookingStatusCancelled.String(),
	}
}

// loadAny reloads a row regardless of the deleted flag, for returning the
// final state of a booking that was just soft-deleted.
func (s *Service) loadAny(ctx context.Context, id uint) (*bookingModel.Booking, error) {
	var booking bookingModel.Booking
	if err := s.DB.WithContext(ctx).First(&booking, id).Error; err != nil {
		return nil, domain.StoreError{Op: "load booking", Err: err}
	}
	return &booking, nil
}
