package booking

import (
	"fmt"

	bookingModel "travel-booking/models/booking"
)

// BookingCreateRequest represents the request payload for creating a booking.
// Customer fields are opaque strings checked for presence only; travelers_data
// may arrive structured or as a caller-serialized string on either the JSON or
// the multipart path.
type BookingCreateRequest struct {
	TripID         uint                      `json:"trip_id" validate:"required"`
	TripType       string                    `json:"trip_type" validate:"required,oneof=normal weekend"`
	FullName       string                    `json:"full_name" validate:"required"`
	Email          string                    `json:"email" validate:"required"`
	Phone          string                    `json:"phone" validate:"required"`
	TravelDate     string                    `json:"travel_date" validate:"required"`
	NumberOfPeople int                       `json:"number_of_people" validate:"required,gt=0"`
	PricePerPerson float64                   `json:"price_per_person" validate:"omitempty,gt=0"`
	TotalAmount    float64                   `json:"total_amount" validate:"required,gt=0"`
	PaymentMethod  string                    `json:"payment_method"`
	TravelersData  bookingModel.TravelerList `json:"travelers_data"`
	SpecialRequest string                    `json:"special_request"`
}

// Validate covers the rules the validate tags cannot express.
func (b BookingCreateRequest) Validate() error {
	if b.TripID == 0 {
		return fmt.Errorf("trip_id is required")
	}
	if !bookingModel.TripType(b.TripType).IsValid() {
		return fmt.Errorf("trip_type must be either 'normal' or 'weekend'")
	}
	if b.FullName == "" {
		return fmt.Errorf("full_name is required")
	}
	if b.Email == "" {
		return fmt.Errorf("email is required")
	}
	if b.Phone == "" {
		return fmt.Errorf("phone is required")
	}
	if b.TravelDate == "" {
		return fmt.Errorf("travel_date is required")
	}
	if b.NumberOfPeople <= 0 {
		return fmt.Errorf("number_of_people must be a positive integer")
	}
	if b.TotalAmount <= 0 {
		return fmt.Errorf("total_amount is required")
	}
	return nil
}

// TravelerUpload links an uploaded ID-proof document to a traveler by
// positional slot index (derived from the id_proof_image_<n> field name).
type TravelerUpload struct {
	SlotIndex int
	Path      string
}

// BookingStatusUpdateRequest represents the payload for a status change.
type BookingStatusUpdateRequest struct {
	BookingStatus string `json:"booking_status" validate:"required"`
}

func (b BookingStatusUpdateRequest) Validate() error {
	if b.BookingStatus == "" {
		return fmt.Errorf("booking_status is required")
	}
	return nil
}

// BookingListQuery carries the optional list filters.
type BookingListQuery struct {
	Email         string `query:"email"`
	BookingStatus string `query:"booking_status"`
	PaymentStatus string `query:"payment_status"`
	TripType      string `query:"trip_type"`
	Limit         int    `query:"limit"`
	Offset        int    `query:"offset"`
}

// BookingCreateResponse is what a successful creation returns to the client.
// The gateway secret is never part of any response.
type BookingCreateResponse struct {
	BookingID      uint   `json:"booking_id"`
	GatewayOrderID string `json:"gateway_order_id"`
	DepositAmount  int64  `json:"deposit_amount"`
	Currency       string `json:"currency"`
}
