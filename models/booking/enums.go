package booking

// BookingStatus is the booking lifecycle state. Only the payment verifier's
// success path may set BookingStatusConfirmed.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

func (bs BookingStatus) String() string {
	return string(bs)
}

func (bs BookingStatus) IsValid() bool {
	switch bs {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal returns true if no transition exists out of the status.
func (bs BookingStatus) IsTerminal() bool {
	return bs == BookingStatusConfirmed || bs == BookingStatusCancelled
}

// PaymentStatus flips from unpaid to paid exactly once, only through a
// verified payment callback.
type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
)

func (ps PaymentStatus) String() string {
	return string(ps)
}

func (ps PaymentStatus) IsValid() bool {
	return ps == PaymentStatusUnpaid || ps == PaymentStatusPaid
}

// TripType is the purchased product kind.
type TripType string

const (
	TripTypeNormal  TripType = "normal"
	TripTypeWeekend TripType = "weekend"
)

func (tt TripType) String() string {
	return string(tt)
}

func (tt TripType) IsValid() bool {
	return tt == TripTypeNormal || tt == TripTypeWeekend
}

// GetAllBookingStatuses returns all valid booking statuses.
func GetAllBookingStatuses() []BookingStatus {
	return []BookingStatus{
		BookingStatusPending,
		BookingStatusConfirmed,
		BookingStatusCancelled,
	}
}
