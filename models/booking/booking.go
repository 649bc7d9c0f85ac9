package booking

import (
	"time"
)

// Booking represents a customer's reservation against a trip, carrying
// payment state. TransactionID holds the gateway order id from creation
// until the verified payment callback overwrites it with the payment id;
// it is the idempotency key for confirmation.
type Booking struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	TripID   uint     `gorm:"not null;index" json:"trip_id"`
	TripType TripType `gorm:"type:varchar(20);not null" json:"trip_type"`

	FullName string `gorm:"type:varchar(255);not null" json:"full_name"`
	Email    string `gorm:"type:varchar(255);not null" json:"email"`
	Phone    string `gorm:"type:varchar(20);not null" json:"phone"`

	TravelDate     time.Time `gorm:"type:date;not null" json:"travel_date"`
	NumberOfPeople int       `gorm:"not null" json:"number_of_people"`
	PricePerPerson float64   `gorm:"type:decimal(10,2)" json:"price_per_person"`
	TotalAmount    float64   `gorm:"type:decimal(10,2);not null" json:"total_amount"`

	PaymentMethod  *string      `gorm:"type:varchar(50)" json:"payment_method,omitempty"`
	TravelersData  TravelerList `gorm:"type:jsonb" json:"travelers_data"`
	SpecialRequest *string      `gorm:"type:text" json:"special_request,omitempty"`

	BookingStatus BookingStatus `gorm:"type:varchar(20);not null;default:pending" json:"booking_status"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(20);not null;default:unpaid" json:"payment_status"`

	TransactionID *string    `gorm:"type:varchar(255)" json:"transaction_id,omitempty"`
	PaymentDate   *time.Time `json:"payment_date,omitempty"`

	// Soft delete; a cancelled booking is deleted and excluded from all reads.
	Deleted bool `gorm:"not null;default:false" json:"deleted"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
