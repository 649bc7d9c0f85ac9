package booking

import "testing"

func validRequest() BookingCreateRequest {
	return BookingCreateRequest{
		TripID:         1,
		TripType:       "normal",
		FullName:       "Asha Rao",
		Email:          "asha@example.com",
		Phone:          "+919800000000",
		TravelDate:     "2026-09-15",
		NumberOfPeople: 2,
		TotalAmount:    5000,
	}
}

func TestBookingCreateRequestValid(t *testing.T) {
	if err := validRequest().Validate(); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}
}

func TestBookingCreateRequestRejectsBadTripType(t *testing.T) {
	req := validRequest()
	req.TripType = "luxury"
	if err := req.Validate(); err == nil {
		t.Fatalf("expected error for unknown trip type")
	}
}

func TestBookingCreateRequestRejectsZeroPeople(t *testing.T) {
	req := validRequest()
	req.NumberOfPeople = 0
	if err := req.Validate(); err == nil {
		t.Fatalf("expected error for zero people")
	}
}

func TestBookingCreateRequestRejectsZeroTotal(t *testing.T) {
	req := validRequest()
	req.TotalAmount = 0
	if err := req.Validate(); err == nil {
		t.Fatalf("expected error for zero total amount")
	}
}

func TestBookingStatusUpdateRequestRequiresStatus(t *testing.T) {
	if err := (BookingStatusUpdateRequest{}).Validate(); err == nil {
		t.Fatalf("expected error for empty status")
	}
	if err := (BookingStatusUpdateRequest{BookingStatus: "cancelled"}).Validate(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}
