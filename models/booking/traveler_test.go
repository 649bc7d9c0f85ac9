package booking

import (
	"testing"
)

func TestTravelerListRoundTrip(t *testing.T) {
	original := TravelerList{
		{Name: "Asha Rao", IDProofType: "passport", IDProofNumber: "P1234567"},
		{Name: "Vikram Rao", IDProofType: "aadhar", IDProofNumber: "1111-2222-3333", IDProofImage: "Uploads/BookingIDProofs/booking-id-abc.jpg"},
	}

	value, err := original.Value()
	if err != nil {
		t.Fatalf("Value() returned error: %v", err)
	}

	var restored TravelerList
	if err := restored.Scan(value); err != nil {
		t.Fatalf("Scan() returned error: %v", err)
	}

	if len(restored) != len(original) {
		t.Fatalf("round trip changed length: got %d want %d", len(restored), len(original))
	}
	for i := range original {
		if restored[i] != original[i] {
			t.Fatalf("traveler %d changed in round trip: got %+v want %+v", i, restored[i], original[i])
		}
	}
}

func TestTravelerListRoundTripEmpty(t *testing.T) {
	original := TravelerList{}

	value, err := original.Value()
	if err != nil {
		t.Fatalf("Value() returned error: %v", err)
	}
	if value != "[]" {
		t.Fatalf("empty list should serialize as [], got %v", value)
	}

	var restored TravelerList
	if err := restored.Scan(value); err != nil {
		t.Fatalf("Scan() returned error: %v", err)
	}
	if restored == nil || len(restored) != 0 {
		t.Fatalf("empty list should restore as empty, got %v", restored)
	}
}

func TestTravelerListNilValue(t *testing.T) {
	var tl TravelerList
	value, err := tl.Value()
	if err != nil {
		t.Fatalf("Value() returned error: %v", err)
	}
	if value != nil {
		t.Fatalf("nil list should store as NULL, got %v", value)
	}
}

func TestTravelerListScanBytes(t *testing.T) {
	var tl TravelerList
	if err := tl.Scan([]byte(`[{"name":"Solo"}]`)); err != nil {
		t.Fatalf("Scan([]byte) returned error: %v", err)
	}
	if len(tl) != 1 || tl[0].Name != "Solo" {
		t.Fatalf("unexpected scan result: %+v", tl)
	}
}

func TestTravelerListScanNil(t *testing.T) {
	tl := TravelerList{{Name: "stale"}}
	if err := tl.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) returned error: %v", err)
	}
	if tl != nil {
		t.Fatalf("Scan(nil) should clear the list, got %v", tl)
	}
}

func TestTravelerListUnmarshalStructured(t *testing.T) {
	var tl TravelerList
	if err := tl.UnmarshalJSON([]byte(`[{"name":"Asha Rao"},{"name":"Vikram Rao"}]`)); err != nil {
		t.Fatalf("structured list rejected: %v", err)
	}
	if len(tl) != 2 || tl[1].Name != "Vikram Rao" {
		t.Fatalf("unexpected structured result: %+v", tl)
	}
}

func TestTravelerListUnmarshalSerializedString(t *testing.T) {
	var tl TravelerList
	if err := tl.UnmarshalJSON([]byte(`"[{\"name\":\"Asha Rao\"}]"`)); err != nil {
		t.Fatalf("serialized string form rejected: %v", err)
	}
	if len(tl) != 1 || tl[0].Name != "Asha Rao" {
		t.Fatalf("unexpected serialized result: %+v", tl)
	}
}

func TestTravelerListUnmarshalEmptyString(t *testing.T) {
	var tl TravelerList
	if err := tl.UnmarshalJSON([]byte(`""`)); err != nil {
		t.Fatalf("empty string should mean no travelers: %v", err)
	}
	if tl != nil {
		t.Fatalf("empty string should decode to nil, got %v", tl)
	}
}

func TestTravelerListUnmarshalRejectsMalformed(t *testing.T) {
	var tl TravelerList
	if err := tl.UnmarshalJSON([]byte(`"{broken"`)); err == nil {
		t.Fatalf("expected error for malformed serialized travelers data")
	}
	if err := tl.UnmarshalJSON([]byte(`123`)); err == nil {
		t.Fatalf("expected error for non-list travelers data")
	}
}

func TestParseTravelerList(t *testing.T) {
	tl, err := ParseTravelerList(`[{"name":"Asha Rao","id_proof_type":"passport"}]`)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(tl) != 1 || tl[0].Name != "Asha Rao" {
		t.Fatalf("unexpected parse result: %+v", tl)
	}
}

func TestParseTravelerListRejectsMalformed(t *testing.T) {
	if _, err := ParseTravelerList(`{"name":"not a list"`); err == nil {
		t.Fatalf("expected error for malformed travelers data")
	}
}

func TestBookingStatusValidity(t *testing.T) {
	for _, status := range GetAllBookingStatuses() {
		if !status.IsValid() {
			t.Fatalf("status %q should be valid", status)
		}
	}
	if BookingStatus("refunded").IsValid() {
		t.Fatalf("unknown status should be invalid")
	}
}

func TestBookingStatusTerminal(t *testing.T) {
	if BookingStatusPending.IsTerminal() {
		t.Fatalf("pending is not terminal")
	}
	if !BookingStatusConfirmed.IsTerminal() || !BookingStatusCancelled.IsTerminal() {
		t.Fatalf("confirmed and cancelled are terminal")
	}
}

func TestTripTypeValidity(t *testing.T) {
	if !TripTypeNormal.IsValid() || !TripTypeWeekend.IsValid() {
		t.Fatalf("known trip types should be valid")
	}
	if TripType("luxury").IsValid() {
		t.Fatalf("unknown trip type should be invalid")
	}
}
