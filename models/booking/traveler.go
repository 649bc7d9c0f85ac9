package booking

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// Traveler is one entry of a booking's ordered traveler list. Order is
// significant: uploaded ID-proof documents are attached by positional index.
type Traveler struct {
	Name          string `json:"name"`
	IDProofType   string `json:"id_proof_type,omitempty"`
	IDProofNumber string `json:"id_proof_number,omitempty"`
	IDProofImage  string `json:"id_proof_image,omitempty"`
}

// TravelerList is persisted as a single JSONB document on the booking row.
type TravelerList []Traveler

// Value implements driver.Valuer. An empty list is stored as [] rather than
// NULL so the round trip yields an equal list.
func (tl TravelerList) Value() (driver.Value, error) {
	if tl == nil {
		return nil, nil
	}
	b, err := json.Marshal(tl)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (tl *TravelerList) Scan(value interface{}) error {
	if value == nil {
		*tl = nil
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported travelers_data column type %T", value)
	}

	if len(data) == 0 {
		*tl = nil
		return nil
	}
	return json.Unmarshal(data, tl)
}

// UnmarshalJSON accepts travelers_data either as a structured list or as a
// caller-serialized string; clients that build the payload from form state
// send the list pre-stringified even in JSON bodies.
func (tl *TravelerList) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return errors.New("invalid travelers data format")
		}
		if raw == "" {
			*tl = nil
			return nil
		}
		parsed, err := ParseTravelerList(raw)
		if err != nil {
			return err
		}
		*tl = parsed
		return nil
	}

	type plain TravelerList
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return errors.New("invalid travelers data format")
	}
	*tl = TravelerList(p)
	return nil
}

// ParseTravelerList decodes a caller-serialized traveler list, as sent by
// multipart/form-data clients that can only carry strings.
func ParseTravelerList(raw string) (TravelerList, error) {
	var tl TravelerList
	if err := json.Unmarshal([]byte(raw), &tl); err != nil {
		return nil, errors.New("invalid travelers data format")
	}
	return tl, nil
}
