package utils

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"

	"github.com/jinzhu/now"
)

// uploadSlotPattern matches the multipart field names carrying traveler
// ID-proof documents: id_proof_image_0, id_proof_image_1, ...
var uploadSlotPattern = regexp.MustCompile(`^id_proof_image_(\d+)$`)

// UploadSlotIndex extracts the traveler index from an upload field name.
// Returns false for any field that is not an ID-proof slot.
func UploadSlotIndex(fieldName string) (int, bool) {
	match := uploadSlotPattern.FindStringSubmatch(fieldName)
	if match == nil {
		return 0, false
	}
	idx, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	return idx, true
}

// DepositSubunits converts the deposit fraction of a total amount into the
// gateway's smallest currency unit (e.g. paise), rounding half away from
// zero the way the gateway's own dashboards do.
func DepositSubunits(totalAmount, fraction float64) int64 {
	return int64(math.Round(totalAmount * fraction * 100))
}

// PricePerPerson returns the per-head price, defaulting to an even split of
// the total when the caller did not supply one.
func PricePerPerson(supplied, totalAmount float64, numberOfPeople int) float64 {
	if supplied > 0 {
		return supplied
	}
	if numberOfPeople <= 0 {
		return 0
	}
	return totalAmount / float64(numberOfPeople)
}

// ParseTravelDate accepts the date formats travel clients actually send.
func ParseTravelDate(value string) (time.Time, error) {
	cfg := &now.Config{
		TimeFormats: []string{
			"2006-01-02",
			"2006-01-02T15:04:05Z07:00",
			"02-01-2006",
			"02/01/2006",
		},
	}
	parsed, err := cfg.Parse(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid travel date %q", value)
	}
	return parsed, nil
}

// StrPtr returns a pointer to s, or nil when s is empty. Optional columns
// are stored as NULL rather than empty strings.
func StrPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
