package enums

import "fmt"

// AudienceGender describes the dominant gender split of an influencer's
// audience.
type AudienceGender string

const (
	AudienceGenderMale   AudienceGender = "male"
	AudienceGenderFemale AudienceGender = "female"
	AudienceGenderMixed  AudienceGender = "mixed"
)

var validAudienceGenders = []AudienceGender{
	AudienceGenderMale,
	AudienceGenderFemale,
	AudienceGenderMixed,
}

// String implements fmt.Stringer.
func (g AudienceGender) String() string {
	return string(g)
}

// IsValid reports whether the value is a known AudienceGender.
func (g AudienceGender) IsValid() bool {
	for _, candidate := range validAudienceGenders {
		if candidate == g {
			return true
		}
	}
	return false
}

// ParseAudienceGender converts raw input into an AudienceGender.
func ParseAudienceGender(value string) (AudienceGender, error) {
	for _, candidate := range validAudienceGenders {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid audience gender %q", value)
}
