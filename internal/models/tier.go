package models

type Tier int

const (
	TierFail Tier = iota
	TierPass
	TierExcellent
)

func (t Tier) String() string {
	switch t {
	case TierExcellent:
		return "Excellent"
	case TierPass:
		return "Pass"
	}
	return "Fail"
}

// Label is the result text shown to respondents.
func (t Tier) Label() string {
	switch t {
	case TierExcellent:
		return "Excellent ✨"
	case TierPass:
		return "Pass 👍"
	}
	return "Fail 🔴"
}

func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Tier) UnmarshalText(b []byte) error {
	switch string(b) {
	case "Excellent":
		*t = TierExcellent
	case "Pass":
		*t = TierPass
	default:
		*t = TierFail
	}
	return nil
}
