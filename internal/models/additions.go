package models

// Additions is the parsed Accept-Additions header: key/value pairs drawn from
// a closed vocabulary (RFC 2324 §2.1.1). Ephemeral, scoped to one request.
type Additions map[string]string

const additionKeyMilk = "milk-type"

// HasMilk reports whether the set requests a milk pour, which puts the pot
// into milk-pouring mode until the client says WHEN.
func (a Additions) HasMilk() bool {
	_, ok := a[additionKeyMilk]
	return ok
}

// AdditionVocabulary enumerates the accepted values per addition key. The
// concrete table is configuration, loaded once at startup.
type AdditionVocabulary map[string][]string

// Clone returns an independent copy so callers cannot mutate the configured
// vocabulary.
func (v AdditionVocabulary) Clone() AdditionVocabulary {
	out := make(AdditionVocabulary, len(v))
	for k, vals := range v {
		out[k] = append([]string(nil), vals...)
	}
	return out
}

// DefaultVocabulary is the RFC 2324 §2.1.1 addition table.
func DefaultVocabulary() AdditionVocabulary {
	return AdditionVocabulary{
		"milk-type":      {"Cream", "Half-and-half", "Whole-milk", "Part-Skim", "Skim", "Non-Dairy"},
		"syrup-type":     {"Vanilla", "Almond", "Raspberry", "Chocolate"},
		"sweetener-type": {"Sugar", "Honey", "Artificial"},
		"spice-type":     {"Cinnamon", "Cardamom"},
		"alcohol-type":   {"Whisky", "Rum", "Kahlua", "Aquavit"},
	}
}

// DecafResponse is the canonical answer to anyone asking about decaf.
// RFC 2324 §2.1.1 — no decaf, intentionally.
const DecafResponse = "NOT_ACCEPTABLE - What's the point? (RFC 2324 §2.1.1)"

// Rejection reasons produced by the addition validator.
const (
	ReasonDecafUnsupported = "decaf-unsupported"
	ReasonInvalidAddition  = "invalid-addition"
	ReasonWrongBeverage    = "wrong-beverage"
)

// Rejection explains why a request was refused with 406. It is a normal
// outcome, not an error.
type Rejection struct {
	Reason string `json:"reason"`
	Detail string `json:"detail"`
}
