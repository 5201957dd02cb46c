package models

// OutcomeKind classifies the state machine's decision for a brew attempt.
type OutcomeKind string

const (
	OutcomeBrewed         OutcomeKind = "brewed"
	OutcomeWrongAppliance OutcomeKind = "wrong-appliance"
	OutcomeRefused        OutcomeKind = "refused"
	OutcomeDepleted       OutcomeKind = "depleted"
)

// Outcome is the transient result of one brew attempt. Protocol refusals
// (406/418/503) are carried here as first-class values, never as Go errors.
type Outcome struct {
	Kind           OutcomeKind `json:"kind"`
	StatusCode     int         `json:"status_code"`
	Message        string      `json:"message"`
	ResultingState PotState    `json:"resulting_state"`
	Rejection      *Rejection  `json:"rejection,omitempty"`
	MilkPouring    bool        `json:"milk_pouring"`
	RecordID       string      `json:"record_id,omitempty"`
}
