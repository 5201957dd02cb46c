package models

import "time"

// BrewRecord is one append-only audit entry for a brew attempt. Refused
// attempts are recorded too; records are never mutated or deleted.
type BrewRecord struct {
	ID             string    `json:"record_id"`
	PotID          string    `json:"pot_id"`
	OccurredAt     time.Time `json:"occurred_at"`
	Additions      Additions `json:"additions,omitempty"`
	StatusCode     int       `json:"status_code"`
	ResultingState PotState  `json:"resulting_state"`
}
