package service

import (
	"errors"
	"net/http"

	"htcpcp/internal/models"
)

// statusByOutcome is the single place where state-machine outcomes become
// wire status codes. The brew decision consults it instead of scattering
// literals, so the mapping is one reviewable table.
var statusByOutcome = map[models.OutcomeKind]int{
	models.OutcomeBrewed:         http.StatusOK,
	models.OutcomeWrongAppliance: http.StatusTeapot,
	models.OutcomeRefused:        http.StatusNotAcceptable,
	models.OutcomeDepleted:       http.StatusServiceUnavailable,
}

// StatusForOutcome maps an outcome kind to its HTCPCP status code.
func StatusForOutcome(kind models.OutcomeKind) int {
	if code, ok := statusByOutcome[kind]; ok {
		return code
	}
	return http.StatusInternalServerError
}

// StatusForError maps request-level failures, which are not protocol
// outcomes: an unknown pot is 404, anything else is the server's fault.
func StatusForError(err error) int {
	if errors.Is(err, models.ErrPotNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
