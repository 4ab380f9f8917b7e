package service

import "greencart/internal/domain/entity"

// Outcomes recorded for session events.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// SessionMetrics records session and cart events for monitoring.
type SessionMetrics interface {
	RecordLogin(audience entity.Audience, outcome string)
	RecordRegistration(outcome string)
	RecordGateRejection(audience entity.Audience, reason string)
	RecordCartUpdate(outcome string)
}
