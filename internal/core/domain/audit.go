package domain

import "time"

// Audit outcomes.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// AuditRecord is one entry of the panel's activity and diagnostic trail.
type AuditRecord struct {
	Action     string
	Resource   string
	ResourceID string
	Outcome    string
	Detail     string
	At         time.Time
}
