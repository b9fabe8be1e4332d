package models

import "time"

// AuditOutcome classifies how an audited action ended.
type AuditOutcome string

const (
	// AuditOutcomeSuccess records a completed action.
	AuditOutcomeSuccess AuditOutcome = "success"

	// AuditOutcomeForbidden records an action rejected by a capability check.
	AuditOutcomeForbidden AuditOutcome = "forbidden"

	// AuditOutcomeConflict records an action rejected by a uniqueness check.
	AuditOutcomeConflict AuditOutcome = "conflict"
)

// AuditEvent is a single record in the service's audit log. Events are
// append-only; old events are removed by the retention cleanup worker.
type AuditEvent struct {
	// EventID is the internal unique identifier of the event.
	EventID int64 `json:"-"`

	// ActorID is the account that attempted the action.
	ActorID int64 `json:"actor_id"`

	// Action names the attempted operation (e.g. "accounts:create").
	Action string `json:"action"`

	// Subject is the target of the action (e.g. the candidate login).
	Subject string `json:"subject"`

	// Outcome records how the action ended.
	Outcome AuditOutcome `json:"outcome"`

	// OccurredAt is the server-assigned timestamp of the event.
	OccurredAt time.Time `json:"occurred_at"`
}

// TableName returns the name of the database table
// associated with the AuditEvent model.
func (e AuditEvent) TableName() string {
	return "audit_events"
}
