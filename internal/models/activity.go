package models

import "time"

// Activity event types recorded in the local activity log.
const (
	ActivityScheduleApplied = "SCHEDULE_APPLIED"
	ActivityScheduleFailed  = "SCHEDULE_FAILED"
	ActivityTargetSet       = "TARGET_SET"
	ActivityTargetFailed    = "TARGET_FAILED"
	ActivityRefreshFailed   = "REFRESH_FAILED"
	ActivityLogin           = "LOGIN"
	ActivityLogout          = "LOGOUT"
)

// ActivityEvent is a single local log entry.
type ActivityEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`        // SCHEDULE_APPLIED | TARGET_SET | REFRESH_FAILED | ...
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}
