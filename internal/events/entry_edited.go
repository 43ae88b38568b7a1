package events

import "time"

const EntryEditedTopic = "timeclock.timesheet.entry_edited.v1"

type EntryEditedEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	EntryID        string    `json:"entry_id"`
	EditedByUserID string    `json:"edited_by_user_id"`
	OccurredAt     time.Time `json:"occurred_at"`
}
