package events

import "time"

const ClockPunchedTopic = "timeclock.clock.punched.v1"

const (
	PunchIn  = "in"
	PunchOut = "out"
)

type ClockPunchedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	Punch      string    `json:"punch"`
	UserID     string    `json:"user_id"`
	EntryID    string    `json:"entry_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
