package model

import (
	"time"

	"github.com/google/uuid"
)

type StreamVisibility string

const (
	VisibilityPublic    StreamVisibility = "PUBLIC"
	VisibilityPrivate   StreamVisibility = "PRIVATE"
	VisibilityProtected StreamVisibility = "PROTECTED"
)

type StreamStatus string

const (
	StreamActive   StreamStatus = "ACTIVE"
	StreamCanceled StreamStatus = "CANCELED"
)

// StreamSource tells which external provider backs the stream: a calendar
// event or a bare live broadcast.
type StreamSource string

const (
	SourceCalendar  StreamSource = "calendar"
	SourceBroadcast StreamSource = "broadcast"
)

type Stream struct {
	ID             uuid.UUID        `db:"id" json:"id"`
	OrganizerID    uuid.UUID        `db:"organizer_id" json:"organizer_id"`
	Title          string           `db:"title" json:"title"`
	Visibility     StreamVisibility `db:"visibility" json:"visibility"`
	Status         StreamStatus     `db:"status" json:"status"`
	Source         StreamSource     `db:"source" json:"source"`
	ScheduledStart time.Time        `db:"scheduled_start" json:"scheduled_start"`
	ScheduledEnd   time.Time        `db:"scheduled_end" json:"scheduled_end"`
	ExternalID     *string          `db:"external_id" json:"external_id,omitempty"`
	ExternalLink   *string          `db:"external_link" json:"external_link,omitempty"`
	TotalAttendees int64            `db:"total_attendees" json:"total_attendees"`
	TotalSpeakers  int64            `db:"total_speakers" json:"total_speakers"`
	LikeCount      int64            `db:"like_count" json:"like_count"`
	BookmarkCount  int64            `db:"bookmark_count" json:"bookmark_count"`
	Deleted        bool             `db:"deleted" json:"-"`
	CreatedAt      time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt      *time.Time       `db:"updated_at" json:"updated_at,omitempty"`
}

// IsAnEvent reports whether the stream is backed by a calendar event.
// Guest invites only make sense for calendar-backed streams.
func (s *Stream) IsAnEvent() bool {
	return s.Source == SourceCalendar
}

// ExternalEventRef is the identifier pair assigned by the external provider
// after a successful create or reschedule.
type ExternalEventRef struct {
	ExternalID   string `json:"external_id"`
	ExternalLink string `json:"external_link"`
}
