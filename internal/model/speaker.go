package model

import (
	"time"

	"github.com/google/uuid"
)

type SpeakerList []Speaker

// Speaker is a presenter role attached to a stream. MemberID is nil for a
// guest speaker with no platform account; AttendeeID is set only once the
// speaker corresponds to a current attendee row.
type Speaker struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	StreamID    uuid.UUID  `db:"stream_id" json:"stream_id"`
	AttendeeID  *uuid.UUID `db:"attendee_id" json:"attendee_id,omitempty"`
	MemberID    *uuid.UUID `db:"member_id" json:"member_id,omitempty"`
	FullName    string     `db:"full_name" json:"full_name"`
	Title       string     `db:"title" json:"title"`
	Description string     `db:"description" json:"description"`
	Email       string     `db:"email" json:"email,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// SpeakerInput is the desired-state descriptor handed to the roster
// reconciler. It is a closed sum: either a member speaker or a guest
// speaker, so the "has no member" branch is checked by type, not by nil.
type SpeakerInput interface {
	speakerInput()

	DisplayName() string
}

type MemberSpeakerInput struct {
	MemberID    uuid.UUID
	FullName    string
	Title       string
	Description string
}

func (MemberSpeakerInput) speakerInput() {}

func (in MemberSpeakerInput) DisplayName() string { return in.FullName }

type GuestSpeakerInput struct {
	Email       string
	FullName    string
	Title       string
	Description string
}

func (GuestSpeakerInput) speakerInput() {}

func (in GuestSpeakerInput) DisplayName() string { return in.FullName }

// Guest is one entry of the external-invite list sent to the calendar
// provider in a single batched add-attendees call.
type Guest struct {
	Email    string `json:"email"`
	FullName string `json:"name"`
}

// ReconciliationSummary reports what one reconcile pass changed.
type ReconciliationSummary struct {
	CreatedSpeakers   int     `json:"created_speakers"`
	UpdatedSpeakers   int     `json:"updated_speakers"`
	PromotedAttendees int     `json:"promoted_attendees"`
	CreatedAttendees  int     `json:"created_attendees"`
	Invited           []Guest `json:"invited"`
}
