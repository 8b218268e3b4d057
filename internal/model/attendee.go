package model

import (
	"time"

	"github.com/google/uuid"
)

type RequestToJoinStatus string

const (
	RequestPending     RequestToJoinStatus = "PENDING"
	RequestApproved    RequestToJoinStatus = "APPROVED"
	RequestDisapproved RequestToJoinStatus = "DISAPPROVED"
)

type JoinDecision string

const (
	DecisionApprove    JoinDecision = "approve"
	DecisionDisapprove JoinDecision = "disapprove"
)

type AttendeeList []Attendee

// Attendee is the membership relation between a member and a stream.
// One row per (stream_id, member_id), enforced by a unique constraint.
// Invariant: Attending == true implies Status == APPROVED.
type Attendee struct {
	ID               uuid.UUID           `db:"id" json:"id"`
	StreamID         uuid.UUID           `db:"stream_id" json:"stream_id"`
	MemberID         uuid.UUID           `db:"member_id" json:"member_id"`
	Status           RequestToJoinStatus `db:"request_to_join_status" json:"request_to_join_status"`
	Attending        bool                `db:"attending" json:"attending"`
	IsSpeaker        bool                `db:"is_speaker" json:"is_speaker"`
	IsOrganizer      bool                `db:"is_organizer" json:"is_organizer"`
	Removed          bool                `db:"removed" json:"-"`
	FullName         string              `db:"full_name" json:"full_name"`
	Email            string              `db:"email" json:"-"`
	AttendeeComment  *string             `db:"attendee_comment" json:"attendee_comment,omitempty"`
	OrganizerComment *string             `db:"organizer_comment" json:"organizer_comment,omitempty"`
	CreatedAt        time.Time           `db:"created_at" json:"created_at"`
	UpdatedAt        *time.Time          `db:"updated_at" json:"updated_at,omitempty"`
}

// Approve moves the row into the only state where attendance is allowed.
func (a *Attendee) Approve() {
	a.Status = RequestApproved
	a.Attending = true
}
