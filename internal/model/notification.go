package model

import "github.com/google/uuid"

type NotificationKind string

const (
	NotificationJoinRequested   NotificationKind = "join_requested"
	NotificationMemberJoined    NotificationKind = "member_joined"
	NotificationRequestDecided  NotificationKind = "request_decided"
	NotificationSpeakerPromoted NotificationKind = "speaker_promoted"
)

// Notification is the fire-and-forget event published to the notification
// topic on admission transitions. Content formatting happens downstream.
type Notification struct {
	Kind        NotificationKind `json:"kind"`
	StreamID    uuid.UUID        `json:"stream_id"`
	StreamTitle string           `json:"stream_title"`
	MemberID    uuid.UUID        `json:"member_id"`
	RecipientID uuid.UUID        `json:"recipient_id"`
	Decision    *JoinDecision    `json:"decision,omitempty"`
	Comment     *string          `json:"comment,omitempty"`
}
