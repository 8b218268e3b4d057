package model

import "github.com/google/uuid"

// Member is a platform identity resolved through the member directory.
type Member struct {
	ID        uuid.UUID `db:"id" json:"id"`
	FullName  string    `db:"full_name" json:"full_name"`
	Email     string    `db:"email" json:"email"`
	AvatarURL string    `db:"avatar_url" json:"avatar_url"`
}

// MemberUpdate is the payload of the member-profile kafka topic consumed
// by the cache-refresh worker.
type MemberUpdate struct {
	MemberID  string `json:"member_id"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}
