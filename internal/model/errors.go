package model

import "errors"

var (
	ErrStreamNotFound   = errors.New("stream not found")
	ErrAttendeeNotFound = errors.New("attendee not found")
	ErrSpeakerNotFound  = errors.New("speaker not found")

	ErrAlreadyJoined         = errors.New("member already joined the stream")
	ErrAlreadyCanceled       = errors.New("stream is already canceled")
	ErrRequestAlreadyPending = errors.New("join request is already pending")

	ErrStreamBusy    = errors.New("stream is ongoing")
	ErrPrivateStream = errors.New("stream is private")

	ErrMemberRemoved        = errors.New("member was removed from the stream")
	ErrNotOrganizer         = errors.New("caller is not the stream organizer")
	ErrOrganizerCannotLeave = errors.New("organizer cannot leave own stream")

	ErrUnknownMember = errors.New("unknown member in speaker batch")
)
