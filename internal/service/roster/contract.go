//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package roster

import (
	"context"

	"github.com/google/uuid"

	"github.com/s21platform/stream-service/internal/model"
)

type DBRepo interface {
	GetStreamByID(ctx context.Context, streamID uuid.UUID) (*model.Stream, error)
	GetAttendeesByMemberIDs(ctx context.Context, streamID uuid.UUID, memberIDs []uuid.UUID, statuses []model.RequestToJoinStatus) (model.AttendeeList, error)
	CreateAttendee(ctx context.Context, attendee *model.Attendee) error
	UpdateAttendee(ctx context.Context, attendee *model.Attendee) error
	GetSpeakersByMemberIDs(ctx context.Context, streamID uuid.UUID, memberIDs []uuid.UUID) (model.SpeakerList, error)
	GetSpeakersByIDs(ctx context.Context, streamID uuid.UUID, speakerIDs []uuid.UUID) (model.SpeakerList, error)
	CreateSpeakers(ctx context.Context, speakers []model.Speaker) error
	UpdateSpeaker(ctx context.Context, speaker *model.Speaker) error
	DeleteSpeakers(ctx context.Context, streamID uuid.UUID, speakerIDs []uuid.UUID) (int64, error)
	ClearAttendeeSpeakerFlag(ctx context.Context, attendeeIDs []uuid.UUID) error
	IncrementTotalAttendees(ctx context.Context, streamID uuid.UUID, delta int64) error
	IncrementTotalSpeakers(ctx context.Context, streamID uuid.UUID, delta int64) error

	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type MemberClient interface {
	ResolveMembers(ctx context.Context, memberIDs []uuid.UUID) ([]model.Member, error)
}

type NotificationPublisher interface {
	Publish(ctx context.Context, notification model.Notification) error
}

type SyncDispatcher interface {
	Submit(operation model.SyncOperation, stream model.Stream, guests []model.Guest)
}
