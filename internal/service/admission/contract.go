//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package admission

import (
	"context"

	"github.com/google/uuid"

	"github.com/s21platform/stream-service/internal/model"
)

type DBRepo interface {
	GetStreamByID(ctx context.Context, streamID uuid.UUID) (*model.Stream, error)
	GetAttendee(ctx context.Context, streamID, memberID uuid.UUID) (*model.Attendee, error)
	CreateAttendee(ctx context.Context, attendee *model.Attendee) error
	UpdateAttendee(ctx context.Context, attendee *model.Attendee) error
	IncrementTotalAttendees(ctx context.Context, streamID uuid.UUID, delta int64) error

	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type MemberClient interface {
	GetMember(ctx context.Context, memberID uuid.UUID) (*model.Member, error)
}

type NotificationPublisher interface {
	Publish(ctx context.Context, notification model.Notification) error
}

type SyncDispatcher interface {
	Submit(operation model.SyncOperation, stream model.Stream, guests []model.Guest)
}
