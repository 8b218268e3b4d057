//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package sync

import (
	"context"

	"github.com/google/uuid"

	"github.com/s21platform/stream-service/internal/model"
)

// EventGateway is the external calendar/broadcast provider abstraction.
// Both implementations satisfy it; operations a provider cannot express
// are never routed to it.
type EventGateway interface {
	CreateEvent(ctx context.Context, stream *model.Stream) (*model.ExternalEventRef, error)
	CreateInstantEvent(ctx context.Context, stream *model.Stream) (*model.ExternalEventRef, error)
	PatchEvent(ctx context.Context, stream *model.Stream) error
	RescheduleEvent(ctx context.Context, stream *model.Stream) (*model.ExternalEventRef, error)
	CancelEvent(ctx context.Context, stream *model.Stream) error
	DeleteEvent(ctx context.Context, stream *model.Stream) error
	AddAttendees(ctx context.Context, stream *model.Stream, guests []model.Guest) error
	UpdateVisibility(ctx context.Context, stream *model.Stream) error
}

type DBRepo interface {
	SetStreamExternalRef(ctx context.Context, streamID uuid.UUID, ref *model.ExternalEventRef) error
}
