//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"

	"github.com/google/uuid"

	api "github.com/s21platform/stream-service/internal/generated"
	"github.com/s21platform/stream-service/internal/model"
)

type AdmissionService interface {
	JoinPublicStream(ctx context.Context, streamID, memberID uuid.UUID) (*model.Attendee, error)
	RequestToJoinPrivateStream(ctx context.Context, streamID, memberID uuid.UUID, comment string) (*model.Attendee, error)
	ProcessRequestToJoin(ctx context.Context, streamID, requesterID, memberID uuid.UUID, decision model.JoinDecision, comment string) (*model.Attendee, error)
	LeaveStream(ctx context.Context, streamID, memberID uuid.UUID) error
}

type RosterService interface {
	AddSpeakers(ctx context.Context, streamID uuid.UUID, inputs []model.SpeakerInput) (*model.ReconciliationSummary, error)
	UpdateSpeakers(ctx context.Context, streamID uuid.UUID, inputs []model.SpeakerInput) (*model.ReconciliationSummary, error)
	RemoveSpeakers(ctx context.Context, streamID uuid.UUID, speakerIDs []uuid.UUID) error
}

type DBRepo interface {
	GetStreamAttendees(ctx context.Context, streamID uuid.UUID, page model.Page) (model.AttendeeList, int64, error)
	GetStreamSpeakers(ctx context.Context, streamID uuid.UUID) (model.SpeakerList, error)
}

type Validator interface {
	ValidateRequestToJoin(req *api.RequestToJoinRequest) error
	ValidateProcessDecision(req *api.ProcessJoinRequestRequest) error
	ValidateSpeakerBatch(speakers []api.SpeakerInput) error
	ValidateRemoveSpeakers(req *api.RemoveSpeakersRequest) error
}
