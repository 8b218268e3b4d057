// Package admission owns the attendee join-request state machine: direct
// join on public streams, request/approval on private ones, and leaving.
package admission

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/stream-service/internal/config"
	"github.com/s21platform/stream-service/internal/model"
	"github.com/s21platform/stream-service/internal/pkg/tx"
	"github.com/s21platform/stream-service/internal/service/lifecycle"
)

type Service struct {
	repository    DBRepo
	memberClient  MemberClient
	notifications NotificationPublisher
	dispatcher    SyncDispatcher
}

func New(repo DBRepo, memberClient MemberClient, notifications NotificationPublisher, dispatcher SyncDispatcher) *Service {
	return &Service{
		repository:    repo,
		memberClient:  memberClient,
		notifications: notifications,
		dispatcher:    dispatcher,
	}
}

// JoinPublicStream admits a member into a non-private stream. Absent or
// previously pending/disapproved rows are approved in place; an approved
// and attending row is a conflict. The counter update joins the same
// transaction; external dispatch runs only after commit.
func (s *Service) JoinPublicStream(ctx context.Context, streamID, memberID uuid.UUID) (*model.Attendee, error) {
	stream, err := s.repository.GetStreamByID(ctx, streamID)
	if err != nil {
		return nil, err
	}

	if err := lifecycle.CheckActive(stream); err != nil {
		return nil, err
	}
	if err := lifecycle.CheckNotPrivateForJoining(stream); err != nil {
		return nil, err
	}
	if stream.OrganizerID == memberID {
		// the owner is implicitly a member
		return nil, model.ErrAlreadyJoined
	}

	var attendee *model.Attendee
	err = tx.TxExecute(ctx, func(ctx context.Context) error {
		existing, err := s.repository.GetAttendee(ctx, streamID, memberID)
		switch {
		case errors.Is(err, model.ErrAttendeeNotFound):
			attendee, err = s.createApprovedAttendee(ctx, streamID, memberID, nil)
			if err != nil {
				return err
			}
		case err != nil:
			return err
		case existing.Removed:
			return model.ErrMemberRemoved
		case existing.Attending:
			return model.ErrAlreadyJoined
		default:
			existing.Approve()
			if err := s.repository.UpdateAttendee(ctx, existing); err != nil {
				return err
			}
			attendee = existing
		}

		return s.repository.IncrementTotalAttendees(ctx, streamID, 1)
	})
	if err != nil {
		return nil, err
	}

	if stream.IsAnEvent() {
		s.dispatcher.Submit(model.SyncAddAttendees, *stream, []model.Guest{
			{Email: attendee.Email, FullName: attendee.FullName},
		})
	}

	s.publish(ctx, model.Notification{
		Kind:        model.NotificationMemberJoined,
		StreamID:    stream.ID,
		StreamTitle: stream.Title,
		MemberID:    memberID,
		RecipientID: stream.OrganizerID,
	})

	return attendee, nil
}

// RequestToJoinPrivateStream files a pending join request on a private
// stream; on non-private streams it degrades to the direct-join path.
func (s *Service) RequestToJoinPrivateStream(ctx context.Context, streamID, memberID uuid.UUID, comment string) (*model.Attendee, error) {
	stream, err := s.repository.GetStreamByID(ctx, streamID)
	if err != nil {
		return nil, err
	}

	if err := lifecycle.CheckActive(stream); err != nil {
		return nil, err
	}
	if stream.OrganizerID == memberID {
		return nil, model.ErrAlreadyJoined
	}

	if stream.Visibility != model.VisibilityPrivate {
		return s.JoinPublicStream(ctx, streamID, memberID)
	}

	var attendee *model.Attendee
	err = tx.TxExecute(ctx, func(ctx context.Context) error {
		existing, err := s.repository.GetAttendee(ctx, streamID, memberID)
		switch {
		case errors.Is(err, model.ErrAttendeeNotFound):
			member, err := s.memberClient.GetMember(ctx, memberID)
			if err != nil {
				return fmt.Errorf("failed to resolve member %s: %w", memberID, err)
			}

			attendee = &model.Attendee{
				ID:              uuid.New(),
				StreamID:        streamID,
				MemberID:        memberID,
				Status:          model.RequestPending,
				FullName:        member.FullName,
				Email:           member.Email,
				AttendeeComment: &comment,
			}
			return s.repository.CreateAttendee(ctx, attendee)
		case err != nil:
			return err
		case existing.Removed:
			return model.ErrMemberRemoved
		case existing.Attending:
			return model.ErrAlreadyJoined
		case existing.Status == model.RequestPending:
			return model.ErrRequestAlreadyPending
		default:
			existing.Status = model.RequestPending
			existing.AttendeeComment = &comment
			if err := s.repository.UpdateAttendee(ctx, existing); err != nil {
				return err
			}
			attendee = existing
			return nil
		}
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, model.Notification{
		Kind:        model.NotificationJoinRequested,
		StreamID:    stream.ID,
		StreamTitle: stream.Title,
		MemberID:    memberID,
		RecipientID: stream.OrganizerID,
		Comment:     &comment,
	})

	return attendee, nil
}

// ProcessRequestToJoin lets the organizer (or an admin) decide a pending
// or previously disapproved request. External dispatch fires only on the
// transition into APPROVED from a non-approved state.
func (s *Service) ProcessRequestToJoin(ctx context.Context, streamID, requesterID, memberID uuid.UUID, decision model.JoinDecision, comment string) (*model.Attendee, error) {
	stream, err := s.repository.GetStreamByID(ctx, streamID)
	if err != nil {
		return nil, err
	}

	if err := lifecycle.CheckActive(stream); err != nil {
		return nil, err
	}
	if requesterID != stream.OrganizerID && !isAdmin(ctx) {
		return nil, model.ErrNotOrganizer
	}

	var (
		attendee     *model.Attendee
		prevApproved bool
	)
	err = tx.TxExecute(ctx, func(ctx context.Context) error {
		existing, err := s.repository.GetAttendee(ctx, streamID, memberID)
		if err != nil {
			return err
		}
		if existing.Attending {
			return model.ErrAlreadyJoined
		}

		prevApproved = existing.Status == model.RequestApproved
		existing.OrganizerComment = &comment

		switch decision {
		case model.DecisionApprove:
			existing.Approve()
		case model.DecisionDisapprove:
			existing.Status = model.RequestDisapproved
			existing.Attending = false
		default:
			return fmt.Errorf("unsupported decision %q", decision)
		}

		if err := s.repository.UpdateAttendee(ctx, existing); err != nil {
			return err
		}

		if decision == model.DecisionApprove {
			if err := s.repository.IncrementTotalAttendees(ctx, streamID, 1); err != nil {
				return err
			}
		}

		attendee = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	if decision == model.DecisionApprove && !prevApproved && stream.IsAnEvent() {
		s.dispatcher.Submit(model.SyncAddAttendees, *stream, []model.Guest{
			{Email: attendee.Email, FullName: attendee.FullName},
		})
	}

	s.publish(ctx, model.Notification{
		Kind:        model.NotificationRequestDecided,
		StreamID:    stream.ID,
		StreamTitle: stream.Title,
		MemberID:    memberID,
		RecipientID: memberID,
		Decision:    &decision,
		Comment:     &comment,
	})

	return attendee, nil
}

// LeaveStream deactivates the membership relation. The approval status is
// kept so the row satisfies the attending-implies-approved invariant, and
// no external retraction is dispatched.
func (s *Service) LeaveStream(ctx context.Context, streamID, memberID uuid.UUID) error {
	stream, err := s.repository.GetStreamByID(ctx, streamID)
	if err != nil {
		return err
	}

	if stream.OrganizerID == memberID {
		return model.ErrOrganizerCannotLeave
	}

	return tx.TxExecute(ctx, func(ctx context.Context) error {
		attendee, err := s.repository.GetAttendee(ctx, streamID, memberID)
		if err != nil {
			return err
		}
		if !attendee.Attending {
			return model.ErrAttendeeNotFound
		}

		attendee.Attending = false
		if err := s.repository.UpdateAttendee(ctx, attendee); err != nil {
			return err
		}

		return s.repository.IncrementTotalAttendees(ctx, streamID, -1)
	})
}

func (s *Service) createApprovedAttendee(ctx context.Context, streamID, memberID uuid.UUID, comment *string) (*model.Attendee, error) {
	member, err := s.memberClient.GetMember(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve member %s: %w", memberID, err)
	}

	attendee := &model.Attendee{
		ID:              uuid.New(),
		StreamID:        streamID,
		MemberID:        memberID,
		Status:          model.RequestApproved,
		Attending:       true,
		FullName:        member.FullName,
		Email:           member.Email,
		AttendeeComment: comment,
	}

	if err := s.repository.CreateAttendee(ctx, attendee); err != nil {
		return nil, err
	}

	return attendee, nil
}

// publish never fails the admission call: notifications are advisory.
func (s *Service) publish(ctx context.Context, notification model.Notification) {
	if err := s.notifications.Publish(ctx, notification); err != nil {
		logger := logger_lib.FromContext(ctx, config.KeyLogger)
		logger.Error(fmt.Sprintf("failed to publish %s notification: %v", notification.Kind, err))
	}
}

func isAdmin(ctx context.Context) bool {
	role, ok := ctx.Value(config.KeyRole).(string)
	return ok && role == config.RoleAdmin
}
