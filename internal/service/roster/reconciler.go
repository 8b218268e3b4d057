// Package roster reconciles a desired speaker set against current attendee
// state: it validates the batch, mutates attendee rows, builds the
// deduplicated external-invite list and persists speakers in one
// transaction.
package roster

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/stream-service/internal/config"
	"github.com/s21platform/stream-service/internal/model"
	"github.com/s21platform/stream-service/internal/pkg/tx"
	"github.com/s21platform/stream-service/internal/service/lifecycle"
)

type Reconciler struct {
	repository    DBRepo
	memberClient  MemberClient
	notifications NotificationPublisher
	dispatcher    SyncDispatcher
}

func New(repo DBRepo, memberClient MemberClient, notifications NotificationPublisher, dispatcher SyncDispatcher) *Reconciler {
	return &Reconciler{
		repository:    repo,
		memberClient:  memberClient,
		notifications: notifications,
		dispatcher:    dispatcher,
	}
}

// AddSpeakers creates speaker rows for the whole batch; member speakers
// are reconciled against attendee state on the way.
func (r *Reconciler) AddSpeakers(ctx context.Context, streamID uuid.UUID, inputs []model.SpeakerInput) (*model.ReconciliationSummary, error) {
	return r.reconcile(ctx, streamID, inputs, false)
}

// UpdateSpeakers behaves like AddSpeakers but first matches member
// speakers against existing speaker rows and updates those in place.
func (r *Reconciler) UpdateSpeakers(ctx context.Context, streamID uuid.UUID, inputs []model.SpeakerInput) (*model.ReconciliationSummary, error) {
	return r.reconcile(ctx, streamID, inputs, true)
}

// memberEntry is one merged member-speaker descriptor: duplicate member
// IDs inside a batch collapse into a single entry, later non-empty fields
// filling earlier blanks.
type memberEntry struct {
	memberID    uuid.UUID
	fullName    string
	title       string
	description string
}

func (e *memberEntry) merge(in model.MemberSpeakerInput) {
	if in.FullName != "" {
		e.fullName = in.FullName
	}
	if in.Title != "" {
		e.title = in.Title
	}
	if in.Description != "" {
		e.description = in.Description
	}
}

func (r *Reconciler) reconcile(ctx context.Context, streamID uuid.UUID, inputs []model.SpeakerInput, matchExisting bool) (*model.ReconciliationSummary, error) {
	stream, err := r.repository.GetStreamByID(ctx, streamID)
	if err != nil {
		return nil, err
	}
	if err := lifecycle.CheckActive(stream); err != nil {
		return nil, err
	}

	entries, guests := splitInputs(inputs)

	memberIDs := make([]uuid.UUID, 0, len(entries))
	for _, entry := range entries {
		memberIDs = append(memberIDs, entry.memberID)
	}

	// all-or-nothing: one unknown member fails the whole batch before any write
	directory, err := r.resolveAll(ctx, memberIDs)
	if err != nil {
		return nil, err
	}

	speakersByMember := map[uuid.UUID]*model.Speaker{}
	if matchExisting {
		existing, err := r.repository.GetSpeakersByMemberIDs(ctx, streamID, memberIDs)
		if err != nil {
			return nil, err
		}
		for i := range existing {
			if existing[i].MemberID != nil {
				speakersByMember[*existing[i].MemberID] = &existing[i]
			}
		}
	}

	attendees, err := r.repository.GetAttendeesByMemberIDs(ctx, streamID, memberIDs, []model.RequestToJoinStatus{
		model.RequestApproved, model.RequestDisapproved, model.RequestPending,
	})
	if err != nil {
		return nil, err
	}
	attendeeByMember := make(map[uuid.UUID]*model.Attendee, len(attendees))
	for i := range attendees {
		attendeeByMember[attendees[i].MemberID] = &attendees[i]
	}

	var (
		summary         model.ReconciliationSummary
		newSpeakers     []model.Speaker
		updatedSpeakers []*model.Speaker
		newAttendees    []*model.Attendee
		touchedAttendee []*model.Attendee
		promoted        []*model.Attendee
		newlyAttending  int64
	)

	invited := map[string]struct{}{}
	invite := func(email, name string) {
		// exact-match dedup, first occurrence wins
		if _, seen := invited[email]; seen {
			return
		}
		invited[email] = struct{}{}
		summary.Invited = append(summary.Invited, model.Guest{Email: email, FullName: name})
	}

	for _, entry := range entries {
		member := directory[entry.memberID]
		displayName := entry.fullName

		var attendeeID *uuid.UUID
		if attendee, ok := attendeeByMember[entry.memberID]; ok {
			if !attendee.Attending {
				attendee.Approve()
				if displayName == "" {
					displayName = attendee.FullName
				}
				invite(member.Email, displayName)
				summary.PromotedAttendees++
				newlyAttending++
			}
			if !attendee.IsSpeaker {
				attendee.IsSpeaker = true
				promoted = append(promoted, attendee)
			}
			touchedAttendee = append(touchedAttendee, attendee)
			attendeeID = &attendee.ID
		} else {
			if displayName == "" {
				displayName = member.FullName
			}
			attendee := &model.Attendee{
				ID:        uuid.New(),
				StreamID:  streamID,
				MemberID:  entry.memberID,
				Status:    model.RequestApproved,
				Attending: true,
				IsSpeaker: true,
				FullName:  member.FullName,
				Email:     member.Email,
			}
			newAttendees = append(newAttendees, attendee)
			promoted = append(promoted, attendee)
			invite(member.Email, displayName)
			summary.CreatedAttendees++
			newlyAttending++
			attendeeID = &attendee.ID
		}

		if displayName == "" {
			displayName = member.FullName
		}

		if existing, ok := speakersByMember[entry.memberID]; ok {
			existing.FullName = displayName
			existing.Title = entry.title
			existing.Description = entry.description
			existing.AttendeeID = attendeeID
			updatedSpeakers = append(updatedSpeakers, existing)
			summary.UpdatedSpeakers++
		} else {
			memberID := entry.memberID
			newSpeakers = append(newSpeakers, model.Speaker{
				ID:          uuid.New(),
				StreamID:    streamID,
				AttendeeID:  attendeeID,
				MemberID:    &memberID,
				FullName:    displayName,
				Title:       entry.title,
				Description: entry.description,
				Email:       member.Email,
			})
			summary.CreatedSpeakers++
		}
	}

	// guest speakers stay outside the membership roster
	for _, guest := range guests {
		invite(guest.Email, guest.FullName)
		newSpeakers = append(newSpeakers, model.Speaker{
			ID:          uuid.New(),
			StreamID:    streamID,
			FullName:    guest.FullName,
			Title:       guest.Title,
			Description: guest.Description,
			Email:       guest.Email,
		})
		summary.CreatedSpeakers++
	}

	err = tx.TxExecute(ctx, func(ctx context.Context) error {
		for _, attendee := range newAttendees {
			if err := r.repository.CreateAttendee(ctx, attendee); err != nil {
				return err
			}
		}
		for _, attendee := range touchedAttendee {
			if err := r.repository.UpdateAttendee(ctx, attendee); err != nil {
				return err
			}
		}

		if err := r.repository.CreateSpeakers(ctx, newSpeakers); err != nil {
			return err
		}
		for _, speaker := range updatedSpeakers {
			if err := r.repository.UpdateSpeaker(ctx, speaker); err != nil {
				return err
			}
		}

		if len(newSpeakers) > 0 {
			if err := r.repository.IncrementTotalSpeakers(ctx, streamID, int64(len(newSpeakers))); err != nil {
				return err
			}
		}
		if newlyAttending > 0 {
			if err := r.repository.IncrementTotalAttendees(ctx, streamID, newlyAttending); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if stream.IsAnEvent() && len(summary.Invited) > 0 {
		r.dispatcher.Submit(model.SyncAddAttendees, *stream, summary.Invited)
	}

	for _, attendee := range promoted {
		r.publish(ctx, model.Notification{
			Kind:        model.NotificationSpeakerPromoted,
			StreamID:    stream.ID,
			StreamTitle: stream.Title,
			MemberID:    attendee.MemberID,
			RecipientID: attendee.MemberID,
		})
	}

	return &summary, nil
}

// publish never fails the reconciliation call: notifications are advisory.
func (r *Reconciler) publish(ctx context.Context, notification model.Notification) {
	if err := r.notifications.Publish(ctx, notification); err != nil {
		logger := logger_lib.FromContext(ctx, config.KeyLogger)
		logger.Error(fmt.Sprintf("failed to publish %s notification: %v", notification.Kind, err))
	}
}

// RemoveSpeakers deletes speaker rows only. Approval and attendance
// granted during promotion are never reverted.
func (r *Reconciler) RemoveSpeakers(ctx context.Context, streamID uuid.UUID, speakerIDs []uuid.UUID) error {
	if _, err := r.repository.GetStreamByID(ctx, streamID); err != nil {
		return err
	}

	return tx.TxExecute(ctx, func(ctx context.Context) error {
		speakers, err := r.repository.GetSpeakersByIDs(ctx, streamID, speakerIDs)
		if err != nil {
			return err
		}
		if len(speakers) == 0 {
			return model.ErrSpeakerNotFound
		}

		var attendeeIDs []uuid.UUID
		for _, speaker := range speakers {
			if speaker.AttendeeID != nil {
				attendeeIDs = append(attendeeIDs, *speaker.AttendeeID)
			}
		}

		deleted, err := r.repository.DeleteSpeakers(ctx, streamID, speakerIDs)
		if err != nil {
			return err
		}

		if err := r.repository.ClearAttendeeSpeakerFlag(ctx, attendeeIDs); err != nil {
			return err
		}

		return r.repository.IncrementTotalSpeakers(ctx, streamID, -deleted)
	})
}

func splitInputs(inputs []model.SpeakerInput) ([]*memberEntry, []model.GuestSpeakerInput) {
	var (
		entries []*memberEntry
		byID    = map[uuid.UUID]*memberEntry{}
		guests  []model.GuestSpeakerInput
	)

	for _, input := range inputs {
		switch in := input.(type) {
		case model.MemberSpeakerInput:
			entry, ok := byID[in.MemberID]
			if !ok {
				entry = &memberEntry{memberID: in.MemberID}
				byID[in.MemberID] = entry
				entries = append(entries, entry)
			}
			entry.merge(in)
		case model.GuestSpeakerInput:
			guests = append(guests, in)
		}
	}

	return entries, guests
}

func (r *Reconciler) resolveAll(ctx context.Context, memberIDs []uuid.UUID) (map[uuid.UUID]model.Member, error) {
	directory := make(map[uuid.UUID]model.Member, len(memberIDs))
	if len(memberIDs) == 0 {
		return directory, nil
	}

	members, err := r.memberClient.ResolveMembers(ctx, memberIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve members: %w", err)
	}
	for _, member := range members {
		directory[member.ID] = member
	}

	for _, memberID := range memberIDs {
		if _, ok := directory[memberID]; !ok {
			return nil, fmt.Errorf("%w: %s", model.ErrUnknownMember, memberID)
		}
	}

	return directory, nil
}
