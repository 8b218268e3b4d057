package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/stream-service/internal/config"
	api "github.com/s21platform/stream-service/internal/generated"
	"github.com/s21platform/stream-service/internal/model"
)

type Handler struct {
	repository DBRepo
	admission  AdmissionService
	roster     RosterService
	validator  Validator
}

func New(repo DBRepo, admission AdmissionService, roster RosterService, validator Validator) *Handler {
	return &Handler{
		repository: repo,
		admission:  admission,
		roster:     roster,
		validator:  validator,
	}
}

func (h *Handler) JoinStream(w http.ResponseWriter, r *http.Request, streamId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("JoinStream")

	streamID, memberID, ok := h.identify(w, r, streamId, logger)
	if !ok {
		return
	}

	attendee, err := h.admission.JoinPublicStream(r.Context(), streamID, memberID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to join stream %s: %v", streamID, err))
		h.writeError(w, fmt.Sprintf("failed to join stream: %v", err), statusFor(err))
		return
	}

	h.writeJSON(w, api.JoinStreamResponse{
		AttendeeId: attendee.ID.String(),
		Status:     string(attendee.Status),
		Attending:  attendee.Attending,
	}, http.StatusOK)
}

func (h *Handler) RequestToJoinStream(w http.ResponseWriter, r *http.Request, streamId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("RequestToJoinStream")

	var req api.RequestToJoinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateRequestToJoin(&req); err != nil {
		logger.Error(fmt.Sprintf("join request validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("join request validation failed: %v", err), http.StatusBadRequest)
		return
	}

	streamID, memberID, ok := h.identify(w, r, streamId, logger)
	if !ok {
		return
	}

	attendee, err := h.admission.RequestToJoinPrivateStream(r.Context(), streamID, memberID, req.Comment)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to request to join stream %s: %v", streamID, err))
		h.writeError(w, fmt.Sprintf("failed to request to join stream: %v", err), statusFor(err))
		return
	}

	h.writeJSON(w, api.RequestToJoinResponse{
		AttendeeId: attendee.ID.String(),
		Status:     string(attendee.Status),
		Attending:  attendee.Attending,
	}, http.StatusOK)
}

func (h *Handler) ProcessJoinRequest(w http.ResponseWriter, r *http.Request, streamId string, memberId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ProcessJoinRequest")

	var req api.ProcessJoinRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateProcessDecision(&req); err != nil {
		logger.Error(fmt.Sprintf("decision validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("decision validation failed: %v", err), http.StatusBadRequest)
		return
	}

	streamID, requesterID, ok := h.identify(w, r, streamId, logger)
	if !ok {
		return
	}

	memberID, err := uuid.Parse(memberId)
	if err != nil {
		logger.Error(fmt.Sprintf("invalid member id %q: %v", memberId, err))
		h.writeError(w, "invalid member id", http.StatusBadRequest)
		return
	}

	attendee, err := h.admission.ProcessRequestToJoin(r.Context(), streamID, requesterID, memberID, model.JoinDecision(req.Decision), req.Comment)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to process join request for member %s: %v", memberID, err))
		h.writeError(w, fmt.Sprintf("failed to process join request: %v", err), statusFor(err))
		return
	}

	h.writeJSON(w, api.ProcessJoinRequestResponse{
		AttendeeId: attendee.ID.String(),
		Status:     string(attendee.Status),
		Attending:  attendee.Attending,
	}, http.StatusOK)
}

func (h *Handler) LeaveStream(w http.ResponseWriter, r *http.Request, streamId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("LeaveStream")

	streamID, memberID, ok := h.identify(w, r, streamId, logger)
	if !ok {
		return
	}

	if err := h.admission.LeaveStream(r.Context(), streamID, memberID); err != nil {
		logger.Error(fmt.Sprintf("failed to leave stream %s: %v", streamID, err))
		h.writeError(w, fmt.Sprintf("failed to leave stream: %v", err), statusFor(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetStreamAttendees(w http.ResponseWriter, r *http.Request, streamId string, params api.GetStreamAttendeesParams) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetStreamAttendees")

	streamID, err := uuid.Parse(streamId)
	if err != nil {
		logger.Error(fmt.Sprintf("invalid stream id %q: %v", streamId, err))
		h.writeError(w, "invalid stream id", http.StatusBadRequest)
		return
	}

	var page model.Page
	if params.Limit != nil {
		page.Limit = *params.Limit
	}
	if params.Offset != nil {
		page.Offset = *params.Offset
	}

	attendees, total, err := h.repository.GetStreamAttendees(r.Context(), streamID, page)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get attendees for stream %s: %v", streamID, err))
		h.writeError(w, fmt.Sprintf("failed to get attendees: %v", err), statusFor(err))
		return
	}

	items := make([]api.AttendeeItem, len(attendees))
	for i, attendee := range attendees {
		items[i] = api.AttendeeItem{
			MemberId:    attendee.MemberID.String(),
			FullName:    attendee.FullName,
			Status:      string(attendee.Status),
			Attending:   attendee.Attending,
			IsSpeaker:   attendee.IsSpeaker,
			IsOrganizer: attendee.IsOrganizer,
		}
	}

	h.writeJSON(w, api.GetStreamAttendeesResponse{
		Attendees: items,
		Total:     total,
	}, http.StatusOK)
}

func (h *Handler) GetStreamSpeakers(w http.ResponseWriter, r *http.Request, streamId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetStreamSpeakers")

	streamID, err := uuid.Parse(streamId)
	if err != nil {
		logger.Error(fmt.Sprintf("invalid stream id %q: %v", streamId, err))
		h.writeError(w, "invalid stream id", http.StatusBadRequest)
		return
	}

	speakers, err := h.repository.GetStreamSpeakers(r.Context(), streamID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get speakers for stream %s: %v", streamID, err))
		h.writeError(w, fmt.Sprintf("failed to get speakers: %v", err), statusFor(err))
		return
	}

	items := make([]api.SpeakerItem, len(speakers))
	for i, speaker := range speakers {
		var memberID *string
		if speaker.MemberID != nil {
			id := speaker.MemberID.String()
			memberID = &id
		}

		items[i] = api.SpeakerItem{
			Id:          speaker.ID.String(),
			MemberId:    memberID,
			FullName:    speaker.FullName,
			Title:       speaker.Title,
			Description: speaker.Description,
			Email:       speaker.Email,
		}
	}

	h.writeJSON(w, api.GetStreamSpeakersResponse{Speakers: items}, http.StatusOK)
}

func (h *Handler) AddSpeakers(w http.ResponseWriter, r *http.Request, streamId string) {
	h.reconcileSpeakers(w, r, streamId, "AddSpeakers", h.roster.AddSpeakers)
}

func (h *Handler) UpdateSpeakers(w http.ResponseWriter, r *http.Request, streamId string) {
	h.reconcileSpeakers(w, r, streamId, "UpdateSpeakers", h.roster.UpdateSpeakers)
}

func (h *Handler) RemoveSpeakers(w http.ResponseWriter, r *http.Request, streamId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("RemoveSpeakers")

	var req api.RemoveSpeakersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateRemoveSpeakers(&req); err != nil {
		logger.Error(fmt.Sprintf("remove speakers validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("remove speakers validation failed: %v", err), http.StatusBadRequest)
		return
	}

	streamID, err := uuid.Parse(streamId)
	if err != nil {
		logger.Error(fmt.Sprintf("invalid stream id %q: %v", streamId, err))
		h.writeError(w, "invalid stream id", http.StatusBadRequest)
		return
	}

	speakerIDs := make([]uuid.UUID, len(req.SpeakerIds))
	for i, id := range req.SpeakerIds {
		speakerIDs[i] = uuid.MustParse(id)
	}

	if err := h.roster.RemoveSpeakers(r.Context(), streamID, speakerIDs); err != nil {
		logger.Error(fmt.Sprintf("failed to remove speakers from stream %s: %v", streamID, err))
		h.writeError(w, fmt.Sprintf("failed to remove speakers: %v", err), statusFor(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type reconcileFunc func(ctx context.Context, streamID uuid.UUID, inputs []model.SpeakerInput) (*model.ReconciliationSummary, error)

func (h *Handler) reconcileSpeakers(w http.ResponseWriter, r *http.Request, streamId, funcName string, reconcile reconcileFunc) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName(funcName)

	var req api.AddSpeakersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateSpeakerBatch(req.Speakers); err != nil {
		logger.Error(fmt.Sprintf("speaker batch validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("speaker batch validation failed: %v", err), http.StatusBadRequest)
		return
	}

	streamID, err := uuid.Parse(streamId)
	if err != nil {
		logger.Error(fmt.Sprintf("invalid stream id %q: %v", streamId, err))
		h.writeError(w, "invalid stream id", http.StatusBadRequest)
		return
	}

	summary, err := reconcile(r.Context(), streamID, toSpeakerInputs(req.Speakers))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to reconcile speakers for stream %s: %v", streamID, err))
		h.writeError(w, fmt.Sprintf("failed to reconcile speakers: %v", err), statusFor(err))
		return
	}

	invited := make([]api.GuestInvite, len(summary.Invited))
	for i, guest := range summary.Invited {
		invited[i] = api.GuestInvite{Email: guest.Email, Name: guest.FullName}
	}

	h.writeJSON(w, api.ReconciliationResponse{
		CreatedSpeakers:   summary.CreatedSpeakers,
		UpdatedSpeakers:   summary.UpdatedSpeakers,
		PromotedAttendees: summary.PromotedAttendees,
		CreatedAttendees:  summary.CreatedAttendees,
		Invited:           invited,
	}, http.StatusOK)
}

// ----------------------------- helpers -----------------------------

// identify parses the path stream id and pulls the authenticated caller
// id injected by the auth middleware.
func (h *Handler) identify(w http.ResponseWriter, r *http.Request, streamId string, logger logger_lib.LoggerInterface) (uuid.UUID, uuid.UUID, bool) {
	streamID, err := uuid.Parse(streamId)
	if err != nil {
		logger.Error(fmt.Sprintf("invalid stream id %q: %v", streamId, err))
		h.writeError(w, "invalid stream id", http.StatusBadRequest)
		return uuid.Nil, uuid.Nil, false
	}

	callerUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get caller ID")
		h.writeError(w, "failed to get caller ID", http.StatusInternalServerError)
		return uuid.Nil, uuid.Nil, false
	}

	memberID, err := uuid.Parse(callerUUID)
	if err != nil {
		logger.Error(fmt.Sprintf("invalid caller id %q: %v", callerUUID, err))
		h.writeError(w, "invalid caller id", http.StatusInternalServerError)
		return uuid.Nil, uuid.Nil, false
	}

	return streamID, memberID, true
}

func toSpeakerInputs(speakers []api.SpeakerInput) []model.SpeakerInput {
	inputs := make([]model.SpeakerInput, 0, len(speakers))
	for _, speaker := range speakers {
		input := struct {
			fullName    string
			title       string
			description string
		}{}
		if speaker.FullName != nil {
			input.fullName = *speaker.FullName
		}
		if speaker.Title != nil {
			input.title = *speaker.Title
		}
		if speaker.Description != nil {
			input.description = *speaker.Description
		}

		if speaker.MemberId != nil && *speaker.MemberId != "" {
			inputs = append(inputs, model.MemberSpeakerInput{
				MemberID:    uuid.MustParse(*speaker.MemberId),
				FullName:    input.fullName,
				Title:       input.title,
				Description: input.description,
			})
			continue
		}

		inputs = append(inputs, model.GuestSpeakerInput{
			Email:       *speaker.Email,
			FullName:    input.fullName,
			Title:       input.title,
			Description: input.description,
		})
	}

	return inputs
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrStreamNotFound),
		errors.Is(err, model.ErrAttendeeNotFound),
		errors.Is(err, model.ErrSpeakerNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrAlreadyJoined),
		errors.Is(err, model.ErrRequestAlreadyPending),
		errors.Is(err, model.ErrMemberRemoved):
		return http.StatusConflict
	case errors.Is(err, model.ErrAlreadyCanceled),
		errors.Is(err, model.ErrStreamBusy):
		return http.StatusPreconditionFailed
	case errors.Is(err, model.ErrPrivateStream),
		errors.Is(err, model.ErrUnknownMember):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrNotOrganizer),
		errors.Is(err, model.ErrOrganizerCannotLeave):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}
