package validator

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	api "github.com/s21platform/stream-service/internal/generated"
	"github.com/s21platform/stream-service/internal/model"
)

const maxCommentLength = 500

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) ValidateRequestToJoin(req *api.RequestToJoinRequest) error {
	if len([]rune(req.Comment)) > maxCommentLength {
		return fmt.Errorf("comment exceeds maximum length of %d characters", maxCommentLength)
	}

	return nil
}

func (v *Validator) ValidateProcessDecision(req *api.ProcessJoinRequestRequest) error {
	switch model.JoinDecision(req.Decision) {
	case model.DecisionApprove, model.DecisionDisapprove:
	default:
		return fmt.Errorf("decision '%s' is not supported", req.Decision)
	}

	if len([]rune(req.Comment)) > maxCommentLength {
		return fmt.Errorf("comment exceeds maximum length of %d characters", maxCommentLength)
	}

	return nil
}

func (v *Validator) ValidateSpeakerBatch(speakers []api.SpeakerInput) error {
	if len(speakers) == 0 {
		return fmt.Errorf("speakers list cannot be empty")
	}

	for i, speaker := range speakers {
		hasMemberID := speaker.MemberId != nil && strings.TrimSpace(*speaker.MemberId) != ""
		hasEmail := speaker.Email != nil && strings.TrimSpace(*speaker.Email) != ""

		if !hasMemberID && !hasEmail {
			return fmt.Errorf("speaker %d requires either member_id or email", i)
		}

		if hasMemberID {
			if _, err := uuid.Parse(*speaker.MemberId); err != nil {
				return fmt.Errorf("speaker %d has invalid member_id: %v", i, err)
			}
			continue
		}

		if !strings.Contains(*speaker.Email, "@") {
			return fmt.Errorf("speaker %d has invalid email '%s'", i, *speaker.Email)
		}

		if speaker.FullName == nil || strings.TrimSpace(*speaker.FullName) == "" {
			return fmt.Errorf("speaker %d requires full_name for guest entries", i)
		}
	}

	return nil
}

func (v *Validator) ValidateRemoveSpeakers(req *api.RemoveSpeakersRequest) error {
	if len(req.SpeakerIds) == 0 {
		return fmt.Errorf("speaker_ids list cannot be empty")
	}

	for i, id := range req.SpeakerIds {
		if _, err := uuid.Parse(id); err != nil {
			return fmt.Errorf("speaker_ids[%d] is not a valid uuid: %v", i, err)
		}
	}

	return nil
}
