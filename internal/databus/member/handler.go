//go:generate mockgen -destination=mock_handler_test.go -package=${GOPACKAGE} -source=handler.go
package member

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/stream-service/internal/config"
	"github.com/s21platform/stream-service/internal/model"
)

type DBRepo interface {
	UpsertMember(ctx context.Context, member *model.Member) error
}

// Handler applies member-profile updates to the local member cache table.
type Handler struct {
	repository DBRepo
}

func New(repo DBRepo) *Handler {
	return &Handler{
		repository: repo,
	}
}

func (h *Handler) Handler(ctx context.Context, in []byte) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("MemberUpdateHandler")

	var update model.MemberUpdate
	if err := json.Unmarshal(in, &update); err != nil {
		logger.Error(fmt.Sprintf("failed to unmarshal member update: %v", err))
		return
	}

	memberID, err := uuid.Parse(update.MemberID)
	if err != nil {
		logger.Error(fmt.Sprintf("invalid member id %q: %v", update.MemberID, err))
		return
	}

	err = h.repository.UpsertMember(ctx, &model.Member{
		ID:        memberID,
		FullName:  update.FullName,
		Email:     update.Email,
		AvatarURL: update.AvatarURL,
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to upsert member %s: %v", memberID, err))
	}
}
