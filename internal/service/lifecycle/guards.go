// Package lifecycle holds pure guard predicates over a stream's status,
// visibility and schedule. Guards are consulted by the admission flow and
// never mutate anything.
package lifecycle

import (
	"time"

	"github.com/s21platform/stream-service/internal/model"
)

// IsOngoing reports whether now falls inside [scheduled_start, scheduled_end).
func IsOngoing(stream *model.Stream, now time.Time) bool {
	return !now.Before(stream.ScheduledStart) && now.Before(stream.ScheduledEnd)
}

func HasNotStarted(stream *model.Stream, now time.Time) bool {
	return now.Before(stream.ScheduledStart)
}

func HasEnded(stream *model.Stream, now time.Time) bool {
	return !now.Before(stream.ScheduledEnd)
}

func CheckNotOngoingForUpdate(stream *model.Stream, now time.Time) error {
	if IsOngoing(stream, now) {
		return model.ErrStreamBusy
	}
	return nil
}

func CheckNotOngoingForCancelOrDelete(stream *model.Stream, now time.Time) error {
	if IsOngoing(stream, now) {
		return model.ErrStreamBusy
	}
	return nil
}

// CheckNotPrivateForJoining guards the direct-join path: private streams
// are joined through the request/approval flow only.
func CheckNotPrivateForJoining(stream *model.Stream) error {
	if stream.Visibility == model.VisibilityPrivate {
		return model.ErrPrivateStream
	}
	return nil
}

func CheckNotCanceled(stream *model.Stream) error {
	if stream.Status == model.StreamCanceled {
		return model.ErrAlreadyCanceled
	}
	return nil
}

// CheckActive combines the checks every admission operation starts with.
func CheckActive(stream *model.Stream) error {
	if stream.Deleted {
		return model.ErrStreamNotFound
	}
	return CheckNotCanceled(stream)
}
