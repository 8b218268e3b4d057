// Package sync submits calendar/broadcast mutations to the external
// provider off the caller's path. Submission is explicit two-phase: the
// local transaction commits first, then the job is enqueued onto a
// background worker. At-most-once, no retry: a failed or dropped job only
// leaves a log line, never an error on the original caller.
package sync

import (
	"context"
	"fmt"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/stream-service/internal/model"
)

type Dispatcher struct {
	repository DBRepo
	calendar   EventGateway
	broadcast  EventGateway
	logger     logger_lib.LoggerInterface
	jobs       chan model.SyncJob
}

func New(repo DBRepo, calendar, broadcast EventGateway, logger logger_lib.LoggerInterface, queueSize int) *Dispatcher {
	return &Dispatcher{
		repository: repo,
		calendar:   calendar,
		broadcast:  broadcast,
		logger:     logger,
		jobs:       make(chan model.SyncJob, queueSize),
	}
}

// Submit enqueues one provider mutation and returns immediately. A full
// queue drops the job: the local state is already committed and the
// resulting gap is the documented eventual-consistency window.
func (d *Dispatcher) Submit(operation model.SyncOperation, stream model.Stream, guests []model.Guest) {
	job := model.SyncJob{
		Operation: operation,
		Stream:    stream,
		Guests:    guests,
	}

	select {
	case d.jobs <- job:
	default:
		d.logger.Error(fmt.Sprintf("sync queue full, dropping %s for stream %s", operation, stream.ID))
	}
}

// Run consumes jobs until ctx is canceled.
func (d *Dispatcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case job := <-d.jobs:
			d.process(ctx, job)
		}
	}
}

func (d *Dispatcher) process(ctx context.Context, job model.SyncJob) {
	gateway := d.gatewayFor(&job.Stream)

	var (
		ref *model.ExternalEventRef
		err error
	)

	switch job.Operation {
	case model.SyncCreate:
		ref, err = gateway.CreateEvent(ctx, &job.Stream)
	case model.SyncCreateInstant:
		ref, err = gateway.CreateInstantEvent(ctx, &job.Stream)
	case model.SyncPatch:
		err = gateway.PatchEvent(ctx, &job.Stream)
	case model.SyncReschedule:
		ref, err = gateway.RescheduleEvent(ctx, &job.Stream)
	case model.SyncCancel:
		err = gateway.CancelEvent(ctx, &job.Stream)
	case model.SyncDelete:
		err = gateway.DeleteEvent(ctx, &job.Stream)
	case model.SyncAddAttendees:
		if !job.Stream.IsAnEvent() {
			// broadcasts have no guest list
			return
		}
		err = gateway.AddAttendees(ctx, &job.Stream, job.Guests)
	case model.SyncUpdateVisibility:
		err = gateway.UpdateVisibility(ctx, &job.Stream)
	default:
		d.logger.Error(fmt.Sprintf("unknown sync operation %q for stream %s", job.Operation, job.Stream.ID))
		return
	}

	if err != nil {
		// deliberate fire-and-forget: the local state stays as committed
		d.logger.Error(fmt.Sprintf("failed to sync %s for stream %s: %v", job.Operation, job.Stream.ID, err))
		return
	}

	if ref != nil {
		if err := d.repository.SetStreamExternalRef(ctx, job.Stream.ID, ref); err != nil {
			d.logger.Error(fmt.Sprintf("failed to save external ref for stream %s: %v", job.Stream.ID, err))
		}
	}
}

func (d *Dispatcher) gatewayFor(stream *model.Stream) EventGateway {
	if stream.IsAnEvent() {
		return d.calendar
	}
	return d.broadcast
}
