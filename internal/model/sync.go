package model

// SyncOperation names one mutation submitted to the external provider.
type SyncOperation string

const (
	SyncCreate           SyncOperation = "create"
	SyncCreateInstant    SyncOperation = "create_instant"
	SyncPatch            SyncOperation = "patch"
	SyncReschedule       SyncOperation = "reschedule"
	SyncCancel           SyncOperation = "cancel"
	SyncDelete           SyncOperation = "delete"
	SyncAddAttendees     SyncOperation = "add_attendees"
	SyncUpdateVisibility SyncOperation = "update_visibility"
)

// SyncJob is one unit of work for the background dispatcher. The stream is
// copied by value: the job must not observe mutations made after enqueue.
type SyncJob struct {
	Operation SyncOperation
	Stream    Stream
	Guests    []Guest
}
