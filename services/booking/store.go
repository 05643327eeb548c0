package booking

import "context"

// OutcomeStatus tags the result of one persistence attempt.
type OutcomeStatus string

const (
	// StoreSuccess means the backend accepted the record.
	StoreSuccess OutcomeStatus = "success"
	// StoreFailure means the attempt ran and the backend or transport failed.
	StoreFailure OutcomeStatus = "failure"
	// StoreUnconfigured means the backend is not set up; it did not
	// participate and must not count against the booking.
	StoreUnconfigured OutcomeStatus = "unconfigured"
)

// StoreOutcome is the settled result of one store adapter.
type StoreOutcome struct {
	Store  string
	Status OutcomeStatus
	Detail string
	Err    error
}

func (o StoreOutcome) Succeeded() bool {
	return o.Status == StoreSuccess
}

// Store wraps one persistence backend. Attempt makes at most one write and
// never panics or errors past this boundary; every failure mode is folded
// into the returned outcome.
type Store interface {
	Name() string
	Attempt(ctx context.Context, record BookingRecord) StoreOutcome
}
