package booking

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Persist writes the record to both stores concurrently and waits for both
// to settle. A slow or failing store never hides the other's outcome, and
// the first failure never short-circuits the join: the two backends are
// redundant sinks, and the system keeps working with either one down or
// unconfigured. Each attempt runs under its own bounded timeout.
func (s *DefaultBookingService) Persist(ctx context.Context, record BookingRecord) (StoreOutcome, StoreOutcome) {
	var wg sync.WaitGroup
	var dbOutcome, sheetOutcome StoreOutcome

	attempt := func(store Store, out *StoreOutcome) {
		defer wg.Done()
		attemptCtx, cancel := context.WithTimeout(ctx, s.StoreTimeout)
		defer cancel()
		*out = store.Attempt(attemptCtx, record)
	}

	wg.Add(2)
	go attempt(s.DBStore, &dbOutcome)
	go attempt(s.SheetStore, &sheetOutcome)
	wg.Wait()

	s.logOutcome(dbOutcome)
	s.logOutcome(sheetOutcome)

	return dbOutcome, sheetOutcome
}

func (s *DefaultBookingService) logOutcome(o StoreOutcome) {
	switch o.Status {
	case StoreSuccess:
		s.Logger.Info("Store write succeeded",
			zap.String("store", o.Store), zap.String("detail", o.Detail))
	case StoreUnconfigured:
		s.Logger.Info("Store skipped, not configured",
			zap.String("store", o.Store), zap.String("reason", o.Detail))
	default:
		s.Logger.Error("Store write failed",
			zap.String("store", o.Store), zap.Error(o.Err))
	}
}

// Persisted applies the verdict rule: the booking counts as durable when at
// least one store accepted it.
func Persisted(db, sheet StoreOutcome) bool {
	return db.Succeeded() || sheet.Succeeded()
}
