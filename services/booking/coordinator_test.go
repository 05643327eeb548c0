package booking

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"brightsmile/models"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubStore settles with a fixed outcome after an optional delay.
type stubStore struct {
	name   string
	status OutcomeStatus
	delay  time.Duration
	calls  atomic.Int32
}

func (s *stubStore) Name() string { return s.name }

func (s *stubStore) Attempt(ctx context.Context, record BookingRecord) StoreOutcome {
	s.calls.Add(1)
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return StoreOutcome{Store: s.name, Status: StoreFailure, Err: ctx.Err()}
		}
	}
	return StoreOutcome{Store: s.name, Status: s.status, Detail: "stub"}
}

func newTestService(db, sheet Store, notifier Notifier) *DefaultBookingService {
	return &DefaultBookingService{
		DBStore:      db,
		SheetStore:   sheet,
		Notifier:     notifier,
		ClinicName:   "Happy Teeth Clinic",
		Location:     time.UTC,
		StoreTimeout: time.Second,
		Logger:       zap.NewNop(),
	}
}

func TestPersistedVerdictMatrix(t *testing.T) {
	statuses := []OutcomeStatus{StoreSuccess, StoreFailure, StoreUnconfigured}

	for _, db := range statuses {
		for _, sheet := range statuses {
			want := db == StoreSuccess || sheet == StoreSuccess
			got := Persisted(
				StoreOutcome{Store: "database", Status: db},
				StoreOutcome{Store: "sheet", Status: sheet},
			)
			require.Equalf(t, want, got, "db=%s sheet=%s", db, sheet)
		}
	}
}

func TestPersistRunsBothStores(t *testing.T) {
	db := &stubStore{name: "database", status: StoreFailure}
	sheet := &stubStore{name: "sheet", status: StoreSuccess}
	svc := newTestService(db, sheet, nil)

	dbOut, sheetOut := svc.Persist(context.Background(), BookingRecord{Name: "Alice"})

	require.Equal(t, StoreFailure, dbOut.Status)
	require.Equal(t, StoreSuccess, sheetOut.Status)
	require.EqualValues(t, 1, db.calls.Load())
	require.EqualValues(t, 1, sheet.calls.Load())
}

func TestPersistWaitsForSlowerStore(t *testing.T) {
	const slow = 120 * time.Millisecond

	// One store settles immediately with a failure; the other is slow. The
	// join must still observe the slow store's success.
	db := &stubStore{name: "database", status: StoreFailure}
	sheet := &stubStore{name: "sheet", status: StoreSuccess, delay: slow}
	svc := newTestService(db, sheet, nil)

	start := time.Now()
	dbOut, sheetOut := svc.Persist(context.Background(), BookingRecord{})
	elapsed := time.Since(start)

	require.GreaterOrEqual(t, elapsed, slow)
	require.Equal(t, StoreFailure, dbOut.Status)
	require.Equal(t, StoreSuccess, sheetOut.Status)
}

func TestPersistTimesOutHungStore(t *testing.T) {
	db := &stubStore{name: "database", status: StoreSuccess, delay: time.Minute}
	sheet := &stubStore{name: "sheet", status: StoreSuccess}
	svc := newTestService(db, sheet, nil)
	svc.StoreTimeout = 50 * time.Millisecond

	dbOut, sheetOut := svc.Persist(context.Background(), BookingRecord{})

	require.Equal(t, StoreFailure, dbOut.Status)
	require.ErrorIs(t, dbOut.Err, context.DeadlineExceeded)
	require.Equal(t, StoreSuccess, sheetOut.Status)
}

// panickyRepo stands in for a driver blowing up mid-write.
type panickyRepo struct{}

func (panickyRepo) Create(ctx context.Context, appt models.Appointment) (string, error) {
	panic("driver exploded")
}

func (panickyRepo) ListRecent(ctx context.Context, limit int64) ([]models.Appointment, error) {
	panic("driver exploded")
}

func TestDatabaseStoreAdapterBoundary(t *testing.T) {
	t.Run("nil repo reports unconfigured without io", func(t *testing.T) {
		out := NewDatabaseStore(nil).Attempt(context.Background(), BookingRecord{})
		require.Equal(t, StoreUnconfigured, out.Status)
		require.NoError(t, out.Err)
	})

	t.Run("panic surfaces as failure", func(t *testing.T) {
		store := NewDatabaseStore(panickyRepo{})
		var out StoreOutcome
		require.NotPanics(t, func() {
			out = store.Attempt(context.Background(), BookingRecord{})
		})
		require.Equal(t, StoreFailure, out.Status)
		require.Error(t, out.Err)
	})
}
