package booking

import (
	"context"
	"time"

	"brightsmile/config"
	"brightsmile/utils"

	"go.uber.org/zap"
)

// BookingService handles one booking intent per call: normalize the raw
// parameters, persist the record to both stores, and reply to the agent.
type BookingService interface {
	ConfirmBooking(ctx context.Context, params map[string]any) string
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	DBStore      Store
	SheetStore   Store
	Notifier     Notifier
	ClinicName   string
	Location     *time.Location
	StoreTimeout time.Duration
	Logger       *zap.Logger

	// NotifyDone, when set, receives one value after a detached
	// notification attempt finishes. Used by tests; nil in production.
	NotifyDone chan struct{}
}

// NewDefaultBookingService wires the service from the loaded configuration.
func NewDefaultBookingService(db Store, sheet Store, notifier Notifier) *DefaultBookingService {
	logger := utils.GetLogger()

	loc, err := time.LoadLocation(config.AppConfig.ClinicTimezone)
	if err != nil {
		logger.Warn("Invalid CLINIC_TIMEZONE, falling back to UTC",
			zap.String("timezone", config.AppConfig.ClinicTimezone), zap.Error(err))
		loc = time.UTC
	}

	timeout := time.Duration(config.AppConfig.StoreTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &DefaultBookingService{
		DBStore:      db,
		SheetStore:   sheet,
		Notifier:     notifier,
		ClinicName:   config.AppConfig.ClinicName,
		Location:     loc,
		StoreTimeout: timeout,
		Logger:       logger,
	}
}
