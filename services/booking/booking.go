package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

const missingFieldsPrompt = "I need your name, email, phone, treatment, and appointment date to complete the booking."

// ConfirmBooking runs one booking intent end to end: normalize and build
// the record, persist it to both stores, derive the verdict, and reply.
// On a persisted booking a confirmation email is dispatched on a detached
// goroutine after the reply is decided; its outcome never changes the reply.
func (s *DefaultBookingService) ConfirmBooking(ctx context.Context, params map[string]any) string {
	record, err := BuildRecord(params, s.Location, time.Now())
	if err != nil {
		var missing *MissingFieldsError
		if errors.As(err, &missing) {
			s.Logger.Info("Booking rejected, incomplete parameters",
				zap.Strings("missing", missing.Fields))
		}
		return missingFieldsPrompt
	}

	s.Logger.Info("Booking request",
		zap.String("name", record.Name),
		zap.String("treatment", record.Treatment),
		zap.String("date", record.Date))

	dbOutcome, sheetOutcome := s.Persist(ctx, record)

	if !Persisted(dbOutcome, sheetOutcome) {
		// Neither store accepted the booking; keep the full record in the
		// log so an operator can follow up manually.
		s.Logger.Error("Booking not persisted to any store",
			zap.String("name", record.Name),
			zap.String("email", record.Email),
			zap.String("phone", record.Phone),
			zap.String("treatment", record.Treatment),
			zap.String("date", record.FormattedDate))
		return fmt.Sprintf(
			"Hi %s, there was an issue booking your dental appointment for %s on %s. Please contact support.",
			record.Name, record.Treatment, record.FormattedDate,
		)
	}

	reply := fmt.Sprintf(
		"Thank you %s. Your dental appointment for %s on %s has been booked.",
		record.Name, record.Treatment, record.FormattedDate,
	)

	go s.dispatchConfirmation(record)

	return reply
}

// dispatchConfirmation runs the best-effort notification. Errors are logged
// and never joined back into the request.
func (s *DefaultBookingService) dispatchConfirmation(record BookingRecord) {
	defer func() {
		if r := recover(); r != nil {
			s.Logger.Error("Notifier panic", zap.Any("error", r))
		}
		if s.NotifyDone != nil {
			s.NotifyDone <- struct{}{}
		}
	}()

	if s.Notifier == nil || !s.Notifier.Configured() {
		return
	}

	if err := s.Notifier.Send(record); err != nil {
		s.Logger.Error("Error sending confirmation email",
			zap.String("email", record.Email), zap.Error(err))
		return
	}
	s.Logger.Info("Confirmation email sent", zap.String("email", record.Email))
}
