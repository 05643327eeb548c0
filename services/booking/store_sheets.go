package booking

import (
	"context"
	"fmt"

	"brightsmile/config"
	"brightsmile/utils"

	"google.golang.org/api/sheets/v4"
)

// sheetStore appends bookings as one row per record to the configured
// Google Sheet.
type sheetStore struct{}

// NewSheetStore returns the spreadsheet Store. Configuration is read per
// attempt so the adapter degrades to unconfigured instead of failing when
// no sheet is set up.
func NewSheetStore() Store {
	return &sheetStore{}
}

func (s *sheetStore) Name() string { return "sheet" }

func (s *sheetStore) Attempt(ctx context.Context, record BookingRecord) (outcome StoreOutcome) {
	outcome.Store = s.Name()

	defer func() {
		if r := recover(); r != nil {
			outcome.Status = StoreFailure
			outcome.Err = fmt.Errorf("sheet store panic: %v", r)
		}
	}()

	sheetID := config.AppConfig.GoogleSheetID
	if sheetID == "" {
		outcome.Status = StoreUnconfigured
		outcome.Detail = "GOOGLE_SHEET_ID not set"
		return outcome
	}

	svc, err := utils.GetSheetsClient(ctx)
	if err != nil {
		outcome.Status = StoreFailure
		outcome.Err = err
		return outcome
	}

	row := &sheets.ValueRange{
		Values: [][]any{{
			record.Name,
			record.Email,
			record.Phone,
			record.FormattedDate,
			record.Treatment,
			record.CreatedAt,
		}},
	}

	_, err = svc.Spreadsheets.Values.
		Append(sheetID, config.AppConfig.GoogleSheetRange, row).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		outcome.Status = StoreFailure
		outcome.Err = err
		return outcome
	}

	outcome.Status = StoreSuccess
	outcome.Detail = "row appended"
	return outcome
}
