package booking

import (
	"time"
)

// BookingRecord is the canonical unit of work. It is built once, never
// mutated, and handed by value to both stores and the notifier so every
// destination sees identical data.
type BookingRecord struct {
	Name      string
	Email     string
	Phone     string
	Treatment string
	// Date keeps the raw normalized input; FormattedDate and CreatedAt are
	// the clinic-zone display forms written to the stores.
	Date          string
	FormattedDate string
	CreatedAt     string
}

// naiveLayouts carry no zone information; values matching them are read as
// clinic-local wall time, not UTC.
var naiveLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

const displayLayout = "January 2, 2006 at 3:04 PM"

// FormatDateTime renders value as a long-form date in loc. A value that
// cannot be parsed comes back unchanged: malformed but present data is
// still recorded for manual follow-up instead of being discarded.
func FormatDateTime(value string, loc *time.Location) string {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.In(loc).Format(displayLayout)
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t.Format(displayLayout)
		}
	}
	return value
}

// BuildRecord normalizes the five required parameters and assembles the
// booking record. It fails with MissingFieldsError when any normalized
// field is empty; the caller must not reach the stores in that case.
func BuildRecord(params map[string]any, loc *time.Location, now time.Time) (BookingRecord, error) {
	fields := map[string]string{
		"name":      NormalizeParam(params["name"]),
		"email":     NormalizeParam(params["email"]),
		"phone":     NormalizeParam(params["phone"]),
		"date":      NormalizeParam(params["date"]),
		"treatment": NormalizeParam(params["treatment"]),
	}

	var missing []string
	for _, name := range []string{"name", "email", "phone", "date", "treatment"} {
		if fields[name] == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return BookingRecord{}, NewMissingFieldsError(missing...)
	}

	return BookingRecord{
		Name:          fields["name"],
		Email:         fields["email"],
		Phone:         fields["phone"],
		Treatment:     fields["treatment"],
		Date:          fields["date"],
		FormattedDate: FormatDateTime(fields["date"], loc),
		CreatedAt:     now.In(loc).Format(displayLayout),
	}, nil
}
