// Package career computes how long someone has been working, expressed in
// whole years and months, and renders it as a short Korean label such as
// "2년 3개월".
//
// The arithmetic in Between is pure. Formatter is the one place that reads
// the current time.
package career

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the accepted form of a configured start date.
const DateLayout = "2006-01-02"

var (
	// ErrInvalidRange is returned when "now" falls before the start date.
	ErrInvalidRange = errors.New("now precedes start date")
	// ErrMalformedDate is returned when a start date cannot be parsed.
	ErrMalformedDate = errors.New("malformed date")
)

// Duration is an elapsed span in whole years and remaining whole months.
type Duration struct {
	Years  int `json:"years"`
	Months int `json:"months"`
}

// TotalMonths returns the span as a single month count.
func (d Duration) TotalMonths() int {
	return d.Years*12 + d.Months
}

// String renders the label, always with both units: "0년 0개월".
func (d Duration) String() string {
	return fmt.Sprintf("%d년 %d개월", d.Years, d.Months)
}

// ParseDate parses a YYYY-MM-DD date at midnight UTC. Surrounding
// whitespace is rejected.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrMalformedDate, s, err)
	}
	return t, nil
}

// Between returns the whole years and months elapsed from start to now.
// Only the calendar date of each value matters; the time of day and the
// location are ignored. A month is only counted once now's day of month
// has reached start's.
func Between(start, now time.Time) (Duration, error) {
	sy, sm, sd := start.Date()
	ny, nm, nd := now.Date()

	if before(ny, nm, nd, sy, sm, sd) {
		return Duration{}, fmt.Errorf("%w: start %s, now %s",
			ErrInvalidRange, start.Format(DateLayout), now.Format(DateLayout))
	}

	total := (ny-sy)*12 + int(nm-sm)
	if nd < sd {
		total--
	}
	total = max(total, 0)

	return Duration{Years: total / 12, Months: total % 12}, nil
}

// Label is Between rendered as a string.
func Label(start, now time.Time) (string, error) {
	d, err := Between(start, now)
	if err != nil {
		return "", err
	}
	return d.String(), nil
}

func before(y1 int, m1 time.Month, d1 int, y2 int, m2 time.Month, d2 int) bool {
	if y1 != y2 {
		return y1 < y2
	}
	if m1 != m2 {
		return m1 < m2
	}
	return d1 < d2
}
