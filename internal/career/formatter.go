package career

import (
	"time"
)

// Formatter binds a fixed start date to a clock. It is safe for concurrent
// use; nothing in it changes after construction.
type Formatter struct {
	start time.Time
	now   func() time.Time
	loc   *time.Location
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithClock replaces time.Now as the source of the current instant.
func WithClock(now func() time.Time) Option {
	return func(f *Formatter) {
		if now != nil {
			f.now = now
		}
	}
}

// WithLocation sets the time zone used to decide which calendar day "now" is.
func WithLocation(loc *time.Location) Option {
	return func(f *Formatter) {
		if loc != nil {
			f.loc = loc
		}
	}
}

// NewFormatter parses start (YYYY-MM-DD) and returns a Formatter for it.
// The returned error wraps ErrMalformedDate when start cannot be parsed.
func NewFormatter(start string, opts ...Option) (*Formatter, error) {
	t, err := ParseDate(start)
	if err != nil {
		return nil, err
	}
	f := &Formatter{start: t, now: time.Now, loc: time.UTC}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Start returns the configured start date.
func (f *Formatter) Start() time.Time { return f.start }

// Now reads the clock once, in the formatter's location.
func (f *Formatter) Now() time.Time { return f.now().In(f.loc) }

// Current computes the duration up to the clock's current day.
func (f *Formatter) Current() (Duration, error) {
	return Between(f.start, f.Now())
}

// Label renders Current.
func (f *Formatter) Label() (string, error) {
	d, err := f.Current()
	if err != nil {
		return "", err
	}
	return d.String(), nil
}
