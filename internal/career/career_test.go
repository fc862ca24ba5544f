package career

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestLabel(t *testing.T) {
	cases := []struct {
		name  string
		start string
		now   string
		want  string
	}{
		{"same day", "2022-05-01", "2022-05-01", "0년 0개월"},
		{"one month", "2022-05-01", "2022-06-01", "0년 1개월"},
		{"anniversary not reached", "2022-05-15", "2023-05-01", "0년 11개월"},
		{"anniversary reached", "2022-05-15", "2023-05-20", "1년 0개월"},
		{"multi year", "2020-01-10", "2023-07-01", "3년 5개월"},
		{"same month day not reached", "2022-05-15", "2022-05-20", "0년 0개월"},
		{"year boundary", "2021-12-31", "2022-01-31", "0년 1개월"},
		{"leap day start", "2020-02-29", "2021-02-28", "0년 11개월"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Label(date(t, tc.start), date(t, tc.now))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBetweenInvalidRange(t *testing.T) {
	_, err := Between(date(t, "2022-05-02"), date(t, "2022-05-01"))
	require.ErrorIs(t, err, ErrInvalidRange)

	_, err = Label(date(t, "2023-01-01"), date(t, "2022-12-31"))
	require.ErrorIs(t, err, ErrInvalidRange)
}

func TestBetweenIgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2022, 5, 1, 23, 59, 0, 0, time.UTC)
	now := time.Date(2022, 5, 1, 0, 0, 1, 0, time.UTC)

	d, err := Between(start, now)
	require.NoError(t, err)
	assert.Equal(t, Duration{}, d)
}

func TestBetweenProperties(t *testing.T) {
	start := date(t, "2019-03-17")
	for now := start; now.Before(date(t, "2026-03-17")); now = now.AddDate(0, 0, 11) {
		d, err := Between(start, now)
		require.NoError(t, err, now)

		assert.GreaterOrEqual(t, d.Years, 0)
		assert.GreaterOrEqual(t, d.Months, 0)
		assert.LessOrEqual(t, d.Months, 11)

		ny, nm, nd := now.Date()
		total := (ny-2019)*12 + int(nm-time.March)
		if nd < 17 {
			total--
		}
		assert.Equal(t, total, d.TotalMonths(), now)
	}
}

func TestParseDateMalformed(t *testing.T) {
	for _, in := range []string{"", "2022/05/01", "2022-13-01", "2022-02-30", "yesterday", " 2022-05-01 ", "2022-05-01\n"} {
		_, err := ParseDate(in)
		assert.ErrorIs(t, err, ErrMalformedDate, in)
	}
}

func TestDurationString(t *testing.T) {
	assert.Equal(t, "2년 3개월", Duration{Years: 2, Months: 3}.String())
	assert.Equal(t, 27, Duration{Years: 2, Months: 3}.TotalMonths())
}
