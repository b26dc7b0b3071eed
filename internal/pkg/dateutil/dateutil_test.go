package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{
			name:   "disjoint ranges",
			aStart: date(2024, 1, 10), aEnd: date(2024, 1, 15),
			bStart: date(2024, 1, 16), bEnd: date(2024, 1, 20),
			want: false,
		},
		{
			name:   "partial overlap",
			aStart: date(2024, 1, 10), aEnd: date(2024, 1, 15),
			bStart: date(2024, 1, 14), bEnd: date(2024, 1, 20),
			want: true,
		},
		{
			name:   "touching boundary counts as overlap",
			aStart: date(2024, 1, 10), aEnd: date(2024, 1, 15),
			bStart: date(2024, 1, 15), bEnd: date(2024, 1, 20),
			want: true,
		},
		{
			name:   "containment",
			aStart: date(2024, 1, 1), aEnd: date(2024, 1, 31),
			bStart: date(2024, 1, 10), bEnd: date(2024, 1, 12),
			want: true,
		},
		{
			name:   "zero-length range inside",
			aStart: date(2024, 1, 10), aEnd: date(2024, 1, 10),
			bStart: date(2024, 1, 10), bEnd: date(2024, 1, 10),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd)
			assert.Equal(t, tt.want, got)

			// Overlap is symmetric in its two ranges
			mirror := Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd)
			assert.Equal(t, got, mirror)
		})
	}
}

func TestDayBounds(t *testing.T) {
	t.Parallel()

	start, end := DayBounds(time.Date(2024, 3, 5, 14, 22, 8, 0, time.UTC))

	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 3, 5, 23, 59, 59, 999000000, time.UTC), end)
}

func TestDayBoundsNormalizesToUTC(t *testing.T) {
	t.Parallel()

	// 23:30 in UTC+2 is 21:30 UTC, so the UTC day is the 4th
	loc := time.FixedZone("UTC+2", 2*60*60)
	start, _ := DayBounds(time.Date(2024, 3, 4, 23, 30, 0, 0, loc))

	assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), start)
}

func TestDaysBetween(t *testing.T) {
	t.Parallel()

	days := DaysBetween(date(2024, 1, 30), date(2024, 2, 2))
	assert.Len(t, days, 4)
	assert.Equal(t, date(2024, 1, 30), days[0])
	assert.Equal(t, date(2024, 2, 2), days[3])

	assert.Len(t, DaysBetween(date(2024, 1, 10), date(2024, 1, 10)), 1)
	assert.Nil(t, DaysBetween(date(2024, 1, 10), date(2024, 1, 9)))
}

func TestLocalDay(t *testing.T) {
	t.Parallel()

	berlin, _ := time.LoadLocation("Europe/Berlin")

	// 23:30 UTC on the 4th is already the 5th in Berlin (winter, UTC+1)
	day := LocalDay(time.Date(2024, 1, 4, 23, 30, 0, 0, time.UTC), berlin)
	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, berlin), day)
}

func TestMinutesBetween(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, 125, MinutesBetween(start, start.Add(125*time.Minute)))
	// Seconds are truncated, not rounded
	assert.Equal(t, 10, MinutesBetween(start, start.Add(10*time.Minute+45*time.Second)))
}

func TestFormatMinutes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2,40", FormatMinutes(160))
	assert.Equal(t, "0,00", FormatMinutes(0))
	assert.Equal(t, "0,05", FormatMinutes(5))
	assert.Equal(t, "8,00", FormatMinutes(480))
	assert.Equal(t, "25,01", FormatMinutes(1501))
}
