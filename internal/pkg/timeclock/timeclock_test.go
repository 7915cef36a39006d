package timeclock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string { return &s }

func TestIsWeekend(t *testing.T) {
	t.Parallel()

	assert.True(t, IsWeekend(date(2025, time.June, 7)))  // Saturday
	assert.True(t, IsWeekend(date(2025, time.June, 8)))  // Sunday
	assert.False(t, IsWeekend(date(2025, time.June, 9))) // Monday
}

func TestCountWorkDays(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected int
	}{
		{"full work week", date(2025, time.June, 2), date(2025, time.June, 6), 5},
		{"single day", date(2025, time.June, 4), date(2025, time.June, 4), 1},
		{"weekend only", date(2025, time.June, 7), date(2025, time.June, 8), 0},
		{"spanning weekend", date(2025, time.June, 6), date(2025, time.June, 9), 2},
		{"two full weeks", date(2025, time.June, 2), date(2025, time.June, 13), 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CountWorkDays(tt.start, tt.end))
		})
	}
}

func TestLunchOverlapMinutes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                   string
		sh, sm, eh, em, expect int
	}{
		{"no overlap morning", 9, 0, 11, 0, 0},
		{"no overlap afternoon", 14, 0, 17, 0, 0},
		{"touching lunch start", 9, 0, 12, 0, 0},
		{"fully inside lunch", 12, 10, 12, 50, 40},
		{"covers entire lunch", 11, 0, 14, 0, 60},
		{"partial overlap start", 11, 45, 12, 30, 30},
		{"partial overlap end", 12, 30, 13, 15, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, LunchOverlapMinutes(tt.sh, tt.sm, tt.eh, tt.em))
		})
	}
}

func TestLeaveMinutes_FullDay(t *testing.T) {
	t.Parallel()

	// Five weekdays at 480 minutes each.
	got := LeaveMinutes(date(2025, time.June, 2), date(2025, time.June, 6), true, nil, nil)
	assert.Equal(t, 5*WorkMinutesPerDay, got)

	// Entirely within a weekend.
	got = LeaveMinutes(date(2025, time.June, 7), date(2025, time.June, 8), true, nil, nil)
	assert.Equal(t, 0, got)

	// Weekend days inside the range contribute nothing.
	got = LeaveMinutes(date(2025, time.June, 6), date(2025, time.June, 9), true, nil, nil)
	assert.Equal(t, 2*WorkMinutesPerDay, got)
}

func TestLeaveMinutes_PartialDay(t *testing.T) {
	t.Parallel()

	day := date(2025, time.June, 4)

	tests := []struct {
		name       string
		start, end *string
		expected   int
	}{
		{"morning block", strPtr("09:00"), strPtr("11:00"), 120},
		{"crosses lunch", strPtr("11:00"), strPtr("14:00"), 120},
		{"fully inside lunch", strPtr("12:10"), strPtr("12:50"), 0},
		{"missing start time", nil, strPtr("14:00"), 0},
		{"missing end time", strPtr("09:00"), nil, 0},
		{"malformed clock", strPtr("9am"), strPtr("11:00"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LeaveMinutes(day, day, false, tt.start, tt.end))
		})
	}
}

func TestValidateLeaveTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		start, end string
		wantErr    error
	}{
		{"valid morning block", "09:00", "11:00", nil},
		{"valid across lunch", "11:45", "13:15", nil}, // 90 raw - 60 lunch = 30
		{"reversed order", "14:00", "09:00", ErrClockOrder},
		{"equal times", "09:00", "09:00", ErrClockOrder},
		{"below minimum", "09:00", "09:20", ErrBelowMinimum},
		{"eaten by lunch", "11:50", "13:05", ErrBelowMinimum}, // 75 raw - 60 lunch = 15
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLeaveTime(tt.start, tt.end)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}

	err := ValidateLeaveTime("not-a-time", "11:00")
	require.Error(t, err)
}

func TestWindowsOverlap(t *testing.T) {
	t.Parallel()

	jan := func(d int) time.Time { return date(2025, time.January, d) }

	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     time.Time
		expected                       bool
	}{
		{"disjoint before", jan(1), jan(5), jan(6), jan(10), false},
		{"disjoint after", jan(6), jan(10), jan(1), jan(5), false},
		{"touching boundary counts", jan(10), jan(15), jan(15), jan(20), true},
		{"contained", jan(5), jan(7), jan(1), jan(10), true},
		{"identical", jan(1), jan(5), jan(1), jan(5), true},
		{"partial overlap", jan(1), jan(7), jan(5), jan(10), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WindowsOverlap(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
		})
	}
}

func TestDateWindowsOverlap(t *testing.T) {
	t.Parallel()

	jan := func(d int) time.Time { return date(2025, time.January, d) }
	at := func(d, h int) time.Time { return time.Date(2025, time.January, d, h, 0, 0, 0, time.UTC) }

	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		expected                   bool
	}{
		{"timed window on last covered day", jan(13), jan(15), at(15, 9), at(15, 17), true},
		{"timed window on first covered day", jan(13), jan(15), at(13, 18), at(13, 20), true},
		{"timed window the day after", jan(13), jan(15), at(16, 9), at(16, 17), false},
		{"timed window the day before", jan(13), jan(15), at(12, 9), at(12, 17), false},
		{"date ranges touching", jan(10), jan(15), jan(15), jan(20), true},
		{"date ranges disjoint", jan(10), jan(15), jan(16), jan(20), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DateWindowsOverlap(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
		})
	}
}

func TestDaysToMinutesRoundsFractions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 336, DaysToMinutes(0.7))
	assert.Equal(t, 240, DaysToMinutes(0.5))
	assert.Equal(t, 480, DaysToMinutes(1))
}

func TestDayMinuteRoundTrip(t *testing.T) {
	t.Parallel()

	for _, n := range []float64{0, 1, 2.5, 10, 365} {
		assert.Equal(t, n, MinutesToDays(DaysToMinutes(n)))
	}
}
