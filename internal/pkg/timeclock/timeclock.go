// Package timeclock converts date and clock-time ranges into working
// minutes. Minutes are the unit of record for all leave and quota
// arithmetic; days and hours are derived only for display.
package timeclock

import (
	"errors"
	"fmt"
	"math"
	"time"
)

const (
	// WorkMinutesPerDay is the nominal 8-hour workday.
	WorkMinutesPerDay = 480

	// Fixed lunch window, 12:00-13:00, excluded from partial-day leave.
	lunchStartMinute = 12 * 60
	lunchEndMinute   = 13 * 60

	// MinPartialLeaveMinutes is the shortest acceptable partial-day leave
	// after lunch subtraction.
	MinPartialLeaveMinutes = 30
)

var (
	ErrClockOrder   = errors.New("Start time must be before end time")
	ErrBelowMinimum = errors.New("Leave duration must be at least 30 minutes excluding the lunch break")
	ErrWindowOrder  = errors.New("Window start must not be after window end")
)

// IsWeekend reports whether the date falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	return t.Weekday() == time.Saturday || t.Weekday() == time.Sunday
}

// CountWorkDays counts the days in [start, end] inclusive, excluding
// weekends. Times of day are ignored.
func CountWorkDays(start, end time.Time) int {
	current := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	last := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location())

	days := 0
	for !current.After(last) {
		if !IsWeekend(current) {
			days++
		}
		current = current.AddDate(0, 0, 1)
	}
	return days
}

// LunchOverlapMinutes intersects the clock-time interval with the fixed
// lunch window and returns the overlap in minutes.
func LunchOverlapMinutes(startHour, startMinute, endHour, endMinute int) int {
	start := startHour*60 + startMinute
	end := endHour*60 + endMinute

	overlapStart := max(start, lunchStartMinute)
	overlapEnd := min(end, lunchEndMinute)

	if overlapEnd <= overlapStart {
		return 0
	}
	return overlapEnd - overlapStart
}

// ParseClock parses a "15:04" clock time.
func ParseClock(clock string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid clock time %q: %w", clock, err)
	}
	return t.Hour(), t.Minute(), nil
}

// LeaveMinutes computes the working minutes a leave request consumes.
//
// Full-day leave is valued at WorkMinutesPerDay per non-weekend day in
// [start, end]. Partial-day leave requires both clock times on a single
// day; the raw span is netted against the lunch window and floored at
// zero. Missing or malformed clock times yield zero; callers validate
// with ValidateLeaveTime before relying on the result.
func LeaveMinutes(start, end time.Time, isFullDay bool, startClock, endClock *string) int {
	if isFullDay {
		return CountWorkDays(start, end) * WorkMinutesPerDay
	}

	if startClock == nil || endClock == nil {
		return 0
	}

	sh, sm, err := ParseClock(*startClock)
	if err != nil {
		return 0
	}
	eh, em, err := ParseClock(*endClock)
	if err != nil {
		return 0
	}

	raw := (eh*60 + em) - (sh*60 + sm)
	net := raw - LunchOverlapMinutes(sh, sm, eh, em)
	if net < 0 {
		return 0
	}
	return net
}

// ValidateLeaveTime checks a partial-day clock range: the start must come
// before the end, and the net duration after lunch subtraction must reach
// the minimum threshold.
func ValidateLeaveTime(startClock, endClock string) error {
	sh, sm, err := ParseClock(startClock)
	if err != nil {
		return err
	}
	eh, em, err := ParseClock(endClock)
	if err != nil {
		return err
	}

	start := sh*60 + sm
	end := eh*60 + em
	if start >= end {
		return ErrClockOrder
	}

	net := (end - start) - LunchOverlapMinutes(sh, sm, eh, em)
	if net < MinPartialLeaveMinutes {
		return ErrBelowMinimum
	}
	return nil
}

// WindowsOverlap reports whether [aStart, aEnd] and [bStart, bEnd] overlap
// as closed intervals: touching boundaries count as overlapping. Every
// scheduling conflict branch shares this predicate so the boundary policy
// cannot diverge.
func WindowsOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}

// DateWindowsOverlap reports whether the date range [aStart, aEnd] overlaps
// [bStart, bEnd] at day granularity. Each date covers its whole calendar
// day, so a date-anchored range conflicts with any timed window touching
// one of its days.
func DateWindowsOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !dateOf(aStart).After(dateOf(bEnd)) && !dateOf(aEnd).Before(dateOf(bStart))
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// MinutesToDays converts working minutes to nominal workdays for display.
func MinutesToDays(minutes int) float64 {
	return float64(minutes) / WorkMinutesPerDay
}

// DaysToMinutes converts nominal workdays to working minutes. Fractional
// day figures round to the nearest minute.
func DaysToMinutes(days float64) int {
	return int(math.Round(days * WorkMinutesPerDay))
}
