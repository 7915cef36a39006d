package leave

import "errors"

var (
	ErrLeaveRequestNotFound  = errors.New("Leave request not found")
	ErrLeaveAlreadyProcessed = errors.New("Leave request already processed")
	ErrNotAuthorized         = errors.New("Not authorized to act on this leave request")
	ErrOverlappingLeave      = errors.New("Overlapping leave request exists")
	ErrInvalidLeaveWindow    = errors.New("Leave start date must not be after end date")
	ErrPartialDaySpan        = errors.New("Partial-day leave must start and end on the same day")
	ErrMissingClockTimes     = errors.New("Partial-day leave requires start and end times")
	ErrUnknownCategory       = errors.New("Unknown leave category")
)
