package response

import (
	"errors"
	"net/http"

	"github.com/fieldstack/fieldops-backend-go/internal/domain/leave"
	"github.com/fieldstack/fieldops-backend-go/internal/domain/task"
	"github.com/fieldstack/fieldops-backend-go/internal/domain/user"
	"github.com/fieldstack/fieldops-backend-go/internal/domain/vehicle"
	"github.com/fieldstack/fieldops-backend-go/internal/pkg/timeclock"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	switch {
	// Auth / user domain errors
	case errors.Is(err, user.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Validation errors
	case errors.Is(err, timeclock.ErrClockOrder),
		errors.Is(err, timeclock.ErrBelowMinimum),
		errors.Is(err, timeclock.ErrWindowOrder),
		errors.Is(err, leave.ErrInvalidLeaveWindow),
		errors.Is(err, leave.ErrPartialDaySpan),
		errors.Is(err, leave.ErrMissingClockTimes),
		errors.Is(err, leave.ErrUnknownCategory),
		errors.Is(err, task.ErrNoAssignees):
		BadRequest(w, err.Error())

	// Authorization errors
	case errors.Is(err, leave.ErrNotAuthorized):
		Forbidden(w, err.Error())

	// State errors
	case errors.Is(err, leave.ErrLeaveAlreadyProcessed),
		errors.Is(err, leave.ErrOverlappingLeave),
		errors.Is(err, task.ErrTaskNotAssignable),
		errors.Is(err, vehicle.ErrVehicleInactive):
		Conflict(w, err.Error())

	// Not found
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, task.ErrTaskNotFound):
		NotFound(w, "Task not found")
	case errors.Is(err, vehicle.ErrVehicleNotFound):
		NotFound(w, "Vehicle not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
