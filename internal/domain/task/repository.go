package task

import (
	"context"
	"time"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (Task, error)

	// FindActiveByAssignees returns active tasks assigned to any of the
	// given users whose window overlaps [start, end] (closed interval).
	// excludeTaskID may be empty.
	FindActiveByAssignees(ctx context.Context, userIDs []string, start, end time.Time, excludeTaskID string) ([]Task, error)

	// FindActiveByVehicle returns active tasks using the vehicle whose
	// window overlaps [start, end] (closed interval).
	FindActiveByVehicle(ctx context.Context, vehicleID string, start, end time.Time, excludeTaskID string) ([]Task, error)

	// ReplaceAssignments removes all existing assignments for the task and
	// inserts the given users in order; the first user becomes the lead.
	ReplaceAssignments(ctx context.Context, taskID string, userIDs []string) error

	SetVehicle(ctx context.Context, taskID string, vehicleID *string) error
}
