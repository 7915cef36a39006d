package task

import "errors"

var (
	ErrTaskNotFound       = errors.New("Task not found")
	ErrTaskNotAssignable  = errors.New("Task is completed or cancelled and cannot be assigned")
	ErrNoAssignees        = errors.New("At least one assignee is required")
	ErrAssignmentConflict = errors.New("Assignment conflicts with existing bookings")
)
