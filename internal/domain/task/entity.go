package task

import "time"

type Status string

const (
	StatusWaiting    Status = "waiting"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
	StatusCancelled  Status = "cancelled"
)

// Active reports whether a task in this status occupies its time window.
// Done and cancelled tasks never block scheduling.
func (s Status) Active() bool {
	return s == StatusWaiting || s == StatusInProgress
}

type Task struct {
	ID          string
	Title       string
	Description *string
	Status      Status

	StartTime time.Time
	EndTime   time.Time

	// AssigneeIDs is ordered; the first entry is the task lead.
	AssigneeIDs []string
	VehicleID   *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Lead returns the lead technician, if any assignee exists.
func (t Task) Lead() *string {
	if len(t.AssigneeIDs) == 0 {
		return nil
	}
	return &t.AssigneeIDs[0]
}
