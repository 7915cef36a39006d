// Package conflict scans committed tasks and approved leave for scheduling
// overlaps before assignments are written.
package conflict

import (
	"context"
	"fmt"
	"time"

	"github.com/fieldstack/fieldops-backend-go/internal/domain/leave"
	"github.com/fieldstack/fieldops-backend-go/internal/domain/task"
	"github.com/fieldstack/fieldops-backend-go/internal/pkg/timeclock"
)

// Kind tags a conflict entry by its origin so callers can distinguish task
// bookings from approved leave without sentinel ids.
type Kind string

const (
	KindTask  Kind = "TASK"
	KindLeave Kind = "LEAVE"
)

type Entry struct {
	Kind           Kind      `json:"kind"`
	TaskID         *string   `json:"task_id,omitempty"`
	LeaveRequestID *string   `json:"leave_request_id,omitempty"`
	Title          string    `json:"title"`
	Start          time.Time `json:"start"`
	End            time.Time `json:"end"`
}

type UserConflict struct {
	UserID  string  `json:"user_id"`
	Entries []Entry `json:"entries"`
}

type VehicleConflict struct {
	VehicleID string  `json:"vehicle_id"`
	Entries   []Entry `json:"entries"`
}

// Report is the structured overlap result. User conflicts (task or leave)
// are blocking; vehicle conflicts are advisory and never set HasConflict.
type Report struct {
	HasConflict      bool              `json:"has_conflict"`
	UserConflicts    []UserConflict    `json:"user_conflicts"`
	VehicleConflicts []VehicleConflict `json:"vehicle_conflicts"`
}

type Input struct {
	Start   time.Time
	End     time.Time
	UserIDs []string

	VehicleID *string

	// ExcludeTaskID skips the task being edited so it never conflicts with
	// itself. Empty for new bookings.
	ExcludeTaskID string
}

type Detector struct {
	tasks  task.Repository
	leaves leave.Repository
}

func NewDetector(taskRepository task.Repository, leaveRepository leave.Repository) *Detector {
	return &Detector{tasks: taskRepository, leaves: leaveRepository}
}

// Detect builds a conflict report for the candidate window. Overlap is
// closed-interval everywhere: a task ending exactly when the candidate
// window starts still conflicts, and leave is matched at day granularity.
func (d *Detector) Detect(ctx context.Context, in Input) (Report, error) {
	if in.Start.After(in.End) {
		return Report{}, timeclock.ErrWindowOrder
	}

	report := Report{}

	// Per-user entries accumulate in first-seen order.
	entriesByUser := make(map[string][]Entry)
	var userOrder []string
	addUserEntry := func(userID string, entry Entry) {
		if _, seen := entriesByUser[userID]; !seen {
			userOrder = append(userOrder, userID)
		}
		entriesByUser[userID] = append(entriesByUser[userID], entry)
	}

	if len(in.UserIDs) > 0 {
		candidates := make(map[string]bool, len(in.UserIDs))
		for _, id := range in.UserIDs {
			candidates[id] = true
		}

		tasks, err := d.tasks.FindActiveByAssignees(ctx, in.UserIDs, in.Start, in.End, in.ExcludeTaskID)
		if err != nil {
			return Report{}, fmt.Errorf("failed to query overlapping tasks: %w", err)
		}

		for _, tk := range tasks {
			if !timeclock.WindowsOverlap(tk.StartTime, tk.EndTime, in.Start, in.End) {
				continue
			}
			taskID := tk.ID
			entry := Entry{
				Kind:   KindTask,
				TaskID: &taskID,
				Title:  tk.Title,
				Start:  tk.StartTime,
				End:    tk.EndTime,
			}
			// A task blocks every candidate user it is assigned to; one
			// user may collect entries from several overlapping tasks.
			for _, assignee := range tk.AssigneeIDs {
				if candidates[assignee] {
					addUserEntry(assignee, entry)
				}
			}
		}

		leaves, err := d.leaves.FindApprovedOverlapping(ctx, in.UserIDs, in.Start, in.End)
		if err != nil {
			return Report{}, fmt.Errorf("failed to query overlapping leave: %w", err)
		}

		for _, lr := range leaves {
			// Leave dates cover their whole day; a midnight-anchored end
			// date must still block a timed window later that day.
			if !timeclock.DateWindowsOverlap(lr.StartDate, lr.EndDate, in.Start, in.End) {
				continue
			}
			leaveID := lr.ID
			addUserEntry(lr.RequesterID, Entry{
				Kind:           KindLeave,
				LeaveRequestID: &leaveID,
				Title:          leave.Labels[lr.Category],
				Start:          lr.StartDate,
				End:            lr.EndDate,
			})
		}
	}

	for _, userID := range userOrder {
		report.UserConflicts = append(report.UserConflicts, UserConflict{
			UserID:  userID,
			Entries: entriesByUser[userID],
		})
	}

	if in.VehicleID != nil {
		tasks, err := d.tasks.FindActiveByVehicle(ctx, *in.VehicleID, in.Start, in.End, in.ExcludeTaskID)
		if err != nil {
			return Report{}, fmt.Errorf("failed to query vehicle bookings: %w", err)
		}

		vc := VehicleConflict{VehicleID: *in.VehicleID}
		for _, tk := range tasks {
			if !timeclock.WindowsOverlap(tk.StartTime, tk.EndTime, in.Start, in.End) {
				continue
			}
			taskID := tk.ID
			vc.Entries = append(vc.Entries, Entry{
				Kind:   KindTask,
				TaskID: &taskID,
				Title:  tk.Title,
				Start:  tk.StartTime,
				End:    tk.EndTime,
			})
		}
		if len(vc.Entries) > 0 {
			report.VehicleConflicts = append(report.VehicleConflicts, vc)
		}
	}

	// Vehicle-only conflicts are advisory and never flip this flag.
	report.HasConflict = len(report.UserConflicts) > 0

	return report, nil
}
