// Package assignment binds technicians and a vehicle to a task, guarded by
// the conflict detector.
package assignment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fieldstack/fieldops-backend-go/internal/domain/task"
	"github.com/fieldstack/fieldops-backend-go/internal/domain/vehicle"
	"github.com/fieldstack/fieldops-backend-go/internal/pkg/database"
	"github.com/fieldstack/fieldops-backend-go/internal/service/conflict"
)

type Service struct {
	tx       database.Transactor
	detector *conflict.Detector
	tasks    task.Repository
	vehicles vehicle.Repository
	logger   *slog.Logger
}

func NewService(
	tx database.Transactor,
	detector *conflict.Detector,
	taskRepository task.Repository,
	vehicleRepository vehicle.Repository,
	logger *slog.Logger,
) *Service {
	return &Service{
		tx:       tx,
		detector: detector,
		tasks:    taskRepository,
		vehicles: vehicleRepository,
		logger:   logger,
	}
}

// Assign replaces the task's whole assignment set with userIDs, in order;
// the first user becomes the lead. A blocking user or leave conflict
// aborts before anything is written and the report is returned to the
// caller. Vehicle-only conflicts come back as advisory warnings on a
// successful assignment.
func (s *Service) Assign(ctx context.Context, taskID string, userIDs []string, vehicleID *string) (conflict.Report, error) {
	if len(userIDs) == 0 {
		return conflict.Report{}, task.ErrNoAssignees
	}

	t, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return conflict.Report{}, err
	}
	if !t.Status.Active() {
		return conflict.Report{}, task.ErrTaskNotAssignable
	}

	if vehicleID != nil {
		v, err := s.vehicles.GetByID(ctx, *vehicleID)
		if err != nil {
			return conflict.Report{}, err
		}
		if !v.IsActive {
			return conflict.Report{}, vehicle.ErrVehicleInactive
		}
	}

	report, err := s.detector.Detect(ctx, conflict.Input{
		Start:         t.StartTime,
		End:           t.EndTime,
		UserIDs:       userIDs,
		VehicleID:     vehicleID,
		ExcludeTaskID: taskID,
	})
	if err != nil {
		return conflict.Report{}, fmt.Errorf("failed to run conflict detection: %w", err)
	}

	if report.HasConflict {
		return report, task.ErrAssignmentConflict
	}

	err = s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.tasks.ReplaceAssignments(txCtx, taskID, userIDs); err != nil {
			return err
		}
		return s.tasks.SetVehicle(txCtx, taskID, vehicleID)
	})
	if err != nil {
		return conflict.Report{}, fmt.Errorf("failed to write assignments: %w", err)
	}

	if len(report.VehicleConflicts) > 0 {
		s.logger.Info("assignment committed with vehicle warnings",
			"task_id", taskID,
			"vehicle_conflicts", len(report.VehicleConflicts),
		)
	}

	return report, nil
}

// CheckConflicts runs the detector for a task's window without writing
// anything, for callers that want to preview a selection.
func (s *Service) CheckConflicts(ctx context.Context, taskID string, userIDs []string, vehicleID *string) (conflict.Report, error) {
	t, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return conflict.Report{}, err
	}

	return s.detector.Detect(ctx, conflict.Input{
		Start:         t.StartTime,
		End:           t.EndTime,
		UserIDs:       userIDs,
		VehicleID:     vehicleID,
		ExcludeTaskID: taskID,
	})
}
