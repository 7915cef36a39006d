package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/fieldstack/fieldops-backend-go/internal/domain/task"
	"github.com/fieldstack/fieldops-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type taskRepositoryImpl struct {
	db *database.DB
}

func NewTaskRepository(db *database.DB) task.Repository {
	return &taskRepositoryImpl{db: db}
}

func (r *taskRepositoryImpl) GetByID(ctx context.Context, id string) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.title, t.description, t.status, t.start_time, t.end_time, t.vehicle_id,
		       t.created_at, t.updated_at,
		       COALESCE(
		           (SELECT array_agg(ta.user_id ORDER BY ta.position)
		            FROM task_assignments ta WHERE ta.task_id = t.id),
		           '{}'
		       ) AS assignee_ids
		FROM tasks t
		WHERE t.id = $1
	`

	var tk task.Task
	err := q.QueryRow(ctx, query, id).Scan(
		&tk.ID, &tk.Title, &tk.Description, &tk.Status, &tk.StartTime, &tk.EndTime, &tk.VehicleID,
		&tk.CreatedAt, &tk.UpdatedAt,
		&tk.AssigneeIDs,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return task.Task{}, task.ErrTaskNotFound
		}
		return task.Task{}, err
	}

	return tk, nil
}

func (r *taskRepositoryImpl) FindActiveByAssignees(
	ctx context.Context,
	userIDs []string,
	start, end time.Time,
	excludeTaskID string,
) ([]task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.title, t.description, t.status, t.start_time, t.end_time, t.vehicle_id,
		       t.created_at, t.updated_at,
		       COALESCE(
		           (SELECT array_agg(ta.user_id ORDER BY ta.position)
		            FROM task_assignments ta WHERE ta.task_id = t.id),
		           '{}'
		       ) AS assignee_ids
		FROM tasks t
		WHERE t.status IN ('waiting', 'in_progress')
		  AND ($4 = '' OR t.id <> $4)
		  AND t.start_time <= $2 AND t.end_time >= $1
		  AND EXISTS (
		      SELECT 1 FROM task_assignments x
		      WHERE x.task_id = t.id AND x.user_id = ANY($3)
		  )
		ORDER BY t.start_time
	`

	rows, err := q.Query(ctx, query, start, end, userIDs, excludeTaskID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks by assignees: %w", err)
	}
	defer rows.Close()

	return scanTasks(rows)
}

func (r *taskRepositoryImpl) FindActiveByVehicle(
	ctx context.Context,
	vehicleID string,
	start, end time.Time,
	excludeTaskID string,
) ([]task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.title, t.description, t.status, t.start_time, t.end_time, t.vehicle_id,
		       t.created_at, t.updated_at,
		       COALESCE(
		           (SELECT array_agg(ta.user_id ORDER BY ta.position)
		            FROM task_assignments ta WHERE ta.task_id = t.id),
		           '{}'
		       ) AS assignee_ids
		FROM tasks t
		WHERE t.status IN ('waiting', 'in_progress')
		  AND ($4 = '' OR t.id <> $4)
		  AND t.start_time <= $2 AND t.end_time >= $1
		  AND t.vehicle_id = $3
		ORDER BY t.start_time
	`

	rows, err := q.Query(ctx, query, start, end, vehicleID, excludeTaskID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks by vehicle: %w", err)
	}
	defer rows.Close()

	return scanTasks(rows)
}

func scanTasks(rows pgx.Rows) ([]task.Task, error) {
	var tasks []task.Task
	for rows.Next() {
		var tk task.Task
		err := rows.Scan(
			&tk.ID, &tk.Title, &tk.Description, &tk.Status, &tk.StartTime, &tk.EndTime, &tk.VehicleID,
			&tk.CreatedAt, &tk.UpdatedAt,
			&tk.AssigneeIDs,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		tasks = append(tasks, tk)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return tasks, nil
}

func (r *taskRepositoryImpl) ReplaceAssignments(ctx context.Context, taskID string, userIDs []string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM task_assignments WHERE task_id = $1`, taskID); err != nil {
		return fmt.Errorf("failed to clear task assignments: %w", err)
	}

	insert := `
		INSERT INTO task_assignments (task_id, user_id, position, is_lead, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`
	for i, userID := range userIDs {
		if _, err := q.Exec(ctx, insert, taskID, userID, i, i == 0); err != nil {
			return fmt.Errorf("failed to insert task assignment: %w", err)
		}
	}

	if _, err := q.Exec(ctx, `UPDATE tasks SET updated_at = NOW() WHERE id = $1`, taskID); err != nil {
		return fmt.Errorf("failed to touch task: %w", err)
	}

	return nil
}

func (r *taskRepositoryImpl) SetVehicle(ctx context.Context, taskID string, vehicleID *string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `UPDATE tasks SET vehicle_id = $2, updated_at = NOW() WHERE id = $1`, taskID, vehicleID)
	if err != nil {
		return fmt.Errorf("failed to set task vehicle: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return task.ErrTaskNotFound
	}
	return nil
}
