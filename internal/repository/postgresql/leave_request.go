package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/fieldstack/fieldops-backend-go/internal/domain/leave"
	"github.com/fieldstack/fieldops-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.Repository {
	return &leaveRequestRepositoryImpl{db: db}
}

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, requester_id, category,
			start_date, end_date, is_full_day, start_clock, end_clock,
			minutes, reason, status, submitted_at,
			created_at, updated_at
		) VALUES (
			gen_random_uuid(), $1, $2,
			$3, $4, $5, $6, $7,
			$8, $9, $10, NOW(),
			NOW(), NOW()
		) RETURNING id, submitted_at, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.RequesterID, request.Category,
		request.StartDate, request.EndDate, request.IsFullDay, request.StartClock, request.EndClock,
		request.Minutes, request.Reason, request.Status,
	).Scan(&request.ID, &request.SubmittedAt, &request.CreatedAt, &request.UpdatedAt)

	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to insert leave request: %w", err)
	}

	return request, nil
}

const leaveRequestColumns = `
	lr.id, lr.requester_id, lr.category,
	lr.start_date, lr.end_date, lr.is_full_day, lr.start_clock, lr.end_clock,
	lr.minutes, lr.reason, lr.status,
	lr.decided_by, lr.decided_at, lr.rejection_reason,
	lr.submitted_at, lr.created_at, lr.updated_at
`

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var req leave.LeaveRequest
	err := row.Scan(
		&req.ID, &req.RequesterID, &req.Category,
		&req.StartDate, &req.EndDate, &req.IsFullDay, &req.StartClock, &req.EndClock,
		&req.Minutes, &req.Reason, &req.Status,
		&req.DecidedBy, &req.DecidedAt, &req.RejectionReason,
		&req.SubmittedAt, &req.CreatedAt, &req.UpdatedAt,
	)
	return req, err
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `, u.full_name AS requester_name
		FROM leave_requests lr
		JOIN users u ON lr.requester_id = u.id
		WHERE lr.id = $1
	`

	var req leave.LeaveRequest
	var requesterName string
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.RequesterID, &req.Category,
		&req.StartDate, &req.EndDate, &req.IsFullDay, &req.StartClock, &req.EndClock,
		&req.Minutes, &req.Reason, &req.Status,
		&req.DecidedBy, &req.DecidedAt, &req.RejectionReason,
		&req.SubmittedAt, &req.CreatedAt, &req.UpdatedAt,
		&requesterName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}
	req.RequesterName = &requesterName

	chain, err := r.getChain(ctx, id)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	req.Chain = chain

	return req, nil
}

func (r *leaveRequestRepositoryImpl) getChain(ctx context.Context, requestID string) ([]leave.ApprovalStep, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT level, approver_id, approver_role, decision, comment, decided_at
		FROM leave_approval_steps
		WHERE request_id = $1
		ORDER BY level
	`

	rows, err := q.Query(ctx, query, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to query approval chain: %w", err)
	}
	defer rows.Close()

	var chain []leave.ApprovalStep
	for rows.Next() {
		var step leave.ApprovalStep
		err := rows.Scan(&step.Level, &step.ApproverID, &step.ApproverRole, &step.Decision, &step.Comment, &step.DecidedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan approval step: %w", err)
		}
		chain = append(chain, step)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return chain, nil
}

func (r *leaveRequestRepositoryImpl) ListByRequesterYear(ctx context.Context, requesterID string, year int) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		WHERE lr.requester_id = $1
		  AND lr.start_date >= make_date($2, 1, 1)
		  AND lr.start_date < make_date($2 + 1, 1, 1)
		ORDER BY lr.submitted_at DESC
	`

	rows, err := q.Query(ctx, query, requesterID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		req, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request row: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return requests, nil
}

func (r *leaveRequestRepositoryImpl) HasPendingOrApprovedOverlap(
	ctx context.Context,
	requesterID string,
	start, end time.Time,
) (bool, error) {
	q := GetQuerier(ctx, r.db)

	// Leave dates cover whole days; comparing at date granularity keeps
	// timed candidate windows from slipping past a midnight-anchored end.
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM leave_requests
			WHERE requester_id = $1
			  AND status IN ('pending', 'approved')
			  AND start_date <= $3::date AND end_date >= $2::date
		)
	`

	var exists bool
	err := q.QueryRow(ctx, query, requesterID, start, end).Scan(&exists)
	return exists, err
}

func (r *leaveRequestRepositoryImpl) FindApprovedOverlapping(
	ctx context.Context,
	userIDs []string,
	start, end time.Time,
) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		WHERE lr.requester_id = ANY($1)
		  AND lr.status = 'approved'
		  AND lr.start_date <= $3::date AND lr.end_date >= $2::date
		ORDER BY lr.start_date
	`

	rows, err := q.Query(ctx, query, userIDs, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query overlapping leave: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		req, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request row: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return requests, nil
}

func (r *leaveRequestRepositoryImpl) UpdateDecision(ctx context.Context, update leave.DecisionUpdate) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $2, decided_by = $3, decided_at = $4, rejection_reason = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, update.ID, update.Status, update.DecidedBy, update.DecidedAt, update.RejectionReason).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.ErrLeaveRequestNotFound
		}
		return fmt.Errorf("failed to update leave request %s: %w", update.ID, err)
	}
	return nil
}

func (r *leaveRequestRepositoryImpl) AppendChainStep(ctx context.Context, requestID string, step leave.ApprovalStep) error {
	q := GetQuerier(ctx, r.db)

	// Chain rows are insert-only; the unique (request_id, level) constraint
	// rejects any attempt to rewrite history.
	query := `
		INSERT INTO leave_approval_steps (
			id, request_id, level, approver_id, approver_role, decision, comment, decided_at
		) VALUES (
			gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7
		)
	`

	_, err := q.Exec(ctx, query, requestID, step.Level, step.ApproverID, step.ApproverRole, step.Decision, step.Comment, step.DecidedAt)
	if err != nil {
		return fmt.Errorf("failed to append approval step: %w", err)
	}
	return nil
}

func (r *leaveRequestRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM leave_requests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrLeaveRequestNotFound
	}
	return nil
}
