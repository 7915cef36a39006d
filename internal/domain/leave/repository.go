package leave

import (
	"context"
	"time"
)

// DecisionUpdate carries the status transition written by the approval
// workflow.
type DecisionUpdate struct {
	ID              string
	Status          Status
	DecidedBy       string
	DecidedAt       time.Time
	RejectionReason *string
}

type Repository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	ListByRequesterYear(ctx context.Context, requesterID string, year int) ([]LeaveRequest, error)

	// HasPendingOrApprovedOverlap reports whether the requester already has
	// a pending or approved request overlapping [start, end] (closed
	// interval).
	HasPendingOrApprovedOverlap(ctx context.Context, requesterID string, start, end time.Time) (bool, error)

	// FindApprovedOverlapping returns approved requests of any of the given
	// users overlapping [start, end] (closed interval).
	FindApprovedOverlapping(ctx context.Context, userIDs []string, start, end time.Time) ([]LeaveRequest, error)

	UpdateDecision(ctx context.Context, update DecisionUpdate) error

	// AppendChainStep inserts a new approval chain entry. Existing entries
	// are never updated or removed.
	AppendChainStep(ctx context.Context, requestID string, step ApprovalStep) error

	// Delete hard-deletes a request. Only valid while the request is still
	// pending; decided requests are audit records.
	Delete(ctx context.Context, id string) error
}

// UsageRepository tracks the per-user, per-category consumed-minutes
// counters. The approval transition is the only writer.
type UsageRepository interface {
	IncrementUsed(ctx context.Context, userID string, category Category, year int, minutes int) error
	GetUsage(ctx context.Context, userID string, year int) (map[Category]int, error)
}
