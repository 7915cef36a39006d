package leave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fieldstack/fieldops-backend-go/internal/domain/leave"
	"github.com/fieldstack/fieldops-backend-go/internal/domain/notification"
	"github.com/fieldstack/fieldops-backend-go/internal/domain/user"
	"github.com/fieldstack/fieldops-backend-go/internal/pkg/database"
	"github.com/fieldstack/fieldops-backend-go/internal/pkg/timeclock"
)

// ApprovalService drives the leave request state machine. A request moves
// from pending to exactly one terminal state; the chain append, status
// update and quota increment commit as one transaction.
type ApprovalService struct {
	tx       database.Transactor
	leaves   leave.Repository
	usage    leave.UsageRepository
	users    user.Repository
	notifier notification.Notifier
	logger   *slog.Logger
}

func NewApprovalService(
	tx database.Transactor,
	leaveRepository leave.Repository,
	usageRepository leave.UsageRepository,
	userRepository user.Repository,
	notifier notification.Notifier,
	logger *slog.Logger,
) *ApprovalService {
	return &ApprovalService{
		tx:       tx,
		leaves:   leaveRepository,
		usage:    usageRepository,
		users:    userRepository,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *ApprovalService) Approve(ctx context.Context, requestID, approverID string, comment *string) (leave.LeaveRequest, error) {
	return s.decide(ctx, requestID, approverID, leave.DecisionApproved, comment, nil)
}

func (s *ApprovalService) Reject(ctx context.Context, requestID, approverID, reason string) (leave.LeaveRequest, error) {
	return s.decide(ctx, requestID, approverID, leave.DecisionRejected, nil, &reason)
}

func (s *ApprovalService) decide(
	ctx context.Context,
	requestID, approverID string,
	decision leave.Decision,
	comment *string,
	rejectionReason *string,
) (leave.LeaveRequest, error) {
	request, err := s.leaves.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	if request.Status != leave.StatusPending {
		return leave.LeaveRequest{}, leave.ErrLeaveAlreadyProcessed
	}

	requester, err := s.users.GetByID(ctx, request.RequesterID)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to get requester: %w", err)
	}

	approver, err := s.users.GetByID(ctx, approverID)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to get approver: %w", err)
	}

	// Pure authorization check, evaluated before any mutation.
	if !user.CanApproveLeaveFor(approver.Role, approver.ID, requester.Role, requester.SupervisorID) {
		return leave.LeaveRequest{}, leave.ErrNotAuthorized
	}

	decidedAt := time.Now()
	step := leave.ApprovalStep{
		Level:        nextChainLevel(request.Chain),
		ApproverID:   approver.ID,
		ApproverRole: approver.Role,
		Decision:     decision,
		Comment:      comment,
		DecidedAt:    decidedAt,
	}

	status := leave.StatusApproved
	if decision == leave.DecisionRejected {
		status = leave.StatusRejected
	}

	err = s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.leaves.AppendChainStep(txCtx, request.ID, step); err != nil {
			return err
		}

		update := leave.DecisionUpdate{
			ID:              request.ID,
			Status:          status,
			DecidedBy:       approver.ID,
			DecidedAt:       decidedAt,
			RejectionReason: rejectionReason,
		}
		if err := s.leaves.UpdateDecision(txCtx, update); err != nil {
			return err
		}

		if decision == leave.DecisionApproved {
			// The minute total was fixed at request creation; consume it
			// as-is.
			return s.usage.IncrementUsed(txCtx, requester.ID, request.Category, request.StartDate.Year(), request.Minutes)
		}
		return nil
	})
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to commit leave decision: %w", err)
	}

	request.Status = status
	request.DecidedBy = &approver.ID
	request.DecidedAt = &decidedAt
	request.RejectionReason = rejectionReason
	request.Chain = append(request.Chain, step)

	// Notification runs after the commit; a delivery failure never rolls
	// back the decision.
	event := notification.LeaveDecisionEvent{
		RequestID:     request.ID,
		RequesterID:   requester.ID,
		ActorName:     approver.FullName,
		CategoryLabel: leave.Labels[request.Category],
		StartDate:     request.StartDate,
		EndDate:       request.EndDate,
		Days:          timeclock.MinutesToDays(request.Minutes),
		Decision:      decision,
		Reason:        rejectionReason,
	}
	if err := s.notifier.LeaveDecided(ctx, event); err != nil {
		s.logger.Warn("failed to deliver leave decision notification",
			"request_id", request.ID,
			"decision", string(decision),
			"error", err,
		)
	}

	return request, nil
}

// nextChainLevel returns max(existing levels)+1 so chain entries only ever
// extend the escalation history.
func nextChainLevel(chain []leave.ApprovalStep) int {
	level := 0
	for _, step := range chain {
		if step.Level > level {
			level = step.Level
		}
	}
	return level + 1
}
