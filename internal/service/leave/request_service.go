package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/fieldstack/fieldops-backend-go/internal/domain/leave"
	"github.com/fieldstack/fieldops-backend-go/internal/domain/user"
	"github.com/fieldstack/fieldops-backend-go/internal/pkg/timeclock"
)

type RequestService struct {
	leaves leave.Repository
	users  user.Repository
}

func NewRequestService(leaveRepository leave.Repository, userRepository user.Repository) *RequestService {
	return &RequestService{
		leaves: leaveRepository,
		users:  userRepository,
	}
}

// Create validates and persists a new leave request. The working-minute
// total is computed here, once; the approval transition later consumes the
// stored figure so policy changes between request and approval cannot
// cause drift.
func (r *RequestService) Create(ctx context.Context, requesterID string, req leave.CreateLeaveRequestRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	if _, err := r.users.GetByID(ctx, requesterID); err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to get requester: %w", err)
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to parse end date: %w", err)
	}

	if startDate.After(endDate) {
		return leave.LeaveRequest{}, leave.ErrInvalidLeaveWindow
	}

	if !req.IsFullDay {
		if !startDate.Equal(endDate) {
			return leave.LeaveRequest{}, leave.ErrPartialDaySpan
		}
		if err := timeclock.ValidateLeaveTime(*req.StartTime, *req.EndTime); err != nil {
			return leave.LeaveRequest{}, err
		}
	}

	hasOverlap, err := r.leaves.HasPendingOrApprovedOverlap(ctx, requesterID, startDate, endDate)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to check overlapping leave requests: %w", err)
	}
	if hasOverlap {
		return leave.LeaveRequest{}, leave.ErrOverlappingLeave
	}

	minutes := timeclock.LeaveMinutes(startDate, endDate, req.IsFullDay, req.StartTime, req.EndTime)

	request := leave.LeaveRequest{
		RequesterID: requesterID,
		Category:    leave.Category(req.Category),
		StartDate:   startDate,
		EndDate:     endDate,
		IsFullDay:   req.IsFullDay,
		StartClock:  req.StartTime,
		EndClock:    req.EndTime,
		Minutes:     minutes,
		Reason:      req.Reason,
		Status:      leave.StatusPending,
	}

	created, err := r.leaves.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return created, nil
}

// Cancel hard-deletes a still-pending request. Decided requests are audit
// records and stay immutable.
func (r *RequestService) Cancel(ctx context.Context, requestID, actorID string, actorRole user.Role) error {
	request, err := r.leaves.GetByID(ctx, requestID)
	if err != nil {
		return err
	}

	if actorID != request.RequesterID && actorRole != user.RoleAdmin {
		return leave.ErrNotAuthorized
	}

	if request.Status != leave.StatusPending {
		return leave.ErrLeaveAlreadyProcessed
	}

	return r.leaves.Delete(ctx, requestID)
}

func (r *RequestService) ListMine(ctx context.Context, requesterID string, year int) ([]leave.LeaveRequest, error) {
	return r.leaves.ListByRequesterYear(ctx, requesterID, year)
}
