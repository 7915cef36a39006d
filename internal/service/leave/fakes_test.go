package leave

import (
	"context"
	"time"

	"github.com/fieldstack/fieldops-backend-go/internal/domain/leave"
	"github.com/fieldstack/fieldops-backend-go/internal/domain/notification"
	"github.com/fieldstack/fieldops-backend-go/internal/domain/user"
	"github.com/fieldstack/fieldops-backend-go/internal/pkg/timeclock"
	"github.com/google/uuid"
)

// In-memory fakes backing the service tests. Behavior mirrors the SQL
// implementations, including closed-interval overlap matching.

type fakeUserRepo struct {
	users map[string]user.User
}

func newFakeUserRepo(users ...user.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]user.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

type fakeLeaveRepo struct {
	requests map[string]leave.LeaveRequest
	order    []string
}

func newFakeLeaveRepo(requests ...leave.LeaveRequest) *fakeLeaveRepo {
	r := &fakeLeaveRepo{requests: make(map[string]leave.LeaveRequest)}
	for _, req := range requests {
		r.requests[req.ID] = req
		r.order = append(r.order, req.ID)
	}
	return r
}

func (r *fakeLeaveRepo) Create(_ context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	if request.ID == "" {
		request.ID = uuid.NewString()
	}
	now := time.Now()
	request.SubmittedAt = now
	request.CreatedAt = now
	request.UpdatedAt = now
	r.requests[request.ID] = request
	r.order = append(r.order, request.ID)
	return request, nil
}

func (r *fakeLeaveRepo) GetByID(_ context.Context, id string) (leave.LeaveRequest, error) {
	request, ok := r.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return request, nil
}

func (r *fakeLeaveRepo) ListByRequesterYear(_ context.Context, requesterID string, year int) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, id := range r.order {
		request := r.requests[id]
		if request.RequesterID == requesterID && request.StartDate.Year() == year {
			out = append(out, request)
		}
	}
	return out, nil
}

func (r *fakeLeaveRepo) HasPendingOrApprovedOverlap(_ context.Context, requesterID string, start, end time.Time) (bool, error) {
	for _, request := range r.requests {
		if request.RequesterID != requesterID {
			continue
		}
		if request.Status != leave.StatusPending && request.Status != leave.StatusApproved {
			continue
		}
		if timeclock.DateWindowsOverlap(request.StartDate, request.EndDate, start, end) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeLeaveRepo) FindApprovedOverlapping(_ context.Context, userIDs []string, start, end time.Time) ([]leave.LeaveRequest, error) {
	members := make(map[string]bool, len(userIDs))
	for _, id := range userIDs {
		members[id] = true
	}
	var out []leave.LeaveRequest
	for _, id := range r.order {
		request := r.requests[id]
		if !members[request.RequesterID] || request.Status != leave.StatusApproved {
			continue
		}
		if timeclock.DateWindowsOverlap(request.StartDate, request.EndDate, start, end) {
			out = append(out, request)
		}
	}
	return out, nil
}

func (r *fakeLeaveRepo) UpdateDecision(_ context.Context, update leave.DecisionUpdate) error {
	request, ok := r.requests[update.ID]
	if !ok {
		return leave.ErrLeaveRequestNotFound
	}
	decidedAt := update.DecidedAt
	request.Status = update.Status
	request.DecidedBy = &update.DecidedBy
	request.DecidedAt = &decidedAt
	request.RejectionReason = update.RejectionReason
	r.requests[update.ID] = request
	return nil
}

func (r *fakeLeaveRepo) AppendChainStep(_ context.Context, requestID string, step leave.ApprovalStep) error {
	request, ok := r.requests[requestID]
	if !ok {
		return leave.ErrLeaveRequestNotFound
	}
	request.Chain = append(request.Chain, step)
	r.requests[requestID] = request
	return nil
}

func (r *fakeLeaveRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.requests[id]; !ok {
		return leave.ErrLeaveRequestNotFound
	}
	delete(r.requests, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

type usageKey struct {
	userID   string
	category leave.Category
	year     int
}

type fakeUsageRepo struct {
	counters map[usageKey]int
}

func newFakeUsageRepo() *fakeUsageRepo {
	return &fakeUsageRepo{counters: make(map[usageKey]int)}
}

func (r *fakeUsageRepo) IncrementUsed(_ context.Context, userID string, category leave.Category, year int, minutes int) error {
	r.counters[usageKey{userID, category, year}] += minutes
	return nil
}

func (r *fakeUsageRepo) GetUsage(_ context.Context, userID string, year int) (map[leave.Category]int, error) {
	out := make(map[leave.Category]int)
	for key, minutes := range r.counters {
		if key.userID == userID && key.year == year {
			out[key.category] = minutes
		}
	}
	return out, nil
}

// fakeTx runs the function directly; the SQL transaction semantics are
// covered by the real TxManager.
type fakeTx struct{}

func (fakeTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeNotifier struct {
	events []notification.LeaveDecisionEvent
	err    error
}

func (n *fakeNotifier) LeaveDecided(_ context.Context, event notification.LeaveDecisionEvent) error {
	n.events = append(n.events, event)
	return n.err
}
