package notification

import (
	"context"
	"time"

	"github.com/fieldstack/fieldops-backend-go/internal/domain/leave"
)

// LeaveDecisionEvent is emitted after a leave decision commits. Delivery is
// best-effort; failures must never roll back the decision.
type LeaveDecisionEvent struct {
	RequestID     string
	RequesterID   string
	ActorName     string
	CategoryLabel string
	StartDate     time.Time
	EndDate       time.Time
	Days          float64
	Decision      leave.Decision
	Reason        *string
}

type Notifier interface {
	LeaveDecided(ctx context.Context, event LeaveDecisionEvent) error
}
