package notification

import (
	"context"
	"log/slog"

	"github.com/fieldstack/fieldops-backend-go/internal/domain/notification"
)

// Service is the in-process decision-event collaborator. Real delivery
// (email, webhook, in-app) lives outside this engine; this implementation
// records the event in the structured log.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	return &Service{logger: logger}
}

func (s *Service) LeaveDecided(ctx context.Context, event notification.LeaveDecisionEvent) error {
	attrs := []any{
		"request_id", event.RequestID,
		"requester_id", event.RequesterID,
		"actor", event.ActorName,
		"leave_type", event.CategoryLabel,
		"start_date", event.StartDate.Format("2006-01-02"),
		"end_date", event.EndDate.Format("2006-01-02"),
		"days", event.Days,
		"decision", string(event.Decision),
	}
	if event.Reason != nil {
		attrs = append(attrs, "reason", *event.Reason)
	}
	s.logger.InfoContext(ctx, "leave decision", attrs...)
	return nil
}
