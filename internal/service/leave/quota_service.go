package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/fieldstack/fieldops-backend-go/internal/domain/leave"
	"github.com/fieldstack/fieldops-backend-go/internal/domain/user"
	"github.com/fieldstack/fieldops-backend-go/internal/pkg/timeclock"
)

type QuotaService struct {
	users      user.Repository
	leaves     leave.Repository
	calculator *QuotaCalculator
}

func NewQuotaService(userRepository user.Repository, leaveRepository leave.Repository, calculator *QuotaCalculator) *QuotaService {
	return &QuotaService{
		users:      userRepository,
		leaves:     leaveRepository,
		calculator: calculator,
	}
}

// Summary nets each category's entitlement against approved and pending
// requests for the year. Over-quota categories are flagged but never
// blocked; managers retain the authority to approve past the entitlement.
func (q *QuotaService) Summary(ctx context.Context, userID string, year int) (leave.QuotaSummary, error) {
	u, err := q.users.GetByID(ctx, userID)
	if err != nil {
		return leave.QuotaSummary{}, fmt.Errorf("failed to get user: %w", err)
	}

	records, err := q.leaves.ListByRequesterYear(ctx, userID, year)
	if err != nil {
		return leave.QuotaSummary{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	summary := leave.QuotaSummary{UserID: userID, Year: year}

	// Entitlement is evaluated as of the target year, not the wall clock,
	// so past-year summaries keep their first-year proration.
	asOf := time.Now()
	if asOf.Year() != year {
		asOf = time.Date(year, 12, 31, 0, 0, 0, 0, time.UTC)
	}

	for _, category := range leave.Categories {
		total := q.calculator.AnnualQuotaMinutes(category, u.HireDate, asOf)
		used, pending := UsedLeave(records, category, year)

		remaining := total - used - pending
		if remaining < 0 {
			remaining = 0
		}

		summary.Categories = append(summary.Categories, leave.CategoryQuota{
			Category:         category,
			Label:            leave.Labels[category],
			TotalMinutes:     total,
			UsedMinutes:      used,
			PendingMinutes:   pending,
			RemainingMinutes: remaining,
			TotalDays:        timeclock.MinutesToDays(total),
			RemainingDays:    timeclock.MinutesToDays(remaining),
			OverQuota:        used+pending > total,
		})
	}

	return summary, nil
}
