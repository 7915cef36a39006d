package leave

import (
	"log/slog"
	"time"

	"github.com/fieldstack/fieldops-backend-go/internal/domain/leave"
	"github.com/fieldstack/fieldops-backend-go/internal/pkg/timeclock"
)

// QuotaCalculator derives annual entitlements in working minutes from
// per-category policies. Proration behavior comes from the policy, not
// from code.
type QuotaCalculator struct {
	policies map[leave.Category]leave.QuotaPolicy
	logger   *slog.Logger
}

func NewQuotaCalculator(policies map[leave.Category]leave.QuotaPolicy, logger *slog.Logger) *QuotaCalculator {
	return &QuotaCalculator{policies: policies, logger: logger}
}

// AnnualQuotaMinutes computes the entitlement for one category as of now.
// A zero hire date falls back to one year ago so tenure math stays sane;
// the fallback is logged because it usually means incomplete user data.
func (c *QuotaCalculator) AnnualQuotaMinutes(category leave.Category, hireDate time.Time, now time.Time) int {
	policy, ok := c.policies[category]
	if !ok {
		return 0
	}

	if hireDate.IsZero() {
		c.logger.Warn("missing hire date, assuming one year of tenure", "category", string(category))
		hireDate = now.AddDate(-1, 0, 0)
	}

	days := policy.DefaultAnnualDays
	tenure := tenureMonths(hireDate, now)
	for _, rule := range policy.Rules {
		minMonths := 0
		if rule.MinMonths != nil {
			minMonths = *rule.MinMonths
		}
		maxMonths := 999999
		if rule.MaxMonths != nil {
			maxMonths = *rule.MaxMonths
		}
		if tenure >= minMonths && tenure < maxMonths {
			days = rule.AnnualDays
			break
		}
	}

	minutes := timeclock.DaysToMinutes(days)

	if policy.ProrateFirstYear && hireDate.Year() == now.Year() {
		monthsRemaining := 13 - int(hireDate.Month())
		minutes = minutes * monthsRemaining / 12
	}

	if minutes < 0 {
		minutes = 0
	}
	return minutes
}

// tenureMonths counts full months of employment.
func tenureMonths(hireDate, now time.Time) int {
	years := now.Year() - hireDate.Year()
	months := int(now.Month()) - int(hireDate.Month())
	totalMonths := years*12 + months

	if now.Day() < hireDate.Day() {
		totalMonths--
	}
	if totalMonths < 0 {
		totalMonths = 0
	}
	return totalMonths
}

// UsedLeave sums the minutes of a user's requests for one category whose
// start date falls in the target year. Approved requests count as used,
// pending as pending; rejected and cancelled requests count as neither.
func UsedLeave(records []leave.LeaveRequest, category leave.Category, year int) (used, pending int) {
	for _, record := range records {
		if record.Category != category || record.StartDate.Year() != year {
			continue
		}
		switch record.Status {
		case leave.StatusApproved:
			used += record.Minutes
		case leave.StatusPending:
			pending += record.Minutes
		}
	}
	return used, pending
}
