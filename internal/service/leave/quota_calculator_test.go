package leave

import (
	"testing"
	"time"

	"github.com/fieldstack/fieldops-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestAnnualQuotaMinutes(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)

	policies := map[leave.Category]leave.QuotaPolicy{
		leave.CategoryAnnual: {
			DefaultAnnualDays: 12,
			Rules: []leave.QuotaRule{
				{MinMonths: intPtr(60), AnnualDays: 18},
				{MinMonths: intPtr(24), MaxMonths: intPtr(60), AnnualDays: 15},
			},
			ProrateFirstYear: true,
		},
		leave.CategorySick: {DefaultAnnualDays: 14},
	}
	calc := NewQuotaCalculator(policies, discardLogger())

	tests := []struct {
		name     string
		category leave.Category
		hireDate time.Time
		want     int
	}{
		{
			name:     "default entitlement under first rule threshold",
			category: leave.CategoryAnnual,
			hireDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			want:     12 * 480,
		},
		{
			name:     "mid tenure rule applies",
			category: leave.CategoryAnnual,
			hireDate: time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC),
			want:     15 * 480,
		},
		{
			name:     "long tenure rule applies",
			category: leave.CategoryAnnual,
			hireDate: time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC),
			want:     18 * 480,
		},
		{
			name:     "first year is prorated by remaining months",
			category: leave.CategoryAnnual,
			hireDate: time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC),
			// 9 months remaining out of 12.
			want: 12 * 480 * 9 / 12,
		},
		{
			name:     "sick category has no proration",
			category: leave.CategorySick,
			hireDate: time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC),
			want:     14 * 480,
		},
		{
			name:     "unknown category yields zero",
			category: leave.CategoryPersonal,
			hireDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			want:     0,
		},
		{
			name:     "zero hire date falls back to one year of tenure",
			category: leave.CategoryAnnual,
			hireDate: time.Time{},
			want:     12 * 480,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, calc.AnnualQuotaMinutes(tt.category, tt.hireDate, now))
		})
	}
}

func TestTenureMonths(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		hireDate time.Time
		want     int
	}{
		{"same day", now, 0},
		{"one month minus a day", time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC), 0},
		{"exactly one month", time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), 1},
		{"two years", time.Date(2023, 7, 15, 0, 0, 0, 0, time.UTC), 24},
		{"future hire date clamps to zero", time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tenureMonths(tt.hireDate, now))
		})
	}
}

func TestUsedLeave(t *testing.T) {
	t.Parallel()

	records := []leave.LeaveRequest{
		{Category: leave.CategoryAnnual, Status: leave.StatusApproved, Minutes: 960, StartDate: time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC)},
		{Category: leave.CategoryAnnual, Status: leave.StatusPending, Minutes: 480, StartDate: time.Date(2025, 8, 4, 0, 0, 0, 0, time.UTC)},
		{Category: leave.CategoryAnnual, Status: leave.StatusRejected, Minutes: 480, StartDate: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)},
		{Category: leave.CategorySick, Status: leave.StatusApproved, Minutes: 240, StartDate: time.Date(2025, 4, 7, 0, 0, 0, 0, time.UTC)},
		{Category: leave.CategoryAnnual, Status: leave.StatusApproved, Minutes: 480, StartDate: time.Date(2024, 12, 2, 0, 0, 0, 0, time.UTC)},
	}

	used, pending := UsedLeave(records, leave.CategoryAnnual, 2025)
	assert.Equal(t, 960, used)
	assert.Equal(t, 480, pending)

	used, pending = UsedLeave(records, leave.CategorySick, 2025)
	assert.Equal(t, 240, used)
	assert.Zero(t, pending)
}
