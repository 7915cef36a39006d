package leave

import (
	"time"

	"github.com/fieldstack/fieldops-backend-go/internal/domain/user"
)

type Category string

const (
	CategoryAnnual   Category = "annual"
	CategorySick     Category = "sick"
	CategoryPersonal Category = "personal"
)

// Categories lists every leave category in display order.
var Categories = []Category{CategoryAnnual, CategorySick, CategoryPersonal}

// Labels maps categories to their display names, carried on decision events.
var Labels = map[Category]string{
	CategoryAnnual:   "Annual Leave",
	CategorySick:     "Sick Leave",
	CategoryPersonal: "Personal Leave",
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

type Decision string

const (
	DecisionApproved Decision = "approved"
	DecisionRejected Decision = "rejected"
)

// ApprovalStep is one entry of a request's append-only approval chain.
// Levels are unique per request and ascend in escalation order.
type ApprovalStep struct {
	Level        int
	ApproverID   string
	ApproverRole user.Role
	Decision     Decision
	Comment      *string
	DecidedAt    time.Time
}

type LeaveRequest struct {
	ID          string
	RequesterID string
	Category    Category

	StartDate time.Time
	EndDate   time.Time
	IsFullDay bool

	// StartClock/EndClock are "15:04" clock times, set only for
	// partial-day requests.
	StartClock *string
	EndClock   *string

	// Minutes is the working-minute total computed at creation time. The
	// approval transition consumes this value as-is and never recomputes
	// it.
	Minutes int

	Reason string
	Status Status

	DecidedBy       *string
	DecidedAt       *time.Time
	RejectionReason *string

	SubmittedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Chain []ApprovalStep

	// Relationships (for responses)
	RequesterName *string
}

// QuotaRule grants an annual entitlement to users whose tenure in months
// falls in [MinMonths, MaxMonths).
type QuotaRule struct {
	MinMonths  *int    `json:"min_months,omitempty"`
	MaxMonths  *int    `json:"max_months,omitempty"`
	AnnualDays float64 `json:"annual_days"`
}

// QuotaPolicy is the configurable entitlement policy for one category.
type QuotaPolicy struct {
	DefaultAnnualDays float64     `json:"default_annual_days"`
	Rules             []QuotaRule `json:"rules,omitempty"`

	// ProrateFirstYear reduces the first partial year proportionally to
	// the months remaining after the hire month.
	ProrateFirstYear bool `json:"prorate_first_year"`
}
