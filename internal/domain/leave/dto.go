package leave

type CreateLeaveRequestRequest struct {
	Category  string  `json:"category"`
	StartDate string  `json:"start_date"` // 2006-01-02
	EndDate   string  `json:"end_date"`
	IsFullDay bool    `json:"is_full_day"`
	StartTime *string `json:"start_time,omitempty"` // 15:04, partial day only
	EndTime   *string `json:"end_time,omitempty"`
	Reason    string  `json:"reason"`
}

func (r CreateLeaveRequestRequest) Validate() error {
	if !Category(r.Category).Valid() {
		return ErrUnknownCategory
	}
	if !r.IsFullDay && (r.StartTime == nil || r.EndTime == nil) {
		return ErrMissingClockTimes
	}
	return nil
}

type ApproveLeaveRequestRequest struct {
	Comment *string `json:"comment,omitempty"`
}

type RejectLeaveRequestRequest struct {
	Reason string `json:"reason"`
}

// CategoryQuota is one row of a user's quota summary. All figures are
// working minutes; day figures are derived for display.
type CategoryQuota struct {
	Category         Category `json:"category"`
	Label            string   `json:"label"`
	TotalMinutes     int      `json:"total_minutes"`
	UsedMinutes      int      `json:"used_minutes"`
	PendingMinutes   int      `json:"pending_minutes"`
	RemainingMinutes int      `json:"remaining_minutes"`
	TotalDays        float64  `json:"total_days"`
	RemainingDays    float64  `json:"remaining_days"`

	// OverQuota warns that used+pending exceeds the entitlement. It never
	// blocks approval.
	OverQuota bool `json:"over_quota"`
}

type QuotaSummary struct {
	UserID     string          `json:"user_id"`
	Year       int             `json:"year"`
	Categories []CategoryQuota `json:"categories"`
}
