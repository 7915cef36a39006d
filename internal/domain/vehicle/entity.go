package vehicle

import "time"

type Vehicle struct {
	ID          string
	PlateNumber string
	Label       *string
	IsActive    bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
