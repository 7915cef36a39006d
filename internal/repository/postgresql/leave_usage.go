package postgresql

import (
	"context"
	"fmt"

	"github.com/fieldstack/fieldops-backend-go/internal/domain/leave"
	"github.com/fieldstack/fieldops-backend-go/internal/pkg/database"
)

type leaveUsageRepositoryImpl struct {
	db *database.DB
}

func NewLeaveUsageRepository(db *database.DB) leave.UsageRepository {
	return &leaveUsageRepositoryImpl{db: db}
}

func (r *leaveUsageRepositoryImpl) IncrementUsed(ctx context.Context, userID string, category leave.Category, year int, minutes int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_usage (user_id, category, year, used_minutes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (user_id, category, year)
		DO UPDATE SET used_minutes = leave_usage.used_minutes + EXCLUDED.used_minutes, updated_at = NOW()
	`

	if _, err := q.Exec(ctx, query, userID, category, year, minutes); err != nil {
		return fmt.Errorf("failed to increment leave usage: %w", err)
	}
	return nil
}

func (r *leaveUsageRepositoryImpl) GetUsage(ctx context.Context, userID string, year int) (map[leave.Category]int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT category, used_minutes
		FROM leave_usage
		WHERE user_id = $1 AND year = $2
	`

	rows, err := q.Query(ctx, query, userID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave usage: %w", err)
	}
	defer rows.Close()

	usage := make(map[leave.Category]int)
	for rows.Next() {
		var category leave.Category
		var minutes int
		if err := rows.Scan(&category, &minutes); err != nil {
			return nil, fmt.Errorf("failed to scan leave usage row: %w", err)
		}
		usage[category] = minutes
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return usage, nil
}
