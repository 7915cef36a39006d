package postgresql

import (
	"context"
	"fmt"

	"github.com/fieldstack/fieldops-backend-go/internal/domain/vehicle"
	"github.com/fieldstack/fieldops-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type vehicleRepositoryImpl struct {
	db *database.DB
}

func NewVehicleRepository(db *database.DB) vehicle.Repository {
	return &vehicleRepositoryImpl{db: db}
}

func (r *vehicleRepositoryImpl) GetByID(ctx context.Context, id string) (vehicle.Vehicle, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, plate_number, label, is_active, created_at, updated_at
		FROM vehicles
		WHERE id = $1
	`

	var v vehicle.Vehicle
	err := q.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.PlateNumber, &v.Label, &v.IsActive, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return vehicle.Vehicle{}, vehicle.ErrVehicleNotFound
		}
		return vehicle.Vehicle{}, err
	}

	return v, nil
}

func (r *vehicleRepositoryImpl) List(ctx context.Context) ([]vehicle.Vehicle, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, plate_number, label, is_active, created_at, updated_at
		FROM vehicles
		ORDER BY plate_number
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []vehicle.Vehicle
	for rows.Next() {
		var v vehicle.Vehicle
		if err := rows.Scan(&v.ID, &v.PlateNumber, &v.Label, &v.IsActive, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan vehicle row: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return vehicles, nil
}
