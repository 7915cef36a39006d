package vehicle

import "context"

type Repository interface {
	GetByID(ctx context.Context, id string) (Vehicle, error)
	List(ctx context.Context) ([]Vehicle, error)
}
