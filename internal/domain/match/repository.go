package match

import "context"

// Repository describes upcoming match persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Match, error)
	GetByID(ctx context.Context, id int64) (Match, bool, error)
	Create(ctx context.Context, m Match) (Match, error)
	Update(ctx context.Context, m Match) (Match, bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
