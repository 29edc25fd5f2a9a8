package result

import "context"

// Repository describes match result persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Result, error)
	GetByID(ctx context.Context, id int64) (Result, bool, error)
	Create(ctx context.Context, r Result) (Result, error)
	Update(ctx context.Context, r Result) (Result, bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
