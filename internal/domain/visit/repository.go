package visit

import "context"

// Repository describes visit log persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, v Visit) error
	Stats(ctx context.Context, windows Windows) (Stats, error)
}
