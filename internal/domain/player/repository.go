package player

import "context"

// Repository describes squad persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Player, error)
	GetByID(ctx context.Context, id int64) (Player, bool, error)
	GetByNumber(ctx context.Context, number int) (Player, bool, error)
	Create(ctx context.Context, p Player) (Player, error)
	Update(ctx context.Context, p Player) (Player, bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
