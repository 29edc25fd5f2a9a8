package blog

import "context"

// Repository describes blog post persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, onlyPublished bool) ([]Post, error)
	GetBySlug(ctx context.Context, slug string) (Post, bool, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Create(ctx context.Context, post Post) (Post, error)
	UpdateBySlug(ctx context.Context, slug string, post Post) (Post, bool, error)
	DeleteBySlug(ctx context.Context, slug string) (bool, error)
}
