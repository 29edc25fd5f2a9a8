package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/riskibarqy/club-website/internal/domain/blog"
)

type BlogRepository struct {
	mu     sync.RWMutex
	posts  map[string]blog.Post
	nextID int64
	now    func() time.Time
}

func NewBlogRepository(posts []blog.Post) *BlogRepository {
	r := &BlogRepository{
		posts: make(map[string]blog.Post, len(posts)),
		now:   time.Now,
	}
	for _, p := range posts {
		r.nextID++
		if p.ID == 0 {
			p.ID = r.nextID
		}
		if p.ID > r.nextID {
			r.nextID = p.ID
		}
		r.posts[p.Slug] = clonePost(p)
	}
	return r
}

func (r *BlogRepository) List(_ context.Context, onlyPublished bool) ([]blog.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]blog.Post, 0, len(r.posts))
	for _, p := range r.posts {
		if onlyPublished && !p.Published {
			continue
		}
		out = append(out, clonePost(p))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *BlogRepository) GetBySlug(_ context.Context, slug string) (blog.Post, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.posts[slug]
	if !ok {
		return blog.Post{}, false, nil
	}
	return clonePost(p), true, nil
}

func (r *BlogRepository) SlugExists(_ context.Context, slug string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.posts[slug]
	return ok, nil
}

func (r *BlogRepository) Create(_ context.Context, post blog.Post) (blog.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.posts[post.Slug]; ok {
		return blog.Post{}, blog.ErrDuplicateSlug
	}
	r.nextID++
	now := r.now().UTC()
	post.ID = r.nextID
	post.CreatedAt = now
	post.UpdatedAt = now
	r.posts[post.Slug] = clonePost(post)
	return clonePost(post), nil
}

func (r *BlogRepository) UpdateBySlug(_ context.Context, slug string, post blog.Post) (blog.Post, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.posts[slug]
	if !ok {
		return blog.Post{}, false, nil
	}
	post.ID = current.ID
	post.Slug = current.Slug
	post.CreatedAt = current.CreatedAt
	post.UpdatedAt = r.now().UTC()
	r.posts[slug] = clonePost(post)
	return clonePost(post), true, nil
}

func (r *BlogRepository) DeleteBySlug(_ context.Context, slug string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.posts[slug]; !ok {
		return false, nil
	}
	delete(r.posts, slug)
	return true, nil
}

func clonePost(p blog.Post) blog.Post {
	p.Tags = append([]string{}, p.Tags...)
	p.AdditionalImages = append([]string{}, p.AdditionalImages...)
	return p
}
