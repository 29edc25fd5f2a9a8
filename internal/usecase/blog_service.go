package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/riskibarqy/club-website/internal/domain/blog"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// BlogInput is the writable part of a post. Published is nil when the client
// did not send the flag, which keeps the post published.
type BlogInput struct {
	Title            string
	Content          string
	Excerpt          string
	Author           string
	Category         string
	CoverImage       string
	AdditionalImages []string
	Tags             []string
	Published        *bool
}

// BlogPostView is a post plus its rendered HTML body for public pages.
type BlogPostView struct {
	blog.Post
	ContentHTML string
}

type BlogService struct {
	repo     blog.Repository
	markdown goldmark.Markdown
	policy   *bluemonday.Policy
	now      func() time.Time
}

func NewBlogService(repo blog.Repository) *BlogService {
	return &BlogService{
		repo:     repo,
		markdown: goldmark.New(goldmark.WithExtensions(extension.GFM)),
		policy:   bluemonday.UGCPolicy(),
		now:      time.Now,
	}
}

func (s *BlogService) ListPublished(ctx context.Context) ([]blog.Post, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BlogService.ListPublished")
	defer span.End()

	posts, err := s.repo.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("list published posts: %w", err)
	}
	return posts, nil
}

func (s *BlogService) ListAll(ctx context.Context) ([]blog.Post, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BlogService.ListAll")
	defer span.End()

	posts, err := s.repo.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

// GetPublished returns a published post with rendered HTML. Drafts are reported
// as not found.
func (s *BlogService) GetPublished(ctx context.Context, slug string) (BlogPostView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BlogService.GetPublished")
	defer span.End()

	post, err := s.GetBySlug(ctx, slug)
	if err != nil {
		return BlogPostView{}, err
	}
	if !post.Published {
		return BlogPostView{}, fmt.Errorf("%w: post slug=%s", ErrNotFound, slug)
	}

	html, err := s.RenderHTML(post.Content)
	if err != nil {
		return BlogPostView{}, err
	}
	return BlogPostView{Post: post, ContentHTML: html}, nil
}

func (s *BlogService) GetBySlug(ctx context.Context, slug string) (blog.Post, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return blog.Post{}, fmt.Errorf("%w: slug is required", ErrInvalidInput)
	}

	post, exists, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return blog.Post{}, fmt.Errorf("get post: %w", err)
	}
	if !exists {
		return blog.Post{}, fmt.Errorf("%w: post slug=%s", ErrNotFound, slug)
	}
	return post, nil
}

func (s *BlogService) Create(ctx context.Context, input BlogInput) (blog.Post, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BlogService.Create")
	defer span.End()

	post := postFromInput(input)
	post.Slug = blog.Slugify(post.Title)
	if err := post.Validate(); err != nil {
		return blog.Post{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	taken, err := s.repo.SlugExists(ctx, post.Slug)
	if err != nil {
		return blog.Post{}, fmt.Errorf("check slug: %w", err)
	}
	if taken {
		post.Slug = blog.SuffixSlug(post.Slug, s.now())
	}

	created, err := s.repo.Create(ctx, post)
	if errors.Is(err, blog.ErrDuplicateSlug) {
		// Lost a race for the same slug; a fresh timestamp settles it.
		post.Slug = blog.SuffixSlug(blog.Slugify(post.Title), s.now())
		created, err = s.repo.Create(ctx, post)
	}
	if err != nil {
		return blog.Post{}, fmt.Errorf("create post: %w", err)
	}
	return created, nil
}

// Update overwrites every field of the post. The slug never changes.
func (s *BlogService) Update(ctx context.Context, slug string, input BlogInput) (blog.Post, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BlogService.Update")
	defer span.End()

	post := postFromInput(input)
	post.Slug = strings.TrimSpace(slug)
	if err := post.Validate(); err != nil {
		return blog.Post{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, exists, err := s.repo.UpdateBySlug(ctx, post.Slug, post)
	if err != nil {
		return blog.Post{}, fmt.Errorf("update post: %w", err)
	}
	if !exists {
		return blog.Post{}, fmt.Errorf("%w: post slug=%s", ErrNotFound, post.Slug)
	}
	return updated, nil
}

func (s *BlogService) Delete(ctx context.Context, slug string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.BlogService.Delete")
	defer span.End()

	deleted, err := s.repo.DeleteBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: post slug=%s", ErrNotFound, slug)
	}
	return nil
}

// RenderHTML converts Markdown to HTML and strips anything outside the UGC policy.
func (s *BlogService) RenderHTML(content string) (string, error) {
	var buf bytes.Buffer
	if err := s.markdown.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return s.policy.Sanitize(buf.String()), nil
}

func postFromInput(input BlogInput) blog.Post {
	post := blog.Post{
		Title:            input.Title,
		Content:          input.Content,
		Excerpt:          strings.TrimSpace(input.Excerpt),
		Author:           strings.TrimSpace(input.Author),
		Category:         strings.TrimSpace(input.Category),
		CoverImage:       strings.TrimSpace(input.CoverImage),
		AdditionalImages: input.AdditionalImages,
		Tags:             input.Tags,
		Published:        input.Published == nil || *input.Published,
	}
	post.ApplyDefaults()
	return post
}
