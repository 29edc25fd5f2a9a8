package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/club-website/internal/domain/blog"
	blogmock "github.com/riskibarqy/club-website/internal/mocks/domain/blog"
	"github.com/stretchr/testify/mock"
)

func TestBlogService_Create_AppliesDefaultsUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := blogmock.NewRepository(t)
	service := NewBlogService(repo)

	repo.
		On("SlugExists", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), "victoria-en-el-derbi").
		Return(false, nil).
		Once()
	repo.
		On("Create", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), mock.MatchedBy(func(p blog.Post) bool {
			return p.Slug == "victoria-en-el-derbi" &&
				p.Author == blog.DefaultAuthor &&
				p.Category == blog.DefaultCategory &&
				p.Excerpt == "Tres puntos en casa...." &&
				p.Published
		})).
		Return(blog.Post{ID: 11, Slug: "victoria-en-el-derbi"}, nil).
		Once()

	got, err := service.Create(ctx, BlogInput{Title: "Victoria en el Derbi", Content: "Tres puntos en casa."})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	if got.ID != 11 || got.Slug != "victoria-en-el-derbi" {
		t.Fatalf("unexpected created post: %+v", got)
	}
}

func TestBlogService_Create_SuffixesTakenSlugUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := blogmock.NewRepository(t)
	service := NewBlogService(repo)
	service.now = func() time.Time { return time.UnixMilli(1714579200000) }

	repo.On("SlugExists", mock.Anything, "cronica").Return(true, nil).Once()
	repo.
		On("Create", mock.Anything, mock.MatchedBy(func(p blog.Post) bool { return p.Slug == "cronica-1714579200000" })).
		Return(blog.Post{ID: 2, Slug: "cronica-1714579200000"}, nil).
		Once()

	got, err := service.Create(ctx, BlogInput{Title: "Crónica", Content: "x"})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	if got.Slug != "cronica-1714579200000" {
		t.Fatalf("unexpected slug: %s", got.Slug)
	}
}

func TestBlogService_Create_RetriesOnInsertRaceUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := blogmock.NewRepository(t)
	service := NewBlogService(repo)
	service.now = func() time.Time { return time.UnixMilli(42) }

	repo.On("SlugExists", mock.Anything, "cronica").Return(false, nil).Once()
	repo.
		On("Create", mock.Anything, mock.MatchedBy(func(p blog.Post) bool { return p.Slug == "cronica" })).
		Return(blog.Post{}, blog.ErrDuplicateSlug).
		Once()
	repo.
		On("Create", mock.Anything, mock.MatchedBy(func(p blog.Post) bool { return p.Slug == "cronica-42" })).
		Return(blog.Post{ID: 3, Slug: "cronica-42"}, nil).
		Once()

	got, err := service.Create(ctx, BlogInput{Title: "Cronica", Content: "x"})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	if got.Slug != "cronica-42" {
		t.Fatalf("unexpected slug: %s", got.Slug)
	}
}

func TestBlogService_Create_RespectsExplicitUnpublish(t *testing.T) {
	t.Parallel()

	repo := blogmock.NewRepository(t)
	service := NewBlogService(repo)
	published := false

	repo.On("SlugExists", mock.Anything, "borrador").Return(false, nil).Once()
	repo.
		On("Create", mock.Anything, mock.MatchedBy(func(p blog.Post) bool { return !p.Published })).
		Return(blog.Post{ID: 4, Slug: "borrador"}, nil).
		Once()

	if _, err := service.Create(context.Background(), BlogInput{Title: "Borrador", Content: "x", Published: &published}); err != nil {
		t.Fatalf("create post: %v", err)
	}
}

func TestBlogService_Create_StoresContentAsSubmitted(t *testing.T) {
	t.Parallel()

	repo := blogmock.NewRepository(t)
	service := NewBlogService(repo)
	content := "    go run ./cmd/api\n\nAlineación confirmada.\n"

	repo.On("SlugExists", mock.Anything, "alineacion").Return(false, nil).Once()
	repo.
		On("Create", mock.Anything, mock.MatchedBy(func(p blog.Post) bool {
			return p.Content == content && p.Excerpt == "go run ./cmd/api\n\nAlineación confirmada...."
		})).
		Return(blog.Post{ID: 8, Slug: "alineacion"}, nil).
		Once()

	if _, err := service.Create(context.Background(), BlogInput{Title: "Alineación", Content: content}); err != nil {
		t.Fatalf("create post: %v", err)
	}

	view, err := service.RenderHTML(content)
	if err != nil {
		t.Fatalf("render post: %v", err)
	}
	if !strings.Contains(view, "<pre><code>go run ./cmd/api") {
		t.Fatalf("expected indented block to render as code, got %q", view)
	}
}

func TestBlogService_Create_RequiresTitleAndContent(t *testing.T) {
	t.Parallel()

	service := NewBlogService(blogmock.NewRepository(t))

	for _, input := range []BlogInput{
		{Title: "", Content: "x"},
		{Title: "Titulo", Content: "   "},
	} {
		if _, err := service.Create(context.Background(), input); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", input, err)
		}
	}
}

func TestBlogService_GetPublished_HidesDraftsUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := blogmock.NewRepository(t)
	service := NewBlogService(repo)

	repo.On("GetBySlug", mock.Anything, "borrador").Return(blog.Post{Slug: "borrador", Published: false}, true, nil).Once()
	if _, err := service.GetPublished(ctx, "borrador"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for draft, got %v", err)
	}

	repo.On("GetBySlug", mock.Anything, "portada").
		Return(blog.Post{Slug: "portada", Published: true, Content: "## Hola\n\n<script>alert(1)</script>"}, true, nil).
		Once()
	view, err := service.GetPublished(ctx, "portada")
	if err != nil {
		t.Fatalf("get published: %v", err)
	}
	if !strings.Contains(view.ContentHTML, "<h2") {
		t.Fatalf("expected rendered heading, got %q", view.ContentHTML)
	}
	if strings.Contains(view.ContentHTML, "<script>") {
		t.Fatalf("expected script to be stripped, got %q", view.ContentHTML)
	}
}

func TestBlogService_UpdateAndDelete_NotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := blogmock.NewRepository(t)
	service := NewBlogService(repo)

	repo.
		On("UpdateBySlug", mock.Anything, "missing", mock.MatchedBy(func(p blog.Post) bool { return p.Slug == "missing" })).
		Return(blog.Post{}, false, nil).
		Once()
	if _, err := service.Update(ctx, "missing", BlogInput{Title: "T", Content: "C"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on update, got %v", err)
	}

	repo.On("DeleteBySlug", mock.Anything, "missing").Return(false, nil).Once()
	if err := service.Delete(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on delete, got %v", err)
	}
}
