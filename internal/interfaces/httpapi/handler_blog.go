package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/club-website/internal/domain/blog"
	"github.com/riskibarqy/club-website/internal/usecase"
)

func (h *Handler) ListPublishedPosts(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPublishedPosts")
	defer span.End()

	posts, err := h.blogService.ListPublished(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list blog posts failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, postsToDTO(posts))
}

func (h *Handler) ListAllPosts(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAllPosts")
	defer span.End()

	posts, err := h.blogService.ListAll(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list all blog posts failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, postsToDTO(posts))
}

func (h *Handler) GetPublishedPost(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPublishedPost")
	defer span.End()

	slug := strings.TrimSpace(r.PathValue("slug"))
	view, err := h.blogService.GetPublished(ctx, slug)
	if err != nil {
		h.logger.WarnContext(ctx, "get blog post failed", "slug", slug, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, blogPostDetailDTO{
		blogPostDTO: postToDTO(view.Post),
		ContentHTML: view.ContentHTML,
	})
}

func (h *Handler) GetPostForAdmin(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPostForAdmin")
	defer span.End()

	slug := strings.TrimSpace(r.PathValue("slug"))
	post, err := h.blogService.GetBySlug(ctx, slug)
	if err != nil {
		h.logger.WarnContext(ctx, "get blog post for admin failed", "slug", slug, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, postToDTO(post))
}

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePost")
	defer span.End()

	var req blogPostRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		h.logger.WarnContext(ctx, "decode blog post failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	post, err := h.blogService.Create(ctx, req.toInput())
	if err != nil {
		h.logger.ErrorContext(ctx, "create blog post failed", "title", req.Title, "error", err)
		writeStoreError(ctx, w, "Error creating blog post", err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, blogCreatedDTO{Success: true, ID: post.ID, Slug: post.Slug})
}

func (h *Handler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePost")
	defer span.End()

	slug := strings.TrimSpace(r.PathValue("slug"))
	var req blogPostRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		h.logger.WarnContext(ctx, "decode blog post failed", "slug", slug, "error", err)
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if _, err := h.blogService.Update(ctx, slug, req.toInput()); err != nil {
		h.logger.WarnContext(ctx, "update blog post failed", "slug", slug, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, successBody{Success: true})
}

func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePost")
	defer span.End()

	slug := strings.TrimSpace(r.PathValue("slug"))
	if err := h.blogService.Delete(ctx, slug); err != nil {
		h.logger.WarnContext(ctx, "delete blog post failed", "slug", slug, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, successBody{Success: true})
}

type blogPostRequest struct {
	Title            string   `json:"title" validate:"required,max=200"`
	Content          string   `json:"content" validate:"required"`
	Excerpt          string   `json:"excerpt" validate:"max=500"`
	Author           string   `json:"author" validate:"max=100"`
	Category         string   `json:"category" validate:"max=100"`
	CoverImage       string   `json:"coverImage"`
	AdditionalImages []string `json:"additionalImages"`
	Tags             []string `json:"tags" validate:"max=30,dive,max=50"`
	Published        *bool    `json:"published"`
}

func (r blogPostRequest) toInput() usecase.BlogInput {
	return usecase.BlogInput{
		Title:            r.Title,
		Content:          r.Content,
		Excerpt:          r.Excerpt,
		Author:           r.Author,
		Category:         r.Category,
		CoverImage:       r.CoverImage,
		AdditionalImages: r.AdditionalImages,
		Tags:             r.Tags,
		Published:        r.Published,
	}
}

type blogPostDTO struct {
	ID               int64    `json:"id"`
	Title            string   `json:"title"`
	Slug             string   `json:"slug"`
	Content          string   `json:"content"`
	Excerpt          string   `json:"excerpt"`
	Author           string   `json:"author"`
	CoverImage       string   `json:"coverImage"`
	AdditionalImages []string `json:"additionalImages"`
	Category         string   `json:"category"`
	Tags             []string `json:"tags"`
	Published        bool     `json:"published"`
	CreatedAt        string   `json:"createdAt"`
	UpdatedAt        string   `json:"updatedAt"`
}

type blogPostDetailDTO struct {
	blogPostDTO
	ContentHTML string `json:"contentHtml"`
}

type blogCreatedDTO struct {
	Success bool   `json:"success"`
	ID      int64  `json:"id"`
	Slug    string `json:"slug"`
}

func postToDTO(p blog.Post) blogPostDTO {
	return blogPostDTO{
		ID:               p.ID,
		Title:            p.Title,
		Slug:             p.Slug,
		Content:          p.Content,
		Excerpt:          p.Excerpt,
		Author:           p.Author,
		CoverImage:       p.CoverImage,
		AdditionalImages: nonNilStrings(p.AdditionalImages),
		Category:         p.Category,
		Tags:             nonNilStrings(p.Tags),
		Published:        p.Published,
		CreatedAt:        formatTime(p.CreatedAt),
		UpdatedAt:        formatTime(p.UpdatedAt),
	}
}

func postsToDTO(posts []blog.Post) []blogPostDTO {
	items := make([]blogPostDTO, 0, len(posts))
	for _, p := range posts {
		items = append(items, postToDTO(p))
	}
	return items
}

func nonNilStrings(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

