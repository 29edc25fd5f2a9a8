package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/club-website/internal/domain/blog"
	qb "github.com/riskibarqy/club-website/internal/platform/querybuilder"
)

const blogSlugConstraint = "blog_posts_slug_key"

type BlogRepository struct {
	db *sqlx.DB
}

func NewBlogRepository(db *sqlx.DB) *BlogRepository {
	return &BlogRepository{db: db}
}

func (r *BlogRepository) List(ctx context.Context, onlyPublished bool) ([]blog.Post, error) {
	b := qb.Select("*").From("blog_posts").OrderBy("created_at DESC", "id DESC")
	if onlyPublished {
		b.Where(qb.Eq("publicado", true))
	}
	query, args, err := b.ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build list blog posts query")
	}

	var rows []blogPostTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "list blog posts")
	}

	out := make([]blog.Post, 0, len(rows))
	for _, row := range rows {
		out = append(out, blogPostFromRow(row))
	}
	return out, nil
}

func (r *BlogRepository) GetBySlug(ctx context.Context, slug string) (blog.Post, bool, error) {
	query, args, err := qb.Select("*").From("blog_posts").
		Where(qb.Eq("slug", slug)).
		ToSQL()
	if err != nil {
		return blog.Post{}, false, crerr.Wrap(err, "build get blog post by slug query")
	}

	var row blogPostTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return blog.Post{}, false, nil
		}
		return blog.Post{}, false, crerr.Wrapf(err, "get blog post by slug=%s", slug)
	}
	return blogPostFromRow(row), true, nil
}

func (r *BlogRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	query, args, err := qb.Select("COUNT(*)").From("blog_posts").
		Where(qb.Eq("slug", slug)).
		ToSQL()
	if err != nil {
		return false, crerr.Wrap(err, "build blog slug exists query")
	}

	var count int64
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return false, crerr.Wrapf(err, "check blog slug=%s", slug)
	}
	return count > 0, nil
}

func (r *BlogRepository) Create(ctx context.Context, post blog.Post) (blog.Post, error) {
	query, args, err := qb.InsertModel("blog_posts", blogPostWriteFromDomain(post), "RETURNING *")
	if err != nil {
		return blog.Post{}, crerr.Wrap(err, "build create blog post query")
	}

	var row blogPostTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isUniqueViolation(err, blogSlugConstraint) {
			return blog.Post{}, crerr.Wrapf(blog.ErrDuplicateSlug, "create blog post slug=%s", post.Slug)
		}
		return blog.Post{}, crerr.Wrap(err, "create blog post")
	}
	return blogPostFromRow(row), nil
}

func (r *BlogRepository) UpdateBySlug(ctx context.Context, slug string, post blog.Post) (blog.Post, bool, error) {
	b, err := qb.UpdateFromModel("blog_posts", blogPostWriteFromDomain(post), "slug")
	if err != nil {
		return blog.Post{}, false, crerr.Wrap(err, "build update blog post query")
	}
	query, args, err := b.SetExpr("updated_at", "NOW()").
		Where(qb.Eq("slug", slug)).
		Suffix("RETURNING *").
		ToSQL()
	if err != nil {
		return blog.Post{}, false, crerr.Wrap(err, "build update blog post query")
	}

	var row blogPostTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return blog.Post{}, false, nil
		}
		return blog.Post{}, false, crerr.Wrapf(err, "update blog post slug=%s", slug)
	}
	return blogPostFromRow(row), true, nil
}

func (r *BlogRepository) DeleteBySlug(ctx context.Context, slug string) (bool, error) {
	query, args, err := qb.DeleteFrom("blog_posts").Where(qb.Eq("slug", slug)).ToSQL()
	if err != nil {
		return false, crerr.Wrap(err, "build delete blog post query")
	}
	return execAffected(ctx, r.db, "delete blog post", query, args)
}

func execAffected(ctx context.Context, db *sqlx.DB, op, query string, args []any) (bool, error) {
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, crerr.Wrap(err, op)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, crerr.Wrapf(err, "rows affected %s", op)
	}
	return affected > 0, nil
}
