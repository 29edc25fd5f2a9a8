package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/club-website/internal/infrastructure/repository/memory"
	qb "github.com/riskibarqy/club-website/internal/platform/querybuilder"
)

// BootstrapSeed loads the sample club content into an empty database. It is a
// no-op once any blog post exists.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) (bool, error) {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM blog_posts`); err != nil {
		return false, fmt.Errorf("count blog posts for bootstrap seed: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, p := range memory.SeedBlogPosts() {
		query, args, err := qb.InsertModel("blog_posts", blogPostWriteFromDomain(p), "ON CONFLICT (slug) DO NOTHING")
		if err != nil {
			return false, fmt.Errorf("build seed blog post %s query: %w", p.Slug, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return false, fmt.Errorf("seed blog post %s: %w", p.Slug, err)
		}
		if _, err := tx.ExecContext(ctx, `UPDATE blog_posts SET created_at = $1, updated_at = $2 WHERE slug = $3`, p.CreatedAt, p.UpdatedAt, p.Slug); err != nil {
			return false, fmt.Errorf("seed blog post %s timestamps: %w", p.Slug, err)
		}
	}

	for _, p := range memory.SeedPlayers() {
		query, args, err := qb.InsertModel("players", playerWriteFromDomain(p), "ON CONFLICT (numero) DO NOTHING")
		if err != nil {
			return false, fmt.Errorf("build seed player %d query: %w", p.Number, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return false, fmt.Errorf("seed player %d: %w", p.Number, err)
		}
	}

	for _, m := range memory.SeedMatches() {
		query, args, err := qb.InsertModel("proximos_partidos", matchWriteFromDomain(m), "")
		if err != nil {
			return false, fmt.Errorf("build seed match %s query: %w", m.Opponent, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return false, fmt.Errorf("seed match %s: %w", m.Opponent, err)
		}
	}

	for _, r := range memory.SeedResults() {
		query, args, err := qb.InsertModel("ultimos_resultados", resultWriteFromDomain(r), "")
		if err != nil {
			return false, fmt.Errorf("build seed result %s query: %w", r.Opponent, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return false, fmt.Errorf("seed result %s: %w", r.Opponent, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit seed tx: %w", err)
	}

	return true, nil
}
