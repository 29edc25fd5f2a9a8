package postgres

import (
	"time"

	"github.com/lib/pq"
	"github.com/riskibarqy/club-website/internal/domain/blog"
)

type blogPostTableModel struct {
	ID               int64          `db:"id"`
	Title            string         `db:"titulo"`
	Slug             string         `db:"slug"`
	Content          string         `db:"contenido"`
	Excerpt          string         `db:"resumen"`
	Author           string         `db:"autor"`
	CoverImage       string         `db:"imagen_portada"`
	AdditionalImages pq.StringArray `db:"imagenes_adicionales"`
	Category         string         `db:"categoria"`
	Tags             pq.StringArray `db:"tags"`
	Published        bool           `db:"publicado"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
}

type blogPostWriteModel struct {
	Title            string         `db:"titulo"`
	Slug             string         `db:"slug"`
	Content          string         `db:"contenido"`
	Excerpt          string         `db:"resumen"`
	Author           string         `db:"autor"`
	CoverImage       string         `db:"imagen_portada"`
	AdditionalImages pq.StringArray `db:"imagenes_adicionales"`
	Category         string         `db:"categoria"`
	Tags             pq.StringArray `db:"tags"`
	Published        bool           `db:"publicado"`
}

func blogPostWriteFromDomain(p blog.Post) blogPostWriteModel {
	return blogPostWriteModel{
		Title:            p.Title,
		Slug:             p.Slug,
		Content:          p.Content,
		Excerpt:          p.Excerpt,
		Author:           p.Author,
		CoverImage:       p.CoverImage,
		AdditionalImages: stringArray(p.AdditionalImages),
		Category:         p.Category,
		Tags:             stringArray(p.Tags),
		Published:        p.Published,
	}
}

func blogPostFromRow(row blogPostTableModel) blog.Post {
	return blog.Post{
		ID:               row.ID,
		Title:            row.Title,
		Slug:             row.Slug,
		Content:          row.Content,
		Excerpt:          row.Excerpt,
		Author:           row.Author,
		CoverImage:       row.CoverImage,
		AdditionalImages: append([]string{}, row.AdditionalImages...),
		Category:         row.Category,
		Tags:             append([]string{}, row.Tags...),
		Published:        row.Published,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
}
