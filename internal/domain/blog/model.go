package blog

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	DefaultAuthor   = "Admin"
	DefaultCategory = "General"
	// FallbackSlug is used when a title has no slug-safe characters at all.
	FallbackSlug = "post"

	excerptRunes = 150
)

// ErrDuplicateSlug is returned by repositories when the slug is already stored.
var ErrDuplicateSlug = errors.New("blog slug already exists")

// Post is a news article shown on the club website.
type Post struct {
	ID               int64
	Title            string
	Slug             string
	Content          string
	Excerpt          string
	Author           string
	CoverImage       string
	AdditionalImages []string
	Category         string
	Tags             []string
	Published        bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (p Post) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if strings.TrimSpace(p.Content) == "" {
		return fmt.Errorf("content is required")
	}
	if strings.TrimSpace(p.Slug) == "" {
		return fmt.Errorf("slug is required")
	}
	return nil
}

// ApplyDefaults fills excerpt, author and category and normalizes list fields.
func (p *Post) ApplyDefaults() {
	p.Title = strings.TrimSpace(p.Title)
	if strings.TrimSpace(p.Excerpt) == "" {
		p.Excerpt = Excerpt(p.Content)
	}
	if strings.TrimSpace(p.Author) == "" {
		p.Author = DefaultAuthor
	}
	if strings.TrimSpace(p.Category) == "" {
		p.Category = DefaultCategory
	}
	p.Tags = NormalizeTags(p.Tags)
	p.AdditionalImages = compact(p.AdditionalImages)
}

// Excerpt returns the first 150 runes of content followed by "...".
func Excerpt(content string) string {
	content = strings.TrimSpace(content)
	if utf8.RuneCountInString(content) <= excerptRunes {
		return content + "..."
	}
	return string([]rune(content)[:excerptRunes]) + "..."
}

// NormalizeTags trims tags and drops blanks and duplicates, keeping first-seen order.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

func compact(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Slugify derives a URL-safe slug from a title: accents are folded, the result
// is lowercased, anything outside [a-z0-9 -] is dropped and whitespace becomes '-'.
func Slugify(title string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), title)
	if err != nil {
		folded = title
	}
	folded = strings.ToLower(folded)

	var b strings.Builder
	b.Grow(len(folded))
	pendingDash := false
	for _, r := range folded {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
		case r == '-' || unicode.IsSpace(r):
			pendingDash = true
		}
	}

	if b.Len() == 0 {
		return FallbackSlug
	}
	return b.String()
}

// SuffixSlug makes a colliding slug unique by appending a millisecond timestamp.
func SuffixSlug(slug string, at time.Time) string {
	return fmt.Sprintf("%s-%d", slug, at.UnixMilli())
}
