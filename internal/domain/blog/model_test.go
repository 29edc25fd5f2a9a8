package blog

import (
	"strings"
	"testing"
	"time"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{name: "plain", title: "Victoria en casa", want: "victoria-en-casa"},
		{name: "accents folded", title: "Crónica: el Club gana la Copa del Rey", want: "cronica-el-club-gana-la-copa-del-rey"},
		{name: "enye folded", title: "Año de éxitos", want: "ano-de-exitos"},
		{name: "whitespace and hyphen runs", title: "  Fichaje  --  nuevo   delantero ", want: "fichaje-nuevo-delantero"},
		{name: "symbols dropped", title: "¡3-1! ¿Qué partido?", want: "3-1-que-partido"},
		{name: "only symbols", title: "!!! ???", want: FallbackSlug},
		{name: "empty", title: "", want: FallbackSlug},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Slugify(tc.title); got != tc.want {
				t.Fatalf("Slugify(%q) = %q, want %q", tc.title, got, tc.want)
			}
		})
	}
}

func TestSlugify_Idempotent(t *testing.T) {
	first := Slugify("Pretemporada 2024: Calendario Completo")
	if again := Slugify(first); again != first {
		t.Fatalf("expected idempotent slug, got %q then %q", first, again)
	}
}

func TestSuffixSlug(t *testing.T) {
	at := time.UnixMilli(1714579200123)
	if got := SuffixSlug("victoria", at); got != "victoria-1714579200123" {
		t.Fatalf("unexpected suffixed slug: %s", got)
	}
}

func TestExcerpt(t *testing.T) {
	short := "Gran partido del equipo."
	if got := Excerpt(short); got != short+"..." {
		t.Fatalf("unexpected short excerpt: %q", got)
	}

	long := strings.Repeat("á", 200)
	got := Excerpt(long)
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("expected ellipsis suffix: %q", got)
	}
	if n := len([]rune(strings.TrimSuffix(got, "..."))); n != 150 {
		t.Fatalf("expected 150 runes, got %d", n)
	}
}

func TestPost_ApplyDefaults(t *testing.T) {
	p := Post{
		Title:            "  Nuevo fichaje ",
		Content:          "Contenido",
		Tags:             []string{" fichajes", "", "fichajes", "mercado"},
		AdditionalImages: []string{"", "https://cdn.example.com/a.jpg"},
	}
	p.ApplyDefaults()

	if p.Title != "Nuevo fichaje" {
		t.Fatalf("unexpected title: %q", p.Title)
	}
	if p.Author != DefaultAuthor || p.Category != DefaultCategory {
		t.Fatalf("unexpected defaults: author=%q category=%q", p.Author, p.Category)
	}
	if p.Excerpt != "Contenido..." {
		t.Fatalf("unexpected excerpt: %q", p.Excerpt)
	}
	if len(p.Tags) != 2 || p.Tags[0] != "fichajes" || p.Tags[1] != "mercado" {
		t.Fatalf("unexpected tags: %+v", p.Tags)
	}
	if len(p.AdditionalImages) != 1 {
		t.Fatalf("unexpected images: %+v", p.AdditionalImages)
	}
}

func TestPost_Validate(t *testing.T) {
	if err := (Post{Title: "a", Content: "b", Slug: "a"}).Validate(); err != nil {
		t.Fatalf("expected valid post: %v", err)
	}
	if err := (Post{Title: " ", Content: "b", Slug: "a"}).Validate(); err == nil {
		t.Fatalf("expected missing title error")
	}
	if err := (Post{Title: "a", Content: "", Slug: "a"}).Validate(); err == nil {
		t.Fatalf("expected missing content error")
	}
}
