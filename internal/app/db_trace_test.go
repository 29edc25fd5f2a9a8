package app

import (
	"strings"
	"testing"
)

func TestFormatDBQueryForTrace(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{name: "empty", query: "   ", want: ""},
		{
			name:  "collapses whitespace",
			query: "SELECT id, slug\n\t FROM blog_posts\n WHERE slug = $1",
			want:  "SELECT id, slug FROM blog_posts WHERE slug = $1",
		},
		{
			name:  "masks literals",
			query: "UPDATE admin_users SET password_hash = '$2a$10$abc' WHERE username = 'o''neill'",
			want:  "UPDATE admin_users SET password_hash = '?' WHERE username = '?'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatDBQueryForTrace(tt.query); got != tt.want {
				t.Fatalf("formatDBQueryForTrace()=%q want=%q", got, tt.want)
			}
		})
	}
}

func TestFormatDBQueryForTrace_Truncates(t *testing.T) {
	query := "SELECT * FROM players WHERE id IN (" + strings.Repeat("$1, ", 200) + "$2)"
	got := formatDBQueryForTrace(query)
	if len(got) != maxTracedQueryLength+len("...") || !strings.HasSuffix(got, "...") {
		t.Fatalf("expected truncated query, got len=%d", len(got))
	}
}
