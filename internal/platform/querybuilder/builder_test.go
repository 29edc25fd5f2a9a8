package querybuilder

import (
	"testing"
	"time"
)

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "titulo").
		From("blog_posts").
		Where(Eq("publicado", true), Eq("slug", "borrador")).
		OrderBy("created_at DESC", "id DESC").
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, titulo FROM blog_posts WHERE publicado = $1 AND slug = $2 ORDER BY created_at DESC, id DESC"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != true || args[1] != "borrador" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_Expr(t *testing.T) {
	since := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	query, args, err := Select("COUNT(*) AS total").
		From("visits").
		Where(Eq("page_url", "/blog"), Expr("created_at >= ? AND created_at < ?", since, since.AddDate(0, 1, 0))).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT COUNT(*) AS total FROM visits WHERE page_url = $1 AND created_at >= $2 AND created_at < $3"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[1] != since {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("proximos_partidos").
		Columns("rival", "fecha").
		Values("CD Norte", "2024-05-01").
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO proximos_partidos (rival, fecha) VALUES ($1, $2) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "CD Norte" || args[1] != "2024-05-01" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_ValueCountMismatch(t *testing.T) {
	if _, _, err := InsertInto("players").Columns("numero", "nombre").Values(9).ToSQL(); err == nil {
		t.Fatalf("expected error for mismatched values")
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("blog_posts").
		Set("titulo", "new").
		SetExpr("updated_at", "NOW()").
		Where(Eq("slug", "hola")).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE blog_posts SET titulo = $1, updated_at = NOW() WHERE slug = $2 RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "new" || args[1] != "hola" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder_RequiresWhere(t *testing.T) {
	if _, _, err := Update("players").Set("goles", 1).ToSQL(); err == nil {
		t.Fatalf("expected error for update without where")
	}
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("admin_sessions").
		Where(Expr("expires_at <= ?", "2024-01-01"), Eq("username", "admin")).
		ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}

	wantQuery := "DELETE FROM admin_sessions WHERE expires_at <= $1 AND username = $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := DeleteFrom("players").ToSQL(); err == nil {
		t.Fatalf("expected error for delete without where")
	}
}

type matchRow struct {
	ID     int64  `db:"id"`
	Rival  string `db:"rival"`
	Fecha  string `db:"fecha"`
	hidden string
	Note   string `db:"-"`
}

func TestInsertModel_SkipsColumns(t *testing.T) {
	query, args, err := InsertModel("proximos_partidos", matchRow{ID: 7, Rival: "CD Norte", Fecha: "2024-05-01"}, "RETURNING id", "id")
	if err != nil {
		t.Fatalf("build insert model query: %v", err)
	}

	wantQuery := "INSERT INTO proximos_partidos (rival, fecha) VALUES ($1, $2) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "CD Norte" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateModel(t *testing.T) {
	query, args, err := UpdateModel("proximos_partidos", &matchRow{ID: 7, Rival: "CD Sur", Fecha: "2024-06-01"}, []Condition{Eq("id", int64(7))}, "", "id")
	if err != nil {
		t.Fatalf("build update model query: %v", err)
	}

	wantQuery := "UPDATE proximos_partidos SET rival = $1, fecha = $2 WHERE id = $3"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[2] != int64(7) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateFromModel_WithExpr(t *testing.T) {
	b, err := UpdateFromModel("proximos_partidos", matchRow{Rival: "CD Sur", Fecha: "2024-06-01"}, "id", "fecha")
	if err != nil {
		t.Fatalf("update from model: %v", err)
	}
	query, args, err := b.SetExpr("updated_at", "NOW()").Where(Eq("id", int64(3))).ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE proximos_partidos SET rival = $1, updated_at = NOW() WHERE id = $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "CD Sur" {
		t.Fatalf("unexpected args: %+v", args)
	}
}
