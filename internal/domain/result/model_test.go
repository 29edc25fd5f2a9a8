package result

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		goalsFor, goalsAgainst int
		want                   Outcome
		label                  string
	}{
		{goalsFor: 3, goalsAgainst: 1, want: OutcomeWin, label: "Victoria"},
		{goalsFor: 2, goalsAgainst: 2, want: OutcomeDraw, label: "Empate"},
		{goalsFor: 0, goalsAgainst: 0, want: OutcomeDraw, label: "Empate"},
		{goalsFor: 0, goalsAgainst: 1, want: OutcomeLoss, label: "Derrota"},
	}
	for _, tc := range tests {
		got := Classify(tc.goalsFor, tc.goalsAgainst)
		if got != tc.want {
			t.Fatalf("Classify(%d, %d) = %s, want %s", tc.goalsFor, tc.goalsAgainst, got, tc.want)
		}
		if got.Label() != tc.label {
			t.Fatalf("unexpected label for %s: %s", got, got.Label())
		}
	}
}

func TestResult_Score(t *testing.T) {
	home := Result{GoalsFor: 2, GoalsAgainst: 1, Home: true}
	if home.Score() != "2-1" {
		t.Fatalf("unexpected home score: %s", home.Score())
	}
	away := Result{GoalsFor: 2, GoalsAgainst: 1}
	if away.Score() != "1-2" {
		t.Fatalf("unexpected away score: %s", away.Score())
	}
}

func TestResult_Normalize(t *testing.T) {
	r := Result{Opponent: "CD Sur", Date: "2024-04-20", GoalsFor: 1}
	if err := r.Normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if r.Competition != "Liga" {
		t.Fatalf("expected default competition, got %q", r.Competition)
	}

	bad := Result{Opponent: "CD Sur", Date: "2024-04-20", GoalsAgainst: -1}
	if err := bad.Normalize(); err == nil {
		t.Fatalf("expected negative goals error")
	}
}
