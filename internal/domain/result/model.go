package result

import (
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/club-website/internal/domain/match"
)

// Outcome is derived from the score and never stored.
type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeDraw Outcome = "draw"
	OutcomeLoss Outcome = "loss"
)

// Classify returns the outcome from the club's point of view.
func Classify(goalsFor, goalsAgainst int) Outcome {
	switch {
	case goalsFor > goalsAgainst:
		return OutcomeWin
	case goalsFor < goalsAgainst:
		return OutcomeLoss
	default:
		return OutcomeDraw
	}
}

// Label is the text shown on the public site.
func (o Outcome) Label() string {
	switch o {
	case OutcomeWin:
		return "Victoria"
	case OutcomeLoss:
		return "Derrota"
	case OutcomeDraw:
		return "Empate"
	default:
		return ""
	}
}

// Result is a played match.
type Result struct {
	ID           int64
	Opponent     string
	Date         string
	GoalsFor     int
	GoalsAgainst int
	Home         bool
	Competition  string
	Venue        *string
	CreatedAt    time.Time
}

func (r Result) Outcome() Outcome {
	return Classify(r.GoalsFor, r.GoalsAgainst)
}

// Score renders the scoreline with the home side first.
func (r Result) Score() string {
	if r.Home {
		return fmt.Sprintf("%d-%d", r.GoalsFor, r.GoalsAgainst)
	}
	return fmt.Sprintf("%d-%d", r.GoalsAgainst, r.GoalsFor)
}

func (r *Result) Normalize() error {
	r.Opponent = strings.TrimSpace(r.Opponent)
	r.Competition = strings.TrimSpace(r.Competition)
	if r.Competition == "" {
		r.Competition = match.DefaultCompetition
	}
	r.Venue = match.NormalizeVenue(r.Venue)

	date, err := match.NormalizeDate(r.Date)
	if err != nil {
		return err
	}
	r.Date = date

	if r.GoalsFor < 0 || r.GoalsAgainst < 0 {
		return fmt.Errorf("goals cannot be negative")
	}
	return nil
}
