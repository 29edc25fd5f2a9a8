package player

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Position is free text in storage; these are the values the admin form offers.
type Position string

const (
	PositionGoalkeeper Position = "Portero"
	PositionDefender   Position = "Defensa"
	PositionMidfielder Position = "Centrocampista"
	PositionForward    Position = "Delantero"
)

const (
	MinNumber = 1
	MaxNumber = 99

	MinSkill     = 0
	MaxSkill     = 100
	DefaultSkill = 50
)

// ErrDuplicateNumber is returned by repositories when the squad number is taken.
var ErrDuplicateNumber = errors.New("player squad number already exists")

// Stats are season totals.
type Stats struct {
	MatchesPlayed int
	Goals         int
	Assists       int
	YellowCards   int
	RedCards      int
	MinutesPlayed int
}

// Skills are 0..100 ratings. Every player stores the full set; SkillsForPosition
// picks the ones worth showing.
type Skills struct {
	Speed       int
	Stamina     int
	Strength    int
	Technique   int
	Passing     int
	Dribbling   int
	Defending   int
	Goalkeeping int
}

// Player is a member of the club squad.
type Player struct {
	ID           int64
	Number       int
	FirstName    string
	LastName     string
	Position     Position
	Age          int
	Height       string
	Weight       string
	Nationality  string
	BirthDate    *time.Time
	BirthPlace   string
	Photo        string
	Stats        Stats
	Skills       Skills
	Biography    string
	Achievements []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (p Player) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

func (p Player) Validate() error {
	if p.Number < MinNumber || p.Number > MaxNumber {
		return fmt.Errorf("squad number must be between %d and %d", MinNumber, MaxNumber)
	}
	if strings.TrimSpace(p.FirstName) == "" {
		return fmt.Errorf("player first name is required")
	}
	if strings.TrimSpace(string(p.Position)) == "" {
		return fmt.Errorf("player position is required")
	}
	if p.Age < 0 {
		return fmt.Errorf("player age cannot be negative")
	}

	for _, stat := range p.Stats.byName() {
		if stat.value < 0 {
			return fmt.Errorf("%s cannot be negative", stat.name)
		}
	}
	for _, skill := range p.Skills.byName() {
		if skill.value < MinSkill || skill.value > MaxSkill {
			return fmt.Errorf("%s must be between %d and %d", skill.name, MinSkill, MaxSkill)
		}
	}

	return nil
}

// NewSkills returns a skill set with every rating at DefaultSkill.
func NewSkills() Skills {
	return Skills{
		Speed:       DefaultSkill,
		Stamina:     DefaultSkill,
		Strength:    DefaultSkill,
		Technique:   DefaultSkill,
		Passing:     DefaultSkill,
		Dribbling:   DefaultSkill,
		Defending:   DefaultSkill,
		Goalkeeping: DefaultSkill,
	}
}

type namedValue struct {
	name  string
	value int
}

func (s Stats) byName() []namedValue {
	return []namedValue{
		{"partidos_jugados", s.MatchesPlayed},
		{"goles", s.Goals},
		{"asistencias", s.Assists},
		{"tarjetas_amarillas", s.YellowCards},
		{"tarjetas_rojas", s.RedCards},
		{"minutos_jugados", s.MinutesPlayed},
	}
}

// byName follows the allSkills order.
func (s Skills) byName() []namedValue {
	return []namedValue{
		{SkillSpeed, s.Speed},
		{SkillStamina, s.Stamina},
		{SkillStrength, s.Strength},
		{SkillTechnique, s.Technique},
		{SkillPassing, s.Passing},
		{SkillDribbling, s.Dribbling},
		{SkillDefending, s.Defending},
		{SkillGoalkeeping, s.Goalkeeping},
	}
}
