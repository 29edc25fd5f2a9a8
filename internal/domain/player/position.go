package player

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	SkillSpeed       = "velocidad"
	SkillStamina     = "resistencia"
	SkillStrength    = "fuerza"
	SkillTechnique   = "tecnica"
	SkillPassing     = "pase"
	SkillDribbling   = "regate"
	SkillDefending   = "defensa"
	SkillGoalkeeping = "porteria"
)

var positionSkills = map[Position][]string{
	PositionGoalkeeper: {SkillGoalkeeping, SkillSpeed, SkillStrength, SkillPassing},
	PositionDefender:   {SkillDefending, SkillStrength, SkillSpeed, SkillStamina, SkillPassing},
	PositionMidfielder: {SkillPassing, SkillTechnique, SkillDribbling, SkillStamina, SkillSpeed},
	PositionForward:    {SkillSpeed, SkillTechnique, SkillDribbling, SkillStrength, SkillPassing},
}

var allSkills = []string{
	SkillSpeed,
	SkillStamina,
	SkillStrength,
	SkillTechnique,
	SkillPassing,
	SkillDribbling,
	SkillDefending,
	SkillGoalkeeping,
}

// SkillsForPosition lists the skill names shown on a profile for the given position.
// Unknown positions get every skill.
func SkillsForPosition(position Position) []string {
	names, ok := positionSkills[NormalizePosition(position)]
	if !ok {
		names = allSkills
	}
	return append([]string(nil), names...)
}

// NormalizePosition maps case and accent variants of the canonical positions
// ("portero", "DELANTERO", "Défensa") onto the canonical value. Anything else is
// returned trimmed.
func NormalizePosition(position Position) Position {
	trimmed := strings.TrimSpace(string(position))
	folded := foldAccents(trimmed)
	for canonical := range positionSkills {
		if strings.EqualFold(folded, string(canonical)) {
			return canonical
		}
	}
	return Position(trimmed)
}

func foldAccents(s string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s)
	if err != nil {
		return s
	}
	return folded
}
