package memory

import (
	"time"

	"github.com/riskibarqy/club-website/internal/domain/blog"
	"github.com/riskibarqy/club-website/internal/domain/match"
	"github.com/riskibarqy/club-website/internal/domain/player"
	"github.com/riskibarqy/club-website/internal/domain/result"
)

func SeedBlogPosts() []blog.Post {
	return []blog.Post{
		{
			Title: "Análisis Táctico: La Nueva Formación 4-3-3 de Los Leones",
			Slug:  "analisis-tactico-formacion-4-3-3-los-leones",
			Content: `El cuerpo técnico de Los Leones FC ha implementado una nueva formación 4-3-3 que está dando excelentes resultados en los últimos partidos.

## Ventajas de la Formación 4-3-3

- **Mayor control del mediocampo**: con tres centrocampistas dominamos el centro del campo
- **Amplitud en ataque**: los extremos abren el juego y crean espacios
- **Presión alta**: facilita el pressing coordinado en campo rival

Esta nueva táctica promete seguir dando frutos en los próximos encuentros.`,
			Excerpt:   "Descubre cómo la nueva formación 4-3-3 está revolucionando el juego de Los Leones FC y las claves tácticas de nuestro éxito reciente.",
			Author:    blog.DefaultAuthor,
			Category:  "Táctica",
			Tags:      []string{"táctica", "primer equipo"},
			Published: true,
			CreatedAt: time.Date(2024, 3, 18, 10, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 3, 18, 10, 0, 0, 0, time.UTC),
		},
		{
			Title: "La Cantera de Los Leones: Formando Futuras Estrellas",
			Slug:  "cantera-los-leones-formando-futuras-estrellas",
			Content: `La cantera de Los Leones FC es el corazón de nuestro club. Con más de 200 jóvenes talentos en nuestras categorías inferiores, trabajamos día a día para formar grandes futbolistas y grandes personas.

## Instalaciones

- 3 campos de fútbol 11
- 2 campos de fútbol 7
- Gimnasio completamente equipado`,
			Excerpt:   "Conoce el trabajo que realizamos en nuestra cantera, donde formamos a los futuros talentos del fútbol.",
			Author:    blog.DefaultAuthor,
			Category:  "Cantera",
			Tags:      []string{"cantera"},
			Published: true,
			CreatedAt: time.Date(2024, 3, 16, 14, 30, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 3, 16, 14, 30, 0, 0, time.UTC),
		},
		{
			Title: "Entrevista Exclusiva: El Presidente Habla del Futuro del Club",
			Slug:  "entrevista-exclusiva-presidente-futuro-club",
			Content: `En una entrevista exclusiva, el presidente de Los Leones FC repasa los objetivos deportivos de la temporada y los proyectos de mejora de las instalaciones.

> Queremos un club que crezca desde la cantera.`,
			Excerpt:   "El presidente repasa los objetivos de la temporada y los planes para el futuro del club.",
			Author:    "Prensa",
			Category:  "Entrevistas",
			Tags:      []string{"club", "entrevista"},
			Published: true,
			CreatedAt: time.Date(2024, 3, 14, 9, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 3, 14, 9, 0, 0, 0, time.UTC),
		},
	}
}

func SeedPlayers() []player.Player {
	goalkeeper := player.NewSkills()
	goalkeeper.Goalkeeping = 84
	goalkeeper.Strength = 72

	midfielder := player.NewSkills()
	midfielder.Passing = 86
	midfielder.Technique = 81
	midfielder.Stamina = 78

	forward := player.NewSkills()
	forward.Speed = 88
	forward.Dribbling = 80
	forward.Technique = 79

	return []player.Player{
		{
			Number:       1,
			FirstName:    "Javier",
			LastName:     "Morales",
			Position:     player.PositionGoalkeeper,
			Age:          29,
			Height:       "1.89 m",
			Weight:       "84 kg",
			Nationality:  "España",
			Stats:        player.Stats{MatchesPlayed: 24, MinutesPlayed: 2160, YellowCards: 2},
			Skills:       goalkeeper,
			Achievements: []string{"Zamora de la categoría 2023"},
		},
		{
			Number:       8,
			FirstName:    "Pedro",
			LastName:     "Sánchez",
			Position:     player.PositionMidfielder,
			Age:          27,
			Height:       "1.76 m",
			Weight:       "71 kg",
			Nationality:  "España",
			Stats:        player.Stats{MatchesPlayed: 25, Goals: 4, Assists: 9, YellowCards: 5, MinutesPlayed: 2115},
			Skills:       midfielder,
			Biography:    "Capitán del equipo. Llegó a la cantera con 8 años.",
			Achievements: []string{"Capitán desde 2022"},
		},
		{
			Number:      9,
			FirstName:   "Luis",
			LastName:    "Rodríguez",
			Position:    player.PositionForward,
			Age:         24,
			Height:      "1.81 m",
			Weight:      "76 kg",
			Nationality: "España",
			Stats:       player.Stats{MatchesPlayed: 23, Goals: 15, Assists: 6, YellowCards: 3, MinutesPlayed: 1870},
			Skills:      forward,
		},
	}
}

func SeedMatches() []match.Match {
	home := "Estadio Municipal"
	return []match.Match{
		{Opponent: "CD Norte", Date: "2024-05-01", Time: "18:00", Home: true, Competition: match.DefaultCompetition, Venue: &home},
		{Opponent: "Atlético Sur", Date: "2024-05-08", Time: "17:30", Home: false, Competition: "Copa"},
	}
}

func SeedResults() []result.Result {
	return []result.Result{
		{Opponent: "Racing Villa", Date: "2024-04-20", GoalsFor: 3, GoalsAgainst: 1, Home: true, Competition: match.DefaultCompetition},
		{Opponent: "Unión Deportiva Este", Date: "2024-04-13", GoalsFor: 1, GoalsAgainst: 1, Home: false, Competition: match.DefaultCompetition},
	}
}
