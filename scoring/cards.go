package scoring

import (
	"sort"

	"github.com/pmsa-qul/artsfest/models"
)

const (
	unknownWinnerName = "Unknown"
	unknownTeamName   = "Team"
)

// GroupResultsByEvent собирает опубликованные результаты в карточки, по одной на конкурс.
// Карточки идут в порядке первого появления конкурса в results, победители
// упорядочены по месту, без места в конце. Результаты неизвестных конкурсов отбрасываются.
// Победитель несёт slug и цвет своей команды.
func GroupResultsByEvent(events []models.Event, results []models.Result, students []models.Student, teams []models.Team) []models.EventCard {
	eventsByID := indexEvents(events)
	studentsByID := indexStudents(students)
	teamsByID := indexTeams(teams)

	cards := make([]models.EventCard, 0)
	cardIndex := make(map[string]int)

	for _, r := range results {
		if !r.Published {
			continue
		}
		event, ok := eventsByID[r.EventID]
		if !ok {
			continue
		}
		idx, seen := cardIndex[event.ID]
		if !seen {
			cards = append(cards, models.EventCard{
				Event:    event,
				Category: NormalizeCategory(event.Level),
				Winners:  make([]models.Winner, 0, MaxScoredPosition),
			})
			idx = len(cards) - 1
			cardIndex[event.ID] = idx
		}
		cards[idx].Winners = append(cards[idx].Winners, toWinner(r, studentsByID, teamsByID))
	}

	for i := range cards {
		SortWinners(cards[i].Winners)
	}
	return cards
}

// SortWinners сортирует победителей по возрастанию места, пустое место в конце.
// Равные сохраняют входной порядок.
func SortWinners(winners []models.Winner) {
	sort.SliceStable(winners, func(i, j int) bool {
		a, b := winners[i].Position, winners[j].Position
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a < *b
		}
	})
}

// FilterCardsByCategory оставляет карточки, чья категория совпадает с
// нормализованной category. Пустая category оставляет всё.
func FilterCardsByCategory(cards []models.EventCard, category string) []models.EventCard {
	if category == "" {
		return cards
	}
	want := NormalizeCategory(category)
	filtered := make([]models.EventCard, 0, len(cards))
	for _, c := range cards {
		if c.Category == want {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

func toWinner(r models.Result, students map[string]models.Student, teams map[string]models.Team) models.Winner {
	w := models.Winner{
		ResultID: r.ID,
		Name:     unknownWinnerName,
		Position: r.Position,
		Grade:    r.Grade,
		Points:   r.Points,
	}
	switch {
	case r.StudentID != nil && *r.StudentID != "":
		if s, ok := students[*r.StudentID]; ok {
			w.Name = s.Name
			w.TeamID = s.TeamID
		}
	case r.TeamID != nil && *r.TeamID != "":
		w.TeamID = *r.TeamID
		w.Name = unknownTeamName
		if t, ok := teams[*r.TeamID]; ok {
			w.Name = t.Name
		}
	}
	if t, ok := teams[w.TeamID]; ok && w.TeamID != "" {
		color := models.ColorForSlug(t.Slug)
		w.TeamSlug = t.Slug
		w.TeamColor = &color
	}
	return w
}
