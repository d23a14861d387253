package scoring

import (
	"sort"

	"github.com/pmsa-qul/artsfest/models"
)

// ComputeStandings сводит опубликованные результаты в рейтинг команд.
//
// Результаты, которые не удаётся связать с известным конкурсом, студентом или
// командой, пропускаются. Очки всегда идут в общий зачёт команды, а в корзину
// категории только если нормализованный уровень конкурса в точности совпадает с
// одной из канонических корзин. Команды с равной суммой сохраняют входной порядок.
// Повторный ID команды игнорируется: в рейтинге остаётся первое вхождение.
// Входные срезы не изменяются.
func ComputeStandings(teams []models.Team, events []models.Event, results []models.Result, students []models.Student) []models.Standing {
	standings := make([]models.Standing, 0, len(teams))
	seen := make(map[string]bool, len(teams))
	for _, team := range teams {
		if seen[team.ID] {
			continue
		}
		seen[team.ID] = true
		perCategory := make(map[string]int, len(models.Categories))
		for _, c := range models.Categories {
			perCategory[c] = 0
		}
		standings = append(standings, models.Standing{Team: team, PerCategory: perCategory})
	}
	// Указатели берутся только после последнего append.
	index := make(map[string]*models.Standing, len(standings))
	for i := range standings {
		index[standings[i].Team.ID] = &standings[i]
	}

	eventsByID := indexEvents(events)
	studentsByID := indexStudents(students)

	for _, r := range results {
		if !r.Published {
			continue
		}
		event, ok := eventsByID[r.EventID]
		if !ok {
			continue
		}
		teamID, ok := resolveTeamID(r, studentsByID)
		if !ok {
			continue
		}
		entry, ok := index[teamID]
		if !ok {
			continue
		}

		entry.Total += r.Points
		if category := NormalizeCategory(event.Level); IsCanonicalCategory(category) {
			entry.PerCategory[category] += r.Points
		}
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Total > standings[j].Total
	})
	return standings
}

// resolveTeamID находит команду, которой засчитывается результат: команду студента
// для индивидуального результата, иначе указанную команду.
func resolveTeamID(r models.Result, students map[string]models.Student) (string, bool) {
	if r.StudentID != nil && *r.StudentID != "" {
		s, ok := students[*r.StudentID]
		if !ok || s.TeamID == "" {
			return "", false
		}
		return s.TeamID, true
	}
	if r.TeamID != nil && *r.TeamID != "" {
		return *r.TeamID, true
	}
	return "", false
}

func indexEvents(events []models.Event) map[string]models.Event {
	m := make(map[string]models.Event, len(events))
	for _, e := range events {
		m[e.ID] = e
	}
	return m
}

func indexStudents(students []models.Student) map[string]models.Student {
	m := make(map[string]models.Student, len(students))
	for _, s := range students {
		m[s.ID] = s
	}
	return m
}

func indexTeams(teams []models.Team) map[string]models.Team {
	m := make(map[string]models.Team, len(teams))
	for _, t := range teams {
		m[t.ID] = t
	}
	return m
}
