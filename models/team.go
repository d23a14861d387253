package models

import (
	"strings"
	"time"
)

// Team представляет группу студентов, соревнующуюся за общий зачёт.
type Team struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Slug      string    `json:"slug" db:"slug"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	Color *TeamColor `json:"color,omitempty" db:"-"`
}

type TeamColor struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

var teamColors = map[string]TeamColor{
	"GR1": {Name: "blue", Hex: "#3b82f6"},
	"GR2": {Name: "emerald", Hex: "#10b981"},
	"GR3": {Name: "red", Hex: "#ef4444"},
	"GR4": {Name: "amber", Hex: "#f59e0b"},
}

var defaultTeamColor = TeamColor{Name: "slate", Hex: "#64748b"}

// ColorForSlug возвращает цвет команды по её slug. Неизвестный slug получает нейтральный цвет.
func ColorForSlug(slug string) TeamColor {
	if c, ok := teamColors[strings.ToUpper(strings.TrimSpace(slug))]; ok {
		return c
	}
	return defaultTeamColor
}
