package models

const (
	CategorySubJunior = "Sub-Junior"
	CategoryJunior    = "Junior"
	CategorySenior    = "Senior"
	CategoryGeneral   = "General"
)

// Categories - канонические корзины для разбивки очков, в порядке отображения.
var Categories = []string{CategorySubJunior, CategoryJunior, CategorySenior, CategoryGeneral}

// Standing - итог команды: общая сумма и разбивка по категориям. Не хранится в БД.
type Standing struct {
	Team        Team           `json:"team"`
	Total       int            `json:"total"`
	PerCategory map[string]int `json:"per_category"`
}

// Winner - одна строка победителя в карточке конкурса.
// TeamSlug и TeamColor заполняются, только если команда победителя известна.
type Winner struct {
	ResultID  string     `json:"result_id"`
	Name      string     `json:"name"`
	TeamID    string     `json:"team_id,omitempty"`
	TeamSlug  string     `json:"team_slug,omitempty"`
	TeamColor *TeamColor `json:"team_color,omitempty"`
	Position  *int       `json:"position,omitempty"`
	Grade     *Grade     `json:"grade,omitempty"`
	Points    int        `json:"points"`
}

// EventCard группирует победителей одного конкурса.
type EventCard struct {
	Event    Event    `json:"event"`
	Category string   `json:"category"`
	Winners  []Winner `json:"winners"`
}
