package models

type Student struct {
	ID          string  `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	ChestNumber *string `json:"chest_number,omitempty" db:"chest_number"`
	TeamID      string  `json:"team_id" db:"team_id"`
	Section     string  `json:"section" db:"section"`
}
