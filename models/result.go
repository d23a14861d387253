package models

import "time"

// Grade - качественная оценка победителя, дающая фиксированный бонус.
type Grade string

const (
	GradeA    Grade = "A"
	GradeB    Grade = "B"
	GradeC    Grade = "C"
	GradeNone Grade = "None"
)

// Result - опубликованный (или черновой) результат одного победителя в конкурсе.
// Ровно одно из StudentID/TeamID должно быть заполнено.
type Result struct {
	ID        string    `json:"id" db:"id"`
	EventID   string    `json:"event_id" db:"event_id"`
	StudentID *string   `json:"student_id,omitempty" db:"student_id"`
	TeamID    *string   `json:"team_id,omitempty" db:"team_id"`
	Position  *int      `json:"position,omitempty" db:"position"`
	Grade     *Grade    `json:"grade,omitempty" db:"grade"`
	Points    int       `json:"points" db:"points"`
	Published bool      `json:"published" db:"published"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// HasSingleWinner сообщает, ссылается ли результат ровно на одного победителя.
func (r Result) HasSingleWinner() bool {
	hasStudent := r.StudentID != nil && *r.StudentID != ""
	hasTeam := r.TeamID != nil && *r.TeamID != ""
	return hasStudent != hasTeam
}
