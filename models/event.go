package models

// GradingCategory выбирает таблицу очков за места (A/B/C).
type GradingCategory string

const (
	GradingA GradingCategory = "A"
	GradingB GradingCategory = "B"
	GradingC GradingCategory = "C"
)

// Event представляет отдельный конкурс фестиваля.
type Event struct {
	ID              string          `json:"id" db:"id"`
	Name            string          `json:"name" db:"name"`
	Code            string          `json:"code" db:"code"`
	Level           string          `json:"level" db:"level"`
	GradingCategory GradingCategory `json:"grading_category" db:"grading_category"`
	IsIndividual    bool            `json:"is_individual" db:"is_individual"`
}
