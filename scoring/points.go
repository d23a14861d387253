package scoring

import (
	"strings"

	"github.com/pmsa-qul/artsfest/models"
)

// MaxScoredPosition - последнее место, за которое начисляются очки.
const MaxScoredPosition = 3

var positionPoints = map[models.GradingCategory]map[int]int{
	models.GradingA: {1: 12, 2: 8, 3: 4},
	models.GradingB: {1: 10, 2: 6, 3: 3},
	models.GradingC: {1: 20, 2: 15, 3: 10},
}

var gradeBonus = map[models.Grade]int{
	models.GradeA:    5,
	models.GradeB:    3,
	models.GradeC:    1,
	models.GradeNone: 0,
}

// NormalizeGrade приводит оценку к каноническому виду: пустая строка и любое
// написание "none" дают GradeNone, остальное обрезается и переводится в верхний регистр.
func NormalizeGrade(g models.Grade) models.Grade {
	trimmed := strings.TrimSpace(string(g))
	if trimmed == "" || strings.EqualFold(trimmed, string(models.GradeNone)) {
		return models.GradeNone
	}
	return models.Grade(strings.ToUpper(trimmed))
}

// NormalizeGradingCategory обрезает пробелы и переводит категорию оценивания в верхний регистр.
func NormalizeGradingCategory(c models.GradingCategory) models.GradingCategory {
	return models.GradingCategory(strings.ToUpper(strings.TrimSpace(string(c))))
}

// PositionPoints возвращает очки за место в конкурсе данной категории.
// Неизвестная категория, пустое место и места вне 1..3 дают 0.
func PositionPoints(category models.GradingCategory, position *int) int {
	if position == nil {
		return 0
	}
	table, ok := positionPoints[NormalizeGradingCategory(category)]
	if !ok {
		return 0
	}
	return table[*position]
}

// GradeBonus возвращает бонус за оценку; нераспознанная оценка даёт 0.
func GradeBonus(grade models.Grade) int {
	return gradeBonus[NormalizeGrade(grade)]
}

// ComputePoints определена на всех входах: не возвращает ошибок и отрицательных значений.
// Результат не кэшируется, при изменении любого аргумента функцию вызывают заново.
func ComputePoints(category models.GradingCategory, position *int, grade models.Grade) int {
	return PositionPoints(category, position) + GradeBonus(grade)
}

// ComputeResultPoints - ComputePoints для сохранённой строки результата, где оценка может отсутствовать.
func ComputeResultPoints(category models.GradingCategory, r models.Result) int {
	grade := models.GradeNone
	if r.Grade != nil {
		grade = *r.Grade
	}
	return ComputePoints(category, r.Position, grade)
}

// ValidGrade сообщает, является ли g после нормализации одной из A, B, C, None.
func ValidGrade(g models.Grade) bool {
	_, ok := gradeBonus[NormalizeGrade(g)]
	return ok
}

// ValidGradingCategory сообщает, выбирает ли c таблицу очков.
func ValidGradingCategory(c models.GradingCategory) bool {
	_, ok := positionPoints[NormalizeGradingCategory(c)]
	return ok
}
