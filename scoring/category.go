package scoring

import (
	"strings"

	"github.com/pmsa-qul/artsfest/models"
)

var subJuniorAliases = map[string]struct{}{
	"subjunior":  {},
	"sub-junior": {},
	"sub junior": {},
	"sub_junior": {},
}

// NormalizeCategory приводит уровень конкурса к имени корзины для разбивки по категориям.
// Пустой уровень даёт General, любое написание sub-junior даёт Sub-Junior, всё
// остальное возвращается обрезанным, но без смены регистра: "senior" остаётся
// "senior" и в корзину Senior не попадает. Функция идемпотентна.
func NormalizeCategory(level string) string {
	trimmed := strings.TrimSpace(level)
	if trimmed == "" {
		return models.CategoryGeneral
	}
	if _, ok := subJuniorAliases[strings.ToLower(trimmed)]; ok {
		return models.CategorySubJunior
	}
	return trimmed
}

// IsCanonicalCategory сообщает, совпадает ли name в точности с одной из четырёх корзин.
func IsCanonicalCategory(name string) bool {
	for _, c := range models.Categories {
		if c == name {
			return true
		}
	}
	return false
}
