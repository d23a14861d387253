package scoring

import (
	"sort"

	"github.com/pmsa-qul/artsfest/models"
)

// LockedPositions возвращает отсортированные призовые места (1..3), по которым у
// конкурса eventID уже есть опубликованный результат.
func LockedPositions(eventID string, results []models.Result) []int {
	taken := make(map[int]struct{})
	for _, r := range results {
		if r.EventID != eventID || !r.Published || r.Position == nil {
			continue
		}
		if p := *r.Position; p >= 1 && p <= MaxScoredPosition {
			taken[p] = struct{}{}
		}
	}
	positions := make([]int, 0, len(taken))
	for p := range taken {
		positions = append(positions, p)
	}
	sort.Ints(positions)
	return positions
}

// IsEventLocked сообщает, есть ли у конкурса опубликованный победитель на
// призовом месте. Такой конкурс закрыт для повторного ввода.
func IsEventLocked(eventID string, results []models.Result) bool {
	return len(LockedPositions(eventID, results)) > 0
}
