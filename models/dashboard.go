package models

import "time"

// ResultsSnapshot - согласованный набор справочных данных и опубликованных результатов,
// полученный одним чтением из хранилища.
type ResultsSnapshot struct {
	Teams     []Team
	Events    []Event
	Students  []Student
	Results   []Result
	FetchedAt time.Time
}

// TVFeed - всё, что нужно экрану в режиме киоска за один запрос.
type TVFeed struct {
	Events      []EventCard `json:"events"`
	Standings   []Standing  `json:"standings"`
	Highlights  []Highlight `json:"highlights"`
	Batch       int         `json:"batch"`
	BatchCount  int         `json:"batch_count"`
	Ticker      []string    `json:"ticker"`
	LastUpdated time.Time   `json:"last_updated"`
}
