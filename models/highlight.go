package models

type Highlight struct {
	Key string `json:"key"`
	URL string `json:"url"`
}
