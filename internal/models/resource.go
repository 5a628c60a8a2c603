package models

import "time"

// EducationalResource is an entry in the resource library surfaced to
// clients (articles, guides, videos).
type EducationalResource struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Type        string    `json:"type"`
	Difficulty  string    `json:"difficulty"`
	ReadTime    string    `json:"read_time"`
	PublishDate time.Time `json:"publish_date"`
	Tags        []string  `json:"tags"`
	Author      string    `json:"author"`
	URL         string    `json:"url"`
}
