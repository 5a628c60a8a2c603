package models

import "time"

// Document represents an entry in a client's document library.
type Document struct {
	ID         int       `json:"id"`
	ClientID   int       `json:"client_id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	FileType   string    `json:"file_type"`
	SizeBytes  int64     `json:"size_bytes"`
	UploadedBy string    `json:"uploaded_by"`
	UploadDate time.Time `json:"upload_date"`
}
