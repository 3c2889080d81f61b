package domain

import "time"

// Document is the stored representation of one uploaded PDF: its extracted
// text plus upload metadata. Content is immutable once set; LastAccessedAt is
// the only field mutated after creation.
type Document struct {
	ID             string    `json:"id"`
	Filename       string    `json:"filename"`
	Content        string    `json:"-"`
	Size           int64     `json:"size"`
	PageCount      int       `json:"page_count"`
	CreatedAt      time.Time `json:"created_at"`
	LastAccessedAt time.Time `json:"last_accessed"`
}
