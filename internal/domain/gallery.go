package domain

import "time"

// GalleryImage is metadata only; the object itself lives in external storage.
type GalleryImage struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}
