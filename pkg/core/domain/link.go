package domain

import "time"

// Link is a shortened URL record. The short code is derived from the
// store-assigned ID, never generated independently, so codes cannot collide.
type Link struct {
	ID          int64     `json:"id"`
	OriginalURL string    `json:"original_url"`
	ShortCode   string    `json:"short_code"`
	ClickCount  int64     `json:"click_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
