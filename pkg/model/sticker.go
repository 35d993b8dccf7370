package model

// Sticker is a wall content item.
type Sticker struct {
	ID          int64  `json:"id" db:"id"`
	Title       string `json:"title" db:"title"`
	Description string `json:"description" db:"description"`
}

// StickerRequest represents the request payload for creating or updating a sticker
type StickerRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
