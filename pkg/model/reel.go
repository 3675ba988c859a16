package model

import "time"

type Reel struct {
	ID        string    `json:"id" bson:"_id"`
	URL       string    `json:"url" bson:"url"`
	Title     string    `json:"title" bson:"title"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

type ReelCreate struct {
	URL   string `json:"url" validate:"required,max=2048"`
	Title string `json:"title" validate:"max=200"`
}

// ReelView is the read model served to clients. EmbedURL is empty when the
// link has no recognizable media identifier.
type ReelView struct {
	Reel
	EmbedURL string `json:"embed_url,omitempty"`
}
