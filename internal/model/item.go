package model

import "time"

// Item is the domain model for a todo entry as the remote service reports it.
type Item struct {
	ID          ID         `json:"id"`
	Title       string     `json:"title"`
	IsCompleted bool       `json:"isCompleted"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
}

// NewItem is the body of a create request.
type NewItem struct {
	Title       string `json:"title"`
	IsCompleted bool   `json:"isCompleted"`
}

// Toggled returns a copy of the item with IsCompleted flipped.
func (it Item) Toggled() Item {
	it.IsCompleted = !it.IsCompleted
	return it
}
