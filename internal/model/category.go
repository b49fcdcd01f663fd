package model

import (
	"time"

	"github.com/google/uuid"
)

// Category groups the offers a user is comparing for one kind of item
// ("Rice", "Olive oil"). Products keep insertion order — the first-inserted
// product wins unit-price ties. Names are not deduplicated.
type Category struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Products  []Product `json:"products"`
	Pinned    bool      `json:"pinned"`
	CreatedAt time.Time `json:"created_at"`
}
