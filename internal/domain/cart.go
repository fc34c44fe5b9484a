package domain

import "time"

// CartEntry is a copy of a listing captured when it was added to a cart.
type CartEntry struct {
	Listing GameListing `json:"listing"`
	AddedAt time.Time   `json:"addedAt"`
}
