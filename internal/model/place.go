package model

import "time"

// Location is a latitude/longitude pair derived from a street address.
// It is never supplied by clients; the geocoder is the only producer.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Place represents a point of interest created by a user.
//
// Creator holds the canonical id of the owning User, and the owning User's
// Places set holds this place's id. The two references are maintained
// together: place creation and deletion write both records in a single
// store transaction.
type Place struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	Location    Location  `json:"location"`
	Image       string    `json:"image,omitempty"`
	Creator     string    `json:"creator"`
	CreatedOn   time.Time `json:"created_on"`
	UpdatedOn   time.Time `json:"updated_on"`
}

// Validation constants for place fields.
const (
	MinDescriptionLength = 5
	MaxTitleLength       = 200
	MaxDescriptionLength = 2000
)
