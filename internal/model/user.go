package model

import "time"

// User represents a user account.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Hash      *string   `json:"-"` // Never expose password hash
	Image     string    `json:"image,omitempty"`
	Places    []string  `json:"places"`
	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

// OwnsPlace reports whether the given place id is recorded in the user's
// places set. Both sides are expected in canonical "place:id" form.
func (u *User) OwnsPlace(placeID string) bool {
	for _, id := range u.Places {
		if id == placeID {
			return true
		}
	}
	return false
}

// TokenClaims represents extracted JWT claims.
type TokenClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}
