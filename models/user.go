package models

import "time"

// Identity represents a registered principal.
// Email is the uniqueness key and is compared exactly as stored.
// Sensitive fields must never be exposed outside trusted boundaries.
type Identity struct {
	// ID is the unique identifier of the identity (UUID v7 string).
	ID string `json:"id"`

	// FirstName is the given name provided at registration.
	FirstName string `json:"firstName"`

	// LastName is the family name provided at registration.
	LastName string `json:"lastName"`

	// Email is the unique login address of the identity.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the password.
	// It never holds plaintext once registration has completed and is
	// never serialized to JSON.
	PasswordHash string `json:"-"`

	// Location is the optional home location of the identity.
	Location *Location `json:"location,omitempty"`

	// CreatedAt is the timestamp when the identity was persisted.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Identity model.
func (i Identity) TableName() string {
	return "identities"
}

// Handle returns the display handle of the identity.
func (i Identity) Handle() string {
	return i.FirstName + " " + i.LastName
}

// Profile returns the public view of the identity served to its owner.
func (i Identity) Profile() Profile {
	return Profile{
		ID:     i.ID,
		Handle: i.Handle(),
		Email:  i.Email,
	}
}

// Profile is the public, hash-free projection of an [Identity].
// It is what GET /current returns and what the profile cache stores.
type Profile struct {
	ID     string `json:"id"`
	Handle string `json:"handle"`
	Email  string `json:"email"`
}
