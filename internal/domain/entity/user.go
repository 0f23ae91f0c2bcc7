// Package entity contains the core business objects of the marketplace,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is an account on the platform. Identity is managed by an external
// provider, so the ID is an opaque string assigned upstream and user rows
// are maintained through idempotent upserts driven by identity events.
type User struct {
	ID              string    `json:"id"`
	Email           string    `json:"email,omitempty"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	ProfileImageURL string    `json:"profileImageUrl"`
	Phone           string    `json:"phone,omitempty"`
	Address         string    `json:"address,omitempty"`
	City            string    `json:"city"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// PublicProfile returns a copy of the user with private contact fields
// stripped. This is what anonymous callers see on a seller page.
func (u *User) PublicProfile() *User {
	pub := *u
	pub.Email = ""
	pub.Phone = ""
	pub.Address = ""

	return &pub
}
