package models

import (
	"strings"
)

type UserRole string

const (
	RoleListener UserRole = "LISTENER"
	RoleArtist   UserRole = "ARTIST"
	RoleAdmin    UserRole = "ADMIN"
)

func (r UserRole) IsValid() bool {
	switch r {
	case RoleListener, RoleArtist, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	BaseUUIDModel
	Username     string   `gorm:"type:text;not null;uniqueIndex" json:"username"`
	Email        string   `gorm:"type:text;not null;uniqueIndex" json:"email"`
	PasswordHash string   `gorm:"type:text;not null"             json:"-"`
	FirstName    string   `gorm:"type:text"                      json:"firstName"`
	LastName     string   `gorm:"type:text"                      json:"lastName"`
	Role         UserRole `gorm:"type:text;not null;index"       json:"role"`
}

// IsArtist reports whether the user may own and publish tracks.
func (u *User) IsArtist() bool {
	return u.Role == RoleArtist
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanManageTrack reports whether the user may mutate the given track.
// Tracks are owned by their artist; admins may act on any track.
func (u *User) CanManageTrack(t *Track) bool {
	if u.IsAdmin() {
		return true
	}
	return u.IsArtist() && t.ArtistID == u.ID
}

func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// UserProfile is the public projection of a User.
type UserProfile struct {
	ID        string   `json:"id"`
	Username  string   `json:"username"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Role      UserRole `json:"role"`
}

func (u *User) ToProfile() UserProfile {
	return UserProfile{
		ID:        u.ID.String(),
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
	}
}
