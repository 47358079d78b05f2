package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUserRole_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		role     UserRole
		expected bool
	}{
		{
			name:     "listener",
			role:     RoleListener,
			expected: true,
		},
		{
			name:     "artist",
			role:     RoleArtist,
			expected: true,
		},
		{
			name:     "admin",
			role:     RoleAdmin,
			expected: true,
		},
		{
			name:     "unknown role",
			role:     UserRole("MODERATOR"),
			expected: false,
		},
		{
			name:     "empty role",
			role:     UserRole(""),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.role.IsValid())
		})
	}
}

func TestUser_CanManageTrack(t *testing.T) {
	artistID := uuid.New()
	otherArtistID := uuid.New()
	track := &Track{ArtistID: artistID}

	tests := []struct {
		name     string
		user     *User
		expected bool
	}{
		{
			name:     "owning artist",
			user:     &User{BaseUUIDModel: BaseUUIDModel{ID: artistID}, Role: RoleArtist},
			expected: true,
		},
		{
			name:     "different artist",
			user:     &User{BaseUUIDModel: BaseUUIDModel{ID: otherArtistID}, Role: RoleArtist},
			expected: false,
		},
		{
			name:     "admin manages any track",
			user:     &User{BaseUUIDModel: BaseUUIDModel{ID: otherArtistID}, Role: RoleAdmin},
			expected: true,
		},
		{
			name:     "listener with matching id",
			user:     &User{BaseUUIDModel: BaseUUIDModel{ID: artistID}, Role: RoleListener},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.user.CanManageTrack(track))
		})
	}
}

func TestUser_FullName(t *testing.T) {
	t.Run("joins first and last", func(t *testing.T) {
		user := &User{FirstName: "Ada", LastName: "Lovelace"}
		assert.Equal(t, "Ada Lovelace", user.FullName())
	})

	t.Run("trims when last name is empty", func(t *testing.T) {
		user := &User{FirstName: "Ada"}
		assert.Equal(t, "Ada", user.FullName())
	})
}

func TestUser_ToProfile(t *testing.T) {
	id := uuid.New()
	user := &User{
		BaseUUIDModel: BaseUUIDModel{ID: id},
		Username:      "ada",
		FirstName:     "Ada",
		LastName:      "Lovelace",
		Role:          RoleListener,
	}

	profile := user.ToProfile()

	assert.Equal(t, id.String(), profile.ID)
	assert.Equal(t, "ada", profile.Username)
	assert.Equal(t, RoleListener, profile.Role)
}
