package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGenre(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  Genre
		wantError bool
	}{
		{
			name:     "known genre",
			input:    "ROCK",
			expected: GenreRock,
		},
		{
			name:     "hip hop uses underscore",
			input:    "HIP_HOP",
			expected: GenreHipHop,
		},
		{
			name:      "lowercase rejected",
			input:     "rock",
			wantError: true,
		},
		{
			name:      "unknown genre",
			input:     "VAPORWAVE",
			wantError: true,
		},
		{
			name:      "empty string",
			input:     "",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			genre, err := ParseGenre(tt.input)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, genre)
		})
	}
}

func TestAllGenres_AllValid(t *testing.T) {
	for _, genre := range AllGenres() {
		assert.True(t, genre.IsValid(), "genre %s should be valid", genre)
	}
}

func TestGenre_MixPlaylistName(t *testing.T) {
	assert.Equal(t, "JAZZ Mix for You", GenreJazz.MixPlaylistName())
	assert.Equal(t, "HIP_HOP Mix for You", GenreHipHop.MixPlaylistName())
}
