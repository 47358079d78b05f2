package models

import "errors"

// Domain sentinels. Repositories and services return these wrapped with
// context; handlers map them to HTTP statuses.
var (
	// ErrNotFound covers entities that are absent or soft-deleted.
	ErrNotFound = errors.New("resource not found")

	// ErrNotAnArtist is the precondition failure for artist-only reads.
	// Kept distinct from ErrNotFound so callers and tests can tell absence
	// from a role mismatch.
	ErrNotAnArtist = errors.New("user is not an artist")

	// ErrDuplicateTrack rejects adding a track twice to one playlist.
	ErrDuplicateTrack = errors.New("track already in playlist")

	// ErrForbidden is returned when a user may not mutate the target entity.
	ErrForbidden = errors.New("operation not permitted")
)
