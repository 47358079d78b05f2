package models

import "fmt"

// Genre is the closed set of catalog genres. Tracks carry exactly one.
type Genre string

const (
	GenrePop        Genre = "POP"
	GenreRock       Genre = "ROCK"
	GenreJazz       Genre = "JAZZ"
	GenreClassical  Genre = "CLASSICAL"
	GenreHipHop     Genre = "HIP_HOP"
	GenreElectronic Genre = "ELECTRONIC"
	GenreCountry    Genre = "COUNTRY"
	GenreRnB        Genre = "RNB"
	GenreMetal      Genre = "METAL"
	GenreFolk       Genre = "FOLK"
)

func AllGenres() []Genre {
	return []Genre{
		GenrePop,
		GenreRock,
		GenreJazz,
		GenreClassical,
		GenreHipHop,
		GenreElectronic,
		GenreCountry,
		GenreRnB,
		GenreMetal,
		GenreFolk,
	}
}

func (g Genre) IsValid() bool {
	for _, known := range AllGenres() {
		if g == known {
			return true
		}
	}
	return false
}

func ParseGenre(s string) (Genre, error) {
	g := Genre(s)
	if !g.IsValid() {
		return "", fmt.Errorf("unknown genre: %q", s)
	}
	return g, nil
}

// MixPlaylistName is the deterministic name of a generated playlist for a genre.
func (g Genre) MixPlaylistName() string {
	return string(g) + " Mix for You"
}
