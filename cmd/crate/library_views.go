package main

import (
	"crate/internal/library"
)

// Compact row shapes shared by the table and JSON renderings of snapshot
// entities. Member tracks collapse to a count; the tracks command lists them
// individually.

type albumView struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Artist string `json:"artist"`
	Year   int    `json:"year"`
	Tracks int    `json:"tracks"`
}

type artistView struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Tracks int    `json:"tracks"`
}

type genreView struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Tracks int    `json:"tracks"`
}

type yearView struct {
	ID     int `json:"id"`
	Year   int `json:"year"`
	Tracks int `json:"tracks"`
}

type trackView struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	Album    string `json:"album"`
	Year     int    `json:"year"`
	Disc     int    `json:"disc"`
	Number   int    `json:"number"`
	Duration string `json:"duration"`
	Path     string `json:"path"`
}

func albumViews(albums []library.Album) []albumView {
	views := make([]albumView, 0, len(albums))
	for _, album := range albums {
		views = append(views, albumView{
			ID:     album.ID,
			Title:  album.Title,
			Artist: album.Artist,
			Year:   album.Year,
			Tracks: len(album.Tracks),
		})
	}
	return views
}

func artistViews(artists []library.Artist) []artistView {
	views := make([]artistView, 0, len(artists))
	for _, artist := range artists {
		views = append(views, artistView{
			ID:     artist.ID,
			Name:   artist.Name,
			Tracks: len(artist.Tracks),
		})
	}
	return views
}

func genreViews(genres []library.Genre) []genreView {
	views := make([]genreView, 0, len(genres))
	for _, genre := range genres {
		views = append(views, genreView{
			ID:     genre.ID,
			Name:   genre.Name,
			Tracks: len(genre.Tracks),
		})
	}
	return views
}

func yearViews(dates []library.ReleaseDate) []yearView {
	views := make([]yearView, 0, len(dates))
	for _, date := range dates {
		views = append(views, yearView{
			ID:     date.ID,
			Year:   date.Year,
			Tracks: len(date.Tracks),
		})
	}
	return views
}

func trackViews(snap *library.Snapshot) []trackView {
	views := make([]trackView, 0, len(snap.Tracks))
	for _, track := range snap.Tracks {
		views = append(views, trackView{
			ID:       track.ID,
			Title:    track.Title,
			Artist:   track.Artist,
			Album:    track.Album,
			Year:     track.Year,
			Disc:     track.DiscNumber,
			Number:   track.TrackNumber,
			Duration: formatDurationMS(snap.Durations[track.ID]),
			Path:     snap.Locations[track.ID],
		})
	}
	return views
}
