package entity

type Movie struct {
	Base
	TMDBID       int64    `db:"tmdb_id"`
	Title        string   `db:"title"`
	Overview     *string  `db:"overview"`
	PosterPath   *string  `db:"poster_path"`
	BackdropPath *string  `db:"backdrop_path"`
	Genres       []string `db:"genres"`
	Rating       float64  `db:"rating"`
	ReleaseDate  string   `db:"release_date"` // "2025-12-18"
	TrailerID    *string  `db:"trailer_id"`
}
