package seed

import (
	"context"
	"fmt"
	"time"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/data/repository"
	"movie-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type movieSeed struct {
	tmdbID      int64
	title       string
	poster      string
	backdrop    string
	genres      []string
	rating      float64
	overview    string
	releaseDate string
	trailerID   string
}

type theatreSeed struct {
	name     string
	location string
	city     string
}

// showtimeSeed indexes into the movie and theatre seed slices.
type showtimeSeed struct {
	movie   int
	theatre int
	time    string
	label   string
}

var movieSeeds = []movieSeed{
	{1168190, "The Wrecking Crew", "/gbVwHl4YPSq6BcC92TQpe7qUTh6.jpg", "/e4OnHU8HNAhdS6C4Ypk6NA26kPQ.jpg", []string{"Action", "Comedy", "Crime"}, 6.7, "Estranged half-brothers Jonny and James reunite after their father's mysterious death. As they search for the truth, buried secrets reveal a conspiracy threatening to tear their family apart.", "2026-01-28", "e4OnHU8HNA"},
	{840464, "Greenland 2: Migration", "/1mF4othta76CEXcL1YFInYudQ7K.jpg", "/tyjXlexbNZQ0ZT1KEJslQtBirqc.jpg", []string{"Adventure", "Thriller", "Sci-Fi"}, 6.474, "Having found the safety of the Greenland bunker after the comet Clarke decimated the Earth, the Garrity family must now risk everything to embark on a perilous journey across the wasteland of Europe to find a new home.", "2026-01-07", "BHebKJv4X5g"},
	{1084242, "Zootopia 2", "/oJ7g2CifqpStmoYQyaLQgEU32qO.jpg", "/5h2EsPKNDdB3MAtOk9MB9Ycg9Rz.jpg", []string{"Animation", "Comedy", "Adventure", "Family", "Mystery"}, 7.6, "After cracking the biggest case in Zootopia's history, rookie cops Judy Hopps and Nick Wilde find themselves on the twisting trail of a great mystery when Gary De'Snake arrives and turns the animal metropolis upside down.", "2025-11-26", "5AwtptT8X8k"},
	{1419406, "The Shadow's Edge", "/e0RU6KpdnrqFxDKlI3NOqN8nHL6.jpg", "/4BtL2vvEufDXDP4u6xQjjQ1Y2aT.jpg", []string{"Action", "Crime", "Drama", "Thriller"}, 7.2, "Macau Police brings the tracking expert police officer out of retirement to help catch a dangerous group of professional thieves.", "2025-08-16", "YoHD9XEInc0"},
	{1234731, "Anaconda", "/qxMv3HwAB3XPuwNLMhVRg795Ktp.jpg", "/swxhEJsAWms6X1fDZ4HdbvYBSf9.jpg", []string{"Adventure", "Comedy", "Horror"}, 5.851, "A group of friends facing mid-life crises head to the rainforest with the intention of remaking their favorite movie from their youth, only to find themselves in a fight for their lives against natural disasters, giant snakes and violent criminals.", "2025-12-24", "2B2vpKtGS6c"},
	{1271895, "96 Minutes", "/gWKZ1iLhukvLoh8XY2N4tMvRQ2M.jpg", "/lAtuFCx6cYkNBmTMSNnLE0qlCLx.jpg", []string{"Action", "Crime", "Romance"}, 6.381, "Former bomb disposal expert, Song Kang-Ren, and his fiancée, Huang Xin, board a high-speed train that contains a bomb.", "2025-09-05", "kVrqfYjkTdQ"},
	{1601243, "Oscar Shaw", "/tsE3nySukwrfUjouz8vzvKTcXNC.jpg", "/6D6M5z4reppUxo2cnBEKI02Csp1.jpg", []string{"Action", "Crime", "Thriller"}, 5.833, "After retiring from the police force, a relentless detective haunted by the tragic loss of his closest friend sets out on a perilous quest for vengeance.", "2026-01-09", "EXeTwQWrcwY"},
	{1310568, "Murder at the Embassy", "/3DBmBItPdy0A2ol59jgHhS54Lua.jpg", "/gLXibzLQ4qegvjdqDC0f8yTij2P.jpg", []string{"Mystery", "Thriller", "Action"}, 5.517, "1934. Private detective Miranda Green investigates a murder perpetrated in the British Embassy in Cairo, where a top secret document was stolen.", "2025-11-14", "5xH0HfJHsaY"},
	{1368166, "The Housemaid", "/cWsBscZzwu5brg9YjNkGewRUvJX.jpg", "/tNONILTe9OJz574KZWaLze4v6RC.jpg", []string{"Mystery", "Thriller"}, 7.075, "Trying to escape her past, Millie Calloway accepts a job as a live-in housemaid for the wealthy Nina and Andrew Winchester. But what begins as a dream job quickly unravels into something far more dangerous.", "2025-12-18", "zAGVQLHvwOY"},
	{1584215, "The Internship", "/fYqSOkix4rbDiZW0ACNnvZCpT6X.jpg", "/eUERZRVjCTNdgnESlQxyaOJ2d4K.jpg", []string{"Action"}, 6.1, "A CIA-trained assassin recruits other graduates from her secret childhood program, The Internship, to violently destroy the organization.", "2026-01-13", "vKQi3bBA1y8"},
	{1242898, "Predator: Badlands", "/pHpq9yNUIo6aDoCXEBzjSolywgz.jpg", "/ebyxeBh56QNXxSJgTnmz7fXAlwk.jpg", []string{"Action", "Sci-Fi", "Adventure"}, 7.756, "Cast out from his clan, a young Predator finds an unlikely ally in a damaged android and embarks on a treacherous journey in search of the ultimate adversary.", "2025-11-05", "7MBgL1IHpkQ"},
	{83533, "Avatar: Fire and Ash", "/5bxrxnRaxZooBAxgUVBZ13dpzC7.jpg", "/u8DU5fkLoM5tTRukzPC31oGPxaQ.jpg", []string{"Sci-Fi", "Adventure", "Fantasy"}, 7.295, "In the wake of the devastating war against the RDA and the loss of their eldest son, Jake Sully and Neytiri face a new threat on Pandora: the Ash People.", "2025-12-17", "d9MyW72ELq0"},
}

var theatreSeeds = []theatreSeed{
	{"Cineplex Kathmandu", "Jamal, Kathmandu", "Kathmandu"},
	{"Big Movies Nepal", "New Road, Kathmandu", "Kathmandu"},
	{"KTM Cinema Hub", "Baneshwor, Kathmandu", "Kathmandu"},
	{"Pokhara Movie Hub", "Lakeside, Pokhara", "Pokhara"},
	{"Bharatpur Cine World", "Bharatpur, Chitwan", "Chitwan"},
}

var showtimeSeeds = []showtimeSeed{
	{0, 0, "10:30", "Morning Show"},
	{0, 0, "18:45", "Evening Show"},
	{1, 1, "20:30", "Night Show"},
	{1, 0, "21:00", "Night Show"},
	{2, 2, "16:30", "Afternoon Show"},
	{3, 1, "14:00", "Matinee"},
	{4, 0, "19:15", "Evening Show"},
	{5, 1, "22:00", "Late Night"},
	{7, 2, "20:45", "Night Show"},
	{8, 0, "17:00", "Evening Show"},
	{9, 1, "11:00", "Morning Show"},
	{10, 2, "19:30", "Evening Show"},
}

// Run creates the schema and, when the catalog is empty, seeds movies,
// theatres and showtimes. Seats are not pre-created: the grid for a
// showtime materializes in the database on its first confirmed booking.
func Run(ctx context.Context, db database.PgxIface, repo *repository.Repository, log *zap.Logger) error {
	log = log.With(zap.String("component", "seed"))

	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	count, err := repo.Movie.CountAll(ctx)
	if err != nil {
		return fmt.Errorf("check catalog: %w", err)
	}
	if count > 0 {
		log.Info("Catalog already seeded", zap.Int64("movies", count))
		return nil
	}

	now := time.Now()

	movies := make([]*entity.Movie, 0, len(movieSeeds))
	for _, m := range movieSeeds {
		movie := &entity.Movie{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			TMDBID:       m.tmdbID,
			Title:        m.title,
			Overview:     strPtr(m.overview),
			PosterPath:   strPtr(m.poster),
			BackdropPath: strPtr(m.backdrop),
			Genres:       m.genres,
			Rating:       m.rating,
			ReleaseDate:  m.releaseDate,
			TrailerID:    strPtr(m.trailerID),
		}
		movies = append(movies, movie)
	}
	if err := repo.Movie.CreateBatch(ctx, movies); err != nil {
		return fmt.Errorf("seed movies: %w", err)
	}

	theatres := make([]*entity.Theatre, 0, len(theatreSeeds))
	for _, t := range theatreSeeds {
		theatres = append(theatres, &entity.Theatre{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			Name:     t.name,
			Location: t.location,
			City:     t.city,
		})
	}
	if err := repo.Theatre.CreateBatch(ctx, theatres); err != nil {
		return fmt.Errorf("seed theatres: %w", err)
	}

	showtimes := make([]*entity.Showtime, 0, len(showtimeSeeds))
	for _, s := range showtimeSeeds {
		showtimes = append(showtimes, &entity.Showtime{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: now,
			},
			MovieID:   movies[s.movie].ID,
			TheatreID: theatres[s.theatre].ID,
			ShowTime:  s.time,
			Label:     s.label,
		})
	}
	if err := repo.Showtime.CreateBatch(ctx, showtimes); err != nil {
		return fmt.Errorf("seed showtimes: %w", err)
	}

	log.Info("Catalog seeded",
		zap.Int("movies", len(movies)),
		zap.Int("theatres", len(theatres)),
		zap.Int("showtimes", len(showtimes)),
	)

	return nil
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
