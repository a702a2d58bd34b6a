package repository

import (
	"context"
	"fmt"

	"movie-booking/internal/data/entity"
	"movie-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ShowtimeRepository interface {
	CreateBatch(ctx context.Context, showtimes []*entity.Showtime) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Showtime, error)
	FindAll(ctx context.Context, movieID, theatreID *uuid.UUID) ([]*entity.Showtime, error)
}

type showtimeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewShowtimeRepository(db database.PgxIface, log *zap.Logger) ShowtimeRepository {
	return &showtimeRepository{
		db:  db,
		log: log.With(zap.String("repository", "showtime")),
	}
}

func (r *showtimeRepository) CreateBatch(ctx context.Context, showtimes []*entity.Showtime) error {
	if len(showtimes) == 0 {
		return nil
	}

	query := `INSERT INTO showtimes (id, movie_id, theatre_id, show_time, label, created_at) VALUES `
	args := []interface{}{}

	for i, showtime := range showtimes {
		if i > 0 {
			query += ", "
		}
		base := i * 6
		query += fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6)

		args = append(args,
			showtime.ID,
			showtime.MovieID,
			showtime.TheatreID,
			showtime.ShowTime,
			showtime.Label,
			showtime.CreatedAt,
		)
	}

	_, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to create batch showtimes",
			zap.Error(err),
			zap.Int("count", len(showtimes)),
		)
		return fmt.Errorf("create batch showtimes: %w", err)
	}

	return nil
}

func (r *showtimeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Showtime, error) {
	query := `
		SELECT id, movie_id, theatre_id, show_time, label, created_at
		FROM showtimes
		WHERE id = $1
	`

	var showtime entity.Showtime
	err := r.db.QueryRow(ctx, query, id).Scan(
		&showtime.ID,
		&showtime.MovieID,
		&showtime.TheatreID,
		&showtime.ShowTime,
		&showtime.Label,
		&showtime.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find showtime by ID",
			zap.Error(err),
			zap.String("showtime_id", id.String()),
		)
		return nil, fmt.Errorf("find showtime by ID %s: %w", id.String(), err)
	}

	return &showtime, nil
}

func (r *showtimeRepository) FindAll(ctx context.Context, movieID, theatreID *uuid.UUID) ([]*entity.Showtime, error) {
	query := `
		SELECT id, movie_id, theatre_id, show_time, label, created_at
		FROM showtimes
		WHERE ($1::uuid IS NULL OR movie_id = $1)
		  AND ($2::uuid IS NULL OR theatre_id = $2)
		ORDER BY created_at, show_time
	`

	rows, err := r.db.Query(ctx, query, movieID, theatreID)
	if err != nil {
		r.log.Error("Failed to find showtimes", zap.Error(err))
		return nil, fmt.Errorf("find showtimes: %w", err)
	}
	defer rows.Close()

	var showtimes []*entity.Showtime
	for rows.Next() {
		var showtime entity.Showtime
		err := rows.Scan(
			&showtime.ID,
			&showtime.MovieID,
			&showtime.TheatreID,
			&showtime.ShowTime,
			&showtime.Label,
			&showtime.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan showtime row", zap.Error(err))
			return nil, fmt.Errorf("scan showtime row: %w", err)
		}
		showtimes = append(showtimes, &showtime)
	}

	return showtimes, nil
}
