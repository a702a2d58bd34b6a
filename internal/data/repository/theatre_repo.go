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

type TheatreRepository interface {
	CreateBatch(ctx context.Context, theatres []*entity.Theatre) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Theatre, error)
	FindAll(ctx context.Context) ([]*entity.Theatre, error)
}

type theatreRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTheatreRepository(db database.PgxIface, log *zap.Logger) TheatreRepository {
	return &theatreRepository{
		db:  db,
		log: log.With(zap.String("repository", "theatre")),
	}
}

func (r *theatreRepository) CreateBatch(ctx context.Context, theatres []*entity.Theatre) error {
	if len(theatres) == 0 {
		return nil
	}

	query := `INSERT INTO theatres (id, name, location, city, created_at, updated_at) VALUES `
	args := []interface{}{}

	for i, theatre := range theatres {
		if i > 0 {
			query += ", "
		}
		base := i * 6
		query += fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6)

		args = append(args,
			theatre.ID,
			theatre.Name,
			theatre.Location,
			theatre.City,
			theatre.CreatedAt,
			theatre.UpdatedAt,
		)
	}

	_, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to create batch theatres",
			zap.Error(err),
			zap.Int("count", len(theatres)),
		)
		return fmt.Errorf("create batch theatres: %w", err)
	}

	return nil
}

func (r *theatreRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Theatre, error) {
	query := `
		SELECT id, name, location, city, created_at, updated_at
		FROM theatres
		WHERE id = $1
	`

	var theatre entity.Theatre
	err := r.db.QueryRow(ctx, query, id).Scan(
		&theatre.ID,
		&theatre.Name,
		&theatre.Location,
		&theatre.City,
		&theatre.CreatedAt,
		&theatre.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find theatre by ID",
			zap.Error(err),
			zap.String("theatre_id", id.String()),
		)
		return nil, fmt.Errorf("find theatre by ID %s: %w", id.String(), err)
	}

	return &theatre, nil
}

func (r *theatreRepository) FindAll(ctx context.Context) ([]*entity.Theatre, error) {
	query := `
		SELECT id, name, location, city, created_at, updated_at
		FROM theatres
		ORDER BY city, name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find theatres", zap.Error(err))
		return nil, fmt.Errorf("find theatres: %w", err)
	}
	defer rows.Close()

	var theatres []*entity.Theatre
	for rows.Next() {
		var theatre entity.Theatre
		err := rows.Scan(
			&theatre.ID,
			&theatre.Name,
			&theatre.Location,
			&theatre.City,
			&theatre.CreatedAt,
			&theatre.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan theatre row", zap.Error(err))
			return nil, fmt.Errorf("scan theatre row: %w", err)
		}
		theatres = append(theatres, &theatre)
	}

	return theatres, nil
}
