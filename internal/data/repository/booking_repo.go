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

type BookingRepository interface {
	// CreateWithSeats atomically flips the selected seats to booked and
	// persists the booking record with its per-seat breakdown. Either all
	// writes land or none do. Returns *entity.SeatConflictError when any
	// selected seat was booked by someone else first.
	CreateWithSeats(ctx context.Context, booking *entity.Booking, grid []*entity.Seat) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	FindSeatsByBookingID(ctx context.Context, bookingID uuid.UUID) ([]entity.BookingSeat, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, ref, user_id, user_email, user_name, showtime_id, movie_id, movie_title, poster_path,
		theatre_id, theatre_name, theatre_address, theatre_city, show_time, show_label,
		subtotal, tax, total, currency, payment_method, payment_status, status, created_at`

func (r *bookingRepository) CreateWithSeats(ctx context.Context, booking *entity.Booking, grid []*entity.Seat) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin commit transaction", zap.Error(err))
		return fmt.Errorf("begin commit transaction: %w: %w", entity.ErrPersistence, err)
	}
	defer tx.Rollback(ctx)

	// Materialize the full grid for this showtime if it has never been
	// booked before. Idempotent: existing rows stay authoritative.
	if err := r.materializeGrid(ctx, tx, grid); err != nil {
		return err
	}

	// Conditional flip: only seats still available change hands. If any
	// selected seat raced with another booking the affected-row count
	// drops below the selection size and the whole unit rolls back.
	labels := booking.SeatLabels()
	tag, err := tx.Exec(ctx, `
		UPDATE seats
		SET status = 'booked', booked_by = $3, booking_id = $4, booked_at = $5
		WHERE showtime_id = $1 AND label = ANY($2) AND status = 'available'
	`, booking.ShowtimeID, labels, booking.UserID, booking.ID, booking.CreatedAt)
	if err != nil {
		r.log.Error("Failed to flip seat status",
			zap.Error(err),
			zap.String("booking_ref", booking.Ref),
		)
		return fmt.Errorf("flip seats for booking %s: %w: %w", booking.Ref, entity.ErrPersistence, err)
	}

	if tag.RowsAffected() != int64(len(labels)) {
		conflicts, err := r.conflictingLabels(ctx, tx, booking.ShowtimeID, labels, booking.ID)
		if err != nil {
			return err
		}
		r.log.Warn("Seat conflict on commit",
			zap.String("booking_ref", booking.Ref),
			zap.String("showtime_id", booking.ShowtimeID.String()),
			zap.Strings("conflicts", conflicts),
		)
		return &entity.SeatConflictError{Labels: conflicts}
	}

	if err := r.insertBooking(ctx, tx, booking); err != nil {
		return err
	}

	if err := r.insertBookingSeats(ctx, tx, booking); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit booking transaction",
			zap.Error(err),
			zap.String("booking_ref", booking.Ref),
		)
		return fmt.Errorf("commit booking %s: %w: %w", booking.Ref, entity.ErrPersistence, err)
	}

	return nil
}

func (r *bookingRepository) materializeGrid(ctx context.Context, tx pgx.Tx, grid []*entity.Seat) error {
	if len(grid) == 0 {
		return nil
	}

	query := `INSERT INTO seats (showtime_id, label, seat_row, seat_column, category, price, status) VALUES `
	args := []interface{}{}

	for i, seat := range grid {
		if i > 0 {
			query += ", "
		}
		base := i * 7
		query += fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7)

		args = append(args,
			seat.ShowtimeID,
			seat.Label,
			seat.Row,
			seat.Column,
			seat.Category,
			seat.Price,
			entity.SeatAvailable,
		)
	}

	query += ` ON CONFLICT (showtime_id, label) DO NOTHING`

	if _, err := tx.Exec(ctx, query, args...); err != nil {
		r.log.Error("Failed to materialize seat grid",
			zap.Error(err),
			zap.Int("count", len(grid)),
		)
		return fmt.Errorf("materialize seat grid: %w: %w", entity.ErrPersistence, err)
	}

	return nil
}

func (r *bookingRepository) conflictingLabels(ctx context.Context, tx pgx.Tx, showtimeID uuid.UUID, labels []string, bookingID uuid.UUID) ([]string, error) {
	// Inside the same transaction our own flips carry this booking's id,
	// so anything booked under a different id is a genuine race.
	rows, err := tx.Query(ctx, `
		SELECT label FROM seats
		WHERE showtime_id = $1 AND label = ANY($2) AND status = 'booked'
		  AND booking_id IS DISTINCT FROM $3
		ORDER BY seat_row, seat_column
	`, showtimeID, labels, bookingID)
	if err != nil {
		return nil, fmt.Errorf("identify conflicting seats: %w: %w", entity.ErrPersistence, err)
	}
	defer rows.Close()

	var conflicts []string
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return nil, fmt.Errorf("scan conflict label: %w: %w", entity.ErrPersistence, err)
		}
		conflicts = append(conflicts, label)
	}

	return conflicts, nil
}

func (r *bookingRepository) insertBooking(ctx context.Context, tx pgx.Tx, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)
	`

	_, err := tx.Exec(ctx, query,
		booking.ID,
		booking.Ref,
		booking.UserID,
		booking.UserEmail,
		booking.UserName,
		booking.ShowtimeID,
		booking.MovieID,
		booking.MovieTitle,
		booking.PosterPath,
		booking.TheatreID,
		booking.TheatreName,
		booking.TheatreAddress,
		booking.TheatreCity,
		booking.ShowTime,
		booking.ShowLabel,
		booking.Subtotal,
		booking.Tax,
		booking.Total,
		booking.Currency,
		booking.PaymentMethod,
		booking.PaymentStatus,
		booking.Status,
		booking.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to insert booking",
			zap.Error(err),
			zap.String("booking_ref", booking.Ref),
		)
		return fmt.Errorf("insert booking %s: %w: %w", booking.Ref, entity.ErrPersistence, err)
	}

	return nil
}

func (r *bookingRepository) insertBookingSeats(ctx context.Context, tx pgx.Tx, booking *entity.Booking) error {
	query := `INSERT INTO booking_seats (booking_id, label, category, price) VALUES `
	args := []interface{}{}

	for i, seat := range booking.Seats {
		if i > 0 {
			query += ", "
		}
		base := i * 4
		query += fmt.Sprintf("($%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4)

		args = append(args, booking.ID, seat.Label, seat.Category, seat.Price)
	}

	if _, err := tx.Exec(ctx, query, args...); err != nil {
		r.log.Error("Failed to insert booking seats",
			zap.Error(err),
			zap.String("booking_ref", booking.Ref),
		)
		return fmt.Errorf("insert booking seats for %s: %w: %w", booking.Ref, entity.ErrPersistence, err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	var booking entity.Booking
	err := r.db.QueryRow(ctx, query, id).Scan(bookingScanDest(&booking)...)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return &booking, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find bookings by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		var booking entity.Booking
		if err := rows.Scan(bookingScanDest(&booking)...); err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	return bookings, nil
}

func (r *bookingRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE user_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count bookings by user ID %s: %w", userID.String(), err)
	}

	return count, nil
}

func (r *bookingRepository) FindSeatsByBookingID(ctx context.Context, bookingID uuid.UUID) ([]entity.BookingSeat, error) {
	query := `
		SELECT booking_id, label, category, price
		FROM booking_seats
		WHERE booking_id = $1
		ORDER BY label
	`

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to find booking seats",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find seats for booking %s: %w", bookingID.String(), err)
	}
	defer rows.Close()

	var seats []entity.BookingSeat
	for rows.Next() {
		var seat entity.BookingSeat
		if err := rows.Scan(&seat.BookingID, &seat.Label, &seat.Category, &seat.Price); err != nil {
			r.log.Error("Failed to scan booking seat row", zap.Error(err))
			return nil, fmt.Errorf("scan booking seat row: %w", err)
		}
		seats = append(seats, seat)
	}

	return seats, nil
}

func bookingScanDest(b *entity.Booking) []any {
	return []any{
		&b.ID,
		&b.Ref,
		&b.UserID,
		&b.UserEmail,
		&b.UserName,
		&b.ShowtimeID,
		&b.MovieID,
		&b.MovieTitle,
		&b.PosterPath,
		&b.TheatreID,
		&b.TheatreName,
		&b.TheatreAddress,
		&b.TheatreCity,
		&b.ShowTime,
		&b.ShowLabel,
		&b.Subtotal,
		&b.Tax,
		&b.Total,
		&b.Currency,
		&b.PaymentMethod,
		&b.PaymentStatus,
		&b.Status,
		&b.CreatedAt,
	}
}
