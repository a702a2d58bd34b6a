package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movie-booking/internal/data/cache"
	"movie-booking/internal/data/entity"
	"movie-booking/internal/data/repository"
	"movie-booking/internal/dto/request"
	"movie-booking/internal/dto/response"
	"movie-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	// Commit turns a booking session at the payment step into a
	// confirmed booking. On a seat conflict the session is refreshed
	// with current availability and returned to seat selection.
	Commit(ctx context.Context, userID, sessionID uuid.UUID, method entity.PaymentMethod) (*response.BookingResponse, error)

	ListUserBookings(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetBooking(ctx context.Context, userID, bookingID uuid.UUID) (*response.BookingResponse, error)
}

type bookingService struct {
	repo      *repository.Repository
	sessions  BookingSessionService
	seatCache *cache.SeatCache
	config    *utils.Config
	log       *zap.Logger
}

func NewBookingService(
	repo *repository.Repository,
	sessions BookingSessionService,
	seatCache *cache.SeatCache,
	config *utils.Config,
	log *zap.Logger,
) BookingService {
	return &bookingService{
		repo:      repo,
		sessions:  sessions,
		seatCache: seatCache,
		config:    config,
		log:       log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) Commit(ctx context.Context, userID, sessionID uuid.UUID, method entity.PaymentMethod) (*response.BookingResponse, error) {
	// 1. Take a consistent snapshot of the session and check
	// preconditions. Committing the snapshot keeps the totals stable
	// even if the user toggles seats during the payment round trip.
	session, err := s.sessions.Snapshot(userID, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Step != entity.StepPayment {
		return nil, fmt.Errorf("commit from step %s: %w", session.Step, entity.ErrInvalidState)
	}
	if session.Selection.Len() == 0 {
		return nil, entity.ErrEmptySelection
	}
	if !method.Valid() {
		return nil, fmt.Errorf("payment method %s: %w", method, entity.ErrInvalidState)
	}

	// 2. Load the showtime snapshot data
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil || user == nil {
		s.log.Error("Failed to load user for commit", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("commit booking: %w", entity.ErrPersistence)
	}

	showtime, err := s.repo.Showtime.FindByID(ctx, session.ShowtimeID)
	if err != nil || showtime == nil {
		s.log.Error("Failed to load showtime for commit", zap.Error(err), zap.String("showtime_id", session.ShowtimeID.String()))
		return nil, fmt.Errorf("commit booking: %w", entity.ErrPersistence)
	}

	movie, err := s.repo.Movie.FindByID(ctx, showtime.MovieID)
	if err != nil || movie == nil {
		s.log.Error("Failed to load movie for commit", zap.Error(err), zap.String("movie_id", showtime.MovieID.String()))
		return nil, fmt.Errorf("commit booking: %w", entity.ErrPersistence)
	}

	theatre, err := s.repo.Theatre.FindByID(ctx, showtime.TheatreID)
	if err != nil || theatre == nil {
		s.log.Error("Failed to load theatre for commit", zap.Error(err), zap.String("theatre_id", showtime.TheatreID.String()))
		return nil, fmt.Errorf("commit booking: %w", entity.ErrPersistence)
	}

	// 3. Simulated payment gateway round trip
	select {
	case <-time.After(s.config.Payment.SimulatedDelay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	// 4. Build the booking with a denormalized snapshot, so the ticket
	// stays intact even if the catalog changes later
	now := time.Now()
	taxPercent := s.config.Pricing.TaxPercent

	booking := &entity.Booking{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		Ref:            utils.GenerateBookingRef(),
		UserID:         user.ID,
		UserEmail:      user.Email,
		UserName:       user.Username,
		ShowtimeID:     showtime.ID,
		MovieID:        movie.ID,
		MovieTitle:     movie.Title,
		PosterPath:     movie.PosterPath,
		TheatreID:      theatre.ID,
		TheatreName:    theatre.Name,
		TheatreAddress: theatre.Location,
		TheatreCity:    theatre.City,
		ShowTime:       showtime.ShowTime,
		ShowLabel:      showtime.Label,
		Subtotal:       session.Selection.Subtotal(),
		Tax:            session.Selection.Tax(taxPercent),
		Total:          session.Selection.Total(taxPercent),
		Currency:       s.config.Pricing.Currency,
		PaymentMethod:  method,
		PaymentStatus:  entity.PaymentStatusCompleted,
		Status:         entity.BookingStatusConfirmed,
	}

	for _, seat := range session.Selection.Seats() {
		booking.Seats = append(booking.Seats, entity.BookingSeat{
			BookingID: booking.ID,
			Label:     seat.Label,
			Category:  seat.Category,
			Price:     seat.Price,
		})
	}

	// 5. Atomic check-and-flip. The full grid goes along so first-time
	// bookings materialize every seat row in the same transaction.
	grid := entity.SynthesizeSeats(showtime.ID, entity.PriceTable{
		Premium: s.config.Pricing.PremiumPrice,
		General: s.config.Pricing.GeneralPrice,
	})

	err = s.repo.Booking.CreateWithSeats(ctx, booking, grid)

	var conflict *entity.SeatConflictError
	if errors.As(err, &conflict) {
		s.handleSeatConflict(ctx, userID, sessionID, session.ShowtimeID, conflict)
		return nil, err
	}
	if err != nil {
		s.log.Error("Failed to commit booking",
			zap.Error(err),
			zap.String("booking_ref", booking.Ref),
		)
		return nil, err
	}

	// 6. Booking confirmed: the session is done and cached availability
	// is stale
	s.sessions.Drop(sessionID)
	s.seatCache.Invalidate(ctx, showtime.ID)

	s.log.Info("Booking confirmed",
		zap.String("booking_ref", booking.Ref),
		zap.String("user_id", userID.String()),
		zap.String("showtime_id", showtime.ID.String()),
		zap.Strings("seats", booking.SeatLabels()),
		zap.Int64("total", booking.Total),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

// handleSeatConflict refreshes the live session's inventory under the
// store lock so the retried flow sees the raced seats as booked.
func (s *bookingService) handleSeatConflict(ctx context.Context, userID, sessionID, showtimeID uuid.UUID, conflict *entity.SeatConflictError) {
	s.log.Warn("Booking commit lost seat race",
		zap.String("session_id", sessionID.String()),
		zap.Strings("conflicts", conflict.Labels),
	)

	s.seatCache.Invalidate(ctx, showtimeID)

	fresh, err := s.repo.Seat.FindByShowtimeID(ctx, showtimeID)

	updateErr := s.sessions.Update(userID, sessionID, func(session *entity.BookingSession) {
		if err != nil || len(fresh) == 0 {
			// Refresh from the conflict report alone: mark the raced
			// labels booked on the inventory we already hold.
			for _, label := range conflict.Labels {
				if seat := session.SeatByLabel(label); seat != nil {
					seat.Status = entity.SeatBooked
				}
			}
			session.RefreshSeats(session.Seats)
			return
		}

		session.RefreshSeats(fresh)
	})
	if updateErr != nil {
		s.log.Warn("Session gone before conflict refresh",
			zap.Error(updateErr),
			zap.String("session_id", sessionID.String()),
		)
	}
}

func (s *bookingService) ListUserBookings(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.repo.Booking.FindByUserID(ctx, userID, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to list bookings")
	}

	total, err := s.repo.Booking.CountByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to count bookings", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to list bookings")
	}

	for _, booking := range bookings {
		seats, err := s.repo.Booking.FindSeatsByBookingID(ctx, booking.ID)
		if err != nil {
			s.log.Warn("Failed to load seats for booking",
				zap.Error(err),
				zap.String("booking_id", booking.ID.String()),
			)
			continue
		}
		booking.Seats = seats
	}

	// A user with no bookings gets an empty page, never an error
	return response.NewPaginatedResponse(
		response.BookingsToResponse(bookings),
		req.Page, req.Limit(), total,
	), nil
}

func (s *bookingService) GetBooking(ctx context.Context, userID, bookingID uuid.UUID) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("booking_id", bookingID.String()))
		return nil, fmt.Errorf("failed to find booking")
	}
	if booking == nil || booking.UserID != userID {
		return nil, fmt.Errorf("booking: %w", entity.ErrNotFound)
	}

	seats, err := s.repo.Booking.FindSeatsByBookingID(ctx, bookingID)
	if err != nil {
		s.log.Warn("Failed to load seats for booking", zap.Error(err), zap.String("booking_id", bookingID.String()))
	} else {
		booking.Seats = seats
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}
