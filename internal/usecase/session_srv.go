package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/dto/response"
	"movie-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingSessionService interface {
	Start(ctx context.Context, userID, showtimeID uuid.UUID) (*response.SessionResponse, error)
	Get(ctx context.Context, userID, sessionID uuid.UUID) (*response.SessionResponse, error)
	ToggleSeat(ctx context.Context, userID, sessionID uuid.UUID, label string) (*response.SessionResponse, error)
	Advance(ctx context.Context, userID, sessionID uuid.UUID) (*response.SessionResponse, error)
	Retreat(ctx context.Context, userID, sessionID uuid.UUID, to entity.SessionStep) (*response.SessionResponse, error)
	Abandon(ctx context.Context, userID, sessionID uuid.UUID) error

	// Snapshot hands the commit path a deep copy taken under the store
	// lock; Update applies fn to the live session under the same lock;
	// Drop removes it once the booking is confirmed.
	Snapshot(userID, sessionID uuid.UUID) (*entity.BookingSession, error)
	Update(userID, sessionID uuid.UUID, fn func(*entity.BookingSession)) error
	Drop(sessionID uuid.UUID)

	// Sweep evicts sessions idle longer than maxIdle and returns how
	// many were removed.
	Sweep(maxIdle time.Duration) int
}

// bookingSessionService is an in-memory store: a booking session is
// ephemeral wizard state and is lost on restart, which only costs the user
// a re-selection. Confirmed bookings live in Postgres. The store mutex
// serializes every read and write of a session, including the snapshot the
// commit path works from.
type bookingSessionService struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*entity.BookingSession

	showtimes ShowtimeService
	config    *utils.Config
	log       *zap.Logger
}

func NewBookingSessionService(showtimes ShowtimeService, config *utils.Config, log *zap.Logger) BookingSessionService {
	return &bookingSessionService{
		sessions:  make(map[uuid.UUID]*entity.BookingSession),
		showtimes: showtimes,
		config:    config,
		log:       log.With(zap.String("service", "booking_session")),
	}
}

func (s *bookingSessionService) Start(ctx context.Context, userID, showtimeID uuid.UUID) (*response.SessionResponse, error) {
	showtime, err := s.showtimes.GetShowtime(ctx, showtimeID)
	if err != nil {
		return nil, fmt.Errorf("failed to start booking session")
	}
	if showtime == nil {
		return nil, fmt.Errorf("showtime: %w", entity.ErrNotFound)
	}

	seats, err := s.showtimes.ResolveSeats(ctx, showtimeID)
	if err != nil {
		s.log.Error("Failed to resolve seats", zap.Error(err), zap.String("showtime_id", showtimeID.String()))
		return nil, fmt.Errorf("failed to start booking session")
	}

	session := entity.NewBookingSession(userID, showtimeID, seats)

	s.mu.Lock()
	s.sessions[session.ID] = session
	resp := s.toResponse(session)
	s.mu.Unlock()

	s.log.Info("Booking session started",
		zap.String("session_id", session.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("showtime_id", showtimeID.String()),
	)

	return resp, nil
}

func (s *bookingSessionService) Get(ctx context.Context, userID, sessionID uuid.UUID) (*response.SessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.find(userID, sessionID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(session), nil
}

func (s *bookingSessionService) ToggleSeat(ctx context.Context, userID, sessionID uuid.UUID, label string) (*response.SessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.find(userID, sessionID)
	if err != nil {
		return nil, err
	}

	if _, err := session.ToggleSeat(label); err != nil {
		return nil, fmt.Errorf("seat %s: %w", label, err)
	}

	return s.toResponse(session), nil
}

func (s *bookingSessionService) Advance(ctx context.Context, userID, sessionID uuid.UUID) (*response.SessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.find(userID, sessionID)
	if err != nil {
		return nil, err
	}

	if err := session.Advance(); err != nil {
		return nil, err
	}

	return s.toResponse(session), nil
}

func (s *bookingSessionService) Retreat(ctx context.Context, userID, sessionID uuid.UUID, to entity.SessionStep) (*response.SessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.find(userID, sessionID)
	if err != nil {
		return nil, err
	}

	if err := session.Retreat(to); err != nil {
		return nil, err
	}

	return s.toResponse(session), nil
}

func (s *bookingSessionService) Abandon(ctx context.Context, userID, sessionID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.find(userID, sessionID); err != nil {
		return err
	}

	delete(s.sessions, sessionID)
	s.log.Info("Booking session abandoned", zap.String("session_id", sessionID.String()))
	return nil
}

func (s *bookingSessionService) Snapshot(userID, sessionID uuid.UUID) (*entity.BookingSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.find(userID, sessionID)
	if err != nil {
		return nil, err
	}

	return session.Clone(), nil
}

func (s *bookingSessionService) Update(userID, sessionID uuid.UUID, fn func(*entity.BookingSession)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.find(userID, sessionID)
	if err != nil {
		return err
	}

	fn(session)
	return nil
}

func (s *bookingSessionService) Drop(sessionID uuid.UUID) {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
}

func (s *bookingSessionService) Sweep(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, session := range s.sessions {
		if session.UpdatedAt.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}

	if removed > 0 {
		s.log.Info("Swept idle booking sessions", zap.Int("removed", removed))
	}

	return removed
}

// find looks up the session; the caller must hold s.mu. An ownership
// mismatch reports not-found so session IDs leak nothing.
func (s *bookingSessionService) find(userID, sessionID uuid.UUID) (*entity.BookingSession, error) {
	session, ok := s.sessions[sessionID]
	if !ok || session.UserID != userID {
		return nil, fmt.Errorf("booking session: %w", entity.ErrNotFound)
	}

	return session, nil
}

func (s *bookingSessionService) toResponse(session *entity.BookingSession) *response.SessionResponse {
	resp := response.SessionToResponse(session, s.config.Pricing.TaxPercent, s.config.Pricing.Currency)
	return &resp
}
