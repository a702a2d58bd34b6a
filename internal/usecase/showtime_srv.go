package usecase

import (
	"context"
	"fmt"

	"movie-booking/internal/data/cache"
	"movie-booking/internal/data/entity"
	"movie-booking/internal/data/repository"
	"movie-booking/internal/dto/response"
	"movie-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

var seatFallbackTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "seat_resolution_fallback_total",
	Help: "Seat inventory reads that fell back to a synthesized grid after a store failure.",
})

type ShowtimeService interface {
	ListShowtimes(ctx context.Context, movieID, theatreID *uuid.UUID) ([]response.ShowtimeResponse, error)
	GetShowtime(ctx context.Context, id uuid.UUID) (*response.ShowtimeDetailResponse, error)

	// ResolveSeats returns the full grid for a showtime: persisted seat
	// records when any exist, a synthesized all-available grid otherwise.
	ResolveSeats(ctx context.Context, showtimeID uuid.UUID) ([]*entity.Seat, error)
}

type showtimeService struct {
	repo      *repository.Repository
	seatCache *cache.SeatCache
	prices    entity.PriceTable
	log       *zap.Logger
}

func NewShowtimeService(repo *repository.Repository, seatCache *cache.SeatCache, config *utils.Config, log *zap.Logger) ShowtimeService {
	return &showtimeService{
		repo:      repo,
		seatCache: seatCache,
		prices: entity.PriceTable{
			Premium: config.Pricing.PremiumPrice,
			General: config.Pricing.GeneralPrice,
		},
		log: log.With(zap.String("service", "showtime")),
	}
}

func (s *showtimeService) ListShowtimes(ctx context.Context, movieID, theatreID *uuid.UUID) ([]response.ShowtimeResponse, error) {
	showtimes, err := s.repo.Showtime.FindAll(ctx, movieID, theatreID)
	if err != nil {
		s.log.Error("Failed to list showtimes", zap.Error(err))
		return nil, fmt.Errorf("failed to list showtimes")
	}

	return response.ShowtimesToResponse(showtimes), nil
}

func (s *showtimeService) GetShowtime(ctx context.Context, id uuid.UUID) (*response.ShowtimeDetailResponse, error) {
	showtime, err := s.repo.Showtime.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find showtime", zap.Error(err), zap.String("showtime_id", id.String()))
		return nil, fmt.Errorf("failed to find showtime")
	}
	if showtime == nil {
		return nil, nil
	}

	// Joined lookups are best effort: a missing movie or theatre row
	// degrades the detail, it does not fail the request.
	movie, err := s.repo.Movie.FindByID(ctx, showtime.MovieID)
	if err != nil {
		s.log.Warn("Failed to load movie for showtime", zap.Error(err), zap.String("showtime_id", id.String()))
	}
	theatre, err := s.repo.Theatre.FindByID(ctx, showtime.TheatreID)
	if err != nil {
		s.log.Warn("Failed to load theatre for showtime", zap.Error(err), zap.String("showtime_id", id.String()))
	}

	resp := response.ShowtimeToDetailResponse(showtime, movie, theatre)
	return &resp, nil
}

func (s *showtimeService) ResolveSeats(ctx context.Context, showtimeID uuid.UUID) ([]*entity.Seat, error) {
	if cached := s.seatCache.Get(ctx, showtimeID); cached != nil {
		return cached, nil
	}

	seats, err := s.repo.Seat.FindByShowtimeID(ctx, showtimeID)
	if err != nil {
		// A read failure never blocks the flow: degrade to the default
		// grid. Stale availability surfaces at commit time, where the
		// conditional flip is authoritative.
		s.log.Warn("Seat read failed, falling back to synthesized grid",
			zap.Error(err),
			zap.String("showtime_id", showtimeID.String()),
		)
		seatFallbackTotal.Inc()
		return entity.SynthesizeSeats(showtimeID, s.prices), nil
	}

	// No persisted records means no booking has materialized the grid
	// yet: synthesize an all-available one.
	if len(seats) == 0 {
		seats = entity.SynthesizeSeats(showtimeID, s.prices)
	}

	s.seatCache.Set(ctx, showtimeID, seats)
	return seats, nil
}
