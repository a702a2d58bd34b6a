package usecase

import (
	"context"
	"fmt"

	"movie-booking/internal/data/repository"
	"movie-booking/internal/dto/response"

	"go.uber.org/zap"
)

type TheatreService interface {
	ListTheatres(ctx context.Context) ([]response.TheatreResponse, error)
}

type theatreService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewTheatreService(repo *repository.Repository, log *zap.Logger) TheatreService {
	return &theatreService{
		repo: repo,
		log:  log.With(zap.String("service", "theatre")),
	}
}

func (s *theatreService) ListTheatres(ctx context.Context) ([]response.TheatreResponse, error) {
	theatres, err := s.repo.Theatre.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list theatres", zap.Error(err))
		return nil, fmt.Errorf("failed to list theatres")
	}

	return response.TheatresToResponse(theatres), nil
}
