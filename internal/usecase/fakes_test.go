package usecase

import (
	"context"
	"time"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/data/repository"
	"movie-booking/internal/dto/request"
	"movie-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func testPageReq() *request.PaginatedRequest {
	return &request.PaginatedRequest{Page: 1, PerPage: 10}
}

func testConfig() *utils.Config {
	return &utils.Config{
		Session: utils.SessionConfig{
			ExpiryHours: 24,
			MaxIdle:     30 * time.Minute,
		},
		Pricing: utils.PricingConfig{
			TaxPercent:   13,
			Currency:     "NPR",
			PremiumPrice: 650,
			GeneralPrice: 350,
		},
		Payment: utils.PaymentConfig{SimulatedDelay: 0},
	}
}

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

type fakeSessionRepo struct {
	sessions map[string]*entity.Session
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	f.sessions[session.Token.String()] = session
	return nil
}

func (f *fakeSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	session, ok := f.sessions[token]
	if !ok || session.RevokedAt != nil || session.ExpiresAt.Before(time.Now()) {
		return nil, nil
	}
	return session, nil
}

func (f *fakeSessionRepo) Revoke(ctx context.Context, token string) error {
	if session, ok := f.sessions[token]; ok {
		now := time.Now()
		session.RevokedAt = &now
	}
	return nil
}

func (f *fakeSessionRepo) CleanExpiredSessions(ctx context.Context) (int64, error) {
	var removed int64
	for token, session := range f.sessions {
		if session.ExpiresAt.Before(time.Now()) {
			delete(f.sessions, token)
			removed++
		}
	}
	return removed, nil
}

type fakeMovieRepo struct {
	movies map[uuid.UUID]*entity.Movie
}

func (f *fakeMovieRepo) CreateBatch(ctx context.Context, movies []*entity.Movie) error {
	for _, m := range movies {
		f.movies[m.ID] = m
	}
	return nil
}

func (f *fakeMovieRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	return f.movies[id], nil
}

func (f *fakeMovieRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Movie, error) {
	out := make([]*entity.Movie, 0, len(f.movies))
	for _, m := range f.movies {
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeMovieRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.movies)), nil
}

type fakeTheatreRepo struct {
	theatres map[uuid.UUID]*entity.Theatre
}

func (f *fakeTheatreRepo) CreateBatch(ctx context.Context, theatres []*entity.Theatre) error {
	for _, t := range theatres {
		f.theatres[t.ID] = t
	}
	return nil
}

func (f *fakeTheatreRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Theatre, error) {
	return f.theatres[id], nil
}

func (f *fakeTheatreRepo) FindAll(ctx context.Context) ([]*entity.Theatre, error) {
	out := make([]*entity.Theatre, 0, len(f.theatres))
	for _, t := range f.theatres {
		out = append(out, t)
	}
	return out, nil
}

type fakeShowtimeRepo struct {
	showtimes map[uuid.UUID]*entity.Showtime
}

func (f *fakeShowtimeRepo) CreateBatch(ctx context.Context, showtimes []*entity.Showtime) error {
	for _, s := range showtimes {
		f.showtimes[s.ID] = s
	}
	return nil
}

func (f *fakeShowtimeRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Showtime, error) {
	return f.showtimes[id], nil
}

func (f *fakeShowtimeRepo) FindAll(ctx context.Context, movieID, theatreID *uuid.UUID) ([]*entity.Showtime, error) {
	out := make([]*entity.Showtime, 0, len(f.showtimes))
	for _, s := range f.showtimes {
		if movieID != nil && s.MovieID != *movieID {
			continue
		}
		if theatreID != nil && s.TheatreID != *theatreID {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

type fakeSeatRepo struct {
	seats map[uuid.UUID][]*entity.Seat
	err   error
}

func (f *fakeSeatRepo) FindByShowtimeID(ctx context.Context, showtimeID uuid.UUID) ([]*entity.Seat, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.seats[showtimeID], nil
}

// fakeBookingRepo mimics the conditional flip: seats already booked in the
// seat repo trigger a conflict exactly like the transactional path does.
type fakeBookingRepo struct {
	seatRepo *fakeBookingSeatState
	bookings map[uuid.UUID]*entity.Booking
	err      error
}

type fakeBookingSeatState struct {
	booked map[string]bool // label -> booked
}

func (f *fakeBookingRepo) CreateWithSeats(ctx context.Context, booking *entity.Booking, grid []*entity.Seat) error {
	if f.err != nil {
		return f.err
	}

	var conflicts []string
	for _, s := range booking.Seats {
		if f.seatRepo.booked[s.Label] {
			conflicts = append(conflicts, s.Label)
		}
	}
	if len(conflicts) > 0 {
		return &entity.SeatConflictError{Labels: conflicts}
	}

	for _, s := range booking.Seats {
		f.seatRepo.booked[s.Label] = true
	}
	f.bookings[booking.ID] = booking
	return nil
}

func (f *fakeBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	return f.bookings[id], nil
}

func (f *fakeBookingRepo) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	bookings, _ := f.FindByUserID(ctx, userID, 0, 0)
	return int64(len(bookings)), nil
}

func (f *fakeBookingRepo) FindSeatsByBookingID(ctx context.Context, bookingID uuid.UUID) ([]entity.BookingSeat, error) {
	if b, ok := f.bookings[bookingID]; ok {
		return b.Seats, nil
	}
	return nil, nil
}

// testWorld wires a service stack over in-memory fakes with one seeded
// user, movie, theatre and showtime.
type testWorld struct {
	repo        *repository.Repository
	service     *Service
	bookingRepo *fakeBookingRepo
	seatRepo    *fakeSeatRepo
	user        *entity.User
	showtime    *entity.Showtime
}

func newTestWorld() *testWorld {
	log := zap.NewNop()
	config := testConfig()

	user := &entity.User{
		Base:     entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Username: "sita",
		Email:    "sita@example.com",
		IsActive: true,
	}

	poster := "/poster.jpg"
	movie := &entity.Movie{
		Base:       entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Title:      "The Housemaid",
		PosterPath: &poster,
	}

	theatre := &entity.Theatre{
		Base:     entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Name:     "Cineplex Kathmandu",
		Location: "Jamal, Kathmandu",
		City:     "Kathmandu",
	}

	showtime := &entity.Showtime{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		MovieID:    movie.ID,
		TheatreID:  theatre.ID,
		ShowTime:   "18:45",
		Label:      "Evening Show",
	}

	seatRepo := &fakeSeatRepo{seats: map[uuid.UUID][]*entity.Seat{}}
	bookingRepo := &fakeBookingRepo{
		seatRepo: &fakeBookingSeatState{booked: map[string]bool{}},
		bookings: map[uuid.UUID]*entity.Booking{},
	}

	repo := &repository.Repository{
		User:     &fakeUserRepo{users: map[uuid.UUID]*entity.User{user.ID: user}},
		Session:  &fakeSessionRepo{sessions: map[string]*entity.Session{}},
		Movie:    &fakeMovieRepo{movies: map[uuid.UUID]*entity.Movie{movie.ID: movie}},
		Theatre:  &fakeTheatreRepo{theatres: map[uuid.UUID]*entity.Theatre{theatre.ID: theatre}},
		Showtime: &fakeShowtimeRepo{showtimes: map[uuid.UUID]*entity.Showtime{showtime.ID: showtime}},
		Seat:     seatRepo,
		Booking:  bookingRepo,
	}

	return &testWorld{
		repo:        repo,
		service:     NewService(repo, nil, config, log),
		bookingRepo: bookingRepo,
		seatRepo:    seatRepo,
		user:        user,
		showtime:    showtime,
	}
}
