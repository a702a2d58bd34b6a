package seed

var schema = `
CREATE TABLE IF NOT EXISTS users (
	id UUID PRIMARY KEY,
	username VARCHAR(100) NOT NULL UNIQUE,
	email VARCHAR(255) NOT NULL UNIQUE,
	password_hash VARCHAR(255) NOT NULL,
	phone VARCHAR(20),
	address TEXT,
	is_active BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS sessions (
	id UUID PRIMARY KEY,
	user_id UUID NOT NULL REFERENCES users(id),
	token UUID NOT NULL UNIQUE,
	expires_at TIMESTAMPTZ NOT NULL,
	revoked_at TIMESTAMPTZ,
	created_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_sessions_token ON sessions(token);

CREATE TABLE IF NOT EXISTS movies (
	id UUID PRIMARY KEY,
	tmdb_id BIGINT NOT NULL,
	title VARCHAR(255) NOT NULL,
	overview TEXT,
	poster_path VARCHAR(255),
	backdrop_path VARCHAR(255),
	genres TEXT[] NOT NULL DEFAULT '{}',
	rating DOUBLE PRECISION NOT NULL DEFAULT 0,
	release_date VARCHAR(10) NOT NULL DEFAULT '',
	trailer_id VARCHAR(32),
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS theatres (
	id UUID PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	location VARCHAR(255) NOT NULL,
	city VARCHAR(100) NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS showtimes (
	id UUID PRIMARY KEY,
	movie_id UUID NOT NULL REFERENCES movies(id),
	theatre_id UUID NOT NULL REFERENCES theatres(id),
	show_time VARCHAR(20) NOT NULL,
	label VARCHAR(50) NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_showtimes_movie ON showtimes(movie_id);
CREATE INDEX IF NOT EXISTS idx_showtimes_theatre ON showtimes(theatre_id);

CREATE TABLE IF NOT EXISTS seats (
	showtime_id UUID NOT NULL REFERENCES showtimes(id),
	label VARCHAR(4) NOT NULL,
	seat_row CHAR(1) NOT NULL,
	seat_column INT NOT NULL,
	category VARCHAR(20) NOT NULL,
	price BIGINT NOT NULL,
	status VARCHAR(20) NOT NULL DEFAULT 'available',
	booked_by UUID,
	booking_id UUID,
	booked_at TIMESTAMPTZ,
	PRIMARY KEY (showtime_id, label)
);

CREATE TABLE IF NOT EXISTS bookings (
	id UUID PRIMARY KEY,
	ref VARCHAR(40) NOT NULL UNIQUE,
	user_id UUID NOT NULL REFERENCES users(id),
	user_email VARCHAR(255) NOT NULL,
	user_name VARCHAR(100) NOT NULL,
	showtime_id UUID NOT NULL REFERENCES showtimes(id),
	movie_id UUID NOT NULL,
	movie_title VARCHAR(255) NOT NULL,
	poster_path VARCHAR(255),
	theatre_id UUID NOT NULL,
	theatre_name VARCHAR(255) NOT NULL,
	theatre_address VARCHAR(255) NOT NULL,
	theatre_city VARCHAR(100) NOT NULL,
	show_time VARCHAR(20) NOT NULL,
	show_label VARCHAR(50) NOT NULL,
	subtotal BIGINT NOT NULL,
	tax BIGINT NOT NULL,
	total BIGINT NOT NULL,
	currency CHAR(3) NOT NULL,
	payment_method VARCHAR(20) NOT NULL,
	payment_status VARCHAR(20) NOT NULL,
	status VARCHAR(20) NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_bookings_user ON bookings(user_id);

CREATE TABLE IF NOT EXISTS booking_seats (
	booking_id UUID NOT NULL REFERENCES bookings(id),
	label VARCHAR(4) NOT NULL,
	category VARCHAR(20) NOT NULL,
	price BIGINT NOT NULL,
	PRIMARY KEY (booking_id, label)
);
`
