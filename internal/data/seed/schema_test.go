package seed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The repositories are written against this DDL; a column that drifts out
// of sync otherwise only surfaces on the first live query.
func TestSchemaDeclaresRepositoryColumns(t *testing.T) {
	columns := map[string][]string{
		"users":         {"id", "username", "email", "password_hash", "phone", "address", "is_active", "created_at", "updated_at"},
		"sessions":      {"id", "user_id", "token", "expires_at", "revoked_at", "created_at"},
		"movies":        {"id", "tmdb_id", "title", "overview", "poster_path", "backdrop_path", "genres", "rating", "release_date", "trailer_id"},
		"theatres":      {"id", "name", "location", "city"},
		"showtimes":     {"id", "movie_id", "theatre_id", "show_time", "label"},
		"seats":         {"showtime_id", "label", "seat_row", "seat_column", "category", "price", "status", "booked_by", "booking_id", "booked_at"},
		"bookings":      {"id", "ref", "user_id", "user_email", "user_name", "showtime_id", "movie_id", "movie_title", "poster_path", "theatre_id", "theatre_name", "theatre_address", "theatre_city", "show_time", "show_label", "subtotal", "tax", "total", "currency", "payment_method", "payment_status", "status", "created_at"},
		"booking_seats": {"booking_id", "label", "category", "price"},
	}

	for table, cols := range columns {
		ddl := tableDDL(t, table)
		for _, col := range cols {
			assert.Contains(t, ddl, "\t"+col+" ", "table %s is missing column %s", table, col)
		}
	}
}

// tableDDL cuts one CREATE TABLE block out of the schema.
func tableDDL(t *testing.T, table string) string {
	t.Helper()

	marker := "CREATE TABLE IF NOT EXISTS " + table + " ("
	start := strings.Index(schema, marker)
	require.NotEqual(t, -1, start, "no CREATE TABLE for %s", table)

	rest := schema[start:]
	end := strings.Index(rest, "\n);")
	require.NotEqual(t, -1, end)

	return rest[:end]
}
