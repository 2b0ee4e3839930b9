// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/flights-api/flights-api/internal/domain"
)

// LoadTestJSON loads a file from the test/testdata directory.
func LoadTestJSON(t *testing.T, filename string) []byte {
	t.Helper()

	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}

	// testutil lives in test/testutil
	projectRoot := filepath.Join(filepath.Dir(currentFile), "..", "..")
	data, err := os.ReadFile(filepath.Join(projectRoot, "test", "testdata", filename))
	if err != nil {
		t.Fatalf("Failed to load test file %s: %v", filename, err)
	}
	return data
}

// FutureDate returns the date days from today in YYYY-MM-DD format.
func FutureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format(domain.DateLayout)
}

// Ptr returns a pointer to the given value.
func Ptr[T any](v T) *T {
	return &v
}

// PassengersBody is the passengers object of a search request body.
type PassengersBody struct {
	Adults        *int `json:"adults,omitempty"`
	Children      *int `json:"children,omitempty"`
	InfantsInSeat *int `json:"infants_in_seat,omitempty"`
	InfantsOnLap  *int `json:"infants_on_lap,omitempty"`
}

// SearchBody builds POST /api/flights/search bodies. Empty fields are
// omitted so tests can exercise defaults.
type SearchBody struct {
	FromAirport string          `json:"from_airport,omitempty"`
	ToAirport   string          `json:"to_airport,omitempty"`
	Date        string          `json:"date,omitempty"`
	ReturnDate  *string         `json:"return_date,omitempty"`
	Trip        string          `json:"trip,omitempty"`
	Airlines    []string        `json:"airlines,omitempty"`
	MaxStops    *int            `json:"max_stops,omitempty"`
	Seat        string          `json:"seat,omitempty"`
	FetchMode   string          `json:"fetch_mode,omitempty"`
	Passengers  *PassengersBody `json:"passengers,omitempty"`
}

// OneWayBody returns a valid one-way search from TPE to MYJ.
func OneWayBody() SearchBody {
	return SearchBody{
		FromAirport: "TPE",
		ToAirport:   "MYJ",
		Date:        FutureDate(30),
		Trip:        string(domain.TripOneWay),
	}
}

// RoundTripBody returns a valid round-trip search returning after stay days.
func RoundTripBody(stay int) SearchBody {
	b := OneWayBody()
	b.Trip = string(domain.TripRoundTrip)
	b.ReturnDate = Ptr(FutureDate(30 + stay))
	return b
}

// JSON encodes v, failing the test on error.
func JSON(t *testing.T, v any) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Failed to encode %T: %v", v, err)
	}
	return data
}

// Detail extracts the "detail" message of an error response body.
func Detail(t *testing.T, body []byte) string {
	t.Helper()
	var resp struct {
		Detail *string `json:"detail"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("Failed to decode error body %q: %v", body, err)
	}
	if resp.Detail == nil {
		t.Fatalf("Error body %q has no detail", body)
	}
	return *resp.Detail
}
