package domain

import "fmt"

// DateLayout is the ISO calendar date format used for every date field.
const DateLayout = "2006-01-02"

// TripType is whether an itinerary is one-way or round-trip.
type TripType string

// Supported trip types.
const (
	TripOneWay    TripType = "one-way"
	TripRoundTrip TripType = "round-trip"
)

// ParseTripType converts a caller-supplied value to a TripType.
// Matching is exact: unknown spellings, including other letter cases, are
// rejected rather than coerced.
func ParseTripType(s string) (TripType, error) {
	switch t := TripType(s); t {
	case TripOneWay, TripRoundTrip:
		return t, nil
	}
	return "", fmt.Errorf("unsupported trip type %q", s)
}

// SeatClass is the cabin class requested for every leg.
type SeatClass string

// Supported seat classes.
const (
	SeatEconomy        SeatClass = "economy"
	SeatPremiumEconomy SeatClass = "premium-economy"
	SeatBusiness       SeatClass = "business"
	SeatFirst          SeatClass = "first"
)

// ParseSeatClass converts a caller-supplied value to a SeatClass.
// An empty value yields SeatEconomy; any other value must match exactly.
func ParseSeatClass(s string) (SeatClass, error) {
	if s == "" {
		return SeatEconomy, nil
	}
	switch c := SeatClass(s); c {
	case SeatEconomy, SeatPremiumEconomy, SeatBusiness, SeatFirst:
		return c, nil
	}
	return "", fmt.Errorf("unsupported seat class %q", s)
}

// FetchMode selects the engine's retrieval strategy.
type FetchMode string

// Supported fetch modes.
const (
	// FetchCommon fetches results with an ordinary network request.
	FetchCommon FetchMode = "common"

	// FetchLocal renders results through the browser-automation worker.
	FetchLocal FetchMode = "local"
)

// ParseFetchMode converts a caller-supplied value to a FetchMode.
// An empty value yields FetchCommon; any other value must match exactly.
func ParseFetchMode(s string) (FetchMode, error) {
	if s == "" {
		return FetchCommon, nil
	}
	switch m := FetchMode(s); m {
	case FetchCommon, FetchLocal:
		return m, nil
	}
	return "", fmt.Errorf("unsupported fetch mode %q", s)
}

// MaxPassengers is the largest party a single search may cover.
const MaxPassengers = 9

// PassengersInput holds the raw passenger counts of a request.
// A nil field takes its default: Adults 1, every other count 0.
type PassengersInput struct {
	Adults        *int
	Children      *int
	InfantsInSeat *int
	InfantsOnLap  *int
}

// Passengers holds validated passenger counts.
type Passengers struct {
	Adults        int `json:"adults"`
	Children      int `json:"children"`
	InfantsInSeat int `json:"infants_in_seat"`
	InfantsOnLap  int `json:"infants_on_lap"`
}

// Total returns the number of travellers of every kind.
func (p Passengers) Total() int {
	return p.Adults + p.Children + p.InfantsInSeat + p.InfantsOnLap
}

// DefaultPassengers returns a party of one adult.
func DefaultPassengers() Passengers {
	return Passengers{Adults: 1}
}

// SearchRequest is a flight search as supplied by a caller, before validation.
type SearchRequest struct {
	// FromAirport and ToAirport are location codes, case-insensitive
	FromAirport string
	ToAirport   string

	// Date is the outbound date (YYYY-MM-DD)
	Date string

	// ReturnDate is the return date; only nil means absent
	ReturnDate *string

	// Trip is "one-way" or "round-trip"
	Trip string

	// Airlines is accepted for compatibility only. The engine cannot filter
	// by airline, so the list never reaches it.
	Airlines []string

	// MaxStops caps connections on every leg when set
	MaxStops *int

	// Seat defaults to economy
	Seat string

	// Passengers defaults to one adult when nil
	Passengers *PassengersInput

	// FetchMode defaults to common
	FetchMode string
}

// SearchQuery is a validated, normalized SearchRequest.
type SearchQuery struct {
	Origin        string
	Destination   string
	DepartureDate string

	// ReturnDate is empty for one-way trips
	ReturnDate string

	Trip       TripType
	Seat       SeatClass
	Passengers Passengers
	MaxStops   *int
	FetchMode  FetchMode

	// Airlines is kept for logging and echoing; it has no effect on the search.
	Airlines []string
}

// Leg is one directional flight segment of an itinerary.
type Leg struct {
	Date        string `json:"date"`
	FromAirport string `json:"from_airport"`
	ToAirport   string `json:"to_airport"`
	MaxStops    *int   `json:"max_stops,omitempty"`
}

// FlightQuery is the parameter set understood by the flight engine.
type FlightQuery struct {
	Legs       []Leg      `json:"flight_data"`
	Trip       TripType   `json:"trip"`
	Seat       SeatClass  `json:"seat"`
	Passengers Passengers `json:"passengers"`
	FetchMode  FetchMode  `json:"fetch_mode"`
}
