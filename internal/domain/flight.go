// Package domain contains the core types and rules of the flights API.
// Nothing here performs I/O: the flight engine and the airport dataset are
// reached through the interfaces declared in fetcher.go.
package domain

// PriceLevel describes how the current fares compare to the route's usual
// prices. The value is reported by the flight engine and passed through
// verbatim; an empty PriceLevel means the engine did not report one.
type PriceLevel string

// Price levels reported by the flight engine.
const (
	PriceLow     PriceLevel = "low"
	PriceTypical PriceLevel = "typical"
	PriceHigh    PriceLevel = "high"
)

// IsKnown reports whether the level is one of low, typical or high.
func (p PriceLevel) IsKnown() bool {
	switch p {
	case PriceLow, PriceTypical, PriceHigh:
		return true
	}
	return false
}

// UnknownStops marks an offer whose stop count the engine could not determine.
const UnknownStops = -1

// FlightOffer is a single itinerary offer as displayed by the flight engine.
// Times, duration and price are display strings and are never re-parsed.
type FlightOffer struct {
	// IsBest marks the engine's recommended pick
	IsBest bool

	// Name is the carrier display name (e.g., "China Airlines")
	Name string

	// Departure is the local departure time as displayed (e.g., "7:40 AM on Fri, Feb 6")
	Departure string

	// Arrival is the local arrival time as displayed
	Arrival string

	// ArrivalTimeAhead is the day offset annotation (e.g., "+1"), empty when same day
	ArrivalTimeAhead string

	// Duration is the total travel time as displayed (e.g., "2 hr 35 min")
	Duration string

	// Stops is the number of connections (0 = nonstop, UnknownStops when
	// the engine could not tell)
	Stops int

	// Delay is the delay notice, nil when not applicable
	Delay *string

	// Price is the currency-formatted fare (e.g., "$412")
	Price string
}

// SearchResult is the outcome of one flight search.
// Flights keep the order in which the engine returned them.
type SearchResult struct {
	CurrentPrice PriceLevel
	Flights      []FlightOffer
}

// Airport is a record of the static airport dataset.
type Airport struct {
	// Code is the IATA location code (e.g., "TPE")
	Code string

	// Name is the dataset display name (e.g., "TAIWAN_TAOYUAN_INTERNATIONAL_AIRPORT")
	Name string
}
