package usecase

import "github.com/flights-api/flights-api/internal/domain"

// BuildFlightQuery maps a validated query onto the engine's vocabulary.
//
// One-way trips produce a single leg; round trips produce the outbound leg
// followed by the return leg with origin and destination swapped. Every leg
// carries the same stop ceiling.
//
// Airlines are deliberately not forwarded: the engine cannot filter legs by
// airline, and passing the list along would suggest that it does.
func BuildFlightQuery(q domain.SearchQuery) domain.FlightQuery {
	legs := []domain.Leg{
		newLeg(q.DepartureDate, q.Origin, q.Destination, q.MaxStops),
	}
	if q.Trip == domain.TripRoundTrip {
		legs = append(legs, newLeg(q.ReturnDate, q.Destination, q.Origin, q.MaxStops))
	}

	return domain.FlightQuery{
		Legs:       legs,
		Trip:       q.Trip,
		Seat:       q.Seat,
		Passengers: q.Passengers,
		FetchMode:  q.FetchMode,
	}
}

// newLeg gives each leg its own copy of the stop ceiling.
func newLeg(date, from, to string, maxStops *int) domain.Leg {
	leg := domain.Leg{
		Date:        date,
		FromAirport: from,
		ToAirport:   to,
	}
	if maxStops != nil {
		stops := *maxStops
		leg.MaxStops = &stops
	}
	return leg
}

// MapResult copies the engine's result without filtering or reordering.
// A nil result or offer list becomes an empty list.
func MapResult(r *domain.SearchResult) *domain.SearchResult {
	if r == nil {
		return &domain.SearchResult{Flights: []domain.FlightOffer{}}
	}

	flights := make([]domain.FlightOffer, len(r.Flights))
	copy(flights, r.Flights)

	return &domain.SearchResult{
		CurrentPrice: r.CurrentPrice,
		Flights:      flights,
	}
}
