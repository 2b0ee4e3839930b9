package http

import (
	"github.com/flights-api/flights-api/internal/domain"
)

// ToSearchFlightsResponse converts a search result to its response body.
// An empty price level is rendered as null and flights are never null.
func ToSearchFlightsResponse(r *domain.SearchResult) *SearchFlightsResponse {
	resp := &SearchFlightsResponse{Flights: []FlightResponse{}}
	if r == nil {
		return resp
	}

	if r.CurrentPrice != "" {
		level := string(r.CurrentPrice)
		resp.CurrentPrice = &level
	}

	resp.Flights = make([]FlightResponse, len(r.Flights))
	for i, f := range r.Flights {
		resp.Flights[i] = toFlightResponse(f)
	}
	return resp
}

func toFlightResponse(f domain.FlightOffer) FlightResponse {
	var delay *string
	if f.Delay != nil {
		d := *f.Delay
		delay = &d
	}
	return FlightResponse{
		IsBest:           f.IsBest,
		Name:             f.Name,
		Departure:        f.Departure,
		Arrival:          f.Arrival,
		ArrivalTimeAhead: f.ArrivalTimeAhead,
		Duration:         f.Duration,
		Stops:            f.Stops,
		Delay:            delay,
		Price:            f.Price,
	}
}

// ToAirportSearchResponse converts airport records to the response body.
func ToAirportSearchResponse(airports []domain.Airport) *AirportSearchResponse {
	resp := &AirportSearchResponse{Airports: make([]AirportResponse, len(airports))}
	for i, a := range airports {
		resp.Airports[i] = AirportResponse{Code: a.Code, Name: a.Name}
	}
	return resp
}
