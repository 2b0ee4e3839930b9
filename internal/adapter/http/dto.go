package http

// SearchFlightsResponse is the body of a successful flight search.
type SearchFlightsResponse struct {
	// CurrentPrice is low, typical or high; null when the engine reported none
	CurrentPrice *string `json:"current_price" example:"low" extensions:"x-nullable"`

	// Flights keep the engine's order
	Flights []FlightResponse `json:"flights"`
}

// FlightResponse is one flight offer.
type FlightResponse struct {
	IsBest           bool    `json:"is_best" example:"true"`
	Name             string  `json:"name" example:"China Airlines"`
	Departure        string  `json:"departure" example:"7:40 AM on Fri, Feb 6"`
	Arrival          string  `json:"arrival" example:"11:15 AM on Fri, Feb 6"`
	ArrivalTimeAhead string  `json:"arrival_time_ahead" example:""`
	Duration         string  `json:"duration" example:"2 hr 35 min"`
	// Stops is -1 when the engine could not tell
	Stops            int     `json:"stops" example:"0"`
	Delay            *string `json:"delay" extensions:"x-nullable"`
	Price            string  `json:"price" example:"$412"`
}

// AirportResponse is one airport record.
type AirportResponse struct {
	Code string `json:"code" example:"TSA"`
	Name string `json:"name" example:"TAIPEI_SONGSHAN_AIRPORT"`
}

// AirportSearchResponse is the body of GET /api/airports/search.
type AirportSearchResponse struct {
	Airports []AirportResponse `json:"airports"`
}
