// Package http provides the HTTP handler layer of the flights API.
// It decodes requests, delegates to the use case and maps results and
// errors onto the JSON contract.
package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/flights-api/flights-api/internal/domain"
)

// SearchFlightsRequest is the request body of POST /api/flights/search.
type SearchFlightsRequest struct {
	// FromAirport is the departure location code
	FromAirport string `json:"from_airport" example:"TPE"`

	// ToAirport is the arrival location code
	ToAirport string `json:"to_airport" example:"MYJ"`

	// Date is the outbound date (YYYY-MM-DD)
	Date string `json:"date" example:"2026-02-06"`

	// ReturnDate is required for round-trip and must be absent for one-way
	ReturnDate *string `json:"return_date,omitempty" example:"2026-02-10"`

	// Trip is "one-way" or "round-trip"
	Trip string `json:"trip" example:"one-way" enums:"one-way,round-trip"`

	// Airlines is accepted but has no effect on the search
	Airlines []string `json:"airlines,omitempty" example:"CI,BR"`

	// MaxStops caps connections on every leg
	MaxStops *int `json:"max_stops,omitempty" example:"1"`

	// Seat defaults to economy
	Seat string `json:"seat,omitempty" example:"economy" enums:"economy,premium-economy,business,first"`

	// Passengers defaults to one adult
	Passengers *PassengersRequest `json:"passengers,omitempty"`

	// FetchMode defaults to common
	FetchMode string `json:"fetch_mode,omitempty" example:"common" enums:"common,local"`
}

// PassengersRequest holds the passenger counts. Omitted counts take their
// defaults: adults 1, everything else 0.
type PassengersRequest struct {
	Adults        *int `json:"adults,omitempty" example:"1"`
	Children      *int `json:"children,omitempty" example:"0"`
	InfantsInSeat *int `json:"infants_in_seat,omitempty" example:"0"`
	InfantsOnLap  *int `json:"infants_on_lap,omitempty" example:"0"`
}

// DecodeSearchFlightsRequest decodes a request body strictly: unknown keys,
// mistyped values and trailing data are all rejected.
func DecodeSearchFlightsRequest(body io.Reader) (*SearchFlightsRequest, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("request body is empty")
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var req SearchFlightsRequest
	if err := dec.Decode(&req); err != nil {
		return nil, errors.New(describeDecodeError(err))
	}
	if dec.More() {
		return nil, errors.New("request body must contain a single JSON object")
	}
	return &req, nil
}

// describeDecodeError turns encoding/json errors into caller-facing text.
func describeDecodeError(err error) string {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError

	switch {
	case errors.As(err, &syntaxErr):
		return fmt.Sprintf("malformed JSON at offset %d", syntaxErr.Offset)
	case errors.As(err, &typeErr):
		if typeErr.Field == "" {
			return "request body must be a JSON object"
		}
		return fmt.Sprintf("%s must be of type %s", typeErr.Field, jsonTypeName(typeErr.Type.Kind().String()))
	case errors.Is(err, io.ErrUnexpectedEOF):
		return "malformed JSON: unexpected end of input"
	case strings.HasPrefix(err.Error(), "json: unknown field "):
		return "unknown field " + strings.TrimPrefix(err.Error(), "json: unknown field ")
	}
	return err.Error()
}

func jsonTypeName(kind string) string {
	switch kind {
	case "int", "int64", "ptr":
		return "integer"
	case "slice":
		return "array"
	case "struct":
		return "object"
	}
	return kind
}

// ToDomainRequest converts the body to the use case input.
func ToDomainRequest(req *SearchFlightsRequest) domain.SearchRequest {
	out := domain.SearchRequest{
		FromAirport: req.FromAirport,
		ToAirport:   req.ToAirport,
		Date:        req.Date,
		ReturnDate:  req.ReturnDate,
		Trip:        req.Trip,
		Airlines:    req.Airlines,
		MaxStops:    req.MaxStops,
		Seat:        req.Seat,
		FetchMode:   req.FetchMode,
	}
	if req.Passengers != nil {
		out.Passengers = &domain.PassengersInput{
			Adults:        req.Passengers.Adults,
			Children:      req.Passengers.Children,
			InfantsInSeat: req.Passengers.InfantsInSeat,
			InfantsOnLap:  req.Passengers.InfantsOnLap,
		}
	}
	return out
}
