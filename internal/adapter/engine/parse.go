package engine

import (
	"errors"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/flights-api/flights-api/internal/domain"
)

// maxErrorMessage bounds how much of a raw error body is quoted.
const maxErrorMessage = 200

// parseResult reads an engine payload of the form
//
//	{"current_price": "low", "flights": [{"is_best": true, "name": "...", ...}]}
//
// Parsing is lenient on individual fields: a stop count the engine could not
// determine (e.g., "Unknown") reads as domain.UnknownStops and a missing
// delay reads as nil. current_price is kept verbatim. A payload without a
// flights array is rejected.
func parseResult(payload []byte) (*domain.SearchResult, error) {
	if !gjson.ValidBytes(payload) {
		return nil, errors.New("engine returned invalid JSON")
	}
	root := gjson.ParseBytes(payload)

	flights := root.Get("flights")
	if !flights.IsArray() {
		return nil, errors.New("engine response has no flights list")
	}

	result := &domain.SearchResult{
		CurrentPrice: parsePriceLevel(root.Get("current_price")),
		Flights:      make([]domain.FlightOffer, 0, len(flights.Array())),
	}

	flights.ForEach(func(_, f gjson.Result) bool {
		result.Flights = append(result.Flights, domain.FlightOffer{
			IsBest:           f.Get("is_best").Bool(),
			Name:             f.Get("name").String(),
			Departure:        f.Get("departure").String(),
			Arrival:          f.Get("arrival").String(),
			ArrivalTimeAhead: f.Get("arrival_time_ahead").String(),
			Duration:         f.Get("duration").String(),
			Stops:            parseStops(f.Get("stops")),
			Delay:            optionalString(f.Get("delay")),
			Price:            f.Get("price").String(),
		})
		return true
	})

	return result, nil
}

func parsePriceLevel(v gjson.Result) domain.PriceLevel {
	if v.Type != gjson.String {
		return ""
	}
	return domain.PriceLevel(v.String())
}

func parseStops(v gjson.Result) int {
	if v.Type != gjson.Number || v.Num < 0 || v.Num != float64(int(v.Num)) {
		return domain.UnknownStops
	}
	return int(v.Num)
}

func optionalString(v gjson.Result) *string {
	if !v.Exists() || v.Type == gjson.Null {
		return nil
	}
	s := v.String()
	if s == "" {
		return nil
	}
	return &s
}

// errorMessage extracts a readable reason from an engine error body.
func errorMessage(payload []byte, status string) string {
	if gjson.ValidBytes(payload) {
		for _, path := range []string{"detail", "error.message", "error", "message"} {
			if v := gjson.GetBytes(payload, path); v.Type == gjson.String && v.String() != "" {
				return v.String()
			}
		}
	}
	msg := strings.TrimSpace(string(payload))
	if msg == "" {
		return status
	}
	if len(msg) > maxErrorMessage {
		msg = msg[:maxErrorMessage] + "..."
	}
	return msg
}
