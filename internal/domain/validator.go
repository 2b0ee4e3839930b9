package domain

import (
	"regexp"
	"strings"
	"time"
)

// airportCodePattern matches a 3-letter location code after upper-casing.
// Codes are otherwise opaque: the engine decides whether they exist.
var airportCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// ValidatorOptions tunes validation strictness.
type ValidatorOptions struct {
	// StrictReturnDate rejects round trips whose return date precedes the outbound date.
	StrictReturnDate bool
}

// DefaultValidatorOptions returns the strictest options.
func DefaultValidatorOptions() ValidatorOptions {
	return ValidatorOptions{
		StrictReturnDate: true,
	}
}

// Validator turns a SearchRequest into a SearchQuery.
// It is stateless and safe for concurrent use.
type Validator struct {
	opts ValidatorOptions
}

// NewValidator creates a Validator with the given options.
func NewValidator(opts ValidatorOptions) *Validator {
	return &Validator{opts: opts}
}

// Validate checks every rule and returns the normalized query, or a
// *ValidationErrors wrapping ErrInvalidRequest.
func (v *Validator) Validate(req SearchRequest) (*SearchQuery, error) {
	errs := &ValidationErrors{}
	q := &SearchQuery{}

	q.Origin = validateAirport(errs, "from_airport", req.FromAirport)
	q.Destination = validateAirport(errs, "to_airport", req.ToAirport)
	if q.Origin != "" && q.Origin == q.Destination {
		errs.Add("to_airport", "to_airport must differ from from_airport")
	}

	departure, depOK := validateDate(errs, "date", req.Date, true)
	q.DepartureDate = req.Date

	trip, tripOK := validateTrip(errs, req.Trip)
	q.Trip = trip
	if tripOK {
		q.ReturnDate = v.validateReturnDate(errs, trip, req.ReturnDate, departure, depOK)
	}

	q.Passengers = validatePassengers(errs, req.Passengers)

	seat, err := ParseSeatClass(req.Seat)
	if err != nil {
		errs.Addf("seat", "seat must be one of: economy, premium-economy, business, first; got %q", req.Seat)
	}
	q.Seat = seat

	mode, err := ParseFetchMode(req.FetchMode)
	if err != nil {
		errs.Addf("fetch_mode", "fetch_mode must be one of: common, local; got %q", req.FetchMode)
	}
	q.FetchMode = mode

	if req.MaxStops != nil {
		if *req.MaxStops < 0 {
			errs.Add("max_stops", "max_stops must be a non-negative integer")
		} else {
			stops := *req.MaxStops
			q.MaxStops = &stops
		}
	}

	q.Airlines = normalizeAirlines(req.Airlines)

	if errs.HasErrors() {
		return nil, errs
	}
	return q, nil
}

func validateAirport(errs *ValidationErrors, field, value string) string {
	code := strings.ToUpper(strings.TrimSpace(value))
	if code == "" {
		errs.Add(field, field+" is required")
		return ""
	}
	if !airportCodePattern.MatchString(code) {
		errs.Addf(field, "%s must be a 3-letter airport code, got %q", field, value)
		return ""
	}
	return code
}

func validateDate(errs *ValidationErrors, field, value string, required bool) (time.Time, bool) {
	if value == "" {
		if required {
			errs.Add(field, field+" is required")
		}
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		errs.Addf(field, "%s must be a valid date in YYYY-MM-DD format, got %q", field, value)
		return time.Time{}, false
	}
	return t, true
}

func validateTrip(errs *ValidationErrors, value string) (TripType, bool) {
	if value == "" {
		errs.Add("trip", "trip is required")
		return "", false
	}
	trip, err := ParseTripType(value)
	if err != nil {
		// Multi-city and other itineraries are unsupported input, not best-effort.
		errs.Addf("trip", "trip must be one of: one-way, round-trip; got %q", value)
		return "", false
	}
	return trip, true
}

func (v *Validator) validateReturnDate(errs *ValidationErrors, trip TripType, value *string, departure time.Time, depOK bool) string {
	switch trip {
	case TripOneWay:
		// Any non-null value counts, even an empty string.
		if value != nil {
			errs.Add("return_date", "return_date must be omitted for one-way trips")
		}
		return ""
	case TripRoundTrip:
		if value == nil || strings.TrimSpace(*value) == "" {
			errs.Add("return_date", "return_date is required for round-trip trips")
			return ""
		}
	}

	ret, ok := validateDate(errs, "return_date", *value, true)
	if !ok {
		return ""
	}
	if v.opts.StrictReturnDate && depOK && ret.Before(departure) {
		errs.Add("return_date", "return_date must be on or after date")
	}
	return *value
}

// validatePassengers applies defaults and the party rules. Capacity is checked
// before the lap-infant ratio so an oversized party always reports capacity.
func validatePassengers(errs *ValidationErrors, in *PassengersInput) Passengers {
	p := DefaultPassengers()
	if in == nil {
		return p
	}

	negative := false
	take := func(field string, src *int, dst *int) {
		if src == nil {
			return
		}
		if *src < 0 {
			errs.Addf(field, "%s must be a non-negative integer", field)
			negative = true
			return
		}
		*dst = *src
	}
	take("passengers.adults", in.Adults, &p.Adults)
	take("passengers.children", in.Children, &p.Children)
	take("passengers.infants_in_seat", in.InfantsInSeat, &p.InfantsInSeat)
	take("passengers.infants_on_lap", in.InfantsOnLap, &p.InfantsOnLap)
	if negative {
		return p
	}

	if total := p.Total(); total > MaxPassengers {
		errs.Addf("passengers", "total number of passengers cannot exceed %d, got %d", MaxPassengers, total)
	}
	if p.InfantsOnLap > p.Adults {
		errs.Addf("passengers.infants_on_lap",
			"infants_on_lap (%d) cannot exceed adults (%d): every lap infant needs an adult", p.InfantsOnLap, p.Adults)
	}
	if p.Adults < 1 {
		errs.Add("passengers.adults", "passengers.adults must be at least 1")
	}
	return p
}

func normalizeAirlines(airlines []string) []string {
	if len(airlines) == 0 {
		return nil
	}
	out := make([]string, 0, len(airlines))
	for _, a := range airlines {
		if a = strings.ToUpper(strings.TrimSpace(a)); a != "" {
			out = append(out, a)
		}
	}
	return out
}
