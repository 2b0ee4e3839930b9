package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func strPtr(s string) *string { return &s }

// validOneWay returns a request that passes validation.
func validOneWay() SearchRequest {
	return SearchRequest{
		FromAirport: "TPE",
		ToAirport:   "MYJ",
		Date:        "2026-02-06",
		Trip:        "one-way",
	}
}

func validRoundTrip() SearchRequest {
	req := validOneWay()
	req.Trip = "round-trip"
	req.ReturnDate = strPtr("2026-02-13")
	return req
}

func requireValidationErrors(t *testing.T, err error) *ValidationErrors {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidRequest), "should wrap ErrInvalidRequest")

	var verrs *ValidationErrors
	require.True(t, errors.As(err, &verrs), "should be *ValidationErrors")
	return verrs
}

func TestValidate_OneWayDefaults(t *testing.T) {
	v := NewValidator(DefaultValidatorOptions())

	q, err := v.Validate(validOneWay())
	require.NoError(t, err)

	assert.Equal(t, "TPE", q.Origin)
	assert.Equal(t, "MYJ", q.Destination)
	assert.Equal(t, "2026-02-06", q.DepartureDate)
	assert.Empty(t, q.ReturnDate)
	assert.Equal(t, TripOneWay, q.Trip)
	assert.Equal(t, SeatEconomy, q.Seat)
	assert.Equal(t, FetchCommon, q.FetchMode)
	assert.Equal(t, Passengers{Adults: 1}, q.Passengers)
	assert.Nil(t, q.MaxStops)
}

func TestValidate_NormalizesAirportCase(t *testing.T) {
	v := NewValidator(DefaultValidatorOptions())

	req := validOneWay()
	req.FromAirport = "tpe"
	req.ToAirport = " myj "
	req.Seat = "business"
	req.Airlines = []string{"dl", " star_alliance", ""}

	q, err := v.Validate(req)
	require.NoError(t, err)

	assert.Equal(t, "TPE", q.Origin)
	assert.Equal(t, "MYJ", q.Destination)
	assert.Equal(t, SeatBusiness, q.Seat)
	assert.Equal(t, []string{"DL", "STAR_ALLIANCE"}, q.Airlines)
}

func TestValidate_EnumsMatchExactly(t *testing.T) {
	v := NewValidator(DefaultValidatorOptions())

	tests := []struct {
		name  string
		field string
		edit  func(*SearchRequest)
	}{
		{name: "padded upper-case trip", field: "trip", edit: func(r *SearchRequest) { r.Trip = " ONE-WAY " }},
		{name: "upper-case seat", field: "seat", edit: func(r *SearchRequest) { r.Seat = "BUSINESS" }},
		{name: "title-case fetch mode", field: "fetch_mode", edit: func(r *SearchRequest) { r.FetchMode = "Local" }},
		{name: "blank seat", field: "seat", edit: func(r *SearchRequest) { r.Seat = " " }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validOneWay()
			tt.edit(&req)

			_, err := v.Validate(req)
			verrs := requireValidationErrors(t, err)
			assert.True(t, verrs.Has(tt.field))
		})
	}
}

func TestValidate_Airports(t *testing.T) {
	tests := []struct {
		name      string
		from, to  string
		wantField string
	}{
		{name: "missing origin", from: "", to: "MYJ", wantField: "from_airport"},
		{name: "missing destination", from: "TPE", to: "", wantField: "to_airport"},
		{name: "origin too long", from: "TPEX", to: "MYJ", wantField: "from_airport"},
		{name: "destination with digits", from: "TPE", to: "M1J", wantField: "to_airport"},
		{name: "same airport", from: "TPE", to: "tpe", wantField: "to_airport"},
	}

	v := NewValidator(DefaultValidatorOptions())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validOneWay()
			req.FromAirport = tt.from
			req.ToAirport = tt.to

			_, err := v.Validate(req)
			verrs := requireValidationErrors(t, err)
			assert.True(t, verrs.Has(tt.wantField), "expected error on %s, got %v", tt.wantField, verrs.ToMap())
		})
	}
}

func TestValidate_Dates(t *testing.T) {
	v := NewValidator(DefaultValidatorOptions())

	t.Run("missing date", func(t *testing.T) {
		req := validOneWay()
		req.Date = ""
		_, err := v.Validate(req)
		verrs := requireValidationErrors(t, err)
		assert.Equal(t, "date is required", verrs.ToMap()["date"])
	})

	t.Run("malformed date", func(t *testing.T) {
		req := validOneWay()
		req.Date = "06/02/2026"
		_, err := v.Validate(req)
		verrs := requireValidationErrors(t, err)
		assert.True(t, verrs.Has("date"))
	})

	t.Run("impossible date", func(t *testing.T) {
		req := validOneWay()
		req.Date = "2026-02-30"
		_, err := v.Validate(req)
		verrs := requireValidationErrors(t, err)
		assert.True(t, verrs.Has("date"))
	})
}

func TestValidate_Trip(t *testing.T) {
	v := NewValidator(DefaultValidatorOptions())

	tests := []struct {
		name string
		trip string
	}{
		{name: "missing", trip: ""},
		{name: "multi-city is unsupported", trip: "multi-city"},
		{name: "unknown", trip: "return"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validOneWay()
			req.Trip = tt.trip
			_, err := v.Validate(req)
			verrs := requireValidationErrors(t, err)
			assert.True(t, verrs.Has("trip"))
			assert.False(t, verrs.Has("return_date"), "return_date is not checked against an unknown trip")
		})
	}
}

func TestValidate_ReturnDateMatchesTrip(t *testing.T) {
	v := NewValidator(DefaultValidatorOptions())

	t.Run("one-way with return date fails", func(t *testing.T) {
		req := validOneWay()
		req.ReturnDate = strPtr("2026-02-13")
		_, err := v.Validate(req)
		verrs := requireValidationErrors(t, err)
		assert.Equal(t, "return_date must be omitted for one-way trips", err.Error())
		assert.True(t, verrs.Has("return_date"))
	})

	t.Run("one-way with empty return date fails", func(t *testing.T) {
		req := validOneWay()
		req.ReturnDate = strPtr("")
		_, err := v.Validate(req)
		verrs := requireValidationErrors(t, err)
		assert.Equal(t, "return_date must be omitted for one-way trips", err.Error())
		assert.True(t, verrs.Has("return_date"))
	})

	t.Run("round-trip with empty return date fails", func(t *testing.T) {
		req := validRoundTrip()
		req.ReturnDate = strPtr("")
		_, err := v.Validate(req)
		requireValidationErrors(t, err)
		assert.Equal(t, "return_date is required for round-trip trips", err.Error())
	})

	t.Run("round-trip without return date fails", func(t *testing.T) {
		req := validRoundTrip()
		req.ReturnDate = nil
		_, err := v.Validate(req)
		requireValidationErrors(t, err)
		assert.Equal(t, "return_date is required for round-trip trips", err.Error())
	})

	t.Run("round-trip with return date passes", func(t *testing.T) {
		q, err := v.Validate(validRoundTrip())
		require.NoError(t, err)
		assert.Equal(t, TripRoundTrip, q.Trip)
		assert.Equal(t, "2026-02-13", q.ReturnDate)
	})

	t.Run("same-day return passes", func(t *testing.T) {
		req := validRoundTrip()
		req.ReturnDate = strPtr("2026-02-06")
		_, err := v.Validate(req)
		assert.NoError(t, err)
	})

	t.Run("malformed return date fails", func(t *testing.T) {
		req := validRoundTrip()
		req.ReturnDate = strPtr("next week")
		_, err := v.Validate(req)
		verrs := requireValidationErrors(t, err)
		assert.True(t, verrs.Has("return_date"))
	})
}

func TestValidate_ReturnDateOrdering(t *testing.T) {
	req := validRoundTrip()
	req.ReturnDate = strPtr("2026-02-01")

	t.Run("strict rejects return before outbound", func(t *testing.T) {
		_, err := NewValidator(ValidatorOptions{StrictReturnDate: true}).Validate(req)
		requireValidationErrors(t, err)
		assert.Equal(t, "return_date must be on or after date", err.Error())
	})

	t.Run("lenient accepts return before outbound", func(t *testing.T) {
		q, err := NewValidator(ValidatorOptions{StrictReturnDate: false}).Validate(req)
		require.NoError(t, err)
		assert.Equal(t, "2026-02-01", q.ReturnDate)
	})
}

func TestValidate_PassengerCapacity(t *testing.T) {
	v := NewValidator(DefaultValidatorOptions())

	// Every way of reaching ten travellers must report capacity,
	// whichever count pushed the party over.
	for adults := 1; adults <= 10; adults++ {
		for children := 0; adults+children <= 10; children++ {
			for inSeat := 0; adults+children+inSeat <= 10; inSeat++ {
				lap := 10 - adults - children - inSeat
				in := &PassengersInput{
					Adults:        intPtr(adults),
					Children:      intPtr(children),
					InfantsInSeat: intPtr(inSeat),
					InfantsOnLap:  intPtr(lap),
				}
				req := validOneWay()
				req.Passengers = in

				_, err := v.Validate(req)
				verrs := requireValidationErrors(t, err)
				require.True(t, verrs.Has("passengers"),
					"adults=%d children=%d in_seat=%d lap=%d", adults, children, inSeat, lap)
				assert.Contains(t, err.Error(), "cannot exceed 9")
			}
		}
	}
}

func TestValidate_LapInfantRatio(t *testing.T) {
	v := NewValidator(DefaultValidatorOptions())

	for adults := 0; adults <= 4; adults++ {
		for lap := adults + 1; adults+lap <= 9; lap++ {
			req := validOneWay()
			req.Passengers = &PassengersInput{
				Adults:       intPtr(adults),
				InfantsOnLap: intPtr(lap),
			}

			_, err := v.Validate(req)
			verrs := requireValidationErrors(t, err)
			assert.True(t, verrs.Has("passengers.infants_on_lap"), "adults=%d lap=%d", adults, lap)
			assert.Contains(t, err.Error(), "infants_on_lap")
			assert.False(t, verrs.Has("passengers"), "total %d is within capacity", adults+lap)
		}
	}
}

func TestValidate_Passengers(t *testing.T) {
	tests := []struct {
		name      string
		input     *PassengersInput
		want      Passengers
		wantField string
	}{
		{
			name:  "nil defaults to one adult",
			input: nil,
			want:  Passengers{Adults: 1},
		},
		{
			name:  "omitted adults default to one",
			input: &PassengersInput{Children: intPtr(2)},
			want:  Passengers{Adults: 1, Children: 2},
		},
		{
			name: "full party of nine",
			input: &PassengersInput{
				Adults: intPtr(3), Children: intPtr(3), InfantsInSeat: intPtr(1), InfantsOnLap: intPtr(2),
			},
			want: Passengers{Adults: 3, Children: 3, InfantsInSeat: 1, InfantsOnLap: 2},
		},
		{
			name:  "lap infants equal to adults",
			input: &PassengersInput{Adults: intPtr(2), InfantsOnLap: intPtr(2)},
			want:  Passengers{Adults: 2, InfantsOnLap: 2},
		},
		{
			name:      "negative children",
			input:     &PassengersInput{Children: intPtr(-1)},
			wantField: "passengers.children",
		},
		{
			name:      "zero adults",
			input:     &PassengersInput{Adults: intPtr(0), Children: intPtr(1)},
			wantField: "passengers.adults",
		},
	}

	v := NewValidator(DefaultValidatorOptions())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validOneWay()
			req.Passengers = tt.input

			q, err := v.Validate(req)
			if tt.wantField != "" {
				verrs := requireValidationErrors(t, err)
				assert.True(t, verrs.Has(tt.wantField), "got %v", verrs.ToMap())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, q.Passengers)
		})
	}
}

func TestValidate_Enumerations(t *testing.T) {
	v := NewValidator(DefaultValidatorOptions())

	t.Run("unknown seat is rejected", func(t *testing.T) {
		req := validOneWay()
		req.Seat = "luxury"
		_, err := v.Validate(req)
		verrs := requireValidationErrors(t, err)
		assert.True(t, verrs.Has("seat"))
	})

	t.Run("unknown fetch mode is rejected", func(t *testing.T) {
		req := validOneWay()
		req.FetchMode = "fallback"
		_, err := v.Validate(req)
		verrs := requireValidationErrors(t, err)
		assert.True(t, verrs.Has("fetch_mode"))
	})

	t.Run("local fetch mode is accepted", func(t *testing.T) {
		req := validOneWay()
		req.FetchMode = "local"
		q, err := v.Validate(req)
		require.NoError(t, err)
		assert.Equal(t, FetchLocal, q.FetchMode)
	})

	t.Run("premium economy is accepted", func(t *testing.T) {
		req := validOneWay()
		req.Seat = "premium-economy"
		q, err := v.Validate(req)
		require.NoError(t, err)
		assert.Equal(t, SeatPremiumEconomy, q.Seat)
	})
}

func TestValidate_MaxStops(t *testing.T) {
	v := NewValidator(DefaultValidatorOptions())

	t.Run("negative is rejected", func(t *testing.T) {
		req := validOneWay()
		req.MaxStops = intPtr(-1)
		_, err := v.Validate(req)
		verrs := requireValidationErrors(t, err)
		assert.True(t, verrs.Has("max_stops"))
	})

	t.Run("zero is kept", func(t *testing.T) {
		req := validOneWay()
		req.MaxStops = intPtr(0)
		q, err := v.Validate(req)
		require.NoError(t, err)
		require.NotNil(t, q.MaxStops)
		assert.Equal(t, 0, *q.MaxStops)
	})

	t.Run("query does not alias the request", func(t *testing.T) {
		req := validOneWay()
		req.MaxStops = intPtr(1)
		q, err := v.Validate(req)
		require.NoError(t, err)
		*req.MaxStops = 5
		assert.Equal(t, 1, *q.MaxStops)
	})
}

func TestValidate_CollectsEveryViolation(t *testing.T) {
	v := NewValidator(DefaultValidatorOptions())

	_, err := v.Validate(SearchRequest{Seat: "luxury", FetchMode: "x"})
	verrs := requireValidationErrors(t, err)

	for _, field := range []string{"from_airport", "to_airport", "date", "trip", "seat", "fetch_mode"} {
		assert.True(t, verrs.Has(field), "expected violation on %s", field)
	}
	assert.Equal(t, "from_airport is required", err.Error(), "message is the first violation")
}
