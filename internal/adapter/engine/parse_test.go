package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flights-api/flights-api/internal/domain"
)

func TestParseResult_Stops(t *testing.T) {
	tests := []struct {
		name  string
		stops string
		want  int
	}{
		{name: "nonstop", stops: `0`, want: 0},
		{name: "two stops", stops: `2`, want: 2},
		{name: "unknown string", stops: `"Unknown"`, want: domain.UnknownStops},
		{name: "numeric string", stops: `"1"`, want: domain.UnknownStops},
		{name: "null", stops: `null`, want: domain.UnknownStops},
		{name: "negative", stops: `-3`, want: domain.UnknownStops},
		{name: "fractional", stops: `1.5`, want: domain.UnknownStops},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseResult([]byte(`{"flights":[{"name":"Peach","stops":` + tt.stops + `}]}`))
			require.NoError(t, err)
			require.Len(t, result.Flights, 1)
			assert.Equal(t, tt.want, result.Flights[0].Stops)
		})
	}

	t.Run("missing", func(t *testing.T) {
		result, err := parseResult([]byte(`{"flights":[{"name":"Peach"}]}`))
		require.NoError(t, err)
		assert.Equal(t, domain.UnknownStops, result.Flights[0].Stops)
	})
}

func TestParseResult_CurrentPriceIsVerbatim(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    domain.PriceLevel
	}{
		{name: "lower case", payload: `{"current_price":"low","flights":[]}`, want: domain.PriceLow},
		{name: "mixed case kept", payload: `{"current_price":"High","flights":[]}`, want: "High"},
		{name: "padding kept", payload: `{"current_price":" typical ","flights":[]}`, want: " typical "},
		{name: "unrecognized kept", payload: `{"current_price":"elevated","flights":[]}`, want: "elevated"},
		{name: "null", payload: `{"current_price":null,"flights":[]}`, want: ""},
		{name: "not a string", payload: `{"current_price":3,"flights":[]}`, want: ""},
		{name: "missing", payload: `{"flights":[]}`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseResult([]byte(tt.payload))
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.CurrentPrice)
		})
	}
}
