package airports

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flights-api/flights-api/internal/domain"
)

func newTestDirectory(t *testing.T) *Directory {
	t.Helper()
	d, err := NewDirectory()
	require.NoError(t, err)
	return d
}

func TestNewDirectory_LoadsEmbeddedDataset(t *testing.T) {
	d := newTestDirectory(t)
	assert.Greater(t, d.Len(), 100)
}

func TestSearch_Taipei(t *testing.T) {
	d := newTestDirectory(t)

	got, err := d.Search(context.Background(), "taipei")
	require.NoError(t, err)
	require.NotEmpty(t, got)

	found := false
	for _, a := range got {
		if strings.Contains(strings.ToUpper(a.Name), "TAIPEI") {
			found = true
		}
	}
	assert.True(t, found, "expected a record whose name contains TAIPEI, got %v", got)
}

func TestSearch(t *testing.T) {
	d := newTestDirectory(t)

	tests := []struct {
		name      string
		query     string
		wantCodes []string
		wantEmpty bool
	}{
		{name: "no match", query: "zzzzz", wantEmpty: true},
		{name: "empty query", query: "", wantEmpty: true},
		{name: "blank query", query: "   ", wantEmpty: true},
		{name: "code match is case-insensitive", query: "myj", wantCodes: []string{"MYJ"}},
		{name: "name substring", query: "Songshan", wantCodes: []string{"TSA"}},
		{name: "spaces match underscores", query: "new chitose", wantCodes: []string{"CTS"}},
		{name: "hyphens match underscores", query: "charles-de-gaulle", wantCodes: []string{"CDG"}},
		{name: "words in any order", query: "taoyuan taiwan", wantCodes: []string{"TPE"}},
		{name: "london airports keep dataset order", query: "london", wantCodes: []string{"LHR", "LGW", "STN"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := d.Search(context.Background(), tt.query)
			require.NoError(t, err)
			require.NotNil(t, got)

			if tt.wantEmpty {
				assert.Empty(t, got)
				return
			}
			codes := make([]string, len(got))
			for i, a := range got {
				codes[i] = a.Code
			}
			assert.Equal(t, tt.wantCodes, codes)
		})
	}
}

func TestNewDirectoryFromReader(t *testing.T) {
	t.Run("valid dataset", func(t *testing.T) {
		d, err := NewDirectoryFromReader(strings.NewReader("code,name\nabc,ALPHA_AIRPORT\nXYZ, ZETA_FIELD\n"))
		require.NoError(t, err)

		got, err := d.Search(context.Background(), "a")
		require.NoError(t, err)
		assert.Equal(t, []domain.Airport{
			{Code: "ABC", Name: "ALPHA_AIRPORT"},
			{Code: "XYZ", Name: "ZETA_FIELD"},
		}, got)
	})

	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "wrong header", input: "iata,label\nABC,ALPHA\n"},
		{name: "wrong field count", input: "code,name\nABC\n"},
		{name: "blank name", input: "code,name\nABC,\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDirectoryFromReader(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}
