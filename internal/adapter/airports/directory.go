// Package airports provides the airport lookup backed by a static dataset
// embedded in the binary.
package airports

import (
	"context"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/flights-api/flights-api/internal/domain"
)

//go:embed airports.csv
var dataset string

// Directory is an in-memory airport dataset. It is immutable after
// construction and safe for concurrent use.
type Directory struct {
	airports []domain.Airport
}

// NewDirectory loads the embedded dataset.
func NewDirectory() (*Directory, error) {
	return NewDirectoryFromReader(strings.NewReader(dataset))
}

// NewDirectoryFromReader loads a "code,name" CSV with a header row.
// Record order is preserved and becomes the order of search results.
func NewDirectoryFromReader(r io.Reader) (*Directory, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("airport dataset is empty")
		}
		return nil, fmt.Errorf("read airport header: %w", err)
	}
	if !strings.EqualFold(header[0], "code") || !strings.EqualFold(header[1], "name") {
		return nil, fmt.Errorf("unexpected airport header %v", header)
	}

	var airports []domain.Airport
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read airport record: %w", err)
		}

		code := strings.ToUpper(strings.TrimSpace(record[0]))
		name := strings.TrimSpace(record[1])
		if code == "" || name == "" {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("airport record on line %d is incomplete", line)
		}
		airports = append(airports, domain.Airport{Code: code, Name: name})
	}

	return &Directory{airports: airports}, nil
}

// Len returns the number of airports in the dataset.
func (d *Directory) Len() int {
	return len(d.airports)
}

// Search returns airports whose code or name contains the query, or whose
// name contains every word of the query. Matching ignores case, and spaces,
// hyphens and underscores are interchangeable.
func (d *Directory) Search(_ context.Context, query string) ([]domain.Airport, error) {
	q := normalize(query)
	if q == "" {
		return []domain.Airport{}, nil
	}
	tokens := strings.FieldsFunc(q, isSeparator)

	result := []domain.Airport{}
	for _, a := range d.airports {
		if matches(a, q, tokens) {
			result = append(result, a)
		}
	}
	return result, nil
}

func matches(a domain.Airport, q string, tokens []string) bool {
	code := strings.ToLower(a.Code)
	name := normalize(a.Name)

	if strings.Contains(code, q) || strings.Contains(name, q) {
		return true
	}
	if len(tokens) < 2 {
		return false
	}
	for _, tok := range tokens {
		if !strings.Contains(name, tok) && tok != code {
			return false
		}
	}
	return true
}

// normalize lower-cases s and folds separators to a single underscore.
func normalize(s string) string {
	fields := strings.FieldsFunc(strings.ToLower(strings.TrimSpace(s)), isSeparator)
	return strings.Join(fields, "_")
}

func isSeparator(r rune) bool {
	return r == ' ' || r == '_' || r == '-' || r == '\t'
}

// Ensure Directory implements domain.AirportDirectory at compile time.
var _ domain.AirportDirectory = (*Directory)(nil)
