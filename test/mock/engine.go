package mock

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/flights-api/flights-api/internal/domain"
)

// Engine is a fake flight engine served over HTTP. It records every query
// it receives and answers with a configurable status and body.
type Engine struct {
	server *httptest.Server

	mu      sync.Mutex
	status  int
	body    string
	delay   time.Duration
	queries []domain.FlightQuery
}

// NewEngine starts a fake engine answering 200 with an empty result.
// The server is closed when Close is called.
func NewEngine() *Engine {
	e := &Engine{
		status: http.StatusOK,
		body:   `{"current_price": null, "flights": []}`,
	}
	e.server = httptest.NewServer(http.HandlerFunc(e.serve))
	return e
}

// URL returns the base URL of the fake engine.
func (e *Engine) URL() string {
	return e.server.URL
}

// Close shuts the fake engine down.
func (e *Engine) Close() {
	e.server.Close()
}

// Respond sets the status and raw body of every following answer.
func (e *Engine) Respond(status int, body string) *Engine {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.status = status
	e.body = body
	return e
}

// RespondWith answers 200 with the engine's JSON encoding of result.
func (e *Engine) RespondWith(result *domain.SearchResult) *Engine {
	return e.Respond(http.StatusOK, EnginePayload(result))
}

// WithDelay makes every answer wait for d or until the client gives up.
func (e *Engine) WithDelay(d time.Duration) *Engine {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.delay = d
	return e
}

// CallCount returns the number of queries received.
func (e *Engine) CallCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.queries)
}

// Queries returns a copy of the received queries.
func (e *Engine) Queries() []domain.FlightQuery {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]domain.FlightQuery(nil), e.queries...)
}

func (e *Engine) serve(w http.ResponseWriter, r *http.Request) {
	var q domain.FlightQuery
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		http.Error(w, `{"detail": "bad query"}`, http.StatusBadRequest)
		return
	}

	e.mu.Lock()
	e.queries = append(e.queries, q)
	status, body, delay := e.status, e.body, e.delay
	e.mu.Unlock()

	if delay > 0 {
		select {
		case <-r.Context().Done():
			return
		case <-time.After(delay):
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

type enginePayload struct {
	CurrentPrice *string        `json:"current_price"`
	Flights      []engineFlight `json:"flights"`
}

type engineFlight struct {
	IsBest           bool    `json:"is_best"`
	Name             string  `json:"name"`
	Departure        string  `json:"departure"`
	Arrival          string  `json:"arrival"`
	ArrivalTimeAhead string  `json:"arrival_time_ahead"`
	Duration         string  `json:"duration"`
	Stops            int     `json:"stops"`
	Delay            *string `json:"delay"`
	Price            string  `json:"price"`
}

// EnginePayload renders result the way the flight engine answers a search.
func EnginePayload(result *domain.SearchResult) string {
	p := enginePayload{Flights: []engineFlight{}}
	if result != nil {
		if result.CurrentPrice != "" {
			price := string(result.CurrentPrice)
			p.CurrentPrice = &price
		}
		for _, f := range result.Flights {
			p.Flights = append(p.Flights, engineFlight(f))
		}
	}
	data, _ := json.Marshal(p)
	return string(data)
}
