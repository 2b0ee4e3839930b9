package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	flighthttp "github.com/flights-api/flights-api/internal/adapter/http"
	"github.com/flights-api/flights-api/internal/app"
	"github.com/flights-api/flights-api/internal/config"
	"github.com/flights-api/flights-api/internal/domain"
	"github.com/flights-api/flights-api/internal/infrastructure/logger"
)

func searchCommand() *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Search flights for a route and date",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "from", Aliases: []string{"f"}, Usage: "Departure airport code", Required: true},
			&cli.StringFlag{Name: "to", Aliases: []string{"t"}, Usage: "Arrival airport code", Required: true},
			&cli.StringFlag{Name: "date", Aliases: []string{"d"}, Usage: "Outbound date (YYYY-MM-DD)", Required: true},
			&cli.StringFlag{Name: "return-date", Aliases: []string{"r"}, Usage: "Return date (YYYY-MM-DD) for round trips"},
			&cli.StringFlag{Name: "trip", Value: string(domain.TripOneWay), Usage: "Trip type (one-way, round-trip)"},
			&cli.StringFlag{Name: "seat", Value: string(domain.SeatEconomy), Usage: "Seat class (economy, premium-economy, business, first)"},
			&cli.IntFlag{Name: "adults", Value: 1, Usage: "Number of adults"},
			&cli.IntFlag{Name: "children", Usage: "Number of children"},
			&cli.IntFlag{Name: "infants-in-seat", Usage: "Number of infants with their own seat"},
			&cli.IntFlag{Name: "infants-on-lap", Usage: "Number of lap infants"},
			&cli.IntFlag{Name: "max-stops", Usage: "Maximum connections per leg"},
			&cli.StringSliceFlag{Name: "airline", Usage: "Airline code (repeatable, accepted but not applied by the engine)"},
			&cli.StringFlag{Name: "fetch-mode", Value: string(domain.FetchCommon), Usage: "Fetch mode (common, local)"},
			&cli.BoolFlag{Name: "json", Usage: "Print the API response body instead of a table"},
		},
		Action: runSearch,
	}
}

func airportsCommand() *cli.Command {
	return &cli.Command{
		Name:      "airports",
		Usage:     "Look airports up by code or name",
		ArgsUsage: "<query>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "Print the API response body instead of a table"},
		},
		Action: runAirports,
	}
}

// searchRequest builds the unvalidated request from the command flags.
func searchRequest(c *cli.Context) domain.SearchRequest {
	req := domain.SearchRequest{
		FromAirport: c.String("from"),
		ToAirport:   c.String("to"),
		Date:        c.String("date"),
		Trip:        c.String("trip"),
		Seat:        c.String("seat"),
		Airlines:    c.StringSlice("airline"),
		FetchMode:   c.String("fetch-mode"),
		Passengers: &domain.PassengersInput{
			Adults:        intFlag(c, "adults"),
			Children:      intFlag(c, "children"),
			InfantsInSeat: intFlag(c, "infants-in-seat"),
			InfantsOnLap:  intFlag(c, "infants-on-lap"),
		},
	}
	if c.IsSet("return-date") {
		rd := c.String("return-date")
		req.ReturnDate = &rd
	}
	if c.IsSet("max-stops") {
		req.MaxStops = intFlag(c, "max-stops")
	}
	return req
}

func intFlag(c *cli.Context, name string) *int {
	v := c.Int(name)
	return &v
}

func runSearch(c *cli.Context) error {
	components, log, err := assemble(c)
	if err != nil {
		return err
	}
	defer log.Close()
	defer components.Close()

	result, err := components.UseCase.Search(c.Context, searchRequest(c))
	if err != nil {
		return err
	}

	resp := flighthttp.ToSearchFlightsResponse(result)
	if c.Bool("json") {
		return writeJSON(c.App.Writer, resp)
	}
	return writeFlights(c.App.Writer, resp)
}

func runAirports(c *cli.Context) error {
	query := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(query) == "" {
		return errors.New("airports: a search query is required")
	}

	components, log, err := assemble(c)
	if err != nil {
		return err
	}
	defer log.Close()
	defer components.Close()

	found, err := components.UseCase.SearchAirports(c.Context, query)
	if err != nil {
		return err
	}

	resp := flighthttp.ToAirportSearchResponse(found)
	if c.Bool("json") {
		return writeJSON(c.App.Writer, resp)
	}

	w := tabwriter.NewWriter(c.App.Writer, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tNAME")
	for _, a := range resp.Airports {
		fmt.Fprintf(w, "%s\t%s\n", a.Code, a.Name)
	}
	return w.Flush()
}

// assemble loads configuration and builds the service the same way the
// server does. Logs go to stderr so stdout carries only results.
func assemble(c *cli.Context) (*app.Components, *logger.Logger, error) {
	cfg, err := config.Load(c.String("env-file"))
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	logCfg := app.LoggerConfig(cfg)
	logCfg.Level = c.String("log-level")
	logCfg.Format = "console"
	logCfg.File = logger.FileConfig{}
	log := logger.NewWithOutput(logCfg, c.App.ErrWriter)

	ctx := c.Context
	if ctx == nil {
		ctx = context.Background()
	}
	components, err := app.Build(ctx, cfg, log)
	if err != nil {
		_ = log.Close()
		return nil, nil, err
	}
	return components, log, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeFlights(out io.Writer, resp *flighthttp.SearchFlightsResponse) error {
	price := "unknown"
	if resp.CurrentPrice != nil {
		price = *resp.CurrentPrice
	}
	fmt.Fprintf(out, "Current price: %s\n", price)

	if len(resp.Flights) == 0 {
		fmt.Fprintln(out, "No flights found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BEST\tAIRLINE\tDEPARTURE\tARRIVAL\tDURATION\tSTOPS\tPRICE\tDELAY")
	for _, f := range resp.Flights {
		best := ""
		if f.IsBest {
			best = "*"
		}
		arrival := f.Arrival
		if f.ArrivalTimeAhead != "" {
			arrival += " " + f.ArrivalTimeAhead
		}
		stops := "?"
		if f.Stops != domain.UnknownStops {
			stops = fmt.Sprint(f.Stops)
		}
		delay := ""
		if f.Delay != nil {
			delay = *f.Delay
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			best, f.Name, f.Departure, arrival, f.Duration, stops, f.Price, delay)
	}
	return w.Flush()
}
