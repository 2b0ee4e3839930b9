// flightsctl runs flight and airport searches from the command line using
// the same configuration, validation and engine wiring as the API server.
//
// Usage:
//
//	flightsctl search --from TPE --to MYJ --date 2026-02-06 [options]
//	flightsctl airports taipei
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
)

var version = "dev"

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "flightsctl",
		Usage:     "Search flights and airports through the flight engine",
		Version:   version,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "env-file",
				Value:   ".env",
				Usage:   "Optional dotenv file with service configuration",
				EnvVars: []string{"FLIGHTSCTL_ENV_FILE"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "Log level written to stderr (debug, info, warn, error)",
				EnvVars: []string{"FLIGHTSCTL_LOG_LEVEL"},
			},
		},
		Commands: []*cli.Command{
			searchCommand(),
			airportsCommand(),
		},
	}
}
