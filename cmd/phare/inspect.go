package main

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/urfave/cli/v3"

	"github.com/farcloser/phare/internal/ingest"
)

var (
	errInvalidArgCount = errors.New("expected at least one argument: report file or folder")
	errNoJSONFiles     = errors.New("no .json files found")
)

func inspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "Show the values phare extracts from Lighthouse reports",
		ArgsUsage: "<file | folder>...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: console, json, markdown",
				Value:   "console",
				Sources: cli.EnvVars("PHARE_FORMAT"),
			},
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"j"},
				Usage:   "Number of concurrent file reads",
				Value:   runtime.NumCPU(),
				Sources: cli.EnvVars("PHARE_WORKERS"),
			},
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"D"},
				Usage:   "Output raw extracted numbers instead of formatted values",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() == 0 {
				return errInvalidArgCount
			}

			files, err := ingest.Collect(cmd.Args().Slice())
			if err != nil {
				return err
			}

			if len(files) == 0 {
				return fmt.Errorf("%v: %w", cmd.Args().Slice(), errNoJSONFiles)
			}

			reports, err := ingest.ParseFiles(ctx, files, max(cmd.Int("workers"), 1))
			if err != nil {
				return err
			}

			return outputReports(reports, cmd.String("format"), cmd.Bool("debug"))
		},
	}
}
