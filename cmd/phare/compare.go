package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/urfave/cli/v3"

	"github.com/farcloser/phare"
	"github.com/farcloser/phare/internal/config"
)

const defaultChartWidth = 40

var (
	errUnexpectedArgs = errors.New("compare takes no positional arguments, use the group flags")
	errNoReports      = errors.New(
		"no reports given: use --before-desktop, --after-desktop, --before-mobile or --after-mobile",
	)
)

func compareCommand() *cli.Command {
	return &cli.Command{
		Name:  "compare",
		Usage: "Average before and after Lighthouse reports per device and show the deltas",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "before-desktop",
				Aliases: []string{"b"},
				Usage:   "Desktop report file or folder captured before the change (repeatable)",
			},
			&cli.StringSliceFlag{
				Name:    "after-desktop",
				Aliases: []string{"a"},
				Usage:   "Desktop report file or folder captured after the change (repeatable)",
			},
			&cli.StringSliceFlag{
				Name:    "before-mobile",
				Aliases: []string{"B"},
				Usage:   "Mobile report file or folder captured before the change (repeatable)",
			},
			&cli.StringSliceFlag{
				Name:    "after-mobile",
				Aliases: []string{"A"},
				Usage:   "Mobile report file or folder captured after the change (repeatable)",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML manifest listing the report groups (flags take precedence)",
				Sources: cli.EnvVars("PHARE_CONFIG"),
			},
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
				Usage:   "Number of concurrent file reads per group",
				Value:   runtime.NumCPU(),
				Sources: cli.EnvVars("PHARE_WORKERS"),
			},
			&cli.IntFlag{
				Name:  "chart-width",
				Usage: "Width of the per-run performance bars",
				Value: defaultChartWidth,
			},
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"D"},
				Usage:   "Output the raw comparison data instead of the summary",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 0 {
				return fmt.Errorf("%w: got %d", errUnexpectedArgs, cmd.NArg())
			}

			settings, err := resolveSettings(cmd)
			if err != nil {
				return err
			}

			return runCompare(ctx, settings)
		},
	}
}

// compareSettings is the merged view of flags, environment and manifest.
type compareSettings struct {
	inputs     phare.Inputs
	format     string
	chartWidth int
	debug      bool
}

func resolveSettings(cmd *cli.Command) (*compareSettings, error) {
	manifest := &config.Manifest{}

	if path := cmd.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("loading manifest: %w", err)
		}

		manifest = loaded
	}

	settings := &compareSettings{
		inputs: phare.Inputs{
			BeforeDesktop: pick(cmd, "before-desktop", manifest.Desktop.Before),
			AfterDesktop:  pick(cmd, "after-desktop", manifest.Desktop.After),
			BeforeMobile:  pick(cmd, "before-mobile", manifest.Mobile.Before),
			AfterMobile:   pick(cmd, "after-mobile", manifest.Mobile.After),
			Workers:       cmd.Int("workers"),
		},
		format:     cmd.String("format"),
		chartWidth: cmd.Int("chart-width"),
		debug:      cmd.Bool("debug"),
	}

	if !cmd.IsSet("workers") && manifest.Workers > 0 {
		settings.inputs.Workers = manifest.Workers
	}

	if !cmd.IsSet("format") && manifest.Format != "" {
		settings.format = manifest.Format
	}

	if !cmd.IsSet("chart-width") && manifest.ChartWidth > 0 {
		settings.chartWidth = manifest.ChartWidth
	}

	settings.inputs.Workers = max(settings.inputs.Workers, 1)
	settings.chartWidth = max(settings.chartWidth, 1)

	inputs := settings.inputs
	if len(inputs.BeforeDesktop)+len(inputs.AfterDesktop)+len(inputs.BeforeMobile)+len(inputs.AfterMobile) == 0 {
		return nil, errNoReports
	}

	return settings, nil
}

func pick(cmd *cli.Command, flag string, fallback []string) []string {
	if cmd.IsSet(flag) {
		return cmd.StringSlice(flag)
	}

	return fallback
}

func runCompare(ctx context.Context, settings *compareSettings) error {
	comparison, err := phare.Compare(ctx, settings.inputs)
	if err != nil {
		return err
	}

	counts := comparison.Counts
	fmt.Fprintf(os.Stderr, "Compared desktop %d before / %d after, mobile %d before / %d after\n",
		counts.BeforeDesktop, counts.AfterDesktop, counts.BeforeMobile, counts.AfterMobile)

	for _, device := range []*phare.DeviceComparison{comparison.Desktop, comparison.Mobile} {
		if device == nil {
			continue
		}

		for _, path := range device.Mismatched {
			slog.Warn("report form factor does not match its group", "file", path, "group", device.Device.String())
		}
	}

	return outputComparison(comparison, settings.format, settings.debug, settings.chartWidth)
}
