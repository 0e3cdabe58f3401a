package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/itarato/gomqlet/internal/commands"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	short := commit
	if len(commit) > 7 {
		short = commit[:7]
	}

	return fmt.Sprintf("%s (%s) %s", version, short, date)
}

func main() {
	ctrl := &commands.Controller{
		Flags: &commands.Flags{},
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	app := &cli.Command{
		Name:    "gomqlet",
		Usage:   `Schema-aware terminal editor for GraphQL operations, with magic-value substitution for ad-hoc request data.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error, fatal, panic)",
				Sources: cli.EnvVars("GOMQLET_LOG_LEVEL"),
				Value:   "info",
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			level, err := zerolog.ParseLevel(c.String("log-level"))
			if err != nil {
				return ctx, fmt.Errorf("failed to parse log level: %w", err)
			}

			ctrl.Flags.LogLevel = c.String("log-level")
			log.Logger = log.Level(level)

			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:  "edit",
				Usage: "Launch the interactive schema-aware operation editor",
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Edit(ctx)
				},
			},
			{
				Name:      "check",
				Usage:     "Parse an operation file and report syntax errors",
				ArgsUsage: "<file>",
				Action: func(ctx context.Context, c *cli.Command) error {
					if c.Args().Len() != 1 {
						return fmt.Errorf("check requires exactly one file argument")
					}
					return ctrl.Check(ctx, c.Args().First())
				},
			},
			{
				Name:  "introspect",
				Usage: "Fetch the schema from the configured endpoint and cache it to disk",
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Introspect(ctx)
				},
			},
		},
	}

	ctx := context.Background()

	if err := app.Run(ctx, os.Args); err != nil {
		log.Fatal().Err(err).Msg("gomqlet failed")
	}
}
