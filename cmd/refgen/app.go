package main

import (
	"io"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/dmitrymomot/refcode/modules/api"
	"github.com/dmitrymomot/refcode/pkg/config"
	"github.com/dmitrymomot/refcode/pkg/logger"
	"github.com/dmitrymomot/refcode/pkg/reference"
)

// app carries state shared by commands once Before has run.
type app struct {
	cfg config.Config
	log *slog.Logger
	gen *reference.Generator

	// onListen, when set, receives the bound address once serve is listening.
	onListen func(addr string)
}

func newApp(out, errOut io.Writer) *cli.App {
	return (&app{}).cli(out, errOut)
}

func (a *app) cli(out, errOut io.Writer) *cli.App {
	return &cli.App{
		Name:      "refgen",
		Usage:     "Generate human-readable reference codes",
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "env-file",
				Usage: "load environment variables from `FILE` (repeatable)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "override LOG_LEVEL (debug, info, warn, error)",
			},
		},
		Before: a.setup,
		Commands: []*cli.Command{
			a.kindCommand(reference.Numeric, "Generate references from digits 0-9", "num"),
			a.kindCommand(reference.Alphabetic, "Generate references from letters A-Z", "alpha"),
			a.kindCommand(reference.Alphanumeric, "Generate references from 0-9A-Z", "alnum"),
			a.kindCommand(reference.Secure, "Generate 0-9A-Z references from crypto/rand"),
			a.guidCommand(),
			a.validateCommand(),
			a.batchCommand(),
			a.serveCommand(),
		},
		// Without a subcommand, print one reference of the configured default kind.
		Action: func(c *cli.Context) error {
			return a.print(c, a.cfg.Reference.DefaultKind, a.cfg.Reference.DefaultLength, a.cfg.Reference.DefaultPrefix, 1)
		},
	}
}

func (a *app) setup(c *cli.Context) error {
	cfg, err := config.LoadConfig(c.StringSlice("env-file")...)
	if err != nil {
		return err
	}

	levelName := cfg.LogLevel
	if c.IsSet("log-level") {
		levelName = c.String("log-level")
	}
	level, err := logger.ParseLevel(levelName)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = logger.New(
		logger.WithEnvironment(cfg.AppEnv, cfg.AppName),
		logger.WithLevel(level),
		logger.WithOutput(c.App.ErrWriter),
		logger.WithContextExtractors(api.RequestIDExtractor),
	)
	logger.SetAsDefault(a.log)
	a.gen = reference.New(cfg.Reference.GeneratorOptions()...)
	return nil
}
