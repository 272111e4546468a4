package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/urfave/cli/v2"

	"github.com/dmitrymomot/refcode/modules/api"
	"github.com/dmitrymomot/refcode/pkg/httpserver"
	"github.com/dmitrymomot/refcode/pkg/logger"
	"github.com/dmitrymomot/refcode/pkg/manifest"
	"github.com/dmitrymomot/refcode/pkg/reference"
)

var errInvalidCount = errors.New("count must be greater than 0")

func lengthFlag() cli.Flag {
	return &cli.IntFlag{
		Name:    "length",
		Aliases: []string{"l"},
		Usage:   "suffix length (default REFGEN_DEFAULT_LENGTH)",
	}
}

func prefixFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "prefix",
		Aliases: []string{"p"},
		Usage:   "literal prefix (default REFGEN_DEFAULT_PREFIX)",
	}
}

func countFlag() cli.Flag {
	return &cli.IntFlag{
		Name:    "count",
		Aliases: []string{"n"},
		Usage:   "number of references to print",
		Value:   1,
	}
}

func (a *app) kindCommand(kind reference.Kind, usage string, aliases ...string) *cli.Command {
	return &cli.Command{
		Name:    kind.String(),
		Aliases: aliases,
		Usage:   usage,
		Flags:   []cli.Flag{lengthFlag(), prefixFlag(), countFlag()},
		Action: func(c *cli.Context) error {
			length, prefix := a.suffixDefaults(c)
			return a.print(c, kind, length, prefix, c.Int("count"))
		},
	}
}

// suffixDefaults resolves --length and --prefix, falling back to the configured defaults.
func (a *app) suffixDefaults(c *cli.Context) (int, string) {
	length := a.cfg.Reference.DefaultLength
	if c.IsSet("length") {
		length = c.Int("length")
	}
	prefix := a.cfg.Reference.DefaultPrefix
	if c.IsSet("prefix") {
		prefix = c.String("prefix")
	}
	return length, prefix
}

func (a *app) guidCommand() *cli.Command {
	return &cli.Command{
		Name:    "guid",
		Aliases: []string{"uuid"},
		Usage:   "Generate random version 4 UUIDs",
		Flags:   []cli.Flag{countFlag()},
		Action: func(c *cli.Context) error {
			return a.print(c, reference.GUID, 0, "", c.Int("count"))
		},
	}
}

func (a *app) print(c *cli.Context, kind reference.Kind, length int, prefix string, count int) error {
	if count <= 0 {
		return errInvalidCount
	}
	for range count {
		ref, err := a.gen.Generate(kind, length, prefix)
		if err != nil {
			return fmt.Errorf("%s: %w", kind, err)
		}
		if _, err := fmt.Fprintln(c.App.Writer, ref); err != nil {
			return err
		}
	}
	a.log.DebugContext(c.Context, "references generated", logger.Kind(kind), logger.Length(length), logger.Count(count))
	return nil
}

func (a *app) validateCommand() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "Check a reference against a kind, length and prefix",
		ArgsUsage: "REFERENCE",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "kind", Aliases: []string{"k"}, Usage: "reference kind", Required: true},
			lengthFlag(),
			prefixFlag(),
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("expected exactly one REFERENCE argument, got %d", c.NArg())
			}
			kind, err := reference.ParseKind(c.String("kind"))
			if err != nil {
				return err
			}
			length, prefix := a.suffixDefaults(c)
			if err := reference.Validate(kind, c.Args().First(), length, prefix); err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.App.Writer, "valid")
			return err
		},
	}
}

func (a *app) batchCommand() *cli.Command {
	return &cli.Command{
		Name:  "batch",
		Usage: "Generate references described by a YAML manifest",
		Flags: []cli.Flag{
			&cli.PathFlag{Name: "file", Aliases: []string{"f"}, Usage: "manifest `FILE`", Required: true},
		},
		Action: func(c *cli.Context) error {
			m, err := manifest.Load(c.Context, c.Path("file"))
			if err != nil {
				return err
			}
			results, err := m.Generate(c.Context, a.gen)
			if err != nil {
				return err
			}
			a.log.DebugContext(c.Context, "manifest processed", logger.Count(len(results)))
			return manifest.Encode(c.App.Writer, results)
		},
	}
}

func (a *app) serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the reference API over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "addr", Usage: "listen address (default HTTP_ADDR)"},
		},
		Action: func(c *cli.Context) error {
			var srv *httpserver.Server
			opts := []httpserver.Option{httpserver.WithLogger(a.log)}
			if addr := c.String("addr"); addr != "" {
				opts = append(opts, httpserver.WithAddr(addr))
			}
			if a.onListen != nil {
				opts = append(opts, httpserver.WithStartHook(func(*slog.Logger) {
					a.onListen(srv.Addr())
				}))
			}
			srv = httpserver.NewFromConfig(a.cfg.HTTP, opts...)

			r := chi.NewRouter()
			r.Use(middleware.CleanPath)
			r.Mount("/", api.Router(api.RouterOptions{
				Generator:     a.gen,
				Logger:        a.log,
				DefaultLength: a.cfg.Reference.DefaultLength,
				MaxLength:     a.cfg.Reference.MaxLength,
				MaxCount:      a.cfg.Reference.MaxCount,
			}))

			return srv.Run(c.Context, r)
		},
	}
}
