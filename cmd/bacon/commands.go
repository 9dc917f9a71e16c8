package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/bacon/builder"
	"github.com/katalvlaran/bacon/core"
)

const defaultCenter = "Kevin Bacon"

func pathCommand() *cli.Command {
	return &cli.Command{
		Name:      "path",
		Usage:     "Print the shortest co-appearance chain between two actors",
		ArgsUsage: "<from> <to>",
		Action: action(func(ctx context.Context, cmd *cli.Command, e *env) error {
			if cmd.Args().Len() != 2 {
				return cli.Exit("path needs exactly two actor names", 2)
			}
			g, _, err := e.loadGraph(ctx, nil)
			if err != nil {
				return err
			}
			f, err := e.finder(g)
			if err != nil {
				return err
			}

			qctx, cancel := e.queryContext(ctx)
			defer cancel()
			res, err := f.Find(qctx, cmd.Args().Get(0), cmd.Args().Get(1))
			if err != nil {
				return err
			}

			return e.printer.Path(res)
		}),
	}
}

func numberCommand() *cli.Command {
	return &cli.Command{
		Name:      "number",
		Usage:     "Print the Bacon number of each actor relative to a center",
		ArgsUsage: "<actor>...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "center",
				Value: defaultCenter,
				Usage: "actor every distance is measured from",
			},
		},
		Action: action(func(ctx context.Context, cmd *cli.Command, e *env) error {
			names := cmd.Args().Slice()
			if len(names) == 0 {
				return cli.Exit("number needs at least one actor name", 2)
			}
			g, _, err := e.loadGraph(ctx, nil)
			if err != nil {
				return err
			}
			f, err := e.finder(g)
			if err != nil {
				return err
			}

			qctx, cancel := e.queryContext(ctx)
			defer cancel()
			center := cmd.String("center")
			out, err := f.Distances(qctx, center, names)
			if err != nil {
				return err
			}

			return e.printer.Distances(center, out)
		}),
	}
}

func statsCommand() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Print graph size and ingest counters",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "casts",
				Usage: "also list the cast of these movies",
			},
		},
		Action: action(func(ctx context.Context, cmd *cli.Command, e *env) error {
			movies := cmd.StringSlice("casts")
			g, st, err := e.loadGraph(ctx, func(b *builder.Builder) error {
				for _, m := range movies {
					cast, ok := b.Cast(m)
					if !ok {
						return fmt.Errorf("movie %q not found", m)
					}
					if err := e.printer.Cast(m, cast); err != nil {
						return err
					}
				}
				return nil
			})
			if err != nil {
				return err
			}

			return e.printer.Stats(g.Stats(), st)
		}),
	}
}

func neighborsCommand() *cli.Command {
	return &cli.Command{
		Name:      "neighbors",
		Usage:     "List an actor's co-stars and the movie linking each",
		ArgsUsage: "<actor>",
		Action: action(func(ctx context.Context, cmd *cli.Command, e *env) error {
			if cmd.Args().Len() != 1 {
				return cli.Exit("neighbors needs exactly one actor name", 2)
			}
			g, _, err := e.loadGraph(ctx, nil)
			if err != nil {
				return err
			}

			name := cmd.Args().First()
			nb, err := g.Neighbors(name)
			if errors.Is(err, core.ErrActorNotFound) {
				return fmt.Errorf("actor %q not found", name)
			}
			if err != nil {
				return err
			}
			a, _ := g.Actor(name)

			return e.printer.Neighbors(a.Name, nb)
		}),
	}
}
