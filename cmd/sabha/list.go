package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/sonnes/sabha/core"
	"github.com/sonnes/sabha/filter"
)

func listCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List sessions matching the given filters",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "search",
				Usage: "Free-text search over title, description, speakers, and partners",
			},
			&cli.StringSliceFlag{
				Name:  "topic",
				Usage: "Filter by inferred topic. Repeatable",
			},
			&cli.StringSliceFlag{
				Name:  "date",
				Usage: "Filter by exact date string, e.g. '16 Feb 2026'. Repeatable",
			},
			&cli.StringSliceFlag{
				Name:  "time",
				Usage: "Time-of-day bucket (Morning, Afternoon, Evening). Repeatable",
			},
			&cli.StringSliceFlag{
				Name:  "slot",
				Usage: "Time-slot chip (Morning, Afternoon, Evening). Repeatable",
			},
			&cli.StringSliceFlag{
				Name:  "location",
				Usage: "Filter by exact venue. Repeatable",
			},
			&cli.StringSliceFlag{
				Name:  "partner",
				Usage: "Knowledge-partner chip (substring match). Repeatable",
			},
			&cli.StringFlag{
				Name:  "partner-query",
				Usage: "Live knowledge-partner text query",
			},
			&cli.StringSliceFlag{
				Name:  "speaker",
				Usage: "Speaker chip (substring match). Repeatable",
			},
			&cli.StringFlag{
				Name:  "speaker-query",
				Usage: "Live speaker text query",
			},
			&cli.StringSliceFlag{
				Name:  "sector",
				Usage: "Sector tag. Repeatable",
			},
			&cli.StringSliceFlag{
				Name:  "thematic",
				Usage: "Thematic tag. Repeatable",
			},
			&cli.StringSliceFlag{
				Name:  "format",
				Usage: "Format tag (Keynote, Workshop, ...). Repeatable",
			},
			&cli.BoolFlag{
				Name:  "available",
				Usage: "Only sessions overlapping the stored availability ranges",
			},
			&cli.StringFlag{
				Name:  "o",
				Usage: "Output format: terminal, json, html",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			sessions, err := a.loadSessions()
			if err != nil {
				return err
			}

			params := filter.Params{
				Filters: core.FilterState{
					Topics:            cmd.StringSlice("topic"),
					Dates:             cmd.StringSlice("date"),
					Times:             cmd.StringSlice("time"),
					Locations:         cmd.StringSlice("location"),
					KnowledgePartners: cmd.StringSlice("partner"),
					Speakers:          cmd.StringSlice("speaker"),
					TimeSlots:         cmd.StringSlice("slot"),
					Sectors:           cmd.StringSlice("sector"),
					Thematics:         cmd.StringSlice("thematic"),
					Formats:           cmd.StringSlice("format"),
				},
				Search:       cmd.String("search"),
				SpeakerQuery: cmd.String("speaker-query"),
				PartnerQuery: cmd.String("partner-query"),
			}

			if cmd.Bool("available") {
				store, err := a.store()
				if err != nil {
					return err
				}
				avail, err := store.Availability()
				if err != nil {
					return err
				}
				params.Availability = avail.Ranges
			}

			filtered := filter.Apply(sessions, params)

			rnd, err := a.renderer(cmd.String("o"))
			if err != nil {
				return err
			}
			return rnd.Render(os.Stdout, core.NewListing(a.cfg.Event, filtered, len(sessions)))
		},
	}
}
