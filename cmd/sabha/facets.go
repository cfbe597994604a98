package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/sonnes/sabha/core"
)

func facetsCmd() *cli.Command {
	return &cli.Command{
		Name:  "facets",
		Usage: "Print the distinct filter values found in the dataset",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "o",
				Usage: "Output format: terminal, json",
				Value: "terminal",
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
			facets := core.CollectFacets(sessions)

			if cmd.String("o") == "json" {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(facets)
			}

			sections := []struct {
				name   string
				values []string
			}{
				{"Topics", facets.Topics},
				{"Dates", facets.Dates},
				{"Locations", facets.Locations},
				{"Sectors", facets.Sectors},
				{"Thematics", facets.Thematics},
				{"Formats", facets.Formats},
				{"Knowledge Partners", facets.Partners},
				{"Speakers", facets.Speakers},
			}
			for _, s := range sections {
				if len(s.values) == 0 {
					continue
				}
				fmt.Printf("%s (%d)\n", s.name, len(s.values))
				fmt.Printf("  %s\n\n", strings.Join(s.values, "\n  "))
			}
			return nil
		},
	}
}
