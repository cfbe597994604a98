package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/sonnes/sabha/config"
)

func main() {
	root := &cli.Command{
		Name:  "sabha",
		Usage: "Browse, filter, and schedule conference sessions",
		Description: `
            _     _
  ___  __ _| |__ | |__   __ _
 / __|/ _' | '_ \| '_ \ / _' |
 \__ \ (_| | |_) | | | | (_| |
 |___/\__,_|_.__/|_| |_|\__,_|

 The session directory — find your sessions, build your day.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log",
				Usage: "Log level: debug, info, warn, error",
				Value: "error",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "Path to the config file",
				Value: config.DefaultPath(),
			},
			&cli.StringFlag{
				Name:  "dataset",
				Usage: "Session feed: file path or http(s) URL (overrides config)",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level, err := log.ParseLevel(cmd.String("log"))
			if err != nil {
				return ctx, err
			}
			log.SetLevel(level)
			return ctx, nil
		},
		Commands: []*cli.Command{
			listCmd(),
			facetsCmd(),
			scheduleCmd(),
			availabilityCmd(),
		},
	}

	if err := root.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
