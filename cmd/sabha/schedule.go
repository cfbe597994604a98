package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/sonnes/sabha/core"
	"github.com/sonnes/sabha/ical"
)

func scheduleCmd() *cli.Command {
	return &cli.Command{
		Name:  "schedule",
		Usage: "Manage your personal session schedule",
		Commands: []*cli.Command{
			scheduleAddCmd(),
			scheduleRemoveCmd(),
			scheduleToggleCmd(),
			scheduleListCmd(),
			scheduleClearCmd(),
			scheduleExportCmd(),
		},
	}
}

func scheduleAddCmd() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Bookmark one or more sessions by id",
		ArgsUsage: "<session-id> [<session-id> ...]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) == 0 {
				return fmt.Errorf("at least one session id is required")
			}

			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			store, err := a.store()
			if err != nil {
				return err
			}

			for _, id := range args {
				if err := store.Add(id); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func scheduleRemoveCmd() *cli.Command {
	return &cli.Command{
		Name:      "remove",
		Usage:     "Remove a session from the schedule",
		ArgsUsage: "<session-id>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			id := cmd.Args().First()
			if id == "" {
				return fmt.Errorf("a session id is required")
			}

			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			store, err := a.store()
			if err != nil {
				return err
			}
			return store.Remove(id)
		},
	}
}

func scheduleToggleCmd() *cli.Command {
	return &cli.Command{
		Name:      "toggle",
		Usage:     "Bookmark a session, or remove it if already bookmarked",
		ArgsUsage: "<session-id>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			id := cmd.Args().First()
			if id == "" {
				return fmt.Errorf("a session id is required")
			}

			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			store, err := a.store()
			if err != nil {
				return err
			}

			added, err := store.Toggle(id)
			if err != nil {
				return err
			}
			if added {
				fmt.Printf("added %s\n", id)
			} else {
				fmt.Printf("removed %s\n", id)
			}
			return nil
		},
	}
}

func scheduleListCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "Show the bookmarked sessions",
		Flags: []cli.Flag{
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

			bookmarked, total, err := bookmarkedSessions(a)
			if err != nil {
				return err
			}

			rnd, err := a.renderer(cmd.String("o"))
			if err != nil {
				return err
			}
			return rnd.Render(os.Stdout, core.NewListing(a.cfg.Event, bookmarked, total))
		},
	}
}

func scheduleClearCmd() *cli.Command {
	return &cli.Command{
		Name:  "clear",
		Usage: "Remove every bookmark",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			store, err := a.store()
			if err != nil {
				return err
			}
			return store.ClearSchedule()
		},
	}
}

func scheduleExportCmd() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export the bookmarked sessions as an iCalendar file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "out",
				Usage: "Output path",
				Value: ical.Filename,
			},
			&cli.BoolFlag{
				Name:  "all",
				Usage: "Export every session instead of the bookmarked subset",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			var selected []core.Session
			if cmd.Bool("all") {
				selected, err = a.loadSessions()
			} else {
				selected, _, err = bookmarkedSessions(a)
			}
			if err != nil {
				return err
			}
			if len(selected) == 0 {
				return fmt.Errorf("schedule is empty; nothing to export")
			}

			out := cmd.String("out")
			doc := ical.Generate(selected)
			if err := os.WriteFile(out, []byte(doc), 0o644); err != nil {
				return fmt.Errorf("write calendar: %w", err)
			}

			log.Info("exported schedule", "file", out, "sessions", len(selected))
			fmt.Printf("wrote %d sessions to %s\n", len(selected), out)
			return nil
		},
	}
}

// bookmarkedSessions loads the dataset and returns the bookmarked subset in
// dataset order, plus the dataset size.
func bookmarkedSessions(a *app) ([]core.Session, int, error) {
	sessions, err := a.loadSessions()
	if err != nil {
		return nil, 0, err
	}

	store, err := a.store()
	if err != nil {
		return nil, 0, err
	}
	ids, err := store.Schedule()
	if err != nil {
		return nil, 0, err
	}

	marked := make(map[string]bool, len(ids))
	for _, id := range ids {
		marked[id] = true
	}

	var out []core.Session
	for _, s := range sessions {
		if marked[s.ID] {
			out = append(out, s)
		}
	}
	return out, len(sessions), nil
}
