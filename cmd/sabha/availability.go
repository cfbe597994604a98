package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/sonnes/sabha/clock"
	"github.com/sonnes/sabha/schedule"
)

func availabilityCmd() *cli.Command {
	return &cli.Command{
		Name:  "availability",
		Usage: "Declare when you are free to attend sessions",
		Commands: []*cli.Command{
			availabilityAddCmd(),
			availabilityRemoveCmd(),
			availabilityListCmd(),
			availabilityClearCmd(),
			availabilityRememberCmd(),
			availabilityForgetCmd(),
		},
	}
}

func availabilityAddCmd() *cli.Command {
	return &cli.Command{
		Name:  "add",
		Usage: "Add an availability window",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "from",
				Usage: "Start time, 12-hour ('9:00 AM') or 24-hour ('09:00')",
			},
			&cli.StringFlag{
				Name:  "to",
				Usage: "End time, 12-hour or 24-hour",
			},
			&cli.StringFlag{
				Name:  "slot",
				Usage: "Preset window: Morning, Afternoon, or Evening",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			from := cmd.String("from")
			to := cmd.String("to")
			slot := cmd.String("slot")

			switch {
			case slot != "" && (from != "" || to != ""):
				return fmt.Errorf("--slot and --from/--to are mutually exclusive")
			case slot != "":
				from, to = clock.PresetRange(slot)
			case from == "" || to == "":
				return fmt.Errorf("both --from and --to are required (or use --slot)")
			default:
				// 12-hour inputs canonicalize; 24-hour inputs pass through.
				from = clock.Convert12To24(from)
				to = clock.Convert12To24(to)
			}

			return updateAvailability(cmd, func(avail *schedule.Availability) error {
				r, err := avail.Add(from, to)
				if err != nil {
					return err
				}
				fmt.Printf("added %s (%s - %s)\n", r.ID, clock.Convert24To12(r.StartTime), clock.Convert24To12(r.EndTime))
				return nil
			})
		},
	}
}

func availabilityRemoveCmd() *cli.Command {
	return &cli.Command{
		Name:      "remove",
		Usage:     "Remove an availability window by id",
		ArgsUsage: "<range-id>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			id := cmd.Args().First()
			if id == "" {
				return fmt.Errorf("a range id is required")
			}
			return updateAvailability(cmd, func(avail *schedule.Availability) error {
				avail.Remove(id)
				return nil
			})
		},
	}
}

func availabilityListCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "Show the declared availability windows",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			store, err := a.store()
			if err != nil {
				return err
			}
			avail, err := store.Availability()
			if err != nil {
				return err
			}

			if len(avail.Ranges) == 0 {
				fmt.Println("no availability declared")
				return nil
			}
			for _, r := range avail.Ranges {
				fmt.Printf("%s  %s - %s\n", r.ID, clock.Convert24To12(r.StartTime), clock.Convert24To12(r.EndTime))
			}
			if !avail.Remember {
				fmt.Println("(not remembered across runs)")
			}
			return nil
		},
	}
}

func availabilityClearCmd() *cli.Command {
	return &cli.Command{
		Name:  "clear",
		Usage: "Remove every availability window",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return updateAvailability(cmd, func(avail *schedule.Availability) error {
				avail.Clear()
				return nil
			})
		},
	}
}

func availabilityRememberCmd() *cli.Command {
	return &cli.Command{
		Name:  "remember",
		Usage: "Persist availability across runs",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return updateAvailability(cmd, func(avail *schedule.Availability) error {
				avail.Remember = true
				return nil
			})
		},
	}
}

func availabilityForgetCmd() *cli.Command {
	return &cli.Command{
		Name:  "forget",
		Usage: "Stop persisting availability and delete the stored record",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return updateAvailability(cmd, func(avail *schedule.Availability) error {
				avail.Remember = false
				return nil
			})
		},
	}
}

// updateAvailability loads the availability record, applies mutate, and
// saves the result. Saving with Remember off deletes the stored record.
func updateAvailability(cmd *cli.Command, mutate func(*schedule.Availability) error) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	store, err := a.store()
	if err != nil {
		return err
	}

	avail, err := store.Availability()
	if err != nil {
		return err
	}
	if err := mutate(&avail); err != nil {
		return err
	}
	return store.SaveAvailability(avail)
}
