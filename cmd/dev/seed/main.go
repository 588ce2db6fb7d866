package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"

	"cabinadmin/internal/activity"
	"cabinadmin/internal/seed"
	"cabinadmin/pkg/config"
	"cabinadmin/pkg/db"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the process exit code so deferred cleanup happens before exit.
func run(args []string) int {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	var (
		bookingsOnly = fs.Bool("bookings-only", false, "replace bookings only, keeping stored guests and cabins")
		dryRun       = fs.Bool("dry-run", false, "run against an in-memory store instead of the database")
		today        = fs.String("today", "", "pretend today is YYYY-MM-DD (defaults to the current date)")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg := config.Load()
	if cfg.IsProd() && !*dryRun {
		fmt.Fprintln(os.Stderr, "refusing to seed with APP_ENV=prod")
		return 2
	}

	loc, err := cfg.SeedLocation()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid SEED_TIMEZONE: %v\n", err)
		return 2
	}

	var at time.Time
	if *today != "" {
		day, err := time.ParseInLocation(time.DateOnly, *today, loc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid -today %q: %v\n", *today, err)
			return 2
		}
		// Midday keeps the calendar day stable across DST shifts.
		at = day.Add(12 * time.Hour)
	}

	ctx := context.Background()

	var loader *seed.Loader
	if *dryRun {
		mem := seed.NewMemoryStore()
		loader = seed.NewLoader(mem)
		if *bookingsOnly {
			// An empty store has nothing to refresh against.
			if _, err := seed.NewLoader(mem).ResetAll(ctx); err != nil {
				fmt.Fprintf(os.Stderr, "dry-run prepare failed: %v\n", err)
				return 1
			}
		}
	} else {
		pool, err := db.Open(ctx, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "db open failed: %v\n", err)
			return 1
		}
		defer pool.Close()
		loader = seed.NewLoader(seed.NewRepository(pool))
		loader.Recorder = activity.NewRepository(pool)
	}
	loader.Location = loc
	if !at.IsZero() {
		loader.Now = func() time.Time { return at }
	}

	runSeed := loader.ResetAll
	if *bookingsOnly {
		runSeed = loader.RefreshBookings
	}

	res, err := runSeed(ctx)
	if err != nil {
		color.Red("%s", res.Message)
		if res.FailedStep != "" {
			fmt.Fprintf(os.Stderr, "failed step: %s\n", res.FailedStep)
		}
		return 1
	}

	color.Green("%s", res.Message)
	fmt.Printf("run %s: guests=%d cabins=%d bookings=%d\n", res.RunID, res.Guests, res.Cabins, res.Bookings)
	return 0
}
