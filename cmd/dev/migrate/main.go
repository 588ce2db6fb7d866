package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"cabinadmin/pkg/config"
	"cabinadmin/pkg/db"
)

func main() {
	down := flag.Int("down", 0, "roll back this many migrations instead of applying pending ones")
	flag.Parse()

	cfg := config.Load()
	if cfg.MigrationsPath == "" {
		cfg.MigrationsPath = "file://migrations"
	}

	if *down > 0 {
		if cfg.IsProd() {
			fmt.Fprintln(os.Stderr, "refusing to roll back with APP_ENV=prod")
			os.Exit(2)
		}
		if err := db.MigrateDown(cfg.MigrationsPath, cfg, *down); err != nil {
			fmt.Fprintf(os.Stderr, "migrate down failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("rolled back %d migration(s)\n", *down)
		return
	}

	// Uses DIRECT_URL when set; poolers reject some DDL.
	if err := db.MigrateConfig(cfg.MigrationsPath, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "migrate failed: %v\n", err)
		os.Exit(1)
	}

	// Check the runtime connection (DATABASE_URL) opens too. DSNs are not printed.
	pool, err := db.Open(context.Background(), cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "runtime db open failed: %v\n", err)
		os.Exit(1)
	}
	pool.Close()

	fmt.Println("migrations applied")
}
