// rbc_validator: rank-based combinatorial search for a corrupted seed
// Copyright (C) 2026  Guillermo Perry
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
package main

import (
	"fmt"
	"os"
	"time"

	"rbcvalidator/internal/cliconfig"
	"rbcvalidator/internal/rbcerr"
	"rbcvalidator/pkg/search"
	"rbcvalidator/pkg/validator"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	cfg, err := cliconfig.Parse(argv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		return rbcerr.ExitCode(err)
	}

	algo, ok := validator.FindAlgo(cfg.Mode)
	if !ok {
		fmt.Fprintf(os.Stderr, "ERROR: unknown mode %q\n", cfg.Mode)
		return 2
	}

	maxDist := cfg.MismatchesK
	if maxDist < 0 {
		maxDist = cfg.Subkey
	}
	minDist := 0
	if cfg.Fixed {
		minDist = maxDist
	}

	if cfg.Verbose {
		fmt.Fprintf(os.Stderr, "INFO: mode=%s threads=%d subkey=%d mismatches=%d fixed=%v host=%s\n",
			cfg.Mode, cfg.Threads, cfg.Subkey, cfg.MismatchesK, cfg.Fixed, cfg.HostSeed.Hex())
	}

	driver, err := search.NewDriver(search.Config{
		Host:    cfg.HostSeed,
		N:       cfg.Subkey,
		MinDist: minDist,
		MaxDist: maxDist,
		Workers: cfg.Threads,
		All:     cfg.All,
		ValidatorConfig: validator.Config{
			Algo:       algo,
			Target:     cfg.Target,
			UUID:       cfg.UUID,
			IV:         cfg.IV,
			Salt:       cfg.Salt,
			DigestSize: cfg.SubkeySize,
		},
		OnLevelStart: func(m int) {
			if cfg.Verbose {
				fmt.Fprintf(os.Stderr, "INFO: Checking a hamming distance of %d...\n", m)
			}
		},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		return rbcerr.ExitCode(err)
	}

	start := time.Now()
	outcome := driver.Run()
	elapsed := time.Since(start)

	if outcome.Err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", outcome.Err)
		return rbcerr.ExitCode(outcome.Err)
	}

	if cfg.Verbose {
		fmt.Fprintf(os.Stderr, "INFO: Completed in %s\n", elapsed)
	}
	if cfg.Count {
		rate := float64(outcome.ValidatedKeys) / elapsed.Seconds()
		fmt.Fprintf(os.Stderr, "INFO: Tried %d keys (%.2f keys/sec)\n", outcome.ValidatedKeys, rate)
	}

	if !outcome.Found {
		return 1
	}
	fmt.Println(outcome.Candidate.Hex())
	return 0
}
