// Package config resolves the two optional startup knobs the REPL
// accepts: an RNG seed and a generator retry bound (spec.md §9's
// "determinism knobs" note, expanded in SPEC_FULL.md §4.12).
package config

import (
	"flag"
	"os"
	"strconv"
	"time"
)

// Config is the resolved, ready-to-use startup configuration.
type Config struct {
	Seed            int64
	GenerateRetries int
}

// Parse reads -seed and -generate-retries from args, falling back to the
// SUDOKU_SEED environment variable and then to a time-derived seed when
// -seed is absent or zero.
func Parse(args []string) (Config, error) {
	fs := flag.NewFlagSet("sudoku", flag.ContinueOnError)
	seed := fs.Int64("seed", 0, "fix the RNG seed for deterministic runs")
	retries := fs.Int("generate-retries", 1000, "override the generator's retry bound")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	s := *seed
	if s == 0 {
		if env := os.Getenv("SUDOKU_SEED"); env != "" {
			if v, err := strconv.ParseInt(env, 10, 64); err == nil {
				s = v
			}
		}
	}
	if s == 0 {
		s = time.Now().UnixNano()
	}

	return Config{Seed: s, GenerateRetries: *retries}, nil
}
