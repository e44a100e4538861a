// Package cliconfig parses and validates rbc_validator's command-line
// arguments into a Config that main translates into a validator.Config
// and a search.Config, the way the teacher's
// cmd/cli wires flag.Bool/flag.String into a ServerState before
// starting work.
package cliconfig

import (
	"encoding/hex"
	"flag"
	"runtime"

	"github.com/google/uuid"
	"github.com/shirou/gopsutil/v3/cpu"

	"rbcvalidator/internal/rbcerr"
	"rbcvalidator/pkg/seed"
	"rbcvalidator/pkg/validator"
)

// Config is the fully parsed and validated set of inputs for one
// rbc_validator run, ready to translate into a validator.Config and a
// search.Config.
type Config struct {
	Mode        string
	Subkey      int // subseed length n, 1..256 (spec's --subkey / subkey_arg)
	MismatchesK int // -1 means "sweep to Subkey"
	Fixed       bool
	All         bool
	Count       bool
	Verbose     bool
	Random      bool
	Benchmark   bool
	Threads     int
	SubkeySize  int // XOF digest length in bytes (--subkey-size, default 32); only XOF modes use it

	HostSeed seed.Bits256
	Target   []byte
	UUID     [16]byte
	IV       []byte
	Salt     []byte
}

// Parse parses argv (excluding the program name) into a Config and
// validates it. Errors are always *rbcerr.Error of kind ArgumentError.
func Parse(argv []string) (Config, error) {
	fs := flag.NewFlagSet("rbc_validator", flag.ContinueOnError)

	mode := fs.String("mode", "none", "validation primitive: "+modeList())
	subkey := fs.Int("subkey", seed.Size*8, "how many of the first bits to corrupt/iterate over, 1..256")
	k := fs.Int("mismatches", -1, "maximum Hamming distance to search (-1: sweep up to --subkey)")
	fixed := fs.Bool("fixed", false, "search exactly k mismatches instead of 0..k")
	all := fs.Bool("all", false, "continue to later mismatch levels after a match (each level stops at its first match; the last match is printed)")
	count := fs.Bool("count", false, "print the number of candidates validated, not just the match")
	verbose := fs.Bool("verbose", false, "print progress banners to stderr")
	random := fs.Bool("random", false, "generate a random host seed and corrupt it by k bits")
	benchmark := fs.Bool("benchmark", false, "time a full search over a random corrupted seed")
	threads := fs.Int("threads", 0, "worker count (default: host logical CPU count)")
	subkeySize := fs.Int("subkey-size", 32, "XOF digest length in bytes (shake128/256, kang12 only)")

	if err := fs.Parse(argv); err != nil {
		return Config{}, rbcerr.Argumentf("parsing flags: %v", err)
	}

	cfg := Config{
		Mode:        *mode,
		Subkey:      *subkey,
		MismatchesK: *k,
		Fixed:       *fixed,
		All:         *all,
		Count:       *count,
		Verbose:     *verbose,
		Random:      *random,
		Benchmark:   *benchmark,
		Threads:     *threads,
		SubkeySize:  *subkeySize,
	}
	if cfg.Benchmark {
		cfg.All = true
		cfg.Random = true
		cfg.Count = true
	}

	algo, ok := validator.FindAlgo(cfg.Mode)
	if !ok {
		return Config{}, rbcerr.Argumentf("unknown mode %q", cfg.Mode)
	}

	if cfg.Subkey < 1 || cfg.Subkey > seed.Size*8 {
		return Config{}, rbcerr.Argumentf("--subkey %d must be in [1,%d]", cfg.Subkey, seed.Size*8)
	}

	// -1 means "sweep mismatches up to the subseed length"; only
	// random/benchmark/fixed modes need a concrete k to corrupt or pin
	// bits by, so they reject it explicitly instead of silently
	// defaulting.
	if cfg.MismatchesK < 0 {
		if cfg.Fixed {
			return Config{}, rbcerr.Argument("--fixed requires --mismatches >= 0")
		}
		if cfg.Random || cfg.Benchmark {
			return Config{}, rbcerr.Argument("--random/--benchmark require --mismatches >= 0")
		}
	} else if cfg.MismatchesK > cfg.Subkey {
		return Config{}, rbcerr.Argumentf("--mismatches %d exceeds subseed length %d", cfg.MismatchesK, cfg.Subkey)
	}

	if cfg.Threads <= 0 {
		cfg.Threads = defaultThreads()
	}

	positional := fs.Args()
	if cfg.Random {
		if err := fillRandom(&cfg, algo); err != nil {
			return Config{}, err
		}
	} else if err := parsePositional(&cfg, algo, positional); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// parsePositional fills HostSeed/Target/UUID/IV/Salt from the
// remaining command-line arguments, whose count and meaning depend on
// mode, mirroring original_source's per-mode argv layout.
func parsePositional(cfg *Config, algo validator.Algo, args []string) error {
	if len(args) < 2 {
		return rbcerr.Argumentf("mode %q requires a host seed and a target argument", algo.Abbr)
	}
	hostHex := args[0]
	targetArg := args[1]
	rest := args[2:]

	host, err := seed.ParseHex(hostHex)
	if err != nil {
		return rbcerr.Argumentf("invalid host seed: %v", err)
	}
	cfg.HostSeed = host

	switch algo.Mode {
	case validator.ModeCipher:
		target, err := decodeHexArg(targetArg)
		if err != nil {
			return err
		}
		cfg.Target = target
		if len(rest) > 0 {
			u, err := uuid.Parse(rest[0])
			if err != nil {
				return rbcerr.Argumentf("invalid UUID: %v", err)
			}
			cfg.UUID = u
		}
		if algo.Abbr == "chacha20" {
			if len(rest) < 2 {
				return rbcerr.Argument("chacha20 requires an IV argument")
			}
			iv, err := decodeHexArg(rest[1])
			if err != nil {
				return err
			}
			if len(iv) != 16 {
				return rbcerr.Argumentf("chacha20 IV must be 16 bytes, got %d", len(iv))
			}
			cfg.IV = iv
		}

	case validator.ModeEC:
		target, err := decodeHexArg(targetArg)
		if err != nil {
			return err
		}
		if len(target) != 33 && len(target) != 65 {
			return rbcerr.Argumentf("ecc target must be 33 or 65 bytes (SEC1), got %d", len(target))
		}
		cfg.Target = target

	case validator.ModeHash:
		target, err := decodeHexArg(targetArg)
		if err != nil {
			return err
		}
		if !algo.XOF {
			want := validator.FixedDigestSize(algo.Abbr)
			if len(target) != want {
				return rbcerr.Argumentf("%s target must be %d bytes, got %d", algo.Abbr, want, len(target))
			}
		}
		cfg.Target = target
		if len(rest) > 0 {
			salt, err := decodeHexArg(rest[0])
			if err != nil {
				return err
			}
			cfg.Salt = salt
		}

	default:
		return rbcerr.Argumentf("mode %q has no positional-argument layout", algo.Abbr)
	}

	return nil
}

func decodeHexArg(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, rbcerr.Argumentf("invalid hex argument %q: %v", s, err)
	}
	return b, nil
}

func modeList() string {
	s := ""
	for i, a := range validator.Algos {
		if i > 0 {
			s += ", "
		}
		s += a.Abbr
	}
	return s
}

// defaultThreads reports the host's logical CPU count via gopsutil,
// falling back to runtime.NumCPU when the host counters are
// unavailable (containers without /proc, some BSD jails).
func defaultThreads() int {
	n, err := cpu.Counts(true)
	if err != nil || n <= 0 {
		return runtime.NumCPU()
	}
	return n
}
