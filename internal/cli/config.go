// SPDX-License-Identifier: MIT
// Package: numbra/internal/cli
//
// config.go — environment defaults and flag overrides.

package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/katalvlaran/numbra/codec"
	"github.com/katalvlaran/numbra/constant"
	"github.com/katalvlaran/numbra/convert"
	"github.com/katalvlaran/numbra/generator"
)

// ErrUsage indicates an invalid command line.
var ErrUsage = errors.New("cli: usage")

// Config is the resolved command configuration. Fields with env tags take
// their defaults from the environment; every field can be set by a flag.
type Config struct {
	Generate bool
	Verify   bool
	File     string

	Count  int    `env:"NUMBRA_NUM_CASES" envDefault:"1"`
	Output string `env:"NUMBRA_OUTPUT" envDefault:"test_cases"`
	Type   string `env:"NUMBRA_TYPE" envDefault:"c"`

	Notation string `env:"NUMBRA_NOTATION" envDefault:"scientific"`

	MinPrecision int `env:"NUMBRA_MIN_PRECISION" envDefault:"1"`
	MaxPrecision int `env:"NUMBRA_MAX_PRECISION" envDefault:"324"`
	MinExponent  int `env:"NUMBRA_MIN_EXPONENT" envDefault:"-324"`
	MaxExponent  int `env:"NUMBRA_MAX_EXPONENT" envDefault:"308"`

	IncludeSpecial   bool
	IncludeEdge      bool
	IncludeSubnormal bool
	IncludePi        int
	Constant         string `env:"NUMBRA_CONSTANT" envDefault:"pi"`

	Radix int `env:"NUMBRA_RADIX"`
	Base  int `env:"NUMBRA_BASE" envDefault:"10"`

	Seed    int64 `env:"NUMBRA_SEED"`
	Workers int   `env:"NUMBRA_WORKERS"`

	PrecisionCeiling int `env:"NUMBRA_PRECISION_CEILING" envDefault:"65536"`
	ExponentCeiling  int `env:"NUMBRA_EXPONENT_CEILING" envDefault:"65536"`

	Verbose bool `env:"NUMBRA_VERBOSE"`
}

// ParseConfig loads environment defaults, then applies flags from args.
// Usage text goes to usage.
//
// Errors: flag.ErrHelp for -h; ErrUsage for bad flags or combinations;
// environment parse errors.
func ParseConfig(args []string, usage io.Writer) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("numbra", flag.ContinueOnError)
	fs.SetOutput(usage)
	bindFlags(fs, &cfg)
	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return Config{}, err
		}
		return Config{}, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("%w: unexpected argument %q", ErrUsage, fs.Arg(0))
	}
	if err := cfg.check(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func bindFlags(fs *flag.FlagSet, c *Config) {
	fs.BoolVar(&c.Generate, "gen", false, "generate test cases")
	fs.BoolVar(&c.Verify, "ver", false, "verify test cases")
	fs.StringVar(&c.File, "f", "", "input file of test cases (text, json, toml, yaml, csv)")
	fs.StringVar(&c.File, "file", "", "alias for -f")
	fs.IntVar(&c.Count, "n", c.Count, "number of random test cases to generate")
	fs.IntVar(&c.Count, "num_cases", c.Count, "alias for -n")
	fs.StringVar(&c.Output, "o", c.Output, "output file name (extension replaced by -t)")
	fs.StringVar(&c.Output, "output", c.Output, "alias for -o")
	fs.StringVar(&c.Type, "t", c.Type, "output type: json, csv, toml, yaml, c")
	fs.StringVar(&c.Type, "type", c.Type, "alias for -t")
	fs.StringVar(&c.Notation, "notation", c.Notation, "expected value notation: scientific, plain")

	fs.IntVar(&c.MinPrecision, "min_precision", c.MinPrecision, "minimum precision for random generation")
	fs.IntVar(&c.MaxPrecision, "max_precision", c.MaxPrecision, "maximum precision for random generation")
	fs.IntVar(&c.MinExponent, "min_exponent", c.MinExponent, "minimum exponent for random generation")
	fs.IntVar(&c.MaxExponent, "max_exponent", c.MaxExponent, "maximum exponent for random generation")

	fs.BoolVar(&c.IncludeSpecial, "include_special", false, "include special cases (inf, nan)")
	fs.BoolVar(&c.IncludeEdge, "include_edge", false, "include edge cases (min/max representable)")
	fs.BoolVar(&c.IncludeSubnormal, "include_subnormal", false, "include subnormal numbers")
	fs.IntVar(&c.IncludePi, "include_pi", 0, "include constant approximations up to this precision")
	fs.StringVar(&c.Constant, "constant", c.Constant, "constant for -include_pi: "+strings.Join(constant.Names(), ", "))

	fs.IntVar(&c.Radix, "radix", c.Radix, "radix for number representation")
	fs.IntVar(&c.Base, "base", c.Base, "base for number representation (2..36)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 = fixed default)")
	fs.IntVar(&c.Workers, "workers", c.Workers, "worker goroutines (0 = GOMAXPROCS)")
	fs.IntVar(&c.PrecisionCeiling, "precision_ceiling", c.PrecisionCeiling, "largest precision accepted")
	fs.IntVar(&c.ExponentCeiling, "exponent_ceiling", c.ExponentCeiling, "largest |exponent| accepted")

	fs.BoolVar(&c.Verbose, "v", c.Verbose, "verbose output")
	fs.BoolVar(&c.Verbose, "verbose", c.Verbose, "alias for -v")
}

// check rejects flag combinations; numeric ranges are left to generator.Config.
func (c Config) check() error {
	if !c.Generate && !c.Verify {
		return fmt.Errorf("%w: at least one of -gen or -ver must be specified", ErrUsage)
	}
	if c.Verify && !c.Generate && c.File == "" {
		return fmt.Errorf("%w: -ver without -gen needs -f", ErrUsage)
	}
	if c.Generate {
		f, err := codec.ParseFormat(c.Type)
		if err != nil || !f.CanWrite() {
			return fmt.Errorf("%w: -t %q is not an output type", ErrUsage, c.Type)
		}
		if _, err := codec.ParseNotation(c.Notation); err != nil {
			return fmt.Errorf("%w: -notation %q: %v", ErrUsage, c.Notation, err)
		}
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: -workers %d < 0", ErrUsage, c.Workers)
	}
	if c.PrecisionCeiling < 1 || c.ExponentCeiling < 0 {
		return fmt.Errorf("%w: ceilings must be positive", ErrUsage)
	}
	return nil
}

// generatorConfig maps c onto generator.Config.
func (c Config) generatorConfig() generator.Config {
	return generator.Config{
		MinPrecision:     c.MinPrecision,
		MaxPrecision:     c.MaxPrecision,
		MinExponent:      c.MinExponent,
		MaxExponent:      c.MaxExponent,
		Radix:            c.Radix,
		Base:             c.Base,
		IncludeSpecial:   c.IncludeSpecial,
		IncludeEdge:      c.IncludeEdge,
		IncludeSubnormal: c.IncludeSubnormal,
		IncludePi:        c.IncludePi,
		Constant:         c.Constant,
		Count:            c.Count,
	}
}

func (c Config) converter() *convert.Converter {
	return convert.New(
		convert.WithPrecisionCeiling(c.PrecisionCeiling),
		convert.WithExponentCeiling(c.ExponentCeiling),
	)
}
