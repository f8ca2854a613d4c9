// Package config loads bayesnet settings from defaults, an optional YAML
// file, BAYESNET_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/cdrcknt/Bayesian-MedicalDiagnosis/diagnosis"
)

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("config: invalid")

// Default configuration values.
const (
	DefaultSamples  = 10000
	DefaultWorkers  = 1
	DefaultOutput   = "table"
	DefaultLogLevel = "info"
	EnvPrefix       = "BAYESNET_"
)

// Outputs lists the accepted output formats.
var Outputs = []string{"table", "csv", "json", "markdown"}

// Config holds all settings.
type Config struct {
	Model     string           `koanf:"model"`
	Samples   int              `koanf:"samples"`
	Seed      uint64           `koanf:"seed"`
	Workers   int              `koanf:"workers"`
	Output    string           `koanf:"output"`
	LogLevel  string           `koanf:"log_level"`
	Diagnosis diagnosis.Params `koanf:"diagnosis"`

	// Seeded reports whether any layer set seed.
	Seeded bool `koanf:"-"`
	// File is the config file that was read, if any.
	File string `koanf:"-"`
}

// diagnosisFlags maps flag names onto keys under diagnosis.
var diagnosisFlags = map[string]string{
	"smoking-rate":            "diagnosis.smoking_rate",
	"cancer-given-non-smoker": "diagnosis.cancer_given_non_smoker",
	"cancer-given-smoker":     "diagnosis.cancer_given_smoker",
	"breath-given-no-cancer":  "diagnosis.breath_given_no_cancer",
	"breath-given-cancer":     "diagnosis.breath_given_cancer",
}

// RegisterFlags adds every config-backed flag to fs. Only flags the user
// actually sets override lower layers.
func RegisterFlags(fs *pflag.FlagSet) {
	d := diagnosis.Default()
	fs.String("model", "", "YAML model file (default: built-in diagnosis network)")
	fs.IntP("samples", "n", DefaultSamples, "number of samples to draw")
	fs.Uint64("seed", 0, "base seed (default: random)")
	fs.Int("workers", DefaultWorkers, "sampling goroutines")
	fs.StringP("output", "o", DefaultOutput, "output format ("+strings.Join(Outputs, "|")+")")
	fs.String("log-level", DefaultLogLevel, "log level (debug|info|warn|error)")
	fs.Float64("smoking-rate", d.SmokingRate, "P(Smoking)")
	fs.Float64("cancer-given-non-smoker", d.CancerGivenNonSmoker, "P(LungCancer | non-smoker)")
	fs.Float64("cancer-given-smoker", d.CancerGivenSmoker, "P(LungCancer | smoker)")
	fs.Float64("breath-given-no-cancer", d.BreathGivenNoCancer, "P(ShortnessOfBreath | no cancer)")
	fs.Float64("breath-given-cancer", d.BreathGivenCancer, "P(ShortnessOfBreath | cancer)")
}

// findConfigFile picks the explicit path, then ./bayesnet.yaml, then ./bayesnet.yml.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"bayesnet.yaml", "bayesnet.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load builds a Config. Precedence (highest to lowest): flags > env vars >
// config file > defaults. flags may be nil.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	d := diagnosis.Default()
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"model":                             "",
		"samples":                           DefaultSamples,
		"workers":                           DefaultWorkers,
		"output":                            DefaultOutput,
		"log_level":                         DefaultLogLevel,
		"diagnosis.smoking_rate":            d.SmokingRate,
		"diagnosis.cancer_given_non_smoker": d.CancerGivenNonSmoker,
		"diagnosis.cancer_given_smoker":     d.CancerGivenSmoker,
		"diagnosis.breath_given_no_cancer":  d.BreathGivenNoCancer,
		"diagnosis.breath_given_cancer":     d.BreathGivenCancer,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// 3. Environment: BAYESNET_LOG_LEVEL -> log_level,
	// BAYESNET_DIAGNOSIS__SMOKING_RATE -> diagnosis.smoking_rate
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			if key, ok := diagnosisFlags[f.Name]; ok {
				return key, posflag.FlagVal(flags, f)
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	// 5. Decode
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.Seeded = k.Exists("seed")
	cfg.File = used

	return &cfg, nil
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	if c.Samples <= 0 {
		return fmt.Errorf("%w: samples must be > 0, got %d", ErrInvalid, c.Samples)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("%w: workers must be > 0, got %d", ErrInvalid, c.Workers)
	}
	if !slices.Contains(Outputs, c.Output) {
		return fmt.Errorf("%w: output %q not one of %s", ErrInvalid, c.Output, strings.Join(Outputs, ", "))
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if err := c.Diagnosis.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}
