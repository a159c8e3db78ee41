package util

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Default frame counts for the Belady's Anomaly check
const (
	DefaultAnomalySmaller = 3
	DefaultAnomalyLarger  = 4
)

const envPrefix = "PAGESIM_"

// Options represents simulator configuration options
type Options struct {
	Capacity       int      `yaml:"capacity"`
	Policies       []string `yaml:"policies"`
	AnomalySmaller int      `yaml:"anomaly_smaller"`
	AnomalyLarger  int      `yaml:"anomaly_larger"`
	TraceSteps     bool     `yaml:"trace_steps"`
	LogLevel       string   `yaml:"log_level"`
	LogFile        string   `yaml:"log_file"`
}

// DefaultOptions returns default simulator options
func DefaultOptions() Options {
	return Options{
		Capacity:       4,
		Policies:       []string{"fifo", "lru", "optimal", "clock"},
		AnomalySmaller: DefaultAnomalySmaller,
		AnomalyLarger:  DefaultAnomalyLarger,
		TraceSteps:     false,
		LogLevel:       "INFO",
	}
}

// LoadOptions builds options from defaults, an optional YAML file and
// PAGESIM_* environment variables, in that order. envFile is loaded into the
// environment first when it exists; variables already set are kept.
func LoadOptions(path string, envFile string) (Options, error) {
	opts := DefaultOptions()

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return opts, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return opts, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &opts); err != nil {
			return opts, fmt.Errorf("parse config file: %w", err)
		}
	}

	if err := opts.applyEnv(); err != nil {
		return opts, err
	}

	if err := opts.Validate(); err != nil {
		return opts, err
	}
	return opts, nil
}

func (o *Options) applyEnv() error {
	intVars := map[string]*int{
		"CAPACITY":        &o.Capacity,
		"ANOMALY_SMALLER": &o.AnomalySmaller,
		"ANOMALY_LARGER":  &o.AnomalyLarger,
	}
	for name, dst := range intVars {
		raw, ok := os.LookupEnv(envPrefix + name)
		if !ok {
			continue
		}
		v, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q", ErrInvalidOptions, envPrefix, name, raw)
		}
		*dst = v
	}

	if raw, ok := os.LookupEnv(envPrefix + "POLICIES"); ok {
		o.Policies = nil
		for _, p := range strings.Split(raw, ",") {
			if p = strings.TrimSpace(p); p != "" {
				o.Policies = append(o.Policies, p)
			}
		}
	}

	if raw, ok := os.LookupEnv(envPrefix + "TRACE_STEPS"); ok {
		v, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("%w: %sTRACE_STEPS=%q", ErrInvalidOptions, envPrefix, raw)
		}
		o.TraceSteps = v
	}

	if raw, ok := os.LookupEnv(envPrefix + "LOG_LEVEL"); ok {
		o.LogLevel = strings.ToUpper(strings.TrimSpace(raw))
	}
	if raw, ok := os.LookupEnv(envPrefix + "LOG_FILE"); ok {
		o.LogFile = strings.TrimSpace(raw)
	}
	return nil
}

// Validate checks capacities only; policy names are resolved by the buffer
// package.
func (o Options) Validate() error {
	if o.Capacity < 0 {
		return fmt.Errorf("%w: capacity %d", ErrInvalidCapacity, o.Capacity)
	}
	if o.AnomalySmaller < 0 || o.AnomalyLarger < 0 {
		return fmt.Errorf("%w: anomaly capacities %d/%d", ErrInvalidCapacity, o.AnomalySmaller, o.AnomalyLarger)
	}
	if len(o.Policies) == 0 {
		return fmt.Errorf("%w: no policies", ErrInvalidOptions)
	}
	return nil
}
