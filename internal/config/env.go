package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
)

// envOverride binds PRIMECALC_<key> to the flags it stands in for.
type envOverride struct {
	key   string
	flags []string
	apply func(*AppConfig, string)
}

// Unparseable numeric and boolean values leave the field untouched; Validate
// still checks whatever value ends up in the config.
func uintEnv(field func(*AppConfig) *uint64) func(*AppConfig, string) {
	return func(c *AppConfig, v string) {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			*field(c) = n
		}
	}
}

func intEnv(field func(*AppConfig) *int) func(*AppConfig, string) {
	return func(c *AppConfig, v string) {
		if n, err := strconv.Atoi(v); err == nil {
			*field(c) = n
		}
	}
}

func stringEnv(field func(*AppConfig) *string) func(*AppConfig, string) {
	return func(c *AppConfig, v string) { *field(c) = v }
}

func boolEnv(field func(*AppConfig) *bool) func(*AppConfig, string) {
	return func(c *AppConfig, v string) {
		switch strings.ToLower(v) {
		case "true", "1", "yes":
			*field(c) = true
		case "false", "0", "no":
			*field(c) = false
		}
	}
}

var envOverrides = []envOverride{
	{"LIMIT", []string{"limit", "l"}, uintEnv(func(c *AppConfig) *uint64 { return &c.Limit })},
	{"WORKERS", []string{"workers", "w"}, intEnv(func(c *AppConfig) *int { return &c.Workers })},
	{"TOP", []string{"top"}, intEnv(func(c *AppConfig) *int { return &c.TopK })},
	{"PROGRESS_EVERY", []string{"progress-every"}, uintEnv(func(c *AppConfig) *uint64 { return &c.ProgressEvery })},
	{"POLICY", []string{"policy"}, stringEnv(func(c *AppConfig) *string { return &c.Policy })},
	{"MODE", []string{"mode"}, stringEnv(func(c *AppConfig) *string { return &c.Mode })},
	// A style chosen through the environment is as deliberate as the flag.
	{"PROGRESS", []string{"progress"}, func(c *AppConfig, v string) {
		c.Progress = v
		c.progressSet = true
	}},
	{"LOG_LEVEL", []string{"log-level"}, stringEnv(func(c *AppConfig) *string { return &c.LogLevel })},
	{"QUIET", []string{"quiet", "q"}, boolEnv(func(c *AppConfig) *bool { return &c.Quiet })},
	{"VERBOSE", []string{"verbose", "v"}, boolEnv(func(c *AppConfig) *bool { return &c.Verbose })},
	{"METRICS", []string{"metrics"}, boolEnv(func(c *AppConfig) *bool { return &c.Metrics })},
	{"TUI", []string{"tui"}, boolEnv(func(c *AppConfig) *bool { return &c.TUI })},
	{"NO_COLOR", []string{"no-color"}, boolEnv(func(c *AppConfig) *bool { return &c.NoColor })},
}

// applyEnvOverrides fills every field whose flags were not given on the
// command line from its PRIMECALC_ variable, giving flag > env > default.
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	given := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { given[f.Name] = true })

	for _, o := range envOverrides {
		if anyGiven(given, o.flags) {
			continue
		}
		if v := os.Getenv(EnvPrefix + o.key); v != "" {
			o.apply(config, v)
		}
	}
}

func anyGiven(given map[string]bool, names []string) bool {
	for _, name := range names {
		if given[name] {
			return true
		}
	}
	return false
}
