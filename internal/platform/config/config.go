// internal/platform/config/config.go
package config

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"clinicor/internal/core/usecases"
)

type Config struct {
	// App
	Inputs       []string // classifier output files ("-" = stdin)
	Workers      int
	PrintVersion bool

	// Engine
	Similarity     float64
	Correlation    float64
	StrongOverride float64
	TopN           int

	// Knowledge
	KnowledgePath string // empty = builtin chest X-ray tables

	// IO
	OutputDir string
	Formats   []string

	// UI
	UIMode string
	Quiet  bool

	// Logging
	LogLevel string // empty = CLINICOR_LOG_LEVEL / info
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Workers: 4,

		Similarity:     usecases.DefaultSimilarityThreshold,
		Correlation:    usecases.DefaultCorrelationThreshold,
		StrongOverride: usecases.DefaultStrongRelationOverride,
		TopN:           usecases.DefaultTopN,

		KnowledgePath: "",
		OutputDir:     "",
		Formats:       []string{"table"},
		UIMode:        "compact",
	}
}

// Load initializes the configuration: defaults, then ENV, then flags
// (flags win). Positional arguments are the input files.
func Load(args []string) (Config, error) {
	cfg := DefaultConfig()

	loadFromEnv(&cfg)

	fs := pflag.NewFlagSet("clinicor", pflag.ContinueOnError)
	if err := loadFromFlags(&cfg, fs, args); err != nil {
		return cfg, err
	}

	normalize(&cfg)
	return cfg, nil
}

// loadFromEnv loads configuration from CLINICOR_* environment variables.
func loadFromEnv(cfg *Config) {
	if v := getenv("CLINICOR_WORKERS", ""); v != "" {
		cfg.Workers = parseInt(v, cfg.Workers)
	}
	if v := getenv("CLINICOR_TOP_N", ""); v != "" {
		cfg.TopN = parseInt(v, cfg.TopN)
	}
	if v := getenv("CLINICOR_SIMILARITY", ""); v != "" {
		cfg.Similarity = parseFloat(v, cfg.Similarity)
	}
	if v := getenv("CLINICOR_CORRELATION", ""); v != "" {
		cfg.Correlation = parseFloat(v, cfg.Correlation)
	}
	if v := getenv("CLINICOR_STRONG_OVERRIDE", ""); v != "" {
		cfg.StrongOverride = parseFloat(v, cfg.StrongOverride)
	}
	if v := getenv("CLINICOR_KNOWLEDGE", ""); v != "" {
		cfg.KnowledgePath = v
	}
	if v := getenv("CLINICOR_OUTPUT_DIR", ""); v != "" {
		cfg.OutputDir = v
	}
	if v := getenv("CLINICOR_FORMATS", ""); v != "" {
		cfg.Formats = splitList(v)
	}
	if v := getenv("CLINICOR_UI_MODE", ""); v != "" {
		cfg.UIMode = v
	}
	if v := getenv("CLINICOR_QUIET", ""); v != "" {
		cfg.Quiet = parseBool(v)
	}
}

// loadFromFlags parses CLI flags into the config. Remaining positional
// arguments become the input locations.
func loadFromFlags(cfg *Config, fs *pflag.FlagSet, args []string) error {
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "Concurrent analyses when ranking several files")
	fs.IntVar(&cfg.TopN, "top", cfg.TopN, "Maximum number of groups to report")

	fs.Float64Var(&cfg.Similarity, "similarity", cfg.Similarity, "Maximum confidence gap for grouping")
	fs.Float64Var(&cfg.Correlation, "correlation", cfg.Correlation, "Minimum correlation for grouping and merging")
	fs.Float64Var(&cfg.StrongOverride, "strong-override", cfg.StrongOverride, "Correlation that groups regardless of confidence gap")

	fs.StringVar(&cfg.KnowledgePath, "kb", cfg.KnowledgePath, "YAML knowledge base file (default: builtin chest X-ray tables)")

	fs.StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "Output directory for file exporters (empty = stdout)")
	fs.StringSliceVar(&cfg.Formats, "format", cfg.Formats, "Output formats (json, table)")

	fs.StringVar(&cfg.UIMode, "ui", cfg.UIMode, "UI mode: compact or quiet")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")
	fs.BoolVarP(&cfg.Quiet, "quiet", "q", cfg.Quiet, "Suppress terminal UI (same as --ui quiet)")
	fs.BoolVar(&cfg.PrintVersion, "version", false, "Print version and exit")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg.Inputs = fs.Args()
	return nil
}

func normalize(c *Config) {
	if c.Workers < 1 {
		c.Workers = 1
	}
	if c.TopN < 1 {
		c.TopN = usecases.DefaultTopN
	}
	if c.Quiet {
		c.UIMode = "quiet"
	}
	if len(c.Formats) == 0 {
		c.Formats = []string{"table"}
	}
	for i, f := range c.Formats {
		c.Formats[i] = strings.ToLower(strings.TrimSpace(f))
	}
}

// Thresholds bundles the engine thresholds carried by the config.
func (c Config) Thresholds() usecases.Thresholds {
	return usecases.Thresholds{
		Similarity:     c.Similarity,
		Correlation:    c.Correlation,
		StrongOverride: c.StrongOverride,
	}
}

// ToJSON serializes the configuration (useful for debugging).
func (c Config) ToJSON() (string, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Helpers

func getenv(k, def string) string {
	if v, ok := os.LookupEnv(k); ok {
		return v
	}
	return def
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "t", "true", "y", "yes", "on":
		return true
	default:
		return false
	}
}

func parseInt(v string, def int) int {
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return i
}

func parseFloat(v string, def float64) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return def
	}
	return f
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
