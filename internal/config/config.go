package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/menu-browser/internal/app"
	"github.com/atomicstack/menu-browser/internal/catalog/source"
	"github.com/joho/godotenv"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envSource      = "MENU_BROWSER_SOURCE"
	envCatalogFile = "MENU_BROWSER_CATALOG_FILE"
	envTable       = "MENU_BROWSER_DYNAMODB_TABLE"
	envEndpoint    = "MENU_BROWSER_DYNAMODB_ENDPOINT"
	envDatabaseURL = "MENU_BROWSER_DATABASE_URL"
	envWidth       = "MENU_BROWSER_WIDTH"
	envHeight      = "MENU_BROWSER_HEIGHT"
	envShowFooter  = "MENU_BROWSER_FOOTER"
	envTrace       = "MENU_BROWSER_TRACE"
	envLogFile     = "MENU_BROWSER_LOG_FILE"
)

// dotenvFile is read from the working directory before the environment is
// consulted. Variables already set in the environment are left alone.
const dotenvFile = ".env"

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	if err := loadDotenv(dotenvFile); err != nil {
		return Config{}, err
	}
	return LoadArgs(os.Args[1:], os.Environ())
}

func loadDotenv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("read %s: %w", path, err)
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("menu-browser", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	src := fs.String("source", envOrDefault(env, envSource, string(source.KindStatic)), "catalog source: static, file, dynamodb, or postgres")
	catalogFile := fs.String("catalog", envOrDefault(env, envCatalogFile, ""), "path to a YAML or JSON catalog (file source)")
	table := fs.String("table", envOrDefault(env, envTable, ""), "DynamoDB table holding menu documents")
	endpoint := fs.String("endpoint", envOrDefault(env, envEndpoint, ""), "DynamoDB endpoint override, e.g. for DynamoDB Local")
	dsn := fs.String("dsn", envOrDefault(env, envDatabaseURL, ""), "PostgreSQL connection string (postgres source)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable key binding help row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			Source: source.Config{
				Kind:     source.Kind(*src),
				Path:     *catalogFile,
				Table:    *table,
				Endpoint: *endpoint,
				DSN:      *dsn,
			},
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"source":   *src,
			"catalog":  *catalogFile,
			"table":    *table,
			"endpoint": *endpoint,
			"dsn":      redactDSN(*dsn),
			"width":    strconv.Itoa(*width),
			"height":   strconv.Itoa(*height),
			"footer":   strconv.FormatBool(*footer),
			"trace":    strconv.FormatBool(*trace),
			"logFile":  *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// redactDSN keeps only whether a connection string was supplied.
func redactDSN(dsn string) string {
	if dsn == "" {
		return ""
	}
	return "(set)"
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate checks the source kind and the setting that kind requires.
func Validate(cfg Config) error {
	if err := cfg.App.Source.Check(); err != nil {
		return fmt.Errorf("source: %w", err)
	}
	return nil
}
