package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/forkfind/forkfind/internal/app"
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
	envAppID    = "FORKFIND_APP_ID"
	envAppKey   = "FORKFIND_APP_KEY"
	envEndpoint = "FORKFIND_ENDPOINT"
	envQuery    = "FORKFIND_QUERY"
	envWidth    = "FORKFIND_WIDTH"
	envHeight   = "FORKFIND_HEIGHT"
	envFooter   = "FORKFIND_FOOTER"
	envVerbose  = "FORKFIND_VERBOSE"
	envTrace    = "FORKFIND_TRACE"
	envLogFile  = "FORKFIND_LOG_FILE"
)

const (
	defaultEndpoint = "https://api.edamam.com/search"
	defaultQuery    = "chicken"
	defaultEnvFile  = ".env"
)

// Load parses configuration from CLI arguments and environment variables.
// Values found in a .env file fill in for unset environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ(), defaultEnvFile)
}

// LoadArgs allows tests to supply specific args, environment, and env file.
func LoadArgs(args []string, environ []string, envFile string) (Config, error) {
	env := parseEnv(environ)
	mergeEnvFile(env, envFile)

	fs := flag.NewFlagSet("forkfind", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	appID := fs.String("app-id", envOrDefault(env, envAppID, ""), "recipe API application ID")
	appKey := fs.String("app-key", envOrDefault(env, envAppKey, ""), "recipe API application key")
	endpoint := fs.String("endpoint", envOrDefault(env, envEndpoint, defaultEndpoint), "recipe search endpoint URL")
	query := fs.String("query", envOrDefault(env, envQuery, defaultQuery), "initial search query committed on startup")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envFooter, false), "enable footer hint row (disabled by default)")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "show informational status messages")
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
			AppID:    *appID,
			AppKey:   *appKey,
			Endpoint: *endpoint,
			Query:    *query,
			Width:    *width,
			Height:   *height,

			ShowFooter: *footer,
			Verbose:    *verbose,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"endpoint": *endpoint,
			"query":    *query,
			"width":    strconv.Itoa(*width),
			"height":   strconv.Itoa(*height),
			"footer":   strconv.FormatBool(*footer),
			"verbose":  strconv.FormatBool(*verbose),
			"trace":    strconv.FormatBool(*trace),
			"logFile":  *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// mergeEnvFile overlays values from a dotenv file for keys the process
// environment leaves unset. Missing files are not an error.
func mergeEnvFile(env map[string]string, path string) {
	if strings.TrimSpace(path) == "" {
		return
	}
	fileValues, err := godotenv.Read(path)
	if err != nil {
		return
	}
	for k, v := range fileValues {
		if _, ok := env[k]; !ok {
			env[k] = v
		}
	}
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

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.App.AppID) == "" {
		return fmt.Errorf("missing API application ID (set %s or pass -app-id)", envAppID)
	}
	if strings.TrimSpace(cfg.App.AppKey) == "" {
		return fmt.Errorf("missing API application key (set %s or pass -app-key)", envAppKey)
	}
	if strings.TrimSpace(cfg.App.Endpoint) == "" {
		return fmt.Errorf("endpoint must not be empty")
	}
	return nil
}
