package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Endpoint != defaultEndpoint {
		t.Fatalf("expected default endpoint, got %q", cfg.App.Endpoint)
	}
	if cfg.App.Query != defaultQuery {
		t.Fatalf("expected default query %q, got %q", defaultQuery, cfg.App.Query)
	}
	if cfg.App.Width != 0 || cfg.App.Height != 0 {
		t.Fatalf("expected zero dimensions, got %dx%d", cfg.App.Width, cfg.App.Height)
	}
	if cfg.App.ShowFooter || cfg.App.Verbose || cfg.Logging.Trace {
		t.Fatal("expected boolean options disabled by default")
	}
}

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	environ := []string{
		"FORKFIND_APP_ID=env-id",
		"FORKFIND_QUERY=soup",
		"FORKFIND_WIDTH=100",
	}
	args := []string{"-app-id", "flag-id", "-width", "80", "-footer"}
	cfg, err := LoadArgs(args, environ, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.AppID != "flag-id" {
		t.Fatalf("expected flag to win, got %q", cfg.App.AppID)
	}
	if cfg.App.Query != "soup" {
		t.Fatalf("expected env query, got %q", cfg.App.Query)
	}
	if cfg.App.Width != 80 {
		t.Fatalf("expected width 80, got %d", cfg.App.Width)
	}
	if !cfg.App.ShowFooter {
		t.Fatal("expected footer enabled")
	}
	if cfg.Flags["width"] != "80" {
		t.Fatalf("expected flags map width 80, got %q", cfg.Flags["width"])
	}
}

func TestLoadArgsRejectsNegativeDimensions(t *testing.T) {
	if _, err := LoadArgs([]string{"-width", "-1"}, nil, ""); err == nil {
		t.Fatal("expected error for negative width")
	}
	if _, err := LoadArgs([]string{"-height", "-2"}, nil, ""); err == nil {
		t.Fatal("expected error for negative height")
	}
}

func TestLoadArgsReadsEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	contents := "FORKFIND_APP_ID=file-id\nFORKFIND_APP_KEY=file-key\n"
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}

	cfg, err := LoadArgs(nil, []string{"FORKFIND_APP_KEY=env-key"}, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.AppID != "file-id" {
		t.Fatalf("expected app id from env file, got %q", cfg.App.AppID)
	}
	if cfg.App.AppKey != "env-key" {
		t.Fatalf("expected process env to win over env file, got %q", cfg.App.AppKey)
	}
}

func TestLoadArgsMissingEnvFileIsNotAnError(t *testing.T) {
	cfg, err := LoadArgs(nil, nil, filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.AppID != "" {
		t.Fatalf("expected empty app id, got %q", cfg.App.AppID)
	}
}

func TestValidateRequiresCredentials(t *testing.T) {
	cfg, err := LoadArgs([]string{"-app-id", "id", "-app-key", "key"}, nil, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	cfg.App.AppKey = ""
	if err := Validate(cfg); err == nil {
		t.Fatal("expected error for missing key")
	} else if !strings.Contains(err.Error(), "FORKFIND_APP_KEY") {
		t.Fatalf("expected error to name the env var, got %v", err)
	}

	cfg.App.AppKey = "key"
	cfg.App.AppID = " "
	if err := Validate(cfg); err == nil {
		t.Fatal("expected error for blank app id")
	}

	cfg.App.AppID = "id"
	cfg.App.Endpoint = ""
	if err := Validate(cfg); err == nil {
		t.Fatal("expected error for empty endpoint")
	}
}
