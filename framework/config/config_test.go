package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/km-arc/modcraft/framework/config"
)

// ── helpers ──────────────────────────────────────────────────────────────────

func setEnv(t *testing.T, key, val string) {
	t.Helper()
	t.Setenv(key, val) // automatically restored after test
}

// unsetEnv clears key for the duration of the test.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

var appKeys = []string{"APP_NAME", "APP_ENV", "APP_DEBUG", "APP_URL", "APP_PORT", "LOG_LEVEL", "LOG_FORMAT"}

func mustLoad(t *testing.T, files ...string) *config.Config {
	t.Helper()
	cfg, err := config.Load(files...)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return cfg
}

// ── Load ─────────────────────────────────────────────────────────────────────

func TestLoad_Defaults(t *testing.T) {
	unsetEnv(t, appKeys...)
	cfg := mustLoad(t, filepath.Join(t.TempDir(), "missing.env"))

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"App.Name", cfg.App.Name, "ModCraft"},
		{"App.Env", cfg.App.Env, "local"},
		{"App.Port", cfg.App.Port, "8000"},
		{"App.URL", cfg.App.URL, "http://localhost"},
		{"Log.Level", cfg.Log.Level, "info"},
		{"Log.Format", cfg.Log.Format, "console"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	setEnv(t, "APP_NAME", "MyApp")
	setEnv(t, "APP_ENV", "production")
	setEnv(t, "APP_PORT", "9000")
	setEnv(t, "LOG_LEVEL", "debug")

	cfg := mustLoad(t)

	if cfg.App.Name != "MyApp" {
		t.Errorf("App.Name: got %q want %q", cfg.App.Name, "MyApp")
	}
	if cfg.App.Env != "production" {
		t.Errorf("App.Env: got %q want %q", cfg.App.Env, "production")
	}
	if cfg.App.Port != "9000" {
		t.Errorf("App.Port: got %q want %q", cfg.App.Port, "9000")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level: got %q want %q", cfg.Log.Level, "debug")
	}
}

func TestLoad_AppDebugTrue(t *testing.T) {
	setEnv(t, "APP_DEBUG", "true")
	if cfg := mustLoad(t); !cfg.App.Debug {
		t.Error("expected App.Debug to be true")
	}
}

func TestLoad_AppDebugFalse(t *testing.T) {
	setEnv(t, "APP_DEBUG", "false")
	if cfg := mustLoad(t); cfg.App.Debug {
		t.Error("expected App.Debug to be false")
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	unsetEnv(t, appKeys...)
	path := writeFile(t, "app.env", "APP_NAME=FromDotEnv\nAPP_PORT=7000\n")

	cfg := mustLoad(t, path)

	if cfg.App.Name != "FromDotEnv" {
		t.Errorf("App.Name: got %q want %q", cfg.App.Name, "FromDotEnv")
	}
	if cfg.App.Port != "7000" {
		t.Errorf("App.Port: got %q want %q", cfg.App.Port, "7000")
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	unsetEnv(t, appKeys...)
	path := writeFile(t, "app.yaml", "app:\n  name: FromYAML\n  debug: false\nlog:\n  format: json\n")

	cfg := mustLoad(t, path)

	if cfg.App.Name != "FromYAML" {
		t.Errorf("App.Name: got %q want %q", cfg.App.Name, "FromYAML")
	}
	if cfg.App.Debug {
		t.Error("expected App.Debug to be false")
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format: got %q want %q", cfg.Log.Format, "json")
	}
	if cfg.App.Port != "8000" {
		t.Errorf("App.Port: keys absent from YAML should keep defaults, got %q", cfg.App.Port)
	}
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	unsetEnv(t, appKeys...)
	setEnv(t, "APP_NAME", "FromEnv")
	path := writeFile(t, "app.yml", "app:\n  name: FromYAML\n")

	if cfg := mustLoad(t, path); cfg.App.Name != "FromEnv" {
		t.Errorf("App.Name: got %q want %q", cfg.App.Name, "FromEnv")
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeFile(t, "broken.yaml", "app: [unterminated\n")
	if _, err := config.Load(path); err == nil {
		t.Fatal("expected an error for malformed YAML")
	}
}

// ── Get / GetInt / GetBool ───────────────────────────────────────────────────

func TestGet_ReturnsValue(t *testing.T) {
	setEnv(t, "CUSTOM_KEY", "hello")
	if got := config.Get("CUSTOM_KEY", "default"); got != "hello" {
		t.Errorf("got %q want %q", got, "hello")
	}
}

func TestGet_ReturnsFallback(t *testing.T) {
	unsetEnv(t, "MISSING_KEY")
	if got := config.Get("MISSING_KEY", "fallback"); got != "fallback" {
		t.Errorf("got %q want %q", got, "fallback")
	}
}

func TestGetInt_ReturnsInt(t *testing.T) {
	setEnv(t, "SOME_INT", "42")
	if got := config.GetInt("SOME_INT", 0); got != 42 {
		t.Errorf("got %d want %d", got, 42)
	}
}

func TestGetInt_ReturnsFallbackOnInvalid(t *testing.T) {
	setEnv(t, "SOME_INT", "notanint")
	if got := config.GetInt("SOME_INT", 99); got != 99 {
		t.Errorf("got %d want %d", got, 99)
	}
}

func TestGetBool_True(t *testing.T) {
	for _, val := range []string{"true", "1", "True", "TRUE"} {
		setEnv(t, "BOOL_KEY", val)
		if !config.GetBool("BOOL_KEY", false) {
			t.Errorf("expected true for %q", val)
		}
	}
}

func TestGetBool_ReturnsFallbackOnInvalid(t *testing.T) {
	setEnv(t, "BOOL_KEY", "notabool")
	if config.GetBool("BOOL_KEY", true) != true {
		t.Error("expected fallback true")
	}
}
