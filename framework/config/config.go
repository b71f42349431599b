package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the central typed configuration struct.
type Config struct {
	App AppConfig `yaml:"app"`
	Log LogConfig `yaml:"log"`
}

type AppConfig struct {
	Name  string `yaml:"name"`
	Env   string `yaml:"env"` // local | production | testing
	Debug bool   `yaml:"debug"`
	URL   string `yaml:"url"`
	Port  string `yaml:"port"`
}

type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // console | json
}

// Defaults returns the configuration used when nothing else is set.
func Defaults() *Config {
	return &Config{
		App: AppConfig{
			Name:  "ModCraft",
			Env:   "local",
			Debug: true,
			URL:   "http://localhost",
			Port:  "8000",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load builds a Config from files and environment variables.
//
// Files ending in .yaml or .yml are decoded over the defaults in order. Any
// other file is read as a .env file into the process environment (existing
// variables win). Environment variables are applied last. With no files,
// ".env" is tried. Missing files are skipped; malformed YAML is an error.
//
//	cfg, err := config.Load(".env", "config/app.yaml")
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	cfg := Defaults()
	var envFiles []string
	for _, f := range files {
		switch strings.ToLower(filepath.Ext(f)) {
		case ".yaml", ".yml":
			if err := loadYAML(cfg, f); err != nil {
				return nil, err
			}
		default:
			envFiles = append(envFiles, f)
		}
	}

	for _, f := range envFiles {
		// Non-fatal: .env may not exist in production
		_ = godotenv.Load(f)
	}

	cfg.applyEnv()
	return cfg, nil
}

func loadYAML(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.App.Name = env("APP_NAME", c.App.Name)
	c.App.Env = env("APP_ENV", c.App.Env)
	c.App.Debug = envBool("APP_DEBUG", c.App.Debug)
	c.App.URL = env("APP_URL", c.App.URL)
	c.App.Port = env("APP_PORT", c.App.Port)
	c.Log.Level = env("LOG_LEVEL", c.Log.Level)
	c.Log.Format = env("LOG_FORMAT", c.Log.Format)
}

// Get returns a raw env value, falling back to defaultVal.
func Get(key, defaultVal string) string {
	return env(key, defaultVal)
}

// GetInt returns an int env value.
func GetInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

// GetBool returns a bool env value.
func GetBool(key string, defaultVal bool) bool {
	return envBool(key, defaultVal)
}

// ── helpers ─────────────────────────────────────────────────────────────────

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
