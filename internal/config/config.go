package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"

	"freetoolz-blueprint/internal/models"
	"freetoolz-blueprint/internal/sitemap"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds all generator, server and submission settings.
type Config struct {
	Site         models.Site          `yaml:"site"`
	ToolsDir     string               `yaml:"tools_dir"`
	ToolExt      string               `yaml:"tool_ext"`
	Output       string               `yaml:"output"`
	Format       string               `yaml:"format"`
	Sitemap      string               `yaml:"sitemap"`
	Robots       string               `yaml:"robots"`
	PagesDir     string               `yaml:"pages_dir"`
	DBPath       string               `yaml:"db_path"`
	CatalogPath  string               `yaml:"catalog"`
	StaticPages  []sitemap.StaticPage `yaml:"static_pages"`
	RobotsPolicy sitemap.RobotsPolicy `yaml:"robots_policy"`
	Server       Server               `yaml:"server"`
	IndexNow     IndexNow             `yaml:"indexnow"`
	LogLevel     string               `yaml:"log_level"`
}

type Server struct {
	Addr string `yaml:"addr"`
	// Regenerate is a cron spec; empty disables scheduled regeneration.
	Regenerate string `yaml:"regenerate"`
	Timezone   string `yaml:"timezone"`
}

type IndexNow struct {
	Key         string   `yaml:"key"`
	KeyLocation string   `yaml:"key_location"`
	Endpoints   []string `yaml:"endpoints"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads configuration from a YAML file, applies defaults, .env and
// environment overrides, then validates. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config yaml: %w", err)
		}
	}

	applyDefaults(cfg)
	if err := loadDotEnv(); err != nil {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	applyEnvironmentOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// GetConfigPath returns the config file path from the environment, or
// blueprint.yaml when it exists in the working directory.
func GetConfigPath() string {
	if path := os.Getenv("BLUEPRINT_CONFIG"); path != "" {
		return path
	}
	if _, err := os.Stat("blueprint.yaml"); err == nil {
		return "blueprint.yaml"
	}
	return ""
}

func loadDotEnv() error {
	err := godotenv.Load()
	if err == nil || errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func applyDefaults(cfg *Config) {
	if cfg.Site.BaseURL == "" {
		cfg.Site.BaseURL = "https://freetoolz.cloud"
	}
	if cfg.Site.Brand == "" {
		cfg.Site.Brand = "FreeToolz"
	}
	if cfg.Site.LogoPath == "" {
		cfg.Site.LogoPath = "/assets/free-toolz-logo.png"
	}
	if cfg.ToolsDir == "" {
		cfg.ToolsDir = "src/tools"
	}
	if cfg.ToolExt == "" {
		cfg.ToolExt = ".tsx"
	}
	if cfg.Output == "" {
		cfg.Output = "seo/tool-seo-blueprint.json"
	}
	if cfg.Format == "" {
		cfg.Format = "json"
	}
	if len(cfg.StaticPages) == 0 {
		cfg.StaticPages = sitemap.DefaultStaticPages()
	}
	if len(cfg.RobotsPolicy.Allow) == 0 && len(cfg.RobotsPolicy.Disallow) == 0 {
		cfg.RobotsPolicy = sitemap.DefaultRobotsPolicy()
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Server.Timezone == "" {
		cfg.Server.Timezone = "UTC"
	}
	if len(cfg.IndexNow.Endpoints) == 0 {
		cfg.IndexNow.Endpoints = []string{"https://www.bing.com/indexnow", "https://yandex.com/indexnow"}
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}

func applyEnvironmentOverrides(cfg *Config) {
	if v := os.Getenv("BLUEPRINT_BASE_URL"); v != "" {
		cfg.Site.BaseURL = v
	}
	if v := os.Getenv("BLUEPRINT_TOOLS_DIR"); v != "" {
		cfg.ToolsDir = v
	}
	if v := os.Getenv("BLUEPRINT_OUTPUT"); v != "" {
		cfg.Output = v
	}
	if v := os.Getenv("BLUEPRINT_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("INDEXNOW_KEY"); v != "" {
		cfg.IndexNow.Key = v
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Addr = ":" + v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

// Validate checks the configuration and normalizes the base URL.
func (cfg *Config) Validate() error {
	cfg.Site.BaseURL = strings.TrimRight(cfg.Site.BaseURL, "/")
	u, err := url.Parse(cfg.Site.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: site.base_url must be an absolute URL, got %q", ErrInvalidConfig, cfg.Site.BaseURL)
	}
	if cfg.Site.Brand == "" {
		return fmt.Errorf("%w: site.brand is required", ErrInvalidConfig)
	}
	if cfg.Format != "json" && cfg.Format != "ndjson" {
		return fmt.Errorf("%w: format must be json or ndjson, got %q", ErrInvalidConfig, cfg.Format)
	}
	if cfg.Server.Regenerate != "" {
		if _, err := cron.ParseStandard(cfg.Server.Regenerate); err != nil {
			return fmt.Errorf("%w: server.regenerate %q: %v", ErrInvalidConfig, cfg.Server.Regenerate, err)
		}
	}
	if _, err := time.LoadLocation(cfg.Server.Timezone); err != nil {
		return fmt.Errorf("%w: invalid timezone %q: %v", ErrInvalidConfig, cfg.Server.Timezone, err)
	}
	for _, e := range cfg.IndexNow.Endpoints {
		if u, err := url.Parse(e); err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: invalid indexnow endpoint %q", ErrInvalidConfig, e)
		}
	}
	return nil
}

// KeyLocation returns where the IndexNow key file is published.
func (cfg *Config) KeyLocation() string {
	if cfg.IndexNow.KeyLocation != "" {
		return cfg.IndexNow.KeyLocation
	}
	return cfg.Site.BaseURL + "/" + cfg.IndexNow.Key + ".txt"
}
