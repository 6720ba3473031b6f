package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/vango-dev/displaycard/internal/errors"
)

const (
	// JSONFileName and TOMLFileName are the config files LoadDir looks for.
	JSONFileName = "displaycard.json"
	TOMLFileName = "displaycard.toml"

	// DefaultPort is the default server port.
	DefaultPort = 3000

	// DefaultHost is the default server host.
	DefaultHost = "localhost"

	// DefaultCatalogURL is the product catalog the demo reads from.
	DefaultCatalogURL = "https://dummyjson.com"

	// DefaultCatalogLimit is the number of products the demo needs.
	DefaultCatalogLimit = 2

	// DefaultCTAURL is the outbound link rendered inside each demo card.
	DefaultCTAURL = "https://www.orderful.com/blog/best-edi-platforms-food-beverage"

	// DefaultTitle is the document title of the page.
	DefaultTitle = "Take Home Assignment"

	// DefaultOutput is the file name of a static export.
	DefaultOutput = "index.html"
)

// Config is the complete displaycard configuration.
type Config struct {
	Server  ServerConfig  `json:"server" toml:"server"`
	Catalog CatalogConfig `json:"catalog" toml:"catalog"`
	Session SessionConfig `json:"session" toml:"session"`
	Log     LogConfig     `json:"log" toml:"log"`
	Publish PublishConfig `json:"publish" toml:"publish"`
	Page    PageConfig    `json:"page" toml:"page"`

	configPath string
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Host string `json:"host,omitempty" toml:"host"`
	Port int    `json:"port,omitempty" toml:"port"`

	// ShutdownTimeout bounds graceful shutdown (e.g., "10s").
	ShutdownTimeout string `json:"shutdown_timeout,omitempty" toml:"shutdown_timeout"`
}

// CatalogConfig configures the product catalog client.
type CatalogConfig struct {
	BaseURL string `json:"base_url,omitempty" toml:"base_url"`
	Limit   int    `json:"limit,omitempty" toml:"limit"`
	Timeout string `json:"timeout,omitempty" toml:"timeout"`
}

// SessionConfig configures live sessions.
type SessionConfig struct {
	// AttachTimeout is how long a rendered page may take to open its
	// WebSocket before the session is dropped.
	AttachTimeout string `json:"attach_timeout,omitempty" toml:"attach_timeout"`

	// MaxSessions caps concurrent sessions. 0 means unlimited.
	MaxSessions int `json:"max_sessions,omitempty" toml:"max_sessions"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level,omitempty" toml:"level"`

	// Format is text, json or auto (text on a terminal, json otherwise).
	Format string `json:"format,omitempty" toml:"format"`

	// File, when set, also writes logs to a size-rotated file.
	File       string `json:"file,omitempty" toml:"file"`
	MaxSizeMB  int    `json:"max_size_mb,omitempty" toml:"max_size_mb"`
	MaxBackups int    `json:"max_backups,omitempty" toml:"max_backups"`
}

// PublishConfig configures static export targets.
type PublishConfig struct {
	Dir      string `json:"dir,omitempty" toml:"dir"`
	Output   string `json:"output,omitempty" toml:"output"`
	S3Bucket string `json:"s3_bucket,omitempty" toml:"s3_bucket"`
	S3Prefix string `json:"s3_prefix,omitempty" toml:"s3_prefix"`
	S3Region string `json:"s3_region,omitempty" toml:"s3_region"`
}

// PageConfig configures the host page.
type PageConfig struct {
	Title  string `json:"title,omitempty" toml:"title"`
	CTAURL string `json:"cta_url,omitempty" toml:"cta_url"`
}

// New creates a Config with default values.
func New() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// LoadDir reads displaycard.json or displaycard.toml from dir. A directory
// without either file yields the defaults.
func LoadDir(dir string) (*Config, error) {
	for _, name := range []string{JSONFileName, TOMLFileName} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	return New(), nil
}

// LoadFile reads configuration from path. The format follows the file
// extension: .toml is TOML, anything else JSON.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.CodeConfigNotFound).
				WithDetail("No configuration at " + path)
		}
		return nil, errors.New(errors.CodeConfigParse).Wrap(err)
	}

	cfg := &Config{}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, cfg)
	} else {
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, errors.New(errors.CodeConfigParse).
			WithDetail("Failed to parse " + filepath.Base(path)).
			Wrap(err)
	}

	cfg.configPath = path
	cfg.applyDefaults()
	return cfg, nil
}

// Path returns the path the config was loaded from, if any.
func (c *Config) Path() string {
	return c.configPath
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.ShutdownTimeout == "" {
		c.Server.ShutdownTimeout = "10s"
	}

	if c.Catalog.BaseURL == "" {
		c.Catalog.BaseURL = DefaultCatalogURL
	}
	if c.Catalog.Limit == 0 {
		c.Catalog.Limit = DefaultCatalogLimit
	}
	if c.Catalog.Timeout == "" {
		c.Catalog.Timeout = "10s"
	}

	if c.Session.AttachTimeout == "" {
		c.Session.AttachTimeout = "30s"
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "auto"
	}
	if c.Log.MaxSizeMB == 0 {
		c.Log.MaxSizeMB = 10
	}
	if c.Log.MaxBackups == 0 {
		c.Log.MaxBackups = 3
	}

	if c.Publish.Output == "" {
		c.Publish.Output = DefaultOutput
	}

	if c.Page.Title == "" {
		c.Page.Title = DefaultTitle
	}
	if c.Page.CTAURL == "" {
		c.Page.CTAURL = DefaultCTAURL
	}
}

// Validate checks that every value is usable.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return invalid("server.port", "must be between 0 and 65535")
	}
	if c.Catalog.Limit < 1 {
		return invalid("catalog.limit", "must be at least 1")
	}
	if c.Session.MaxSessions < 0 {
		return invalid("session.max_sessions", "must not be negative")
	}
	for key, value := range map[string]string{
		"server.shutdown_timeout": c.Server.ShutdownTimeout,
		"catalog.timeout":         c.Catalog.Timeout,
		"session.attach_timeout":  c.Session.AttachTimeout,
	} {
		if d, err := time.ParseDuration(value); err != nil || d <= 0 {
			return invalid(key, fmt.Sprintf("%q is not a positive duration", value))
		}
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return invalid("log.level", fmt.Sprintf("unknown level %q", c.Log.Level))
	}
	switch strings.ToLower(c.Log.Format) {
	case "auto", "text", "json":
	default:
		return invalid("log.format", fmt.Sprintf("unknown format %q", c.Log.Format))
	}
	return nil
}

func invalid(key, reason string) error {
	return errors.New(errors.CodeConfigInvalid).
		WithDetail(key + " " + reason)
}

// Address returns host:port for the HTTP listener.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// ShutdownTimeout returns the parsed graceful shutdown timeout.
func (c *Config) ShutdownTimeout() time.Duration {
	return parseDuration(c.Server.ShutdownTimeout, 10*time.Second)
}

// CatalogTimeout returns the parsed catalog request timeout.
func (c *Config) CatalogTimeout() time.Duration {
	return parseDuration(c.Catalog.Timeout, 10*time.Second)
}

// AttachTimeout returns the parsed session attach timeout.
func (c *Config) AttachTimeout() time.Duration {
	return parseDuration(c.Session.AttachTimeout, 30*time.Second)
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
