package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/vango-dev/displaycard/internal/errors"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "DISPLAYCARD_"

// LoadEnvFile loads variables from a .env file into the process
// environment. Variables already set win. A missing file is not an error.
func LoadEnvFile(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return errors.New(errors.CodeConfigEnv).
			WithDetail("Failed to load " + path).
			Wrap(err)
	}
	return nil
}

// ApplyEnv overrides fields from DISPLAYCARD_* environment variables.
func (c *Config) ApplyEnv() error {
	strs := map[string]*string{
		"HOST":             &c.Server.Host,
		"SHUTDOWN_TIMEOUT": &c.Server.ShutdownTimeout,
		"CATALOG_URL":      &c.Catalog.BaseURL,
		"CATALOG_TIMEOUT":  &c.Catalog.Timeout,
		"ATTACH_TIMEOUT":   &c.Session.AttachTimeout,
		"LOG_LEVEL":        &c.Log.Level,
		"LOG_FORMAT":       &c.Log.Format,
		"LOG_FILE":         &c.Log.File,
		"PUBLISH_DIR":      &c.Publish.Dir,
		"PUBLISH_OUTPUT":   &c.Publish.Output,
		"S3_BUCKET":        &c.Publish.S3Bucket,
		"S3_PREFIX":        &c.Publish.S3Prefix,
		"S3_REGION":        &c.Publish.S3Region,
		"PAGE_TITLE":       &c.Page.Title,
		"CTA_URL":          &c.Page.CTAURL,
	}
	for name, field := range strs {
		if v, ok := os.LookupEnv(EnvPrefix + name); ok {
			*field = v
		}
	}

	ints := map[string]*int{
		"PORT":          &c.Server.Port,
		"CATALOG_LIMIT": &c.Catalog.Limit,
		"MAX_SESSIONS":  &c.Session.MaxSessions,
	}
	for name, field := range ints {
		v, ok := os.LookupEnv(EnvPrefix + name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.New(errors.CodeConfigInvalid).
				WithDetailf("%s%s=%q is not an integer", EnvPrefix, name, v)
		}
		*field = n
	}
	return nil
}

// Load builds the effective configuration: the file at path (or the
// files LoadDir finds in dir when path is empty), then envFile, then the
// environment. The result is validated.
func Load(dir, path, envFile string) (*Config, error) {
	var (
		cfg *Config
		err error
	)
	if path != "" {
		cfg, err = LoadFile(path)
	} else {
		cfg, err = LoadDir(dir)
	}
	if err != nil {
		return nil, err
	}

	if envFile != "" {
		if err := LoadEnvFile(envFile); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
