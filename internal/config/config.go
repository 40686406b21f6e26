// Package config reads the runtime configuration.
//
// Values are read in this order, later sources overriding earlier ones:
// built-in defaults, the TOML file referenced by CONFIG_FILE and the
// environment. A .env file in the working directory is loaded into the
// environment first if it exists.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

var (
	ErrAPIURLMissing = errors.New("environment variable API_URL must be set")
	ErrAPIURLInvalid = errors.New("environment variable API_URL must be a valid URL")
)

type Config struct {
	Port             int      `toml:"port"`
	APIURL           string   `toml:"api_url"`
	DBFile           string   `toml:"db_file"`
	DBHost           string   `toml:"db_host"`
	DBUser           string   `toml:"db_user"`
	DBPassword       string   `toml:"db_password"`
	DBName           string   `toml:"db_name"`
	CORSAllowOrigins []string `toml:"cors_allow_origins"` // glob patterns
	EnablePprof      bool     `toml:"enable_pprof"`
	StaticDir        string   `toml:"static_dir"`
	GinMode          string   `toml:"gin_mode"`
	LogFormat        string   `toml:"log_format"`

	// BaseURL is the parsed APIURL
	BaseURL *url.URL `toml:"-"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Port:             8080,
		DBFile:           "data/budgettrack.db",
		CORSAllowOrigins: []string{"*"},
		GinMode:          "release",
	}
}

// Load reads the configuration.
func Load() (Config, error) {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("could not read .env file: %w", err)
	}

	cfg := Default()

	if path, ok := os.LookupEnv("CONFIG_FILE"); ok {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("could not read configuration file %s: %w", path, err)
		}
	}

	err = cfg.fromEnv()
	if err != nil {
		return Config{}, err
	}

	err = cfg.validate()
	if err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) fromEnv() error {
	lookup := map[string]*string{
		"API_URL":     &c.APIURL,
		"DB_FILE":     &c.DBFile,
		"DB_HOST":     &c.DBHost,
		"DB_USER":     &c.DBUser,
		"DB_PASSWORD": &c.DBPassword,
		"DB_NAME":     &c.DBName,
		"STATIC_DIR":  &c.StaticDir,
		"GIN_MODE":    &c.GinMode,
		"LOG_FORMAT":  &c.LogFormat,
	}

	for key, target := range lookup {
		if value, ok := os.LookupEnv(key); ok {
			*target = value
		}
	}

	if value, ok := os.LookupEnv("PORT"); ok {
		port, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("PORT must be a number, is %q", value)
		}
		c.Port = port
	}

	if value, ok := os.LookupEnv("CORS_ALLOW_ORIGINS"); ok {
		c.CORSAllowOrigins = strings.Fields(value)
	}

	if value, ok := os.LookupEnv("ENABLE_PPROF"); ok {
		c.EnablePprof = value == "true"
	}

	return nil
}

func (c *Config) validate() error {
	if c.APIURL == "" {
		return ErrAPIURLMissing
	}

	u, err := url.Parse(c.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ErrAPIURLInvalid
	}
	c.BaseURL = u

	return nil
}

// UsePostgres reports if PostgreSQL is configured.
func (c Config) UsePostgres() bool {
	return c.DBHost != ""
}

// PostgresDSN returns the connection string for PostgreSQL.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s", c.DBHost, c.DBUser, c.DBPassword, c.DBName)
}
