// Package config loads service configuration from a YAML file, environment
// overrides and command-line flags. Flags win over env, env wins over file.
package config

import (
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config mirrors the YAML configuration file.
type Config struct {
	Server struct {
		Address string `yaml:"address"`
		Port    int    `yaml:"port"`
	} `yaml:"server"`
	Storage struct {
		DBPath string `yaml:"db_path"`
	} `yaml:"storage"`
	AI struct {
		Enabled        bool   `yaml:"enabled"`
		APIKey         string `yaml:"api_key"`
		BaseURL        string `yaml:"base_url"`
		Model          string `yaml:"model"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"ai"`
	Security struct {
		SigningKeys []string `yaml:"signing_keys"`
		RateLimit   struct {
			RPS   float64 `yaml:"rps"`
			Burst int     `yaml:"burst"`
		} `yaml:"rate_limit"`
	} `yaml:"security"`
	Retention struct {
		Enabled bool   `yaml:"enabled"`
		Cron    string `yaml:"cron"`
		Period  string `yaml:"period"`
	} `yaml:"retention"`
	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`
}

// Addr returns host:port for the HTTP server.
func (c *Config) Addr() string {
	addr := c.Server.Address
	if addr == "" {
		addr = "0.0.0.0"
	}
	p := c.Server.Port
	if p == 0 {
		p = 8080
	}
	return fmt.Sprintf("%s:%d", addr, p)
}

// AITimeout returns the configured AI call timeout with a 60s default.
func (c *Config) AITimeout() time.Duration {
	if c.AI.TimeoutSeconds > 0 {
		return time.Duration(c.AI.TimeoutSeconds) * time.Second
	}
	return 60 * time.Second
}

// Load reads and decodes the YAML config file. A missing file is not fatal
// to callers that treat the defaults plus env as sufficient; they get a
// zero Config and the wrapped error to decide.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// ParseCommandFlags defines and parses the command-line flags and returns
// their values along with a map of which flags were explicitly set.
func ParseCommandFlags() (addr string, dbPath string, cfgPath string, setFlags map[string]bool) {
	addrPtr := flag.String("addr", ":8080", "HTTP listen address")
	dbPtr := flag.String("db", "./.database", "Pebble DB path")
	cfgPtr := flag.String("config", "./config.yaml", "Path to config file")
	flag.Parse()
	setFlags = map[string]bool{}
	flag.Visit(func(f *flag.Flag) { setFlags[f.Name] = true })
	return *addrPtr, *dbPtr, *cfgPtr, setFlags
}

// LoadEnvOverrides applies environment overrides onto cfg and reports
// whether any env var was used.
func LoadEnvOverrides(cfg *Config) bool {
	envUsed := false

	if v := os.Getenv("CHATALYZER_ADDR"); v != "" {
		envUsed = true
		if h, p, err := net.SplitHostPort(v); err == nil {
			cfg.Server.Address = h
			if pi, err := strconv.Atoi(p); err == nil {
				cfg.Server.Port = pi
			}
		} else {
			cfg.Server.Address = v
		}
	}
	if v := os.Getenv("CHATALYZER_DB_PATH"); v != "" {
		envUsed = true
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("OPENROUTER_API_KEY"); v != "" {
		envUsed = true
		cfg.AI.APIKey = v
	}
	if v := os.Getenv("CHATALYZER_AI_MODEL"); v != "" {
		envUsed = true
		cfg.AI.Model = v
	}
	if v := os.Getenv("CHATALYZER_AI_BASE_URL"); v != "" {
		envUsed = true
		cfg.AI.BaseURL = v
	}
	if v := os.Getenv("CHATALYZER_SIGNING_KEYS"); v != "" {
		envUsed = true
		cfg.Security.SigningKeys = splitList(v)
	}
	if v := os.Getenv("CHATALYZER_LOG_LEVEL"); v != "" {
		envUsed = true
		cfg.Logging.Level = v
	}
	return envUsed
}

func splitList(v string) []string {
	var parts []string
	for _, p := range strings.Split(v, ",") {
		if s := strings.TrimSpace(p); s != "" {
			parts = append(parts, s)
		}
	}
	return parts
}
