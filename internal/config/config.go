package config

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// ProjectConfig holds project-level settings loaded from dyadcensus.yml.
type ProjectConfig struct {
	LogLevel       string `yaml:"logLevel,omitempty"`
	Workers        int    `yaml:"workers,omitempty"`
	Format         string `yaml:"format,omitempty"`
	Index          string `yaml:"index,omitempty"`     // auto, sparse or dense
	StorePath      string `yaml:"storePath,omitempty"` // KuzuDB directory for saved graphs
	CacheSize      int    `yaml:"cacheSize,omitempty"`
	PrintMaxLayers int    `yaml:"printMaxLayers,omitempty"`
	PrintMaxEdges  int    `yaml:"printMaxEdges,omitempty"`
}

// Defaults applied by Load for unset fields.
const (
	DefaultLogLevel  = "info"
	DefaultFormat    = "table"
	DefaultIndex     = "auto"
	DefaultCacheSize = 256
)

// Load reads dyadcensus.yml or dyadcensus.yaml from dir. A .env file in dir
// is loaded first (best effort) and DYADCENSUS_* variables override the file.
// Returns a defaulted config (not an error) if no config file exists.
func Load(dir string) (*ProjectConfig, error) {
	_ = godotenv.Load(filepath.Join(dir, ".env"))

	var cfg ProjectConfig
	for _, name := range []string{"dyadcensus.yml", "dyadcensus.yaml"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
		break
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *ProjectConfig) applyEnv() {
	if v := strings.TrimSpace(os.Getenv("DYADCENSUS_LOG_LEVEL")); v != "" {
		c.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv("DYADCENSUS_WORKERS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Workers = n
		}
	}
	if v := strings.TrimSpace(os.Getenv("DYADCENSUS_FORMAT")); v != "" {
		c.Format = v
	}
	if v := strings.TrimSpace(os.Getenv("DYADCENSUS_STORE_PATH")); v != "" {
		c.StorePath = v
	}
}

func (c *ProjectConfig) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.Format == "" {
		c.Format = DefaultFormat
	}
	if c.Index == "" {
		c.Index = DefaultIndex
	}
	if c.CacheSize <= 0 {
		c.CacheSize = DefaultCacheSize
	}
}

// NewLogger creates a console logger at the given level, falling back to
// info when the level does not parse.
func NewLogger(level string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
	}).Level(lvl).With().Timestamp().Str("service", "dyadcensus").Logger()
}
