package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const ENV_PREFIX = "ORDERING"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const CATALOG_RESOURCE = "catalog.json"

// Config holds the full application configuration.
type Config struct {
	Env      string         `mapstructure:"env"`
	Server   ServerConfig   `mapstructure:"server"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Orders   OrdersConfig   `mapstructure:"orders"`
	Location LocationConfig `mapstructure:"location"`
	Ranking  RankingConfig  `mapstructure:"ranking"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// HTTPConfig configures outbound HTTP clients.
type HTTPConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// RedisConfig configures the catalog store.
type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	// InMemory swaps Redis for a process-local store.
	InMemory bool `mapstructure:"in_memory"`
}

// CatalogConfig configures the upstream restaurant catalog and its refresh.
type CatalogConfig struct {
	BaseURL         string `mapstructure:"base_url"`
	// FixturePath defaults to the bundled resources/catalog.json.
	FixturePath     string `mapstructure:"fixture_path"`
	RefreshSchedule string `mapstructure:"refresh_schedule"`
}

// OrdersConfig configures the order service.
type OrdersConfig struct {
	BaseURL      string        `mapstructure:"base_url"`
	PollInterval time.Duration `mapstructure:"poll_interval"`
}

// LocationConfig is the fallback user coordinate when a request carries none.
type LocationConfig struct {
	Enabled   bool    `mapstructure:"enabled"`
	Latitude  float64 `mapstructure:"latitude"`
	Longitude float64 `mapstructure:"longitude"`
}

// RankingConfig configures the initial sort mode.
type RankingConfig struct {
	DefaultSort string `mapstructure:"default_sort"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// IsProd reports whether the real upstream services should be used.
func (c *Config) IsProd() bool {
	return c.Env == "prod"
}

// Load reads configuration from an optional file and the environment. An empty
// path looks for config.yaml in the working directory.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(ENV_PREFIX)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "dev")
	v.SetDefault("server.port", 8080)
	v.SetDefault("http.timeout", 10*time.Second)
	v.SetDefault("redis.address", "redis:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.in_memory", false)
	v.SetDefault("catalog.base_url", "http://127.0.0.1:5000")
	v.SetDefault("catalog.fixture_path", "")
	v.SetDefault("catalog.refresh_schedule", "@every 60m")
	v.SetDefault("orders.base_url", "http://127.0.0.1:5000")
	v.SetDefault("orders.poll_interval", 5*time.Second)
	v.SetDefault("location.enabled", true)
	v.SetDefault("location.latitude", 32.879765)
	v.SetDefault("location.longitude", -117.236202)
	v.SetDefault("ranking.default_sort", "Convenience")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

// GetResourcePath returns the path of a bundled resource file.
func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}

// ResolvePath anchors a relative path at BaseDir.
func ResolvePath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(BaseDir(), path)
}
