package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// Config holds application configuration. Values come from defaults, an
// optional config file and NEXTROUND_* environment variables, in that
// order of increasing precedence.
type Config struct {
	DataDir  string         `mapstructure:"data_dir"`
	LogLevel string         `mapstructure:"log_level"`
	Upload   UploadConfig   `mapstructure:"upload"`
	Quota    QuotaConfig    `mapstructure:"quota"`
	Feed     FeedConfig     `mapstructure:"feed"`
	Analyzer AnalyzerConfig `mapstructure:"analyzer"`
}

// UploadConfig shapes the simulated ingestion pipeline.
type UploadConfig struct {
	TickInterval    time.Duration `mapstructure:"tick_interval"`
	ProgressStep    int           `mapstructure:"progress_step"`
	CompletionDelay time.Duration `mapstructure:"completion_delay"`
	MaxMediaBytes   int64         `mapstructure:"max_media_bytes"`
}

type QuotaConfig struct {
	FreeLimit int `mapstructure:"free_limit"`
}

type FeedConfig struct {
	PageSize int `mapstructure:"page_size"`
}

// AnalyzerConfig selects the analysis collaborator. "builtin" runs the
// in-process mock; any other name refers to a plugin manifest entry.
type AnalyzerConfig struct {
	Name    string        `mapstructure:"name"`
	Timeout time.Duration `mapstructure:"timeout"`
}

const (
	EnvPrefix     = "NEXTROUND"
	EnvConfigPath = "NEXTROUND_CONFIG"
)

// Load reads configuration. An explicit path (or $NEXTROUND_CONFIG) must
// exist; the default search location is optional.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(xdg.ConfigHome, "nextround"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	_ = v.Unmarshal(&c)
	return c
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("data_dir", defaultDataDir())
	v.SetDefault("log_level", "info")
	v.SetDefault("upload.tick_interval", 200*time.Millisecond)
	v.SetDefault("upload.progress_step", 10)
	v.SetDefault("upload.completion_delay", 2500*time.Millisecond)
	v.SetDefault("upload.max_media_bytes", int64(100<<20))
	v.SetDefault("quota.free_limit", 50)
	v.SetDefault("feed.page_size", 2)
	v.SetDefault("analyzer.name", "builtin")
	v.SetDefault("analyzer.timeout", 5*time.Second)
}

func defaultDataDir() string {
	return filepath.Join(xdg.DataHome, "nextround")
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DataDir) == "" {
		return fmt.Errorf("data dir is required")
	}
	if c.Upload.TickInterval <= 0 {
		return fmt.Errorf("upload.tick_interval must be positive")
	}
	if c.Upload.ProgressStep < 1 || c.Upload.ProgressStep > 100 {
		return fmt.Errorf("upload.progress_step must be within 1..100")
	}
	if c.Upload.CompletionDelay <= 0 {
		return fmt.Errorf("upload.completion_delay must be positive")
	}
	if c.Upload.MaxMediaBytes <= 0 {
		return fmt.Errorf("upload.max_media_bytes must be positive")
	}
	if c.Quota.FreeLimit < 0 {
		return fmt.Errorf("quota.free_limit must not be negative")
	}
	if c.Feed.PageSize < 1 {
		return fmt.Errorf("feed.page_size must be positive")
	}
	if strings.TrimSpace(c.Analyzer.Name) == "" {
		return fmt.Errorf("analyzer.name is required")
	}
	return nil
}

func (c Config) LogDir() string {
	return filepath.Join(c.DataDir, "logs")
}

func (c Config) AnalyzerDir() string {
	return filepath.Join(c.DataDir, "analyzers")
}
