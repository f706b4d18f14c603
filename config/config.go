package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"

	"webpconv/models"
)

// Config holds the engine settings. Everything is overridable through
// WEBPCONV_* environment variables; nothing is persisted by the engine.
type Config struct {
	OutputRoot string
	Policy     models.CollisionPolicy
	Quality    int
	Workers    int
	LogFile    string
	LogLevel   string
	Console    bool
}

// DefaultOutputRoot is a webp_converted folder on the user's desktop,
// falling back to the working directory when no home is known.
func DefaultOutputRoot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "webp_converted")
	}
	return filepath.Join(home, "Desktop", "webp_converted")
}

// Load reads settings from the environment with sane defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("WEBPCONV")
	v.AutomaticEnv()

	_ = v.BindEnv("output_root", "WEBPCONV_OUTPUT_ROOT")
	_ = v.BindEnv("collision_policy", "WEBPCONV_COLLISION_POLICY")
	_ = v.BindEnv("quality", "WEBPCONV_QUALITY")
	_ = v.BindEnv("workers", "WEBPCONV_WORKERS")
	_ = v.BindEnv("log_file", "WEBPCONV_LOG_FILE")
	_ = v.BindEnv("log_level", "WEBPCONV_LOG_LEVEL")
	_ = v.BindEnv("console", "WEBPCONV_CONSOLE")

	v.SetDefault("output_root", DefaultOutputRoot())
	v.SetDefault("collision_policy", "skip")
	v.SetDefault("quality", 80)
	v.SetDefault("workers", 0)
	v.SetDefault("log_file", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("console", true)

	policy, err := models.ParseCollisionPolicy(v.GetString("collision_policy"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		OutputRoot: v.GetString("output_root"),
		Policy:     policy,
		Quality:    v.GetInt("quality"),
		Workers:    v.GetInt("workers"),
		LogFile:    v.GetString("log_file"),
		LogLevel:   v.GetString("log_level"),
		Console:    v.GetBool("console"),
	}
	if cfg.Workers < 0 {
		cfg.Workers = 0
	}
	return cfg, nil
}

// WorkerCount resolves the configured worker count, defaulting to twice
// the CPU count since decode/encode is CPU-bound.
func WorkerCount(configured int) int {
	if configured > 0 {
		return configured
	}
	return runtime.NumCPU() * 2
}
