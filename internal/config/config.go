package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Review   ReviewConfig   `yaml:"review"`
}

// DatabaseConfig holds MongoDB connection settings.
type DatabaseConfig struct {
	URI            string        `yaml:"uri"             env:"DATABASE_URI"             env-default:"mongodb://localhost:27017"`
	Name           string        `yaml:"name"            env:"DATABASE_NAME"            env-default:"linguareader"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"DATABASE_CONNECT_TIMEOUT" env-default:"10s"`
	QueryTimeout   time.Duration `yaml:"query_timeout"   env:"DATABASE_QUERY_TIMEOUT"   env-default:"5s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// ReviewConfig holds review-engine defaults and limits.
type ReviewConfig struct {
	DefaultSessionSize int           `yaml:"default_session_size" env:"REVIEW_DEFAULT_SESSION_SIZE" env-default:"20"`
	MaxSessionSize     int           `yaml:"max_session_size"     env:"REVIEW_MAX_SESSION_SIZE"     env-default:"100"`
	DefaultDuration    time.Duration `yaml:"default_duration"     env:"REVIEW_DEFAULT_DURATION"     env-default:"15m"`
	MinDuration        time.Duration `yaml:"min_duration"         env:"REVIEW_MIN_DURATION"         env-default:"5m"`
	MaxDuration        time.Duration `yaml:"max_duration"         env:"REVIEW_MAX_DURATION"         env-default:"60m"`
	// EnforceDuration makes a deep-dive session fail answers after its
	// duration expires. The countdown is advisory-only by default.
	EnforceDuration bool `yaml:"enforce_duration" env:"REVIEW_ENFORCE_DURATION" env-default:"false"`
	// ShuffleSeed fixes the queue shuffle for reproducible sessions.
	// 0 seeds from the current time.
	ShuffleSeed int64 `yaml:"shuffle_seed" env:"REVIEW_SHUFFLE_SEED" env-default:"0"`
}
