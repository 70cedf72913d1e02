package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Database.URI == "" {
		return fmt.Errorf("database.uri must not be empty")
	}
	if c.Database.Name == "" {
		return fmt.Errorf("database.name must not be empty")
	}

	if err := c.Review.validate(); err != nil {
		return fmt.Errorf("review: %w", err)
	}

	return nil
}

func (r *ReviewConfig) validate() error {
	if r.DefaultSessionSize <= 0 {
		return fmt.Errorf("default_session_size must be > 0 (got %d)", r.DefaultSessionSize)
	}
	if r.MaxSessionSize < r.DefaultSessionSize {
		return fmt.Errorf("max_session_size must be >= default_session_size (got %d < %d)",
			r.MaxSessionSize, r.DefaultSessionSize)
	}
	if r.MinDuration <= 0 {
		return fmt.Errorf("min_duration must be > 0 (got %v)", r.MinDuration)
	}
	if r.MaxDuration < r.MinDuration {
		return fmt.Errorf("max_duration must be >= min_duration (got %v < %v)",
			r.MaxDuration, r.MinDuration)
	}
	if r.DefaultDuration < r.MinDuration || r.DefaultDuration > r.MaxDuration {
		return fmt.Errorf("default_duration must be within [%v, %v] (got %v)",
			r.MinDuration, r.MaxDuration, r.DefaultDuration)
	}
	return nil
}
