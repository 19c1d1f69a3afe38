package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.AntiTheft.MinSwitches < 1 {
		return fmt.Errorf("anti_theft.min_switches must be >= 1 (got %d)", c.AntiTheft.MinSwitches)
	}
	if c.AntiTheft.HistoryFeedLimit < 1 {
		return fmt.Errorf("anti_theft.history_feed_limit must be >= 1 (got %d)", c.AntiTheft.HistoryFeedLimit)
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	return nil
}
