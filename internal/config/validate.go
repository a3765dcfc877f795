package config

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const minJWTSecretLen = 32

// Validate checks cross-field constraints that tag-level validation cannot express.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port out of range: %d", c.Server.Port))
	}

	if len(c.Auth.JWTSecret) < minJWTSecretLen {
		errs = append(errs, fmt.Errorf("auth.jwt_secret must be at least %d characters", minJWTSecretLen))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		errs = append(errs, errors.New("auth.access_token_ttl must be positive"))
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("auth.password_hash_cost out of range: %d", c.Auth.PasswordHashCost))
	}

	if c.Activity.DefaultPageSize < 1 {
		errs = append(errs, errors.New("activity.default_page_size must be positive"))
	}
	if c.Activity.MaxPageSize < c.Activity.DefaultPageSize {
		errs = append(errs, errors.New("activity.max_page_size must be >= default_page_size"))
	}
	if c.Activity.RecentCount < 1 {
		errs = append(errs, errors.New("activity.recent_count must be positive"))
	}

	if c.Database.MinConns > c.Database.MaxConns {
		errs = append(errs, errors.New("database.min_conns must be <= max_conns"))
	}

	return errors.Join(errs...)
}
