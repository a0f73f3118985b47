// Package config loads the litefire CLI configuration from an HCL file with
// environment-variable fallbacks, so the same binary works from a checked-in
// litefire.hcl, from FIREBASE_* variables, or a mix.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2/hclsimple"

	"github.com/litefire/litefire/pkg/firestore"
)

// Config drives the litefire CLI.
//
// Example litefire.hcl:
//
//	api_key    = "AIza..."
//	project_id = "my-project"
//	timeout    = "30s"
type Config struct {
	APIKey    string `hcl:"api_key,optional"`
	ProjectID string `hcl:"project_id,optional"`
	IDToken   string `hcl:"id_token,optional"`
	Timeout   string `hcl:"timeout,optional"`
}

// Env var names that override file values.
const (
	EnvAPIKey  = "FIREBASE_API_KEY"
	EnvIDToken = "FIREBASE_ID_TOKEN"
	EnvTimeout = "LITEFIRE_TIMEOUT"
)

// Load reads the config file when a path is given, then applies environment
// overrides. A missing path is fine as long as the environment supplies the
// required values; FIREBASE_CONFIG / FIREBASE_PROJECT_ID fill any remaining
// gaps.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		if err := hclsimple.DecodeFile(path, nil, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
		}
	}
	cfg.applyEnv()
	return &cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvAPIKey); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv(firestore.EnvFirebaseProjectID); v != "" {
		c.ProjectID = v
	}
	if v := os.Getenv(EnvIDToken); v != "" {
		c.IDToken = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		c.Timeout = v
	}

	// Serialized web-app config can supply whatever is still missing.
	if c.APIKey == "" || c.ProjectID == "" {
		if sc, err := firestore.ParseServerEnv(os.Getenv); err == nil {
			if c.APIKey == "" {
				c.APIKey = sc.APIKey
			}
			if c.ProjectID == "" {
				c.ProjectID = sc.ProjectID
			}
		}
	}
}

// Validate reports every missing or malformed field, not just the first.
func (c *Config) Validate() error {
	var result *multierror.Error

	if c.APIKey == "" {
		result = multierror.Append(result, errors.New(
			"api_key is required (config file, FIREBASE_API_KEY or FIREBASE_CONFIG)"))
	}
	if c.ProjectID == "" {
		result = multierror.Append(result, errors.New(
			"project_id is required (config file or FIREBASE_PROJECT_ID)"))
	}
	if c.Timeout != "" {
		if _, err := time.ParseDuration(c.Timeout); err != nil {
			result = multierror.Append(result, fmt.Errorf("invalid timeout %q: %w", c.Timeout, err))
		}
	}

	return result.ErrorOrNil()
}

// TimeoutDuration returns the parsed timeout, zero when unset. Validate
// catches malformed values first.
func (c *Config) TimeoutDuration() time.Duration {
	if c.Timeout == "" {
		return 0
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0
	}
	return d
}
