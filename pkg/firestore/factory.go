package firestore

import (
	"context"
	"time"

	"github.com/hashicorp/go-hclog"
)

// Option adjusts the optional parts of a Config during bootstrap.
type Option func(*Config)

// WithLogger injects the structured logger.
func WithLogger(logger hclog.Logger) Option {
	return func(cfg *Config) { cfg.Logger = logger }
}

// WithHTTPClient injects the HTTP transport.
func WithHTTPClient(doer Doer) Option {
	return func(cfg *Config) { cfg.HTTPClient = doer }
}

// WithTimeout sets the default transport timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(cfg *Config) { cfg.Timeout = timeout }
}

// WithEndpoints overrides the API base URLs, for tests and emulators.
func WithEndpoints(authBaseURL, firestoreBaseURL string) Option {
	return func(cfg *Config) {
		cfg.AuthBaseURL = authBaseURL
		cfg.FirestoreBaseURL = firestoreBaseURL
	}
}

// NewClientFromEnv bootstraps a client from serialized server configuration:
// FIREBASE_CONFIG and FIREBASE_PROJECT_ID read through the supplied lookup.
// Configuration failures are construction-time errors, distinct from the
// request errors the returned client produces later. When idToken is
// non-empty it is verified before the client is returned, so a client
// obtained here is either public or already resolved.
func NewClientFromEnv(ctx context.Context, env Settings, idToken string, opts ...Option) (*Client, error) {
	cfg, err := ParseServerEnv(env)
	if err != nil {
		return nil, err
	}

	cfg.IDToken = idToken
	for _, opt := range opts {
		opt(&cfg)
	}

	client, err := NewClient(cfg)
	if err != nil {
		return nil, err
	}

	if idToken != "" {
		if err := client.VerifyToken(ctx, idToken); err != nil {
			return nil, err
		}
	}
	return client, nil
}
