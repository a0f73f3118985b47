package firestore

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-hclog"
)

// Env var names consumed by ParseServerEnv.
const (
	EnvFirebaseConfig    = "FIREBASE_CONFIG"
	EnvFirebaseProjectID = "FIREBASE_PROJECT_ID"
)

// Settings looks up named configuration values, typically environment
// variables. os.Getenv satisfies it.
type Settings func(key string) string

// Doer executes a single HTTP request. *http.Client satisfies it; tests
// inject their own transport.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config holds everything needed to construct a Client. APIKey and ProjectID
// are required; the rest defaults sensibly.
type Config struct {
	// APIKey is the web API key attached to auth endpoint calls.
	APIKey string

	// ProjectID identifies the database.
	ProjectID string

	// IDToken is an optional bearer credential. It is stored unverified;
	// call VerifyToken or ValidateToken (or construct through
	// NewClientFromEnv) to resolve the user id.
	IDToken string

	// Timeout applies when the default HTTP client is used. Default: 30s.
	Timeout time.Duration

	// Logger receives structured records for every failed call. Default:
	// a null logger.
	Logger hclog.Logger

	// HTTPClient overrides the transport. Default: *http.Client with
	// Timeout.
	HTTPClient Doer

	// AuthBaseURL and FirestoreBaseURL override the API endpoints, for
	// tests and emulators.
	AuthBaseURL      string
	FirestoreBaseURL string
}

// Validate checks that the required fields are present. Both missing fields
// are reported together.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.APIKey, validation.Required.Error("api key is required")),
		validation.Field(&c.ProjectID, validation.Required.Error("project id is required")),
	)
}

// firebaseConfig is the parsed shape of the serialized FIREBASE_CONFIG
// value. Only apiKey matters here; the rest of the web-app config rides
// along untouched.
type firebaseConfig struct {
	APIKey string `json:"apiKey"`
}

// ParseServerEnv reads FIREBASE_CONFIG and FIREBASE_PROJECT_ID through the
// supplied lookup and returns a Config. Failure order is stable: missing
// config, missing project id, unparseable config, missing api key.
func ParseServerEnv(env Settings) (Config, error) {
	raw := env(EnvFirebaseConfig)
	if raw == "" {
		return Config{}, ErrMissingConfig
	}

	projectID := env(EnvFirebaseProjectID)
	if projectID == "" {
		return Config{}, ErrMissingProjectID
	}

	var fc firebaseConfig
	if err := json.Unmarshal([]byte(raw), &fc); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfigJSON, err)
	}

	if fc.APIKey == "" {
		return Config{}, ErrMissingAPIKey
	}

	return Config{APIKey: fc.APIKey, ProjectID: projectID}, nil
}
