package firestore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envFrom(m map[string]string) Settings {
	return func(key string) string { return m[key] }
}

func TestParseServerEnv(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr error
	}{
		{
			name:    "missing config",
			env:     map[string]string{EnvFirebaseProjectID: "p"},
			wantErr: ErrMissingConfig,
		},
		{
			name: "missing config reported before missing project id",
			env:  map[string]string{},
			// Both are absent; the serialized config is checked first.
			wantErr: ErrMissingConfig,
		},
		{
			name:    "missing project id",
			env:     map[string]string{EnvFirebaseConfig: `{"apiKey":"k"}`},
			wantErr: ErrMissingProjectID,
		},
		{
			name: "invalid json",
			env: map[string]string{
				EnvFirebaseConfig:    `{not json`,
				EnvFirebaseProjectID: "p",
			},
			wantErr: ErrInvalidConfigJSON,
		},
		{
			name: "missing api key",
			env: map[string]string{
				EnvFirebaseConfig:    `{"authDomain":"x"}`,
				EnvFirebaseProjectID: "p",
			},
			wantErr: ErrMissingAPIKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseServerEnv(envFrom(tt.env))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseServerEnv_Valid(t *testing.T) {
	cfg, err := ParseServerEnv(envFrom(map[string]string{
		EnvFirebaseConfig:    `{"apiKey":"k","authDomain":"x.firebaseapp.com"}`,
		EnvFirebaseProjectID: "my-project",
	}))

	require.NoError(t, err)
	assert.Equal(t, "k", cfg.APIKey)
	assert.Equal(t, "my-project", cfg.ProjectID)
}

func TestConfigValidate(t *testing.T) {
	err := Config{APIKey: "k"}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project id is required")

	err = Config{ProjectID: "p"}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api key is required")

	// Both missing fields are reported together.
	err = Config{}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api key is required")
	assert.Contains(t, err.Error(), "project id is required")

	assert.NoError(t, Config{APIKey: "k", ProjectID: "p"}.Validate())
}
