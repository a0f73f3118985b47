package firestore

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientFromEnv_ConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr error
	}{
		{"missing config", map[string]string{}, ErrMissingConfig},
		{
			"missing project id",
			map[string]string{EnvFirebaseConfig: `{"apiKey":"k"}`},
			ErrMissingProjectID,
		},
		{
			"missing api key",
			map[string]string{
				EnvFirebaseConfig:    `{}`,
				EnvFirebaseProjectID: "p",
			},
			ErrMissingAPIKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClientFromEnv(context.Background(), envFrom(tt.env), "")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewClientFromEnv_PublicClient(t *testing.T) {
	env := envFrom(map[string]string{
		EnvFirebaseConfig:    `{"apiKey":"k"}`,
		EnvFirebaseProjectID: "p",
	})

	// No token: construction must not touch the network.
	client, err := NewClientFromEnv(context.Background(), env, "",
		WithHTTPClient(forbiddenTransport(t)))
	require.NoError(t, err)

	_, err = client.UID()
	assert.ErrorIs(t, err, ErrTokenNotValidated)
}

func TestNewClientFromEnv_VerifiesSuppliedToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/getAccountInfo", r.URL.Path)
		_, _ = w.Write([]byte(`{"users": [{"localId": "factory-uid"}]}`))
	}))
	defer server.Close()

	env := envFrom(map[string]string{
		EnvFirebaseConfig:    `{"apiKey":"k"}`,
		EnvFirebaseProjectID: "p",
	})

	client, err := NewClientFromEnv(context.Background(), env, "id-token",
		WithEndpoints(server.URL, server.URL))
	require.NoError(t, err)

	uid, err := client.UID()
	require.NoError(t, err)
	assert.Equal(t, "factory-uid", uid)
}

func TestNewClientFromEnv_VerificationFailurePropagates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": {"message": "TOKEN_EXPIRED"}}`))
	}))
	defer server.Close()

	env := envFrom(map[string]string{
		EnvFirebaseConfig:    `{"apiKey":"k"}`,
		EnvFirebaseProjectID: "p",
	})

	_, err := NewClientFromEnv(context.Background(), env, "stale-token",
		WithEndpoints(server.URL, server.URL))
	require.Error(t, err)

	var verr *TokenVerificationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, http.StatusUnauthorized, verr.Status)
}
