package firestore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCollectionName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"plain name", "books", nil},
		{"name with dash", "user-profiles", nil},
		{"empty", "", ErrEmptyInput},
		{"whitespace only", "   ", ErrEmptyInput},
		{"parent traversal", "../admin", ErrPathTraversal},
		{"embedded traversal", "books/../admin", ErrPathTraversal},
		{"slash", "books/book1", ErrPathTraversal},
		{"query injection", "books?key=steal", ErrURLInjection},
		{"fragment injection", "books#frag", ErrURLInjection},
		{"ampersand injection", "books&x=1", ErrURLInjection},
		{"control character", "books\x00", ErrControlCharacter},
		{"newline", "books\n", ErrControlCharacter},
		{"delete character", "books\x7f", ErrControlCharacter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCollectionName(tt.input)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateDocumentPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"two segments", "books/book123", nil},
		{"subcollection", "books/book123/reviews/r1", nil},
		{"empty", "", ErrEmptyInput},
		{"single segment", "books", ErrInvalidPathShape},
		{"odd segments", "books/book1/reviews", ErrInvalidPathShape},
		{"empty segment", "books//b1", ErrInvalidPathShape},
		{"trailing slash", "books/b1/", ErrInvalidPathShape},
		{"traversal", "books/../users/u1", ErrPathTraversal},
		{"query injection", "books/b1?x=1", ErrURLInjection},
		{"control character", "books/b\x01", ErrControlCharacter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDocumentPath(tt.input)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBuildAuthURL(t *testing.T) {
	got := buildAuthURL(DefaultAuthBaseURL, "getAccountInfo", "key with space")

	assert.Equal(t,
		"https://www.googleapis.com/identitytoolkit/v3/relyingparty/getAccountInfo?key=key+with+space",
		got)
}

func TestBuildDocumentsURL(t *testing.T) {
	got := buildDocumentsURL(DefaultFirestoreBaseURL, "my-project", "books/book 1")

	require.Equal(t,
		"https://firestore.googleapis.com/v1/projects/my-project/databases/(default)/documents/books/book%201",
		got)

	// The api key never appears on document endpoints.
	assert.NotContains(t, got, "key=")
}
