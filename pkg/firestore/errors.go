package firestore

import (
	"errors"
	"fmt"
)

// Configuration errors, raised at construction time and never retried.
var (
	// ErrMissingConfig means the serialized FIREBASE_CONFIG value was absent.
	ErrMissingConfig = errors.New("FIREBASE_CONFIG is not set")

	// ErrMissingProjectID means FIREBASE_PROJECT_ID was absent.
	ErrMissingProjectID = errors.New("FIREBASE_PROJECT_ID is not set")

	// ErrInvalidConfigJSON means FIREBASE_CONFIG could not be parsed.
	ErrInvalidConfigJSON = errors.New("FIREBASE_CONFIG is not valid JSON")

	// ErrMissingAPIKey means the parsed FIREBASE_CONFIG had no apiKey field.
	ErrMissingAPIKey = errors.New("FIREBASE_CONFIG is missing apiKey")
)

// Validation errors, raised synchronously before any network call.
var (
	// ErrEmptyInput rejects empty or all-whitespace names and paths.
	ErrEmptyInput = errors.New("name must be a non-empty string")

	// ErrPathTraversal rejects ".." sequences and, in collection names, "/".
	ErrPathTraversal = errors.New("path traversal characters are not allowed")

	// ErrURLInjection rejects "?", "#" and "&".
	ErrURLInjection = errors.New("URL metacharacters are not allowed")

	// ErrControlCharacter rejects ASCII control characters.
	ErrControlCharacter = errors.New("control characters are not allowed")

	// ErrInvalidPathShape rejects document paths that do not split into an
	// even number of non-empty collection/document segments.
	ErrInvalidPathShape = errors.New("document path must alternate non-empty collection and document segments")
)

// Auth errors.
var (
	// ErrNoUserFound means token verification succeeded at the HTTP level but
	// resolved no account.
	ErrNoUserFound = errors.New("no user found for the supplied token")

	// ErrTokenNotValidated means the user id was read before any token was
	// verified on this client.
	ErrTokenNotValidated = errors.New("token has not been validated")
)

// TokenVerificationError is returned when the account-info endpoint answers
// with a non-OK status.
type TokenVerificationError struct {
	Status     int
	StatusText string
	Body       string
}

func (e *TokenVerificationError) Error() string {
	return fmt.Sprintf("token verification failed: %s", e.StatusText)
}

// OperationError is returned when a document or collection call answers with
// a non-OK status. Body carries the raw error body so callers can decide
// whether to retry.
type OperationError struct {
	Action string // e.g. "get_document"
	Target string // collection name or document path
	Status int
	Body   string
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s %q failed with status %d: %s", e.Action, e.Target, e.Status, e.Body)
}
