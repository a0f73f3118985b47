package firestore

import (
	"fmt"
	"net/url"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Default API endpoints. Overridable through Config for tests and emulators.
const (
	DefaultAuthBaseURL      = "https://www.googleapis.com/identitytoolkit/v3/relyingparty"
	DefaultFirestoreBaseURL = "https://firestore.googleapis.com/v1"
)

// ValidateCollectionName rejects collection names that could traverse or
// rewrite the request URL. The checks run in a fixed order so each failure
// mode surfaces its own error: empty input, path traversal, URL injection,
// control characters.
func ValidateCollectionName(name string) error {
	return validation.Validate(name,
		validation.By(ruleNonEmpty),
		validation.By(ruleNoTraversal(true)),
		validation.By(ruleNoInjection),
		validation.By(ruleNoControl),
	)
}

// ValidateDocumentPath applies the same character checks as
// ValidateCollectionName, except that "/" is the required segment separator.
// The path must split into an even number (at least two) of non-empty
// segments, alternating collection and document ids.
func ValidateDocumentPath(path string) error {
	return validation.Validate(path,
		validation.By(ruleNonEmpty),
		validation.By(ruleNoTraversal(false)),
		validation.By(ruleNoInjection),
		validation.By(ruleNoControl),
		validation.By(rulePathShape),
	)
}

func ruleNonEmpty(value any) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return ErrEmptyInput
	}
	return nil
}

func ruleNoTraversal(rejectSlash bool) validation.RuleFunc {
	return func(value any) error {
		s, _ := value.(string)
		if strings.Contains(s, "..") {
			return ErrPathTraversal
		}
		if rejectSlash && strings.Contains(s, "/") {
			return ErrPathTraversal
		}
		return nil
	}
}

func ruleNoInjection(value any) error {
	s, _ := value.(string)
	if strings.ContainsAny(s, "?#&") {
		return ErrURLInjection
	}
	return nil
}

func ruleNoControl(value any) error {
	s, _ := value.(string)
	for _, r := range s {
		if r < 0x20 || r == 0x7f {
			return ErrControlCharacter
		}
	}
	return nil
}

func rulePathShape(value any) error {
	s, _ := value.(string)
	segments := strings.Split(s, "/")
	if len(segments) < 2 || len(segments)%2 != 0 {
		return ErrInvalidPathShape
	}
	for _, seg := range segments {
		if seg == "" {
			return ErrInvalidPathShape
		}
	}
	return nil
}

// buildAuthURL composes an identity toolkit endpoint URL. The API key rides
// as a query parameter; document endpoints never carry it.
func buildAuthURL(base, endpoint, apiKey string) string {
	return fmt.Sprintf("%s/%s?key=%s", base, endpoint, url.QueryEscape(apiKey))
}

// buildDocumentsURL composes a documents endpoint URL for a collection name
// or a document path, percent-encoding the project id and every path
// segment.
func buildDocumentsURL(base, projectID, path string) string {
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return fmt.Sprintf("%s/projects/%s/databases/(default)/documents/%s",
		base, url.PathEscape(projectID), strings.Join(segments, "/"))
}
