package firestore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
)

// authState tracks the once-only token lifecycle of a client instance.
type authState int

const (
	// authPublic: no token was supplied; requests go out unauthenticated
	// and UID never resolves.
	authPublic authState = iota

	// authPending: a token was supplied but has not been verified yet.
	authPending

	// authVerified: the token round-tripped through the account-info
	// endpoint and the user id is resolved. Terminal.
	authVerified
)

// Client is a typed HTTP client for the Firestore REST surface: token
// verification plus single-document and single-collection CRUD. Instances
// are meant to be constructed per logical request; concurrent verification
// on a shared instance is not supported.
type Client struct {
	apiKey    string
	projectID string
	authBase  string
	docsBase  string

	http   Doer
	logger hclog.Logger

	state authState
	token string
	uid   string
}

// Doc is a decoded document: plain native data plus the id extracted from
// the trailing segment of the server-assigned resource name.
type Doc struct {
	ID         string         `json:"id"`
	Name       string         `json:"name,omitempty"`
	Data       map[string]any `json:"data"`
	CreateTime string         `json:"createTime,omitempty"`
	UpdateTime string         `json:"updateTime,omitempty"`
}

// NewClient constructs a client from an explicit Config. No network call is
// made; a supplied IDToken stays pending until VerifyToken or ValidateToken
// runs.
func NewClient(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid client config: %w", err)
	}

	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = hclog.NewNullLogger()
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	if cfg.AuthBaseURL == "" {
		cfg.AuthBaseURL = DefaultAuthBaseURL
	}
	if cfg.FirestoreBaseURL == "" {
		cfg.FirestoreBaseURL = DefaultFirestoreBaseURL
	}

	c := &Client{
		apiKey:    cfg.APIKey,
		projectID: cfg.ProjectID,
		authBase:  cfg.AuthBaseURL,
		docsBase:  cfg.FirestoreBaseURL,
		http:      cfg.HTTPClient,
		logger:    cfg.Logger.Named("firestore"),
		state:     authPublic,
	}
	if cfg.IDToken != "" {
		c.state = authPending
		c.token = cfg.IDToken
	}
	return c, nil
}

// VerifyToken posts the token to the account-info endpoint and, on success,
// stores it and resolves the user id. The resolved id is immutable: once a
// client is verified, further calls are no-ops.
func (c *Client) VerifyToken(ctx context.Context, token string) error {
	if c.state == authVerified {
		return nil
	}

	c.warnIfExpired(token)

	endpoint := buildAuthURL(c.authBase, "getAccountInfo", c.apiKey)
	res, err := c.do(ctx, http.MethodPost, endpoint, map[string]string{"idToken": token})
	if err != nil {
		return err
	}
	if !res.ok() {
		c.logger.Error("token verification failed",
			"status", res.Status,
			"status_text", res.StatusText,
			"response", strings.TrimSpace(string(res.Body)),
			"action", "verify_token",
			"request_id", res.RequestID,
		)
		return &TokenVerificationError{
			Status:     res.Status,
			StatusText: res.StatusText,
			Body:       string(res.Body),
		}
	}

	var info accountInfoResponse
	if err := json.Unmarshal(res.Body, &info); err != nil {
		return fmt.Errorf("failed to parse account info response: %w", err)
	}
	if len(info.Users) == 0 {
		return ErrNoUserFound
	}

	c.token = token
	c.uid = info.Users[0].LocalID
	c.state = authVerified
	return nil
}

// ValidateToken verifies the token supplied at construction. On a public
// client it succeeds trivially.
func (c *Client) ValidateToken(ctx context.Context) error {
	if c.state == authPublic {
		return nil
	}
	return c.VerifyToken(ctx, c.token)
}

// UID returns the resolved user id. It fails until a token has been
// verified on this instance.
func (c *Client) UID() (string, error) {
	if c.state != authVerified {
		return "", ErrTokenNotValidated
	}
	return c.uid, nil
}

// GetCollection fetches every document of a collection. A collection the
// server reports as empty decodes to an empty slice, not an error.
func (c *Client) GetCollection(ctx context.Context, name string) ([]Doc, error) {
	if err := ValidateCollectionName(name); err != nil {
		return nil, err
	}

	endpoint := buildDocumentsURL(c.docsBase, c.projectID, name)
	res, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	if !res.ok() {
		return nil, c.failOp("get_collection", name, res)
	}

	var list listDocumentsResponse
	if err := json.Unmarshal(res.Body, &list); err != nil {
		return nil, fmt.Errorf("failed to parse collection response: %w", err)
	}
	docs := make([]Doc, 0, len(list.Documents))
	for _, d := range list.Documents {
		docs = append(docs, toDoc(d))
	}
	return docs, nil
}

// GetDocument fetches a single document by its collection/id path.
func (c *Client) GetDocument(ctx context.Context, path string) (*Doc, error) {
	if err := ValidateDocumentPath(path); err != nil {
		return nil, err
	}

	endpoint := buildDocumentsURL(c.docsBase, c.projectID, path)
	res, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	if !res.ok() {
		return nil, c.failOp("get_document", path, res)
	}
	return parseDoc(res.Body)
}

// CreateDocument adds a document to a collection and returns the decoded
// result, including the server-generated id. Data already in wire form
// ({"fields": ...}) is sent as-is; anything else is encoded first.
func (c *Client) CreateDocument(ctx context.Context, collection string, data map[string]any) (*Doc, error) {
	if err := ValidateCollectionName(collection); err != nil {
		return nil, err
	}

	endpoint := buildDocumentsURL(c.docsBase, c.projectID, collection)
	res, err := c.do(ctx, http.MethodPost, endpoint, encodeOrPassThrough(data))
	if err != nil {
		return nil, err
	}
	if !res.ok() {
		return nil, c.failOp("create_document", collection, res)
	}
	return parseDoc(res.Body)
}

// UpdateDocument patches an existing document and returns the decoded
// result. The same encode-or-pass-through rule as CreateDocument applies.
func (c *Client) UpdateDocument(ctx context.Context, path string, data map[string]any) (*Doc, error) {
	if err := ValidateDocumentPath(path); err != nil {
		return nil, err
	}

	endpoint := buildDocumentsURL(c.docsBase, c.projectID, path)
	res, err := c.do(ctx, http.MethodPatch, endpoint, encodeOrPassThrough(data))
	if err != nil {
		return nil, err
	}
	if !res.ok() {
		return nil, c.failOp("update_document", path, res)
	}
	return parseDoc(res.Body)
}

// DeleteDocument removes a document.
func (c *Client) DeleteDocument(ctx context.Context, path string) error {
	if err := ValidateDocumentPath(path); err != nil {
		return err
	}

	endpoint := buildDocumentsURL(c.docsBase, c.projectID, path)
	res, err := c.do(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return err
	}
	if !res.ok() {
		return c.failOp("delete_document", path, res)
	}
	return nil
}

// httpResult is the raw outcome of a single API call.
type httpResult struct {
	Status     int
	StatusText string
	Body       []byte
	RequestID  string
}

func (r *httpResult) ok() bool { return r.Status >= 200 && r.Status < 300 }

// do executes one API call. Content-Type is always set; the bearer header
// rides along iff a token is held. No retries: a failed call surfaces
// immediately and retry policy belongs to the caller.
func (c *Client) do(ctx context.Context, method, rawURL string, payload any) (*httpResult, error) {
	requestID := uuid.NewString()

	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	c.logger.Debug("sending request",
		"method", method,
		"url", rawURL,
		"request_id", requestID,
	)

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("request transport failure",
			"error", err,
			"method", method,
			"request_id", requestID,
		)
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &httpResult{
		Status:     resp.StatusCode,
		StatusText: resp.Status,
		Body:       respBody,
		RequestID:  requestID,
	}, nil
}

// failOp logs a failed CRUD call with structured context and wraps it as an
// OperationError carrying the raw error body.
func (c *Client) failOp(action, target string, res *httpResult) error {
	c.logger.Error("firestore request failed",
		"error", strings.TrimSpace(string(res.Body)),
		"target", target,
		"action", action,
		"status", res.Status,
		"request_id", res.RequestID,
	)
	return &OperationError{
		Action: action,
		Target: target,
		Status: res.Status,
		Body:   string(res.Body),
	}
}

// warnIfExpired peeks at the token's registered claims without verifying the
// signature and flags tokens that cannot possibly pass verification. Opaque
// non-JWT tokens are left alone.
func (c *Client) warnIfExpired(token string) {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return
	}
	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		c.logger.Warn("id token is already expired",
			"expired_at", claims.ExpiresAt.Time,
		)
	}
}

// wireTypeKeys are the wrapper keys a pre-encoded payload may use. The
// server-only reference, geo-point and bytes types are accepted on
// pass-through even though this codec never produces them.
var wireTypeKeys = map[string]struct{}{
	"stringValue":    {},
	"integerValue":   {},
	"doubleValue":    {},
	"booleanValue":   {},
	"nullValue":      {},
	"timestampValue": {},
	"arrayValue":     {},
	"mapValue":       {},
	"referenceValue": {},
	"geoPointValue":  {},
	"bytesValue":     {},
}

// isWireEncoded reports whether data is already in wire form: a single
// top-level "fields" key whose values are all single-key wire-typed
// objects. This is the one structural check backing the dual input shape of
// create and update; nothing beyond it is inferred.
func isWireEncoded(data map[string]any) bool {
	if len(data) != 1 {
		return false
	}
	fields, ok := data["fields"].(map[string]any)
	if !ok {
		return false
	}
	for _, v := range fields {
		wrapper, ok := v.(map[string]any)
		if !ok || len(wrapper) != 1 {
			return false
		}
		for key := range wrapper {
			if _, known := wireTypeKeys[key]; !known {
				return false
			}
		}
	}
	return true
}

func encodeOrPassThrough(data map[string]any) any {
	if isWireEncoded(data) {
		return data
	}
	return EncodeDocument(data)
}

// parseDoc parses a single-document response body.
func parseDoc(body []byte) (*Doc, error) {
	var d Document
	if err := json.Unmarshal(body, &d); err != nil {
		return nil, fmt.Errorf("failed to parse document response: %w", err)
	}
	doc := toDoc(d)
	return &doc, nil
}

// toDoc decodes a wire document, extracting the id from the last segment of
// the resource name.
func toDoc(d Document) Doc {
	id := ""
	if d.Name != "" {
		segments := strings.Split(d.Name, "/")
		id = segments[len(segments)-1]
	}
	return Doc{
		ID:         id,
		Name:       d.Name,
		Data:       DecodeFields(d.Fields),
		CreateTime: d.CreateTime,
		UpdateTime: d.UpdateTime,
	}
}
