// Package firestore is a typed HTTP client for the Firestore REST API and
// the identity toolkit token-verification endpoint.
//
// It covers single-document and single-collection CRUD plus bearer-token
// verification: no queries, transactions, batched writes or listeners.
// Field values are converted between plain Go values and the API's
// typed-wrapper wire form by a total, recursive codec; collection names and
// document paths are validated against traversal and URL injection before
// any request is built.
//
// Construct a client per logical request, either explicitly:
//
//	client, err := firestore.NewClient(firestore.Config{
//		APIKey:    apiKey,
//		ProjectID: projectID,
//	})
//
// or from serialized server configuration, verifying a caller token up
// front:
//
//	client, err := firestore.NewClientFromEnv(ctx, os.Getenv, idToken,
//		firestore.WithLogger(logger))
package firestore
