package base

import (
	"errors"

	"github.com/cenkalti/backoff/v4"

	"github.com/litefire/litefire/pkg/firestore"
)

// Retry runs op up to retries+1 times with exponential backoff. The client
// itself never retries, so this is where the CLI's retry policy lives.
// Only server-side statuses are worth retrying; validation, auth and client
// errors are permanent.
func Retry(op func() error, retries int) error {
	if retries <= 0 {
		return op()
	}

	wrapped := func() error {
		err := op()
		if err == nil {
			return nil
		}
		var operr *firestore.OperationError
		if errors.As(err, &operr) && operr.Status >= 500 {
			return err
		}
		return backoff.Permanent(err)
	}

	return backoff.Retry(wrapped,
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(retries)))
}
