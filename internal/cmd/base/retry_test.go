package base

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litefire/litefire/pkg/firestore"
)

func TestRetry_SucceedsWithoutRetries(t *testing.T) {
	calls := 0
	err := Retry(func() error {
		calls++
		return nil
	}, 3)

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestRetry_ClientErrorIsPermanent(t *testing.T) {
	calls := 0
	failure := &firestore.OperationError{Action: "get_document", Status: 403}

	err := Retry(func() error {
		calls++
		return failure
	}, 3)

	require.Error(t, err)
	assert.Equal(t, 1, calls)

	var operr *firestore.OperationError
	assert.ErrorAs(t, err, &operr)
}

func TestRetry_ValidationErrorIsPermanent(t *testing.T) {
	calls := 0
	err := Retry(func() error {
		calls++
		return firestore.ErrInvalidPathShape
	}, 3)

	require.Error(t, err)
	assert.ErrorIs(t, err, firestore.ErrInvalidPathShape)
	assert.Equal(t, 1, calls)
}

func TestRetry_ServerErrorIsRetried(t *testing.T) {
	calls := 0
	err := Retry(func() error {
		calls++
		if calls < 2 {
			return &firestore.OperationError{Action: "get_collection", Status: 503}
		}
		return nil
	}, 1)

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestRetry_ZeroRetriesRunsOnce(t *testing.T) {
	calls := 0
	err := Retry(func() error {
		calls++
		return errors.New("boom")
	}, 0)

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}
