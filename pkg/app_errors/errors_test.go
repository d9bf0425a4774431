package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	apperrors "classroom-market/pkg/app_errors"

	"github.com/stretchr/testify/assert"
)

func TestSoldOutConcurrentIsSoldOut(t *testing.T) {
	assert.ErrorIs(t, apperrors.ErrSoldOutConcurrent, apperrors.ErrSoldOut)
	assert.NotErrorIs(t, apperrors.ErrSoldOut, apperrors.ErrSoldOutConcurrent)
}

func TestCompensationError(t *testing.T) {
	restoreErr := errors.New("restore stock: connection reset")
	cause := fmt.Errorf("%w: %w", apperrors.ErrRecordCreationFailed, errors.New("disk full"))
	err := fmt.Errorf("purchase: %w", &apperrors.CompensationError{
		Cause:  cause,
		Failed: []error{restoreErr},
	})

	assert.ErrorIs(t, err, apperrors.ErrCompensationFailed)
	assert.ErrorIs(t, err, apperrors.ErrRecordCreationFailed)
	assert.ErrorIs(t, err, restoreErr)

	var compErr *apperrors.CompensationError
	assert.True(t, errors.As(err, &compErr))
	assert.Len(t, compErr.Failed, 1)
	assert.Contains(t, err.Error(), "connection reset")
	assert.Contains(t, err.Error(), "disk full")
}
