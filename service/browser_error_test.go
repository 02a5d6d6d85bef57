package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBrowserError(t *testing.T) {
	inner := errors.New("underlying")
	e := NewBrowserError(ErrBadParameter, "invalid input", inner)
	require.NotNil(t, e)
	assert.Equal(t, ErrBadParameter, e.Code)
	assert.Equal(t, "invalid input", e.Message)
	assert.Same(t, inner, e.Inner)
}

func TestNewInternalServerError(t *testing.T) {
	e := NewInternalServerError("marshal failed", nil)
	require.NotNil(t, e)
	assert.Equal(t, ErrInternalServerError, e.Code)
	assert.Equal(t, "marshal failed", e.Message)
}

func TestNewBadParameterError(t *testing.T) {
	e := NewBadParameterError("invalid body", nil)
	require.NotNil(t, e)
	assert.Equal(t, ErrBadParameter, e.Code)
	assert.Equal(t, "invalid body", e.Message)
}

func TestNewStoreUnavailableError(t *testing.T) {
	e := NewStoreUnavailableError("redis get keys error", context.DeadlineExceeded)
	require.NotNil(t, e)
	assert.Equal(t, ErrStoreUnavailable, e.Code)
	assert.True(t, IsStoreUnavailableError(e))
	assert.ErrorIs(t, e, context.DeadlineExceeded)
	assert.Equal(t, "store_unavailable redis get keys error: context deadline exceeded", e.Error())
}

func TestNewStoreUnavailableError_KeepsExistingCode(t *testing.T) {
	inner := NewBadParameterError("ip is required", nil)
	e := NewStoreUnavailableError("redis write key error", fmt.Errorf("wrapped: %w", inner))
	assert.Same(t, inner, e)
	assert.True(t, IsBadParameterError(e))
}

func TestToBrowserError_WithBrowserError(t *testing.T) {
	e := NewBadParameterError("bad", nil)
	got := ToBrowserError(e)
	require.NotNil(t, got)
	assert.Same(t, e, got)
}

func TestToBrowserError_WithOrdinaryError(t *testing.T) {
	e := errors.New("plain")
	got := ToBrowserError(e)
	assert.Nil(t, got)
}

func TestToBrowserErrorCode(t *testing.T) {
	assert.Equal(t, ErrEntityNotFound, ToBrowserErrorCode(NewEntityNotFoundError("gone", nil)))
	assert.Equal(t, "", ToBrowserErrorCode(errors.New("plain")))
}

func TestIsEntityNotFoundError(t *testing.T) {
	e := NewEntityNotFoundError("gone", nil)
	assert.True(t, IsEntityNotFoundError(e))
	assert.False(t, IsStoreUnavailableError(e))
}
