package errors

import (
	"net/http"
	"testing"

	"vault/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	err := ErrValidationFailed.WithDetails("password is required")

	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.False(t, errors.Is(err, ErrEmptyCharset))
	assert.Equal(t, "Input validation failed: password is required", err.Error())
	assert.Equal(t, "password is required", err.Details())
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
}

func TestBaseError_WrapMessage(t *testing.T) {
	wrapped := ErrEmptyCharset.WrapMessage("generate")

	var appErr AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, "EMPTY_CHARSET", appErr.ErrorCode())
	assert.Equal(t, "Please select at least one character type", appErr.Message())
	assert.True(t, errors.Is(wrapped, ErrEmptyCharset))
}

func TestAsType(t *testing.T) {
	wrapped := errors.Wrap(ErrQRCodeFailed, "encode")

	got, ok := errors.AsType[AppError](wrapped)
	assert.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, got.HTTPCode())
}
