package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHttpError_StatusDefaultsTo500(t *testing.T) {
	err := &HttpError{Message: "boom"}
	assert.Equal(t, http.StatusInternalServerError, err.Status())
	assert.Equal(t, http.StatusNotFound, NotFound("x").Status())
	assert.Equal(t, http.StatusUnprocessableEntity, Unprocessable("x").Status())
	assert.Equal(t, http.StatusUnauthorized, Unauthorized("x").Status())
}

func TestFrom(t *testing.T) {
	nf := NotFound("Could not find place.")
	wrapped := fmt.Errorf("handler: %w", nf)
	assert.Same(t, nf, From(wrapped))

	plain := errors.New("connection refused")
	got := From(plain)
	assert.Equal(t, http.StatusInternalServerError, got.Status())
	assert.Equal(t, MsgUnknown, got.Message)
	assert.ErrorIs(t, got, plain)
}

func TestInternal_ErrorIncludesCause(t *testing.T) {
	cause := errors.New("deadlock")
	err := Internal("Creating place failed, please try again.", cause)
	assert.Equal(t, "Creating place failed, please try again.: deadlock", err.Error())
	assert.ErrorIs(t, err, cause)
}
