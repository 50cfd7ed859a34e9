package model_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/certbridge/certbridge/pkg/certbridge/model"
	"github.com/stretchr/testify/assert"
)

func TestErrToHttpStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, model.ErrToHttpStatus(model.ErrInvalidParameter))
	assert.Equal(t, http.StatusNotFound, model.ErrToHttpStatus(model.ErrProviderNotFound))
	assert.Equal(t, http.StatusNotFound, model.ErrToHttpStatus(model.ErrOrderNotFound))
	assert.Equal(t, http.StatusConflict, model.ErrToHttpStatus(model.ErrInvalidStatusTransition))
	assert.Equal(t, http.StatusConflict, model.ErrToHttpStatus(model.ErrLockHeld))
	assert.Equal(t, http.StatusNotImplemented, model.ErrToHttpStatus(model.ErrUnsupportedOperation))
	assert.Equal(t, http.StatusBadGateway, model.ErrToHttpStatus(model.ErrProviderUnreachable))
	assert.Equal(t, http.StatusInternalServerError, model.ErrToHttpStatus(errors.New("boom")))
}

func TestErrToHttpStatusWrappedError(t *testing.T) {
	wrapped := fmt.Errorf("Bridge::UpdateStatus(): fail to transition: %w", model.ErrInvalidStatusTransition)
	assert.Equal(t, http.StatusConflict, model.ErrToHttpStatus(wrapped))
}

func TestUnsupportedOperationError(t *testing.T) {
	err := model.UnsupportedOperationError{Provider: "nicsrs", Operation: "dcv emails"}

	assert.EqualError(t, err, "provider nicsrs does not support dcv emails")
	assert.True(t, errors.Is(err, model.ErrUnsupportedOperation))
	assert.True(t, errors.Is(err, model.ErrProviderError))
	assert.Equal(t, http.StatusNotImplemented, model.ErrToHttpStatus(err))
}
