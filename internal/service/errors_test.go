package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noted-app/noted/internal/adapter"
)

func TestServerMessage_KeepsColonsInsideTheMessage(t *testing.T) {
	srvErr := &adapter.ServerError{Status: adapter.ErrBadRequest, Message: "Error: bad input"}
	err := fmt.Errorf("create note: %w", srvErr)

	assert.Equal(t, "Error: bad input", ServerMessage(err))
}

func TestServerMessage_PlainErrorReturnedWhole(t *testing.T) {
	err := errors.New("dial tcp: connection refused")

	assert.Equal(t, "dial tcp: connection refused", ServerMessage(err))
}

func TestServerMessage_EmptyServerMessageFallsBackToErrorText(t *testing.T) {
	srvErr := &adapter.ServerError{Status: adapter.ErrInternalServerError}

	assert.Equal(t, "internal server error", ServerMessage(srvErr))
}

func TestServerMessage_NilError(t *testing.T) {
	assert.Empty(t, ServerMessage(nil))
}
