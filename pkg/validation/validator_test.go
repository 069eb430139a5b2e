package validation

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createPayload struct {
	FirstName string `validate:"required"`
	Email     string `validate:"required,email"`
}

func TestMessage_ValidationErrors(t *testing.T) {
	v := validator.New()

	err := v.Struct(createPayload{})
	require.Error(t, err)
	msg := Message(err)
	assert.Contains(t, msg, "FirstName is required")
	assert.Contains(t, msg, "Email is required")

	err = v.Struct(createPayload{FirstName: "Ann", Email: "not-an-email"})
	require.Error(t, err)
	assert.Contains(t, Message(err), "must be a valid email")
}

func TestMessage_InvalidJSON(t *testing.T) {
	var dst createPayload
	err := json.Unmarshal([]byte("{"), &dst)
	require.Error(t, err)
	assert.Equal(t, "invalid json payload", Message(err))
}

func TestMessage_Fallbacks(t *testing.T) {
	assert.Empty(t, Message(nil))
	assert.Equal(t, "boom", Message(errors.New("boom")))
}
