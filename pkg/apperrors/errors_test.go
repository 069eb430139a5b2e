package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_OneCodePerKind(t *testing.T) {
	cases := []struct {
		kind Kind
		want int
	}{
		{Validation, http.StatusBadRequest},
		{NotFound, http.StatusNotFound},
		{IO, http.StatusBadRequest},
		{Delivery, http.StatusBadRequest},
		{Publish, http.StatusBadRequest},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Status(New(tc.kind, "boom")), tc.kind.String())
	}
}

func TestStatus_UnknownError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, Status(errors.New("plain")))
	assert.Equal(t, http.StatusInternalServerError, Status(nil))
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(IO, "nothing", nil))

	cause := errors.New("disk full")
	err := Wrap(IO, "failed to write avatar file", cause)
	require.Error(t, err)
	assert.Equal(t, IO, KindOf(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to write avatar file: disk full", err.Error())
}

func TestKindOf_ThroughWrapping(t *testing.T) {
	inner := New(NotFound, "user not found")
	outer := fmt.Errorf("loading profile: %w", inner)
	assert.Equal(t, NotFound, KindOf(outer))
	assert.Equal(t, http.StatusNotFound, Status(outer))
}

func TestIs_MatchesByKind(t *testing.T) {
	err := Wrap(Delivery, "failed to send welcome email", errors.New("tls handshake"))
	assert.ErrorIs(t, err, New(Delivery, ""))
	assert.NotErrorIs(t, err, New(Publish, ""))
}
