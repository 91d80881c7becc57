package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndParseSessionID(t *testing.T) {
	secret := []byte("test-secret")

	token, err := SignSessionID("sid-123", secret, time.Hour)
	require.NoError(t, err)

	got, err := ParseSessionID(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "sid-123", got)
}

func TestParseSessionIDRejectsWrongSecret(t *testing.T) {
	token, err := SignSessionID("sid-123", []byte("secret-a"), time.Hour)
	require.NoError(t, err)

	_, err = ParseSessionID(token, []byte("secret-b"))
	assert.Error(t, err)
}

func TestParseSessionIDRejectsGarbage(t *testing.T) {
	_, err := ParseSessionID("not-a-token", []byte("secret"))
	assert.Error(t, err)
}

func TestParseSessionIDRejectsExpired(t *testing.T) {
	token, err := SignSessionID("sid-123", []byte("secret"), -time.Minute)
	require.NoError(t, err)

	_, err = ParseSessionID(token, []byte("secret"))
	assert.Error(t, err)
}
