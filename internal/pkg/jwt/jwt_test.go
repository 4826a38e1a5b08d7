package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignParseRoundTrip(t *testing.T) {
	token, err := Sign("jazey", time.Hour)
	require.NoError(t, err)

	claims, err := Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "jazey", claims.Username)
}

func TestParseRejectsExpired(t *testing.T) {
	token, err := Sign("jazey", -time.Minute)
	require.NoError(t, err)

	_, err = Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse("not.a.token")
	assert.Error(t, err)
}
