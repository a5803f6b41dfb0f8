package constants

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetSessionTTL(t *testing.T) {
	t.Setenv("SESSION_TTL", "")
	assert.Equal(t, 24*time.Hour, GetSessionTTL())

	t.Setenv("SESSION_TTL", "90m")
	assert.Equal(t, 90*time.Minute, GetSessionTTL())

	t.Setenv("SESSION_TTL", "0")
	assert.Equal(t, time.Duration(0), GetSessionTTL())

	t.Setenv("SESSION_TTL", "soon")
	assert.Equal(t, 24*time.Hour, GetSessionTTL())
}
