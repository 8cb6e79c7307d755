package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvString(t *testing.T) {
	t.Setenv("NEWSFEED_TEST_STR", "hello")
	assert.Equal(t, "hello", GetEnvString("NEWSFEED_TEST_STR", "fallback"))
	assert.Equal(t, "fallback", GetEnvString("NEWSFEED_TEST_STR_MISSING", "fallback"))
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("NEWSFEED_TEST_INT", "42")
	assert.Equal(t, 42, GetEnvInt("NEWSFEED_TEST_INT", 7))

	t.Setenv("NEWSFEED_TEST_INT", "not-a-number")
	assert.Equal(t, 7, GetEnvInt("NEWSFEED_TEST_INT", 7))

	assert.Equal(t, 7, GetEnvInt("NEWSFEED_TEST_INT_MISSING", 7))
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("NEWSFEED_TEST_BOOL", "true")
	assert.True(t, GetEnvBool("NEWSFEED_TEST_BOOL", false))

	t.Setenv("NEWSFEED_TEST_BOOL", "0")
	assert.False(t, GetEnvBool("NEWSFEED_TEST_BOOL", true))

	t.Setenv("NEWSFEED_TEST_BOOL", "maybe")
	assert.True(t, GetEnvBool("NEWSFEED_TEST_BOOL", true))
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("NEWSFEED_TEST_DUR", "90s")
	assert.Equal(t, 90*time.Second, GetEnvDuration("NEWSFEED_TEST_DUR", time.Minute))

	t.Setenv("NEWSFEED_TEST_DUR", "ninety seconds")
	assert.Equal(t, time.Minute, GetEnvDuration("NEWSFEED_TEST_DUR", time.Minute))
}
