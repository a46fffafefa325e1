package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvString(t *testing.T) {
	assert.Equal(t, "fallback", GetEnvString("CAREGATE_TEST_MISSING", "fallback"))

	t.Setenv("CAREGATE_TEST_STRING", "set")
	assert.Equal(t, "set", GetEnvString("CAREGATE_TEST_STRING", "fallback"))
}

func TestGetEnvInt(t *testing.T) {
	assert.Equal(t, 8, GetEnvInt("CAREGATE_TEST_MISSING", 8))

	t.Setenv("CAREGATE_TEST_INT", "42")
	assert.Equal(t, 42, GetEnvInt("CAREGATE_TEST_INT", 8))

	t.Setenv("CAREGATE_TEST_INT", "not-a-number")
	assert.Equal(t, 8, GetEnvInt("CAREGATE_TEST_INT", 8))
}

func TestGetEnvBool(t *testing.T) {
	assert.False(t, GetEnvBool("CAREGATE_TEST_MISSING", false))

	t.Setenv("CAREGATE_TEST_BOOL", "true")
	assert.True(t, GetEnvBool("CAREGATE_TEST_BOOL", false))

	t.Setenv("CAREGATE_TEST_BOOL", "maybe")
	assert.False(t, GetEnvBool("CAREGATE_TEST_BOOL", false))
}
