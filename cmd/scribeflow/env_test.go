package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvOr(t *testing.T) {
	t.Setenv("SCRIBE_TEST_STR", "value")
	assert.Equal(t, "value", envOr("SCRIBE_TEST_STR", "def"))
	assert.Equal(t, "def", envOr("SCRIBE_TEST_MISSING", "def"))

	t.Setenv("SCRIBE_TEST_EMPTY", "")
	assert.Equal(t, "def", envOr("SCRIBE_TEST_EMPTY", "def"))
}

func TestEnvBool(t *testing.T) {
	t.Setenv("SCRIBE_TEST_BOOL", "false")
	assert.False(t, envBool("SCRIBE_TEST_BOOL", true))

	t.Setenv("SCRIBE_TEST_BOOL", "1")
	assert.True(t, envBool("SCRIBE_TEST_BOOL", false))

	t.Setenv("SCRIBE_TEST_BOOL", "not-a-bool")
	assert.True(t, envBool("SCRIBE_TEST_BOOL", true))

	assert.True(t, envBool("SCRIBE_TEST_BOOL_MISSING", true))
}

func TestEnvInt(t *testing.T) {
	t.Setenv("SCRIBE_TEST_INT", "42")
	assert.Equal(t, 42, envInt("SCRIBE_TEST_INT", 7))

	t.Setenv("SCRIBE_TEST_INT", "nope")
	assert.Equal(t, 7, envInt("SCRIBE_TEST_INT", 7))

	assert.Equal(t, 7, envInt("SCRIBE_TEST_INT_MISSING", 7))
}

func TestEnvSet(t *testing.T) {
	t.Setenv("SCRIBE_TEST_SET", "")
	assert.True(t, envSet("SCRIBE_TEST_SET"))
	assert.False(t, envSet("SCRIBE_TEST_SET_MISSING"))
	assert.True(t, envSet("SCRIBE_TEST_SET_MISSING", "SCRIBE_TEST_SET"))
}
