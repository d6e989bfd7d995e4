package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("CFG_TEST_STRING", "value")
	assert.Equal(t, "value", GetEnv("CFG_TEST_STRING", "fallback"))
	assert.Equal(t, "fallback", GetEnv("CFG_TEST_UNSET", "fallback"))

	t.Setenv("CFG_TEST_EMPTY", "")
	assert.Equal(t, "fallback", GetEnv("CFG_TEST_EMPTY", "fallback"), "empty counts as unset")
}

func TestGetIntEnv(t *testing.T) {
	t.Setenv("CFG_TEST_INT", "42")
	assert.Equal(t, 42, GetIntEnv("CFG_TEST_INT", 7))

	t.Setenv("CFG_TEST_INT", "not a number")
	assert.Equal(t, 7, GetIntEnv("CFG_TEST_INT", 7))
	assert.Equal(t, 7, GetIntEnv("CFG_TEST_INT_UNSET", 7))
}

func TestGetDurationEnv(t *testing.T) {
	t.Setenv("CFG_TEST_DURATION", "90s")
	assert.Equal(t, 90*time.Second, GetDurationEnv("CFG_TEST_DURATION", time.Minute))

	t.Setenv("CFG_TEST_DURATION", "later")
	assert.Equal(t, time.Minute, GetDurationEnv("CFG_TEST_DURATION", time.Minute))
}
