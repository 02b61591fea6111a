package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Run("Missing Keys Use Defaults", func(t *testing.T) {
		assert.Equal(t, "file", GetEnvString("SYMPTOMIX_TEST_MISSING_STRING", "file"))
		assert.Equal(t, 7, GetEnvInt("SYMPTOMIX_TEST_MISSING_INT", 7))
		assert.True(t, GetEnvBool("SYMPTOMIX_TEST_MISSING_BOOL", true))
		assert.Equal(t, time.Second, GetEnvDuration("SYMPTOMIX_TEST_MISSING_DURATION", time.Second))
	})

	t.Run("Present Keys Are Parsed", func(t *testing.T) {
		t.Setenv("SYMPTOMIX_TEST_INT", "42")
		t.Setenv("SYMPTOMIX_TEST_BOOL", "false")
		t.Setenv("SYMPTOMIX_TEST_DURATION", "250ms")

		assert.Equal(t, 42, GetEnvInt("SYMPTOMIX_TEST_INT", 7))
		assert.False(t, GetEnvBool("SYMPTOMIX_TEST_BOOL", true))
		assert.Equal(t, 250*time.Millisecond, GetEnvDuration("SYMPTOMIX_TEST_DURATION", time.Second))
	})

	t.Run("Malformed Values Fall Back To Defaults", func(t *testing.T) {
		t.Setenv("SYMPTOMIX_TEST_BAD_INT", "forty-two")
		t.Setenv("SYMPTOMIX_TEST_BAD_DURATION", "soon")

		assert.Equal(t, 7, GetEnvInt("SYMPTOMIX_TEST_BAD_INT", 7))
		assert.Equal(t, time.Second, GetEnvDuration("SYMPTOMIX_TEST_BAD_DURATION", time.Second))
	})
}
