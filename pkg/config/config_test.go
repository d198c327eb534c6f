package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "GITHUB_API_URL", "GITHUB_TIMEOUT", "SESSION_TTL_MINUTES", "CORS_ALLOWED_ORIGINS", "LOG_FORMAT"} {
		t.Setenv(key, "")
	}

	require.NoError(t, Load())

	assert.Equal(t, "8080", AppConfig.Server.Port)
	assert.Equal(t, "https://api.github.com/", AppConfig.GitHub.APIURL)
	assert.Equal(t, 30*time.Second, AppConfig.GitHub.RequestTimeout())
	assert.Equal(t, 24*time.Hour, AppConfig.SessionTTL())
	assert.Empty(t, AppConfig.Server.CORSOrigins)
	assert.Equal(t, "json", AppConfig.Log.Format)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("GITHUB_API_URL", "http://127.0.0.1:1234/")
	t.Setenv("GITHUB_TIMEOUT", "5")
	t.Setenv("SESSION_TTL_MINUTES", "10")
	t.Setenv("SWEEP_INTERVAL_SECONDS", "2")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.example, ,http://b.example")

	require.NoError(t, Load())

	assert.Equal(t, "9090", AppConfig.Server.Port)
	assert.Equal(t, "http://127.0.0.1:1234/", AppConfig.GitHub.APIURL)
	assert.Equal(t, 5*time.Second, AppConfig.GitHub.RequestTimeout())
	assert.Equal(t, 10*time.Minute, AppConfig.SessionTTL())
	assert.Equal(t, 2*time.Second, AppConfig.SweepInterval())
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, AppConfig.Server.CORSOrigins)
}

func TestGetEnvAsInt(t *testing.T) {
	testCases := []struct {
		name     string
		value    string
		expected int
	}{
		{name: "valid", value: "42", expected: 42},
		{name: "empty", value: "", expected: 7},
		{name: "not a number", value: "abc", expected: 7},
		{name: "zero", value: "0", expected: 7},
		{name: "negative", value: "-3", expected: 7},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("GHPROFILE_TEST_INT", tc.value)
			assert.Equal(t, tc.expected, getEnvAsInt("GHPROFILE_TEST_INT", 7))
		})
	}
}
