package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureLevels(t *testing.T) {
	testCases := []struct {
		level    string
		expected logrus.Level
	}{
		{level: "debug", expected: logrus.DebugLevel},
		{level: "WARN", expected: logrus.WarnLevel},
		{level: "error", expected: logrus.ErrorLevel},
		{level: "", expected: logrus.InfoLevel},
		{level: "verbose", expected: logrus.InfoLevel},
	}

	for _, tc := range testCases {
		t.Run(tc.level, func(t *testing.T) {
			Configure(tc.level, "json")
			assert.Equal(t, tc.expected, GetLogger().GetLevel())
		})
	}
}

func TestJSONOutputCarriesFields(t *testing.T) {
	Configure("info", "json")
	var buf bytes.Buffer
	SetOutput(&buf)

	WithFields(logrus.Fields{"username": "octocat", "generation": 3}).Info("search finished")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "search finished", entry["msg"])
	assert.Equal(t, "octocat", entry["username"])
	assert.Equal(t, float64(3), entry["generation"])
}

func TestTextFormat(t *testing.T) {
	Configure("info", "text")
	var buf bytes.Buffer
	SetOutput(&buf)

	WithField("username", "octocat").Info("hello")

	assert.Contains(t, buf.String(), "username=octocat")
	assert.Contains(t, buf.String(), "msg=hello")
}
