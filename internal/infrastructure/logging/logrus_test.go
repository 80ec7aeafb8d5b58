package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogError_Fields(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(&buf)

	LogError(logger, "client_usecase.go", "Create", "repo.Create", map[string]string{"id": "x"}, errors.New("boom"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "boom", entry["msg"])
	assert.Equal(t, "client_usecase.go", entry["module"])
	assert.Equal(t, "Create", entry["funcName"])
	assert.Equal(t, "repo.Create", entry["context"])
	assert.Equal(t, map[string]any{"id": "x"}, entry["data"])
}

func TestLogError_NoData(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(&buf)

	LogError(logger, "m", "f", "c", nil, errors.New("boom"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	_, ok := entry["data"]
	assert.False(t, ok)
}

func TestSetLevel(t *testing.T) {
	prev := GetLogger().GetLevel()
	defer GetLogger().SetLevel(prev)

	SetLevel("debug")
	assert.Equal(t, logrus.DebugLevel, GetLogger().GetLevel())

	SetLevel("nonsense")
	assert.Equal(t, logrus.DebugLevel, GetLogger().GetLevel())
}
