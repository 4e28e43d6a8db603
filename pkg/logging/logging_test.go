package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oxygene76/spheretrace/pkg/utils"
)

func TestNewJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, utils.LogConfig{Level: "info", JSON: true})

	logger.Debug("hidden")
	logger.Info("raycast", "hit", true)

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "raycast", line["message"])
	require.Equal(t, "spheretrace", line["module"])
	require.Equal(t, true, line["hit"])
}

func TestNewFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, utils.LogConfig{Level: "bogus", JSON: true})

	logger.Debug("hidden")
	require.Zero(t, buf.Len())

	logger.Info("shown")
	require.NotZero(t, buf.Len())
}
