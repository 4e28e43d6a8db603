package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/oxygene76/spheretrace/pkg/utils"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfg := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, utils.SaveConfig(utils.DefaultConfig(), cfg))

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(append([]string{"--config", cfg}, args...))
	err := cmd.Execute()
	return stdout.String(), err
}

func decode(t *testing.T, out string) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &m), out)
	return m
}

func TestRaycastCommandHit(t *testing.T) {
	out, err := run(t, "raycast", "--origin", "0,0,5", "--direction", "0,0,-1")
	require.NoError(t, err)

	m := decode(t, out)
	require.Equal(t, true, m["hit"])
	require.Equal(t, 4.0, m["distance"])
	require.Equal(t, map[string]interface{}{"x": 0.0, "y": 0.0, "z": 1.0}, m["point"])
	require.Equal(t, "faithful", m["mode"])
}

func TestRaycastCommandInsideOrigin(t *testing.T) {
	out, err := run(t, "raycast", "--origin", "0,0,0", "--direction", "0,0,1")
	require.NoError(t, err)
	require.Equal(t, false, decode(t, out)["hit"])

	out, err = run(t, "raycast", "--origin", "0,0,0", "--direction", "0,0,1", "--nearest")
	require.NoError(t, err)
	m := decode(t, out)
	require.Equal(t, true, m["hit"])
	require.Equal(t, "nearest", m["mode"])
}

func TestRaycastCommandCustomSphere(t *testing.T) {
	out, err := run(t, "raycast", "--origin", "0,0,0", "--direction", "1,0,0", "--center", "10,0,0", "--radius", "2")
	require.NoError(t, err)
	require.Equal(t, 8.0, decode(t, out)["distance"])
}

func TestRaycastCommandErrors(t *testing.T) {
	_, err := run(t, "raycast", "--origin", "0,0,5", "--direction", "0,0,0")
	require.Error(t, err)

	_, err = run(t, "raycast", "--origin", "0,0", "--direction", "0,0,1")
	require.Error(t, err)

	_, err = run(t, "raycast", "--origin", "0,0,5")
	require.Error(t, err)
}

func TestVectorCommands(t *testing.T) {
	out, err := run(t, "vector", "length", "3,0,4")
	require.NoError(t, err)
	require.Equal(t, 5.0, decode(t, out)["scalar"])

	out, err = run(t, "vector", "dot", "1,2,3", "4,5,6")
	require.NoError(t, err)
	require.Equal(t, 32.0, decode(t, out)["scalar"])

	out, err = run(t, "vector", "from-to", "1,1,1", "2,3,4")
	require.NoError(t, err)
	require.Equal(t, map[string]interface{}{"x": 1.0, "y": 2.0, "z": 3.0}, decode(t, out)["vector"])

	out, err = run(t, "vector", "normalize", "0,0,9")
	require.NoError(t, err)
	require.Equal(t, map[string]interface{}{"x": 0.0, "y": 0.0, "z": 1.0}, decode(t, out)["vector"])

	out, err = run(t, "vector", "project", "2,3,4", "0,3,4")
	require.NoError(t, err)
	require.Equal(t, map[string]interface{}{"x": 0.0, "y": 1.8, "z": 3.2}, decode(t, out)["vector"])

	out, err = run(t, "vector", "project", "--standard", "2,3,4", "0,3,4")
	require.NoError(t, err)
	require.Equal(t, map[string]interface{}{"x": 0.0, "y": 3.0, "z": 4.0}, decode(t, out)["vector"])

	_, err = run(t, "vector", "normalize", "0,0,0")
	require.Error(t, err)
}

func TestNegativeComponentsAfterDoubleDash(t *testing.T) {
	out, err := run(t, "vector", "length", "--", "-3,0,-4")
	require.NoError(t, err)
	require.Equal(t, 5.0, decode(t, out)["scalar"])
}

func TestYAMLOutputOverride(t *testing.T) {
	out, err := run(t, "-o", "yaml", "vector", "length", "3,0,4")
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &m))
	require.Equal(t, 5, m["scalar"])
}

func TestInitAndConfigShow(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "home", "config.yaml")

	var stdout bytes.Buffer
	cmd := newRootCmd(&stdout, &bytes.Buffer{})
	cmd.SetArgs([]string{"--config", cfg, "init"})
	require.NoError(t, cmd.Execute())
	require.Contains(t, stdout.String(), cfg)

	_, err := os.Stat(cfg)
	require.NoError(t, err)

	cmd = newRootCmd(&bytes.Buffer{}, &bytes.Buffer{})
	cmd.SetArgs([]string{"--config", cfg, "init"})
	require.Error(t, cmd.Execute())

	cmd = newRootCmd(&bytes.Buffer{}, &bytes.Buffer{})
	cmd.SetArgs([]string{"--config", cfg, "init", "--force"})
	require.NoError(t, cmd.Execute())

	stdout.Reset()
	cmd = newRootCmd(&stdout, &bytes.Buffer{})
	cmd.SetArgs([]string{"--config", cfg, "config", "show"})
	require.NoError(t, cmd.Execute())

	m := decode(t, stdout.String())
	require.Equal(t, 1.0, m["scene"].(map[string]interface{})["radius"])
	require.Equal(t, "json", m["output"].(map[string]interface{})["format"])
}

func TestRaycastZeroRadiusSphere(t *testing.T) {
	out, err := run(t, "raycast", "--origin", "0,0,5", "--direction", "0,0,-1", "--radius", "0")
	require.NoError(t, err)

	m := decode(t, out)
	require.Equal(t, true, m["hit"])
	require.Equal(t, 5.0, m["distance"])
	require.Equal(t, map[string]interface{}{"x": 0.0, "y": 0.0, "z": 0.0}, m["point"])
	require.Equal(t, map[string]interface{}{"x": "NaN", "y": "NaN", "z": "NaN"}, m["normal"])
}

func TestExtremeVectorMagnitudes(t *testing.T) {
	out, err := run(t, "vector", "normalize", "1e200,0,0")
	require.NoError(t, err)
	require.Equal(t, map[string]interface{}{"x": 1.0, "y": 0.0, "z": 0.0}, decode(t, out)["vector"])

	out, err = run(t, "vector", "length", "1e200,0,0")
	require.NoError(t, err)
	require.InEpsilon(t, 1e200, decode(t, out)["scalar"], 1e-12)
}

func TestMissingExplicitConfigFails(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "absent.yaml")

	var stdout bytes.Buffer
	cmd := newRootCmd(&stdout, &bytes.Buffer{})
	cmd.SetArgs([]string{"--config", cfg, "vector", "length", "3,0,4"})
	err := cmd.Execute()
	require.ErrorIs(t, err, os.ErrNotExist)
	require.Empty(t, stdout.String())
}

func TestInvalidFlagOverrides(t *testing.T) {
	for _, args := range [][]string{
		{"--log-level", "loud", "vector", "length", "3,0,4"},
		{"-o", "xml", "vector", "length", "3,0,4"},
	} {
		out, err := run(t, args...)
		require.ErrorIs(t, err, utils.ErrInvalidConfig, "%v", args)
		require.Empty(t, out)
	}
}
