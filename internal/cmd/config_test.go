package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	toml "github.com/pelletier/go-toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v3"
)

func TestConfigInitRun(t *testing.T) {
	type testCase struct {
		format    string
		unmarshal func([]byte, any) error
	}
	cases := []testCase{
		{"json", json.Unmarshal},
		{"yaml", yaml.Unmarshal},
		{"toml", toml.Unmarshal},
	}
	for _, tc := range cases {
		t.Run(tc.format, func(t *testing.T) {
			dest := filepath.Join(t.TempDir(), "nested", "run."+tc.format)
			c := &ConfigInit{Command: "run", Format: tc.format, Output: dest}
			require.NoError(t, c.Run())

			data, err := os.ReadFile(dest)
			require.NoError(t, err)
			var root map[string]any
			require.NoError(t, tc.unmarshal(data, &root))

			assert.Equal(t, "10ms", root["tickInterval"])
			assert.Equal(t, "jsdev", root["transport"])
			assert.Equal(t, "log", root["servo"])
			require.IsType(t, map[string]any{}, root["mapping"])
			mapping := root["mapping"].(map[string]any)
			assert.Equal(t, "x", mapping["centerButton"])
			assert.Contains(t, mapping, "rumble")
			assert.Contains(t, root, "maestro")
			assert.Contains(t, root, "sim")
			assert.Contains(t, root, "jsdev")
			assert.Contains(t, root, "watchKeys")
		})
	}
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "run.json")
	require.NoError(t, os.WriteFile(dest, []byte("{}"), 0o644))

	c := &ConfigInit{Command: "run", Format: "json", Output: dest}
	assert.Error(t, c.Run())

	c.Force = true
	require.NoError(t, c.Run())
}

func TestConfigInitRejectsUnknown(t *testing.T) {
	assert.Error(t, (&ConfigInit{Command: "run", Format: "ini"}).Run())
	assert.Error(t, (&ConfigInit{Command: "serve", Format: "json", Output: filepath.Join(t.TempDir(), "x.json")}).Run())
}
