package configpaths

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigCandidatePathsUserFirst(t *testing.T) {
	type testCase struct {
		user  string
		check func(j, y, tm []string) string
	}
	cases := []testCase{
		{"/tmp/custom.yml", func(_, y, _ []string) string { return y[0] }},
		{"/tmp/custom.toml", func(_, _, tm []string) string { return tm[0] }},
		{"/tmp/custom.json", func(j, _, _ []string) string { return j[0] }},
		{"/tmp/custom", func(j, _, _ []string) string { return j[0] }},
	}
	for _, tc := range cases {
		t.Run(tc.user, func(t *testing.T) {
			j, y, tm := ConfigCandidatePaths(tc.user)
			assert.Equal(t, tc.user, tc.check(j, y, tm))
		})
	}
}

func TestConfigCandidatePathsDefaults(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("XDG only")
	}
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	j, y, tm := ConfigCandidatePaths("")
	assert.Contains(t, j, filepath.Join("/xdg", "padservo", "run.json"))
	assert.Contains(t, y, filepath.Join("/xdg", "padservo", "config.yml"))
	assert.Contains(t, tm, filepath.Join(systemDir, "run.toml"))
}

func TestDefaultNamedConfigPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("XDG only")
	}
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	p, err := DefaultNamedConfigPath("run", "yml")
	require.NoError(t, err)
	assert.Equal(t, "/xdg/padservo/run.yaml", p)

	p, err = DefaultConfigPath("toml")
	require.NoError(t, err)
	assert.Equal(t, "/xdg/padservo/config.toml", p)
}
