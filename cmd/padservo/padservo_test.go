package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindUserConfig(t *testing.T) {
	t.Setenv("PADSERVO_CONFIG", "")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"none", []string{"run"}, ""},
		{"equals", []string{"--config=/tmp/a.yaml", "run"}, "/tmp/a.yaml"},
		{"separate", []string{"run", "--config", "b.toml"}, "b.toml"},
		{"dangling", []string{"run", "--config"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, findUserConfig(tt.args))
		})
	}
}

func TestFindUserConfigEnv(t *testing.T) {
	t.Setenv("PADSERVO_CONFIG", "/etc/padservo/custom.json")
	assert.Equal(t, "/etc/padservo/custom.json", findUserConfig(nil))
	assert.Equal(t, "x.yaml", findUserConfig([]string{"--config", "x.yaml"}))
}

func TestDescription(t *testing.T) {
	assert.Contains(t, Description(), Version)
	assert.NotEmpty(t, Commit)
	assert.NotEmpty(t, Date)
}
