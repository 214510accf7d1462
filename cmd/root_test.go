package cmd

import (
	"testing"

	"github.com/mfinley/taskwise/internal/config"
)

func TestInitBaseDirEnvOverride(t *testing.T) {
	t.Setenv("TASKWISE_HOME", "/tmp/taskwise-test")

	initBaseDir()
	if got := getBaseDir(); got != "/tmp/taskwise-test" {
		t.Errorf("getBaseDir() = %q, want env override", got)
	}
}

func TestNewResolver(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(config.EnvAPIKey, "")

	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if r := newResolver(cfg); r.Gen != nil {
		t.Error("Resolver should have no generator without a key")
	}

	t.Setenv(config.EnvAPIKey, "some-key")
	if r := newResolver(cfg); r.Gen == nil {
		t.Error("Resolver should carry a generator when a key is set")
	}
}

func TestSetVersion(t *testing.T) {
	SetVersion("1.2.3")
	if rootCmd.Version != "1.2.3" {
		t.Errorf("rootCmd.Version = %q, want 1.2.3", rootCmd.Version)
	}
}

func TestMaskKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{
		{"empty", "", "Not set"},
		{"short", "abc", "Not set"},
		{"masked", "AIzaSyExample", "AIza..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := maskKey(tt.key); got != tt.want {
				t.Errorf("maskKey(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}
