package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFile)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigFromFile(t *testing.T) {
	root := t.TempDir()
	t.Setenv(ConfigPathEnv, writeConfig(t, RootKey+"="+root+"\n"))
	t.Setenv(RootKey, "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.RootPath() != root {
		t.Fatalf("expected %s, got %s", root, cfg.RootPath())
	}
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	fileRoot := t.TempDir()
	envRoot := t.TempDir()
	t.Setenv(ConfigPathEnv, writeConfig(t, RootKey+"="+fileRoot+"\n"))
	t.Setenv(RootKey, envRoot)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.RootPath() != envRoot {
		t.Fatalf("expected %s, got %s", envRoot, cfg.RootPath())
	}
}

func TestLoadConfigEnvWithoutFile(t *testing.T) {
	envRoot := t.TempDir()
	t.Setenv(ConfigPathEnv, filepath.Join(t.TempDir(), "missing"))
	t.Setenv(RootKey, envRoot)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.RootPath() != envRoot {
		t.Fatalf("expected %s, got %s", envRoot, cfg.RootPath())
	}
}

func TestLoadConfigMissing(t *testing.T) {
	t.Setenv(ConfigPathEnv, filepath.Join(t.TempDir(), "missing"))
	t.Setenv(RootKey, "")

	_, err := LoadConfig()
	if !errors.Is(err, ErrConfigMissing) {
		t.Fatalf("expected ErrConfigMissing, got %v", err)
	}
}

func TestLoadConfigWithoutKey(t *testing.T) {
	t.Setenv(ConfigPathEnv, writeConfig(t, "OTHER=value\n"))
	t.Setenv(RootKey, "")

	_, err := LoadConfig()
	if !errors.Is(err, ErrConfigMissing) {
		t.Fatalf("expected ErrConfigMissing, got %v", err)
	}
}

func TestLoadConfigInvalidRoot(t *testing.T) {
	tests := map[string]string{
		"relative": "notes/tasks",
		"missing":  filepath.Join(t.TempDir(), "gone"),
	}
	for name, root := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv(ConfigPathEnv, writeConfig(t, RootKey+"="+root+"\n"))
			t.Setenv(RootKey, "")
			_, err := LoadConfig()
			if !errors.Is(err, ErrInvalidRoot) {
				t.Fatalf("expected ErrInvalidRoot, got %v", err)
			}
		})
	}
}

func TestStaticConfig(t *testing.T) {
	root := t.TempDir()
	cfg, err := StaticConfig(root)
	if err != nil {
		t.Fatalf("static: %v", err)
	}
	if cfg.RootPath() != root || cfg.Source() != "flag" {
		t.Fatalf("unexpected config %s %s", cfg.RootPath(), cfg.Source())
	}
	if _, err := StaticConfig("relative"); !errors.Is(err, ErrInvalidRoot) {
		t.Fatalf("expected ErrInvalidRoot, got %v", err)
	}
}
