package engine

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigMaxTimeZeroIsNoDeadline(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.MaxTime() != 0 {
		t.Fatalf("expected a zero deadline by default, got %v", cfg.MaxTime())
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	contents := `{"depth": 6, "max_time_millis": 1500, "worker_batch": 4}`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("os.WriteFile: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Depth != 6 {
		t.Errorf("expected Depth 6, got %d", cfg.Depth)
	}
	if cfg.MaxTime().Milliseconds() != 1500 {
		t.Errorf("expected a 1500ms deadline, got %v", cfg.MaxTime())
	}
	if cfg.WorkerBatch != 4 {
		t.Errorf("expected WorkerBatch 4, got %d", cfg.WorkerBatch)
	}
	if cfg.TTPath != "" {
		t.Errorf("expected TTPath to keep its default, got %q", cfg.TTPath)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected an error for a missing config file")
	}
}
