package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"fibercheck/internal/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	if cfg.PointTolerance != 0.01 {
		t.Errorf("PointTolerance = %v, want 0.01", cfg.PointTolerance)
	}
	if got := cfg.SpliceLimits["BE16"]; got != 840 {
		t.Errorf("SpliceLimits[BE16] = %d, want 840", got)
	}
	if len(cfg.ClusterLayers) != 7 {
		t.Errorf("len(ClusterLayers) = %d, want 7", len(cfg.ClusterLayers))
	}
}

func TestLoad_YAMLOverlay(t *testing.T) {
	data := []byte("point_tolerance: 0.5\nsplice_limits:\n  BE16: 100\n")
	cfg, err := config.Load(data, ".yaml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.PointTolerance != 0.5 {
		t.Errorf("PointTolerance = %v, want 0.5", cfg.PointTolerance)
	}
	if diff := cmp.Diff(map[string]int{"BE16": 100}, cfg.SpliceLimits); diff != "" {
		t.Errorf("SpliceLimits mismatch (-want +got):\n%s", diff)
	}
	// Unset fields keep defaults.
	if len(cfg.ClusterLayers) != 7 {
		t.Errorf("len(ClusterLayers) = %d, want default 7", len(cfg.ClusterLayers))
	}
}

func TestLoad_JSONDetectedByContent(t *testing.T) {
	data := []byte(`{"point_tolerance": 2.5}`)
	cfg, err := config.Load(data, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.PointTolerance != 2.5 {
		t.Errorf("PointTolerance = %v, want 2.5", cfg.PointTolerance)
	}
}

func TestLoadFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fibercheck.yml")
	if err := os.WriteFile(path, []byte("point_tolerance: 1.0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if cfg.PointTolerance != 1.0 {
		t.Errorf("PointTolerance = %v, want 1.0", cfg.PointTolerance)
	}

	if _, err := config.LoadFromPath(filepath.Join(dir, "missing.yml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoad_BadYAML(t *testing.T) {
	if _, err := config.Load([]byte(":\n\t-bad"), ".yaml"); err == nil {
		t.Error("expected parse error")
	}
}
