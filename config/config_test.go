package config

import (
	"path/filepath"
	"testing"
)

func TestValidate_ClampsBadValues(t *testing.T) {
	c := &Config{FPS: 500, MaxPreviewW: 10, MaxPreviewH: -3}
	_ = c.Validate()
	if c.FPS != 10 || c.MaxPreviewW != 800 || c.MaxPreviewH != 450 {
		t.Fatalf("clamping failed: %+v", c)
	}
	if c.FillColor == "" || c.BorderColor == "" || c.Template == "" {
		t.Fatalf("defaults not restored: %+v", c)
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if c.Template != DefaultConfig().Template {
		t.Fatalf("expected defaults, got %+v", c)
	}
}

func TestSaveThenLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	c := DefaultConfig()
	c.FillColor = "#00ff00"
	c.Template = "{rel.left},{rel.top}"
	c.DarkMode = true
	if err := c.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	back, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if back.FillColor != "#00ff00" || back.Template != "{rel.left},{rel.top}" || !back.DarkMode {
		t.Fatalf("roundtrip mismatch: %+v", back)
	}
}
