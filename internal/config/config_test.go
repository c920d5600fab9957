package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing temp file: %v", err)
	}
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeTemp(t, "cfg.yaml", "default_variant: zh-tw\nwikitext: true\nrules:\n  - \"zh-cn:软件; zh-tw:軟體\"\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DefaultVariant != "zh-tw" || !cfg.Wikitext || len(cfg.Rules) != 1 {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeTemp(t, "cfg.json", `{"default_variant":"zh-cn","rule_files":["a.txt"]}`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DefaultVariant != "zh-cn" || len(cfg.RuleFiles) != 1 {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := writeTemp(t, "cfg.toml", "x = 1")
	if _, err := Load(path); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestValidateRejectsUnknownVariant(t *testing.T) {
	cfg := &Config{DefaultVariant: "zh-xx"}
	if vr := Validate(cfg); vr == nil || !vr.HasErrors() {
		t.Error("expected a validation error for an unknown variant tag")
	}
}

func TestValidateRejectsMissingRuleFile(t *testing.T) {
	cfg := &Config{RuleFiles: []string{"/nonexistent/path/rules.txt"}}
	if vr := Validate(cfg); vr == nil || !vr.HasErrors() {
		t.Error("expected a validation error for a missing rule file")
	}
}

func TestValidateAcceptsWellFormedConfig(t *testing.T) {
	cfg := &Config{DefaultVariant: "zh-hant", Color: "always"}
	if vr := Validate(cfg); vr != nil {
		t.Errorf("unexpected validation errors: %v", vr)
	}
}

func TestGenerateExampleRoundTrips(t *testing.T) {
	data, err := GenerateExample("yaml")
	if err != nil {
		t.Fatalf("GenerateExample: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected non-empty example config")
	}
	cfg, err := Load(writeTemp(t, "example.yaml", string(data)))
	if err != nil {
		t.Fatalf("Load(example): %v", err)
	}
	if cfg.DefaultVariant != "zh-cn" || len(cfg.Rules) != 1 || cfg.Color != "auto" {
		t.Errorf("example did not round-trip: %+v", cfg)
	}
}
