package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `logger:
  level: debug
site:
  company: ACME GmbH
  location_code: BER
output:
  csv_file: plan.csv
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Logger.Level != "debug" {
		t.Fatalf("logger.level: got %q, want debug", cfg.Logger.Level)
	}
	if cfg.Site.Company != "ACME GmbH" || cfg.Site.LocationCode != "BER" {
		t.Fatalf("unexpected site config: %+v", cfg.Site)
	}
	if cfg.Output.CSVFile != "plan.csv" {
		t.Fatalf("output.csv_file: got %q, want plan.csv", cfg.Output.CSVFile)
	}
	// незаданные ключи берутся из дефолтов
	if cfg.App.Name != "subnetassign" {
		t.Fatalf("app.name default: got %q", cfg.App.Name)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	// без файла: дефолты (chdir во временный каталог, чтобы не зацепить config.yaml)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Logger.Level != "info" {
		t.Fatalf("logger.level default: got %q, want info", cfg.Logger.Level)
	}
	if cfg.App.Name != "subnetassign" {
		t.Fatalf("app.name default: got %q, want subnetassign", cfg.App.Name)
	}
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, ErrFileNotFound) {
		t.Fatalf("expected ErrFileNotFound, got %v", err)
	}
}
