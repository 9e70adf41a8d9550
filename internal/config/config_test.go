package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromFile_Valid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("api_url: http://localhost:8000\nheader_aliases:\n  name:\n    - Paciente\n  service:\n    - Unidad\n"), 0644)

	var c Config
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if c.APIBaseURL != "http://localhost:8000" {
		t.Errorf("unexpected api url: %q", c.APIBaseURL)
	}
	if got := c.HeaderAliases["name"]; len(got) != 1 || got[0] != "Paciente" {
		t.Errorf("unexpected name aliases: %v", got)
	}
}

func TestLoadFromFile_FlagWinsOverFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("api_url: http://from-file\n"), 0644)

	c := Config{APIBaseURL: "http://from-flag"}
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if c.APIBaseURL != "http://from-flag" {
		t.Errorf("flag value overwritten: %q", c.APIBaseURL)
	}
}

func TestLoadFromFile_UnknownField(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("header_aliases:\n  bogus:\n    - X\n"), 0644)

	var c Config
	if err := c.LoadFromFile(path); err == nil {
		t.Fatal("expected error for unknown field key")
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	var c Config
	if err := c.LoadFromFile("/nonexistent/config.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidate_RequiresFile(t *testing.T) {
	var c Config
	if err := c.Validate(); err == nil {
		t.Fatal("expected error when --file is missing")
	}
}

func TestValidateWithAPI_RequiresURL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roster.csv")
	os.WriteFile(path, []byte("Nombre\n"), 0644)

	c := Config{FilePath: path}
	if err := c.ValidateWithAPI(); err == nil {
		t.Fatal("expected error when api url is missing")
	}
	c.APIBaseURL = "http://localhost:8000"
	if err := c.ValidateWithAPI(); err != nil {
		t.Fatalf("ValidateWithAPI: %v", err)
	}
}
