package config

import (
	"os"
	"path/filepath"
	"testing"
)

func resetLoadedRoles() {
	loadedRoles = nil
}

func TestLoadRoleLibraryNoFile(t *testing.T) {
	resetLoadedRoles()
	cfg := &Config{}

	if err := cfg.loadRoleLibrary(); err != nil {
		t.Fatalf("expected no error when no library file configured, got: %v", err)
	}
	if len(GetLoadedRoles()) != 0 {
		t.Errorf("expected no loaded roles, got %d", len(GetLoadedRoles()))
	}
}

func TestLoadRoleLibraryMissingFile(t *testing.T) {
	resetLoadedRoles()
	cfg := &Config{}
	cfg.Analysis.RoleLibraryFile = "/nonexistent/roles.yaml"

	if err := cfg.loadRoleLibrary(); err == nil {
		t.Error("expected error for missing role library file")
	}
}

func TestLoadRoleLibraryYAML(t *testing.T) {
	resetLoadedRoles()
	dir := t.TempDir()
	path := filepath.Join(dir, "roles.yaml")
	content := `site_reliability_engineer:
  required:
    - kubernetes
    - terraform
  nice:
    - prometheus
Platform_Engineer:
  required:
    - ci/cd
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write role library file: %v", err)
	}

	cfg := &Config{}
	cfg.Analysis.RoleLibraryFile = path
	if err := cfg.loadRoleLibrary(); err != nil {
		t.Fatalf("loadRoleLibrary failed: %v", err)
	}

	roles := GetLoadedRoles()
	if len(roles) != 2 {
		t.Fatalf("expected 2 roles, got %d", len(roles))
	}

	sre, ok := roles["site_reliability_engineer"]
	if !ok {
		t.Fatal("expected site_reliability_engineer role to be loaded")
	}
	if len(sre.Required) != 2 || sre.Required[0] != "kubernetes" {
		t.Errorf("unexpected required keywords: %v", sre.Required)
	}
	if len(sre.Nice) != 1 || sre.Nice[0] != "prometheus" {
		t.Errorf("unexpected nice keywords: %v", sre.Nice)
	}

	if _, ok := roles["platform_engineer"]; !ok {
		t.Error("expected role keys to be normalized to lowercase")
	}
}

func TestLoadRoleLibraryRejectsEmptyProfile(t *testing.T) {
	resetLoadedRoles()
	dir := t.TempDir()
	path := filepath.Join(dir, "roles.yaml")
	content := `empty_role:
  required: []
  nice: []
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write role library file: %v", err)
	}

	cfg := &Config{}
	cfg.Analysis.RoleLibraryFile = path
	if err := cfg.loadRoleLibrary(); err == nil {
		t.Error("expected error for role with no keywords")
	}
}
