package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSchema_JSONFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "components.json")
	doc := `{"modules": {"M": {"type": "Component", "components": {"View": {"events": [{"name": "onLoad"}]}}}}}`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := loadSchema(path)
	if err != nil {
		t.Fatalf("loadSchema: %v", err)
	}
	if len(s.Modules) != 1 || s.Modules[0].Components[0].Name != "View" {
		t.Errorf("unexpected schema: %+v", s)
	}
}

func TestLoadSchema_CUEDirectory(t *testing.T) {
	dir := t.TempDir()
	src := `modules: M: {
	type: "Component"
	components: View: events: [{name: "onLoad"}]
}
`
	if err := os.WriteFile(filepath.Join(dir, "components.cue"), []byte(src), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := loadSchema(dir)
	if err != nil {
		t.Fatalf("loadSchema: %v", err)
	}
	if len(s.Modules) != 1 || s.Modules[0].Components[0].Name != "View" {
		t.Errorf("unexpected schema: %+v", s)
	}
}

func TestLoadSchema_UnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "components.yaml")
	if err := os.WriteFile(path, []byte("modules: {}"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadSchema(path); err == nil {
		t.Fatal("expected error for unsupported schema format")
	}
}

func TestLoadSchema_Missing(t *testing.T) {
	if _, err := loadSchema(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing schema")
	}
}
