package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOverlay(t *testing.T) {
	dir := t.TempDir()

	doc := `schema_version: "1.0"
name: summer-promo
plans:
  - name: Student
    base_cost: 19.99
    benefits: ["Access to gym equipment"]
    available: true
features:
  - name: Towel Service
    cost: 10.00
    available: true
`

	path := filepath.Join(dir, "promo.yaml")
	if err := os.WriteFile(path, []byte(doc), 0600); err != nil {
		t.Fatal(err)
	}

	o, err := LoadOverlay(path)
	if err != nil {
		t.Fatalf("LoadOverlay: %v", err)
	}
	if o.Name != "summer-promo" {
		t.Errorf("name = %q, want summer-promo", o.Name)
	}
	if len(o.Plans) != 1 || len(o.Features) != 1 {
		t.Errorf("records = %d plans, %d features, want 1 and 1", len(o.Plans), len(o.Features))
	}
	if o.Plans[0].BaseCost != 19.99 {
		t.Errorf("base_cost = %v, want 19.99", o.Plans[0].BaseCost)
	}

	c := New()
	if err := c.Apply(o); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if _, ok := c.Plan("Student"); !ok {
		t.Error("Student plan not applied")
	}
	if _, ok := c.Feature("Towel Service"); !ok {
		t.Error("Towel Service feature not applied")
	}
}

func TestParseOverlay_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing schema_version", "name: x\n"},
		{"negative cost", "schema_version: \"1.0\"\nfeatures:\n  - name: X\n    cost: -5\n    available: true\n"},
		{"missing available", "schema_version: \"1.0\"\nplans:\n  - name: X\n    base_cost: 5\n"},
		{"unknown field", "schema_version: \"1.0\"\nplans:\n  - name: X\n    base_cost: 5\n    available: true\n    color: red\n"},
		{"empty plan name", "schema_version: \"1.0\"\nplans:\n  - name: \"\"\n    base_cost: 5\n    available: true\n"},
	}

	for _, tt := range tests {
		if _, err := ParseOverlay([]byte(tt.doc)); err == nil {
			t.Errorf("%s: expected error, got nil", tt.name)
		}
	}
}

func TestParseOverlay_SchemaVersionGate(t *testing.T) {
	_, err := ParseOverlay([]byte("schema_version: \"2.0\"\n"))
	if !errors.Is(err, ErrSchemaVersion) {
		t.Fatalf("err = %v, want ErrSchemaVersion", err)
	}

	if _, err := ParseOverlay([]byte("schema_version: \"1.4\"\n")); err != nil {
		t.Fatalf("1.4 should satisfy %s: %v", SchemaVersionConstraint, err)
	}

	_, err = ParseOverlay([]byte("schema_version: \"not-a-version\"\n"))
	if err == nil {
		t.Fatal("expected parse error for malformed version")
	}
}

func TestLoadOverlayDir(t *testing.T) {
	dir := t.TempDir()

	// Applied in lexical order, so the later file wins the upsert.
	a := "schema_version: \"1.0\"\nplans:\n  - name: Student\n    base_cost: 19.99\n    available: true\n"
	b := "schema_version: \"1.0\"\nplans:\n  - name: Student\n    base_cost: 17.99\n    available: true\n"
	if err := os.WriteFile(filepath.Join(dir, "10-base.yaml"), []byte(a), 0600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "20-promo.yaml"), []byte(b), 0600); err != nil {
		t.Fatal(err)
	}
	// Non-YAML files are ignored.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}

	overlays, err := LoadOverlayDir(dir)
	if err != nil {
		t.Fatalf("LoadOverlayDir: %v", err)
	}
	if len(overlays) != 2 {
		t.Fatalf("overlays = %d, want 2", len(overlays))
	}

	c := New()
	for _, o := range overlays {
		if err := c.Apply(o); err != nil {
			t.Fatalf("Apply: %v", err)
		}
	}
	p, ok := c.Plan("Student")
	if !ok {
		t.Fatal("Student plan not applied")
	}
	if p.BaseCost != 17.99 {
		t.Errorf("base_cost = %v, want 17.99 (last overlay wins)", p.BaseCost)
	}
}

func TestLoadOverlayDir_Missing(t *testing.T) {
	overlays, err := LoadOverlayDir(filepath.Join(t.TempDir(), "absent"))
	if err != nil {
		t.Fatalf("missing dir should not error: %v", err)
	}
	if len(overlays) != 0 {
		t.Errorf("overlays = %d, want 0", len(overlays))
	}
}
