package tracekit

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestBuiltinFormats(t *testing.T) {
	tests := []struct {
		formatType string
		version    int
		want       bool
	}{
		{FormatSAC, 6, true},
		{FormatSAC, 7, false},
		{FormatTrace, 101, true},
		{FormatTrace, 200, true},
		{FormatTrace, 201, true},
		{FormatTrace, 102, false},
		{"unknown", 6, false},
	}
	for _, tt := range tests {
		if got := ValidVersion(tt.formatType, tt.version); got != tt.want {
			t.Errorf("ValidVersion(%q, %d) = %v, want %v", tt.formatType, tt.version, got, tt.want)
		}
	}

	if !KnownVersion(6) || !KnownVersion(200) {
		t.Error("built-in versions should be known")
	}
	if KnownVersion(0) || KnownVersion(-6) || KnownVersion(7) {
		t.Error("unregistered versions should not be known")
	}
}

func TestRegisterFormat(t *testing.T) {
	t.Cleanup(ResetFormats)

	tests := []struct {
		name    string
		def     FormatDefinition
		wantErr bool
	}{
		{name: "valid", def: FormatDefinition{Type: "legacy", Versions: []int{3, 4}}},
		{name: "empty type", def: FormatDefinition{Versions: []int{1}}, wantErr: true},
		{name: "no versions", def: FormatDefinition{Type: "x"}, wantErr: true},
		{name: "zero version", def: FormatDefinition{Type: "x", Versions: []int{0}}, wantErr: true},
		{name: "negative version", def: FormatDefinition{Type: "x", Versions: []int{-2}}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RegisterFormat(tt.def)
			if tt.wantErr {
				if !errors.Is(err, ErrBadDefinition) {
					t.Errorf("error = %v, want ErrBadDefinition", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("RegisterFormat: %v", err)
			}
		})
	}

	if !ValidVersion("legacy", 3) {
		t.Error("registered format should validate its versions")
	}
}

func TestFormatForVersion(t *testing.T) {
	t.Cleanup(ResetFormats)

	def, ok := FormatForVersion(6)
	if !ok || def.Type != FormatSAC {
		t.Errorf("FormatForVersion(6) = %v %v, want sac", def.Type, ok)
	}

	// A later registration sharing a version loses to the built-in.
	if err := RegisterFormat(FormatDefinition{Type: "shadow", Versions: []int{6, 999}}); err != nil {
		t.Fatal(err)
	}
	def, ok = FormatForVersion(6)
	if !ok || def.Type != FormatSAC {
		t.Errorf("FormatForVersion(6) after shadow = %q, want sac", def.Type)
	}
	def, ok = FormatForVersion(999)
	if !ok || def.Type != "shadow" {
		t.Errorf("FormatForVersion(999) = %q %v, want shadow", def.Type, ok)
	}

	if _, ok := FormatForVersion(12345); ok {
		t.Error("unregistered version should have no format")
	}
}

func TestRegisterFormatSortsVersions(t *testing.T) {
	t.Cleanup(ResetFormats)

	if err := RegisterFormat(FormatDefinition{Type: "scrambled", Versions: []int{9, 3, 7}}); err != nil {
		t.Fatal(err)
	}
	def, _ := LookupFormat("scrambled")
	for i := 1; i < len(def.Versions); i++ {
		if def.Versions[i-1] > def.Versions[i] {
			t.Fatalf("versions not sorted: %v", def.Versions)
		}
	}
}

func TestLoadFormats(t *testing.T) {
	t.Cleanup(ResetFormats)

	path := filepath.Join(t.TempDir(), "formats.yaml")
	content := `formats:
  - type: legacy
    description: pre-standard field layout
    versions: [3, 4, 5]
  - type: experimental
    versions: [900]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := LoadFormats(path); err != nil {
		t.Fatalf("LoadFormats: %v", err)
	}
	if !ValidVersion("legacy", 4) || !ValidVersion("experimental", 900) {
		t.Error("loaded formats should validate their versions")
	}
	def, _ := LookupFormat("legacy")
	if def.Description != "pre-standard field layout" {
		t.Errorf("description = %q", def.Description)
	}
}

func TestLoadFormatsErrors(t *testing.T) {
	t.Cleanup(ResetFormats)
	dir := t.TempDir()

	if err := LoadFormats(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("loading a missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("formats: {not: a list}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := LoadFormats(bad); !errors.Is(err, ErrBadDefinition) {
		t.Errorf("error = %v, want ErrBadDefinition", err)
	}

	empty := filepath.Join(dir, "empty.yaml")
	if err := os.WriteFile(empty, []byte("formats: []"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := LoadFormats(empty); !errors.Is(err, ErrBadDefinition) {
		t.Errorf("error = %v, want ErrBadDefinition for an empty definition list", err)
	}
}

func TestFormatsOrder(t *testing.T) {
	defs := Formats()
	if len(defs) < 2 {
		t.Fatalf("Formats() returned %d definitions", len(defs))
	}
	if defs[0].Type != FormatSAC || defs[1].Type != FormatTrace {
		t.Errorf("built-ins out of order: %q, %q", defs[0].Type, defs[1].Type)
	}
}
