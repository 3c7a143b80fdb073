package tracekit

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

// Format type names registered out of the box.
const (
	// FormatSAC is the classic single-trace binary format.
	FormatSAC = "sac"
	// FormatTrace is the toolkit's extended header format.
	FormatTrace = "trace"
)

// FormatDefinition describes one format family: its type name and the set
// of header versions considered valid for it.
type FormatDefinition struct {
	Type        string `yaml:"type"`
	Description string `yaml:"description,omitempty"`
	Versions    []int  `yaml:"versions"`
}

// formatsFile is the YAML shape accepted by LoadFormats.
type formatsFile struct {
	Formats []FormatDefinition `yaml:"formats"`
}

var (
	formatsMu   sync.RWMutex
	formats     = make(map[string]FormatDefinition)
	formatOrder []string
)

func init() {
	mustRegisterFormat(FormatDefinition{
		Type:        FormatSAC,
		Description: "classic binary trace format",
		Versions:    []int{6},
	})
	mustRegisterFormat(FormatDefinition{
		Type:        FormatTrace,
		Description: "extended header trace format",
		Versions:    []int{101, 200, 201},
	})
}

func mustRegisterFormat(def FormatDefinition) {
	if err := RegisterFormat(def); err != nil {
		panic(err)
	}
}

// RegisterFormat adds or replaces a format definition. The type name must
// be non-empty and every version positive.
func RegisterFormat(def FormatDefinition) error {
	if def.Type == "" {
		return fmt.Errorf("%w: format type is empty", ErrBadDefinition)
	}
	if len(def.Versions) == 0 {
		return fmt.Errorf("%w: format %q has no versions", ErrBadDefinition, def.Type)
	}
	for _, v := range def.Versions {
		if v <= 0 {
			return fmt.Errorf("%w: format %q has non-positive version %d", ErrBadDefinition, def.Type, v)
		}
	}

	versions := make([]int, len(def.Versions))
	copy(versions, def.Versions)
	sort.Ints(versions)
	def.Versions = versions

	formatsMu.Lock()
	defer formatsMu.Unlock()
	if _, exists := formats[def.Type]; !exists {
		formatOrder = append(formatOrder, def.Type)
	}
	formats[def.Type] = def
	return nil
}

// LookupFormat returns the definition for a format type.
func LookupFormat(formatType string) (FormatDefinition, bool) {
	formatsMu.RLock()
	defer formatsMu.RUnlock()
	def, ok := formats[formatType]
	return def, ok
}

// ValidVersion reports whether version is valid for the given format type.
func ValidVersion(formatType string, version int) bool {
	def, ok := LookupFormat(formatType)
	if !ok {
		return false
	}
	for _, v := range def.Versions {
		if v == version {
			return true
		}
	}
	return false
}

// KnownVersion reports whether any registered format accepts version.
func KnownVersion(version int) bool {
	_, ok := FormatForVersion(version)
	return ok
}

// FormatForVersion returns the first registered format that accepts
// version. Lookup follows registration order, so built-in formats win over
// later registrations when version sets overlap.
func FormatForVersion(version int) (FormatDefinition, bool) {
	formatsMu.RLock()
	defer formatsMu.RUnlock()
	for _, name := range formatOrder {
		def := formats[name]
		for _, v := range def.Versions {
			if v == version {
				return def, true
			}
		}
	}
	return FormatDefinition{}, false
}

// Formats returns all registered definitions in registration order.
func Formats() []FormatDefinition {
	formatsMu.RLock()
	defer formatsMu.RUnlock()
	out := make([]FormatDefinition, 0, len(formatOrder))
	for _, name := range formatOrder {
		out = append(out, formats[name])
	}
	return out
}

// LoadFormats registers every definition from a YAML formats file.
//
// The file lists definitions under a top-level formats key:
//
//	formats:
//	  - type: legacy
//	    versions: [3, 4, 5]
func LoadFormats(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read formats file: %w", err)
	}
	var file formatsFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("%w: %v", ErrBadDefinition, err)
	}
	if len(file.Formats) == 0 {
		return fmt.Errorf("%w: formats file %q defines no formats", ErrBadDefinition, path)
	}
	for _, def := range file.Formats {
		if err := RegisterFormat(def); err != nil {
			return err
		}
	}
	return nil
}

// ResetFormats drops every registration and restores the built-in
// definitions. Intended for tests.
func ResetFormats() {
	formatsMu.Lock()
	formats = make(map[string]FormatDefinition)
	formatOrder = nil
	formatsMu.Unlock()

	mustRegisterFormat(FormatDefinition{
		Type:        FormatSAC,
		Description: "classic binary trace format",
		Versions:    []int{6},
	})
	mustRegisterFormat(FormatDefinition{
		Type:        FormatTrace,
		Description: "extended header trace format",
		Versions:    []int{101, 200, 201},
	})
}
