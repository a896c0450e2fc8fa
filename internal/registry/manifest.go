package registry

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"collection-generator/internal/analyze"
)

// ManifestVersion is the supported capability manifest schema version.
const ManifestVersion = "1"

// Manifest is the YAML capability manifest. It extends the scanned registry
// with types the scan cannot see (types from other modules, or types whose
// capability is asserted rather than expressed as a method).
//
// Schema:
//
//	version: "1"
//	contextual:
//	  - collection-generator/resource.Handle
//	defaultable:
//	  - example.com/game/audio.Volume
type Manifest struct {
	Version     string   `yaml:"version"`
	Contextual  []string `yaml:"contextual"`
	Defaultable []string `yaml:"defaultable"`
}

// ParseManifest parses and validates manifest YAML.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest

	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing capability manifest: %w", err)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}

	return &m, nil
}

// LoadManifestFile reads and parses a manifest from disk.
func LoadManifestFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading capability manifest: %w", err)
	}

	return ParseManifest(data)
}

// Validate checks the manifest version and type references.
func (m *Manifest) Validate() error {
	if m.Version != ManifestVersion {
		return fmt.Errorf("unsupported manifest version %q (want %q)", m.Version, ManifestVersion)
	}

	for _, ref := range m.Contextual {
		if _, err := ParseTypeRef(ref); err != nil {
			return fmt.Errorf("contextual: %w", err)
		}
	}

	for _, ref := range m.Defaultable {
		if _, err := ParseTypeRef(ref); err != nil {
			return fmt.Errorf("defaultable: %w", err)
		}
	}

	return nil
}

// Apply registers all manifest entries. Contextual entries assert that the
// type implements ConstructFromContext; defaultable entries grant the
// zero-value default.
func (m *Manifest) Apply(reg *Registry) error {
	for _, ref := range m.Contextual {
		id, err := ParseTypeRef(ref)
		if err != nil {
			return err
		}

		reg.AddContextual(id)
	}

	for _, ref := range m.Defaultable {
		id, err := ParseTypeRef(ref)
		if err != nil {
			return err
		}

		reg.AddIntrinsicDefault(id, false)
	}

	return nil
}

// ParseTypeRef parses a fully-qualified type reference of the form
// "import/path.TypeName" into a TypeID.
func ParseTypeRef(ref string) (analyze.TypeID, error) {
	trimmed := strings.TrimSpace(ref)

	dot := strings.LastIndex(trimmed, ".")
	if dot <= 0 || dot == len(trimmed)-1 {
		return analyze.TypeID{}, fmt.Errorf("invalid type reference %q (want \"import/path.TypeName\")", ref)
	}

	// The dot must come after the last path separator, otherwise the
	// reference points into a directory, not a type.
	if slash := strings.LastIndex(trimmed, "/"); slash > dot {
		return analyze.TypeID{}, fmt.Errorf("invalid type reference %q (want \"import/path.TypeName\")", ref)
	}

	return analyze.TypeID{
		PkgPath: trimmed[:dot],
		Name:    trimmed[dot+1:],
	}, nil
}
