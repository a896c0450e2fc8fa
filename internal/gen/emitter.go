package gen

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"collection-generator/internal/analyze"
	"collection-generator/internal/diagnostic"
	"collection-generator/internal/registry"
	"collection-generator/internal/resolve"
)

// Config holds configuration for the emitter.
type Config struct {
	// FileSuffix is appended to the snake-cased struct name to form the
	// generated filename.
	FileSuffix string
	// GenerateComments enables explanatory comments in generated code.
	GenerateComments bool
	// HelpSampleSize bounds the number of known-good types cited in help
	// text, keeping diagnostics readable for large registries.
	HelpSampleSize int
}

// DefaultConfig returns the default emitter configuration.
func DefaultConfig() Config {
	return Config{
		FileSuffix:       "_collection.go",
		GenerateComments: true,
		HelpSampleSize:   5,
	}
}

// Emitter turns resolved shapes into generated constructors or diagnostics.
type Emitter struct {
	config Config
	reg    *registry.Registry
}

// NewEmitter creates an Emitter over a frozen registry.
func NewEmitter(reg *registry.Registry, config Config) *Emitter {
	return &Emitter{config: config, reg: reg}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Dir is the directory of the collection's package.
	Dir string
	// Filename is the base name of the file (e.g., "game_assets_collection.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Emit produces either a generated constructor or diagnostics for one shape.
// Exactly one of the two return values is non-empty. The error return is
// reserved for internal failures (template or formatting bugs).
func (e *Emitter) Emit(
	shape *analyze.StructShape,
	verdicts []resolve.FieldVerdict,
) (*GeneratedFile, diagnostic.List, error) {
	var unsatisfied []resolve.FieldVerdict

	for _, fv := range verdicts {
		if fv.Verdict == resolve.VerdictUnsatisfied {
			unsatisfied = append(unsatisfied, fv)
		}
	}

	if len(unsatisfied) > 0 {
		return nil, e.buildDiagnostics(shape, unsatisfied), nil
	}

	file, err := e.generateConstructor(shape, verdicts)
	if err != nil {
		return nil, nil, fmt.Errorf("generating constructor for %s: %w", shape.ID, err)
	}

	return file, nil, nil
}

// filename derives the generated file name from the struct name.
func (e *Emitter) filename(shape *analyze.StructShape) string {
	return toSnakeCase(shape.ID.Name) + e.config.FileSuffix
}

// outputDir is the directory of the collection's own package, so the
// constructor compiles alongside the struct it initialises.
func (e *Emitter) outputDir(shape *analyze.StructShape) string {
	return filepath.Dir(shape.Pos.Filename)
}

// toSnakeCase converts a Go identifier to snake_case.
func toSnakeCase(name string) string {
	var b strings.Builder

	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}

			b.WriteRune(unicode.ToLower(r))

			continue
		}

		b.WriteRune(r)
	}

	return b.String()
}
