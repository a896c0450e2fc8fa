// Package fix represents and applies suggested code edits.
//
// Diagnostics carry at most one Edit each; the CLI fix command groups edits
// by file and applies them in one pass per file.
package fix

import (
	"fmt"
	"os"
	"sort"
)

// filePerm is used when rewriting edited files.
const filePerm = 0o644

// Edit is a single textual insertion or replacement in one file.
// Start and End are byte offsets; Start == End inserts.
type Edit struct {
	Path    string
	Start   int
	End     int
	NewText string
}

// IsZero returns true for the zero Edit (no machine-applicable fix).
func (e Edit) IsZero() bool {
	return e.Path == "" && e.NewText == ""
}

// InsertAbove builds an Edit inserting a full line above the line containing
// the given offset/column (1-based, as in token.Position).
func InsertAbove(path string, offset, column int, line string) Edit {
	lineStart := offset - (column - 1)
	if lineStart < 0 {
		lineStart = 0
	}

	return Edit{
		Path:    path,
		Start:   lineStart,
		End:     lineStart,
		NewText: line + "\n",
	}
}

// Apply applies edits to the given file content and returns the result.
// Edits must not overlap; they may be given in any order. Identical edits
// are applied once: several diagnostics naming the same offending type all
// suggest the same directive insertion.
func Apply(content []byte, edits []Edit) ([]byte, error) {
	seen := make(map[Edit]struct{}, len(edits))
	sorted := make([]Edit, 0, len(edits))

	for _, e := range edits {
		key := Edit{Start: e.Start, End: e.End, NewText: e.NewText}
		if _, ok := seen[key]; ok {
			continue
		}

		seen[key] = struct{}{}
		sorted = append(sorted, e)
	}

	// Stable order with full tie-breaks: same-offset insertions apply in a
	// deterministic order, and an insertion sorts before a replacement
	// starting at the same offset.
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}

		if sorted[i].End != sorted[j].End {
			return sorted[i].End < sorted[j].End
		}

		return sorted[i].NewText < sorted[j].NewText
	})

	for i := 1; i < len(sorted); i++ {
		if sorted[i].Start < sorted[i-1].End {
			return nil, fmt.Errorf("overlapping edits at offsets %d and %d", sorted[i-1].Start, sorted[i].Start)
		}
	}

	var out []byte

	last := 0

	for _, e := range sorted {
		if e.Start < 0 || e.End > len(content) || e.Start > e.End {
			return nil, fmt.Errorf("edit range [%d,%d) out of bounds (file has %d bytes)", e.Start, e.End, len(content))
		}

		out = append(out, content[last:e.Start]...)
		out = append(out, e.NewText...)
		last = e.End
	}

	out = append(out, content[last:]...)

	return out, nil
}

// ApplyToFiles groups edits by path and rewrites each file in place.
// Returns the list of changed paths in ascending order.
func ApplyToFiles(edits []Edit) ([]string, error) {
	byPath := make(map[string][]Edit)

	for _, e := range edits {
		if e.IsZero() {
			continue
		}

		byPath[e.Path] = append(byPath[e.Path], e)
	}

	paths := make([]string, 0, len(byPath))
	for path := range byPath {
		paths = append(paths, path)
	}

	sort.Strings(paths)

	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}

		edited, err := Apply(content, byPath[path])
		if err != nil {
			return nil, fmt.Errorf("applying edits to %s: %w", path, err)
		}

		if err := os.WriteFile(path, edited, filePerm); err != nil {
			return nil, fmt.Errorf("writing %s: %w", path, err)
		}
	}

	return paths, nil
}
