package diagnostic

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// FormatGolden renders diagnostics into a stable, line-oriented
// representation suitable for golden files. Positions are reduced to base
// filenames so golden files survive checkouts at different paths. Entries
// are sorted deterministically; repeated runs over identical inputs produce
// byte-identical output.
func FormatGolden(diags List, includeDetails bool) string {
	return format(diags, includeDetails, true)
}

// FormatShort renders diagnostics one line each, with full paths, for CLI
// output without color.
func FormatShort(diags List) string {
	return format(diags, false, false)
}

func format(diags List, includeDetails, basenames bool) string {
	if len(diags) == 0 {
		return ""
	}

	rendered := make([]Diagnostic, len(diags))
	copy(rendered, diags)

	if basenames {
		for i := range rendered {
			rendered[i].Pos.Filename = filepath.Base(rendered[i].Pos.Filename)
		}
	}

	sort.SliceStable(rendered, func(i, j int) bool {
		di, dj := rendered[i], rendered[j]
		if di.Pos.Filename != dj.Pos.Filename {
			return di.Pos.Filename < dj.Pos.Filename
		}
		if di.Pos.Line != dj.Pos.Line {
			return di.Pos.Line < dj.Pos.Line
		}
		if di.Pos.Column != dj.Pos.Column {
			return di.Pos.Column < dj.Pos.Column
		}
		if di.Code != dj.Code {
			return di.Code < dj.Code
		}

		return di.Message < dj.Message
	})

	var b strings.Builder

	for i, d := range rendered {
		fmt.Fprintf(&b, "%s %s %s %s", d.Severity, d.Code, d.Pos, d.Message)

		if includeDetails {
			if d.Help != "" {
				fmt.Fprintf(&b, "\n  help: %s", d.Help)
			}

			if d.Note != "" {
				fmt.Fprintf(&b, "\n  note: %s", d.Note)
			}

			if d.Suggestion.Text != "" {
				fmt.Fprintf(&b, "\n  suggestion: %s", d.Suggestion.Text)
			}
		}

		if i < len(rendered)-1 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}
