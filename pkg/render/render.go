// Package render provides output renderers for run report patterns.
package render

import "github.com/dkoosis/babynames/pkg/pattern"

// Renderer converts patterns to formatted output.
type Renderer interface {
	Render(patterns []pattern.Pattern) string
}

// Formats lists the concrete output modes accepted by New.
var Formats = []string{"terminal", "plain", "json"}

// New returns the renderer for a concrete mode. Unknown modes fall back to
// plain text.
func New(mode string, theme Theme, width int) Renderer {
	switch mode {
	case "json":
		return NewJSON()
	case "terminal":
		return NewTerminal(theme, width)
	default:
		return NewPlain()
	}
}
