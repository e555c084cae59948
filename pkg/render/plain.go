package render

import (
	"fmt"
	"strings"

	"github.com/dkoosis/babynames/pkg/pattern"
)

// Plain renders patterns as terse text with zero ANSI codes. Output is
// stable across runs so it can be diffed or piped.
type Plain struct{}

// NewPlain creates a plain-text renderer.
func NewPlain() *Plain {
	return &Plain{}
}

// Render formats all patterns as plain text.
func (p *Plain) Render(patterns []pattern.Pattern) string {
	var sb strings.Builder
	for _, pt := range patterns {
		switch v := pt.(type) {
		case *pattern.Summary:
			sb.WriteString(v.Label + "\n")
			for _, m := range v.Metrics {
				sb.WriteString("  " + m.Label + ": " + m.Value + "\n")
			}
		case *pattern.Leaderboard:
			if len(v.Items) == 0 {
				continue
			}
			sb.WriteString("\n")
			for _, item := range v.Items {
				if v.ShowRank {
					sb.WriteString(fmt.Sprintf("%d. ", item.Rank))
				}
				sb.WriteString(item.Name + " " + item.Metric + "\n")
			}
			if v.TotalCount > len(v.Items) {
				sb.WriteString(fmt.Sprintf("... (%d more)\n", v.TotalCount-len(v.Items)))
			}
		}
	}
	return sb.String()
}
