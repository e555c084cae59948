// Package mapper converts aggregation results to visualization patterns.
package mapper

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dkoosis/babynames/pkg/names"
	"github.com/dkoosis/babynames/pkg/pattern"
)

var counts = message.NewPrinter(language.English)

// FromResult converts an aggregation result into a Summary followed by a
// Leaderboard of at most preview entries. preview <= 0 omits the leaderboard.
func FromResult(res *names.Result, outputPath string, preview int) []pattern.Pattern {
	patterns := []pattern.Pattern{resultSummary(res, outputPath)}
	if lb := resultLeaderboard(res, preview); lb != nil {
		patterns = append(patterns, lb)
	}
	return patterns
}

func resultSummary(res *names.Result, outputPath string) *pattern.Summary {
	metrics := []pattern.SummaryItem{
		{Label: "Years", Value: joinYears(res.Years), Kind: "info"},
	}
	if len(res.Skipped) > 0 {
		metrics = append(metrics, pattern.SummaryItem{
			Label: "Skipped", Value: joinYears(res.Skipped), Kind: "warning",
		})
	}
	metrics = append(metrics,
		pattern.SummaryItem{Label: "Distinct names", Value: FormatCount(res.Distinct), Kind: "info"},
		pattern.SummaryItem{Label: "Ranked", Value: FormatCount(len(res.Ranked)), Kind: "info"},
	)
	if outputPath != "" {
		metrics = append(metrics, pattern.SummaryItem{Label: "Output", Value: outputPath, Kind: "success"})
	}
	return &pattern.Summary{
		Label:   fmt.Sprintf("Top %d %s names", len(res.Ranked), res.Category.Label()),
		Metrics: metrics,
	}
}

func resultLeaderboard(res *names.Result, preview int) *pattern.Leaderboard {
	if preview <= 0 || len(res.Ranked) == 0 {
		return nil
	}
	entries := res.Ranked
	if len(entries) > preview {
		entries = entries[:preview]
	}
	items := make([]pattern.LeaderboardItem, len(entries))
	for i, e := range entries {
		items[i] = pattern.LeaderboardItem{
			Name:   e.Name,
			Metric: FormatCount(e.Count),
			Value:  e.Count,
			Rank:   i + 1,
		}
	}
	return &pattern.Leaderboard{
		Label:      res.Category.Label() + " names",
		MetricName: "Births",
		Items:      items,
		TotalCount: len(res.Ranked),
		ShowRank:   true,
	}
}

// FormatCount renders n with thousands separators.
func FormatCount(n int) string {
	return counts.Sprintf("%d", n)
}

func joinYears(years []int) string {
	parts := make([]string, len(years))
	for i, y := range years {
		parts[i] = strconv.Itoa(y)
	}
	return strings.Join(parts, ", ")
}
