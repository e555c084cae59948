package pattern

// Summary represents high-level facts about a run.
type Summary struct {
	Label   string        `json:"label"`
	Metrics []SummaryItem `json:"metrics"`
}

// SummaryItem is a single metric in a summary.
type SummaryItem struct {
	Label string `json:"label"` // e.g., "Years", "Skipped"
	Value string `json:"value"` // formatted value
	Kind  string `json:"kind"`  // "success", "error", "warning", "info", affects coloring
}

func (s *Summary) Type() PatternType { return PatternTypeSummary }
