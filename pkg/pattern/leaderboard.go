package pattern

// Leaderboard represents a ranked list of names by count.
type Leaderboard struct {
	Label      string            `json:"label"`
	MetricName string            `json:"metric_name"` // e.g., "Births"
	Items      []LeaderboardItem `json:"items"`
	TotalCount int               `json:"total_count"` // distinct names before truncation
	ShowRank   bool              `json:"show_rank"`
}

// LeaderboardItem is a single ranked entry.
type LeaderboardItem struct {
	Name   string `json:"name"`
	Metric string `json:"metric"` // formatted value (e.g., "20,000")
	Value  int    `json:"value"`
	Rank   int    `json:"rank"`
}

func (l *Leaderboard) Type() PatternType { return PatternTypeLeaderboard }
