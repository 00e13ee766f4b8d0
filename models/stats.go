package models

// LeaderboardEntry represents a player's row in the leaderboard
type LeaderboardEntry struct {
	Rank        int
	Nickname    string
	Wins        int
	Losses      int
	GamesPlayed int
	WinRate     float64 // Percentage as 0-100
}

// PlayerStats represents the statistics shown for a single player
type PlayerStats struct {
	Record *ScoreRecord
	Rank   int // 1-based position in the full leaderboard
	Total  int // Number of registered players
}

// CategorySummary describes a category for selection menus
type CategorySummary struct {
	Name      string
	WordCount int
}
