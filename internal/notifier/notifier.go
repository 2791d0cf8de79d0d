package notifier

import "github.com/mverbeek/firefight/internal/combat"

// Notifier defines a high-level interface for announcing combat events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// For resolved fights
	SendCombatReport(fight combat.Fight, quip string, dryRun bool) error
	// For leaderboard requests
	SendLeaderboard(entries []combat.LeaderboardEntry, dryRun bool) error
	// For single-user stat requests
	SendUserStats(stats combat.UserStats, topWeapons []combat.WeaponStats, dryRun bool) error
}
