package notifier

import (
	"sync"

	"github.com/mverbeek/firefight/internal/combat"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies for method calls
	SendCombatReportFunc func(fight combat.Fight, quip string, dryRun bool) error
	SendLeaderboardFunc  func(entries []combat.LeaderboardEntry, dryRun bool) error
	SendUserStatsFunc    func(stats combat.UserStats, topWeapons []combat.WeaponStats, dryRun bool) error

	// Call records
	SendCombatReportCalls []SendCombatReportCall
	SendLeaderboardCalls  [][]combat.LeaderboardEntry
	SendUserStatsCalls    []combat.UserStats
}

// SendCombatReportCall holds the arguments for a call to SendCombatReport.
type SendCombatReportCall struct {
	Fight combat.Fight
	Quip  string
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendCombatReportCalls = nil
	m.SendLeaderboardCalls = nil
	m.SendUserStatsCalls = nil
}

func (m *Mock) SendCombatReport(fight combat.Fight, quip string, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendCombatReportCalls = append(m.SendCombatReportCalls, SendCombatReportCall{Fight: fight, Quip: quip})
	if m.SendCombatReportFunc != nil {
		return m.SendCombatReportFunc(fight, quip, dryRun)
	}
	return nil
}

func (m *Mock) SendLeaderboard(entries []combat.LeaderboardEntry, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendLeaderboardCalls = append(m.SendLeaderboardCalls, entries)
	if m.SendLeaderboardFunc != nil {
		return m.SendLeaderboardFunc(entries, dryRun)
	}
	return nil
}

func (m *Mock) SendUserStats(stats combat.UserStats, topWeapons []combat.WeaponStats, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendUserStatsCalls = append(m.SendUserStatsCalls, stats)
	if m.SendUserStatsFunc != nil {
		return m.SendUserStatsFunc(stats, topWeapons, dryRun)
	}
	return nil
}
