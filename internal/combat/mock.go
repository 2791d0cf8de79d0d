package combat

import "sync"

// MockStore is a mock implementation of the CombatStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	GetUserStatsFunc    func(userID string) (UserStats, error)
	GetWeaponStatsFunc  func(userID, weaponName string) (WeaponStats, error)
	GetTopWeaponsFunc   func(userID string, limit int) ([]WeaponStats, error)
	RecordFightFunc     func(attackerID, defenderID, weaponName string, attackerWon bool) error
	InsertFightFunc     func(fight Fight) error
	GetRecentFightsFunc func(limit int) ([]Fight, error)
	LeaderboardFunc     func(limit int) ([]LeaderboardEntry, error)
	ClearFunc           func()
	ClearUserFunc       func(userID string)

	// Call records
	GetUserStatsCalls   []string
	GetWeaponStatsCalls []struct {
		UserID     string
		WeaponName string
	}
	RecordFightCalls []RecordFightCall
	InsertFightCalls []Fight
	ClearUserCalls   []string
}

// RecordFightCall holds the arguments for a call to RecordFight.
type RecordFightCall struct {
	AttackerID  string
	DefenderID  string
	WeaponName  string
	AttackerWon bool
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetUserStatsCalls = nil
	m.GetWeaponStatsCalls = nil
	m.RecordFightCalls = nil
	m.InsertFightCalls = nil
	m.ClearUserCalls = nil
}

func (m *MockStore) GetUserStats(userID string) (UserStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetUserStatsCalls = append(m.GetUserStatsCalls, userID)
	if m.GetUserStatsFunc != nil {
		return m.GetUserStatsFunc(userID)
	}
	return UserStats{UserID: userID}, nil
}

func (m *MockStore) GetWeaponStats(userID, weaponName string) (WeaponStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetWeaponStatsCalls = append(m.GetWeaponStatsCalls, struct {
		UserID     string
		WeaponName string
	}{userID, weaponName})
	if m.GetWeaponStatsFunc != nil {
		return m.GetWeaponStatsFunc(userID, weaponName)
	}
	return WeaponStats{UserID: userID, WeaponName: weaponName}, nil
}

func (m *MockStore) GetTopWeapons(userID string, limit int) ([]WeaponStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetTopWeaponsFunc != nil {
		return m.GetTopWeaponsFunc(userID, limit)
	}
	return nil, nil
}

func (m *MockStore) RecordFight(attackerID, defenderID, weaponName string, attackerWon bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RecordFightCalls = append(m.RecordFightCalls, RecordFightCall{attackerID, defenderID, weaponName, attackerWon})
	if m.RecordFightFunc != nil {
		return m.RecordFightFunc(attackerID, defenderID, weaponName, attackerWon)
	}
	return nil
}

func (m *MockStore) InsertFight(fight Fight) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InsertFightCalls = append(m.InsertFightCalls, fight)
	if m.InsertFightFunc != nil {
		return m.InsertFightFunc(fight)
	}
	return nil
}

func (m *MockStore) GetRecentFights(limit int) ([]Fight, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetRecentFightsFunc != nil {
		return m.GetRecentFightsFunc(limit)
	}
	return nil, nil
}

func (m *MockStore) Leaderboard(limit int) ([]LeaderboardEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LeaderboardFunc != nil {
		return m.LeaderboardFunc(limit)
	}
	return nil, nil
}

func (m *MockStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ClearFunc != nil {
		m.ClearFunc()
	}
}

func (m *MockStore) ClearUser(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ClearUserCalls = append(m.ClearUserCalls, userID)
	if m.ClearUserFunc != nil {
		m.ClearUserFunc(userID)
	}
}
