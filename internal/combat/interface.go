package combat

// CombatStore defines the interface for reading and updating combat statistics.
type CombatStore interface {
	GetUserStats(userID string) (UserStats, error)
	GetWeaponStats(userID, weaponName string) (WeaponStats, error)
	GetTopWeapons(userID string, limit int) ([]WeaponStats, error)
	RecordFight(attackerID, defenderID, weaponName string, attackerWon bool) error
	InsertFight(fight Fight) error
	GetRecentFights(limit int) ([]Fight, error)
	Leaderboard(limit int) ([]LeaderboardEntry, error)
	Clear()
	ClearUser(userID string)
}
