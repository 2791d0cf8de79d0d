package combat

import (
	"database/sql"
	"sync"
	"time"
)

// store handles all database operations for combat statistics.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// UserStats is a user's overall combat record.
type UserStats struct {
	UserID      string `json:"user_id"`
	Wins        int    `json:"wins"`
	Losses      int    `json:"losses"`
	TotalFights int    `json:"total_fights"`
}

// WinRate returns wins/total_fights, or 0 when the user has no fights.
func (u UserStats) WinRate() float64 {
	if u.TotalFights == 0 {
		return 0
	}
	return float64(u.Wins) / float64(u.TotalFights)
}

// WeaponStats is a user's record with a single weapon.
type WeaponStats struct {
	UserID     string `json:"user_id"`
	WeaponName string `json:"weapon_name"`
	Uses       int    `json:"uses"`
	Wins       int    `json:"wins"`
}

// WinRate returns wins/uses, or 0 when the weapon has never been used.
func (w WeaponStats) WinRate() float64 {
	if w.Uses == 0 {
		return 0
	}
	return float64(w.Wins) / float64(w.Uses)
}

// Fight is one resolved attacker-vs-defender interaction.
type Fight struct {
	ID          string    `json:"id"`
	AttackerID  string    `json:"attacker_id"`
	DefenderID  string    `json:"defender_id"`
	WeaponName  string    `json:"weapon_name"`
	AttackerWon bool      `json:"attacker_won"`
	WinChance   float64   `json:"win_chance"`
	CreatedAt   time.Time `json:"created_at"`
}

// LeaderboardEntry is one row of the wins leaderboard.
type LeaderboardEntry struct {
	UserID        string  `json:"user_id"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	TotalFights   int     `json:"total_fights"`
	WinPercentage float64 `json:"win_percentage"`
}
