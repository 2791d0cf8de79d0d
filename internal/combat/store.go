package combat

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// New creates a new CombatStore backed by the given database.
func New(db *sql.DB) CombatStore {
	return &store{
		db: db,
	}
}

// GetUserStats returns a user's combat record, creating an all-zero row on
// first reference. Creation is idempotent: a concurrent first-touch for the
// same user leaves exactly one row behind.
func (s *store) GetUserStats(userID string) (UserStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := UserStats{UserID: userID}
	err := s.db.QueryRow(
		"SELECT wins, losses, total_fights FROM users WHERE user_id = ?", userID,
	).Scan(&stats.Wins, &stats.Losses, &stats.TotalFights)

	if err == sql.ErrNoRows {
		_, err = s.db.Exec(
			"INSERT INTO users (user_id) VALUES (?) ON CONFLICT(user_id) DO NOTHING", userID,
		)
		if err != nil {
			return UserStats{}, fmt.Errorf("failed to create user %s: %w", userID, err)
		}
		log.Debug("Created new user entry", "userID", userID)
		return stats, nil
	}
	if err != nil {
		return UserStats{}, fmt.Errorf("failed to read stats for user %s: %w", userID, err)
	}

	if stats.TotalFights != stats.Wins+stats.Losses {
		// Corrupted counters are an anomaly, not a reason to fail the fight.
		log.Warn("User counters violate wins+losses == total_fights",
			"userID", userID, "wins", stats.Wins, "losses", stats.Losses, "totalFights", stats.TotalFights)
	}
	return stats, nil
}

// GetWeaponStats returns a user's record with one weapon, creating the row
// (and the owning user row) on first use.
func (s *store) GetWeaponStats(userID, weaponName string) (WeaponStats, error) {
	if _, err := s.GetUserStats(userID); err != nil {
		return WeaponStats{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := WeaponStats{UserID: userID, WeaponName: weaponName}
	err := s.db.QueryRow(
		"SELECT uses, wins FROM user_weapons WHERE user_id = ? AND weapon_name = ?",
		userID, weaponName,
	).Scan(&stats.Uses, &stats.Wins)

	if err == sql.ErrNoRows {
		_, err = s.db.Exec(
			"INSERT INTO user_weapons (user_id, weapon_name) VALUES (?, ?) ON CONFLICT(user_id, weapon_name) DO NOTHING",
			userID, weaponName,
		)
		if err != nil {
			return WeaponStats{}, fmt.Errorf("failed to create weapon entry %s/%s: %w", userID, weaponName, err)
		}
		log.Debug("Created new weapon entry", "userID", userID, "weapon", weaponName)
		return stats, nil
	}
	if err != nil {
		return WeaponStats{}, fmt.Errorf("failed to read weapon stats %s/%s: %w", userID, weaponName, err)
	}

	if stats.Wins > stats.Uses {
		log.Warn("Weapon counters violate wins <= uses",
			"userID", userID, "weapon", weaponName, "wins", stats.Wins, "uses", stats.Uses)
	}
	return stats, nil
}

// GetTopWeapons returns a user's most used weapons, ties broken by wins.
func (s *store) GetTopWeapons(userID string, limit int) ([]WeaponStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT weapon_name, uses, wins
		FROM user_weapons
		WHERE user_id = ?
		ORDER BY uses DESC, wins DESC
		LIMIT ?
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top weapons for user %s: %w", userID, err)
	}
	defer rows.Close()

	var weapons []WeaponStats
	for rows.Next() {
		stats := WeaponStats{UserID: userID}
		if err := rows.Scan(&stats.WeaponName, &stats.Uses, &stats.Wins); err != nil {
			return nil, fmt.Errorf("failed to scan weapon row: %w", err)
		}
		weapons = append(weapons, stats)
	}
	return weapons, rows.Err()
}

// RecordFight atomically applies one fight outcome to both users' records and
// the attacker's weapon record. The increments run as single upsert statements
// inside one transaction, so concurrent fights touching the same rows
// serialize at the database instead of racing a read-then-write. Either all
// three rows land or none do.
func (s *store) RecordFight(attackerID, defenderID, weaponName string, attackerWon bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin fight transaction: %w", err)
	}

	attackerWins, attackerLosses := 0, 1
	defenderWins, defenderLosses := 1, 0
	weaponWins := 0
	if attackerWon {
		attackerWins, attackerLosses = 1, 0
		defenderWins, defenderLosses = 0, 1
		weaponWins = 1
	}

	userStmt := `
		INSERT INTO users (user_id, wins, losses, total_fights)
		VALUES (?, ?, ?, 1)
		ON CONFLICT(user_id) DO UPDATE SET
			wins = wins + excluded.wins,
			losses = losses + excluded.losses,
			total_fights = total_fights + 1;
	`
	if _, err = tx.Exec(userStmt, attackerID, attackerWins, attackerLosses); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to update attacker %s: %w", attackerID, err)
	}
	if _, err = tx.Exec(userStmt, defenderID, defenderWins, defenderLosses); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to update defender %s: %w", defenderID, err)
	}

	if _, err = tx.Exec(`
		INSERT INTO user_weapons (user_id, weapon_name, uses, wins)
		VALUES (?, ?, 1, ?)
		ON CONFLICT(user_id, weapon_name) DO UPDATE SET
			uses = uses + 1,
			wins = wins + excluded.wins;
	`, attackerID, weaponName, weaponWins); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to update weapon %s/%s: %w", attackerID, weaponName, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit fight transaction: %w", err)
	}

	log.Info("Recorded fight",
		"attackerID", attackerID, "defenderID", defenderID, "weapon", weaponName, "attackerWon", attackerWon)
	return nil
}

// InsertFight appends one fight to the history log.
func (s *store) InsertFight(fight Fight) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO fights (id, attacker_id, defender_id, weapon_name, attacker_won, win_chance, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, fight.ID, fight.AttackerID, fight.DefenderID, fight.WeaponName, fight.AttackerWon, fight.WinChance, fight.CreatedAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to insert fight %s: %w", fight.ID, err)
	}
	return nil
}

// GetRecentFights returns the newest fights first.
func (s *store) GetRecentFights(limit int) ([]Fight, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, attacker_id, defender_id, weapon_name, attacker_won, win_chance, created_at
		FROM fights
		ORDER BY created_at DESC, id
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent fights: %w", err)
	}
	defer rows.Close()

	var fights []Fight
	for rows.Next() {
		var f Fight
		var createdAt int64
		if err := rows.Scan(&f.ID, &f.AttackerID, &f.DefenderID, &f.WeaponName, &f.AttackerWon, &f.WinChance, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan fight row: %w", err)
		}
		f.CreatedAt = time.Unix(createdAt, 0)
		fights = append(fights, f)
	}
	return fights, rows.Err()
}

// Leaderboard returns users ordered by wins, losses breaking ties.
func (s *store) Leaderboard(limit int) ([]LeaderboardEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT user_id, wins, losses, total_fights
		FROM users
		WHERE total_fights > 0
		ORDER BY wins DESC, losses ASC, user_id
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []LeaderboardEntry
	for rows.Next() {
		var e LeaderboardEntry
		if err := rows.Scan(&e.UserID, &e.Wins, &e.Losses, &e.TotalFights); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard row: %w", err)
		}
		if e.TotalFights > 0 {
			e.WinPercentage = (float64(e.Wins) / float64(e.TotalFights)) * 100
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Clear removes all combat data. Weapon rows go with their users via cascade.
func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		log.Error("Failed to begin transaction for clearing store", "error", err)
		return
	}

	if _, err = tx.Exec("DELETE FROM fights"); err != nil {
		log.Error("Failed to clear fights table", "error", err)
		tx.Rollback()
		return
	}
	if _, err = tx.Exec("DELETE FROM users"); err != nil {
		log.Error("Failed to clear users table", "error", err)
		tx.Rollback()
		return
	}

	if err := tx.Commit(); err != nil {
		log.Error("Failed to commit transaction for clearing store", "error", err)
	}
}

// ClearUser removes a single user and, via cascade, their weapon records.
func (s *store) ClearUser(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("DELETE FROM users WHERE user_id = ?", userID)
	if err != nil {
		log.Error("Failed to clear user", "error", err, "userID", userID)
	}
}
