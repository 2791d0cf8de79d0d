package main

import (
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/mverbeek/firefight/internal/weapons"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := make(map[string]string)
	required := []string{"TURSO_PRIMARY_URL", "TURSO_AUTH_TOKEN"}

	for _, key := range required {
		if value, ok := os.LookupEnv(key); ok {
			config[key] = value
		} else {
			log.Fatalf("Error: Required environment variable %s is not set.", key)
		}
	}
	return config
}

func main() {
	log.Info("Starting database seeder...")
	cfg := loadConfig()

	// Connect directly to the primary database
	dbURL := fmt.Sprintf("%s?authToken=%s", cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"])
	db, err := sql.Open("libsql", dbURL)
	if err != nil {
		log.Fatalf("Failed to open primary database: %s", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to primary database: %s", err)
	}

	log.Info("Successfully connected to the primary database.")

	dummyUsers := []string{"seed-user-1", "seed-user-2", "seed-user-3", "seed-user-4"}
	for _, id := range dummyUsers {
		_, err := db.Exec("INSERT OR IGNORE INTO users (user_id, wins, losses, total_fights) VALUES (?, 0, 0, 0)", id)
		if err != nil {
			log.Fatalf("Failed to insert dummy user %s: %s", id, err)
		}
	}
	log.Info("Ensured dummy users exist.")

	catalog := weapons.Names()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	const batchSize = 100 // Insert 100 fights at a time
	const numFights = 10000

	log.Info("Preparing to insert dummy fights...", "total", numFights, "batch_size", batchSize)
	startTime := time.Now()

	tx, err := db.Begin()
	if err != nil {
		log.Fatalf("Failed to begin transaction: %s", err)
	}

	valueStrings := make([]string, 0, batchSize)
	valueArgs := make([]interface{}, 0, batchSize*7)

	for i := 0; i < numFights; i++ {
		attacker := dummyUsers[rng.Intn(len(dummyUsers))]
		defender := dummyUsers[rng.Intn(len(dummyUsers))]
		for defender == attacker {
			defender = dummyUsers[rng.Intn(len(dummyUsers))]
		}
		fightTime := time.Now().Add(-time.Duration(rng.Intn(365*24)) * time.Hour)

		valueStrings = append(valueStrings, "(?, ?, ?, ?, ?, ?, ?)")
		valueArgs = append(valueArgs,
			uuid.NewString(),
			attacker,
			defender,
			catalog[rng.Intn(len(catalog))],
			rng.Intn(2),
			0.10+rng.Float64()*0.80,
			fightTime.Unix(),
		)

		if (i+1)%batchSize == 0 || (i+1) == numFights {
			stmt := fmt.Sprintf(`
				INSERT INTO fights (id, attacker_id, defender_id, weapon_name, attacker_won, win_chance, created_at)
				VALUES %s;`, strings.Join(valueStrings, ","))

			_, err := tx.Exec(stmt, valueArgs...)
			if err != nil {
				tx.Rollback()
				log.Fatalf("Failed to execute batch insert: %s", err)
			}

			// Reset for the next batch
			valueStrings = make([]string, 0, batchSize)
			valueArgs = make([]interface{}, 0, batchSize*7)
			log.Info("Inserted batch", "completed", i+1, "total", numFights)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Fatalf("Failed to commit transaction: %s", err)
	}

	// Rebuild the aggregate tables from the seeded history so the
	// win rates line up with what the fights table says.
	log.Info("Rebuilding aggregate stats from seeded fights...")
	rebuild := []string{
		`INSERT INTO users (user_id, wins, losses, total_fights)
			SELECT attacker_id, SUM(attacker_won), SUM(1 - attacker_won), COUNT(*) FROM fights GROUP BY attacker_id
			ON CONFLICT(user_id) DO UPDATE SET wins = excluded.wins, losses = excluded.losses, total_fights = excluded.total_fights;`,
		`INSERT INTO users (user_id, wins, losses, total_fights)
			SELECT defender_id, SUM(1 - attacker_won), SUM(attacker_won), COUNT(*) FROM fights GROUP BY defender_id
			ON CONFLICT(user_id) DO UPDATE SET
				wins = users.wins + excluded.wins,
				losses = users.losses + excluded.losses,
				total_fights = users.total_fights + excluded.total_fights;`,
		`INSERT INTO user_weapons (user_id, weapon_name, uses, wins)
			SELECT attacker_id, weapon_name, COUNT(*), SUM(attacker_won) FROM fights GROUP BY attacker_id, weapon_name
			ON CONFLICT(user_id, weapon_name) DO UPDATE SET uses = excluded.uses, wins = excluded.wins;`,
	}
	for _, stmt := range rebuild {
		if _, err := db.Exec(stmt); err != nil {
			log.Fatalf("Failed to rebuild aggregates: %s", err)
		}
	}

	duration := time.Since(startTime)
	log.Info("Successfully inserted all dummy fights.", "duration", duration)
}
