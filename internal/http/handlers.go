package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/mverbeek/firefight/internal/resolver"
	"github.com/mverbeek/firefight/internal/weapons"
)

const defaultListLimit = 10

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

// AttackHandler resolves one fight between two users.
func (s *Server) AttackHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		attackerID := r.URL.Query().Get("attacker")
		defenderID := r.URL.Query().Get("defender")
		weaponName := r.URL.Query().Get("weapon")
		if attackerID == "" || defenderID == "" {
			http.Error(w, "Both 'attacker' and 'defender' are required", http.StatusBadRequest)
			return
		}

		result, err := s.Resolver.ResolveFight(attackerID, defenderID, weaponName, isDryRunFromContext(r))
		if err != nil {
			switch {
			case errors.Is(err, resolver.ErrSelfAttack):
				http.Error(w, "You can't attack yourself, that's not very tactical!", http.StatusBadRequest)
			case errors.Is(err, weapons.ErrUnknownWeapon):
				http.Error(w, fmt.Sprintf("%q is not a recognized weapon", weaponName), http.StatusBadRequest)
			default:
				log.Error("Failed to resolve fight", "error", err, "attackerID", attackerID, "defenderID", defenderID)
				http.Error(w, "Failed to resolve fight", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, result)
	}
}

// UserStatsHandler returns a user's combat record and top weapons.
// With announce=true the record is also posted to the channel.
func (s *Server) UserStatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.URL.Query().Get("user")
		if userID == "" {
			http.Error(w, "'user' is required", http.StatusBadRequest)
			return
		}

		stats, topWeapons, err := s.Resolver.UserRecord(userID, 5)
		if err != nil {
			log.Error("Failed to get user record", "error", err, "userID", userID)
			http.Error(w, "Failed to get user record", http.StatusInternalServerError)
			return
		}

		if r.URL.Query().Get("announce") == "true" {
			if err := s.Notifier.SendUserStats(stats, topWeapons, isDryRunFromContext(r)); err != nil {
				log.Error("Failed to announce user stats", "error", err, "userID", userID)
			}
		}

		writeJSON(w, map[string]any{
			"user":        stats,
			"win_rate":    stats.WinRate(),
			"top_weapons": topWeapons,
		})
	}
}

func (s *Server) LeaderboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := s.Store.Leaderboard(limitParam(r, defaultListLimit))
		if err != nil {
			log.Error("Failed to get leaderboard", "error", err)
			http.Error(w, "Failed to get leaderboard", http.StatusInternalServerError)
			return
		}

		if r.URL.Query().Get("announce") == "true" {
			if err := s.Notifier.SendLeaderboard(entries, isDryRunFromContext(r)); err != nil {
				log.Error("Failed to announce leaderboard", "error", err)
			}
		}

		writeJSON(w, entries)
	}
}

// WeaponsHandler lists the catalog, or suggestions when 'q' is given.
func (s *Server) WeaponsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if query := r.URL.Query().Get("q"); query != "" {
			writeJSON(w, weapons.Suggest(query, 25))
			return
		}
		writeJSON(w, weapons.All())
	}
}

func (s *Server) RecentFightsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fights, err := s.Store.GetRecentFights(limitParam(r, defaultListLimit))
		if err != nil {
			log.Error("Failed to get recent fights", "error", err)
			http.Error(w, "Failed to get recent fights", http.StatusInternalServerError)
			return
		}
		writeJSON(w, fights)
	}
}

func (s *Server) ClearStoreHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.URL.Query().Get("user")
		if userID != "" {
			log.Info("Received request to clear a specific user", "userID", userID)
			s.Store.ClearUser(userID)
			w.WriteHeader(http.StatusOK)
			fmt.Fprintf(w, "Cleared user %s from store!", userID)
		} else {
			log.Info("Received request to clear entire store")
			s.Store.Clear()
			w.WriteHeader(http.StatusOK)
			fmt.Fprint(w, "Store cleared!")
		}
	}
}

func limitParam(r *http.Request, fallback int) int {
	limitStr := r.URL.Query().Get("limit")
	if limitStr == "" {
		return fallback
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		log.Warn("Invalid 'limit' parameter provided. Using default.", "limit_param", limitStr)
		return fallback
	}
	return limit
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}
