package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
)

var (
	attackWeapon string
	dryRun       bool
)

func init() {
	attackCmd.Flags().StringVar(&attackWeapon, "weapon", "", "The weapon to attack with (random when omitted)")
	attackCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Resolve the fight without recording it")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(attackCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(weaponsCmd)
	rootCmd.AddCommand(fightsCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var attackCmd = &cobra.Command{
	Use:   "attack <attacker> <defender>",
	Short: "Resolve a fight between two users",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		params := url.Values{}
		params.Set("attacker", args[0])
		params.Set("defender", args[1])
		if attackWeapon != "" {
			params.Set("weapon", attackWeapon)
		}
		if dryRun {
			params.Set("dry_run", "true")
		}
		return performPostRequest("/attack?" + params.Encode())
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats <user>",
	Short: "Show a user's combat record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/stats?user=" + url.QueryEscape(args[0]))
	},
}

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show the combat leaderboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/leaderboard")
	},
}

var weaponsCmd = &cobra.Command{
	Use:   "weapons",
	Short: "List the weapon catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/weapons")
	},
}

var fightsCmd = &cobra.Command{
	Use:   "fights",
	Short: "Show the most recent fights",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/fights")
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

func performGetRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func performPostRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Post(url, "application/json", nil)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
