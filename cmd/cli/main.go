package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rollup-cli",
		Short: "Rollup CLI tool",
		Long:  `A command line interface for the rollup reconciliation API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the rollup API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	// Ledger commands
	ledgerCmd := &cobra.Command{
		Use:   "ledger",
		Short: "Ledger operations",
	}
	ledgerCmd.AddCommand(&cobra.Command{
		Use:   "consistency",
		Short: "Check ledger consistency",
		RunE: func(cmd *cobra.Command, args []string) error {
			return checkConsistency(cmd.OutOrStdout())
		},
	})
	rootCmd.AddCommand(ledgerCmd)

	// Reconcile commands
	reconcileCmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Force reconciliation of a cached aggregate",
	}
	for _, entity := range []string{"subaccount", "account", "customer", "family"} {
		entity := entity
		reconcileCmd.AddCommand(&cobra.Command{
			Use:   entity + " <key>",
			Short: "Reconcile one " + entity,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return reconcile(cmd.OutOrStdout(), entity, args[0])
			},
		})
	}
	rootCmd.AddCommand(reconcileCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// reconcilePath maps an entity to its API collection segment.
func reconcilePath(entity, key string) string {
	plural := entity + "s"
	if strings.HasSuffix(entity, "y") {
		plural = entity[:len(entity)-1] + "ies"
	}

	return "/api/v1/" + plural + "/" + key + "/reconcile"
}

func reconcile(out io.Writer, entity, key string) error {
	client := &http.Client{Timeout: timeout}

	resp, err := client.Post(baseURL+reconcilePath(entity, key), "application/json", nil)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("reconcile failed (status %d): %s", resp.StatusCode, string(body))
	}

	fmt.Fprintf(out, "reconciled %s %s\n", entity, key)
	printJSON(out, body)

	return nil
}

func checkConsistency(out io.Writer) error {
	client := &http.Client{Timeout: timeout}

	resp, err := client.Get(baseURL + "/api/v1/ledger/consistency")
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("consistency check FAILED (status %d): %s", resp.StatusCode, string(body))
	}

	fmt.Fprintln(out, "consistency check PASSED")
	printJSON(out, body)

	return nil
}

func printJSON(out io.Writer, body []byte) {
	var pretty map[string]any
	if err := json.Unmarshal(body, &pretty); err != nil {
		fmt.Fprintln(out, string(body))
		return
	}

	encoded, _ := json.MarshalIndent(pretty, "", "  ")
	fmt.Fprintln(out, string(encoded))
}
