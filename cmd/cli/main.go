package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var (
	baseURL string
	timeout time.Duration
	token   string
)

// swappable for tests
var bcryptGenerate = bcrypt.GenerateFromPassword

func main() {
	rootCmd := &cobra.Command{
		Use:   "vendorhub-cli",
		Short: "VendorHub CLI tool",
		Long:  `A command line interface for interacting with the VendorHub dashboard API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the VendorHub API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "Vendor JWT for authenticated endpoints")

	rootCmd.AddCommand(ratesCmd())
	rootCmd.AddCommand(convertCmd())
	rootCmd.AddCommand(payoutsCmd())
	rootCmd.AddCommand(transactionsCmd())
	rootCmd.AddCommand(escrowCmd())
	rootCmd.AddCommand(hashPasswordCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func ratesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rates",
		Short: "Show supported currencies and exchange rates",
		Run: func(cmd *cobra.Command, args []string) {
			get("/api/v1/currency", nil)
		},
	}
}

func convertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <amount> <from> <to>",
		Short: "Convert an amount between currencies",
		Args:  cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			path := fmt.Sprintf("/api/v1/currency/convert?amount=%s&from=%s&to=%s", args[0], args[1], args[2])
			get(path, nil)
		},
	}
	return cmd
}

func payoutsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payouts",
		Short: "Payout operations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "balance",
		Short: "Show the payout balance snapshot",
		Run: func(cmd *cobra.Command, args []string) {
			get("/api/v1/payouts/", authHeader())
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "history",
		Short: "List payout attempts",
		Run: func(cmd *cobra.Command, args []string) {
			get("/api/v1/payouts/history", authHeader())
		},
	})

	return cmd
}

func transactionsCmd() *cobra.Command {
	var page, limit int
	var txType string

	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "Show the merged transaction feed",
		Run: func(cmd *cobra.Command, args []string) {
			path := fmt.Sprintf("/api/v1/transactions?page=%d&limit=%d&type=%s", page, limit, txType)
			printTransactions(path)
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().IntVar(&limit, "limit", 10, "Page size")
	cmd.Flags().StringVar(&txType, "type", "all", "Filter by type (earning, withdrawal, refund, all)")

	return cmd
}

func escrowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "escrow",
		Short: "Escrow operations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "summary",
		Short: "Show held and released escrow totals",
		Run: func(cmd *cobra.Command, args []string) {
			get("/api/v1/escrow/summary", authHeader())
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "release-due",
		Short: "Release escrow entries whose hold has elapsed",
		Run: func(cmd *cobra.Command, args []string) {
			post("/api/v1/escrow/release-due", authHeader())
		},
	})

	return cmd
}

func hashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Hash a vendor password for seeding",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := bcryptGenerate([]byte(args[0]), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			fmt.Println(string(hash))
			return nil
		},
	}
}

func authHeader() map[string]string {
	if token == "" {
		return nil
	}
	return map[string]string{"Authorization": "Bearer " + token}
}

func get(path string, headers map[string]string) {
	do(http.MethodGet, path, headers)
}

func post(path string, headers map[string]string) {
	do(http.MethodPost, path, headers)
}

func do(method, path string, headers map[string]string) {
	req, err := http.NewRequest(method, baseURL+path, nil)
	if err != nil {
		fmt.Printf("Error building request: %v\n", err)
		os.Exit(1)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= 400 {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var result any
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	printJSON(result)
}

func printTransactions(path string) {
	req, err := http.NewRequest(http.MethodGet, baseURL+path, nil)
	if err != nil {
		fmt.Printf("Error building request: %v\n", err)
		os.Exit(1)
	}
	for k, v := range authHeader() {
		req.Header.Set(k, v)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var page struct {
		Transactions []struct {
			ID          string `json:"id"`
			Type        string `json:"type"`
			Description string `json:"description"`
			Amount      string `json:"amount"`
			Currency    string `json:"currency"`
			Date        string `json:"date"`
		} `json:"transactions"`
		Page  int `json:"page"`
		Pages int `json:"pages"`
		Total int `json:"total"`
	}
	if err := json.Unmarshal(body, &page); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%-28s %-18s %-32s %12s %4s\n", "ID", "TYPE", "DESCRIPTION", "AMOUNT", "CCY")
	for _, tx := range page.Transactions {
		fmt.Printf("%-28s %-18s %-32s %12s %4s\n",
			truncate(tx.ID, 28), tx.Type, truncate(tx.Description, 32), tx.Amount, tx.Currency)
	}
	fmt.Printf("\nPage %d of %d (%d records)\n", page.Page, page.Pages, page.Total)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("Failed to render response: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
