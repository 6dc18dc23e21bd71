package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pennyledger-cli",
		Short: "PennyLedger CLI tool",
		Long:  `A command line interface for interacting with the PennyLedger API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the PennyLedger API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(addCmd())
	rootCmd.AddCommand(deleteCmd())
	rootCmd.AddCommand(balanceCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

type entryPayload struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// decodeEnvelope unwraps the API response envelope, returning the raw
// data payload or the server's error message.
func decodeEnvelope(body []byte) (json.RawMessage, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if !env.Success {
		return nil, fmt.Errorf("server error: %s", env.Error)
	}

	return env.Data, nil
}

// computeBalance folds credits minus debits over the entries.
func computeBalance(entries []entryPayload) decimal.Decimal {
	balance := decimal.Zero
	for _, e := range entries {
		if e.Type == "credit" {
			balance = balance.Add(e.Amount)
		} else {
			balance = balance.Sub(e.Amount)
		}
	}
	return balance
}

func fetchEntries() ([]entryPayload, error) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + "/entries")
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	data, err := decodeEnvelope(body)
	if err != nil {
		return nil, err
	}

	var entries []entryPayload
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse entries: %w", err)
	}

	return entries, nil
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := fetchEntries()
			if err != nil {
				return err
			}

			for _, e := range entries {
				sign := "+"
				if e.Type != "credit" {
					sign = "-"
				}
				fmt.Printf("%s  %s  %s%s  %s\n", e.ID, e.Date, sign, e.Amount.StringFixed(2), e.Description)
			}
			fmt.Printf("balance: %s\n", computeBalance(entries).StringFixed(2))

			return nil
		},
	}
}

func addCmd() *cobra.Command {
	var (
		entryType   string
		amount      string
		description string
		date        string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			amt, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("invalid amount: %w", err)
			}

			payload, _ := json.Marshal(map[string]any{
				"type":        entryType,
				"amount":      amt,
				"description": description,
				"date":        date,
			})

			client := &http.Client{Timeout: timeout}
			resp, err := client.Post(baseURL+"/entries", "application/json", bytes.NewReader(payload))
			if err != nil {
				return fmt.Errorf("request failed: %w", err)
			}
			defer resp.Body.Close()

			body, _ := io.ReadAll(resp.Body)

			data, err := decodeEnvelope(body)
			if err != nil {
				return err
			}

			var created entryPayload
			if err := json.Unmarshal(data, &created); err != nil {
				return fmt.Errorf("failed to parse entry: %w", err)
			}

			fmt.Printf("created entry %s\n", created.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&entryType, "type", "", "Entry type: credit or debit")
	cmd.Flags().StringVar(&amount, "amount", "", "Entry amount")
	cmd.Flags().StringVar(&description, "description", "", "Entry description")
	cmd.Flags().StringVar(&date, "date", time.Now().Format("2006-01-02"), "Effective date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("description")

	return cmd
}

func deleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an entry by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			if !yes && !confirm(cmd.InOrStdin(), fmt.Sprintf("delete entry %s?", id)) {
				fmt.Println("aborted")
				return nil
			}

			client := &http.Client{Timeout: timeout}
			req, err := http.NewRequest(http.MethodDelete, baseURL+"/entries/"+id, nil)
			if err != nil {
				return err
			}

			resp, err := client.Do(req)
			if err != nil {
				return fmt.Errorf("request failed: %w", err)
			}
			defer resp.Body.Close()

			body, _ := io.ReadAll(resp.Body)

			data, err := decodeEnvelope(body)
			if err != nil {
				return err
			}

			var removed entryPayload
			if err := json.Unmarshal(data, &removed); err != nil {
				return fmt.Errorf("failed to parse entry: %w", err)
			}

			fmt.Printf("deleted entry %s (%s)\n", removed.ID, removed.Description)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")

	return cmd
}

func balanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show the current balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := fetchEntries()
			if err != nil {
				return err
			}

			fmt.Println(computeBalance(entries).StringFixed(2))
			return nil
		},
	}
}

// confirm prompts for a y/N answer on the given reader.
func confirm(in io.Reader, prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)

	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		return false
	}

	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}
