package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "debtbook-cli",
		Short: "DebtBook CLI tool",
		Long:  `A command line interface for interacting with the DebtBook API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the DebtBook API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	customerCmd := &cobra.Command{
		Use:   "customer",
		Short: "Customer operations",
	}
	customerCmd.AddCommand(customerAddCmd(), customerListCmd(), customerShowCmd(), customerUpdateCmd(), customerArchiveCmd())

	debtCmd := &cobra.Command{
		Use:   "debt",
		Short: "Debt operations",
	}
	debtCmd.AddCommand(debtAddCmd(), debtPayCmd(), debtIncreaseCmd(), debtToggleCmd())

	rootCmd.AddCommand(customerCmd, debtCmd, summaryCmd(), overdueCmd(), statementCmd(), goldPriceCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func customerAddCmd() *cobra.Command {
	var name, phone string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a new customer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return postAndPrint("/api/v1/customers/", map[string]any{
				"name":  name,
				"phone": phone,
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Customer name")
	cmd.Flags().StringVar(&phone, "phone", "", "Customer phone number")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func customerListCmd() *cobra.Command {
	var includeArchived bool
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List customers",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/api/v1/customers/?limit=%d", limit)
			if includeArchived {
				path += "&include_archived=true"
			}
			return getAndPrint(path)
		},
	}

	cmd.Flags().BoolVar(&includeArchived, "archived", false, "Include archived customers")
	cmd.Flags().IntVar(&limit, "limit", 50, "Maximum number of customers to list")

	return cmd
}

func customerShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <customerID>",
		Short: "Show a customer with all debts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getAndPrint("/api/v1/customers/" + args[0] + "/")
		},
	}
}

func customerUpdateCmd() *cobra.Command {
	var name, phone string

	cmd := &cobra.Command{
		Use:   "update <customerID>",
		Short: "Edit a customer's name and phone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return putAndPrint("/api/v1/customers/"+args[0]+"/", map[string]any{
				"name":  name,
				"phone": phone,
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Customer name")
	cmd.Flags().StringVar(&phone, "phone", "", "Customer phone number")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func customerArchiveCmd() *cobra.Command {
	var undo bool

	cmd := &cobra.Command{
		Use:   "archive <customerID>",
		Short: "Archive or unarchive a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return postAndPrint("/api/v1/customers/"+args[0]+"/archive", map[string]any{
				"archived": !undo,
			})
		},
	}

	cmd.Flags().BoolVar(&undo, "undo", false, "Unarchive instead of archive")

	return cmd
}

func debtAddCmd() *cobra.Command {
	var label, unit, principal, goldRate string
	var months int

	cmd := &cobra.Command{
		Use:   "add <customerID>",
		Short: "Register a new debt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]any{
				"label":          label,
				"unit":           unit,
				"principal_cash": principal,
				"term_months":    months,
			}
			if goldRate != "" {
				body["gold_rate"] = goldRate
			}
			return postAndPrint("/api/v1/customers/"+args[0]+"/debts/", body)
		},
	}

	cmd.Flags().StringVar(&label, "label", "", "What the debt is for")
	cmd.Flags().StringVar(&unit, "unit", "CASH", "Debt unit (CASH or GOLD)")
	cmd.Flags().StringVar(&principal, "principal", "", "Principal amount in EGP")
	cmd.Flags().StringVar(&goldRate, "gold-rate", "", "Registration gold rate in EGP per gram (gold debts only)")
	cmd.Flags().IntVar(&months, "months", 1, "Number of monthly installments")
	_ = cmd.MarkFlagRequired("label")
	_ = cmd.MarkFlagRequired("principal")

	return cmd
}

func debtPayCmd() *cobra.Command {
	var amount string

	cmd := &cobra.Command{
		Use:   "pay <customerID> <debtID>",
		Short: "Record a cash payment against a debt",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return postAndPrint("/api/v1/customers/"+args[0]+"/debts/"+args[1]+"/payments", map[string]any{
				"amount": amount,
			})
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "Payment amount in EGP")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func debtIncreaseCmd() *cobra.Command {
	var amount, reason string

	cmd := &cobra.Command{
		Use:   "increase <customerID> <debtID>",
		Short: "Increase an existing debt",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return postAndPrint("/api/v1/customers/"+args[0]+"/debts/"+args[1]+"/increases", map[string]any{
				"amount": amount,
				"reason": reason,
			})
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "Increase amount in EGP")
	cmd.Flags().StringVar(&reason, "reason", "", "Why the debt grew")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("reason")

	return cmd
}

func debtToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <customerID> <debtID> <installmentID>",
		Short: "Toggle an installment between paid and unpaid",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/customers/" + args[0] + "/debts/" + args[1] + "/installments/" + args[2] + "/toggle"
			return postAndPrint(path, nil)
		},
	}
}

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show the shop-wide outstanding balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			return getAndPrint("/api/v1/reports/summary")
		},
	}
}

func overdueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "overdue",
		Short: "List overdue installments across all customers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return getAndPrint("/api/v1/reports/overdue")
		},
	}
}

func statementCmd() *cobra.Command {
	var csv bool

	cmd := &cobra.Command{
		Use:   "statement <customerID>",
		Short: "Show a customer statement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if csv {
				return getAndDump("/api/v1/customers/" + args[0] + "/statement.csv")
			}
			return getAndPrint("/api/v1/customers/" + args[0] + "/statement")
		},
	}

	cmd.Flags().BoolVar(&csv, "csv", false, "Output as CSV")

	return cmd
}

func goldPriceCmd() *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:   "goldprice",
		Short: "Show the daily gold price",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/goldprice"
			if refresh {
				path += "?refresh=true"
			}
			return getAndPrint(path)
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "Bypass the daily cache")

	return cmd
}

func getAndPrint(path string) error {
	body, err := doRequest(http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return printResponse(body)
}

func getAndDump(path string) error {
	body, err := doRequest(http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	fmt.Print(string(body))
	return nil
}

func postAndPrint(path string, payload map[string]any) error {
	return sendAndPrint(http.MethodPost, path, payload)
}

func putAndPrint(path string, payload map[string]any) error {
	return sendAndPrint(http.MethodPut, path, payload)
}

func sendAndPrint(method, path string, payload map[string]any) error {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(encoded)
	}

	body, err := doRequest(method, path, reqBody)
	if err != nil {
		return err
	}
	return printResponse(body)
}

func doRequest(method, path string, reqBody io.Reader) ([]byte, error) {
	client := &http.Client{Timeout: timeout}

	req, err := http.NewRequest(method, baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("request failed (status %d): %s", resp.StatusCode, truncate(string(body), 200))
	}

	return body, nil
}

func printResponse(body []byte) error {
	if len(body) == 0 {
		fmt.Println("OK")
		return nil
	}

	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		fmt.Println(string(body))
		return nil
	}

	printJSON(decoded)
	return nil
}

func printJSON(v any) {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("failed to render response: %v\n", err)
		return
	}
	fmt.Println(string(encoded))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
