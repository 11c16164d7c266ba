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
	token   string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "transfergate-cli",
		Short: "TransferGate CLI tool",
		Long:  `A command line interface for interacting with the TransferGate API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the TransferGate API")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "Bearer token for authentication")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	transferCmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer operations",
	}

	var (
		kind            string
		source          string
		destination     string
		bankCode        string
		externalAccount string
		amount          string
		description     string
		idempotencyKey  string
	)

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Execute a transfer",
		Run: func(cmd *cobra.Command, args []string) {
			createTransfer(createTransferParams{
				kind:            kind,
				source:          source,
				destination:     destination,
				bankCode:        bankCode,
				externalAccount: externalAccount,
				amount:          amount,
				description:     description,
				idempotencyKey:  idempotencyKey,
			})
		},
	}
	createCmd.Flags().StringVar(&kind, "kind", "", "Transfer kind: INTRA_OWN, INTRA_THIRD_PARTY or INTERBANK")
	createCmd.Flags().StringVar(&source, "source", "", "Source account ID")
	createCmd.Flags().StringVar(&destination, "destination", "", "Destination account ID (intra-bank)")
	createCmd.Flags().StringVar(&bankCode, "bank-code", "", "Destination bank code (interbank)")
	createCmd.Flags().StringVar(&externalAccount, "external-account", "", "External account number (interbank)")
	createCmd.Flags().StringVar(&amount, "amount", "", "Amount to transfer")
	createCmd.Flags().StringVar(&description, "description", "", "Transfer description")
	createCmd.Flags().StringVar(&idempotencyKey, "idempotency-key", "", "Idempotency key for safe retries")

	getCmd := &cobra.Command{
		Use:   "get [id]",
		Short: "Get a transfer by ID",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			getTransfer(args[0])
		},
	}

	var (
		accountID string
		kindQuery string
	)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List transfers",
		Run: func(cmd *cobra.Command, args []string) {
			listTransfers(accountID, kindQuery)
		},
	}
	listCmd.Flags().StringVar(&accountID, "account", "", "Filter by account ID")
	listCmd.Flags().StringVar(&kindQuery, "kind", "", "Filter by transfer kind")

	transferCmd.AddCommand(createCmd, getCmd, listCmd)
	rootCmd.AddCommand(transferCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

type createTransferParams struct {
	kind            string
	source          string
	destination     string
	bankCode        string
	externalAccount string
	amount          string
	description     string
	idempotencyKey  string
}

func createTransfer(p createTransferParams) {
	payload := map[string]string{
		"kind":              p.kind,
		"source_account_id": p.source,
		"amount":            p.amount,
	}
	if p.destination != "" {
		payload["destination_account_id"] = p.destination
	}
	if p.bankCode != "" {
		payload["bank_code"] = p.bankCode
	}
	if p.externalAccount != "" {
		payload["external_account_number"] = p.externalAccount
	}
	if p.description != "" {
		payload["description"] = p.description
	}

	body, err := json.Marshal(payload)
	if err != nil {
		fmt.Printf("Failed to build request: %v\n", err)
		os.Exit(1)
	}

	req, err := http.NewRequest(http.MethodPost, baseURL+"/api/v1/transfers", bytes.NewReader(body))
	if err != nil {
		fmt.Printf("Failed to build request: %v\n", err)
		os.Exit(1)
	}
	req.Header.Set("Content-Type", "application/json")
	if p.idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", p.idempotencyKey)
	}

	doRequest(req)
}

func getTransfer(id string) {
	req, err := http.NewRequest(http.MethodGet, baseURL+"/api/v1/transfers/"+id, nil)
	if err != nil {
		fmt.Printf("Failed to build request: %v\n", err)
		os.Exit(1)
	}

	doRequest(req)
}

func listTransfers(accountID, kind string) {
	req, err := http.NewRequest(http.MethodGet, baseURL+"/api/v1/transfers", nil)
	if err != nil {
		fmt.Printf("Failed to build request: %v\n", err)
		os.Exit(1)
	}

	q := req.URL.Query()
	if accountID != "" {
		q.Set("account_id", accountID)
	}
	if kind != "" {
		q.Set("kind", kind)
	}
	req.URL.RawQuery = q.Encode()

	doRequest(req)
}

func doRequest(req *http.Request) {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, body, "", "  "); err != nil {
		pretty.Write(body)
	}

	fmt.Printf("Status: %d\n%s\n", resp.StatusCode, pretty.String())

	if resp.StatusCode >= http.StatusBadRequest {
		os.Exit(1)
	}
}
