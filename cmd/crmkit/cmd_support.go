package main

import (
	"fmt"

	"crmkit/pkg/utils/urlutils"

	"github.com/spf13/cobra"
)

var ticketID int64

// supportURLCmd derives the ticketing link for an API host
var supportURLCmd = &cobra.Command{
	Use:   "support-url <api-host>",
	Short: "Print the support ticketing URL for an API host",
	Long: `Derives the ticketing URL from the first label of the API host.

Example:
  crmkit support-url acme.example.com
  crmkit support-url acme.example.com --ticket 42`,
	Args: cobra.ExactArgs(1),
	RunE: runSupportURL,
}

func init() {
	supportURLCmd.Flags().Int64VarP(&ticketID, "ticket", "t", 0, "Link directly to this ticket ID (any integer, including 0)")
}

func runSupportURL(cmd *cobra.Command, args []string) error {
	host := args[0]

	url := urlutils.DeriveSupportURL(host)
	if cmd.Flags().Changed("ticket") {
		url = urlutils.TicketURL(host, ticketID)
	}

	fmt.Fprintln(cmd.OutOrStdout(), url)
	return nil
}
