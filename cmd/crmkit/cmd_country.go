package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"crmkit/pkg/country"
	"crmkit/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// countryCmd looks up a single country
var countryCmd = &cobra.Command{
	Use:   "country <alpha2>",
	Short: "Print the display name of a country code",
	Long: `Looks up an ISO 3166-1 alpha-2 code, case-insensitive, and prints the
code, the display name and the country's currency when known.

Example:
  crmkit country de`,
	Args: cobra.ExactArgs(1),
	RunE: runCountry,
}

// countriesCmd lists the whole table
var countriesCmd = &cobra.Command{
	Use:   "countries",
	Short: "List every country sorted by name",
	Args:  cobra.NoArgs,
	RunE:  runCountries,
}

func runCountry(cmd *cobra.Command, args []string) error {
	code := args[0]

	name, ok := appState.Countries.Name(code)
	if !ok {
		logger.Debug("Country lookup missed", zap.String("code", code))
		return fmt.Errorf("unknown country code %q", code)
	}

	line := strings.ToUpper(code) + "\t" + name
	if cur, ok := country.CurrencyFor(code); ok {
		line += "\t" + cur
	}
	fmt.Fprintln(cmd.OutOrStdout(), line)
	return nil
}

func runCountries(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, c := range appState.Countries.Countries() {
		fmt.Fprintf(w, "%s\t%s\n", c.Alpha2, c.Name)
	}
	return w.Flush()
}
