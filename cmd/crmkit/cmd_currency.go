package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// currencyCmd groups the currency helpers
var currencyCmd = &cobra.Command{
	Use:   "currency",
	Short: "Format or parse currency amounts with the configured symbol",
}

var currencyFormatCmd = &cobra.Command{
	Use:   "format <value>",
	Short: "Prefix a raw amount with the currency symbol",
	Args:  cobra.ExactArgs(1),
	RunE:  runCurrencyFormat,
}

var currencyParseCmd = &cobra.Command{
	Use:   "parse <display>",
	Short: "Strip one leading currency symbol from a displayed amount",
	Args:  cobra.ExactArgs(1),
	RunE:  runCurrencyParse,
}

func runCurrencyFormat(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), appState.FormatCurrency(args[0]))
	return nil
}

func runCurrencyParse(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), appState.ParseCurrency(args[0]))
	return nil
}
