package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"crmkit/internal/state"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestCmd returns a bare command writing to a buffer, with default state
func newTestCmd(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	st, err := state.New(nil)
	require.NoError(t, err)
	appState = st
	t.Cleanup(func() { appState = nil })

	buf := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(buf)
	return cmd, buf
}

func TestSupportURLCmd(t *testing.T) {
	tests := []struct {
		name   string
		ticket string
		want   string
	}{
		{name: "no ticket flag", want: "https://acme.zendesk.com/agent/tickets\n"},
		{name: "ticket 42", ticket: "42", want: "https://acme.zendesk.com/agent/tickets/42\n"},
		{name: "ticket 0 still deep-links", ticket: "0", want: "https://acme.zendesk.com/agent/tickets/0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, buf := newTestCmd(t)
			cmd.Flags().Int64VarP(&ticketID, "ticket", "t", 0, "")
			defer func() { ticketID = 0 }()
			if tt.ticket != "" {
				require.NoError(t, cmd.Flags().Set("ticket", tt.ticket))
			}

			require.NoError(t, runSupportURL(cmd, []string{"acme.example.com"}))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestCurrencyCmds(t *testing.T) {
	cmd, buf := newTestCmd(t)

	require.NoError(t, runCurrencyFormat(cmd, []string{"12.50"}))
	require.NoError(t, runCurrencyParse(cmd, []string{"$12.50"}))
	require.NoError(t, runCurrencyParse(cmd, []string{"$$10"}))

	assert.Equal(t, "$12.50\n12.50\n$10\n", buf.String())
}

func TestCountryCmd(t *testing.T) {
	cmd, buf := newTestCmd(t)

	require.NoError(t, runCountry(cmd, []string{"de"}))
	assert.Equal(t, "DE\tGermany\tEUR\n", buf.String())

	err := runCountry(cmd, []string{"zz"})
	assert.ErrorContains(t, err, "unknown country code")
}

func TestCountriesCmd(t *testing.T) {
	cmd, buf := newTestCmd(t)

	require.NoError(t, runCountries(cmd, nil))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, appState.Countries.Len())
	assert.True(t, strings.HasPrefix(lines[0], "AF"), lines[0])
}

func TestPlatformCmd(t *testing.T) {
	cmd, buf := newTestCmd(t)
	t.Setenv(appState.UserAgentEnv, "Mozilla/5.0 (Macintosh; Intel Mac OS X 14_0)")

	require.NoError(t, runPlatform(cmd, nil))
	assert.Contains(t, buf.String(), "user_agent: Mozilla/5.0 (Macintosh; Intel Mac OS X 14_0)\n")
	assert.Contains(t, buf.String(), "is_mac: true\n")

	buf.Reset()
	t.Setenv(appState.UserAgentEnv, "Mozilla/5.0 (Windows NT 10.0)")
	require.NoError(t, runPlatform(cmd, nil))
	assert.Contains(t, buf.String(), "is_mac: false\n")
}

func TestLoadState(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("currency:\n  symbol: \"€\"\n  code: EUR\n"), 0644))

	configPath = path
	defer func() { configPath = ""; cfg = nil; appState = nil }()

	require.NoError(t, loadState())
	assert.Equal(t, "€", appState.CurrencySymbol)
	assert.Equal(t, "EUR", appState.CurrencyCode)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoadStateRejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 70000\n"), 0644))

	configPath = path
	defer func() { configPath = ""; cfg = nil; appState = nil }()

	assert.ErrorContains(t, loadState(), "invalid config")
}

func TestRootCommandWiring(t *testing.T) {
	for _, name := range []string{"serve", "support-url", "currency", "country", "countries", "platform"} {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}

	cmd, _, err := rootCmd.Find([]string{"currency", "parse"})
	require.NoError(t, err)
	assert.Equal(t, "parse", cmd.Name())
}
