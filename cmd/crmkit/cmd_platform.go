package main

import (
	"fmt"

	"crmkit/pkg/platform"

	"github.com/spf13/cobra"
)

// platformCmd reports whether this host is a Mac
var platformCmd = &cobra.Command{
	Use:   "platform",
	Short: "Report whether the current host is a Mac",
	Long: `Prints is_mac for the current process. The user agent is read from the
configured environment variable (CRMKIT_USER_AGENT by default); without it
the host OS descriptor decides.`,
	Args: cobra.NoArgs,
	RunE: runPlatform,
}

func runPlatform(cmd *cobra.Command, args []string) error {
	env := appState.HostEnvironment()
	out := cmd.OutOrStdout()

	if ua, ok := env.UserAgent(); ok {
		fmt.Fprintf(out, "user_agent: %s\n", ua)
	}
	if p, ok := env.Platform(); ok {
		fmt.Fprintf(out, "platform: %s\n", p)
	}
	fmt.Fprintf(out, "is_mac: %t\n", platform.IsMac(env))
	return nil
}
