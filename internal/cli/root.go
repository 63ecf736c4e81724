package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/beachday/beachday/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "beachday",
	Short: "Decide whether today is a beach day",
	Long: `beachday asks a few questions about going to the beach and buying an
ice cream, then tells you what you can do.

In a terminal the questions are shown as interactive forms. When input is
piped, or with --plain, they are asked one line at a time.`,
	Version:           version.GetVersion(),
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	PersistentPreRunE: prepare,
	RunE:              runTrip,
}

// Execute initializes dependencies and runs the root command. An interrupt
// cancels the command context.
func Execute() error {
	InitDependencies()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("beachday %s\n", version.GetFullVersion()))

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "path to config file (default $HOME/.beachday/config.yaml)")
	pf.String("log-level", "", "log level on stderr: debug, info, warn, error")
	pf.Bool("no-color", false, "disable coloured output")

	rootCmd.Flags().Bool("plain", false, "ask questions one line at a time")

	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(configCmd)
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}
