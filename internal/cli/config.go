package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beachday/beachday/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Print the configuration beachday would run with, after defaults and
environment overrides (BEACHDAY_UI_MODE, BEACHDAY_LOG_LEVEL,
BEACHDAY_LOG_FORMAT, BEACHDAY_CURRENCY, NO_COLOR) are applied.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if deps == nil || deps.Config.Get() == nil {
		if err := prepare(cmd, nil); err != nil {
			return err
		}
	}
	out := cmd.OutOrStdout()

	source := "defaults"
	if fromFile, err := deps.Config.FromFile(); err == nil && fromFile {
		source = "file"
	}

	data, err := config.Marshal(deps.Config.Get())
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, "# %s (%s)\n", deps.Config.Path(), source)
	_, _ = out.Write(data)
	return nil
}
