package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beachday/beachday/internal/trip"
	"github.com/beachday/beachday/internal/ui"
)

// runTrip asks the beach-day questions on the command's stdin and stdout.
func runTrip(cmd *cobra.Command, _ []string) error {
	if deps == nil || deps.Config.Get() == nil {
		if err := prepare(cmd, nil); err != nil {
			return err
		}
	}
	cfg := deps.Config.Get()
	logger := deps.Logger

	mode, err := ui.ParseMode(cfg.UI.Mode)
	if err != nil {
		return err
	}
	if getBoolFlag(cmd, "plain") {
		mode = ui.ModePlain
	}

	in := cmd.InOrStdin()
	out := cmd.OutOrStdout()
	noColor := !colorEnabled(cmd, out)

	theme := ui.NewTheme(ui.ThemeConfig{NoColor: noColor})
	prompter := ui.NewPrompter(mode, in, out, theme, ui.NewHeadlessManager(in))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger.Debug("starting trip", "mode", string(mode), "no_color", noColor)

	outcome, err := trip.Run(ctx, prompter, trip.Options{
		CurrencySymbol: cfg.Currency.Symbol,
		Logger:         logger,
	})
	if err != nil {
		if errors.Is(err, ui.ErrCancelled) || errors.Is(err, context.Canceled) {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Cancelled.")
			return nil
		}
		return err
	}

	logger.Info("trip complete",
		"decision", string(outcome.Decision),
		"ice_cream", string(outcome.IceCream),
	)
	return nil
}
