package cli

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/spf13/cobra"

	"github.com/beachday/beachday/internal/trip"
)

const rulesWordWrap = 100

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Explain how beachday decides",
	Long:  "Print the questions beachday asks and every message it can answer with.",
	Args:  cobra.NoArgs,
	RunE:  runRules,
}

func runRules(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	style := styles.NoTTYStyle
	if colorEnabled(cmd, out) {
		style = styles.AutoStyle
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(rulesWordWrap),
	)
	if err != nil {
		return fmt.Errorf("create markdown renderer: %w", err)
	}

	rendered, err := r.Render(rulesMarkdown(currencySymbol()))
	if err != nil {
		return fmt.Errorf("render rules: %w", err)
	}
	_, _ = fmt.Fprint(out, rendered)
	return nil
}

// currencySymbol returns the configured symbol, or the default before
// configuration is loaded.
func currencySymbol() string {
	if deps != nil {
		if cfg := deps.Config.Get(); cfg != nil && cfg.Currency.Symbol != "" {
			return cfg.Currency.Symbol
		}
	}
	return trip.DefaultCurrencySymbol
}

// rulesMarkdown describes the decision tree.
func rulesMarkdown(symbol string) string {
	change := fmt.Sprintf(trip.MsgChange, symbol, 2.0)
	canGo := fmt.Sprintf(trip.MsgCanGo, 75)

	return fmt.Sprintf(`# Beach day rules

1. You are asked for your first name.
2. You are asked whether you want to go to the beach. Only **y** (or **Y**) means yes.
   - Anything else: %[1]s
3. You are asked for the current temperature and your minimum beach temperature, as whole numbers.
   - Current below minimum: %[2]s
   - Otherwise: %[3]s
4. You are asked whether you want an ice cream.
   - With more than zero cash you are asked the price.
   - Enough cash: %[4]s
   - Not enough: %[5]s
   - No cash: %[6]s
5. Whatever happened with the ice cream: %[7]s

A temperature or amount that is not a number stops the program with an error.
`,
		"`"+trip.MsgStayHome+"`",
		"`"+trip.MsgTooCold+"`",
		"`"+canGo+"`",
		"`"+change+"`",
		"`"+trip.MsgNoIceCream+"`",
		"`"+trip.MsgBringCash+"`",
		"`"+trip.MsgEnjoyBeach+"`",
	)
}
