package cli

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// NewOrderCommand creates the order command.
func NewOrderCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "order",
		Short: "Print the topological (sampling) order",
		Long: `Print the variables in the order the sampler visits them: every
variable appears after all of its parents. The order is deterministic and
is the one cached by the validated model.`,
		Example: `  bayesnet order --model net.yaml -o csv`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := getConfig(cmd)
			if err != nil {
				return err
			}
			m, err := loadModel(cmd, cfg)
			if err != nil {
				return err
			}
			order := m.Order()
			rows := make([]table.Row, len(order))
			for i, name := range order {
				v, _ := m.Variable(name)
				parents, err := m.Parents(name)
				if err != nil {
					return err
				}
				states := make([]string, v.Card)
				for s := range states {
					states[s] = v.StateName(s)
				}
				rows[i] = table.Row{i + 1, name, v.Card, strings.Join(states, ", "), strings.Join(parents, ", ")}
			}

			return render(cmd.OutOrStdout(), cfg.Output, "Sampling order",
				table.Row{"#", "Variable", "Card", "States", "Parents"}, rows)
		},
	}
}
