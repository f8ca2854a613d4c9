package cli

import (
	"errors"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/cdrcknt/Bayesian-MedicalDiagnosis/model"
	"github.com/cdrcknt/Bayesian-MedicalDiagnosis/sampling"
)

// NewSummaryCommand creates the summary command.
func NewSummaryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Sample the network and report counts and rates",
		Long: `Draw samples and summarize them:

  - counts of every observed joint assignment
  - the empirical marginal of each variable
  - for every edge, the empirical P(child | parent) per parent state`,
		Example: `  bayesnet summary -n 10000 --seed 1
  bayesnet summary --smoking-rate 0.5 -o markdown`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := getConfig(cmd)
			if err != nil {
				return err
			}
			m, err := loadModel(cmd, cfg)
			if err != nil {
				return err
			}
			tbl, err := draw(cmd, cfg, m)
			if err != nil {
				return err
			}
			sections, err := summarize(m, tbl)
			if err != nil {
				return err
			}

			return renderSections(cmd.OutOrStdout(), cfg.Output, sections)
		},
	}
}

// summarize builds the counts, marginals and per-edge conditional sections.
func summarize(m *model.Model, tbl *sampling.Table) ([]section, error) {
	vars := tbl.Variables()

	// 1) Joint counts
	groups, err := tbl.GroupCounts()
	if err != nil {
		return nil, err
	}
	counts := section{key: "counts", title: "Joint counts"}
	for _, v := range vars {
		counts.header = append(counts.header, v.Name)
	}
	counts.header = append(counts.header, "Count")
	for _, g := range groups {
		row := make(table.Row, 0, len(g.States)+1)
		for j, s := range g.States {
			row = append(row, vars[j].StateName(s))
		}
		counts.rows = append(counts.rows, append(row, g.Count))
	}

	// 2) Marginals
	marginals := section{key: "marginals", title: "Marginals", header: table.Row{"Variable", "State", "Rate"}}
	for _, v := range vars {
		f, err := tbl.Frequencies(v.Name)
		if err != nil {
			return nil, err
		}
		for s, r := range f {
			marginals.rows = append(marginals.rows, table.Row{v.Name, v.StateName(s), formatRate(r)})
		}
	}

	// 3) Conditionals per edge
	conds := section{
		key:    "conditionals",
		title:  "Conditionals per edge",
		header: table.Row{"Child", "State", "Parent", "Given", "Empirical", "Rows"},
	}
	for _, e := range m.Edges() {
		child, _ := m.Variable(e.To)
		parent, _ := m.Variable(e.From)
		col, err := tbl.Column(e.From)
		if err != nil {
			return nil, err
		}
		support := make([]int, parent.Card)
		for _, s := range col {
			support[s]++
		}
		for gs := 0; gs < parent.Card; gs++ {
			for ts := 0; ts < child.Card; ts++ {
				rate, err := tbl.ConditionalRate(e.To, ts, e.From, gs)
				empirical := formatRate(rate)
				if errors.Is(err, sampling.ErrNoSupport) {
					empirical = "n/a"
				} else if err != nil {
					return nil, fmt.Errorf("edge %s → %s: %w", e.From, e.To, err)
				}
				conds.rows = append(conds.rows, table.Row{
					child.Name, child.StateName(ts), parent.Name, parent.StateName(gs), empirical, support[gs],
				})
			}
		}
	}

	return []section{counts, marginals, conds}, nil
}
