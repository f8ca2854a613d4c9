package cli

import (
	"github.com/spf13/cobra"

	"github.com/cdrcknt/Bayesian-MedicalDiagnosis/modelfile"
)

// NewExportCommand creates the export command.
func NewExportCommand() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the network as a YAML model file",
		Long: `Write the active network (the built-in diagnosis network with any
probability overrides, or --model) as YAML, to stdout or --file.`,
		Example: `  bayesnet export --smoking-rate 0.5 --file smokers.yaml
  bayesnet sample --model smokers.yaml -n 100`,
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
			if out == "" {
				return modelfile.Write(cmd.OutOrStdout(), m)
			}
			return modelfile.Save(out, m)
		},
	}
	cmd.Flags().StringVarP(&out, "file", "f", "", "destination file (default: stdout)")

	return cmd
}
