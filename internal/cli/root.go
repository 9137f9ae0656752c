// Package cli provides the cobra commands for the docwizard tool: schema
// inspection, one-shot validation of saved form data, OpenAPI export, and
// the interactive wizard.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qanoonsoft/docwizard/internal/legal"
	"github.com/qanoonsoft/docwizard/pkg/schema"
	"github.com/qanoonsoft/docwizard/pkg/validate"
)

var rootCmd = &cobra.Command{
	Use:   "docwizard",
	Short: "Legal document schema and validation engine",
	Long: `docwizard drives the document-generation wizard for UAE legal letters
and agreements: per-type field schemas, declarative validation rules, and
the multi-step wizard that gates generation on a clean validation pass.`,
	Example: `  # List the supported document types
  docwizard schema list

  # Inspect the fields of one type
  docwizard schema show employment-termination

  # Validate saved form data
  docwizard validate demand-letter -d letter.json

  # Walk the interactive wizard
  docwizard wizard employment-contract`,
	Version:      "0.1.0",
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to a legal-constants config file (JSON)")
}

// buildEngine loads the configured legal constants and constructs the rule
// engine every subcommand shares.
func buildEngine(cmd *cobra.Command, registry *schema.Registry) (*validate.Engine, error) {
	path, _ := cmd.Flags().GetString("config")
	consts, err := legal.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load legal constants: %w", err)
	}
	return validate.New(registry, validate.WithConstants(consts)), nil
}
