package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/qanoonsoft/docwizard/pkg/formstate"
	"github.com/qanoonsoft/docwizard/pkg/schema"
)

var validateCmd = &cobra.Command{
	Use:   "validate <type>",
	Short: "Run a full validation pass over saved form data",
	Long: `Reads a JSON object of field values, runs every validation sweep for the
document type, and prints all blocking errors and advisory warnings. Exits
non-zero when blocking errors remain.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry := schema.Default()
		docType := schema.DocumentType(args[0])
		if registry.FieldCount(docType) == 0 {
			return fmt.Errorf("unknown document type %q", args[0])
		}

		dataPath, _ := cmd.Flags().GetString("data")
		raw, err := os.ReadFile(dataPath)
		if err != nil {
			return fmt.Errorf("read form data: %w", err)
		}
		var values map[string]string
		if err := json.Unmarshal(raw, &values); err != nil {
			return fmt.Errorf("parse form data: %w", err)
		}

		engine, err := buildEngine(cmd, registry)
		if err != nil {
			return err
		}

		result := engine.Validate(docType, formstate.FromValues(values))
		out := cmd.OutOrStdout()
		for _, warning := range result.Warnings {
			fmt.Fprintf(out, "warning: %s\n", warning.Message)
		}
		for _, vErr := range result.Errors {
			if vErr.Field != "" {
				fmt.Fprintf(out, "error: %s: %s\n", vErr.Field, vErr.Message)
				continue
			}
			fmt.Fprintf(out, "error: %s\n", vErr.Message)
		}
		if !result.Valid() {
			return fmt.Errorf("%d blocking error(s)", len(result.Errors))
		}
		fmt.Fprintln(out, "ok")
		return nil
	},
}

func init() {
	validateCmd.Flags().StringP("data", "d", "", "Path to a JSON file of field values")
	validateCmd.MarkFlagRequired("data")
	rootCmd.AddCommand(validateCmd)
}
