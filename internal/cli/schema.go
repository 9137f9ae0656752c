package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qanoonsoft/docwizard/pkg/schema"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Inspect document schemas",
}

var schemaListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the supported document types",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry := schema.Default()
		for _, docType := range registry.Types() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-24s %s (%d fields)\n",
				docType, registry.Label(docType), registry.FieldCount(docType))
		}
		return nil
	},
}

var schemaShowCmd = &cobra.Command{
	Use:   "show <type>",
	Short: "Show the field definitions of a document type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry := schema.Default()
		docType := schema.DocumentType(args[0])
		fields := registry.Fields(docType)
		if len(fields) == 0 {
			return fmt.Errorf("unknown document type %q; run 'docwizard schema list'", args[0])
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (%s)\n\n", registry.Label(docType), docType)
		for _, field := range fields {
			required := " "
			if field.Required {
				required = "*"
			}
			fmt.Fprintf(out, "  %s %-28s %-10s %s\n", required, field.Name, field.Kind, field.Label)
			if len(field.Options) > 0 {
				fmt.Fprintf(out, "      options: %v\n", field.Options)
			}
		}
		fmt.Fprintln(out, "\n  * required")
		return nil
	},
}

func init() {
	schemaCmd.AddCommand(schemaListCmd)
	schemaCmd.AddCommand(schemaShowCmd)
	rootCmd.AddCommand(schemaCmd)
}
