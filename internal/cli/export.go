package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/qanoonsoft/docwizard/pkg/export"
	"github.com/qanoonsoft/docwizard/pkg/schema"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the document schemas as an OpenAPI document",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := export.JSON(schema.Default(), rootCmd.Version)
		if err != nil {
			return err
		}

		path, _ := cmd.Flags().GetString("output")
		if path == "" {
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		}
		if err := os.WriteFile(path, append(out, '\n'), 0o644); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "Write the document to a file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}
