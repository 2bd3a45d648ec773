package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/stencil-design/stencil/internal/loader"
	"github.com/stencil-design/stencil/pattern"
)

var validateFormat string

// NewValidateCommand creates the validate command
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <document.json>",
		Short: "Validate pattern compliance of a canvas document",
		Long: `Validate pattern compliance of a canvas document.

Runs detection and cross-checks every detected instance against its
manifest, reporting all errors, warnings, and suggestions. Exits non-zero
when the document is invalid, so the command can gate CI.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := loadRegistry()
			if err != nil {
				return err
			}
			doc, err := loader.LoadDocument(args[0])
			if err != nil {
				return err
			}

			report := pattern.NewValidator(registry).ValidatePatterns(doc)

			if validateFormat == "json" {
				if err := printJSON(report); err != nil {
					return err
				}
			} else {
				printReport(report)
			}

			if !report.Valid {
				return fmt.Errorf("document is not pattern compliant (%d error(s))", len(report.Errors))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&validateFormat, "format", "table", "Output format: json or table")
	return cmd
}

func printReport(report pattern.Report) {
	if report.Valid {
		color.Green("✓ valid")
	} else {
		color.Red("✗ invalid")
	}
	for _, e := range report.Errors {
		color.Red("  error: %s", e)
	}
	for _, w := range report.Warnings {
		color.Yellow("  warning: %s", w)
	}
	for _, s := range report.Suggestions {
		color.Cyan("  suggestion: %s", s)
	}
}
