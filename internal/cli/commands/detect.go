package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/stencil-design/stencil/internal/loader"
	"github.com/stencil-design/stencil/pattern"
)

var detectFormat string

// NewDetectCommand creates the detect command
func NewDetectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect <document.json>",
		Short: "Detect pattern instances in a canvas document",
		Long: `Detect pattern instances in a canvas document.

Scans the document for every registered pattern and prints the detected
instances, including partial matches with their itemized problems.`,
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

			instances := pattern.NewDetector(registry).DetectPatterns(doc)

			if detectFormat == "json" {
				if instances == nil {
					instances = []pattern.Instance{}
				}
				return printJSON(map[string]any{"instances": instances})
			}

			if len(instances) == 0 {
				color.Yellow("No pattern instances detected")
				return nil
			}

			for _, inst := range instances {
				if inst.IsComplete {
					color.Green("✓ %s", inst.PatternID)
				} else {
					color.Red("✗ %s (incomplete)", inst.PatternID)
				}
				fmt.Printf("  root: %s\n", inst.RootNodeID)
				for defID, nodeID := range inst.NodeMappings {
					fmt.Printf("  %-12s -> %s\n", defID, nodeID)
				}
				for _, e := range inst.ValidationErrors {
					color.Red("  ! %s", e)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&detectFormat, "format", "table", "Output format: json or table")
	return cmd
}
