package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/stencil-design/stencil/canvas"
	"github.com/stencil-design/stencil/internal/cli/ui"
	"github.com/stencil-design/stencil/pattern"
)

var (
	generateName        string
	generateOutput      string
	generateInteractive bool
	generateX           float64
	generateY           float64
)

// NewGenerateCommand creates the generate command
func NewGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [pattern-id]",
		Short: "Generate a canvas document from a pattern",
		Long: `Generate a canvas document from a registered pattern.

Synthesizes a new document with one node per structure definition of the
chosen pattern, ready to open in an editor. With --interactive, prompts
for the pattern and document name instead of taking arguments.`,
		Example: `  # Generate a tabs document to stdout
  stencil generate tabs --name "My Tabs"

  # Write to a file, offset from the artboard origin
  stencil generate dialog --name Confirm -o confirm.json --x 120 --y 80

  # Pick the pattern interactively
  stencil generate --interactive`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := loadRegistry()
			if err != nil {
				return err
			}

			patternID := ""
			if len(args) == 1 {
				patternID = args[0]
			}

			if generateInteractive {
				patternID, err = promptForPattern(registry)
				if err != nil {
					return err
				}
				if generateName == "" {
					if err := survey.AskOne(&survey.Input{
						Message: "Document name:",
						Default: registry.Get(patternID).Name,
					}, &generateName); err != nil {
						return err
					}
				}
			} else if patternID == "" {
				return fmt.Errorf("pattern id required (or use --interactive)")
			}

			if registry.Get(patternID) == nil {
				if hint := ui.DidYouMean(ui.Suggest(patternID, registryIDs(registry))); hint != "" {
					return fmt.Errorf("pattern not found: %q (%s)", patternID, hint)
				}
			}

			spec := pattern.GenerateSpec{Name: generateName}
			if generateX != 0 || generateY != 0 {
				spec.Position = &canvas.Point{X: generateX, Y: generateY}
			}

			doc, err := pattern.NewGenerator(registry).GenerateFromPattern(patternID, spec)
			if err != nil {
				return err
			}

			encoded, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return err
			}

			if generateOutput == "" || generateOutput == "-" {
				fmt.Println(string(encoded))
				return nil
			}
			if err := os.WriteFile(generateOutput, append(encoded, '\n'), 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			color.Green("✓ wrote %s", generateOutput)
			return nil
		},
	}

	cmd.Flags().StringVar(&generateName, "name", "", "Name for the generated document")
	cmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().BoolVar(&generateInteractive, "interactive", false, "Prompt for pattern and name")
	cmd.Flags().Float64Var(&generateX, "x", 0, "Horizontal offset for generated nodes")
	cmd.Flags().Float64Var(&generateY, "y", 0, "Vertical offset for generated nodes")
	return cmd
}

func promptForPattern(registry *pattern.Registry) (string, error) {
	manifests := registry.GetAll()
	options := make([]string, len(manifests))
	byOption := make(map[string]string, len(manifests))
	for i, m := range manifests {
		label := fmt.Sprintf("%s — %s", m.ID, m.Description)
		options[i] = label
		byOption[label] = m.ID
	}

	var picked string
	if err := survey.AskOne(&survey.Select{
		Message: "Pattern to generate:",
		Options: options,
	}, &picked); err != nil {
		return "", err
	}
	return byOption[picked], nil
}
