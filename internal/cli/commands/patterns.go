package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/stencil-design/stencil/internal/cli/config"
	"github.com/stencil-design/stencil/internal/cli/ui"
	"github.com/stencil-design/stencil/pattern"
)

var (
	patternsFormat   string
	patternsCategory string
	patternsLayer    string
	patternsTag      string
)

// NewPatternsCommand creates the patterns command group
func NewPatternsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "Inspect the pattern registry",
		Long: `Inspect the pattern registry.

Lists, shows, and searches the registered pattern manifests: the built-in
set plus any manifest directories configured in stencil.yml.`,
		Example: `  # List all registered patterns
  stencil patterns list

  # Only navigation patterns
  stencil patterns list --category navigation

  # Show one manifest in full
  stencil patterns show tabs

  # Case-insensitive search over names and descriptions
  stencil patterns search tab

  # JSON output for tooling
  stencil patterns list --format json`,
	}

	cmd.PersistentFlags().StringVar(&patternsFormat, "format", "table", "Output format: json or table")
	cmd.PersistentFlags().StringVar(&patternsCategory, "category", "", "Filter by category")
	cmd.PersistentFlags().StringVar(&patternsLayer, "layer", "", "Filter by layer")
	cmd.PersistentFlags().StringVar(&patternsTag, "tag", "", "Filter by tag")

	cmd.AddCommand(newPatternsListCommand())
	cmd.AddCommand(newPatternsShowCommand())
	cmd.AddCommand(newPatternsSearchCommand())

	return cmd
}

func newPatternsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered patterns",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := loadRegistry()
			if err != nil {
				return err
			}

			var manifests []*pattern.Manifest
			switch {
			case patternsCategory != "":
				manifests = registry.GetByCategory(pattern.Category(patternsCategory))
			case patternsLayer != "":
				manifests = registry.GetByLayer(pattern.Layer(patternsLayer))
			case patternsTag != "":
				manifests = registry.GetByTag(patternsTag)
			default:
				manifests = registry.GetAll()
			}

			return printManifests(manifests)
		},
	}
}

func newPatternsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <pattern-id>",
		Short: "Show one pattern manifest in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := loadRegistry()
			if err != nil {
				return err
			}

			m := registry.Get(args[0])
			if m == nil {
				if hint := ui.DidYouMean(ui.Suggest(args[0], registryIDs(registry))); hint != "" {
					return fmt.Errorf("pattern not found: %q (%s)", args[0], hint)
				}
				return fmt.Errorf("pattern not found: %q", args[0])
			}

			if patternsFormat == "json" {
				return printJSON(m)
			}

			title := color.New(color.FgCyan, color.Bold)
			title.Printf("%s", m.Name)
			fmt.Printf("  (%s, v%s)\n", m.ID, m.Version)
			fmt.Printf("  %s\n", m.Description)
			fmt.Printf("  category: %s  layer: %s  tags: %s\n\n",
				m.Category, m.Layer, strings.Join(m.Tags, ", "))

			color.Yellow("Structure:")
			for _, def := range m.Structure {
				marker := " "
				if def.Required {
					marker = "*"
				}
				key := ""
				if def.SemanticKey != "" {
					key = "  key=" + def.SemanticKey
				}
				fmt.Printf("  %s %-12s %s%s\n", marker, def.ID, def.Type, key)
			}

			if len(m.Relationships) > 0 {
				color.Yellow("Relationships:")
				for _, rel := range m.Relationships {
					fmt.Printf("    %s -[%s]-> %s\n", rel.From, rel.Type, rel.To)
				}
			}
			return nil
		},
	}
}

func newPatternsSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search patterns by name or description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := loadRegistry()
			if err != nil {
				return err
			}
			return printManifests(registry.Search(args[0]))
		},
	}
}

func loadRegistry() (*pattern.Registry, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return buildRegistry(cfg)
}

func printManifests(manifests []*pattern.Manifest) error {
	if patternsFormat == "json" {
		return printJSON(map[string]any{"patterns": manifests})
	}

	if len(manifests) == 0 {
		color.Yellow("No patterns found")
		return nil
	}

	table := ui.NewTable(os.Stdout, "ID", "CATEGORY", "LAYER", "DESCRIPTION")
	for _, m := range manifests {
		table.AddRow(m.ID, string(m.Category), string(m.Layer), m.Description)
	}
	table.Render()
	return nil
}

func registryIDs(registry *pattern.Registry) []string {
	manifests := registry.GetAll()
	ids := make([]string, len(manifests))
	for i, m := range manifests {
		ids[i] = m.ID
	}
	return ids
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
