package commands

import (
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/stencil-design/stencil/internal/cli/config"
	"github.com/stencil-design/stencil/internal/loader"
	"github.com/stencil-design/stencil/pattern"
)

var (
	// Version information - set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
	GoVersion = "unknown"
)

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "stencil",
		Short: "Canvas pattern engine and design tooling",
		Long: color.CyanString(`Stencil - pattern manifest engine for canvas documents

Stencil detects, validates, and generates reusable UI patterns
(Tabs, Dialog, Accordion, Form, Card, Navigation) in tree-structured
canvas documents.

Features:
  • Declarative pattern manifests with structure and relationships
  • Detection of partial and complete pattern instances
  • Structural and accessibility compliance reports
  • Document generation from any registered pattern
  • HTTP API with live updates for editor panels`),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(NewVersionCommand())
	rootCmd.AddCommand(NewPatternsCommand())
	rootCmd.AddCommand(NewDetectCommand())
	rootCmd.AddCommand(NewValidateCommand())
	rootCmd.AddCommand(NewGenerateCommand())
	rootCmd.AddCommand(NewServeCommand())
	rootCmd.AddCommand(NewWatchCommand())

	return rootCmd
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			goVer := GoVersion
			if goVer == "unknown" {
				goVer = runtime.Version()
			}

			titleColor := color.New(color.FgCyan, color.Bold)
			titleColor.Print("Stencil version: ")
			color.White("%s", Version)
			titleColor.Print("Git commit:      ")
			color.White("%s", GitCommit)
			titleColor.Print("Built:           ")
			color.White("%s", BuildDate)
			titleColor.Print("Go version:      ")
			color.White("%s", goVer)
		},
	}
}

// buildRegistry constructs the pattern registry from configuration:
// built-ins (unless disabled) plus any configured manifest directories.
func buildRegistry(cfg *config.Config) (*pattern.Registry, error) {
	if cfg.Manifests.DisableBuiltins {
		r := pattern.NewRegistry()
		for _, dir := range cfg.Manifests.Dirs {
			if _, err := loader.RegisterManifestDir(r, dir); err != nil {
				return nil, err
			}
		}
		return r, nil
	}
	return loader.NewRegistry(cfg.Manifests.Dirs...)
}
