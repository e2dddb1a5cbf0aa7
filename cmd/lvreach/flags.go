package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// OutputFormat represents the output format for CLI commands
type OutputFormat string

const (
	// FormatText is human-readable text output
	FormatText OutputFormat = "text"
	// FormatJSON is structured JSON output
	FormatJSON OutputFormat = "json"
)

// GlobalFlags holds global flags available to all commands
type GlobalFlags struct {
	Verbose      bool
	Quiet        bool
	NoColor      bool
	OutputFormat string
	ConfigFile   string
}

// RegisterGlobalFlags registers persistent flags on the root command
func RegisterGlobalFlags(cmd *cobra.Command, f *GlobalFlags) {
	cmd.PersistentFlags().BoolVarP(&f.Verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVarP(&f.Quiet, "quiet", "q", false, "Only log errors")
	cmd.PersistentFlags().BoolVar(&f.NoColor, "no-color", false, "Disable colored output")
	cmd.PersistentFlags().StringVarP(&f.OutputFormat, "output", "o", string(FormatText), "Output format (text|json)")
	cmd.PersistentFlags().StringVar(&f.ConfigFile, "config", "", "Path to config file (default: ./lvreach.yaml if present)")
}

// Validate checks flag combinations.
func (f *GlobalFlags) Validate() error {
	if f.OutputFormat != string(FormatText) && f.OutputFormat != string(FormatJSON) {
		return fmt.Errorf("invalid --output %q (text|json)", f.OutputFormat)
	}
	if f.Verbose && f.Quiet {
		return fmt.Errorf("--verbose and --quiet cannot be used together")
	}

	return nil
}
