// Command bindctl drives the binder and resolver over a hand-authored AST
// fixture and reports the resulting diagnostics, the bindings of the
// fixture's expression probes, and (optionally) an on-demand generic
// instantiation.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var rootCmd = &cobra.Command{
	Use:   "bindctl",
	Short: "Semantic binder and symbol resolver for the stack-machine TypeScript subset",
	Long:  `bindctl runs the binder/resolver pipeline over JSON-encoded AST fixtures and reports diagnostics.`,
}

func main() {
	rootCmd.AddCommand(bindCmd)
	rootCmd.AddCommand(monoCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize diagnostic output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "print no diagnostic output, summary line included, when there are no diagnostics")
	rootCmd.PersistentFlags().Int("max-diagnostics", 0, "maximum number of diagnostics to print (0=unlimited)")
	rootCmd.PersistentFlags().String("format", "pretty", "diagnostic output format (pretty|json)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func wantColor(cmd *cobra.Command) bool {
	mode, _ := cmd.Root().PersistentFlags().GetString("color")
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(os.Stdout)
	}
}
