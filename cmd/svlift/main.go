package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"svlift/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "svlift",
	Short: "SystemVerilog declaration resolver",
	Long:  `svlift resolves reduced declaration token streams into declarations, port lists, instantiations and statements`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 0, "maximum number of diagnostics to show (0 uses the manifest value)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor decides colorization from the persistent --color flag.
func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}
