package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"svlift/internal/diagfmt"
	"svlift/internal/fixture"
	"svlift/internal/source"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [flags] file.toml",
	Short: "Dump the decoded token streams of a fixture file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	tokensCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokens(cmd *cobra.Command, args []string) error {
	path := args[0]
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(path)
	if err != nil {
		return err
	}
	f, err := fixture.Parse(fileSet.Get(fileID).Content)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, stream := range f.Streams {
		name := stream.Name
		if name == "" {
			name = fmt.Sprintf("stream %d", i+1)
		}
		toks, err := stream.Decode(fileID)
		if err != nil {
			return fmt.Errorf("%s: %s: %w", path, name, err)
		}

		switch format {
		case "pretty":
			fmt.Fprintf(out, "-- %s (%s)\n", name, stream.Context)
			diagfmt.FormatTokensPretty(out, toks, fileSet)
		case "json":
			if err := diagfmt.FormatTokensJSON(out, toks); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown format: %s", format)
		}
	}
	return nil
}
