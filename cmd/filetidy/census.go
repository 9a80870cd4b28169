package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jdoss/filetidy/internal/cli"
	"github.com/jdoss/filetidy/internal/config"
	"github.com/jdoss/filetidy/internal/scan"
)

func censusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "census <directory>",
		Short: "Count files by extension",
		Long: `Count the files in a directory per extension, without moving anything.
Useful for writing rules that actually cover what is in the directory.`,
		Args: cobra.ExactArgs(1),
		RunE: runCensus,
	}

	cmd.Flags().BoolP("recursive", "r", false, "descend into subdirectories")
	_ = viper.BindPFlag("recursive", cmd.Flags().Lookup("recursive"))

	return cmd
}

func runCensus(cmd *cobra.Command, args []string) error {
	root := config.ExpandPath(args[0])

	scanner := scan.NewScanner(scan.Options{Recursive: viper.GetBool("recursive")})
	records, err := scanner.Scan(cmd.Context(), root)
	if err != nil {
		return err
	}

	cli.RenderCensus(os.Stdout, scan.Census(records))
	return nil
}
