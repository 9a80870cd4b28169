package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jdoss/filetidy/internal/classify"
	"github.com/jdoss/filetidy/internal/cli"
	"github.com/jdoss/filetidy/internal/config"
	"github.com/jdoss/filetidy/internal/mover"
	"github.com/jdoss/filetidy/internal/organizer"
	"github.com/jdoss/filetidy/internal/scan"
)

func organizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "organize <directory>",
		Short: "Sort files into subfolders",
		Long: `Sort the files in a directory into subfolders using the configured rules.

Filename patterns are checked first, then extensions, then date buckets
when --date-folders is set. Files nothing claims go to the unsorted
folder. Name collisions get a numeric suffix; nothing is ever overwritten.

Examples:
  filetidy organize ~/Downloads
  filetidy organize ~/Downloads --recursive
  filetidy organize ~/Downloads --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: runOrganize,
	}

	cmd.Flags().BoolP("recursive", "r", false, "descend into subdirectories")
	cmd.Flags().Bool("date-folders", false, "route unmatched files into Year/Month folders")
	cmd.Flags().Bool("dry-run", false, "preview without moving files")
	cmd.Flags().String("unsorted", "", "folder name for unclassified files")

	_ = viper.BindPFlag("recursive", cmd.Flags().Lookup("recursive"))
	_ = viper.BindPFlag("date_folders", cmd.Flags().Lookup("date-folders"))
	_ = viper.BindPFlag("organize.dry_run", cmd.Flags().Lookup("dry-run"))
	_ = viper.BindPFlag("unsorted_folder", cmd.Flags().Lookup("unsorted"))

	return cmd
}

func runOrganize(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	root := config.ExpandPath(args[0])
	dryRun := viper.GetBool("organize.dry_run")

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	classifier, err := classify.NewClassifier(cfg.RuleSet())
	if err != nil {
		return fmt.Errorf("failed to build classifier: %w", err)
	}

	db := openHistory(ctx, cfg)
	defer closeHistory(db)

	engineCfg := organizer.Config{
		Scanner:    scan.NewScanner(scan.Options{Recursive: cfg.Recursive}),
		Classifier: classifier,
		Mover:      mover.NewMover(root),
		Progress:   cli.NewProgress(os.Stderr),
		Root:       root,
		DryRun:     dryRun,
	}
	if db != nil {
		engineCfg.History = db
	}

	engine, err := organizer.New(engineCfg)
	if err != nil {
		return err
	}

	summary, err := engine.RunOrganize(ctx)
	if summary != nil {
		cli.RenderSummary(os.Stdout, summary)
	}
	return err
}
