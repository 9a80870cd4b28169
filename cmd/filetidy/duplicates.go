package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jdoss/filetidy/internal/classify"
	"github.com/jdoss/filetidy/internal/cli"
	"github.com/jdoss/filetidy/internal/config"
	"github.com/jdoss/filetidy/internal/organizer"
	"github.com/jdoss/filetidy/internal/scan"
)

func duplicatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "duplicates <directory>",
		Short: "Find files with identical content",
		Long: `Report groups of files with byte-identical content.

Files are bucketed by size first, so only candidates that could match are
hashed. Groups are ordered by reclaimable space. Nothing is moved or
deleted.

Examples:
  filetidy duplicates ~/Downloads
  filetidy duplicates ~/Pictures --recursive`,
		Args: cobra.ExactArgs(1),
		RunE: runDuplicates,
	}

	cmd.Flags().BoolP("recursive", "r", false, "descend into subdirectories")
	_ = viper.BindPFlag("recursive", cmd.Flags().Lookup("recursive"))

	return cmd
}

func runDuplicates(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	root := config.ExpandPath(args[0])

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Duplicate detection never moves files, so the classifier is only
	// needed to satisfy the engine's wiring.
	classifier, err := classify.NewClassifier(cfg.RuleSet())
	if err != nil {
		return err
	}

	db := openHistory(ctx, cfg)
	defer closeHistory(db)

	engineCfg := organizer.Config{
		Scanner:    scan.NewScanner(scan.Options{Recursive: cfg.Recursive}),
		Classifier: classifier,
		Root:       root,
	}
	if db != nil {
		engineCfg.History = db
	}

	engine, err := organizer.New(engineCfg)
	if err != nil {
		return err
	}

	summary, err := engine.RunDetectDuplicates(ctx)
	if summary != nil {
		cli.RenderDuplicates(os.Stdout, summary)
	}
	return err
}
