package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jdoss/filetidy/internal/cli"
	"github.com/jdoss/filetidy/internal/config"
)

func rulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Show the configured sorting rules",
		RunE:  runRulesList,
	}

	cmd.AddCommand(rulesInitCmd())

	return cmd
}

func runRulesList(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	cli.RenderRules(os.Stdout, cfg.Rules)
	return nil
}

func rulesInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the stock rule set",
		Long: `Write the default configuration (Images, Documents, Music, Videos and
Archives rules) to the standard config location. Refuses to overwrite an
existing file unless --force is given.`,
		RunE: runRulesInit,
	}

	cmd.Flags().Bool("force", false, "overwrite an existing config file")
	cmd.Flags().String("path", "", "write to this path instead of the default")

	return cmd
}

func runRulesInit(cmd *cobra.Command, _ []string) error {
	path, err := cmd.Flags().GetString("path")
	if err != nil {
		return err
	}
	if path == "" {
		path, err = config.DefaultPath()
		if err != nil {
			return err
		}
	}
	path = config.ExpandPath(path)

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}
	if _, statErr := os.Stat(path); statErr == nil && !force {
		return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
	}

	if err := config.Save(config.Default(), path); err != nil {
		return err
	}

	fmt.Printf("Wrote default config to %s\n", path)
	return nil
}
