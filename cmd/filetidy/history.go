package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jdoss/filetidy/internal/cli"
	"github.com/jdoss/filetidy/internal/config"
	"github.com/jdoss/filetidy/internal/model"
)

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent runs",
		RunE:  runHistory,
	}

	cmd.Flags().IntP("limit", "n", 20, "number of runs to show")
	cmd.Flags().String("run", "", "show per-file outcomes for one run ID")

	return cmd
}

func runHistory(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db := openHistory(ctx, cfg)
	if db == nil {
		return fmt.Errorf("run history database is unavailable")
	}
	defer closeHistory(db)

	runID, err := cmd.Flags().GetString("run")
	if err != nil {
		return err
	}
	if runID != "" {
		outcomes, outErr := db.GetRunOutcomes(ctx, runID)
		if outErr != nil {
			return outErr
		}
		for _, o := range outcomes {
			if o.Action == model.ActionFailed {
				fmt.Printf("%s %s: %v\n", cli.ErrorStyle.Render("failed"), o.SourcePath, o.Err)
				continue
			}
			fmt.Printf("%s %s -> %s\n", o.Action, o.SourcePath, o.DestPath)
		}
		return nil
	}

	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}

	runs, err := db.ListRuns(ctx, limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STARTED\tMODE\tROOT\tSCANNED\tMOVED\tFAILED\tID")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%s\n",
			r.StartedAt.Format("2006-01-02 15:04"),
			r.Mode, r.Root, r.Scanned, r.Moved+r.Renamed, r.Failed, r.ID)
	}
	return w.Flush()
}
