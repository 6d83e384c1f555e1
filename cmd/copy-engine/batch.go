// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/copy-engine/internal/brief"
	"github.com/pdiddy/copy-engine/internal/generate"
)

var batchCmd = &cobra.Command{
	Use:   "batch [dir]",
	Short: "Generate copy for every brief file in a directory",
	Long: `Batch reads every *.yaml, *.yml, and *.json brief in dir (default
"briefs"), validates and generates each one, and writes the results to the
output directory as <brief-name>.<ext>.

Rejected or failed briefs are reported and skipped; the command exits
non-zero if any brief did not generate.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatch,
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dir := "briefs"
	if len(args) > 0 {
		dir = args[0]
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	summary, err := brief.RunBatch(ctx, dir, cfg.Output.Dir, cfg.Output.Format, generate.New(cfg.Social), cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if n := summary.Rejected + summary.Failed; n > 0 {
		return fmt.Errorf("%d brief(s) did not generate", n)
	}
	return nil
}

func init() {
	batchCmd.Flags().String("out", "output", "directory for generated files")
	viper.BindPFlag("output.dir", batchCmd.Flags().Lookup("out"))

	rootCmd.AddCommand(batchCmd)
}
