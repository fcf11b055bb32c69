package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/finpulse/internal/cli"
	"github.com/theirongolddev/finpulse/internal/logger"
	"github.com/theirongolddev/finpulse/internal/pipeline"
)

var flagImportForce bool

var importCmd = &cobra.Command{
	Use:   "import <dir|file>",
	Short: "Import JSONL record files into the database",
	Long: "Import JSONL record files. Each line is one record with a top-level \"kind\"\n" +
		"field. Files that have not changed since the last import are skipped.",
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVar(&flagImportForce, "force", false, "Re-import every file, even unchanged ones")
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	root := args[0]
	if _, err := os.Stat(root); err != nil {
		return fmt.Errorf("import source: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	ctx = logger.WithContext(ctx, log)

	st, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Scanning %s...\n", root)
	}
	progressFn := func(current, total int) {
		if flagQuiet {
			return
		}
		if current%25 == 0 || current == total {
			fmt.Fprintf(os.Stderr, "\r  Importing %s", cli.RenderProgressBar(current, total, 24))
		}
	}

	res, err := pipeline.Import(ctx, root, st, flagImportForce, progressFn)
	if err != nil {
		return err
	}

	log.Debug().
		Int("files", res.TotalFiles).
		Int("imported", res.Imported).
		Int("unchanged", res.Unchanged).
		Int("records", res.Records).
		Msg("import finished")

	if flagQuiet {
		return nil
	}
	if res.TotalFiles > 0 {
		fmt.Fprintln(os.Stderr)
	}
	fmt.Printf("  %d files: %d imported, %d unchanged, %s records\n",
		res.TotalFiles, res.Imported, res.Unchanged, cli.FormatNumber(int64(res.Records)))
	if res.ParseErrors > 0 {
		fmt.Println(cli.RenderWarning(fmt.Sprintf("%d lines could not be parsed", res.ParseErrors)))
	}
	for _, f := range res.Failures {
		fmt.Println(cli.RenderWarning(fmt.Sprintf("%s: %v", f.Path, f.Err)))
	}
	return nil
}
