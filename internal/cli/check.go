package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/mgpai22/vtt/pkg/webvtt"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var checkCmd = &cobra.Command{
	Use:   "check [subtitle_file...]",
	Short: "Validate one or more WebVTT files",
	Long: `Parse each file and report whether it is a valid WebVTT document.

Files are parsed in parallel. One line is printed per file, in the order
given, and the command fails if any file could not be parsed.

Examples:
  vtt check captions.vtt
  vtt check *.vtt --concurrency 8
  vtt check *.vtt --skip-unsupported`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().
		Int("concurrency", 0, "Number of files parsed in parallel (default from config)")
}

// outcome of parsing one file
type checkResult struct {
	Path string
	Cues int
	Err  error
}

func runCheck(cmd *cobra.Command, args []string) error {
	concurrency, _ := cmd.Flags().GetInt("concurrency")
	if !cmd.Flags().Changed("concurrency") {
		concurrency = cfg.Check.Concurrency
	}
	if concurrency <= 0 {
		return fmt.Errorf("concurrency must be positive, got %d", concurrency)
	}

	logger.Infow("Checking subtitle files",
		"files", len(args),
		"concurrency", concurrency,
	)

	results, err := checkFiles(cmd.Context(), args, concurrency, parseOptions(cmd))
	if err != nil {
		return err
	}

	if err := writeCheckReport(cmd.OutOrStdout(), results); err != nil {
		return err
	}

	failed := lo.CountBy(results, func(r checkResult) bool { return r.Err != nil })
	logger.Infow("Check complete",
		"files", len(results),
		"failed", failed,
	)
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed to parse", failed, len(results))
	}
	return nil
}

// checkFiles parses every path with at most concurrency parses in flight.
// Parse failures are reported per file; only cancellation aborts the run.
func checkFiles(
	ctx context.Context,
	paths []string,
	concurrency int,
	opts []webvtt.Option,
) ([]checkResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	results := make([]checkResult, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			result := checkResult{Path: path}
			doc, err := webvtt.Open(path, opts...)
			if err != nil {
				result.Err = err
			} else {
				result.Cues = len(doc.Cues())
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func writeCheckReport(w io.Writer, results []checkResult) error {
	for _, r := range results {
		var err error
		if r.Err != nil {
			_, err = fmt.Fprintf(w, "fail %s: %v\n", r.Path, r.Err)
		} else {
			_, err = fmt.Fprintf(w, "ok   %s (%d cues)\n", r.Path, r.Cues)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
