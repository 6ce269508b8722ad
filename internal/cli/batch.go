package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/labelcheck/internal/model"
	"github.com/ppiankov/labelcheck/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <manifest>",
	Short: "Verify multiple labels from a manifest file in parallel",
	Long: `Batch verifies many label photos concurrently. The manifest holds one
entry per line:

  imagePath|brandName|productClassType|alcoholContent|netContents

Blank lines and '#' comments are skipped. Each entry produces one verdict
JSON file in the output directory, named after the image file.

Example:
  labelcheck batch labels.txt
  labelcheck batch labels.txt --concurrency 8 --output-dir ./verdicts`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./labelcheck-verdicts", "output directory for verdicts")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable extracted-text cache")
	batchCmd.Flags().BoolVar(&noPreprocess, "no-preprocess", false, "disable image preprocessing before OCR")
}

func runBatch(cmd *cobra.Command, args []string) error {
	manifest := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	fmt.Fprintf(os.Stderr, "Manifest:   %s\n", manifest)
	fmt.Fprintf(os.Stderr, "Workers:    %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "Output dir: %s\n", outputDir)
	fmt.Fprintln(os.Stderr)

	// Build configuration
	cfg := model.DefaultConfig()
	cfg.OCR.Preprocess = !noPreprocess
	cfg.Cache.Enabled = !noCache
	cfg.Concurrency.Workers = concurrency
	cfg.Output.Verbose = verbose

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	verifier := buildVerifier(cfg)
	processor := worker.NewBatchProcessor(verifier, concurrency)

	results, err := processor.ProcessManifest(ctx, manifest)
	if err != nil {
		return fmt.Errorf("process manifest: %w", err)
	}

	successCount := 0
	failureCount := 0

	for _, result := range results {
		if result.Error != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.ImagePath, result.Error)
			continue
		}

		successCount++

		outPath := filepath.Join(outputDir, verdictFilename(result.ImagePath))
		if err := writeVerdict(result.Verdict, outPath); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.ImagePath, err)
			continue
		}

		fmt.Fprintf(os.Stderr, "✓ %s: %s\n", result.ImagePath, result.Verdict.OverallStatus)
	}

	fmt.Fprintln(os.Stderr)
	fmt.Fprintf(os.Stderr, "Total:    %d\n", len(results))
	fmt.Fprintf(os.Stderr, "Success:  %d\n", successCount)
	fmt.Fprintf(os.Stderr, "Failures: %d\n", failureCount)

	if failureCount > 0 {
		return fmt.Errorf("%d of %d verifications failed", failureCount, len(results))
	}
	return nil
}

// verdictFilename derives the verdict file name from the image path
func verdictFilename(imagePath string) string {
	base := filepath.Base(imagePath)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	return base + ".verdict.json"
}
