package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/labelcheck/internal/model"
)

var (
	claimBrand   string
	claimClass   string
	claimABV     string
	claimNet     string
	outJSON      string
	noCache      bool
	noPreprocess bool
	ocrTimeout   time.Duration
	llmEnabled   bool
	llmProvider  string
	llmModel     string
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify <image>",
	Short: "Verify label claims against a single label photo",
	Long: `Verify runs OCR on a label photo and compares the four claims against
the recognized text:
- Brand name and product class/type with fuzzy token matching
- Alcohol content with glyph-aware percentage parsing
- Net contents with unit normalization
- Presence of the mandatory GOVERNMENT WARNING text

Example:
  labelcheck verify bottle.jpg --brand "Old Tom Distillery" \
    --class "Kentucky Straight Bourbon Whiskey" --abv 45% --net "750 ML"
  labelcheck verify bottle.jpg --brand "Old Tom" --class Bourbon \
    --abv 45 --net "750 ML" --json verdict.json`,
	Args: cobra.ExactArgs(1),
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	// Claim flags
	verifyCmd.Flags().StringVar(&claimBrand, "brand", "", "claimed brand name (required)")
	verifyCmd.Flags().StringVar(&claimClass, "class", "", "claimed product class/type (required)")
	verifyCmd.Flags().StringVar(&claimABV, "abv", "", "claimed alcohol content, e.g. 45% (required)")
	verifyCmd.Flags().StringVar(&claimNet, "net", "", "claimed net contents, e.g. '750 ML' (required)")
	_ = verifyCmd.MarkFlagRequired("brand")
	_ = verifyCmd.MarkFlagRequired("class")
	_ = verifyCmd.MarkFlagRequired("abv")
	_ = verifyCmd.MarkFlagRequired("net")

	// Output and OCR flags
	verifyCmd.Flags().StringVar(&outJSON, "json", "", "write verdict JSON to this path (default: stdout)")
	verifyCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable extracted-text cache")
	verifyCmd.Flags().BoolVar(&noPreprocess, "no-preprocess", false, "disable image preprocessing before OCR")
	verifyCmd.Flags().DurationVar(&ocrTimeout, "timeout", 30*time.Second, "OCR extraction timeout")

	// LLM flags
	verifyCmd.Flags().BoolVar(&llmEnabled, "llm", false, "attach an LLM explanation to the verdict")
	verifyCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider")
	verifyCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name (provider default if empty)")
}

func runVerify(cmd *cobra.Command, args []string) error {
	imagePath := args[0]

	claims := model.Claims{
		BrandName:        claimBrand,
		ProductClassType: claimClass,
		AlcoholContent:   claimABV,
		NetContents:      claimNet,
	}
	if err := claims.Validate(); err != nil {
		return fmt.Errorf("invalid claims: %w", err)
	}

	image, err := os.ReadFile(imagePath)
	if err != nil {
		return fmt.Errorf("read image: %w", err)
	}

	// Build configuration from flags
	cfg := model.DefaultConfig()
	cfg.OCR.Timeout = ocrTimeout
	cfg.OCR.Preprocess = !noPreprocess
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose

	if llmEnabled {
		if err := configureLLM(cfg, llmProvider, llmModel); err != nil {
			return err
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.OCR.Timeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "Verifying: %s\n", imagePath)
	}

	verifier := buildVerifier(cfg)
	verdict, err := verifier.VerifyImage(ctx, image, claims)
	if err != nil {
		return fmt.Errorf("verification failed: %w", err)
	}

	if verbose {
		for _, check := range verdict.Checks {
			fmt.Fprintf(os.Stderr, "  %s: %s\n", check.Field, check.Status)
		}
	}

	return writeVerdict(verdict, outJSON)
}

// writeVerdict renders the verdict as indented JSON to a file or stdout
func writeVerdict(verdict *model.Verdict, path string) error {
	data, err := json.MarshalIndent(verdict, "", "  ")
	if err != nil {
		return fmt.Errorf("encode verdict: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write verdict: %w", err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Wrote verdict: %s\n", path)
	}
	return nil
}
