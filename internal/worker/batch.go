package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ppiankov/labelcheck/internal/model"
)

// Verifier defines the interface for verifying one label image
type Verifier interface {
	VerifyImage(ctx context.Context, image []byte, claims model.Claims) (*model.Verdict, error)
}

// ManifestEntry is one row of a batch manifest: an image path plus the four
// claims to verify against it
type ManifestEntry struct {
	ImagePath string
	Claims    model.Claims
}

// VerifyJob verifies a single manifest entry
type VerifyJob struct {
	Entry    ManifestEntry
	Verifier Verifier
}

// Execute executes the verification job
func (j *VerifyJob) Execute(ctx context.Context) Result {
	image, err := os.ReadFile(j.Entry.ImagePath)
	if err != nil {
		return &VerifyResult{
			ImagePath: j.Entry.ImagePath,
			Error:     fmt.Errorf("read image: %w", err),
		}
	}

	verdict, err := j.Verifier.VerifyImage(ctx, image, j.Entry.Claims)
	return &VerifyResult{
		ImagePath: j.Entry.ImagePath,
		Verdict:   verdict,
		Error:     err,
	}
}

// VerifyResult represents the result of a verification job
type VerifyResult struct {
	ImagePath string
	Verdict   *model.Verdict
	Error     error
}

// GetError returns the error from the verification result
func (r *VerifyResult) GetError() error {
	return r.Error
}

// BatchProcessor verifies multiple label images concurrently
type BatchProcessor struct {
	verifier    Verifier
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(verifier Verifier, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		verifier:    verifier,
		concurrency: concurrency,
	}
}

// ProcessEntries verifies the manifest entries concurrently. Cancelling ctx
// abandons the remaining entries; results collected so far are returned.
func (b *BatchProcessor) ProcessEntries(ctx context.Context, entries []ManifestEntry) []*VerifyResult {
	if len(entries) == 0 {
		return []*VerifyResult{}
	}

	pool := NewPool(ctx, b.concurrency)
	pool.Start()

	// Drain results while submitting; a manifest larger than the channel
	// buffers must never block Submit on an undrained results channel
	var verifyResults []*VerifyResult
	done := make(chan struct{})
	go func() {
		defer close(done)
		for result := range pool.Results() {
			verifyResults = append(verifyResults, result.(*VerifyResult))
		}
	}()

	for _, entry := range entries {
		pool.Submit(&VerifyJob{
			Entry:    entry,
			Verifier: b.verifier,
		})
	}

	pool.Close()
	<-done

	return verifyResults
}

// ProcessManifest reads a manifest file and verifies its entries concurrently
func (b *BatchProcessor) ProcessManifest(ctx context.Context, filePath string) ([]*VerifyResult, error) {
	entries, err := ReadManifest(filePath)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	return b.ProcessEntries(ctx, entries), nil
}

// ReadManifest reads manifest entries from a file. One entry per line in the
// form "imagePath|brandName|productClassType|alcoholContent|netContents";
// blank lines and '#' comments are skipped, duplicate rows are dropped.
func ReadManifest(filePath string) ([]ManifestEntry, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var entries []ManifestEntry
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entry, err := parseManifestLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}

		if !seen[line] {
			seen[line] = true
			entries = append(entries, entry)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return entries, nil
}

func parseManifestLine(line string) (ManifestEntry, error) {
	parts := strings.Split(line, "|")
	if len(parts) != 5 {
		return ManifestEntry{}, fmt.Errorf("expected 5 '|'-separated fields, got %d", len(parts))
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	entry := ManifestEntry{
		ImagePath: parts[0],
		Claims: model.Claims{
			BrandName:        parts[1],
			ProductClassType: parts[2],
			AlcoholContent:   parts[3],
			NetContents:      parts[4],
		},
	}
	if entry.ImagePath == "" {
		return ManifestEntry{}, fmt.Errorf("empty image path")
	}

	return entry, nil
}
