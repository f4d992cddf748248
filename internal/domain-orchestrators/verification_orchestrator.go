// Package orchestrators coordinates complex workflows across multiple domain services.
package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ochairo/prodverify/internal/domain/entities"
	"github.com/ochairo/prodverify/internal/domain/interfaces"
	"github.com/ochairo/prodverify/internal/domain/interfaces/gateways"
	"github.com/ochairo/prodverify/internal/domain/interfaces/services"
)

// VerificationOrchestrator drives a full dependency verification run:
// scan directories, scan distributions, classify, report
type VerificationOrchestrator struct {
	scanner    gateways.SourceScanner
	classifier services.ClassifierService
	logger     interfaces.Logger
}

// NewVerificationOrchestrator creates a new verification orchestrator
func NewVerificationOrchestrator(
	scanner gateways.SourceScanner,
	classifier services.ClassifierService,
	logger interfaces.Logger,
) *VerificationOrchestrator {
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}

	return &VerificationOrchestrator{
		scanner:    scanner,
		classifier: classifier,
		logger:     logger,
	}
}

// VerificationResult contains the outcome of one verification run
type VerificationResult struct {
	Report           *entities.VerificationReport
	Identities       []entities.ArtifactIdentity
	WorkflowDuration time.Duration
}

// Verify runs the verification workflow. The returned result carries the
// report whenever classification was reached, including on ValidationFailure.
func (o *VerificationOrchestrator) Verify(ctx context.Context, cfg entities.Configuration) (*VerificationResult, error) {
	startTime := time.Now()

	// Step 1: Init
	cfg = cfg.Normalize()
	o.logger.Info(fmt.Sprintf("Verifying dependencies in %d directories and %d distributions",
		len(cfg.Directories), len(cfg.Distributions)))
	o.verbose(cfg, fmt.Sprintf("File types to search for: %v", cfg.FileTypes))
	o.verbose(cfg, fmt.Sprintf("Ignore patterns: %v", cfg.IgnoreFiles))

	// Step 2: Scan directories; they must yield something before
	// distributions are consulted
	filesToValidate := entities.NewIdentitySet()
	if err := o.scanDirectories(ctx, cfg, filesToValidate); err != nil {
		return nil, err
	}
	if filesToValidate.Len() == 0 {
		return nil, &entities.NoArtifactsFoundError{}
	}
	o.verbose(cfg, fmt.Sprintf("Total files found in directories: %d", filesToValidate.Len()))

	// Step 3: Scan distributions into the same set
	if err := o.scanDistributions(ctx, cfg, filesToValidate); err != nil {
		return nil, err
	}

	// Step 4: Classify
	o.logger.Info(fmt.Sprintf("Validating %d total dependency files", filesToValidate.Len()))
	classified := o.classifier.ClassifyAll(filesToValidate, cfg)
	o.emitEvents(cfg, classified.Events)

	// Step 5: Report
	report := entities.NewVerificationReport(classified, len(cfg.Directories), len(cfg.Distributions))
	o.logger.Info("Validation results:")
	o.logger.Info(fmt.Sprintf("  Valid artifacts: %d", report.ValidCount))
	o.logger.Info(fmt.Sprintf("  Invalid artifacts: %d", report.InvalidCount))
	o.logger.Info(fmt.Sprintf("  Ignored artifacts: %d", report.IgnoredCount))

	result := &VerificationResult{
		Report:           report,
		Identities:       filesToValidate.Sorted(),
		WorkflowDuration: time.Since(startTime),
	}

	if !report.Passed() {
		return result, &entities.ValidationFailure{Invalid: report.Invalid}
	}

	return result, nil
}

// Discover scans every configured source without classifying.
// Unlike Verify it does not treat an empty directory result as fatal.
func (o *VerificationOrchestrator) Discover(ctx context.Context, cfg entities.Configuration) ([]entities.ArtifactIdentity, error) {
	cfg = cfg.Normalize()

	found := entities.NewIdentitySet()
	if err := o.scanDirectories(ctx, cfg, found); err != nil {
		return nil, err
	}
	if err := o.scanDistributions(ctx, cfg, found); err != nil {
		return nil, err
	}

	return found.Sorted(), nil
}

// Check classifies literal identity strings against cfg without scanning
func (o *VerificationOrchestrator) Check(cfg entities.Configuration, identities []string) []entities.Decision {
	cfg = cfg.Normalize()

	decisions := make([]entities.Decision, 0, len(identities))
	for _, raw := range identities {
		decision := o.classifier.Classify(entities.ParseIdentity(raw), cfg)
		o.emitEvents(cfg, decision.Events)
		decisions = append(decisions, decision)
	}
	return decisions
}

func (o *VerificationOrchestrator) scanDirectories(ctx context.Context, cfg entities.Configuration, into *entities.IdentitySet) error {
	for _, dir := range cfg.Directories {
		found, err := o.scanner.ScanDirectory(ctx, dir, cfg)
		if err != nil {
			return classifyScanError(err)
		}
		into.AddAll(found)
	}
	return nil
}

func (o *VerificationOrchestrator) scanDistributions(ctx context.Context, cfg entities.Configuration, into *entities.IdentitySet) error {
	for _, dist := range cfg.Distributions {
		found, err := o.scanner.ScanDistribution(ctx, dist, cfg)
		if err != nil {
			return classifyScanError(err)
		}
		into.AddAll(found)
	}
	return nil
}

// emitEvents writes classifier diagnostics when verbose mode is on
func (o *VerificationOrchestrator) emitEvents(cfg entities.Configuration, events []entities.Event) {
	if !cfg.Verbose {
		return
	}
	for _, e := range events {
		o.logger.Info(interfaces.VerbosePrefix + e.Message)
	}
}

func (o *VerificationOrchestrator) verbose(cfg entities.Configuration, msg string) {
	if cfg.Verbose {
		o.logger.Info(interfaces.VerbosePrefix + msg)
	}
}

// classifyScanError keeps the typed failures and wraps everything else
func classifyScanError(err error) error {
	var (
		cfgErr *entities.ConfigurationError
		ioErr  *entities.IOError
	)
	if errors.As(err, &cfgErr) || errors.As(err, &ioErr) {
		return err
	}
	return &entities.ExecutionError{Err: err}
}
