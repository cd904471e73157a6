package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	docxgen "github.com/alnah/go-docxgen"
	"github.com/alnah/go-docxgen/internal/config"
)

// runConvert converts Markdown files to documents.
func runConvert(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	return withLogger(flags.common, env, func(logger *zap.Logger) error {
		return convertFiles(ctx, positional, flags, env, logger)
	})
}

func convertFiles(ctx context.Context, positional []string, flags *convertFlags, env *Environment, logger *zap.Logger) error {
	// Validate worker count early
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	inputPath, err := resolveInputPath(positional)
	if err != nil {
		return err
	}
	outputDir := resolveOutputDir(flags.output, cfg)

	files, err := discoverFiles(inputPath, outputDir)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w in %s", ErrNoMarkdownFiles, inputPath)
	}

	// Fail on bad page or style settings once, not per file.
	opts := documentOptions(cfg, docxgen.Metadata{}, env)
	if _, err := docxgen.New(opts...); err != nil {
		return err
	}

	workers := docxgen.ResolveWorkers(flags.workers)
	logger.Debug("starting conversion",
		zap.String("input", inputPath),
		zap.Int("files", len(files)),
		zap.Int("workers", workers),
	)

	start := time.Now()
	results := convertBatch(ctx, docxgen.NewConverter(), files, opts, workers)
	for _, r := range results {
		if r.Err != nil {
			logger.Warn("conversion failed", zap.String("input", r.InputPath), zap.Error(r.Err))
			continue
		}
		logger.Debug("converted",
			zap.String("input", r.InputPath),
			zap.String("output", r.OutputPath),
			zap.Duration("elapsed", r.Duration),
		)
	}
	logger.Info("conversion finished", zap.Int("files", len(results)), zap.Duration("elapsed", time.Since(start)))

	failed := printResults(results, flags.common.quiet, flags.common.verbose, env)
	if err := ctx.Err(); err != nil {
		return err
	}
	if failed > 0 {
		if len(results) == 1 {
			return &fileError{path: results[0].InputPath, err: results[0].Err}
		}
		return fmt.Errorf("%w: %d of %d", ErrConversionFailed, failed, len(results))
	}
	return nil
}

// mergeFlags applies CLI flags on top of cfg. CLI flags win over config
// values; unset flags leave the config untouched.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	mergePageFlags(flags.page, cfg)
	if flags.tableStyle != "" {
		cfg.Table.Style = flags.tableStyle
	}
	if flags.codeStyle != "" {
		cfg.Code.Style = flags.codeStyle
	}
	if flags.cover {
		cfg.Document.Cover = true
	}
}

// resolveInputPath returns the single positional input.
func resolveInputPath(args []string) (string, error) {
	switch len(args) {
	case 0:
		return "", ErrNoInput
	case 1:
		return args[0], nil
	default:
		return "", &usageError{err: fmt.Errorf("expected one input, got %d", len(args))}
	}
}

// resolveOutputDir returns the output flag, or the configured directory.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}
