package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	docxgen "github.com/alnah/go-docxgen"
	"github.com/alnah/go-docxgen/internal/dateutil"
	"github.com/alnah/go-docxgen/internal/report"
)

const defaultReportFile = report.DefaultFilename

// reportPlace prefixes resolved "auto" dates in the cover date line.
const reportPlace = "Xai-Xai, "

// runReport writes the built-in report.
func runReport(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseReportFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) > 0 {
		return &usageError{err: fmt.Errorf("report takes no arguments, got %q", positional)}
	}

	return withLogger(flags.common, env, func(logger *zap.Logger) error {
		return writeReport(ctx, flags, env, logger)
	})
}

func writeReport(ctx context.Context, flags *reportFlags, env *Environment, logger *zap.Logger) error {
	start := time.Now()

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}
	mergePageFlags(flags.page, cfg)
	if flags.date != "" {
		cfg.Document.Date = flags.date
	}
	dateLine, err := resolveDateLine(cfg.Document.Date, env.Now())
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	path := resolveReportPath(flags.output, cfg.Output.DefaultDir, cfg.Output.Filename)
	logger.Debug("building report", zap.String("output", path), zap.String("dateLine", dateLine))

	doc, err := docxgen.New(documentOptions(cfg, report.Metadata(), env)...)
	if err != nil {
		return err
	}
	if err := report.Build(doc, report.Options{DateLine: dateLine}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			return fmt.Errorf("%w: %w", ErrOutputDirectory, err)
		}
	}
	if err := doc.Save(path); err != nil {
		return err
	}

	logger.Info("report written",
		zap.String("path", path),
		zap.Int("blocks", doc.Len()),
		zap.Duration("elapsed", time.Since(start)),
	)
	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "✅ Documento criado com sucesso: %s\n", path)
	}
	return nil
}

// resolveDateLine turns the date setting into the cover date line. Empty
// keeps the default line, "auto" forms are resolved in Portuguese and
// prefixed with the place, and literals are used as the whole line.
func resolveDateLine(value string, now time.Time) (string, error) {
	lower := strings.ToLower(value)
	switch {
	case value == "":
		return report.DefaultDateLine, nil
	case lower == "auto":
		value = "auto:pt-long"
	case !strings.HasPrefix(lower, "auto:"):
		return value, nil
	}
	date, err := docxgen.ResolveDate(value, now, dateutil.LangPortuguese)
	if err != nil {
		return "", &usageError{err: fmt.Errorf("invalid date: %w", err)}
	}
	return reportPlace + date, nil
}

// resolveReportPath picks the output file: the flag, then the configured
// directory and file name, then the default name in the working directory.
func resolveReportPath(flagOutput, dir, name string) string {
	if flagOutput != "" {
		return flagOutput
	}
	if name == "" {
		name = defaultReportFile
	}
	return filepath.Join(dir, name)
}
