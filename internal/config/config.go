// Package config loads and validates the YAML configuration of the docxgen
// CLI. CLI flags are merged on top of a loaded Config by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/alnah/go-docxgen/internal/dateutil"
	"github.com/alnah/go-docxgen/internal/fileutil"
	"github.com/alnah/go-docxgen/internal/ooxml"
	"github.com/alnah/go-docxgen/internal/pipeline"
	"github.com/alnah/go-docxgen/internal/yamlutil"
)

// AppName is the directory name used under the user configuration directory.
const AppName = "go-docxgen"

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrConfigInvalid   = errors.New("invalid config")
)

// Field limits.
const (
	MaxTextLength     = 200
	MaxKeywords       = 20
	MaxDateLength     = 60
	MaxFontNameLength = 64
	MaxMarginCm       = 10.0
)

// Config holds all configuration for document generation.
type Config struct {
	Output   OutputConfig   `yaml:"output"`
	Page     PageConfig     `yaml:"page"`
	Document DocumentConfig `yaml:"document"`
	Table    TableConfig    `yaml:"table"`
	Code     CodeConfig     `yaml:"code"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // empty = next to the source
	Filename   string `yaml:"filename"`   // report command only
}

// PageConfig defines page geometry. Margins are in centimeters; a per-side
// value of zero falls back to MarginCm, and MarginCm zero to the library
// default of 2.5 cm.
type PageConfig struct {
	Size        string        `yaml:"size"`        // a4, letter, legal
	Orientation string        `yaml:"orientation"` // portrait, landscape
	MarginCm    float64       `yaml:"marginCm"`
	Margins     MarginsConfig `yaml:"margins"`
}

// MarginsConfig overrides individual margins, in centimeters.
type MarginsConfig struct {
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
}

// DocumentConfig defines metadata written to the core properties.
type DocumentConfig struct {
	Title    string   `yaml:"title"`
	Subject  string   `yaml:"subject"`
	Author   string   `yaml:"author"`
	Keywords []string `yaml:"keywords"`
	Date     string   `yaml:"date"`     // literal, "auto" or "auto:FORMAT"
	Language string   `yaml:"language"` // BCP 47, e.g. pt-PT
	Cover    bool     `yaml:"cover"`
}

// TableConfig defines the table style.
type TableConfig struct {
	Style string `yaml:"style"`
}

// CodeConfig defines fenced code rendering.
type CodeConfig struct {
	Style string `yaml:"style"` // chroma style name
	Font  string `yaml:"font"`
}

// Field errors are keyed by their YAML name.
func init() {
	validation.ErrorTag = "yaml"
}

// DefaultConfig returns a configuration that leaves every library default
// in place.
func DefaultConfig() *Config {
	return &Config{}
}

// Validate checks every section and returns ErrConfigInvalid wrapping the
// per-field errors.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.Output),
		validation.Field(&c.Page),
		validation.Field(&c.Document),
		validation.Field(&c.Table),
		validation.Field(&c.Code),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfigInvalid, err)
	}
	return nil
}

// Validate implements validation.Validatable.
func (o OutputConfig) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.Filename,
			validation.Length(0, MaxTextLength),
			validation.By(docxFilename),
		),
	)
}

// Validate implements validation.Validatable.
func (p PageConfig) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Size, validation.By(lowerIn("a4", "letter", "legal"))),
		validation.Field(&p.Orientation, validation.By(lowerIn("portrait", "landscape"))),
		validation.Field(&p.MarginCm, validation.Min(0.0), validation.Max(MaxMarginCm)),
		validation.Field(&p.Margins),
	)
}

// Validate implements validation.Validatable.
func (m MarginsConfig) Validate() error {
	rules := []validation.Rule{validation.Min(0.0), validation.Max(MaxMarginCm)}
	return validation.ValidateStruct(&m,
		validation.Field(&m.Top, rules...),
		validation.Field(&m.Bottom, rules...),
		validation.Field(&m.Left, rules...),
		validation.Field(&m.Right, rules...),
	)
}

// Validate implements validation.Validatable.
func (d DocumentConfig) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Title, validation.Length(0, MaxTextLength)),
		validation.Field(&d.Subject, validation.Length(0, MaxTextLength)),
		validation.Field(&d.Author, validation.Length(0, MaxTextLength)),
		validation.Field(&d.Keywords,
			validation.Length(0, MaxKeywords),
			validation.Each(validation.Length(1, MaxTextLength)),
		),
		validation.Field(&d.Date, validation.Length(0, MaxDateLength), validation.By(dateSyntax)),
		validation.Field(&d.Language, validation.Length(0, 35)),
	)
}

// Validate implements validation.Validatable.
func (t TableConfig) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Style, validation.By(func(v any) error {
			s, _ := v.(string)
			if s != "" && !ooxml.KnownTableStyle(s) {
				return validation.NewError("validation_table_style",
					fmt.Sprintf("must be %s or %s", ooxml.StyleLightGridAccent1, ooxml.StyleTableGrid))
			}
			return nil
		})),
	)
}

// Validate implements validation.Validatable.
func (c CodeConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Style, validation.By(func(v any) error {
			s, _ := v.(string)
			if s != "" && !pipeline.IsCodeStyle(s) {
				return validation.NewError("validation_code_style", "unknown chroma style")
			}
			return nil
		})),
		validation.Field(&c.Font, validation.Length(0, MaxFontNameLength)),
	)
}

// lowerIn accepts the empty string or any of values, case-insensitively.
func lowerIn(values ...string) validation.RuleFunc {
	return func(v any) error {
		s, _ := v.(string)
		if s == "" {
			return nil
		}
		for _, want := range values {
			if strings.EqualFold(s, want) {
				return nil
			}
		}
		return validation.NewError("validation_in_invalid", "must be one of "+strings.Join(values, ", "))
	}
}

func docxFilename(v any) error {
	s, _ := v.(string)
	if s == "" || strings.EqualFold(filepath.Ext(s), ".docx") {
		return nil
	}
	return validation.NewError("validation_docx_extension", "must end in .docx")
}

func dateSyntax(v any) error {
	s, _ := v.(string)
	if _, err := dateutil.ResolveDate(s, time.Time{}, dateutil.LangEnglish); err != nil {
		return validation.NewError("validation_date_format", err.Error())
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise it's searched as name.yaml then name.yml, in the working
// directory and then in the user config directory ($XDG_CONFIG_HOME/go-docxgen
// on Linux). Returns an error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := yamlutil.ReadFileStrict(configPath, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Tried: []string{configPath}}
		}
		if errors.Is(err, fs.ErrPermission) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		return nil, fmt.Errorf("%w: %s: %s", ErrConfigParse, configPath, yamlutil.Describe(err))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}

	return &cfg, nil
}

// NotFoundError lists the paths searched for a config file.
// It matches ErrConfigNotFound with errors.Is.
type NotFoundError struct {
	Tried []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: tried %s", ErrConfigNotFound, strings.Join(e.Tried, ", "))
}

// Is reports whether target is ErrConfigNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrConfigNotFound
}

// SearchPaths returns the candidate files for a config name, in lookup order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(dir, AppName, name+ext))
		}
	}
	return paths
}

func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", &NotFoundError{Tried: paths}
}

// HasFieldError reports whether err carries a validation failure at the
// given YAML path, e.g. HasFieldError(err, "page", "size").
func HasFieldError(err error, path ...string) bool {
	for _, key := range path {
		var fields validation.Errors
		if !errors.As(err, &fields) {
			return false
		}
		next, ok := fields[key]
		if !ok || next == nil {
			return false
		}
		err = next
	}
	return len(path) > 0
}
