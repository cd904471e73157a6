package config

// Notes:
// - LoadConfig name resolution uses the working directory, so those tests
//   chdir into a temp dir and cannot run in parallel.
// - XDG_CONFIG_HOME is set per test with t.Setenv for the user config lookup.

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const fullConfig = `output:
  defaultDir: out
  filename: relatorio.docx
page:
  size: a4
  orientation: portrait
  marginCm: 2.5
  margins:
    left: 3
document:
  title: Folha de Inhamissa
  author: Grupo B08
  keywords: [agricultura, inhamissa]
  date: auto:pt-long
  language: pt-PT
  cover: true
table:
  style: TableGrid
code:
  style: monokai
  font: Courier New
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

// ---------------------------------------------------------------------------
// TestConfig_Validate - Field rules
// ---------------------------------------------------------------------------

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mutate    func(c *Config)
		wantField string
	}{
		{"default is valid", func(*Config) {}, ""},
		{"mixed case enums", func(c *Config) { c.Page.Size = "Letter"; c.Page.Orientation = "LANDSCAPE" }, ""},
		{"unknown page size", func(c *Config) { c.Page.Size = "a3" }, "size"},
		{"unknown orientation", func(c *Config) { c.Page.Orientation = "sideways" }, "orientation"},
		{"negative margin", func(c *Config) { c.Page.MarginCm = -1 }, "marginCm"},
		{"huge side margin", func(c *Config) { c.Page.Margins.Top = 50 }, "top"},
		{"bad date syntax", func(c *Config) { c.Document.Date = "auto;YYYY" }, "date"},
		{"too many keywords", func(c *Config) { c.Document.Keywords = make([]string, MaxKeywords+1) }, "keywords"},
		{"title too long", func(c *Config) { c.Document.Title = strings.Repeat("x", MaxTextLength+1) }, "title"},
		{"unknown table style", func(c *Config) { c.Table.Style = "Zebra" }, "style"},
		{"unknown code style", func(c *Config) { c.Code.Style = "no-such-style" }, "style"},
		{"non-docx filename", func(c *Config) { c.Output.Filename = "out.pdf" }, "filename"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()

			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			if !errors.Is(err, ErrConfigInvalid) {
				t.Fatalf("Validate() error = %v, want ErrConfigInvalid", err)
			}
			var fieldErrs validation.Errors
			if !errors.As(err, &fieldErrs) {
				t.Fatalf("error %v does not carry validation.Errors", err)
			}
			if !strings.Contains(err.Error(), tt.wantField) {
				t.Errorf("error %q does not name field %q", err, tt.wantField)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestHasFieldError - Nested field lookup
// ---------------------------------------------------------------------------

func TestHasFieldError(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Page.Size = "a3"
	cfg.Code.Style = "no-such-style"
	err := cfg.Validate()

	tests := []struct {
		name string
		err  error
		path []string
		want bool
	}{
		{"page size", err, []string{"page", "size"}, true},
		{"code style", err, []string{"code", "style"}, true},
		{"valid sibling", err, []string{"page", "orientation"}, false},
		{"valid section", err, []string{"table", "style"}, false},
		{"section only", err, []string{"page"}, true},
		{"too deep", err, []string{"page", "size", "x"}, false},
		{"empty path", err, nil, false},
		{"plain error", errors.New("boom"), []string{"page"}, false},
		{"nil error", nil, []string{"page"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := HasFieldError(tt.err, tt.path...); got != tt.want {
				t.Errorf("HasFieldError(%v) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestLoadConfig - Path and name resolution
// ---------------------------------------------------------------------------

func TestLoadConfig_Path(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "report.yaml")
	writeFile(t, path, fullConfig)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Output.Filename != "relatorio.docx" || cfg.Page.Margins.Left != 3 || !cfg.Document.Cover {
		t.Errorf("decoded config = %+v", cfg)
	}
	if cfg.Table.Style != "TableGrid" || cfg.Code.Font != "Courier New" {
		t.Errorf("table/code = %+v %+v", cfg.Table, cfg.Code)
	}
	if len(cfg.Document.Keywords) != 2 {
		t.Errorf("Keywords = %v", cfg.Document.Keywords)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	unknown := filepath.Join(dir, "unknown.yaml")
	writeFile(t, unknown, "page:\n  colour: red\n")
	invalid := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalid, "page:\n  size: a3\n")
	broken := filepath.Join(dir, "broken.yaml")
	writeFile(t, broken, "page: [\n")

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty name", "", ErrEmptyConfigName},
		{"missing path", filepath.Join(dir, "none.yaml"), ErrConfigNotFound},
		{"unknown field", unknown, ErrConfigParse},
		{"syntax error", broken, ErrConfigParse},
		{"invalid value", invalid, ErrConfigInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := LoadConfig(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadConfig(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig_Name(t *testing.T) {
	work := t.TempDir()
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Chdir(work)

	writeFile(t, filepath.Join(xdg, AppName, "shared.yml"), "table:\n  style: TableGrid\n")
	writeFile(t, filepath.Join(work, "local.yaml"), "page:\n  size: legal\n")

	cfg, err := LoadConfig("local")
	if err != nil {
		t.Fatalf("LoadConfig(local) error = %v", err)
	}
	if cfg.Page.Size != "legal" {
		t.Errorf("Page.Size = %q, want legal", cfg.Page.Size)
	}

	cfg, err = LoadConfig("shared")
	if err != nil {
		t.Fatalf("LoadConfig(shared) error = %v", err)
	}
	if cfg.Table.Style != "TableGrid" {
		t.Errorf("Table.Style = %q, want TableGrid", cfg.Table.Style)
	}

	_, err = LoadConfig("absent")
	var nf *NotFoundError
	if !errors.As(err, &nf) || !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("LoadConfig(absent) error = %v, want NotFoundError", err)
	}
	if len(nf.Tried) != 4 {
		t.Errorf("Tried = %v, want 4 candidates", nf.Tried)
	}
	if !strings.Contains(nf.Tried[2], filepath.Join(xdg, AppName)) {
		t.Errorf("Tried[2] = %q, want path under XDG_CONFIG_HOME", nf.Tried[2])
	}
}
