package pipeline

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"

	"github.com/alnah/go-docxgen/internal/yamlutil"
)

// FrontMatter is the metadata block at the top of a Markdown document.
type FrontMatter struct {
	Title        string   `yaml:"title"`
	Subtitle     string   `yaml:"subtitle"`
	Author       string   `yaml:"author"`
	Date         string   `yaml:"date"`
	Organization string   `yaml:"organization"`
	Subject      string   `yaml:"subject"`
	Keywords     []string `yaml:"keywords"`
	Language     string   `yaml:"language"`
	Cover        *bool    `yaml:"cover"`
}

// IsZero reports whether no field was set.
func (f FrontMatter) IsZero() bool {
	return f.Title == "" && f.Subtitle == "" && f.Author == "" && f.Date == "" &&
		f.Organization == "" && f.Subject == "" && len(f.Keywords) == 0 &&
		f.Language == "" && f.Cover == nil
}

// yamlFormat decodes "---" fenced front matter with the project's YAML
// library. An empty block is valid and leaves v untouched.
var yamlFormat = frontmatter.NewFormat("---", "---", func(data []byte, v any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	return yamlutil.Unmarshal(data, v)
})

// ParseFrontMatter splits source into its front matter and Markdown body.
// Source without front matter is returned whole with a zero FrontMatter.
func ParseFrontMatter(source []byte) (FrontMatter, []byte, error) {
	var meta FrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta, yamlFormat)
	if err != nil {
		return FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}
	return meta, body, nil
}
