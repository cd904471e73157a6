package main

import (
	"fmt"
	"strings"

	docxgen "github.com/alnah/go-docxgen"
	"github.com/alnah/go-docxgen/internal/config"
)

// loadConfig returns the named config, or an empty one when none is given.
func loadConfig(name string) (*config.Config, error) {
	if name == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(name)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergePageFlags applies page flags on top of cfg (CLI wins). A margin flag
// replaces every per-side value from the config.
func mergePageFlags(f pageFlags, cfg *config.Config) {
	if f.size != "" {
		cfg.Page.Size = f.size
	}
	if f.orientation != "" {
		cfg.Page.Orientation = f.orientation
	}
	if f.marginCm != 0 {
		cfg.Page.MarginCm = f.marginCm
		cfg.Page.Margins = config.MarginsConfig{}
	}
}

// pageSettings converts the page section of cfg. Unset values keep the
// library defaults.
func pageSettings(p config.PageConfig) docxgen.PageSettings {
	ps := docxgen.DefaultPageSettings()
	if p.Size != "" {
		ps.Size = strings.ToLower(p.Size)
	}
	if p.Orientation != "" {
		ps.Orientation = strings.ToLower(p.Orientation)
	}
	if p.MarginCm != 0 {
		ps.Margins = docxgen.UniformMargins(docxgen.Cm(p.MarginCm))
	}

	sides := []struct {
		cm  float64
		dst *docxgen.Length
	}{
		{p.Margins.Top, &ps.Margins.Top},
		{p.Margins.Bottom, &ps.Margins.Bottom},
		{p.Margins.Left, &ps.Margins.Left},
		{p.Margins.Right, &ps.Margins.Right},
	}
	for _, s := range sides {
		if s.cm != 0 {
			*s.dst = docxgen.Cm(s.cm)
		}
	}
	return ps
}

// mergeMetadata overlays the non-empty document fields of cfg on base.
func mergeMetadata(base docxgen.Metadata, d config.DocumentConfig) docxgen.Metadata {
	if d.Title != "" {
		base.Title = d.Title
	}
	if d.Subject != "" {
		base.Subject = d.Subject
	}
	if d.Author != "" {
		base.Author = d.Author
	}
	if len(d.Keywords) > 0 {
		base.Keywords = d.Keywords
	}
	if d.Language != "" {
		base.Language = d.Language
	}
	return base
}

// documentOptions builds the New options shared by every command.
func documentOptions(cfg *config.Config, base docxgen.Metadata, env *Environment) []docxgen.Option {
	opts := []docxgen.Option{
		docxgen.WithPageSettings(pageSettings(cfg.Page)),
		docxgen.WithMetadata(mergeMetadata(base, cfg.Document)),
		docxgen.WithClock(env.Now),
	}
	if cfg.Table.Style != "" {
		opts = append(opts, docxgen.WithTableStyle(cfg.Table.Style))
	}
	if cfg.Code.Style != "" {
		opts = append(opts, docxgen.WithCodeStyle(cfg.Code.Style))
	}
	if cfg.Code.Font != "" {
		opts = append(opts, docxgen.WithFonts("", "", cfg.Code.Font))
	}
	if cfg.Document.Cover {
		opts = append(opts, docxgen.WithCover(true))
	}
	return opts
}
