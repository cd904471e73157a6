// Package dateutil provides date format parsing and localized formatting.
package dateutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxDateFormatLength limits format string length to prevent abuse.
const MaxDateFormatLength = 50

// DefaultDateFormat is used when "auto" is specified without a format.
const DefaultDateFormat = "YYYY-MM-DD"

// Supported month-name languages.
const (
	LangEnglish    = "en"
	LangPortuguese = "pt"
)

// dateTokens are ordered by length descending for greedy matching.
var dateTokens = []string{"YYYY", "MMMM", "MMM", "YY", "MM", "DD", "M", "D"}

// DatePresets provides named shortcuts for common date formats.
var DatePresets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
	"pt-long":  "MMMM [de] YYYY",
}

var monthNames = map[string][12]string{
	LangPortuguese: {
		"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
		"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
	},
}

// segment is either a token or literal text of a parsed format.
type segment struct {
	token   string
	literal string
}

// parse splits a user-friendly format into tokens and literals.
// Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D. Brackets escape literal text.
func parse(format string) ([]segment, error) {
	if format == "" {
		return nil, fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return nil, fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var out []segment
	i := 0
	for i < len(format) {
		if format[i] == '[' {
			end := strings.Index(format[i+1:], "]")
			if end == -1 {
				return nil, fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, i)
			}
			out = append(out, segment{literal: format[i+1 : i+1+end]})
			i += end + 2
			continue
		}

		matched := false
		for _, tok := range dateTokens {
			if strings.HasPrefix(format[i:], tok) {
				out = append(out, segment{token: tok})
				i += len(tok)
				matched = true
				break
			}
		}
		if !matched {
			out = append(out, segment{literal: format[i : i+1]})
			i++
		}
	}
	return out, nil
}

// FormatDate formats t with a user-friendly format. Month names use lang
// ("en" or "pt"); unknown languages fall back to English.
func FormatDate(t time.Time, format, lang string) (string, error) {
	segs, err := parse(format)
	if err != nil {
		return "", err
	}
	names, localized := monthNames[strings.ToLower(lang)]

	var b strings.Builder
	for _, s := range segs {
		switch s.token {
		case "":
			b.WriteString(s.literal)
		case "YYYY":
			b.WriteString(t.Format("2006"))
		case "YY":
			b.WriteString(t.Format("06"))
		case "MMMM":
			if localized {
				b.WriteString(names[t.Month()-1])
			} else {
				b.WriteString(t.Month().String())
			}
		case "MMM":
			if localized {
				b.WriteString(string([]rune(names[t.Month()-1])[:3]))
			} else {
				b.WriteString(t.Format("Jan"))
			}
		case "MM":
			b.WriteString(t.Format("01"))
		case "M":
			b.WriteString(strconv.Itoa(int(t.Month())))
		case "DD":
			b.WriteString(t.Format("02"))
		case "D":
			b.WriteString(strconv.Itoa(t.Day()))
		}
	}
	return b.String(), nil
}

// ResolveDate handles "auto" and "auto:FORMAT" syntax for date values.
//   - "auto" → current date in YYYY-MM-DD format
//   - "auto:FORMAT" → current date in custom format (e.g., "auto:DD/MM/YYYY")
//   - "auto:preset" → current date using named preset (iso, european, us, long, pt-long)
//   - any other value → returned unchanged (passthrough)
//
// The time parameter allows injecting a fixed time for testing.
func ResolveDate(value string, t time.Time, lang string) (string, error) {
	lower := strings.ToLower(value)

	if !strings.HasPrefix(lower, "auto") {
		return value, nil
	}

	if lower == "auto" {
		return FormatDate(t, DefaultDateFormat, lang)
	}

	if !strings.HasPrefix(lower, "auto:") {
		return "", fmt.Errorf("%w: invalid auto syntax %q, use \"auto\" or \"auto:FORMAT\"", ErrInvalidDateFormat, value)
	}

	// Preserve original case for format tokens
	formatPart := value[5:]
	if formatPart == "" {
		return "", fmt.Errorf("%w: format cannot be empty after \"auto:\"", ErrInvalidDateFormat)
	}

	if preset, ok := DatePresets[strings.ToLower(formatPart)]; ok {
		formatPart = preset
	}

	return FormatDate(t, formatPart, lang)
}
