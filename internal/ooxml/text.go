package ooxml

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Sanitize normalizes s to NFC and drops characters XML 1.0 cannot carry.
// Tabs, newlines and carriage returns are kept.
func Sanitize(s string) string {
	s = norm.NFC.String(s)
	if strings.IndexFunc(s, invalidXMLRune) < 0 {
		return s
	}
	return strings.Map(func(r rune) rune {
		if invalidXMLRune(r) {
			return -1
		}
		return r
	}, s)
}

func invalidXMLRune(r rune) bool {
	switch {
	case r == '\t', r == '\n', r == '\r':
		return false
	case r >= 0x20 && r <= 0xD7FF:
		return false
	case r >= 0xE000 && r <= 0xFFFD:
		return false
	case r >= 0x10000 && r <= 0x10FFFF:
		return false
	}
	return true
}
