package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TrimOrEmpty normalizes user input.
func TrimOrEmpty(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeSpace collapses repeated whitespace into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// UpperTrim trims and uppercases s.
func UpperTrim(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// RuneLen counts characters, not bytes.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

// SplitItemTokens splits a comma separated list into trimmed, non-empty tokens.
func SplitItemTokens(raw string) []string {
	out := []string{}
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

var lower = cases.Lower(language.Und)

// TitleCase lowercases s and uppercases the first letter of every run of
// letters, so "o'neil mary-jane" becomes "O'Neil Mary-Jane".
func TitleCase(s string) string {
	s = lower.String(strings.TrimSpace(s))
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		isLetter := unicode.IsLetter(r)
		if isLetter && !prevLetter {
			r = unicode.ToTitle(r)
		}
		prevLetter = isLetter
		b.WriteRune(r)
	}
	return b.String()
}

// SafeFilenamePart replaces characters that are awkward in file names.
func SafeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
