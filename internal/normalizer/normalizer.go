// Package normalizer cleans raw Korean address lines before geocoding.
package normalizer

import (
	"regexp"
	"strings"

	"address-resolver/internal/region"

	"golang.org/x/text/unicode/norm"
)

// detailPatterns strip a trailing detail clause that starts at a comma.
// Order matters: each pattern runs on the output of the previous one.
var detailPatterns = []*regexp.Regexp{
	regexp.MustCompile(`,\s*\d+층.*$`),           // ", 3층"
	regexp.MustCompile(`,\s*[가-힣]*\d+호.*$`),     // ", 301호", ", 가동301호"
	regexp.MustCompile(`,\s*제\d+층.*$`),          // ", 제14층"
	regexp.MustCompile(`(?i),\s*[A-Z]*\d+동.*$`), // ", A2동"
	regexp.MustCompile(`,\s*별관.*$`),             // ", 별관3층"
	regexp.MustCompile(`,\s*상가동.*$`),            // ", 상가동 102호"
	regexp.MustCompile(`,\s*주\d+동.*$`),          // ", 주2동"
	regexp.MustCompile(`,\s*\d+동.*$`),           // ", 1동"
	regexp.MustCompile(`,\s*비-\d+호.*$`),         // ", 비-1002호"
}

var parenthetical = regexp.MustCompile(`\s*\([^)]*\).*$`)

// Normalize strips floor/unit/building suffixes and parenthesized asides from raw,
// trims it and shortens a leading full-form sido name.
func Normalize(raw string) string {
	cleaned := norm.NFC.String(raw)
	for _, re := range detailPatterns {
		cleaned = re.ReplaceAllString(cleaned, "")
	}
	cleaned = parenthetical.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(cleaned)

	return region.ShortenPrefix(cleaned)
}
