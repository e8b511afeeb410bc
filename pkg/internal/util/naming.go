package util

import (
	"regexp"
	"strings"
	"unicode"
)

// DefaultPackageName is used wherever a name collapses to nothing.
const DefaultPackageName = "vite-project"

var (
	validPackageName   = regexp.MustCompile(`^(?:@[a-z\d\-*~][a-z\d\-*._~]*/)?[a-z\d\-~][a-z\d\-._~]*$`)
	whitespaceRun      = regexp.MustCompile(`\s+`)
	leadingDotOrScore  = regexp.MustCompile(`^[._]`)
	disallowedCharRuns = regexp.MustCompile(`[^a-z\d\-~]+`)
)

// NormalizeTargetPath trims surrounding whitespace and strips trailing path
// separators. Trailing whitespace hidden behind a separator is stripped as
// well so that the result is a fixed point.
func NormalizeTargetPath(input string) string {
	s := strings.TrimLeftFunc(input, unicode.IsSpace)
	return strings.TrimRightFunc(s, func(r rune) bool {
		return r == '/' || unicode.IsSpace(r)
	})
}

// IsValidPackageName reports whether name is usable as a package.json name.
func IsValidPackageName(name string) bool {
	return validPackageName.MatchString(name)
}

// ToValidPackageName derives a package.json name from an arbitrary project
// name.
func ToValidPackageName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = whitespaceRun.ReplaceAllString(s, "-")
	s = leadingDotOrScore.ReplaceAllString(s, "")
	s = disallowedCharRuns.ReplaceAllString(s, "-")
	if s == "" {
		return DefaultPackageName
	}
	return s
}
