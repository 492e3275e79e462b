package slug

import (
	"regexp"
	"strings"
)

var (
	reNonWord = regexp.MustCompile(`[^A-Za-z0-9_ ]+`)
	reSpaces  = regexp.MustCompile(` +`)
)

// Derive maps an article title to the path segment used in /articles/:slug.
// The result is never stored; every lookup recomputes it from the title.
//
// The rule is kept byte-for-byte compatible with the URLs already published:
// lowercase, drop everything that is not an ASCII word character or a space,
// then turn each run of spaces into a single hyphen. Leading and trailing
// hyphens are not trimmed, and hyphens present in the title are dropped.
func Derive(title string) string {
	s := strings.ToLower(title)
	s = reNonWord.ReplaceAllString(s, "")
	return reSpaces.ReplaceAllString(s, "-")
}
