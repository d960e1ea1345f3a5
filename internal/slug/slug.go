package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
	hyphens  = regexp.MustCompile(`-+`)
)

// Make returns the slug for s. Text is decomposed (NFKD) and combining marks
// are dropped so accented letters keep their base letter; every other run of
// characters outside [a-z0-9] becomes a single hyphen. Empty input yields an
// empty slug.
func Make(s string) string {
	slug := stripAccents(s)
	slug = strings.ToLower(slug)
	slug = nonAlnum.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	return hyphens.ReplaceAllString(slug, "-")
}

func stripAccents(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(t, s)
	if err != nil {
		return norm.NFKD.String(s)
	}
	return out
}
