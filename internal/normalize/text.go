package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var spaceRe = regexp.MustCompile(`\s+`)

// companyLabel is the boilerplate suffix BOSS/Zhaopin append to employer names.
const companyLabel = "公司名称"

// CleanCompany strips the boilerplate label from an extracted employer name.
func CleanCompany(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(strings.TrimSpace(s), companyLabel, ""))
}

// CanonicalURL strips everything from the first '?' onward. The canonical URL
// is the dedup key downstream, so it must be derived the same way everywhere.
func CanonicalURL(u string) string {
	if i := strings.Index(u, "?"); i >= 0 {
		return u[:i]
	}
	return u
}

// CompactSpaces removes all whitespace runs.
func CompactSpaces(s string) string {
	return spaceRe.ReplaceAllString(s, "")
}

// Fold lowercases and strips diacritics for tolerant label matching.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return strings.ToLower(result)
}
