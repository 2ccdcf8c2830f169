package derive

import "strings"

// Singularization is deliberately conservative: a short ordered rule table
// for the plural shapes that actually occur in asset filenames, with
// everything unmatched passing through unchanged. A full natural-language
// inflector would guess, and guessing breaks key stability.

// invariantEndings are suffixes of words that look plural but are not
// (Express, Status, Analysis).
var invariantEndings = []string{"ss", "us", "is"}

// invariantWords never change regardless of suffix. Extensible via the
// invariant_words config table.
var invariantWords = map[string]bool{
	"kubernetes": true,
	"series":     true,
	"species":    true,
	"data":       true,
	"media":      true,
}

type suffixRule struct {
	suffix      string
	trim        int
	replacement string
	minLen      int
}

// Ordered: first match wins. Plain "ses" and "ches" intentionally fall
// through to the trailing-s rule: in this corpus the -e singular is the
// common case (Databases -> Database, Caches -> Cache).
var suffixRules = []suffixRule{
	{suffix: "ies", trim: 3, replacement: "y", minLen: 5},
	{suffix: "sses", trim: 2, minLen: 5},
	{suffix: "xes", trim: 2, minLen: 4},
	{suffix: "zes", trim: 2, minLen: 4},
	{suffix: "s", trim: 1, minLen: 2},
}

// Singularize maps an English plural word to its singular form using the
// conservative rule table. Already-singular words are a fixed point:
// Singularize(Singularize(w)) == Singularize(w).
func Singularize(word string, extraInvariants map[string]bool) string {
	if word == "" {
		return word
	}
	lower := strings.ToLower(word)

	if invariantWords[lower] || extraInvariants[lower] {
		return word
	}
	for _, ending := range invariantEndings {
		if strings.HasSuffix(lower, ending) {
			return word
		}
	}

	for _, rule := range suffixRules {
		if len(lower) >= rule.minLen && strings.HasSuffix(lower, rule.suffix) {
			return word[:len(word)-rule.trim] + rule.replacement
		}
	}
	return word
}
