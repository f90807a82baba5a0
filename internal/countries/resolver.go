// Package countries resolves free-text queries to canonical country names.
package countries

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// knownPhrases are stripped from queries before the remainder is treated as a
// country name. Removal is cumulative and order-sensitive: earlier phrases are
// removed first, so a later phrase may no longer match once its words have
// been partially consumed.
var knownPhrases = []string{
	"give me",
	"show me",
	"get",
	"details for",
	"information about",
	"currency and stock market details for",
	"financial information for",
}

var titleCaser = cases.Title(language.English)

// Resolve extracts a country name from a free-text query by stripping known
// phrases and title-casing whatever remains. It returns the empty string when
// nothing remains; callers must treat that as an unresolvable query and skip
// all downstream lookups.
func Resolve(input string) string {
	s := strings.ToLower(input)
	for _, phrase := range knownPhrases {
		s = strings.ReplaceAll(s, phrase, "")
	}

	s = strings.TrimSpace(s)
	s = strings.Trim(s, "?.!,")
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	return titleCaser.String(s)
}
