package curriculum

import "strings"

// Normalize canonicalizes a topic name for comparison: lowercase, strip
// everything but letters, digits and spaces, collapse runs of whitespace.
func Normalize(topic string) string {
	lower := strings.ToLower(topic)

	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '\t', r == '\n':
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// synonymGroups lists topic names that should be treated as equivalent even
// though their normalized forms differ. Grouped data, not logic: extend by
// adding a row.
var synonymGroups = [][]string{
	{"ppe", "property plant equipment", "property plant and equipment", "fixed assets"},
	{"gaap", "generally accepted accounting principles"},
	{"ar", "accounts receivable", "receivables"},
	{"nfp", "not for profit", "not for profit accounting", "nonprofit accounting"},
	{"stockholders equity", "shareholders equity", "owners equity"},
	{"cash flow statement", "statement of cash flows"},
	{"deferred taxes", "income taxes", "income tax accounting"},
	{"internal control", "internal controls"},
	{"circular 230", "tax ethics"},
}

// synonymIndex maps each normalized synonym to its group index.
var synonymIndex = buildSynonymIndex()

func buildSynonymIndex() map[string]int {
	idx := make(map[string]int)
	for group, names := range synonymGroups {
		for _, name := range names {
			idx[Normalize(name)] = group
		}
	}
	return idx
}

// TopicsMatch reports whether two topic names refer to the same topic:
// equal after normalization, one a substring of the other, or both members
// of the same synonym group.
//
// Because every string contains the empty string, an empty input matches
// anything. Untagged items inherit this permissive behavior on purpose;
// callers that need strictness must filter empties first.
func TopicsMatch(a, b string) bool {
	na, nb := Normalize(a), Normalize(b)

	if na == nb {
		return true
	}
	if strings.Contains(na, nb) || strings.Contains(nb, na) {
		return true
	}

	ga, okA := synonymIndex[na]
	gb, okB := synonymIndex[nb]
	return okA && okB && ga == gb
}

// MatchesAny reports whether topic matches any entry in the set.
func MatchesAny(topic string, set map[string]bool) bool {
	for candidate := range set {
		if TopicsMatch(topic, candidate) {
			return true
		}
	}
	return false
}
