/* tags.go
 * Contains the logic for resolving a user supplied tag query against the tags actually present
 * in a user's solved set
 */

package logic

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// MatchTag resolves a tag query against the given tag names using fuzzy
// matching, so "binsearch" finds "binary search". An exact (case insensitive)
// match is preferred; otherwise the first fuzzy candidate wins.
// Preconditions: Receives the query string and the slice of known tag names
// Postconditions: Returns the matched tag in its original casing and true, or "" and false
// when nothing matches
func MatchTag(query string, tags []string) (string, bool) {
	if query == "" || len(tags) == 0 {
		return "", false
	}

	// Lowercase both sides for better matching, keeping a lookup back to the
	// original names
	lookup := make(map[string]string, len(tags))
	tagsLower := make([]string, 0, len(tags))
	for _, tag := range tags {
		lower := strings.ToLower(tag)
		lookup[lower] = tag
		tagsLower = append(tagsLower, lower)
	}

	lowerQuery := strings.ToLower(query)
	results := fuzzy.RankFind(lowerQuery, tagsLower)
	if len(results) == 0 {
		return "", false
	}

	for i := range results {
		if results[i].Target == lowerQuery {
			return lookup[results[i].Target], true
		}
	}
	return lookup[results[0].Target], true
}
