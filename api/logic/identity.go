/* identity.go
 * Contains the logic for resolving a stable identity key for a problem so repeated accepted
 * submissions to the same problem collapse to a single solve
 */

package logic

import (
	"fmt"

	"cf-faceoff/api/shared"
)

// gymContestThreshold is the contest id above which a contest is a gym or
// practice upload rather than a rated round
const gymContestThreshold = 10000

// ProblemKey produces a stable string key for a problem using an ordered
// fallback chain, first matching rule wins:
//  1. contest id and index          -> "{contestId}-{index}"
//  2. gym contest (id > 10000)      -> "{contestId}-{index or name}"
//  3. contest id only               -> "{contestId}-{name or index or unknown}"
//  4. index only                    -> "{index}-{name or unknown}"
//  5. name only                     -> "{name}-{rating or 0}"
//  6. anything else                 -> "{contestId}-{index}-{name}-{rating}" with unknown/0 placeholders
//
// The function is total: missing fields degrade to placeholders rather than
// failing, and the result is never empty. Two genuinely different problems
// that share the fallback fields can alias; that approximation is accepted.
// Preconditions: Receives a Problem with possibly missing contest id, index, name and rating
// Postconditions: Returns a non empty identity key, stable across repeated calls
func ProblemKey(p shared.Problem) string {
	switch {
	case p.ContestId != 0 && p.Index != "":
		return fmt.Sprintf("%d-%s", p.ContestId, p.Index)
	case p.ContestId > gymContestThreshold:
		return fmt.Sprintf("%d-%s", p.ContestId, firstNonEmpty(p.Index, p.Name))
	case p.ContestId != 0:
		return fmt.Sprintf("%d-%s", p.ContestId, firstNonEmpty(p.Name, p.Index, "unknown"))
	case p.Index != "":
		return fmt.Sprintf("%s-%s", p.Index, firstNonEmpty(p.Name, "unknown"))
	case p.Name != "":
		return fmt.Sprintf("%s-%d", p.Name, p.Rating)
	default:
		// contest id is always absent by this point, the earlier rules catch
		// every case where it is set
		return fmt.Sprintf("unknown-%s-%s-%d",
			orUnknown(p.Index), orUnknown(p.Name), p.Rating)
	}
}

// firstNonEmpty returns the first non empty string from its arguments, or ""
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// orUnknown substitutes "unknown" for an empty string
func orUnknown(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
