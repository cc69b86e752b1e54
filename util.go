package searchserver

import (
	"math"
	"sort"
)

// logE is the natural logarithm used by idf. Plain math.Log: there is no
// third-party numerics dependency anywhere in this codebase's lineage, and
// a single-call wrapper around the standard library's log isn't something
// any ecosystem package would be reached for instead.
func logE(x float64) float64 {
	return math.Log(x)
}

// sortStrings sorts words in place, ascending. No package in this
// codebase's lineage ships a string-sort helper; sort.Strings is the
// idiomatic stdlib call for exactly this.
func sortStrings(words []string) {
	sort.Strings(words)
}

// sortAndDedupeStrings sorts words ascending and removes adjacent
// duplicates, mirroring the course project's generic RemoveDuplicates
// helper (sort, then erase adjacent equal elements).
func sortAndDedupeStrings(words []string) []string {
	sort.Strings(words)
	out := words[:0]
	for i, w := range words {
		if i == 0 || w != out[len(out)-1] {
			out = append(out, w)
		}
	}
	return out
}
