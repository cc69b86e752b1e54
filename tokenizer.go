package searchserver

import "strings"

// SplitIntoWords splits text on literal spaces, the same way the course
// project's SplitIntoWords does: no Unicode-aware whitespace handling, no
// lowercasing, no stemming. Those are all deliberately left out of this
// tokenizer; language-aware normalization changes word identity, which this
// index never does.
func SplitIntoWords(text string) []string {
	fields := strings.Split(text, " ")
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != "" {
			words = append(words, f)
		}
	}
	return words
}

// hasControlByte reports whether s contains any byte in the 0x00-0x1F
// range, which invalidates a query word regardless of where it occurs.
func hasControlByte(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] <= 0x1F {
			return true
		}
	}
	return false
}
