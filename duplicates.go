package searchserver

import (
	"fmt"
	"sort"
)

// RemoveDuplicates scans idx in ascending document-id order and removes
// every document whose word set exactly matches one already kept, the
// same word-set-equality rule the course project's RemoveDuplicates
// applies via ExtractKeys + set<set<string_view>>. The earliest id with a
// given word set is kept; every later one is removed and reported with a
// line printed to stdout in the course project's exact wording.
func RemoveDuplicates(idx *IndexStore) error {
	idx.mu.RLock()
	ids := make([]int, 0, len(idx.documents))
	for id := range idx.documents {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	signatures := make(map[string]struct{}, len(ids))
	var toRemove []int
	for _, id := range ids {
		sig := wordSetSignature(idx.docToWordFreq[id])
		if _, seen := signatures[sig]; seen {
			toRemove = append(toRemove, id)
			continue
		}
		signatures[sig] = struct{}{}
	}
	idx.mu.RUnlock()

	for _, id := range toRemove {
		if err := idx.RemoveDocument(id); err != nil {
			return err
		}
		fmt.Printf("Found duplicate document id %d\n", id)
	}
	return nil
}

// wordSetSignature builds a canonical string identifying a document's
// distinct word set, independent of term frequency - two documents with
// the same words but different repeat counts are duplicates for this
// purpose, exactly as ExtractKeys (which reads only map keys) treats them.
func wordSetSignature(freq map[string]float64) string {
	words := make([]string, 0, len(freq))
	for w := range freq {
		words = append(words, w)
	}
	sort.Strings(words)

	var sig string
	for _, w := range words {
		sig += w + "\x00"
	}
	return sig
}
