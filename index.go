package searchserver

import (
	"log/slog"
	"sync"

	"github.com/RoaringBitmap/roaring"
)

// IndexStore is the dual inverted/forward index at the heart of this
// engine: word -> docID -> term frequency, and docID -> word -> term
// frequency, kept in lockstep under a single mutex. Every live document id
// is also recorded in an ascending roaring bitmap, the same
// document-level bitmap role RoaringBitmap/roaring plays elsewhere in this
// engine's lineage, repurposed here to answer "what ids exist" instead of
// "what ids contain this token".
type IndexStore struct {
	mu sync.RWMutex

	wordToDocFreq map[string]map[int]float64
	docToWordFreq map[int]map[string]float64
	documents     map[int]*Document
	order         *roaring.Bitmap

	stopWords map[string]struct{}
}

// NewIndexStore creates an empty index. stopWords may be nil.
func NewIndexStore(stopWords map[string]struct{}) *IndexStore {
	if stopWords == nil {
		stopWords = make(map[string]struct{})
	}
	return &IndexStore{
		wordToDocFreq: make(map[string]map[int]float64),
		docToWordFreq: make(map[int]map[string]float64),
		documents:     make(map[int]*Document),
		order:         roaring.New(),
		stopWords:     stopWords,
	}
}

// Len returns the number of live (non-removed) documents in the index.
func (idx *IndexStore) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.documents)
}

// GetDocumentID returns the document id at the given zero-based ascending
// position in the index, matching the course project's GetDocumentId,
// which iterator-advances over an ordered set of ids rather than exposing
// a full list.
func (idx *IndexStore) GetDocumentID(position int) (int, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if position < 0 || position >= int(idx.order.GetCardinality()) {
		return 0, newInvalidArgument("GetDocumentID", "position %d out of range [0, %d)", position, idx.order.GetCardinality())
	}
	it := idx.order.Iterator()
	for i := 0; i < position; i++ {
		it.Next()
	}
	return int(it.Next()), nil
}

// AddDocument tokenizes text and inserts it into both indices under docID,
// with status and rating recorded for later retrieval. Re-adding an
// existing id is rejected, matching the course project's rejection of
// duplicate/negative ids.
func (idx *IndexStore) AddDocument(docID int, text string, status DocumentStatus, rating int) error {
	if docID < 0 {
		return newInvalidArgument("AddDocument", "document id %d is negative", docID)
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()

	if _, exists := idx.documents[docID]; exists {
		return newInvalidArgument("AddDocument", "document id %d already exists", docID)
	}

	words := SplitIntoWords(text)
	for _, w := range words {
		if hasControlByte(w) {
			return newInvalidArgument("AddDocument", "word %q contains a control character", w)
		}
	}

	freq := make(map[string]float64, len(words))
	for _, w := range words {
		if _, stop := idx.stopWords[w]; stop {
			continue
		}
		freq[w]++
	}
	total := 0.0
	for _, c := range freq {
		total += c
	}
	for w := range freq {
		freq[w] /= total
	}

	idx.documents[docID] = &Document{ID: docID, Text: text, Status: status, Rating: rating}
	idx.docToWordFreq[docID] = freq
	for w, tf := range freq {
		if idx.wordToDocFreq[w] == nil {
			idx.wordToDocFreq[w] = make(map[int]float64)
		}
		idx.wordToDocFreq[w][docID] = tf
	}
	idx.order.Add(uint32(docID))

	slog.Debug("indexed document", "docID", docID, "words", len(freq))
	return nil
}

// RemoveDocument deletes docID and every posting it owns, sequentially.
func (idx *IndexStore) RemoveDocument(docID int) error {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	return idx.removeDocumentLocked(docID)
}

func (idx *IndexStore) removeDocumentLocked(docID int) error {
	freq, exists := idx.docToWordFreq[docID]
	if !exists {
		return newNotFound("RemoveDocument", "document id %d not found", docID)
	}

	for w := range freq {
		delete(idx.wordToDocFreq[w], docID)
		if len(idx.wordToDocFreq[w]) == 0 {
			delete(idx.wordToDocFreq, w)
		}
	}
	delete(idx.docToWordFreq, docID)
	delete(idx.documents, docID)
	idx.order.Remove(uint32(docID))

	slog.Debug("removed document", "docID", docID)
	return nil
}

// RemoveDocumentParallel deletes docID the same way RemoveDocument does,
// but fans the per-word posting erasure across a worker pool. This is
// safe because the document's word list is read out once up front - the
// outer wordToDocFreq map is never structurally mutated by the fan-out,
// only individual inner maps are, and distinct words never share a lock
// since the write lock is already held for the whole call.
func (idx *IndexStore) RemoveDocumentParallel(docID int) error {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	freq, exists := idx.docToWordFreq[docID]
	if !exists {
		return newNotFound("RemoveDocumentParallel", "document id %d not found", docID)
	}

	words := make([]string, 0, len(freq))
	for w := range freq {
		words = append(words, w)
	}

	parallelFor(len(words), DefaultWorkerCount, func(i int) {
		w := words[i]
		delete(idx.wordToDocFreq[w], docID)
	})
	for _, w := range words {
		if len(idx.wordToDocFreq[w]) == 0 {
			delete(idx.wordToDocFreq, w)
		}
	}

	delete(idx.docToWordFreq, docID)
	delete(idx.documents, docID)
	idx.order.Remove(uint32(docID))

	slog.Debug("removed document (parallel)", "docID", docID)
	return nil
}

// documentRating returns the rating of docID, or 0 if it is absent. Used
// as the ratingOf callback handed to a shardedMap's Snapshot.
func (idx *IndexStore) documentRating(docID int) int {
	if d, ok := idx.documents[docID]; ok {
		return d.Rating
	}
	return 0
}

// idf computes the inverse document frequency of word across every
// document currently in the index: log(total docs / docs containing word).
func (idx *IndexStore) idf(word string) float64 {
	postings, ok := idx.wordToDocFreq[word]
	if !ok || len(postings) == 0 {
		return 0
	}
	return logE(float64(len(idx.documents)) / float64(len(postings)))
}

// MatchDocument returns the subset of query's plus-words present in docID,
// together with its status. If any minus-word is present, the word list
// is empty (the document does not match) but status is still returned, the
// same as the course project's MatchDocument.
func (idx *IndexStore) MatchDocument(query ParsedQuery, docID int) ([]string, DocumentStatus, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	doc, exists := idx.documents[docID]
	if !exists {
		return nil, 0, newNotFound("MatchDocument", "document id %d not found", docID)
	}

	freq := idx.docToWordFreq[docID]
	for minus := range query.MinusWords {
		if _, present := freq[minus]; present {
			return nil, doc.Status, nil
		}
	}

	matched := make([]string, 0, len(query.PlusWords))
	for plus := range query.PlusWords {
		if _, present := freq[plus]; present {
			matched = append(matched, plus)
		}
	}
	sortStrings(matched)
	return matched, doc.Status, nil
}

// MatchDocumentParallel is MatchDocument's parallel counterpart: it scans
// plus-words and minus-words concurrently, then re-sorts and dedupes the
// matched set for determinism, the same general shape as the course
// project's generic RemoveDuplicates applied after a parallel transform.
func (idx *IndexStore) MatchDocumentParallel(query ParsedQuery, docID int) ([]string, DocumentStatus, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	doc, exists := idx.documents[docID]
	if !exists {
		return nil, 0, newNotFound("MatchDocumentParallel", "document id %d not found", docID)
	}

	freq := idx.docToWordFreq[docID]

	minusWords := make([]string, 0, len(query.MinusWords))
	for w := range query.MinusWords {
		minusWords = append(minusWords, w)
	}
	excluded := make([]bool, len(minusWords))
	parallelFor(len(minusWords), DefaultWorkerCount, func(i int) {
		_, excluded[i] = freq[minusWords[i]]
	})
	for _, hit := range excluded {
		if hit {
			return nil, doc.Status, nil
		}
	}

	plusWords := make([]string, 0, len(query.PlusWords))
	for w := range query.PlusWords {
		plusWords = append(plusWords, w)
	}
	present := make([]bool, len(plusWords))
	parallelFor(len(plusWords), DefaultWorkerCount, func(i int) {
		_, present[i] = freq[plusWords[i]]
	})

	matched := make([]string, 0, len(plusWords))
	for i, w := range plusWords {
		if present[i] {
			matched = append(matched, w)
		}
	}
	matched = sortAndDedupeStrings(matched)
	return matched, doc.Status, nil
}
