package searchserver

import "sort"

// MaxResults is the fixed top-K truncation applied to every ranked result
// set.
const MaxResults = 5

// relevanceEpsilon is the tolerance used when comparing two relevance
// scores for the purposes of tie-breaking: scores within this distance of
// each other are treated as equal and the tie is broken by rating, then by
// ascending document id.
const relevanceEpsilon = 1e-6

// DocumentPredicate decides whether a document qualifies for ranking. It
// is handed the document's id, status, and rating so callers can filter on
// any combination of them, the same three arguments the original
// FindTopDocuments(predicate) overload takes.
type DocumentPredicate func(id int, status DocumentStatus, rating int) bool

// ActualOnly is the predicate used by FindTopDocuments/FindTopDocumentsParallel:
// it admits only documents whose status is ACTUAL, ignoring rating.
func ActualOnly(_ int, status DocumentStatus, _ int) bool {
	return status == StatusActual
}

// FindTopDocumentsBy ranks every document accepted by predicate against
// query, sequentially, and returns at most MaxResults of them ordered by
// descending relevance, then descending rating, then ascending id. Every
// document that matches at least one plus-word is kept, including one
// whose accumulated relevance is exactly 0 - which happens whenever every
// matching plus-word has idf = 0 because it appears in every document.
// The original neither skips zero-idf words nor filters non-positive
// relevance out of its document_to_relevance map, so this doesn't either.
func (idx *IndexStore) FindTopDocumentsBy(predicate DocumentPredicate, query ParsedQuery) []ScoredDocument {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	idfByWord := make(map[string]float64, len(query.PlusWords))
	for w := range query.PlusWords {
		idfByWord[w] = idx.idf(w)
	}

	scores := make(map[int]float64)
	matched := make(map[int]struct{})
	for w := range query.PlusWords {
		wordIDF := idfByWord[w]
		for docID, tf := range idx.wordToDocFreq[w] {
			doc := idx.documents[docID]
			if !predicate(docID, doc.Status, doc.Rating) {
				continue
			}
			scores[docID] += tf * wordIDF
			matched[docID] = struct{}{}
		}
	}
	for w := range query.MinusWords {
		for docID := range idx.wordToDocFreq[w] {
			delete(scores, docID)
			delete(matched, docID)
		}
	}

	results := make([]ScoredDocument, 0, len(matched))
	for docID := range matched {
		results = append(results, ScoredDocument{
			ID:        docID,
			Relevance: scores[docID],
			Rating:    idx.documents[docID].Rating,
		})
	}

	sortScoredDocuments(results)
	return truncate(results, MaxResults)
}

// FindTopDocuments ranks every ACTUAL document against query, sequentially.
// It is a thin wrapper over FindTopDocumentsBy(ActualOnly, query).
func (idx *IndexStore) FindTopDocuments(query ParsedQuery) []ScoredDocument {
	return idx.FindTopDocumentsBy(ActualOnly, query)
}

// FindTopDocumentsByParallel is FindTopDocumentsBy's parallel counterpart.
// It fans plus-word accumulation across a shardedMap so distinct words
// rarely contend, then performs every minus-word erasure only after all
// plus-word contributions have landed - the same barrier the course
// project's ConcurrentMap-based FindAllDocuments relies on to keep a
// minus-word erasure from racing an in-flight plus-word increment for the
// same id.
func (idx *IndexStore) FindTopDocumentsByParallel(predicate DocumentPredicate, query ParsedQuery) []ScoredDocument {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	plusWords := make([]string, 0, len(query.PlusWords))
	for w := range query.PlusWords {
		plusWords = append(plusWords, w)
	}

	acc := newShardedMap(defaultBucketCount)

	parallelFor(len(plusWords), DefaultWorkerCount, func(i int) {
		w := plusWords[i]
		wordIDF := idx.idf(w)
		for docID, tf := range idx.wordToDocFreq[w] {
			doc := idx.documents[docID]
			if !predicate(docID, doc.Status, doc.Rating) {
				continue
			}
			a := acc.Access(docID)
			a.Add(tf * wordIDF)
			a.Release()
		}
	})

	minusWords := make([]string, 0, len(query.MinusWords))
	for w := range query.MinusWords {
		minusWords = append(minusWords, w)
	}
	parallelFor(len(minusWords), DefaultWorkerCount, func(i int) {
		w := minusWords[i]
		for docID := range idx.wordToDocFreq[w] {
			acc.Erase(docID)
		}
	})

	results := acc.Snapshot(idx.documentRating)
	sortScoredDocuments(results)
	return truncate(results, MaxResults)
}

// FindTopDocumentsParallel ranks every ACTUAL document against query, in
// parallel. It is a thin wrapper over
// FindTopDocumentsByParallel(ActualOnly, query).
func (idx *IndexStore) FindTopDocumentsParallel(query ParsedQuery) []ScoredDocument {
	return idx.FindTopDocumentsByParallel(ActualOnly, query)
}

// sortScoredDocuments sorts in place by descending relevance (epsilon
// tolerant), then descending rating, then ascending id. The id tie-break
// is what lets the parallel path's output be compared directly against
// the sequential path's: without it, two documents with equal relevance
// and equal rating would have an implementation-defined relative order.
func sortScoredDocuments(docs []ScoredDocument) {
	sort.SliceStable(docs, func(i, j int) bool {
		a, b := docs[i], docs[j]
		diff := a.Relevance - b.Relevance
		if diff > relevanceEpsilon {
			return true
		}
		if diff < -relevanceEpsilon {
			return false
		}
		if a.Rating != b.Rating {
			return a.Rating > b.Rating
		}
		return a.ID < b.ID
	})
}

func truncate(docs []ScoredDocument, n int) []ScoredDocument {
	if len(docs) > n {
		return docs[:n]
	}
	return docs
}
