package searchserver

// ProcessQueries runs each query in queries against idx, fanned across a
// worker pool, and returns one result slice and one error per query in the
// same order the queries were given. Unlike the course project's
// ProcessQueries - where a malformed query's exception would unwind the
// whole batch - a parse failure here is reported only for that query; the
// rest of the batch still completes.
func ProcessQueries(idx *IndexStore, stopWords map[string]struct{}, queries []string) ([][]ScoredDocument, []error) {
	results := make([][]ScoredDocument, len(queries))
	errs := make([]error, len(queries))

	parallelFor(len(queries), DefaultWorkerCount, func(i int) {
		parsed, err := ParseQuery(queries[i], stopWords)
		if err != nil {
			errs[i] = err
			return
		}
		results[i] = idx.FindTopDocumentsParallel(parsed)
	})

	return results, errs
}

// ProcessQueriesJoined is ProcessQueries flattened into a single slice, in
// the same order queries were given, matching the course project's
// ProcessQueriesJoined (a flat view built from ProcessQueries's per-query
// vectors). Queries that failed to parse contribute no documents and no
// error entries, since the flattened shape has nowhere to carry them
// individually; call ProcessQueries directly if per-query errors matter.
func ProcessQueriesJoined(idx *IndexStore, stopWords map[string]struct{}, queries []string) []ScoredDocument {
	perQuery, _ := ProcessQueries(idx, stopWords, queries)

	total := 0
	for _, docs := range perQuery {
		total += len(docs)
	}
	joined := make([]ScoredDocument, 0, total)
	for _, docs := range perQuery {
		joined = append(joined, docs...)
	}
	return joined
}
