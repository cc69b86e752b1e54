package searchserver

import "testing"

func TestProcessQueries_PreservesOrderAndIsolatesErrors(t *testing.T) {
	idx := buildSampleIndex(t)
	queries := []string{"fluffy cat", "dog --bad", "groomed"}

	results, errs := ProcessQueries(idx, map[string]struct{}{"and": {}}, queries)

	if len(results) != 3 || len(errs) != 3 {
		t.Fatalf("got %d results and %d errors, want 3 each", len(results), len(errs))
	}
	if errs[0] != nil {
		t.Fatalf("query 0 error = %v, want nil", errs[0])
	}
	if !IsInvalidArgument(errs[1]) {
		t.Fatalf("query 1 error = %v, want InvalidArgument", errs[1])
	}
	if errs[2] != nil {
		t.Fatalf("query 2 error = %v, want nil", errs[2])
	}
	if len(results[0]) == 0 {
		t.Fatal("query 0 should have matched at least one document")
	}
}

func TestProcessQueriesJoined_FlattensInOrder(t *testing.T) {
	idx := buildSampleIndex(t)
	queries := []string{"fluffy", "groomed"}

	joined := ProcessQueriesJoined(idx, nil, queries)
	perQuery, _ := ProcessQueries(idx, nil, queries)

	var want []ScoredDocument
	for _, docs := range perQuery {
		want = append(want, docs...)
	}

	if len(joined) != len(want) {
		t.Fatalf("ProcessQueriesJoined() len = %d, want %d", len(joined), len(want))
	}
	for i := range want {
		if joined[i] != want[i] {
			t.Fatalf("ProcessQueriesJoined()[%d] = %v, want %v", i, joined[i], want[i])
		}
	}
}
