package searchserver

import (
	"sync"
	"testing"
)

func TestShardedMap_AccessAddRelease(t *testing.T) {
	m := newShardedMap(defaultBucketCount)
	a := m.Access(7)
	a.Add(1.5)
	a.Release()

	a = m.Access(7)
	defer a.Release()
	if v := a.Value(); v != 1.5 {
		t.Fatalf("Value() = %v, want 1.5", v)
	}
}

func TestShardedMap_ConcurrentAddIsRaceFree(t *testing.T) {
	m := newShardedMap(defaultBucketCount)
	var wg sync.WaitGroup
	for w := 0; w < 50; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a := m.Access(42)
			a.Add(1)
			a.Release()
		}()
	}
	wg.Wait()

	a := m.Access(42)
	defer a.Release()
	if v := a.Value(); v != 50 {
		t.Fatalf("Value() = %v, want 50", v)
	}
}

func TestShardedMap_Erase(t *testing.T) {
	m := newShardedMap(defaultBucketCount)
	a := m.Access(3)
	a.Add(9)
	a.Release()

	m.Erase(3)

	a = m.Access(3)
	defer a.Release()
	if v := a.Value(); v != 0 {
		t.Fatalf("Value() after Erase = %v, want 0", v)
	}
}

func TestShardedMap_SnapshotKeepsZeroRelevance(t *testing.T) {
	m := newShardedMap(defaultBucketCount)
	a := m.Access(1)
	a.Add(1.0)
	a.Release()
	a = m.Access(2)
	a.Add(0)
	a.Release()

	ratingOf := func(docID int) int { return docID * 10 }
	docs := m.Snapshot(ratingOf)

	if len(docs) != 2 {
		t.Fatalf("Snapshot() = %v, want entries for ids 1 and 2", docs)
	}
	byID := make(map[int]ScoredDocument, len(docs))
	for _, d := range docs {
		byID[d.ID] = d
	}
	if d := byID[1]; d.Relevance != 1.0 || d.Rating != 10 {
		t.Fatalf("Snapshot() id 1 = %v, want relevance 1.0, rating 10", d)
	}
	if d := byID[2]; d.Relevance != 0 || d.Rating != 20 {
		t.Fatalf("Snapshot() id 2 = %v, want relevance 0, rating 20", d)
	}
}
