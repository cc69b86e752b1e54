package searchserver

import (
	"math/rand"
	"sort"
	"sync"
)

// defaultBucketCount is the fixed shard count used unless a caller asks
// for a different one; matches the course project's ConcurrentMap<Key,
// Value, bucket_count>, which hard-codes bucket_count at the call site
// rather than choosing it at runtime.
const defaultBucketCount = 16

type shardedMapBucket struct {
	mu   sync.Mutex
	data *orderedMap
}

// shardedMap is a fixed-size sharded int -> float64 accumulator map. Each
// bucket holds an independent mutex and its own ordered map, so unrelated
// document ids almost never contend with each other even under heavy
// concurrent ranking.
type shardedMap struct {
	buckets []*shardedMapBucket
}

func newShardedMap(bucketCount int) *shardedMap {
	if bucketCount <= 0 {
		bucketCount = defaultBucketCount
	}
	m := &shardedMap{buckets: make([]*shardedMapBucket, bucketCount)}
	for i := range m.buckets {
		m.buckets[i] = &shardedMapBucket{
			data: newOrderedMap(rand.New(rand.NewSource(int64(i) + 1))),
		}
	}
	return m
}

func (m *shardedMap) bucketFor(key int) *shardedMapBucket {
	n := len(m.buckets)
	idx := key % n
	if idx < 0 {
		idx += n
	}
	return m.buckets[idx]
}

// mapAccess is a scoped, locked handle onto one key's slot in the map. Go
// has no destructors, so unlike the course project's Access (a lock_guard
// that releases on scope exit), callers here must call Release explicitly
// - typically via defer immediately after Access returns.
type mapAccess struct {
	bucket *shardedMapBucket
	key    int
}

// Add adds delta to the value stored at this access's key.
func (a *mapAccess) Add(delta float64) {
	a.bucket.data.add(a.key, delta)
}

// Value returns the current value stored at this access's key.
func (a *mapAccess) Value() float64 {
	v, _ := a.bucket.data.get(a.key)
	return v
}

// Release unlocks the bucket this access was holding. Safe to call via
// defer right after Access.
func (a *mapAccess) Release() {
	a.bucket.mu.Unlock()
}

// Access locks the bucket owning key and returns a handle into it. The
// caller must call Release on the returned handle once done.
func (m *shardedMap) Access(key int) *mapAccess {
	b := m.bucketFor(key)
	b.mu.Lock()
	return &mapAccess{bucket: b, key: key}
}

// Erase removes key from the map, locking only the bucket that owns it.
func (m *shardedMap) Erase(key int) {
	b := m.bucketFor(key)
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data.delete(key)
}

// Snapshot merges every bucket into a single ascending-by-id slice of
// scored documents, pairing each accumulated relevance with the document's
// rating via ratingOf. Every key present in the map is kept, including one
// whose accumulated relevance is exactly 0 - the original's
// document_to_relevance applies no positivity filter either.
func (m *shardedMap) Snapshot(ratingOf func(docID int) int) []ScoredDocument {
	var out []ScoredDocument
	for _, b := range m.buckets {
		b.mu.Lock()
		b.data.forEach(func(docID int, relevance float64) {
			out = append(out, ScoredDocument{ID: docID, Relevance: relevance, Rating: ratingOf(docID)})
		})
		b.mu.Unlock()
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
