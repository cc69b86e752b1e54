package searchserver

import "math/rand"

// ═══════════════════════════════════════════════════════════════════════════════
// ORDERED MAP: A Skip List Keyed by Document ID
// ═══════════════════════════════════════════════════════════════════════════════
// Each bucket of a shardedMap needs an ORDERED int -> float64 mapping, not
// just any map - Snapshot() has to walk every bucket and merge them while
// preserving ascending document-id order. A skip list gives that ordering
// for free (level 0 is already sorted) at O(log n) average insert/find/
// delete, the same tradeoff a balanced tree gives without the rotations.
//
// This is the same skip list shape used elsewhere in this style of engine
// for phrase/position search, narrowed down to the one thing this index
// actually needs: tracking a relevance accumulator per document id.
// ═══════════════════════════════════════════════════════════════════════════════

const maxHeight = 32

type orderedMapNode struct {
	key   int
	value float64
	tower [maxHeight]*orderedMapNode
}

// orderedMap is an ordered int -> float64 map backed by a skip list.
type orderedMap struct {
	head   *orderedMapNode
	height int
	size   int
	rng    *rand.Rand
}

func newOrderedMap(rng *rand.Rand) *orderedMap {
	return &orderedMap{
		head:   &orderedMapNode{},
		height: 1,
		rng:    rng,
	}
}

func (m *orderedMap) search(key int) (*orderedMapNode, [maxHeight]*orderedMapNode) {
	var journey [maxHeight]*orderedMapNode
	current := m.head

	for level := m.height - 1; level >= 0; level-- {
		for current.tower[level] != nil && current.tower[level].key < key {
			current = current.tower[level]
		}
		journey[level] = current
	}

	next := current.tower[0]
	if next != nil && next.key == key {
		return next, journey
	}
	return nil, journey
}

// get returns the value at key and whether it was present.
func (m *orderedMap) get(key int) (float64, bool) {
	found, _ := m.search(key)
	if found == nil {
		return 0, false
	}
	return found.value, true
}

// add inserts value at key, or adds it to the existing value at key.
// This is the accumulator's one mutating primitive: ranking never
// overwrites a document's running relevance, it only adds to it.
func (m *orderedMap) add(key int, delta float64) {
	found, journey := m.search(key)
	if found != nil {
		found.value += delta
		return
	}

	height := m.randomHeight()
	node := &orderedMapNode{key: key, value: delta}
	for level := 0; level < height; level++ {
		predecessor := journey[level]
		if predecessor == nil {
			predecessor = m.head
		}
		node.tower[level] = predecessor.tower[level]
		predecessor.tower[level] = node
	}
	if height > m.height {
		m.height = height
	}
	m.size++
}

// delete removes key if present, reporting whether it was found.
func (m *orderedMap) delete(key int) bool {
	found, journey := m.search(key)
	if found == nil {
		return false
	}
	for level := 0; level < m.height; level++ {
		if journey[level].tower[level] != found {
			break
		}
		journey[level].tower[level] = found.tower[level]
	}
	for m.height > 1 && m.head.tower[m.height-1] == nil {
		m.height--
	}
	m.size--
	return true
}

// forEach walks the map in ascending key order.
func (m *orderedMap) forEach(fn func(key int, value float64)) {
	for node := m.head.tower[0]; node != nil; node = node.tower[0] {
		fn(node.key, node.value)
	}
}

func (m *orderedMap) randomHeight() int {
	height := 1
	for m.rng.Float64() < 0.5 && height < maxHeight {
		height++
	}
	return height
}
