package searchserver

import "testing"

func TestRemoveDuplicates_KeepsEarliestID(t *testing.T) {
	idx := NewIndexStore(nil)
	must(t, idx.AddDocument(1, "funny pet and nasty rat", StatusActual, 1))
	must(t, idx.AddDocument(2, "funny pet with curly hair", StatusActual, 1))
	must(t, idx.AddDocument(3, "funny pet and not very nasty rat", StatusActual, 1))
	must(t, idx.AddDocument(4, "nasty rat and not very funny pet", StatusActual, 1))
	must(t, idx.AddDocument(5, "funny funny pet and nasty nasty rat", StatusActual, 1))
	must(t, idx.AddDocument(6, "pet with rat and rat with pet", StatusActual, 1))

	must(t, RemoveDuplicates(idx))

	if idx.Len() != 4 {
		t.Fatalf("Len() = %d after RemoveDuplicates, want 4", idx.Len())
	}
	if _, err := idx.GetDocumentID(0); err != nil {
		t.Fatalf("GetDocumentID(0) error = %v", err)
	}

	for _, survivor := range []int{1, 2, 3, 6} {
		if err := idx.RemoveDocument(survivor); err != nil {
			t.Fatalf("document %d should have survived deduplication: %v", survivor, err)
		}
	}
}

func TestWordSetSignature_IgnoresFrequency(t *testing.T) {
	a := wordSetSignature(map[string]float64{"cat": 0.5, "dog": 0.5})
	b := wordSetSignature(map[string]float64{"cat": 0.1, "dog": 0.9})
	if a != b {
		t.Fatalf("signatures differ despite identical word sets: %q vs %q", a, b)
	}
}
