// Package recommend holds the recommendation engine and its data
// sources: a static product similarity table and the per-user purchase
// history store.
package recommend

// SimilarityTable maps a product id to an ordered list of related
// product ids. The data is fixed at startup; a real model artifact
// would be loaded here instead.
type SimilarityTable struct {
	entries map[int64][]int64
}

// NewSimilarityTable copies the given entries into a table.
func NewSimilarityTable(entries map[int64][]int64) *SimilarityTable {
	m := make(map[int64][]int64, len(entries))
	for id, similar := range entries {
		m[id] = append([]int64(nil), similar...)
	}
	return &SimilarityTable{entries: m}
}

// DefaultSimilarityTable returns the table the service ships with.
func DefaultSimilarityTable() *SimilarityTable {
	return NewSimilarityTable(map[int64][]int64{
		1: {2, 3, 5},
		2: {1, 4, 6},
		3: {1, 5, 7},
		4: {2, 6, 8},
		5: {1, 3, 7},
	})
}

// SimilarIDs returns the candidate ids for a product, most similar
// first. Unknown products yield an empty slice.
func (t *SimilarityTable) SimilarIDs(productID int64) []int64 {
	similar, ok := t.entries[productID]
	if !ok {
		return nil
	}
	return append([]int64(nil), similar...)
}
