package vector

import (
	"fmt"
	"math"
	"sort"

	"stock-backend/src/models"
)

// FlatIndex is an immutable exact-search index over unit-normalised vectors.
// It is built once and then only read, so it is safe for concurrent use.
type FlatIndex struct {
	model     string
	dimension int
	ids       []string
	vectors   [][]float32
	docs      map[string]models.MDocument
}

// -----------------------------------------------------------------------------

// NewFlatIndex validates rows against the docstore and normalises vectors.
func NewFlatIndex(store models.MDocStore, rows []VectorRecord) (*FlatIndex, error) {
	if store.Dimension <= 0 {
		return nil, fmt.Errorf("invalid dimension %d", store.Dimension)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("index has no vectors")
	}

	idx := &FlatIndex{
		model:     store.EmbeddingModel,
		dimension: store.Dimension,
		ids:       make([]string, 0, len(rows)),
		vectors:   make([][]float32, 0, len(rows)),
		docs:      make(map[string]models.MDocument, len(store.Documents)),
	}
	for id, doc := range store.Documents {
		idx.docs[id] = doc
	}

	for i, row := range rows {
		if len(row.Vector) != store.Dimension {
			return nil, fmt.Errorf("row %d (%s): dimension %d, want %d", i, row.ID, len(row.Vector), store.Dimension)
		}
		if _, ok := idx.docs[row.ID]; !ok {
			return nil, fmt.Errorf("row %d: id %q missing from docstore", i, row.ID)
		}
		idx.ids = append(idx.ids, row.ID)
		idx.vectors = append(idx.vectors, normalize(row.Vector))
	}

	return idx, nil
}

// -----------------------------------------------------------------------------

func normalize(v []float32) []float32 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	out := make([]float32, len(v))
	if sum == 0 {
		return out
	}
	norm := math.Sqrt(sum)
	for i, x := range v {
		out[i] = float32(float64(x) / norm)
	}
	return out
}

// -----------------------------------------------------------------------------

func (f *FlatIndex) Model() string { return f.model }
func (f *FlatIndex) Dimension() int { return f.dimension }
func (f *FlatIndex) Size() int { return len(f.ids) }

// -----------------------------------------------------------------------------

// Search returns up to k documents ranked by cosine similarity to query.
// Ties keep index order.
func (f *FlatIndex) Search(query []float32, k int) ([]models.MSearchResult, error) {
	if len(query) != f.dimension {
		return nil, fmt.Errorf("query dimension %d, index dimension %d", len(query), f.dimension)
	}
	if k <= 0 {
		return nil, nil
	}

	q := normalize(query)
	type scored struct {
		pos   int
		score float32
	}
	hits := make([]scored, len(f.vectors))
	for i, v := range f.vectors {
		var dot float32
		for j := range v {
			dot += v[j] * q[j]
		}
		hits[i] = scored{pos: i, score: dot}
	}

	sort.SliceStable(hits, func(a, b int) bool { return hits[a].score > hits[b].score })

	if k > len(hits) {
		k = len(hits)
	}
	results := make([]models.MSearchResult, 0, k)
	for _, h := range hits[:k] {
		id := f.ids[h.pos]
		results = append(results, models.MSearchResult{ID: id, Score: h.score, Document: f.docs[id]})
	}
	return results, nil
}
