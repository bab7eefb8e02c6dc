package vector

import "sync/atomic"

// IndexHolder publishes the active index. Readers take one snapshot per query
// and keep using it even if a reload swaps in a new index meanwhile.
type IndexHolder struct {
	current atomic.Pointer[FlatIndex]
}

func NewIndexHolder() *IndexHolder {
	return &IndexHolder{}
}

// Current returns the active index or nil.
func (h *IndexHolder) Current() *FlatIndex {
	return h.current.Load()
}

// Swap installs idx and returns the previous index.
func (h *IndexHolder) Swap(idx *FlatIndex) *FlatIndex {
	return h.current.Swap(idx)
}

func (h *IndexHolder) Loaded() bool {
	return h.current.Load() != nil
}
