package vector

import (
	"context"
	"fmt"

	"stock-backend/src/helpers"
	"stock-backend/src/interfaces"
	"stock-backend/src/models"
)

// IndexRetriever searches the locally loaded index.
type IndexRetriever struct {
	Holder   *IndexHolder
	Embedder interfaces.IEmbedder
}

func NewIndexRetriever(holder *IndexHolder, embedder interfaces.IEmbedder) *IndexRetriever {
	return &IndexRetriever{Holder: holder, Embedder: embedder}
}

// -----------------------------------------------------------------------------

func (r *IndexRetriever) Retrieve(ctx context.Context, query string, k int) ([]models.MSearchResult, error) {
	idx := r.Holder.Current()
	if idx == nil {
		return nil, helpers.ErrIndexNotLoaded
	}

	vec, err := r.Embedder.Embed(ctx, query)
	if err != nil {
		return nil, helpers.NewLLMError("embed query", err)
	}

	results, err := idx.Search(vec, k)
	if err != nil {
		return nil, helpers.NewIndexError(fmt.Sprintf("search index built with %s", idx.Model()), err)
	}
	return results, nil
}
