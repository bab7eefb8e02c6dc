package vector

import (
	"context"
	"fmt"
	"strconv"

	"stock-backend/src/helpers"
	"stock-backend/src/interfaces"
	"stock-backend/src/models"

	"github.com/qdrant/go-client/qdrant"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// QdrantRetriever searches a remote Qdrant collection instead of the local index.
type QdrantRetriever struct {
	Points     qdrant.PointsClient
	Collection string
	Embedder   interfaces.IEmbedder
	conn       *grpc.ClientConn
}

// -----------------------------------------------------------------------------

func NewQdrantRetriever(address, collection string, embedder interfaces.IEmbedder) (*QdrantRetriever, error) {
	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, helpers.NewConfigurationError(fmt.Sprintf("qdrant connection %s", address), err)
	}
	return &QdrantRetriever{
		Points:     qdrant.NewPointsClient(conn),
		Collection: collection,
		Embedder:   embedder,
		conn:       conn,
	}, nil
}

// -----------------------------------------------------------------------------

func (r *QdrantRetriever) Retrieve(ctx context.Context, query string, k int) ([]models.MSearchResult, error) {
	vec, err := r.Embedder.Embed(ctx, query)
	if err != nil {
		return nil, helpers.NewLLMError("embed query", err)
	}

	resp, err := r.Points.Search(ctx, &qdrant.SearchPoints{
		CollectionName: r.Collection,
		Vector:         vec,
		Limit:          uint64(k),
		WithPayload: &qdrant.WithPayloadSelector{
			SelectorOptions: &qdrant.WithPayloadSelector_Include{
				Include: &qdrant.PayloadIncludeSelector{
					Fields: []string{"text", "source"},
				},
			},
		},
	})
	if err != nil {
		return nil, helpers.NewIndexError(fmt.Sprintf("qdrant search %s", r.Collection), err)
	}

	results := make([]models.MSearchResult, 0, len(resp.GetResult()))
	for _, point := range resp.GetResult() {
		var doc models.MDocument
		if v, ok := point.GetPayload()["text"]; ok {
			doc.Text = v.GetStringValue()
		}
		if v, ok := point.GetPayload()["source"]; ok {
			doc.Source = v.GetStringValue()
		}
		results = append(results, models.MSearchResult{
			ID:       pointID(point.GetId()),
			Score:    point.GetScore(),
			Document: doc,
		})
	}
	return results, nil
}

// -----------------------------------------------------------------------------

func pointID(id *qdrant.PointId) string {
	if u := id.GetUuid(); u != "" {
		return u
	}
	return strconv.FormatUint(id.GetNum(), 10)
}

// -----------------------------------------------------------------------------

func (r *QdrantRetriever) Close() error {
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
