package qdrantDB

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"sync"

	"github.com/akolanti/StudyRAG/internal/config"
	"github.com/akolanti/StudyRAG/internal/domain/commonModels"
	"github.com/akolanti/StudyRAG/internal/domain/ragErrors"
	"github.com/akolanti/StudyRAG/pkg/logger_i"
	"github.com/qdrant/go-client/qdrant"
)

var logger *logger_i.Logger
var quadrantInstance *qdrant.Client
var once sync.Once
var dimension = uint64(config.EmbeddingOutputDimensionality)
var collectionName = config.FragmentCollectionName

type ClientHolder struct {
	QObj *qdrant.Client
}

func GetQuadrantClient(ctx context.Context) *ClientHolder {

	once.Do(func() {
		logger = logger_i.NewLogger("Qdrant")
		res := newClient()
		if res != nil {
			quadrantInstance = res
			go closeQdrant(ctx, quadrantInstance)
		}
	})

	if quadrantInstance == nil {
		return nil
	}
	return &ClientHolder{
		QObj: quadrantInstance,
	}
}

func newClient() *qdrant.Client {

	host := os.Getenv("QDRANT_HOST")
	port, er := strconv.Atoi(os.Getenv("QDRANT_PORT"))

	if host == "" || er != nil {
		host = config.QdrantHost
		port = config.QdrantGrpcPort
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:     host,
		Port:     port,
		UseTLS:   config.QdrantUseTLS,
		PoolSize: uint(config.QdrantPoolSize),
	})
	if err != nil {
		logger.Error("could not instantiate: ", "error:", err)
	}

	err = createCollection(context.Background(), client, collectionName)
	if err != nil {
		logger.Error("could not create collection: ", "collectionName", collectionName, "error:", err)
		return nil
	}

	return client
}

func closeQdrant(ctx context.Context, qi *qdrant.Client) {
	<-ctx.Done()
	logger.Info("Shutting down Qdrant")
	err := qi.Close()
	if err != nil {
		logger.Error("could not close Qdrant: ", "error:", err)
	}
	logger.Info("Closed Qdrant")
}

func createCollection(ctx context.Context, client *qdrant.Client, collectionName string) error {
	if collectionName == "" {
		return errors.New("empty collection name")
	}

	exists, err := client.CollectionExists(ctx, collectionName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	err = client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     dimension,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	return err
}

// sessionFilter scopes every index operation. A missing session id is a
// programming error upstream - the filter is never optional.
func sessionFilter(sessionId string, sourceFilter string) *qdrant.Filter {
	must := []*qdrant.Condition{
		qdrant.NewMatch("session_id", sessionId),
	}
	if sourceFilter != "" && sourceFilter != "all" {
		must = append(must, qdrant.NewMatch("source", sourceFilter))
	}
	return &qdrant.Filter{Must: must}
}

func storageErr(err error) error {
	return fmt.Errorf("%w: %v", ragErrors.ErrStorageUnavailable, err)
}

func (db *ClientHolder) Add(ctx context.Context, sessionId string, fragments []commonModels.Fragment, vectors [][]float32) (int, error) {
	if len(fragments) != len(vectors) {
		return 0, fmt.Errorf("mismatch: got %d fragments but %d vectors", len(fragments), len(vectors))
	}

	qdrantPoints := make([]*qdrant.PointStruct, len(fragments))

	for i, fragment := range fragments {
		qdrantPoints[i] = &qdrant.PointStruct{
			Id:      qdrant.NewID(fragment.Id),
			Vectors: qdrant.NewVectors(vectors[i]...),

			Payload: qdrant.NewValueMap(map[string]any{
				"content":       fragment.Text,
				"session_id":    sessionId,
				"source":        fragment.Doc.Name,
				"type":          string(fragment.Doc.ContentType),
				"source_doc_id": fragment.Doc.Id,
				"page":          int64(fragment.Page),
				"total_pages":   int64(fragment.Doc.TotalPages),
				"chunk_order":   int64(fragment.PageOrder),
				"seq":           fragment.Seq,
				"ingested_at":   fragment.Doc.IngestedAt.Unix(),
			}),
		}
	}

	//Wait=true so a concurrent search never sees a half-written batch
	_, err := db.QObj.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: collectionName,
		Points:         qdrantPoints,
		Wait:           qdrant.PtrOf(true),
	})

	if err != nil {
		return 0, storageErr(err)
	}

	return len(fragments), nil
}

func (db *ClientHolder) Search(ctx context.Context, sessionId string, queryVector []float32, k int, sourceFilter string) ([]commonModels.Match, error) {
	loggr := logger.With("traceId", ctx.Value(config.TRACE_ID_KEY))

	result, err := db.QObj.Query(ctx, &qdrant.QueryPoints{
		CollectionName: collectionName,
		Query:          qdrant.NewQuery(queryVector...),
		Filter:         sessionFilter(sessionId, sourceFilter),
		Limit:          qdrant.PtrOf(uint64(k)),
		WithPayload:    qdrant.NewWithPayload(true),
	})

	if err != nil {
		loggr.Error("Error querying Qdrant: ", "error:", err)
		return nil, storageErr(err)
	}

	var matches []commonModels.Match
	for _, hit := range result {
		matches = append(matches, commonModels.Match{
			Score: hit.Score,
			Fragment: commonModels.Fragment{
				Text:      hit.Payload["content"].GetStringValue(),
				Page:      int(hit.Payload["page"].GetIntegerValue()),
				PageOrder: int(hit.Payload["chunk_order"].GetIntegerValue()),
				Seq:       hit.Payload["seq"].GetIntegerValue(),
				Doc: commonModels.Document{
					Id:          hit.Payload["source_doc_id"].GetStringValue(),
					Name:        hit.Payload["source"].GetStringValue(),
					SessionId:   sessionId,
					ContentType: commonModels.DocType(hit.Payload["type"].GetStringValue()),
					TotalPages:  int(hit.Payload["total_pages"].GetIntegerValue()),
				},
			},
		})
	}

	// qdrant orders by score but says nothing about equal scores - resolve
	// ties by insertion order so identical queries rank identically
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Fragment.Seq < matches[j].Fragment.Seq
	})

	loggr.Debug("Search done", "session", sessionId, "hits", len(matches))
	return matches, nil
}

func (db *ClientHolder) DeleteSession(ctx context.Context, sessionId string) (int, error) {
	loggr := logger.With("traceId", ctx.Value(config.TRACE_ID_KEY))

	filter := sessionFilter(sessionId, "")

	// the delete API doesn't report how many points went away, so count first
	count, err := db.QObj.Count(ctx, &qdrant.CountPoints{
		CollectionName: collectionName,
		Filter:         filter,
		Exact:          qdrant.PtrOf(true),
	})
	if err != nil {
		return 0, storageErr(err)
	}
	if count == 0 {
		return 0, nil
	}

	_, err = db.QObj.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: collectionName,
		Points:         qdrant.NewPointsSelectorFilter(filter),
		Wait:           qdrant.PtrOf(true),
	})
	if err != nil {
		loggr.Error("Error deleting session fragments", "error:", err)
		return 0, storageErr(err)
	}

	loggr.Info("Deleted session fragments", "session", sessionId, "count", count)
	return int(count), nil
}

func (db *ClientHolder) ListSources(ctx context.Context, sessionId string) ([]string, error) {
	// a session holds at most a handful of documents, so one generous scroll
	// page covers it
	points, err := db.QObj.Scroll(ctx, &qdrant.ScrollPoints{
		CollectionName: collectionName,
		Filter:         sessionFilter(sessionId, ""),
		Limit:          qdrant.PtrOf(uint32(4096)),
		WithPayload:    qdrant.NewWithPayloadInclude("source"),
	})
	if err != nil {
		return nil, storageErr(err)
	}

	seen := make(map[string]bool)
	var sources []string
	for _, p := range points {
		source := p.Payload["source"].GetStringValue()
		if source == "" || seen[source] {
			continue
		}
		seen[source] = true
		sources = append(sources, source)
	}
	return sources, nil
}
