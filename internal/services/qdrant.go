package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
	"go.uber.org/zap"
)

// EmbeddingCache stores section embeddings keyed by EmbeddingCacheKey.
type EmbeddingCache interface {
	InitCollection(ctx context.Context) error
	Lookup(ctx context.Context, keys []string) (map[string][]float32, error)
	Store(ctx context.Context, entries []CacheEntry) error
}

type CacheEntry struct {
	Key    string
	Model  string
	Text   string
	Vector []float32
}

// EmbeddingCacheKey derives a stable point ID from the model and the exact text.
func EmbeddingCacheKey(model, text string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(model+"\x00"+text)).String()
}

type qdrantCache struct {
	client         *qdrant.Client
	collectionName string
	vectorSize     uint64
	log            *zap.Logger
}

func NewQdrantCache(urlStr, apiKey, collectionName string, vectorSize uint64, log *zap.Logger) (EmbeddingCache, error) {
	// Parse URL to extract host, port, and TLS usage
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsed.Hostname()
	useTLS := parsed.Scheme == "https"

	// gRPC port
	port := 6334
	if p := parsed.Port(); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
		UseTLS: useTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	if log == nil {
		log = zap.NewNop()
	}

	return &qdrantCache{
		client:         client,
		collectionName: collectionName,
		vectorSize:     vectorSize,
		log:            log,
	}, nil
}

func (q *qdrantCache) InitCollection(ctx context.Context) error {
	exists, err := q.client.CollectionExists(ctx, q.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}

	if exists {
		q.log.Info("✅ Collection already exists", zap.String("collection", q.collectionName))
		return nil
	}

	err = q.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: q.collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     q.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	q.log.Info("✅ Qdrant collection created", zap.String("collection", q.collectionName))
	return nil
}

func (q *qdrantCache) Lookup(ctx context.Context, keys []string) (map[string][]float32, error) {
	found := make(map[string][]float32, len(keys))
	if len(keys) == 0 {
		return found, nil
	}

	ids := make([]*qdrant.PointId, 0, len(keys))
	for _, key := range keys {
		ids = append(ids, qdrant.NewIDUUID(key))
	}

	points, err := q.client.Get(ctx, &qdrant.GetPoints{
		CollectionName: q.collectionName,
		Ids:            ids,
		WithVectors:    qdrant.NewWithVectors(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get points: %w", err)
	}

	for _, point := range points {
		key := point.GetId().GetUuid()
		vector := point.GetVectors().GetVector().GetData()
		if key == "" || len(vector) == 0 {
			continue
		}
		found[key] = vector
	}

	return found, nil
}

func (q *qdrantCache) Store(ctx context.Context, entries []CacheEntry) error {
	if len(entries) == 0 {
		return nil
	}

	points := make([]*qdrant.PointStruct, 0, len(entries))
	for _, entry := range entries {
		points = append(points, &qdrant.PointStruct{
			Id:      qdrant.NewIDUUID(entry.Key),
			Vectors: qdrant.NewVectors(entry.Vector...),
			Payload: qdrant.NewValueMap(map[string]any{
				"model": entry.Model,
				"text":  entry.Text,
			}),
		})
	}

	_, err := q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: q.collectionName,
		Points:         points,
	})
	if err != nil {
		return fmt.Errorf("failed to upsert points: %w", err)
	}

	return nil
}
