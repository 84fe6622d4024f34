package retrieval

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/careconnect/careconnect-api/internal/rag/embedding"
	"github.com/careconnect/careconnect-api/internal/rag/ingest"
	"github.com/careconnect/careconnect-api/internal/rag/vectorstore"
	"github.com/careconnect/careconnect-api/pkg/logger"
	"github.com/careconnect/careconnect-api/pkg/metrics"
)

// Config bounds the ingestion and lookup behavior.
type Config struct {
	ChunkSize    int
	ChunkOverlap int
	MinScore     float64
}

// Service embeds the project description at startup and serves
// similarity lookups for the chat endpoint. Until BuildIndex
// completes, Ready reports false and callers must refuse chat traffic.
type Service struct {
	embedder embedding.Embedder
	store    vectorstore.Store
	cfg      Config
	logger   *logger.Logger
	metrics  *metrics.Metrics

	mu    sync.RWMutex
	ready bool
}

func NewService(embedder embedding.Embedder, store vectorstore.Store, cfg Config, l *logger.Logger, m *metrics.Metrics) *Service {
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = 1000
	}
	if cfg.ChunkOverlap < 0 {
		cfg.ChunkOverlap = 0
	}
	return &Service{
		embedder: embedder,
		store:    store,
		cfg:      cfg,
		logger:   l,
		metrics:  m,
	}
}

// BuildIndexFromFile reads the project description and indexes it.
func (s *Service) BuildIndexFromFile(ctx context.Context, path string) error {
	text, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read project description: %w", err)
	}
	return s.BuildIndex(ctx, string(text))
}

// BuildIndex splits, embeds and stores the document, then marks the
// service ready.
func (s *Service) BuildIndex(ctx context.Context, text string) error {
	start := time.Now()
	defer func() { s.metrics.ObserveRetrievalStep("index_build", time.Since(start)) }()

	chunks := ingest.SplitText(text, s.cfg.ChunkSize, s.cfg.ChunkOverlap)
	if len(chunks) == 0 {
		return fmt.Errorf("project description is empty")
	}

	vectors, err := s.embedder.EmbedDocuments(ctx, chunks)
	if err != nil {
		return fmt.Errorf("failed to embed document chunks: %w", err)
	}

	if err := s.store.Add(chunks, vectors); err != nil {
		return fmt.Errorf("failed to index document chunks: %w", err)
	}

	s.mu.Lock()
	s.ready = true
	s.mu.Unlock()

	s.metrics.IndexedChunks.Set(float64(s.store.Len()))
	s.logger.Info("retrieval index built", "chunks", len(chunks))
	return nil
}

// Ready reports whether the index has been built.
func (s *Service) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// Search embeds the query and returns the top-k most similar
// passages. Out-of-domain queries score below the threshold and
// yield an empty result.
func (s *Service) Search(ctx context.Context, query string, k int) ([]string, error) {
	start := time.Now()
	defer func() { s.metrics.ObserveRetrievalStep("search", time.Since(start)) }()

	vector, err := s.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	matches := s.store.Search(vector, k, s.cfg.MinScore)
	passages := make([]string, 0, len(matches))
	for _, m := range matches {
		passages = append(passages, m.Content)
	}
	return passages, nil
}
