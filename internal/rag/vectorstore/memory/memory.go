package memory

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/careconnect/careconnect-api/internal/rag/vectorstore"
)

type entry struct {
	content string
	vector  []float32
	norm    float64
}

// Store is an in-memory vector store using cosine similarity. It is
// safe for concurrent use; the index is small (one project
// description) so a linear scan is fine.
type Store struct {
	mu      sync.RWMutex
	entries []entry
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Add(contents []string, vectors [][]float32) error {
	if len(contents) != len(vectors) {
		return fmt.Errorf("contents and vectors length mismatch: %d != %d", len(contents), len(vectors))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, content := range contents {
		s.entries = append(s.entries, entry{
			content: content,
			vector:  vectors[i],
			norm:    norm(vectors[i]),
		})
	}
	return nil
}

func (s *Store) Search(vector []float32, k int, minScore float64) []vectorstore.Match {
	if k <= 0 {
		return nil
	}

	queryNorm := norm(vector)
	if queryNorm == 0 {
		return nil
	}

	s.mu.RLock()
	matches := make([]vectorstore.Match, 0, len(s.entries))
	for _, e := range s.entries {
		if e.norm == 0 || len(e.vector) != len(vector) {
			continue
		}
		score := dot(vector, e.vector) / (queryNorm * e.norm)
		if score < minScore {
			continue
		}
		matches = append(matches, vectorstore.Match{Content: e.content, Score: score})
	}
	s.mu.RUnlock()

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if len(matches) > k {
		matches = matches[:k]
	}
	return matches
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func dot(a, b []float32) float64 {
	var sum float64
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}

func norm(v []float32) float64 {
	return math.Sqrt(dot(v, v))
}
