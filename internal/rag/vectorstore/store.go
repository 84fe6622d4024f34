package vectorstore

// Match is a stored passage with its similarity to a query vector.
type Match struct {
	Content string
	Score   float64
}

// Store holds embedded passages and serves nearest-neighbor lookups.
type Store interface {
	// Add appends passages with their vectors. Vectors and contents
	// must be the same length.
	Add(contents []string, vectors [][]float32) error
	// Search returns up to k passages most similar to the query
	// vector, best first, dropping matches scoring below minScore.
	Search(vector []float32, k int, minScore float64) []Match
	// Len reports the number of stored passages.
	Len() int
}
