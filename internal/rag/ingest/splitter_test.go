package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitTextShortInput(t *testing.T) {
	chunks := SplitText("short text", 100, 10)
	assert.Equal(t, []string{"short text"}, chunks)
}

func TestSplitTextEmptyInput(t *testing.T) {
	assert.Nil(t, SplitText("", 100, 10))
	assert.Nil(t, SplitText("   \n  ", 100, 10))
}

func TestSplitTextRespectsLimit(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 50; i++ {
		b.WriteString("The quick brown fox jumps over the lazy dog. ")
	}

	chunks := SplitText(b.String(), 200, 30)
	require.NotEmpty(t, chunks)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), 200)
	}
}

func TestSplitTextPrefersParagraphBoundaries(t *testing.T) {
	text := strings.Repeat("a", 80) + "\n\n" + strings.Repeat("b", 80)

	chunks := SplitText(text, 100, 0)
	require.Len(t, chunks, 2)
	assert.Equal(t, strings.Repeat("a", 80), chunks[0])
	assert.Equal(t, strings.Repeat("b", 80), chunks[1])
}

func TestSplitTextCarriesOverlap(t *testing.T) {
	text := strings.Repeat("a", 50) + " " + strings.Repeat("b", 50) + " " + strings.Repeat("c", 50)

	chunks := SplitText(text, 70, 10)
	require.Greater(t, len(chunks), 1)
	// The second chunk starts with the tail of the first.
	tail := chunks[0][len(chunks[0])-10:]
	assert.True(t, strings.HasPrefix(chunks[1], tail))
}

func TestSplitTextHardCutsUnbreakableRuns(t *testing.T) {
	chunks := SplitText(strings.Repeat("x", 250), 100, 10)
	require.Len(t, chunks, 3)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), 100)
	}
}
