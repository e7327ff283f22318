package splitter

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"document-ingest/internal/models"
)

func buildText(paragraphs int) string {
	var parts []string
	for i := 0; i < paragraphs; i++ {
		parts = append(parts, fmt.Sprintf(
			"Paragraph %d covers a topic in enough words that several of these together exceed a single chunk and force the splitter to cut.", i))
	}
	return strings.Join(parts, "\n\n")
}

func TestSplit_ShortTextSingleChunk(t *testing.T) {
	s := New()
	chunks, err := s.Split("hello world")
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, "hello world", chunks[0])
}

func TestSplit_LongTextRespectsChunkSize(t *testing.T) {
	s := New()
	text := buildText(60)
	chunks, err := s.Split(text)
	require.NoError(t, err)

	require.Greater(t, len(chunks), 2)
	for i, chunk := range chunks {
		assert.NotEmpty(t, chunk, "chunk %d", i)
		assert.LessOrEqual(t, utf8.RuneCountInString(chunk), models.ChunkSize, "chunk %d", i)
	}

	// Chunk count roughly covers the text given size minus overlap.
	minChunks := len(text) / models.ChunkSize
	assert.GreaterOrEqual(t, len(chunks), minChunks)
}

func TestSplit_PreservesOrderAndContent(t *testing.T) {
	s := New()
	text := buildText(40)
	chunks, err := s.Split(text)
	require.NoError(t, err)

	lastPos := -1
	for i, chunk := range chunks {
		pos := strings.Index(text, chunk)
		require.GreaterOrEqual(t, pos, 0, "chunk %d not found in source text", i)
		assert.Greater(t, pos, lastPos, "chunk %d out of order", i)
		lastPos = pos
	}
}

func TestSplit_PrefersParagraphBoundaries(t *testing.T) {
	s := New()
	chunks, err := s.Split(buildText(60))
	require.NoError(t, err)

	// Boundary snapping means chunks should not begin or end mid-word.
	for i, chunk := range chunks {
		assert.False(t, strings.HasPrefix(chunk, " "), "chunk %d starts with space", i)
		assert.False(t, strings.HasSuffix(chunk, " "), "chunk %d ends with space", i)
	}
}
