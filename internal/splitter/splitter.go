package splitter

import (
	"github.com/tmc/langchaingo/textsplitter"

	"document-ingest/internal/models"
)

// Splitter cuts extracted text into overlapping chunks, preferring
// paragraph, line and word boundaries before hard character cuts.
type Splitter struct {
	inner textsplitter.RecursiveCharacter
}

func New() Splitter {
	return Splitter{
		inner: textsplitter.NewRecursiveCharacter(
			textsplitter.WithChunkSize(models.ChunkSize),
			textsplitter.WithChunkOverlap(models.ChunkOverlap),
		),
	}
}

// Split returns the ordered chunk sequence for text. An empty or
// whitespace-only input yields no chunks.
func (s Splitter) Split(text string) ([]string, error) {
	return s.inner.SplitText(text)
}
