package models

// Document is the extracted text of one uploaded file plus its metadata.
// Metadata always carries at least "source" = original filename.
type Document struct {
	Text     string
	Metadata map[string]string
}

// MetadataKeySource is the metadata key holding the original filename.
const MetadataKeySource = "source"

// Fixed pipeline parameters. The local model and index path are
// deliberately not configurable: entries written with one embedding
// space must never be queried with another, so the local index is
// bound to a single model.
const (
	ChunkSize    = 1500 // characters
	ChunkOverlap = 100  // characters

	LocalEmbeddingModel = "nomic-embed-text"
	LocalIndexPath      = "./chromemdb"
	CollectionName      = "documents"

	DefaultOllamaURL           = "http://localhost:11434"
	DefaultCloudEmbeddingModel = "text-embedding-3-small"
)
