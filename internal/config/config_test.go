package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"document-ingest/internal/models"
)

func loadClean(t *testing.T) *Config {
	t.Helper()
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	return cfg
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CLOUD_EMBEDDING_URL", "CLOUD_EMBEDDING_KEY", "CLOUD_EMBEDDING_MODEL",
		"DATABASE_URL", "DATABASE_KEY", "DATABASE_DEBUG",
		"STORAGE_URL", "STORAGE_CONTAINER", "STORAGE_ACCESS_KEY", "STORAGE_SECRET_KEY",
		"OLLAMA_URL",
	} {
		t.Setenv(key, "")
	}
}

func TestBackend_DefaultsToLocal(t *testing.T) {
	clearEnv(t)
	cfg := loadClean(t)
	assert.Equal(t, BackendLocal, cfg.Backend())
}

func TestBackend_CloudWhenEndpointSet(t *testing.T) {
	clearEnv(t)
	t.Setenv("CLOUD_EMBEDDING_URL", "https://embeddings.example.com/v1")
	cfg := loadClean(t)
	assert.Equal(t, BackendCloud, cfg.Backend())
}

func TestArchivalEnabled_RequiresBothValues(t *testing.T) {
	clearEnv(t)

	t.Setenv("STORAGE_URL", "https://blobs.example.com")
	cfg := loadClean(t)
	assert.False(t, cfg.ArchivalEnabled())

	t.Setenv("STORAGE_CONTAINER", "uploads")
	cfg = loadClean(t)
	assert.True(t, cfg.ArchivalEnabled())
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg := loadClean(t)
	assert.Equal(t, models.DefaultCloudEmbeddingModel, cfg.CloudEmbeddingModel)
	assert.Equal(t, models.DefaultOllamaURL, cfg.OllamaURL)
}

func TestLoad_YamlFileWithEnvOverride(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "cloud_embedding_url: https://from-file.example.com\nstorage_container: file-container\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	t.Setenv("STORAGE_CONTAINER", "env-container")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://from-file.example.com", cfg.CloudEmbeddingURL)
	assert.Equal(t, "env-container", cfg.StorageContainer)
}

func TestLoad_BadYamlFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cloud_embedding_url: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestBackendKind_String(t *testing.T) {
	assert.Equal(t, "local", BackendLocal.String())
	assert.Equal(t, "cloud", BackendCloud.String())
}
