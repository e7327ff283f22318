package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"document-ingest/internal/models"
)

// BackendKind selects which embedding provider and vector store the
// ingestion pipeline talks to. The decision is made once, from a
// single signal: a configured cloud embedding endpoint.
type BackendKind int

const (
	BackendLocal BackendKind = iota
	BackendCloud
)

func (k BackendKind) String() string {
	if k == BackendCloud {
		return "cloud"
	}
	return "local"
}

type Config struct {
	CloudEmbeddingURL   string `yaml:"cloud_embedding_url"`
	CloudEmbeddingKey   string `yaml:"cloud_embedding_key"`
	CloudEmbeddingModel string `yaml:"cloud_embedding_model"`
	DatabaseURL         string `yaml:"database_url"`
	DatabaseKey         string `yaml:"database_key"`
	DatabaseDebug       bool   `yaml:"database_debug"`
	StorageURL          string `yaml:"storage_url"`
	StorageContainer    string `yaml:"storage_container"`
	StorageAccessKey    string `yaml:"storage_access_key"`
	StorageSecretKey    string `yaml:"storage_secret_key"`
	OllamaURL           string `yaml:"ollama_url"`
}

// Load reads the optional YAML config file at path, then overlays
// environment variables. Env always wins; a missing file is not an
// error since every value can come from the environment.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyEnv() {
	overlay(&c.CloudEmbeddingURL, "CLOUD_EMBEDDING_URL")
	overlay(&c.CloudEmbeddingKey, "CLOUD_EMBEDDING_KEY")
	overlay(&c.CloudEmbeddingModel, "CLOUD_EMBEDDING_MODEL")
	overlay(&c.DatabaseURL, "DATABASE_URL")
	overlay(&c.DatabaseKey, "DATABASE_KEY")
	overlay(&c.StorageURL, "STORAGE_URL")
	overlay(&c.StorageContainer, "STORAGE_CONTAINER")
	overlay(&c.StorageAccessKey, "STORAGE_ACCESS_KEY")
	overlay(&c.StorageSecretKey, "STORAGE_SECRET_KEY")
	overlay(&c.OllamaURL, "OLLAMA_URL")

	if v := os.Getenv("DATABASE_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.DatabaseDebug = b
		}
	}
}

func (c *Config) applyDefaults() {
	if c.CloudEmbeddingModel == "" {
		c.CloudEmbeddingModel = models.DefaultCloudEmbeddingModel
	}
	if c.OllamaURL == "" {
		c.OllamaURL = models.DefaultOllamaURL
	}
}

func overlay(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// Backend returns the cloud branch iff a cloud embedding endpoint is
// configured, otherwise the local branch.
func (c *Config) Backend() BackendKind {
	if c.CloudEmbeddingURL != "" {
		return BackendCloud
	}
	return BackendLocal
}

// ArchivalEnabled reports whether the optional blob-archival step
// should run. Both the endpoint and the container must be present;
// anything less means the step is silently skipped.
func (c *Config) ArchivalEnabled() bool {
	return c.StorageURL != "" && c.StorageContainer != ""
}
