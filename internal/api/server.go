package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"
)

const (
	msgUploadSuccess = "PDF file uploaded successfully."
	msgMissingFile   = `"file" field not found in form data.`
)

// Pipeline runs the ingestion for one uploaded file.
type Pipeline interface {
	Ingest(ctx context.Context, filename string, data []byte) error
}

type Server struct {
	pipeline Pipeline
}

func NewServer(pipeline Pipeline) *Server {
	return &Server{pipeline: pipeline}
}

// Routes returns the HTTP mux for the service.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/documents", s.HandleDocuments)
	mux.HandleFunc("/health", s.HandleHealth)
	return mux
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// HandleDocuments accepts one multipart upload under the "file" field
// and runs it through the ingestion pipeline. All pipeline failures
// surface as a single 503 envelope carrying the underlying message.
func (s *Server) HandleDocuments(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil || header.Filename == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msgMissingFile})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.serviceUnavailable(w, header.Filename, err)
		return
	}

	log.Info().Str("file", header.Filename).Int64("size", header.Size).Msg("Received upload")

	if err := s.pipeline.Ingest(r.Context(), header.Filename, data); err != nil {
		s.serviceUnavailable(w, header.Filename, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": msgUploadSuccess})
}

func (s *Server) serviceUnavailable(w http.ResponseWriter, filename string, err error) {
	log.Error().Err(err).Str("file", filename).Msg("Ingestion failed")
	writeJSON(w, http.StatusServiceUnavailable, map[string]string{
		"error": fmt.Sprintf("Service temporarily unavailable. Error: %s", err),
	})
}
