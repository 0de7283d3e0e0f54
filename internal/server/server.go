// Package server exposes the document store and analysis pipeline over a
// JSON HTTP API.
package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/vialandd/text-complexity-analyzer/analysis"
	"github.com/vialandd/text-complexity-analyzer/internal/config"
	"github.com/vialandd/text-complexity-analyzer/internal/store"
)

// maxBodyBytes bounds request bodies; analysis input larger than this is
// rejected rather than processed.
const maxBodyBytes = 1 << 20 // 1 MiB

// Server holds the HTTP server and its dependencies.
type Server struct {
	config   *config.Config
	store    *store.Store
	analyzer *analysis.Analyzer
}

// New creates a server around an open store.
func New(cfg *config.Config, st *store.Store) *Server {
	return &Server{
		config:   cfg,
		store:    st,
		analyzer: analysis.New(analysis.WithTopFrequent(cfg.TopFrequentWords)),
	}
}

// Routes configures and returns the HTTP router.
func (s *Server) Routes() *mux.Router {
	r := mux.NewRouter()

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(s.corsMiddleware)
	api.Use(s.loggingMiddleware)

	api.HandleFunc("/health", s.healthHandler).Methods("GET")

	api.HandleFunc("/documents", s.listDocumentsHandler).Methods("GET")
	api.HandleFunc("/documents", s.createDocumentHandler).Methods("POST")
	api.HandleFunc("/documents/{id:[0-9]+}", s.getDocumentHandler).Methods("GET")

	api.HandleFunc("/analyze", s.analyzeHandler).Methods("POST")

	api.HandleFunc("/categories", s.listCategoriesHandler).Methods("GET")

	// Preflight requests match here so the CORS middleware can answer them.
	api.PathPrefix("/").Methods("OPTIONS").HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	return r
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().Unix(),
	})
}

func (s *Server) listDocumentsHandler(w http.ResponseWriter, r *http.Request) {
	docs, err := s.store.ListDocuments(r.Context())
	if err != nil {
		log.Printf("list documents: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list documents")
		return
	}
	if docs == nil {
		docs = []store.Document{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"documents": docs})
}

// createDocumentRequest is the POST /documents payload.
type createDocumentRequest struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

func (s *Server) createDocumentHandler(w http.ResponseWriter, r *http.Request) {
	var req createDocumentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	doc, err := s.store.CreateDocument(r.Context(), req.Title, req.Content, req.Category, req.Tags)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, doc)
}

// documentDetail is the GET /documents/{id} response: the stored row plus
// a freshly computed analysis of its content.
type documentDetail struct {
	Document *store.Document `json:"document"`
	Analysis analysis.Report `json:"analysis"`
}

func (s *Server) getDocumentHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid document id")
		return
	}

	doc, err := s.store.GetDocument(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "document not found")
			return
		}
		log.Printf("get document %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "failed to load document")
		return
	}

	writeJSON(w, http.StatusOK, documentDetail{
		Document: doc,
		Analysis: s.analyzer.Analyze(doc.Content),
	})
}

// analyzeRequest is the POST /analyze payload.
type analyzeRequest struct {
	Text string `json:"text"`
}

func (s *Server) analyzeHandler(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, s.analyzer.Analyze(req.Text))
}

func (s *Server) listCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	cats, err := s.store.ListCategories(r.Context())
	if err != nil {
		log.Printf("list categories: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list categories")
		return
	}
	if cats == nil {
		cats = []store.Category{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": cats})
}

// corsMiddleware adds CORS headers.
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs HTTP requests.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapped, r)
		log.Printf("%s %s %d %v", r.Method, r.URL.Path, wrapped.statusCode, time.Since(start))
	})
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
