package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/vialandd/text-complexity-analyzer/internal/config"
	"github.com/vialandd/text-complexity-analyzer/internal/store"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	cfg := &config.Config{TopFrequentWords: config.DefaultTopFrequent}
	ts := httptest.NewServer(New(cfg, st).Routes())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func getJSON(t *testing.T, url string, dst any) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	if dst != nil {
		if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return resp
}

func TestHealth(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	var body map[string]any
	resp := getJSON(t, ts.URL+"/api/v1/health", &body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %v, want ok", body["status"])
	}
}

func TestDocumentLifecycle(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/v1/documents", map[string]any{
		"title":    "Sample",
		"content":  "The cat sat. The cat ran.",
		"category": "fiction",
		"tags":     []string{"test"},
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d, want 201", resp.StatusCode)
	}
	var created store.Document
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode created: %v", err)
	}

	var list struct {
		Documents []store.Document `json:"documents"`
	}
	getJSON(t, ts.URL+"/api/v1/documents", &list)
	if len(list.Documents) != 1 || list.Documents[0].Title != "Sample" {
		t.Errorf("list = %+v, want single Sample document", list.Documents)
	}

	var detail struct {
		Document store.Document `json:"document"`
		Analysis struct {
			General struct {
				WordCount     int `json:"word_count"`
				SentenceCount int `json:"sentence_count"`
			} `json:"general"`
		} `json:"analysis"`
	}
	getJSON(t, fmt.Sprintf("%s/api/v1/documents/%d", ts.URL, created.ID), &detail)
	if detail.Document.ID != created.ID {
		t.Errorf("detail document ID = %d, want %d", detail.Document.ID, created.ID)
	}
	if detail.Analysis.General.WordCount != 8 || detail.Analysis.General.SentenceCount != 2 {
		t.Errorf("analysis = %+v, want 8 words / 2 sentences", detail.Analysis.General)
	}

	var cats struct {
		Categories []store.Category `json:"categories"`
	}
	getJSON(t, ts.URL+"/api/v1/categories", &cats)
	if len(cats.Categories) != 1 || cats.Categories[0].Name != "fiction" {
		t.Errorf("categories = %+v, want [fiction]", cats.Categories)
	}
}

func TestCreateDocumentRejectsBadInput(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/v1/documents", map[string]any{
		"title": "", "content": "x",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for empty title", resp.StatusCode)
	}

	resp2, err := http.Post(ts.URL+"/api/v1/documents", "application/json",
		bytes.NewReader([]byte("{not json")))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp2.Body.Close()
	if resp2.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for malformed JSON", resp2.StatusCode)
	}
}

func TestGetDocumentNotFound(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	resp := getJSON(t, ts.URL+"/api/v1/documents/424242", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestAnalyzeEndpoint(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/v1/analyze", map[string]string{
		"text": "The quick brown fox jumps over the lazy dog.",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var report struct {
		General struct {
			WordCount int `json:"word_count"`
		} `json:"general"`
		Reading struct {
			FleschProgress float64 `json:"flesch_progress"`
		} `json:"reading"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if report.General.WordCount != 10 {
		t.Errorf("WordCount = %d, want 10 (nine words, one period)", report.General.WordCount)
	}
	if report.Reading.FleschProgress < 0 || report.Reading.FleschProgress > 100 {
		t.Errorf("FleschProgress = %v out of range", report.Reading.FleschProgress)
	}
}

func TestAnalyzeEmptyText(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/v1/analyze", map[string]string{"text": ""})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200 for empty text", resp.StatusCode)
	}
	var report struct {
		General struct {
			WordCount int `json:"word_count"`
		} `json:"general"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if report.General.WordCount != 0 {
		t.Errorf("WordCount = %d, want 0", report.General.WordCount)
	}
}

func TestCORSHeaders(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/api/v1/health", nil)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("OPTIONS: %v", err)
	}
	defer resp.Body.Close()
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Allow-Origin = %q, want *", got)
	}
}
