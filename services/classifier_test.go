package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"court_filing_app_go/config"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	defaults := DefaultClassifierDefaults("Massachusetts")

	t.Run("Nil output resolves entirely to defaults", func(t *testing.T) {
		var out *ClassifierOutput
		rc := out.Resolve(defaults)
		assert.Equal(t, UnknownDocumentType, rc.DocType)
		assert.Equal(t, "Massachusetts", rc.Jurisdiction)
		assert.Equal(t, "Needs Review", rc.Compliance)
		assert.Equal(t, []string{"Manual review required"}, rc.Recommendations)
		assert.Empty(t, rc.SuggestedCourtID)
		assert.NotNil(t, rc.ExtractedData)
		assert.Empty(t, rc.Issues)
		assert.False(t, rc.HIPAACompliant)
	})

	t.Run("Partial output falls back per field", func(t *testing.T) {
		docType := "Complaint"
		hipaa := true
		out := &ClassifierOutput{
			DocType:        &docType,
			HIPAACompliant: &hipaa,
			Issues:         []string{"Missing summons"},
		}
		rc := out.Resolve(defaults)
		assert.Equal(t, "Complaint", rc.DocType)
		assert.True(t, rc.HIPAACompliant)
		assert.Equal(t, []string{"Missing summons"}, rc.Issues)
		// Unset fields keep defaults
		assert.Equal(t, "Massachusetts", rc.Jurisdiction)
		assert.Equal(t, "Needs Review", rc.Compliance)
		assert.Equal(t, []string{"Manual review required"}, rc.Recommendations)
	})

	t.Run("Empty strings are treated as missing", func(t *testing.T) {
		empty := ""
		out := &ClassifierOutput{DocType: &empty, Jurisdiction: &empty}
		rc := out.Resolve(defaults)
		assert.Equal(t, UnknownDocumentType, rc.DocType)
		assert.Equal(t, "Massachusetts", rc.Jurisdiction)
	})

	t.Run("Full output overrides every default", func(t *testing.T) {
		docType := "TRO"
		jurisdiction := "Federal - District of Massachusetts"
		compliance := "Compliant"
		courtID := "ma-fed-district"
		out := &ClassifierOutput{
			DocType:          &docType,
			Jurisdiction:     &jurisdiction,
			Compliance:       &compliance,
			SuggestedCourtID: &courtID,
			Recommendations:  []string{"File before close of business"},
			ExtractedData:    map[string]string{"parties": "Doe v. Roe"},
		}
		rc := out.Resolve(defaults)
		assert.Equal(t, "TRO", rc.DocType)
		assert.Equal(t, "ma-fed-district", rc.SuggestedCourtID)
		assert.Equal(t, []string{"File before close of business"}, rc.Recommendations)
		assert.Equal(t, "Doe v. Roe", rc.ExtractedData["parties"])
	})
}

func TestDefaultClassifierDefaults(t *testing.T) {
	d := DefaultClassifierDefaults("")
	assert.Equal(t, "Massachusetts", d.Jurisdiction)

	d = DefaultClassifierDefaults("Federal")
	assert.Equal(t, "Federal", d.Jurisdiction)
	assert.Equal(t, UnknownDocumentType, d.DocType)
}

func classifierTestConfig(baseURL string) *config.Config {
	return &config.Config{
		ClassifierBaseURL:  baseURL,
		ClassifierModel:    "test-model",
		ClassifierTimeout:  2 * time.Second,
		ClassifierMaxChars: 6000,
	}
}

func completionBody(content string) map[string]any {
	return map[string]any{
		"choices": []map[string]any{
			{"message": map[string]string{"content": content}},
		},
	}
}

func TestLLMClassifier(t *testing.T) {
	t.Run("Successful classification", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/chat/completions", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var req map[string]any
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "test-model", req["model"])

			json.NewEncoder(w).Encode(completionBody(
				`{"document_type": "Complaint", "jurisdiction": "Massachusetts", "suggested_court_id": "ma-superior"}`))
		}))
		defer server.Close()

		classifier := NewLLMClassifier(classifierTestConfig(server.URL))
		out, err := classifier.Classify(context.Background(), "Civil action complaint text", "complaint.pdf", "")
		assert.NoError(t, err)
		assert.NotNil(t, out.DocType)
		assert.Equal(t, "Complaint", *out.DocType)
		assert.Equal(t, "ma-superior", *out.SuggestedCourtID)
	})

	t.Run("Upstream error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "overloaded", http.StatusServiceUnavailable)
		}))
		defer server.Close()

		classifier := NewLLMClassifier(classifierTestConfig(server.URL))
		out, err := classifier.Classify(context.Background(), "text", "doc.pdf", "")
		assert.Error(t, err)
		assert.Nil(t, out)
		assert.Contains(t, err.Error(), "503")
	})

	t.Run("Malformed classification json", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(completionBody("not json at all"))
		}))
		defer server.Close()

		classifier := NewLLMClassifier(classifierTestConfig(server.URL))
		_, err := classifier.Classify(context.Background(), "text", "doc.pdf", "")
		assert.Error(t, err)
	})

	t.Run("No choices", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
		}))
		defer server.Close()

		classifier := NewLLMClassifier(classifierTestConfig(server.URL))
		_, err := classifier.Classify(context.Background(), "text", "doc.pdf", "")
		assert.Error(t, err)
	})

	t.Run("Timeout", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(300 * time.Millisecond)
			json.NewEncoder(w).Encode(completionBody(`{}`))
		}))
		defer server.Close()

		cfg := classifierTestConfig(server.URL)
		cfg.ClassifierTimeout = 50 * time.Millisecond
		classifier := NewLLMClassifier(cfg)
		_, err := classifier.Classify(context.Background(), "text", "doc.pdf", "")
		assert.Error(t, err)
	})

	t.Run("Circuit breaker opens after consecutive failures", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "down", http.StatusInternalServerError)
		}))
		defer server.Close()

		classifier := NewLLMClassifier(classifierTestConfig(server.URL))
		for i := 0; i < 5; i++ {
			_, err := classifier.Classify(context.Background(), "text", "doc.pdf", "")
			assert.Error(t, err)
		}

		// Breaker is open now: the call fails without reaching the server
		_, err := classifier.Classify(context.Background(), "text", "doc.pdf", "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "circuit breaker is open")
	})
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 100))
	assert.Equal(t, "abc", truncate("abcdef", 3))
	assert.Equal(t, "abcdef", truncate("abcdef", 0))

	// Never splits a multi-byte rune
	s := "abécd" // é is 2 bytes, starting at index 2
	cut := truncate(s, 3)
	assert.Equal(t, "ab", cut)
	assert.True(t, strings.HasPrefix(s, cut))
}
