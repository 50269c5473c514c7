package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"court_filing_app_go/config"

	"github.com/sony/gobreaker/v2"
)

// UnknownDocumentType is the sentinel used when classification fails or the
// classifier omits a document type.
const UnknownDocumentType = "Unknown Document Type"

// DocumentClassifier wraps the external text-classification capability. It is
// non-deterministic and fallible: callers must treat its output as advisory
// and fall back via Resolve on error.
type DocumentClassifier interface {
	Classify(ctx context.Context, text string, filename string, hintedCourtID string) (*ClassifierOutput, error)
}

// ClassifierOutput is the raw, partially-populated classifier response.
// Every field is optional; Resolve applies per-field defaults so missing
// fields degrade independently rather than all-or-nothing.
type ClassifierOutput struct {
	DocType          *string           `json:"document_type"`
	Jurisdiction     *string           `json:"jurisdiction"`
	Compliance       *string           `json:"compliance"`
	SuggestedCourtID *string           `json:"suggested_court_id"`
	Recommendations  []string          `json:"recommendations"`
	ExtractedData    map[string]string `json:"extracted_data"`
	HIPAACompliant   *bool             `json:"hipaa_compliant"`
	FormatCompliant  *bool             `json:"format_compliant"`
	ContentComplete  *bool             `json:"content_complete"`
	Issues           []string          `json:"issues"`
}

// ClassifierDefaults holds the safe fallback values applied to missing fields
type ClassifierDefaults struct {
	DocType         string
	Jurisdiction    string
	Compliance      string
	Recommendations []string
}

// DefaultClassifierDefaults builds the documented fallback set for a
// jurisdiction
func DefaultClassifierDefaults(jurisdiction string) ClassifierDefaults {
	if jurisdiction == "" {
		jurisdiction = "Massachusetts"
	}
	return ClassifierDefaults{
		DocType:         UnknownDocumentType,
		Jurisdiction:    jurisdiction,
		Compliance:      "Needs Review",
		Recommendations: []string{"Manual review required"},
	}
}

// ResolvedClassification is a total view of a classifier response: every
// field populated, either from the classifier or from defaults.
type ResolvedClassification struct {
	DocType          string
	Jurisdiction     string
	Compliance       string
	SuggestedCourtID string
	Recommendations  []string
	ExtractedData    map[string]string
	HIPAACompliant   bool
	FormatCompliant  bool
	ContentComplete  bool
	Issues           []string
}

// Resolve applies field-level fallbacks. A nil receiver (total classifier
// failure) resolves entirely to defaults.
func (o *ClassifierOutput) Resolve(d ClassifierDefaults) ResolvedClassification {
	rc := ResolvedClassification{
		DocType:         d.DocType,
		Jurisdiction:    d.Jurisdiction,
		Compliance:      d.Compliance,
		Recommendations: d.Recommendations,
		ExtractedData:   map[string]string{},
		Issues:          []string{},
	}
	if o == nil {
		return rc
	}

	if o.DocType != nil && *o.DocType != "" {
		rc.DocType = *o.DocType
	}
	if o.Jurisdiction != nil && *o.Jurisdiction != "" {
		rc.Jurisdiction = *o.Jurisdiction
	}
	if o.Compliance != nil && *o.Compliance != "" {
		rc.Compliance = *o.Compliance
	}
	if o.SuggestedCourtID != nil {
		rc.SuggestedCourtID = *o.SuggestedCourtID
	}
	if len(o.Recommendations) > 0 {
		rc.Recommendations = o.Recommendations
	}
	if len(o.ExtractedData) > 0 {
		rc.ExtractedData = o.ExtractedData
	}
	if o.HIPAACompliant != nil {
		rc.HIPAACompliant = *o.HIPAACompliant
	}
	if o.FormatCompliant != nil {
		rc.FormatCompliant = *o.FormatCompliant
	}
	if o.ContentComplete != nil {
		rc.ContentComplete = *o.ContentComplete
	}
	if len(o.Issues) > 0 {
		rc.Issues = o.Issues
	}
	return rc
}

// llmClassifier calls a chat-completion API in JSON mode. The call is bounded
// by the configured timeout, the input is truncated to a bounded prefix, and
// a circuit breaker sheds load when the upstream is failing.
type llmClassifier struct {
	baseURL    string
	apiKey     string
	model      string
	maxChars   int
	timeout    time.Duration
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[*ClassifierOutput]
}

// NewLLMClassifier builds the production classifier from configuration
func NewLLMClassifier(cfg *config.Config) DocumentClassifier {
	return &llmClassifier{
		baseURL:  strings.TrimRight(cfg.ClassifierBaseURL, "/"),
		apiKey:   cfg.ClassifierAPIKey,
		model:    cfg.ClassifierModel,
		maxChars: cfg.ClassifierMaxChars,
		timeout:  cfg.ClassifierTimeout,
		httpClient: &http.Client{
			Timeout: cfg.ClassifierTimeout,
		},
		breaker: gobreaker.NewCircuitBreaker[*ClassifierOutput](gobreaker.Settings{
			Name:    "document-classifier",
			Timeout: 30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
		}),
	}
}

func (c *llmClassifier) Classify(ctx context.Context, text string, filename string, hintedCourtID string) (*ClassifierOutput, error) {
	return c.breaker.Execute(func() (*ClassifierOutput, error) {
		return c.classify(ctx, text, filename, hintedCourtID)
	})
}

func (c *llmClassifier) classify(ctx context.Context, text string, filename string, hintedCourtID string) (*ClassifierOutput, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	prompt := buildClassificationPrompt(truncate(text, c.maxChars), filename, hintedCourtID)

	reqBody := map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": classificationSystemPrompt},
			{"role": "user", "content": prompt},
		},
		"response_format": map[string]string{"type": "json_object"},
		"temperature":     0,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to encode classifier request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build classifier request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("classifier request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("classifier returned status %d: %s", resp.StatusCode, string(body))
	}

	var completion struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return nil, fmt.Errorf("failed to decode classifier response: %w", err)
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("classifier returned no choices")
	}

	var out ClassifierOutput
	if err := json.Unmarshal([]byte(completion.Choices[0].Message.Content), &out); err != nil {
		return nil, fmt.Errorf("failed to parse classification json: %w", err)
	}
	return &out, nil
}

const classificationSystemPrompt = `You are a legal document analyst for Massachusetts courts. ` +
	`Respond with a single JSON object using these keys: document_type, jurisdiction, compliance, ` +
	`suggested_court_id, recommendations (array), extracted_data (object of strings: parties, ` +
	`case_number, dates, amounts), hipaa_compliant (bool), format_compliant (bool), ` +
	`content_complete (bool), issues (array). Omit keys you cannot determine.`

func buildClassificationPrompt(text, filename, hintedCourtID string) string {
	var b strings.Builder
	b.WriteString("Classify the following legal document.\n")
	if filename != "" {
		fmt.Fprintf(&b, "Filename: %s\n", filename)
	}
	if hintedCourtID != "" {
		fmt.Fprintf(&b, "The filer intends to file in court id: %s\n", hintedCourtID)
	}
	b.WriteString("Document text:\n")
	b.WriteString(text)
	return b.String()
}

// truncate bounds the classifier input to limit cost and latency. Safe for
// input shorter than the limit.
func truncate(text string, maxChars int) string {
	if maxChars <= 0 || len(text) <= maxChars {
		return text
	}
	// Back up to a rune boundary so we never split a multi-byte character
	cut := maxChars
	for cut > 0 && !isRuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}
