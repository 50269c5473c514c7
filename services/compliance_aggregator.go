package services

import (
	"context"
	"log"

	"court_filing_app_go/config"
	"court_filing_app_go/models"
)

// Analyzer orchestrates document analysis: classifier output merged with the
// court registry lookup and the deterministic rule checks. It holds no
// mutable state; persistence of results is the caller's job.
type Analyzer struct {
	classifier     DocumentClassifier
	registry       *CourtRegistry
	defaultCourtID string
	defaults       ClassifierDefaults
}

// NewAnalyzer wires the aggregator from its collaborators
func NewAnalyzer(classifier DocumentClassifier, registry *CourtRegistry, cfg *config.Config) *Analyzer {
	return &Analyzer{
		classifier:     classifier,
		registry:       registry,
		defaultCourtID: cfg.DefaultCourtID,
		defaults:       DefaultClassifierDefaults(cfg.DefaultJurisdiction),
	}
}

// AnalyzeDocument produces a consolidated analysis for the given document
// text. The second return value reports whether the classifier call failed
// outright; the analysis is still complete in that case, resolved entirely
// from fallback defaults. Classification is advisory and never aborts
// analysis.
func (a *Analyzer) AnalyzeDocument(ctx context.Context, text string, filename string, ownerCourtID string) (*models.DocumentAnalysisResult, bool) {
	out, err := a.classifier.Classify(ctx, text, filename, ownerCourtID)
	degraded := err != nil
	if degraded {
		log.Printf("[WARNING] Document classification failed for %s: %v", filename, err)
		out = nil
	}
	rc := out.Resolve(a.defaults)

	// Classifier suggestion if present, else the configured default court
	suggestedCourtID := rc.SuggestedCourtID
	if suggestedCourtID == "" {
		suggestedCourtID = a.defaultCourtID
	}

	// The caller-specified court wins over the suggestion
	courtID := ownerCourtID
	if courtID == "" {
		courtID = suggestedCourtID
	}

	courtResult := a.registry.ValidateDocumentForCourt(rc.DocType, courtID)
	basic := CheckBasicCompliance(text)

	issues := make([]string, 0, len(rc.Issues)+len(courtResult.Issues)+len(basic.Issues))
	issues = append(issues, rc.Issues...)
	issues = append(issues, courtResult.Issues...)
	issues = append(issues, basic.Issues...)

	recommendations := make([]string, 0, len(rc.Recommendations)+len(basic.Issues))
	recommendations = append(recommendations, rc.Recommendations...)
	recommendations = append(recommendations, RecommendationsForIssues(basic.Issues)...)

	return &models.DocumentAnalysisResult{
		DocType:           rc.DocType,
		Jurisdiction:      rc.Jurisdiction,
		ComplianceSummary: rc.Compliance,
		Recommendations:   recommendations,
		ExtractedData:     rc.ExtractedData,
		CourtValidation: models.CourtValidation{
			SuggestedCourtID:   suggestedCourtID,
			IsValidForCourt:    courtResult.IsValid,
			FilingRequirements: courtResult.FilingRequirements,
		},
		ComplianceDetails: models.ComplianceDetails{
			HIPAACompliant:  rc.HIPAACompliant,
			FormatCompliant: rc.FormatCompliant,
			ContentComplete: rc.ContentComplete,
			Issues:          issues,
		},
	}, degraded
}

// emergencyDocumentTypes maps classifier document types to the emergency
// filing category
var emergencyDocumentTypes = map[string]bool{
	"TRO":                    true,
	"Preliminary Injunction": true,
	"Emergency Motion":       true,
}

// IsEmergencyDocumentType reports whether a classified type is an emergency
// filing category
func IsEmergencyDocumentType(docType string) bool {
	return emergencyDocumentTypes[docType]
}
