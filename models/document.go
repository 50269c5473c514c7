package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DocumentStatus tracks a document through its filing lifecycle.
// Transitions are strictly forward: uploaded -> analyzed -> validated -> filed.
type DocumentStatus string

const (
	DocumentStatusUploaded  DocumentStatus = "uploaded"
	DocumentStatusAnalyzed  DocumentStatus = "analyzed"
	DocumentStatusValidated DocumentStatus = "validated"
	DocumentStatusFiled     DocumentStatus = "filed"
)

// statusRank orders lifecycle states for monotonicity checks
var statusRank = map[DocumentStatus]int{
	DocumentStatusUploaded:  0,
	DocumentStatusAnalyzed:  1,
	DocumentStatusValidated: 2,
	DocumentStatusFiled:     3,
}

// CanTransitionTo reports whether moving from s to target is a forward move
func (s DocumentStatus) CanTransitionTo(target DocumentStatus) bool {
	from, ok := statusRank[s]
	if !ok {
		return false
	}
	to, ok := statusRank[target]
	if !ok {
		return false
	}
	return to > from
}

// Document represents one uploaded or generated legal document
type Document struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	OwnerID string `gorm:"type:uuid;not null;index" json:"owner_id"`

	// File metadata
	FileName   string `gorm:"not null" json:"file_name"`
	MimeType   string `json:"mime_type,omitempty"`
	ByteSize   int64  `gorm:"not null" json:"byte_size"`
	StorageKey string `gorm:"not null" json:"-"` // Not exposed in JSON for security

	// ExtractedText is best-effort plain text; a diagnostic placeholder when
	// extraction is unsupported for the format. Encrypted at rest when a
	// field-encryption key is configured.
	ExtractedText string `gorm:"type:text" json:"-"`

	DocumentType string                  `json:"document_type,omitempty"` // Set after classification
	Analysis     *DocumentAnalysisResult `gorm:"type:text;serializer:json" json:"analysis,omitempty"`

	Status      DocumentStatus `gorm:"not null;default:uploaded;index" json:"status"`
	IsEmergency bool           `gorm:"default:false" json:"is_emergency"`
}

// BeforeCreate hook to generate UUID
func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	if d.Status == "" {
		d.Status = DocumentStatusUploaded
	}
	return nil
}

// DocumentAnalysisResult is the consolidated compliance analysis attached to
// a document. It is always stored whole: no reader ever sees a document with
// status "analyzed" and a nil analysis.
type DocumentAnalysisResult struct {
	DocType           string            `json:"doc_type"`
	Jurisdiction      string            `json:"jurisdiction"`
	ComplianceSummary string            `json:"compliance_summary"`
	Recommendations   []string          `json:"recommendations"`
	ExtractedData     map[string]string `json:"extracted_data,omitempty"`
	CourtValidation   CourtValidation   `json:"court_validation"`
	ComplianceDetails ComplianceDetails `json:"compliance_details"`
}

// CourtValidation is the court-suitability block of an analysis
type CourtValidation struct {
	SuggestedCourtID   string   `json:"suggested_court_id"`
	IsValidForCourt    bool     `json:"is_valid_for_court"`
	FilingRequirements []string `json:"filing_requirements"`
}

// ComplianceDetails carries the boolean compliance signals plus every issue
// surfaced by the classifier, the court registry and the rule checks
type ComplianceDetails struct {
	HIPAACompliant  bool     `json:"hipaa_compliant"`
	FormatCompliant bool     `json:"format_compliant"`
	ContentComplete bool     `json:"content_complete"`
	Issues          []string `json:"issues"`
}
