package services

import (
	"context"
	"fmt"
	"log"
	"strings"
)

// EmergencyFilingType is one of the two supported emergency filing categories
type EmergencyFilingType string

const (
	FilingTypeTRO                   EmergencyFilingType = "TRO"
	FilingTypePreliminaryInjunction EmergencyFilingType = "PRELIMINARY_INJUNCTION"
)

// ParseEmergencyFilingType validates a caller-supplied filing type string
func ParseEmergencyFilingType(s string) (EmergencyFilingType, error) {
	switch EmergencyFilingType(s) {
	case FilingTypeTRO:
		return FilingTypeTRO, nil
	case FilingTypePreliminaryInjunction:
		return FilingTypePreliminaryInjunction, nil
	default:
		return "", fmt.Errorf("unknown emergency filing type: %q", s)
	}
}

// EmergencyFilingValidation is the single-shot result of checking a document
// against an emergency filing legal standard. Never persisted.
// Invariant: IsValid is true iff Issues is empty.
type EmergencyFilingValidation struct {
	FilingType      EmergencyFilingType `json:"filing_type"`
	IsValid         bool                `json:"is_valid"`
	Issues          []string            `json:"issues"`
	Recommendations []string            `json:"recommendations"`
}

// ChecklistFactor is one element of a filing-type legal standard. Advisory
// factors only add a recommendation and never fail validation.
type ChecklistFactor struct {
	Name           string
	Keywords       []string
	Issue          string
	Recommendation string
	Advisory       bool
}

// FactorJudge decides whether document text shows support for a checklist
// factor. The boundary between deterministic rule check and assisted judgment
// is deliberately pluggable: a keyword matcher and a classifier-backed judge
// both satisfy this contract.
type FactorJudge interface {
	HasSupport(ctx context.Context, text string, factor ChecklistFactor) (bool, error)
}

// KeywordJudge is the default deterministic judge: a factor is supported when
// any of its keywords appears in the text, case-insensitively.
type KeywordJudge struct{}

func (KeywordJudge) HasSupport(_ context.Context, text string, factor ChecklistFactor) (bool, error) {
	lower := strings.ToLower(text)
	for _, kw := range factor.Keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true, nil
		}
	}
	return false, nil
}

// troChecklist is the fixed legal standard for a temporary restraining order
// under Fed. R. Civ. P. 65(b)
var troChecklist = []ChecklistFactor{
	{
		Name:           "immediate and irreparable injury",
		Keywords:       []string{"immediate and irreparable", "irreparable injury", "irreparable harm"},
		Issue:          "No showing of immediate and irreparable injury",
		Recommendation: "Describe the immediate and irreparable injury that will result before the adverse party can be heard",
	},
	{
		Name:           "efforts to notify the opposing party",
		Keywords:       []string{"notice", "notify", "notified", "attempted to contact"},
		Issue:          "No certification of efforts to notify the opposing party",
		Recommendation: "Certify in writing the efforts made to give notice and the reasons notice should not be required",
	},
	{
		Name:           "specific factual assertions",
		Keywords:       []string{"affidavit", "verified complaint", "declaration", "specific facts"},
		Issue:          "No specific factual assertions supporting the request",
		Recommendation: "Support the request with specific facts in an affidavit or verified complaint",
	},
	{
		Name:           "security bond",
		Advisory:       true,
		Recommendation: "A security bond may be required under Rule 65(c) before the order issues",
	},
}

// piChecklist is the Winter four-factor test for a preliminary injunction.
// Each factor must have some textual support for the filing to be valid.
var piChecklist = []ChecklistFactor{
	{
		Name:           "likelihood of success on the merits",
		Keywords:       []string{"likelihood of success", "likely to succeed", "success on the merits"},
		Issue:          "Winter factor not addressed: likelihood of success on the merits",
		Recommendation: "Explain why the movant is likely to succeed on the merits of the underlying claim",
	},
	{
		Name:           "irreparable harm absent relief",
		Keywords:       []string{"irreparable harm", "irreparable injury"},
		Issue:          "Winter factor not addressed: irreparable harm absent relief",
		Recommendation: "Show that irreparable harm is likely, not merely possible, without the injunction",
	},
	{
		Name:           "balance of equities",
		Keywords:       []string{"balance of equities", "balance of hardships", "balance of the equities"},
		Issue:          "Winter factor not addressed: balance of equities",
		Recommendation: "Address why the balance of equities tips in the movant's favor",
	},
	{
		Name:           "public interest",
		Keywords:       []string{"public interest"},
		Issue:          "Winter factor not addressed: public interest",
		Recommendation: "Address why an injunction serves the public interest",
	},
}

// EmergencyValidator checks documents against emergency filing standards
type EmergencyValidator struct {
	judge FactorJudge
}

// NewEmergencyValidator builds a validator with the given judgment function;
// nil selects the deterministic keyword judge.
func NewEmergencyValidator(judge FactorJudge) *EmergencyValidator {
	if judge == nil {
		judge = KeywordJudge{}
	}
	return &EmergencyValidator{judge: judge}
}

// ValidateEmergencyFiling checks the text against the fixed checklist for the
// filing type. Absence of a factor is an issue; IsValid requires every
// non-advisory factor addressed. If the judge itself fails, the result fails
// safe: never assert validity that cannot be supported.
func (v *EmergencyValidator) ValidateEmergencyFiling(ctx context.Context, text string, filingType EmergencyFilingType) (EmergencyFilingValidation, error) {
	var checklist []ChecklistFactor
	switch filingType {
	case FilingTypeTRO:
		checklist = troChecklist
	case FilingTypePreliminaryInjunction:
		checklist = piChecklist
	default:
		return EmergencyFilingValidation{}, fmt.Errorf("unknown emergency filing type: %q", filingType)
	}

	result := EmergencyFilingValidation{
		FilingType:      filingType,
		Issues:          []string{},
		Recommendations: []string{},
	}

	for _, factor := range checklist {
		if factor.Advisory {
			result.Recommendations = append(result.Recommendations, factor.Recommendation)
			continue
		}

		supported, err := v.judge.HasSupport(ctx, text, factor)
		if err != nil {
			log.Printf("[WARNING] Emergency checklist evaluation failed for %q: %v", factor.Name, err)
			return EmergencyFilingValidation{
				FilingType:      filingType,
				IsValid:         false,
				Issues:          []string{"Manual review required"},
				Recommendations: []string{"Consult with attorney"},
			}, nil
		}
		if !supported {
			result.Issues = append(result.Issues, factor.Issue)
			result.Recommendations = append(result.Recommendations, factor.Recommendation)
		}
	}

	result.IsValid = len(result.Issues) == 0
	return result, nil
}
