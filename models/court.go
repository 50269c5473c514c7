package models

// CourtClass identifies the class of a Massachusetts court
type CourtClass string

const (
	CourtClassFederal       CourtClass = "federal"
	CourtClassSuperior      CourtClass = "superior"
	CourtClassProbateFamily CourtClass = "probate_family"
	CourtClassDistrict      CourtClass = "district"
	CourtClassHousing       CourtClass = "housing"
	CourtClassJuvenile      CourtClass = "juvenile"
	CourtClassLand          CourtClass = "land"
)

// Court is an immutable court registry entry. The catalog is built once at
// startup and never written afterwards, so it is safe for unsynchronized
// concurrent reads.
type Court struct {
	ID                    string     `json:"id"`
	Name                  string     `json:"name"`
	Class                 CourtClass `json:"court_class"`
	JurisdictionLabel     string     `json:"jurisdiction_label"`
	AcceptedDocumentTypes []string   `json:"accepted_document_types"`
	FilingRequirements    []string   `json:"filing_requirements"`
}

// Accepts reports whether this court accepts the given document type
func (c *Court) Accepts(docType string) bool {
	for _, t := range c.AcceptedDocumentTypes {
		if t == docType {
			return true
		}
	}
	return false
}
