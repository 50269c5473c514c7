package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LegalAidOrganization is a seeded directory entry for free or low-cost
// legal help. PracticeAreas is stored as a comma-separated list.
type LegalAidOrganization struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name               string `gorm:"size:250;not null" json:"name"`
	PracticeAreas      string `gorm:"size:500" json:"practice_areas"`
	Location           string `gorm:"size:250;index" json:"location"`
	Availability       string `gorm:"size:100" json:"availability"` // e.g. "immediate", "waitlist"
	HandlesEmergencies bool   `gorm:"default:false;index" json:"handles_emergencies"`
	Phone              string `gorm:"size:50" json:"phone,omitempty"`
	Website            string `gorm:"size:250" json:"website,omitempty"`
}

// BeforeCreate hook to generate UUID
func (o *LegalAidOrganization) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return nil
}

// PracticeAreaList splits the stored comma-separated practice areas
func (o *LegalAidOrganization) PracticeAreaList() []string {
	if o.PracticeAreas == "" {
		return nil
	}
	parts := strings.Split(o.PracticeAreas, ",")
	areas := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			areas = append(areas, trimmed)
		}
	}
	return areas
}
