package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FilingTemplate is a catalog entry for a reusable filing document template
type FilingTemplate struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name         string     `gorm:"size:250;not null" json:"name"`
	DocumentType string     `gorm:"size:100;not null;index" json:"document_type"`
	CourtClass   CourtClass `gorm:"size:30" json:"court_class,omitempty"`
	Description  string     `gorm:"type:text" json:"description,omitempty"`
	IsEmergency  bool       `gorm:"default:false;index" json:"is_emergency"`
	IsActive     bool       `gorm:"default:true" json:"is_active"`
}

// BeforeCreate hook to generate UUID
func (t *FilingTemplate) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}
