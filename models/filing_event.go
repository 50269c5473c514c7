package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FilingEvent records one submission of a document to the (simulated) CM/ECF
// gateway. Events are append-only.
type FilingEvent struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	DocumentID string    `gorm:"type:uuid;not null;index" json:"document_id"`
	Document   *Document `gorm:"foreignKey:DocumentID" json:"document,omitempty"`

	CourtID            string    `gorm:"size:50;not null" json:"court_id"`
	ConfirmationNumber string    `gorm:"size:50;not null" json:"confirmation_number"`
	FiledAt            time.Time `gorm:"not null" json:"filed_at"`
	Method             string    `gorm:"size:30;not null" json:"method"` // "cmecf_simulated"
}

// BeforeCreate hook to generate UUID
func (e *FilingEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return nil
}
