package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"strings"
	"time"

	"court_filing_app_go/config"
	"court_filing_app_go/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrDocumentNotFound indicates the document id does not exist
	ErrDocumentNotFound = errors.New("document not found")
	// ErrStatusRegression indicates an attempted backward lifecycle transition
	ErrStatusRegression = errors.New("document status cannot move backwards")
	// ErrNotReadyToFile indicates the document has not been analyzed yet
	ErrNotReadyToFile = errors.New("document must be analyzed before filing")
)

// UploadDocument stores the raw file, extracts best-effort text and creates
// the document row with status "uploaded". Returns the created document and
// the plaintext extracted text (the stored column may be encrypted).
// Extraction degradation never fails the upload.
func UploadDocument(ctx context.Context, db *gorm.DB, ownerID string, file *multipart.FileHeader) (*models.Document, string, error) {
	src, err := file.Open()
	if err != nil {
		return nil, "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read upload: %w", err)
	}

	mimeType := file.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	text := ExtractText(file.Filename, mimeType, data)

	doc := &models.Document{
		ID:       uuid.New().String(),
		OwnerID:  ownerID,
		FileName: file.Filename,
		MimeType: mimeType,
		ByteSize: int64(len(data)),
		Status:   models.DocumentStatusUploaded,
	}

	stored, err := Cipher.EncryptField(doc.ID, text)
	if err != nil {
		return nil, "", fmt.Errorf("failed to encrypt extracted text: %w", err)
	}
	doc.ExtractedText = stored

	key := GenerateDocumentKey(ownerID, file.Filename)
	if _, err := Storage.UploadReader(ctx, bytes.NewReader(data), key, mimeType, int64(len(data))); err != nil {
		return nil, "", fmt.Errorf("failed to store document: %w", err)
	}
	doc.StorageKey = key

	if err := db.Create(doc).Error; err != nil {
		// Best-effort cleanup of the orphaned blob
		if delErr := Storage.Delete(context.Background(), key); delErr != nil {
			log.Printf("[WARNING] Failed to clean up blob %s after create error: %v", key, delErr)
		}
		return nil, "", fmt.Errorf("failed to create document record: %w", err)
	}

	return doc, text, nil
}

// GetDocument loads a document and decrypts its extracted text
func GetDocument(db *gorm.DB, documentID string) (*models.Document, error) {
	var doc models.Document
	if err := db.First(&doc, "id = ?", documentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to load document: %w", err)
	}

	text, err := Cipher.DecryptField(doc.ID, doc.ExtractedText)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt extracted text: %w", err)
	}
	doc.ExtractedText = text

	return &doc, nil
}

// ApplyAnalysis attaches an analysis to a document and advances its status to
// "analyzed" in one atomic update: no reader ever observes status "analyzed"
// with a nil analysis. Re-analysis of an already analyzed document is
// last-writer-wins; documents further along the lifecycle are not touched.
func ApplyAnalysis(db *gorm.DB, documentID string, analysis *models.DocumentAnalysisResult) error {
	if analysis == nil {
		return errors.New("analysis must not be nil")
	}

	update := models.Document{
		Status:       models.DocumentStatusAnalyzed,
		Analysis:     analysis,
		DocumentType: analysis.DocType,
		IsEmergency:  IsEmergencyDocumentType(analysis.DocType),
	}

	result := db.Model(&models.Document{}).
		Where("id = ? AND status IN ?", documentID,
			[]models.DocumentStatus{models.DocumentStatusUploaded, models.DocumentStatusAnalyzed}).
		Select("status", "analysis", "document_type", "is_emergency").
		Updates(update)
	if result.Error != nil {
		return fmt.Errorf("failed to apply analysis: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		var count int64
		db.Model(&models.Document{}).Where("id = ?", documentID).Count(&count)
		if count == 0 {
			return ErrDocumentNotFound
		}
		// Document is already validated or filed
		return ErrStatusRegression
	}

	return nil
}

// AdvanceStatus moves a document forward in its lifecycle. Backward
// transitions are rejected. The update is guarded by the current status so
// concurrent advances cannot interleave.
func AdvanceStatus(db *gorm.DB, documentID string, target models.DocumentStatus) error {
	var doc models.Document
	if err := db.First(&doc, "id = ?", documentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDocumentNotFound
		}
		return fmt.Errorf("failed to load document: %w", err)
	}

	if !doc.Status.CanTransitionTo(target) {
		return fmt.Errorf("%w: %s -> %s", ErrStatusRegression, doc.Status, target)
	}

	result := db.Model(&models.Document{}).
		Where("id = ? AND status = ?", documentID, doc.Status).
		Update("status", target)
	if result.Error != nil {
		return fmt.Errorf("failed to update status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		// Lost the race with a concurrent transition
		return fmt.Errorf("%w: concurrent status change on %s", ErrStatusRegression, documentID)
	}

	return nil
}

// FileDocument submits an analyzed document to the simulated CM/ECF gateway:
// records a filing event, advances the status to "filed" and sends a
// best-effort confirmation email.
func FileDocument(ctx context.Context, db *gorm.DB, cfg *config.Config, registry *CourtRegistry, documentID string, courtID string, notifyEmail string) (*models.FilingEvent, error) {
	doc, err := GetDocument(db, documentID)
	if err != nil {
		return nil, err
	}

	if doc.Status != models.DocumentStatusAnalyzed && doc.Status != models.DocumentStatusValidated {
		if doc.Status == models.DocumentStatusFiled {
			return nil, fmt.Errorf("%w: already filed", ErrStatusRegression)
		}
		return nil, ErrNotReadyToFile
	}

	court, err := registry.GetCourt(courtID)
	if err != nil {
		return nil, err
	}

	event := &models.FilingEvent{
		DocumentID:         doc.ID,
		CourtID:            court.ID,
		ConfirmationNumber: generateConfirmationNumber(),
		FiledAt:            time.Now().UTC(),
		Method:             "cmecf_simulated",
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(event).Error; err != nil {
			return fmt.Errorf("failed to record filing event: %w", err)
		}
		result := tx.Model(&models.Document{}).
			Where("id = ? AND status = ?", doc.ID, doc.Status).
			Update("status", models.DocumentStatusFiled)
		if result.Error != nil {
			return fmt.Errorf("failed to update status: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: concurrent status change on %s", ErrStatusRegression, doc.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if notifyEmail != "" {
		if err := SendFilingConfirmation(cfg, notifyEmail, doc, court, event); err != nil {
			log.Printf("[WARNING] Failed to send filing confirmation for %s: %v", doc.ID, err)
		}
	}

	return event, nil
}

// DeleteDocument removes a document and its stored blob. Deletion is always
// explicit; nothing deletes documents automatically.
func DeleteDocument(db *gorm.DB, documentID string) error {
	var doc models.Document
	if err := db.First(&doc, "id = ?", documentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDocumentNotFound
		}
		return fmt.Errorf("failed to load document: %w", err)
	}

	if doc.StorageKey != "" {
		// Use background context for deletion as this is a cleanup task
		if err := Storage.Delete(context.Background(), doc.StorageKey); err != nil {
			log.Printf("[WARNING] Failed to delete blob %s: %v", doc.StorageKey, err)
			// Continue with the row deletion even if blob deletion fails
		}
	}

	if err := db.Delete(&doc).Error; err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	log.Printf("Document %s deleted", documentID)
	return nil
}

func generateConfirmationNumber() string {
	return fmt.Sprintf("MAD-%d-%s", time.Now().Year(),
		strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:10]))
}
