package handlers

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"court_filing_app_go/config"
	"court_filing_app_go/db"
	"court_filing_app_go/models"
	"court_filing_app_go/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	// Unique shared memory name to isolate tests
	dbName := "mem_" + uuid.New().String()
	testDB, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared&_busy_timeout=5000"), &gorm.Config{})
	assert.NoError(t, err)

	err = testDB.AutoMigrate(
		&models.Document{},
		&models.FilingEvent{},
		&models.FilingTemplate{},
		&models.LegalAidOrganization{},
	)
	assert.NoError(t, err)

	// Set globals the handlers read
	db.DB = testDB
	services.Storage = services.NewLocalStorage(t.TempDir())
	services.Cipher = nil

	return testDB
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return e, c, rec
}

// setupMultipartEcho builds an echo context carrying a multipart form with the
// given fields and one file part
func setupMultipartEcho(t *testing.T, path string, fields map[string]string, fileField, filename string, content []byte) (echo.Context, *httptest.ResponseRecorder) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		assert.NoError(t, writer.WriteField(key, value))
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, filename)
		assert.NoError(t, err)
		_, err = part.Write(content)
		assert.NoError(t, err)
	}
	assert.NoError(t, writer.Close())

	e := echo.New()
	req := httptest.NewRequest("POST", path, body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func testConfig() *config.Config {
	return &config.Config{
		Environment:         "test",
		DefaultCourtID:      "ma-fed-district",
		DefaultJurisdiction: "Massachusetts",
		EmailTestMode:       true,
	}
}

// stubClassifier returns a canned classification or error
type stubClassifier struct {
	out *services.ClassifierOutput
	err error
}

func (s *stubClassifier) Classify(_ context.Context, _ string, _ string, _ string) (*services.ClassifierOutput, error) {
	return s.out, s.err
}

func stringToPtr(s string) *string {
	return &s
}

func createStoredDocument(t *testing.T, testDB *gorm.DB, status models.DocumentStatus, text string) *models.Document {
	doc := &models.Document{
		OwnerID:       uuid.New().String(),
		FileName:      "motion.txt",
		MimeType:      "text/plain",
		ByteSize:      int64(len(text)),
		StorageKey:    "owners/test/documents/" + uuid.New().String() + ".txt",
		ExtractedText: text,
		Status:        status,
	}
	if status != models.DocumentStatusUploaded {
		doc.Analysis = &models.DocumentAnalysisResult{DocType: "Motion"}
		doc.DocumentType = "Motion"
	}
	assert.NoError(t, testDB.Create(doc).Error)
	return doc
}
