package handlers

import (
	"errors"
	"net/http"

	"court_filing_app_go/config"
	"court_filing_app_go/db"
	"court_filing_app_go/models"
	"court_filing_app_go/services"

	"github.com/labstack/echo/v4"
)

// DocumentHandler serves the document upload/analysis/filing endpoints
type DocumentHandler struct {
	Analyzer *services.Analyzer
	Registry *services.CourtRegistry
	Cfg      *config.Config
}

func NewDocumentHandler(analyzer *services.Analyzer, registry *services.CourtRegistry, cfg *config.Config) *DocumentHandler {
	return &DocumentHandler{Analyzer: analyzer, Registry: registry, Cfg: cfg}
}

// uploadResponse is the POST /documents/upload payload. Warning is set (not
// an error) when classification degraded but the upload itself succeeded.
type uploadResponse struct {
	Document *models.Document               `json:"document"`
	Analysis *models.DocumentAnalysisResult `json:"analysis"`
	Success  bool                           `json:"success"`
	Warning  string                         `json:"warning,omitempty"`
}

// Upload handles POST /documents/upload. The document is always stored and
// returned, even when AI enrichment is unavailable: uploads never fail for
// degraded analysis.
func (h *DocumentHandler) Upload(c echo.Context) error {
	ownerID := c.FormValue("owner_id")
	if ownerID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "owner_id is required")
	}

	file, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}

	courtID := c.FormValue("court_id")
	if courtID != "" {
		if _, err := h.Registry.GetCourt(courtID); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "unknown court_id")
		}
	}

	ctx := c.Request().Context()

	doc, text, err := services.UploadDocument(ctx, db.DB, ownerID, file)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to store document")
	}

	analysis, degraded := h.Analyzer.AnalyzeDocument(ctx, text, file.Filename, courtID)
	if degraded {
		// Classification is advisory: keep the bare upload, flag the gap
		return c.JSON(http.StatusOK, uploadResponse{
			Document: doc,
			Analysis: nil,
			Success:  true,
			Warning:  "Document stored, but automatic analysis is temporarily unavailable. Manual review required.",
		})
	}

	if err := services.ApplyAnalysis(db.DB, doc.ID, analysis); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save analysis")
	}

	doc.Status = models.DocumentStatusAnalyzed
	doc.Analysis = analysis
	doc.DocumentType = analysis.DocType
	doc.IsEmergency = services.IsEmergencyDocumentType(analysis.DocType)

	return c.JSON(http.StatusOK, uploadResponse{
		Document: doc,
		Analysis: analysis,
		Success:  true,
	})
}

// Get handles GET /documents/:id
func (h *DocumentHandler) Get(c echo.Context) error {
	doc, err := services.GetDocument(db.DB, c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrDocumentNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Document not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load document")
	}
	return c.JSON(http.StatusOK, doc)
}

// Download handles GET /documents/:id/download, streaming the original blob
func (h *DocumentHandler) Download(c echo.Context) error {
	doc, err := services.GetDocument(db.DB, c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrDocumentNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Document not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load document")
	}

	reader, contentType, err := services.Storage.Get(c.Request().Context(), doc.StorageKey)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to read document content")
	}
	defer reader.Close()

	c.Response().Header().Set("Content-Disposition", `attachment; filename="`+doc.FileName+`"`)
	return c.Stream(http.StatusOK, contentType, reader)
}

// Delete handles DELETE /documents/:id
func (h *DocumentHandler) Delete(c echo.Context) error {
	if err := services.DeleteDocument(db.DB, c.Param("id")); err != nil {
		if errors.Is(err, services.ErrDocumentNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Document not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete document")
	}
	return c.NoContent(http.StatusNoContent)
}

// fileRequest is the POST /documents/:id/file body
type fileRequest struct {
	CourtID     string `json:"court_id"`
	NotifyEmail string `json:"notify_email"`
}

// File handles POST /documents/:id/file, submitting the document to the
// simulated CM/ECF gateway
func (h *DocumentHandler) File(c echo.Context) error {
	var req fileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.CourtID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "court_id is required")
	}

	event, err := services.FileDocument(c.Request().Context(), db.DB, h.Cfg, h.Registry, c.Param("id"), req.CourtID, req.NotifyEmail)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDocumentNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Document not found")
		case errors.Is(err, services.ErrNotReadyToFile), errors.Is(err, services.ErrStatusRegression):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}

	return c.JSON(http.StatusOK, event)
}
