package ui

import (
	"encoding/base64"
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"ecoscan/domain/audit"
	"ecoscan/internal/errors"
)

// analyzeRequest is the manual-entry analyze payload: pre-extracted label text
type analyzeRequest struct {
	Category    string   `json:"category"`
	Ingredients []string `json:"ingredients"`
	Claims      []string `json:"claims"`
	OriginInfo  string   `json:"origin_info"`
	Barcode     string   `json:"barcode"`
	Language    string   `json:"language"`
}

// analyzeImageRequest carries a base64-encoded label photo
type analyzeImageRequest struct {
	ImageB64 string `json:"image_b64"`
	Language string `json:"language"`
}

// maxScanPageSize caps history page sizes taken from the query string
const maxScanPageSize = 200

// handleAnalyze audits pre-extracted label text
func (a *App) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.ValidationError("invalid request body"))
		return
	}

	label := audit.ExtractedLabel{
		Category:    req.Category,
		Ingredients: req.Ingredients,
		Claims:      req.Claims,
		OriginInfo:  req.OriginInfo,
		Barcode:     req.Barcode,
	}

	report, err := a.audits.AnalyzeLabel(r.Context(), label, req.Language)
	if err != nil {
		writeError(w, http.StatusBadGateway, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// handleAnalyzeImage runs the full pipeline from a label photo
func (a *App) handleAnalyzeImage(w http.ResponseWriter, r *http.Request) {
	var req analyzeImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.ValidationError("invalid request body"))
		return
	}

	imageData, err := base64.StdEncoding.DecodeString(req.ImageB64)
	if err != nil || len(imageData) == 0 {
		writeError(w, http.StatusBadRequest, errors.ValidationError("image_b64 must be non-empty base64"))
		return
	}

	report, err := a.audits.AnalyzeImage(r.Context(), imageData, req.Language)
	if err != nil {
		// Extraction failure is the one user-visible hard error
		status := http.StatusBadGateway
		if errors.GetCode(err) == errors.CodeExtractionFailed {
			status = http.StatusUnprocessableEntity
		}
		writeError(w, status, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// handleListScans returns recent scan history
func (a *App) handleListScans(w http.ResponseWriter, r *http.Request) {
	if a.scans == nil {
		writeError(w, http.StatusServiceUnavailable, errors.New(errors.CodeDatabaseError, "scan history is disabled"))
		return
	}

	limit, offset := pageParams(r)

	records, err := a.scans.List(r.Context(), limit, offset)
	if err != nil {
		log.Printf("[ui] list scans failed: %v", err)
		writeError(w, http.StatusInternalServerError, errors.DatabaseError("could not list scans"))
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// handleGetScan returns one stored report
func (a *App) handleGetScan(w http.ResponseWriter, r *http.Request) {
	if a.scans == nil {
		writeError(w, http.StatusServiceUnavailable, errors.New(errors.CodeDatabaseError, "scan history is disabled"))
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.ValidationError("invalid scan id"))
		return
	}

	record, err := a.scans.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, errors.NotFound("scan"))
		return
	}
	writeJSON(w, http.StatusOK, record)
}

// pageParams reads limit/offset from the query string and clamps them to
// sane bounds; the repository applies its own default when limit is zero.
func pageParams(r *http.Request) (limit, offset int) {
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ = strconv.Atoi(r.URL.Query().Get("offset"))

	if limit < 0 {
		limit = 0
	}
	if limit > maxScanPageSize {
		limit = maxScanPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("[ui] encode response failed: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{
		"code":  errors.GetCode(err),
		"error": err.Error(),
	})
}
