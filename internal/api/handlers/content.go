package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/dom/quiz-monsters/internal/domain"
	"github.com/dom/quiz-monsters/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

const maxImportBody = 8 << 20

type ContentHandler struct {
	contentService *service.ContentService
	log            *logrus.Entry
}

func NewContentHandler(contentService *service.ContentService, log *logrus.Logger) *ContentHandler {
	return &ContentHandler{
		contentService: contentService,
		log:            log.WithField("handler", "content"),
	}
}

type ContentsResponse struct {
	Contents []*domain.ContentItem `json:"contents"`
	Total    int                   `json:"total"`
}

type ImportResponse struct {
	Imported int `json:"imported"`
}

// GetAll lists the catalogue, optionally filtered with ?type=.
func (h *ContentHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	var (
		contents []*domain.ContentItem
		err      error
	)
	if t := r.URL.Query().Get("type"); t != "" {
		contents, err = h.contentService.GetContentsByType(r.Context(), domain.ContentType(t))
	} else {
		contents, err = h.contentService.GetAllContents(r.Context())
	}
	if err != nil {
		writeError(w, h.log, "GetAll", err)
		return
	}

	if contents == nil {
		contents = []*domain.ContentItem{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ContentsResponse{Contents: contents, Total: len(contents)})
}

func (h *ContentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	content, err := h.contentService.GetContent(r.Context(), id)
	if err != nil {
		writeError(w, h.log, "Get", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(content)
}

// Import upserts a JSON array of content items.
func (h *ContentHandler) Import(w http.ResponseWriter, r *http.Request) {
	var items []*domain.ContentItem
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxImportBody)).Decode(&items); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	count, err := h.contentService.Import(r.Context(), items)
	if err != nil {
		writeError(w, h.log, "Import", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ImportResponse{Imported: count})
}

// Sync pulls the catalogue from the configured content source.
func (h *ContentHandler) Sync(w http.ResponseWriter, r *http.Request) {
	count, err := h.contentService.SyncFromSource(r.Context())
	if err != nil {
		writeError(w, h.log, "Sync", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ImportResponse{Imported: count})
}
