package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pmsa-qul/artsfest/services"
)

const maxHighlightUploadBytes = 10 << 20

type HighlightHandler struct {
	highlightService services.HighlightService
}

func NewHighlightHandler(hs services.HighlightService) *HighlightHandler {
	return &HighlightHandler{highlightService: hs}
}

// ListHighlights godoc
// @Summary Фото-хайлайты фестиваля
// @Tags highlights
// @Produce json
// @Success 200 {object} map[string]interface{} "highlights"
// @Failure 500 {object} map[string]string "Внутренняя ошибка сервера"
// @Router /highlights [get]
func (h *HighlightHandler) ListHighlights(w http.ResponseWriter, r *http.Request) {
	highlights, err := h.highlightService.List(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"highlights": highlights}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UploadHighlight godoc
// @Summary Загрузить фото-хайлайт
// @Tags highlights
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Изображение (jpeg, png, gif, webp, avif)"
// @Success 201 {object} map[string]interface{} "highlight"
// @Failure 400 {object} map[string]string "Некорректный файл"
// @Failure 503 {object} map[string]string "Хранилище не настроено"
// @Security BearerAuth
// @Router /admin/highlights [post]
func (h *HighlightHandler) UploadHighlight(w http.ResponseWriter, r *http.Request) {
	principal, ok := currentPrincipal(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxHighlightUploadBytes)
	if err := r.ParseMultipartForm(maxHighlightUploadBytes); err != nil {
		badRequestResponse(w, r, fmt.Errorf("failed to parse multipart form: %w", err))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		badRequestResponse(w, r, fmt.Errorf("failed to get image file from form: %w", err))
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		badRequestResponse(w, r, errors.New("content-type header is required for image"))
		return
	}

	highlight, err := h.highlightService.Upload(r.Context(), principal, file, contentType)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"highlight": highlight}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// DeleteHighlight godoc
// @Summary Удалить фото-хайлайт
// @Tags highlights
// @Param key path string true "Ключ объекта"
// @Success 204 "Удалено"
// @Failure 404 {object} map[string]string "Не найдено"
// @Security BearerAuth
// @Router /admin/highlights/{key} [delete]
func (h *HighlightHandler) DeleteHighlight(w http.ResponseWriter, r *http.Request) {
	principal, ok := currentPrincipal(w, r)
	if !ok {
		return
	}

	// ключ содержит "/", поэтому маршрут использует wildcard
	key := chi.URLParam(r, "*")
	if err := h.highlightService.Delete(r.Context(), principal, key); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
