package handlers

import (
	"net/http"

	"github.com/pmsa-qul/artsfest/models"
	"github.com/pmsa-qul/artsfest/services"
)

type AdminHandler struct {
	entryService services.EntryService
}

func NewAdminHandler(es services.EntryService) *AdminHandler {
	return &AdminHandler{entryService: es}
}

// ListEvents godoc
// @Summary Конкурсы для ввода результатов
// @Description Каждый конкурс с флагом locked и занятыми местами.
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{} "events"
// @Failure 401 {object} map[string]string "Неавторизован"
// @Failure 403 {object} map[string]string "Нет прав"
// @Security BearerAuth
// @Router /admin/events [get]
func (h *AdminHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	principal, ok := currentPrincipal(w, r)
	if !ok {
		return
	}

	events, err := h.entryService.ListEntryEvents(r.Context(), principal)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"events": events}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// SearchStudents godoc
// @Summary Поиск студента по имени или номеру
// @Tags admin
// @Produce json
// @Param q query string true "Часть имени или номер участника"
// @Param limit query int false "Максимум результатов (по умолчанию 10)"
// @Success 200 {object} map[string]interface{} "students"
// @Failure 400 {object} map[string]string "Некорректный параметр"
// @Security BearerAuth
// @Router /admin/students/search [get]
func (h *AdminHandler) SearchStudents(w http.ResponseWriter, r *http.Request) {
	principal, ok := currentPrincipal(w, r)
	if !ok {
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	n := 0
	if limit != nil {
		n = *limit
	}

	matches, err := h.entryService.SearchStudents(r.Context(), principal, r.URL.Query().Get("q"), n)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"students": matches}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// PreviewPoints godoc
// @Summary Предпросмотр очков
// @Tags admin
// @Produce json
// @Param category query string true "Категория оценивания (A, B, C)"
// @Param position query int false "Место (1-3)"
// @Param grade query string false "Оценка (A, B, C, None)"
// @Success 200 {object} services.PointsPreview
// @Failure 400 {object} map[string]string "Некорректный параметр"
// @Security BearerAuth
// @Router /admin/points [get]
func (h *AdminHandler) PreviewPoints(w http.ResponseWriter, r *http.Request) {
	position, err := queryInt(r, "position")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	// Категорию и оценку нормализует сервис.
	category := models.GradingCategory(r.URL.Query().Get("category"))
	grade := models.Grade(r.URL.Query().Get("grade"))

	preview := h.entryService.PreviewPoints(category, position, grade)
	if err := writeJSON(w, http.StatusOK, preview, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// SubmitResults godoc
// @Summary Опубликовать результаты конкурса
// @Description Все победители конкурса записываются одной транзакцией. Повторный ввод для конкурса с опубликованными местами отклоняется.
// @Tags admin
// @Accept json
// @Produce json
// @Param body body services.SubmitResultsInput true "Конкурс и победители"
// @Success 201 {object} map[string]interface{} "results"
// @Failure 400 {object} map[string]string "Некорректный запрос"
// @Failure 404 {object} map[string]string "Конкурс не найден"
// @Failure 409 {object} map[string]string "Конкурс уже заблокирован"
// @Failure 422 {object} map[string]string "Ошибка валидации"
// @Security BearerAuth
// @Router /admin/results [post]
func (h *AdminHandler) SubmitResults(w http.ResponseWriter, r *http.Request) {
	principal, ok := currentPrincipal(w, r)
	if !ok {
		return
	}

	var input services.SubmitResultsInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	results, err := h.entryService.SubmitResults(r.Context(), principal, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"results": results}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
