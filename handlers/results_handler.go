package handlers

import (
	"net/http"

	"github.com/pmsa-qul/artsfest/models"
	"github.com/pmsa-qul/artsfest/services"
)

type ResultsHandler struct {
	resultsService services.ResultsService
}

func NewResultsHandler(rs services.ResultsService) *ResultsHandler {
	return &ResultsHandler{resultsService: rs}
}

// ListTeams godoc
// @Summary Список команд с цветами
// @Tags results
// @Produce json
// @Success 200 {object} map[string]interface{} "teams"
// @Failure 500 {object} map[string]string "Внутренняя ошибка сервера"
// @Router /teams [get]
func (h *ResultsHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.resultsService.Teams(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"teams": teams}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetStandings godoc
// @Summary Общий зачёт команд
// @Description Итоги по опубликованным результатам с разбивкой по категориям.
// @Tags results
// @Produce json
// @Success 200 {object} services.StandingsView
// @Failure 500 {object} map[string]string "Внутренняя ошибка сервера"
// @Router /results/standings [get]
func (h *ResultsHandler) GetStandings(w http.ResponseWriter, r *http.Request) {
	view, err := h.resultsService.Standings(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, view, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListEventCards godoc
// @Summary Карточки конкурсов с победителями
// @Tags results
// @Produce json
// @Param category query string false "Категория (Sub-Junior, Junior, Senior, General)"
// @Success 200 {object} services.EventCardsView
// @Failure 500 {object} map[string]string "Внутренняя ошибка сервера"
// @Router /results/events [get]
func (h *ResultsHandler) ListEventCards(w http.ResponseWriter, r *http.Request) {
	view, err := h.resultsService.EventCards(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, view, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListCategories godoc
// @Summary Канонические категории
// @Tags results
// @Produce json
// @Success 200 {object} map[string]interface{} "categories"
// @Router /categories [get]
func (h *ResultsHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, jsonResponse{"categories": models.Categories}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetTVFeed godoc
// @Summary Данные для экрана TV
// @Description Карточки (до трёх победителей), зачёт, пачка хайлайтов и бегущая строка.
// @Tags tv
// @Produce json
// @Param batch query int false "Номер пачки хайлайтов"
// @Success 200 {object} models.TVFeed
// @Failure 400 {object} map[string]string "Некорректный параметр"
// @Failure 500 {object} map[string]string "Внутренняя ошибка сервера"
// @Router /tv/feed [get]
func (h *ResultsHandler) GetTVFeed(w http.ResponseWriter, r *http.Request) {
	batch, err := queryInt(r, "batch")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	n := 0
	if batch != nil {
		n = *batch
	}

	feed, err := h.resultsService.TVFeed(r.Context(), n)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, feed, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
