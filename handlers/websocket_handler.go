package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/pmsa-qul/artsfest/live"
	"github.com/pmsa-qul/artsfest/services"
)

type WebSocketHandler struct {
	hub            *live.Hub
	resultsService services.ResultsService
	upgrader       websocket.Upgrader
	logger         *slog.Logger
}

// NewWebSocketHandler принимает список разрешённых Origin; "*" или пустой список разрешает всё.
func NewWebSocketHandler(hub *live.Hub, rs services.ResultsService, allowedOrigins []string, logger *slog.Logger) *WebSocketHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &WebSocketHandler{
		hub:            hub,
		resultsService: rs,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
		logger: logger,
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	set := make(map[string]bool, len(allowed))
	for _, o := range allowed {
		if o == "*" {
			return func(r *http.Request) bool { return true }
		}
		set[o] = true
	}
	if len(set) == 0 {
		return func(r *http.Request) bool { return true }
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || set[origin]
	}
}

// ServeWs подключает экран к комнате результатов и сразу отправляет текущее состояние.
// @Summary Живые обновления результатов (WebSocket)
// @Tags tv
// @Success 101 "Switching Protocols"
// @Router /ws/results [get]
func (h *WebSocketHandler) ServeWs(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade сам отвечает клиенту ошибкой.
		h.logger.Warn("failed to upgrade websocket connection", slog.Any("error", err))
		return
	}

	client := &live.Client{
		Hub:  h.hub,
		Conn: conn,
		Send: make(chan []byte, 16),
		Room: live.ResultsRoom,
	}

	if msg, err := h.resultsService.LiveMessage(r.Context()); err != nil {
		h.logger.Error("failed to build initial live snapshot", slog.Any("error", err))
	} else if payload, err := json.Marshal(msg); err == nil {
		client.Send <- payload
	}

	if !h.hub.Join(client) {
		conn.Close()
		return
	}

	go client.WritePump()
	go client.ReadPump()
}
