package server

import (
	"encoding/json"
	"net/http"

	"github.com/expenses/snowy/internal/engine"
	"github.com/expenses/snowy/pkg/logger"
)

// DebugHandler предоставляет доступ к внутреннему состоянию движка.
// Читает только опубликованный снимок, живую симуляцию не трогает.
type DebugHandler struct {
	Service *engine.GameService
}

func NewDebugHandler(s *engine.GameService) *DebugHandler {
	return &DebugHandler{Service: s}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/world", h.handleWorld)
	mux.HandleFunc("/debug/entities", h.handleDumpEntities)
	mux.HandleFunc("/debug/visibility", h.handleVisibility)
}

// /debug/world - сводка: размеры, ход, игрок, камера
func (h *DebugHandler) handleWorld(w http.ResponseWriter, r *http.Request) {
	snap := h.Service.Snapshot()

	type WorldSummary struct {
		Width       int     `json:"width"`
		Height      int     `json:"height"`
		Turn        int     `json:"turn"`
		PlayerX     int     `json:"player_x"`
		PlayerY     int     `json:"player_y"`
		Zoom        float32 `json:"zoom"`
		EntityCount int     `json:"entity_count"`
		Subscribers int     `json:"subscribers"`
	}

	writeJSON(w, WorldSummary{
		Width:       snap.Width,
		Height:      snap.Height,
		Turn:        snap.Turn,
		PlayerX:     snap.Player.X,
		PlayerY:     snap.Player.Y,
		Zoom:        snap.Camera.Zoom,
		EntityCount: len(snap.Entities),
		Subscribers: h.Service.Hub.SubscriberCount(),
	})
}

// /debug/entities - дамп всех сущностей, включая те, что игрок не видит
func (h *DebugHandler) handleDumpEntities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.Snapshot().Entities)
}

// /debug/visibility - сетка видимости построчно
func (h *DebugHandler) handleVisibility(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.Snapshot().Visibility)
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	// Разрешаем запросы с любого источника (нужно для локального debug клиента)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Log.WithError(err).Warn("debug: failed to encode response")
	}
}
