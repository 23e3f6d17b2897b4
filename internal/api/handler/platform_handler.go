package handler

import (
	"encoding/json"
	"net/http"
	"solvegrid/internal/api/middleware"
	"solvegrid/internal/app/service"
	"solvegrid/internal/common"

	"github.com/go-chi/chi/v5"
)

type PlatformHandler struct {
	platformService *service.PlatformService
}

func NewPlatformHandler(ps *service.PlatformService) *PlatformHandler {
	return &PlatformHandler{platformService: ps}
}

func (h *PlatformHandler) RegisterRoutes(r chi.Router) {
	r.Use(middleware.Authenticator)
	r.Put("/", h.connect)
	r.Get("/", h.list)
	r.Delete("/{platform}", h.disconnect)
}

func (h *PlatformHandler) connect(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req service.ConnectPlatformRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	conn, err := h.platformService.Connect(r.Context(), userID, req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, conn)
}

func (h *PlatformHandler) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	conns, err := h.platformService.List(r.Context(), userID)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, conns)
}

func (h *PlatformHandler) disconnect(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	platform := chi.URLParam(r, "platform")
	if err := h.platformService.Disconnect(r.Context(), userID, platform); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "disconnected"})
}
