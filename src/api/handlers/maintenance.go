package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"inventory/src/schemas"
)

func (h *Handler) GetAllMaintenance(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	assetID := r.URL.Query().Get("assetId")
	tickets, err := h.Controller.GetAllMaintenance(ctx, assetID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, tickets, http.StatusOK)
}

func (h *Handler) GetMaintenanceByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	ticket, err := h.Controller.GetMaintenanceByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, ticket, http.StatusOK)
}

func (h *Handler) CreateMaintenance(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req schemas.CreateMaintenanceRequest
	if err := h.decodeBody(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}

	ticket, err := h.Controller.CreateMaintenance(ctx, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, ticket, http.StatusCreated)
}

func (h *Handler) UpdateMaintenance(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req schemas.UpdateMaintenanceRequest
	if err := h.decodeBody(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}

	ticket, err := h.Controller.UpdateMaintenance(ctx, chi.URLParam(r, "id"), &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, ticket, http.StatusOK)
}

func (h *Handler) DeleteMaintenance(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := h.Controller.DeleteMaintenance(ctx, chi.URLParam(r, "id")); err != nil {
		h.HandleErrors(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
