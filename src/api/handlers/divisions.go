package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"inventory/src/schemas"
)

func (h *Handler) GetAllDivisions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	divisions, err := h.Controller.GetAllDivisions(ctx)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, divisions, http.StatusOK)
}

func (h *Handler) GetDivisionByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	division, err := h.Controller.GetDivisionByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, division, http.StatusOK)
}

func (h *Handler) CreateDivision(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req schemas.CreateDivisionRequest
	if err := h.decodeBody(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}

	division, err := h.Controller.CreateDivision(ctx, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, division, http.StatusCreated)
}

func (h *Handler) UpdateDivision(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req schemas.UpdateDivisionRequest
	if err := h.decodeBody(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}

	division, err := h.Controller.UpdateDivision(ctx, chi.URLParam(r, "id"), &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, division, http.StatusOK)
}

func (h *Handler) DeleteDivision(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := h.Controller.DeleteDivision(ctx, chi.URLParam(r, "id")); err != nil {
		h.HandleErrors(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
