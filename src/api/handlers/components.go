package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"inventory/src/schemas"
)

func (h *Handler) GetAllComponents(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	categoryID := r.URL.Query().Get("categoryId")
	components, err := h.Controller.GetAllComponents(ctx, categoryID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, components, http.StatusOK)
}

func (h *Handler) GetComponentByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	component, err := h.Controller.GetComponentByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, component, http.StatusOK)
}

func (h *Handler) CreateComponent(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req schemas.CreateComponentRequest
	if err := h.decodeBody(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}

	component, err := h.Controller.CreateComponent(ctx, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, component, http.StatusCreated)
}

func (h *Handler) UpdateComponent(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req schemas.UpdateComponentRequest
	if err := h.decodeBody(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}

	component, err := h.Controller.UpdateComponent(ctx, chi.URLParam(r, "id"), &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, component, http.StatusOK)
}

func (h *Handler) DeleteComponent(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := h.Controller.DeleteComponent(ctx, chi.URLParam(r, "id")); err != nil {
		h.HandleErrors(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
