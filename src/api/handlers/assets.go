package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"inventory/src/schemas"
)

func (h *Handler) GetAllAssets(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	assets, err := h.Controller.GetAllAssets(ctx)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, assets, http.StatusOK)
}

func (h *Handler) GetAssetByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	asset, err := h.Controller.GetAssetByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, asset, http.StatusOK)
}

func (h *Handler) CreateAsset(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req schemas.CreateAssetRequest
	if err := h.decodeBody(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}

	asset, err := h.Controller.CreateAsset(ctx, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, asset, http.StatusCreated)
}

func (h *Handler) UpdateAsset(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req schemas.UpdateAssetRequest
	if err := h.decodeBody(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}

	asset, err := h.Controller.UpdateAsset(ctx, chi.URLParam(r, "id"), &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, asset, http.StatusOK)
}

func (h *Handler) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := h.Controller.DeleteAsset(ctx, chi.URLParam(r, "id")); err != nil {
		h.HandleErrors(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ExportAssetsCSV(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="assets.csv"`)
	if err := h.Controller.ExportAssetsCSV(ctx, w); err != nil {
		h.HandleErrors(w, err)
		return
	}
}

func (h *Handler) ExportAssetsXLSX(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	buf, err := h.Controller.ExportAssetsXLSX(ctx)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="assets.xlsx"`)
	_, _ = w.Write(buf.Bytes())
}
