package handlers

import (
	"context"
	"image"
	"net/http"
	"time"

	_ "image/jpeg"
	_ "image/png"

	"inventory/src/schemas"
	"inventory/src/utils"
)

// ResolveScan matches a value the client decoded on its own.
func (h *Handler) ResolveScan(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req schemas.ScanRequest
	if err := h.decodeBody(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}
	if req.Value == "" {
		h.HandleErrors(w, utils.UnprocessableEntity("value is required"))
		return
	}

	result := h.Controller.ResolveScan(ctx, req.Value)
	h.respond(w, r, result, http.StatusOK)
}

// ScanFrame decodes an uploaded frame image and, on a hit, resolves the
// value against the asset collection.
func (h *Handler) ScanFrame(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	frame, _, err := image.Decode(r.Body)
	if err != nil {
		h.HandleErrors(w, utils.BadRequest("invalid frame image: "+err.Error()))
		return
	}

	value, ok := h.Controller.DecodeFrame(ctx, frame)
	if !ok {
		utils.LoggerFromContext(ctx).Debug("no symbol found in uploaded frame")
		h.respond(w, r, map[string]bool{"decoded": false}, http.StatusOK)
		return
	}

	result := h.Controller.ResolveScan(ctx, value)
	h.respond(w, r, result, http.StatusOK)
}

func (h *Handler) StartScanner(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := h.Controller.OpenScanner(ctx); err != nil {
		h.HandleErrors(w, utils.Conflict(err.Error()))
		return
	}

	h.respond(w, r, map[string]string{"state": string(h.Controller.ScannerState())}, http.StatusOK)
}

func (h *Handler) StopScanner(w http.ResponseWriter, r *http.Request) {
	h.Controller.CloseScanner()
	h.respond(w, r, map[string]string{"state": string(h.Controller.ScannerState())}, http.StatusOK)
}

func (h *Handler) GetScannerState(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, map[string]string{"state": string(h.Controller.ScannerState())}, http.StatusOK)
}
