package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"inventory/src/barcode"
	"inventory/src/utils"
)

func parseSymbology(r *http.Request) (barcode.Symbology, error) {
	switch value := r.URL.Query().Get("symbology"); value {
	case "", string(barcode.SymbologyBarcode):
		return barcode.SymbologyBarcode, nil
	case string(barcode.SymbologyQR):
		return barcode.SymbologyQR, nil
	default:
		return "", utils.BadRequest("unknown symbology: " + value)
	}
}

// GetAssetCode streams the rendered symbol as a downloadable PNG.
func (h *Handler) GetAssetCode(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	symbology, err := parseSymbology(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	name, data, err := h.Controller.RenderAssetCode(ctx, chi.URLParam(r, "id"), symbology)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	_, _ = w.Write(data)
}

// GetAssetCodePrint serves the print-formatted HTML page for one symbol.
func (h *Handler) GetAssetCodePrint(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	symbology, err := parseSymbology(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	html, err := h.Controller.RenderAssetCodePrint(ctx, chi.URLParam(r, "id"), symbology)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(html))
}

func (h *Handler) GetAssetCodePrintPDF(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	symbology, err := parseSymbology(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	buf, err := h.Controller.RenderAssetCodePrintPDF(ctx, chi.URLParam(r, "id"), symbology)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="code.pdf"`)
	_, _ = w.Write(buf.Bytes())
}
