package handlers

import "net/http"

func (h *Handler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.Controller.GetNotices(), http.StatusOK)
}

func (h *Handler) GetHighlights(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.Controller.GetHighlights(), http.StatusOK)
}
