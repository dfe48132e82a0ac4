package handler

import (
	"net/http"

	"github.com/dailypulse/newspaper-service/internal/feed"
	"github.com/gorilla/mux"
)

// ListPublishers handles GET /publishers
func (h *Handler) ListPublishers(w http.ResponseWriter, r *http.Request) {
	publishers, err := h.svc.ListPublishers(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, publishers)
}

// GetPublisher handles GET /publisher/{publisher}
func (h *Handler) GetPublisher(w http.ResponseWriter, r *http.Request) {
	publisher, err := h.svc.GetPublisher(r.Context(), mux.Vars(r)["publisher"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, publisher)
}

// Feed handles GET /feed.rss
func (h *Handler) Feed(w http.ResponseWriter, r *http.Request) {
	articles, err := h.svc.ApprovedArticles(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	body, err := h.feed.Render(articles)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", feed.ContentType)
	w.Write(body)
}
