package handler

import (
	"net/http"

	"github.com/dailypulse/newspaper-service/internal/models"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type statusRequest struct {
	Status string `json:"status"`
}

// ListArticles handles GET /articles
func (h *Handler) ListArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := h.svc.ListArticles(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, articles)
}

// GetArticle handles GET /article/{id}
func (h *Handler) GetArticle(w http.ResponseWriter, r *http.Request) {
	article, err := h.svc.GetArticle(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, article)
}

// ApprovedArticles handles GET /approvedArticles
func (h *Handler) ApprovedArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := h.svc.ApprovedArticles(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, articles)
}

// ArticlesByView handles GET /articlesByView
func (h *Handler) ArticlesByView(w http.ResponseWriter, r *http.Request) {
	articles, err := h.svc.MostViewedArticles(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, articles)
}

// PremiumArticles handles GET /premiumArticles
func (h *Handler) PremiumArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := h.svc.PremiumArticles(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, articles)
}

// ArticlesByAuthor handles GET /articleByAuthor/{email}
func (h *Handler) ArticlesByAuthor(w http.ResponseWriter, r *http.Request) {
	articles, err := h.svc.ArticlesByAuthor(r.Context(), mux.Vars(r)["email"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, articles)
}

// CreateArticle handles POST /articles
func (h *Handler) CreateArticle(w http.ResponseWriter, r *http.Request) {
	var article models.Article
	if err := decode(r, &article); err != nil {
		h.writeError(w, r, err)
		return
	}
	article.ID = primitive.NilObjectID
	res, err := h.svc.CreateArticle(r.Context(), &article)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// DeleteArticle handles DELETE /articles/{id}
func (h *Handler) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.DeleteArticle(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// UpdateArticleStatus handles PUT /articles/{id}
func (h *Handler) UpdateArticleStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	res, err := h.svc.UpdateArticleStatus(r.Context(), mux.Vars(r)["id"], req.Status)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// UpdateArticle handles PUT /updateArticle/{id}
func (h *Handler) UpdateArticle(w http.ResponseWriter, r *http.Request) {
	var content models.ArticleContent
	if err := decode(r, &content); err != nil {
		h.writeError(w, r, err)
		return
	}
	res, err := h.svc.UpdateArticleContent(r.Context(), mux.Vars(r)["id"], content)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
