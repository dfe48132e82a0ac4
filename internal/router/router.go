// Package router maps routes to their guard chains and handlers.
package router

import (
	"net/http"

	"github.com/dailypulse/newspaper-service/internal/handler"
	"github.com/dailypulse/newspaper-service/internal/middleware"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// New builds the application's HTTP handler. Guards run per route in the
// order listed; CORS and request logging wrap every route.
func New(h *handler.Handler, g middleware.Guards, origins []string, log *logrus.Logger) http.Handler {
	r := mux.NewRouter()
	route := func(method, path string, fn http.HandlerFunc, guards ...middleware.Guard) {
		r.Handle(path, middleware.Chain(fn, guards...)).Methods(method)
	}
	self := middleware.SelfOnly("email")

	// Public routes
	route(http.MethodGet, "/", h.Health)
	route(http.MethodPost, "/jwt", h.IssueToken)
	route(http.MethodPost, "/logout", h.Logout)
	route(http.MethodGet, "/feed.rss", h.Feed)

	// Users
	route(http.MethodGet, "/users", h.ListUsers, g.Session, g.Admin)
	route(http.MethodPut, "/users/{id}", h.UpdateUserRole, g.Session, g.Admin)
	// TODO: decide whether user deletion should require an admin session; it is open in the deployed API.
	route(http.MethodDelete, "/users/{id}", h.DeleteUser)
	route(http.MethodGet, "/users/admin/{email}", h.CheckAdmin, g.Session, self)
	route(http.MethodGet, "/user/{email}", h.GetUser)
	route(http.MethodPost, "/users", h.CreateUser)

	// Articles
	route(http.MethodGet, "/articles", h.ListArticles, g.Session, g.Admin)
	route(http.MethodGet, "/article/{id}", h.GetArticle)
	route(http.MethodGet, "/approvedArticles", h.ApprovedArticles)
	route(http.MethodGet, "/articlesByView", h.ArticlesByView)
	route(http.MethodGet, "/premiumArticles", h.PremiumArticles, g.Session)
	route(http.MethodGet, "/articleByAuthor/{email}", h.ArticlesByAuthor, g.Session, self)
	route(http.MethodPost, "/articles", h.CreateArticle, g.Session)
	route(http.MethodDelete, "/articles/{id}", h.DeleteArticle, g.Session)
	route(http.MethodPut, "/articles/{id}", h.UpdateArticleStatus, g.Session, g.Admin)
	route(http.MethodPut, "/updateArticle/{id}", h.UpdateArticle, g.Session)

	// Publishers
	route(http.MethodGet, "/publishers", h.ListPublishers)
	route(http.MethodGet, "/publisher/{publisher}", h.GetPublisher, g.Session)

	return middleware.RequestLogger(log)(middleware.CORS(origins)(r))
}
