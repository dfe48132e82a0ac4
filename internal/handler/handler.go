package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dailypulse/newspaper-service/internal/feed"
	"github.com/dailypulse/newspaper-service/internal/middleware"
	"github.com/dailypulse/newspaper-service/internal/service"
	"github.com/dailypulse/newspaper-service/internal/token"
	"github.com/sirupsen/logrus"
)

// LivenessMessage is the body of GET /.
const LivenessMessage = "Newspaper server is running"

type Handler struct {
	svc        *service.Service
	tokens     *token.Manager
	feed       *feed.Builder
	log        *logrus.Logger
	cookieName string
}

func NewHandler(svc *service.Service, tokens *token.Manager, fb *feed.Builder, log *logrus.Logger, cookieName string) *Handler {
	return &Handler{svc: svc, tokens: tokens, feed: fb, log: log, cookieName: cookieName}
}

// Health handles the liveness probe
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(LivenessMessage))
}

var errBadBody = errors.New("invalid request body")

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errBadBody
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps service and store errors to a status. Anything that is not a
// bad request is a store failure.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, errBadBody) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
		return
	}
	h.log.WithField("request_id", middleware.RequestID(r.Context())).Errorf("%s %s: %v", r.Method, r.URL.Path, err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{"message": err.Error()})
}
