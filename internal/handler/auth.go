package handler

import (
	"net/http"
)

type tokenRequest struct {
	Email string `json:"email"`
}

// IssueToken signs a session token for the posted email and sets it as the auth cookie
func (h *Handler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	raw, err := h.tokens.Issue(req.Email)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	http.SetCookie(w, h.cookie(raw, int(h.tokens.TTL().Seconds())))
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Logout clears the auth cookie
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.cookie("", -1))
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// cookie builds the auth cookie. SameSite=None requires Secure, and the front
// end is served from a different site.
func (h *Handler) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     h.cookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
}
