package httpapi

import (
	"net/http"

	"github.com/nathanpradana/sportsdash/internal/infrastructure/account/authgate"
)

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Login")
	defer span.End()

	var req loginRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	session, err := h.accounts.Login(ctx, req.Username, req.Password)
	if err != nil {
		h.logger.WarnContext(ctx, "login failed", "username", req.Username, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, sessionToDTO(session))
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Register")
	defer span.End()

	var req registerRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	session, err := h.accounts.Register(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		h.logger.WarnContext(ctx, "register failed", "username", req.Username, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, sessionToDTO(session))
}

func sessionToDTO(session authgate.Session) sessionDTO {
	return sessionDTO{
		AccessToken: session.AccessToken,
		UserID:      session.Principal.UserID,
		Username:    session.Principal.Username,
		Email:       session.Principal.Email,
	}
}
