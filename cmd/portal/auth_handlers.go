package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/vidros-portal/internal/backend"
	"github.com/MikeMC777/vidros-portal/internal/httpx"
	"github.com/MikeMC777/vidros-portal/internal/pedido"
	"github.com/MikeMC777/vidros-portal/internal/session"
)

type authBackend interface {
	Login(ctx context.Context, in backend.LoginRequest) (session.Identity, string, error)
}

// LoginResponse carries the portal session token.
// swagger:model
type LoginResponse struct {
	Token string           `json:"token"`
	User  *session.Session `json:"user"`
}

// MeResponse describes the caller and what the UI may offer them.
// swagger:model
type MeResponse struct {
	User        *session.Session    `json:"user"`
	Statuses    []pedido.Status     `json:"statuses"`
	UpdateKinds []pedido.UpdateKind `json:"update_kinds"`
}

// loginHandler godoc
// @Summary  Log in and open a portal session
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body backend.LoginRequest true "credentials"
// @Success  200 {object} LoginResponse
// @Failure  401 {object} httpx.HTTPError
// @Router   /api/auth/login [post]
func loginHandler(be authBackend, sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req backend.LoginRequest
		if !bindJSON(c, &req) {
			return
		}
		id, token, err := be.Login(c.Request.Context(), req)
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		s, signed, err := sessions.Issue(id, token)
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, LoginResponse{Token: signed, User: s})
	}
}

// logoutHandler godoc
// @Summary  Close the current session
// @Tags     auth
// @Success  204
// @Security BearerAuth
// @Router   /api/auth/logout [post]
func logoutHandler(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := sessions.Invalidate(c.Request.Context(), mustSession(c)); err != nil {
			httpx.WriteError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// meHandler godoc
// @Summary  Current user
// @Tags     auth
// @Produce  json
// @Success  200 {object} MeResponse
// @Security BearerAuth
// @Router   /api/me [get]
func meHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := mustSession(c)
		kinds := []pedido.UpdateKind{pedido.KindGeneral}
		if s.Internal() {
			kinds = pedido.UpdateKinds()
		}
		c.JSON(http.StatusOK, MeResponse{User: s, Statuses: pedido.Statuses(), UpdateKinds: kinds})
	}
}
