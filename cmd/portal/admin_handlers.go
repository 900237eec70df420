package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/vidros-portal/internal/apperr"
	"github.com/MikeMC777/vidros-portal/internal/backend"
	"github.com/MikeMC777/vidros-portal/internal/httpx"
	"github.com/MikeMC777/vidros-portal/internal/loja"
	"github.com/MikeMC777/vidros-portal/internal/redisx"
	"github.com/MikeMC777/vidros-portal/internal/user"
)

const maxImportBytes = 10 << 20

type statsSource interface {
	GetStats(ctx context.Context) (*backend.Stats, error)
}

// StatsResponse is the admin dashboard payload.
// swagger:model
type StatsResponse struct {
	backend.Stats
	Pending int `json:"pendentes"`
}

// ImportResponse reports a store spreadsheet import.
// swagger:model
type ImportResponse struct {
	Created []loja.Store    `json:"created"`
	Errors  []loja.RowError `json:"errors"`
}

// listStoresHandler godoc
// @Summary  List stores
// @Tags     admin
// @Produce  json
// @Param    active query bool false "only active stores"
// @Success  200 {array} loja.Store
// @Security BearerAuth
// @Router   /api/admin/lojas [get]
func listStoresHandler(repo loja.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		stores, err := repo.List(c.Request.Context())
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		if c.Query("active") == "true" || c.Query("active") == "1" {
			stores = loja.ActiveOnly(stores)
		}
		c.JSON(http.StatusOK, stores)
	}
}

// createStoreHandler godoc
// @Summary  Create a store
// @Tags     admin
// @Accept   json
// @Produce  json
// @Param    body body loja.StoreRequest true "store"
// @Success  201 {object} loja.Store
// @Failure  400 {object} httpx.HTTPError
// @Security BearerAuth
// @Router   /api/admin/lojas [post]
func createStoreHandler(repo loja.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loja.StoreRequest
		if !bindJSON(c, &req) {
			return
		}
		in, err := req.Normalize()
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		s, err := repo.Create(c.Request.Context(), in)
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		c.JSON(http.StatusCreated, s)
	}
}

// updateStoreHandler godoc
// @Summary  Update a store
// @Tags     admin
// @Accept   json
// @Produce  json
// @Param    id   path string            true "store id"
// @Param    body body loja.StoreRequest true "store"
// @Success  200 {object} loja.Store
// @Failure  400 {object} httpx.HTTPError
// @Failure  404 {object} httpx.HTTPError
// @Security BearerAuth
// @Router   /api/admin/lojas/{id} [put]
func updateStoreHandler(repo loja.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loja.StoreRequest
		if !bindJSON(c, &req) {
			return
		}
		in, err := req.Normalize()
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		s, err := repo.Update(c.Request.Context(), pathID(c), in)
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, s)
	}
}

// deleteStoreHandler godoc
// @Summary  Delete a store
// @Tags     admin
// @Param    id path string true "store id"
// @Success  204
// @Failure  400 {object} httpx.HTTPError
// @Security BearerAuth
// @Router   /api/admin/lojas/{id} [delete]
func deleteStoreHandler(repo loja.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := repo.Delete(c.Request.Context(), pathID(c)); err != nil {
			httpx.WriteError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// importStoresHandler godoc
// @Summary  Import stores from an xlsx spreadsheet
// @Tags     admin
// @Accept   multipart/form-data
// @Produce  json
// @Param    file formData file true "xlsx file"
// @Success  200 {object} ImportResponse
// @Failure  400 {object} httpx.HTTPError
// @Security BearerAuth
// @Router   /api/admin/lojas/import [post]
func importStoresHandler(repo loja.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		fh, err := c.FormFile("file")
		if err != nil {
			httpx.WriteError(c, apperr.Invalid("file", "Ficheiro em falta"))
			return
		}
		if fh.Size > maxImportBytes {
			httpx.WriteError(c, apperr.Invalid("file", "Ficheiro demasiado grande"))
			return
		}
		f, err := fh.Open()
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		defer f.Close()

		rows, bad, err := loja.ReadStores(f)
		if err != nil {
			httpx.WriteError(c, apperr.Invalid("file", err.Error()))
			return
		}
		out := ImportResponse{Created: []loja.Store{}, Errors: bad}
		if out.Errors == nil {
			out.Errors = []loja.RowError{}
		}
		for _, row := range rows {
			s, err := repo.Create(c.Request.Context(), row.Store)
			if err != nil {
				// a dead backend fails every row; stop at the first one
				if errors.Is(err, apperr.ErrNetwork) || errors.Is(err, apperr.ErrUnauthorized) {
					httpx.WriteError(c, err)
					return
				}
				out.Errors = append(out.Errors, loja.RowError{Row: row.Row, Message: apperr.Message(err)})
				continue
			}
			out.Created = append(out.Created, *s)
		}
		slog.Info("stores imported", "created", len(out.Created), "rejected", len(out.Errors))
		c.JSON(http.StatusOK, out)
	}
}

// listUsersHandler godoc
// @Summary  List users
// @Tags     admin
// @Produce  json
// @Success  200 {array} user.User
// @Security BearerAuth
// @Router   /api/admin/users [get]
func listUsersHandler(svc *user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := svc.List(c.Request.Context())
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

// createUserHandler godoc
// @Summary  Create a user
// @Tags     admin
// @Accept   json
// @Produce  json
// @Param    body body user.UserRequest true "user"
// @Success  201 {object} user.User
// @Failure  400 {object} httpx.HTTPError
// @Security BearerAuth
// @Router   /api/admin/users [post]
func createUserHandler(svc *user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req user.UserRequest
		if !bindJSON(c, &req) {
			return
		}
		u, err := svc.Create(c.Request.Context(), req)
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		c.JSON(http.StatusCreated, u)
	}
}

// updateUserHandler godoc
// @Summary  Update a user; a blank password keeps the current one
// @Tags     admin
// @Accept   json
// @Produce  json
// @Param    id   path string           true "user id"
// @Param    body body user.UserRequest true "user"
// @Success  200 {object} user.User
// @Failure  400 {object} httpx.HTTPError
// @Security BearerAuth
// @Router   /api/admin/users/{id} [put]
func updateUserHandler(svc *user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req user.UserRequest
		if !bindJSON(c, &req) {
			return
		}
		u, err := svc.Update(c.Request.Context(), pathID(c), req)
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, u)
	}
}

// deleteUserHandler godoc
// @Summary  Delete a user
// @Tags     admin
// @Param    id path string true "user id"
// @Success  204
// @Security BearerAuth
// @Router   /api/admin/users/{id} [delete]
func deleteUserHandler(svc *user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), pathID(c)); err != nil {
			httpx.WriteError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// resetPasswordHandler godoc
// @Summary  Set a new password for a user
// @Tags     admin
// @Accept   json
// @Param    id   path string                    true "user id"
// @Param    body body user.ResetPasswordRequest true "new password"
// @Success  204
// @Failure  400 {object} httpx.HTTPError
// @Security BearerAuth
// @Router   /api/admin/users/{id}/reset-password [post]
func resetPasswordHandler(svc *user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req user.ResetPasswordRequest
		if !bindJSON(c, &req) {
			return
		}
		if err := svc.ResetPassword(c.Request.Context(), pathID(c), req); err != nil {
			httpx.WriteError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// statsHandler godoc
// @Summary  Admin dashboard totals, cached briefly
// @Tags     admin
// @Produce  json
// @Success  200 {object} StatsResponse
// @Security BearerAuth
// @Router   /api/admin/stats [get]
func statsHandler(src statsSource, cache redisx.StatsCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if cache != nil {
			raw, ok, err := cache.Get(ctx)
			if err != nil {
				slog.Warn("stats cache read", "error", err)
			} else if ok {
				c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
				return
			}
		}
		st, err := src.GetStats(ctx)
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		raw, err := json.Marshal(StatsResponse{Stats: *st, Pending: st.Pending()})
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		if cache != nil {
			if err := cache.Put(ctx, raw); err != nil {
				slog.Warn("stats cache write", "error", err)
			}
		}
		c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
	}
}
