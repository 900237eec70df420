package main

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/vidros-portal/internal/apperr"
	"github.com/MikeMC777/vidros-portal/internal/httpx"
	"github.com/MikeMC777/vidros-portal/internal/pedido"
)

// orderBackend is the part of the backend client the order routes use.
type orderBackend interface {
	ListOrders(ctx context.Context, status string) ([]pedido.Order, error)
	GetOrder(ctx context.Context, id pedido.ID) (*pedido.Order, error)
	CreateOrder(ctx context.Context, in pedido.NewOrder) (*pedido.Order, error)
	UpdateOrder(ctx context.Context, id pedido.ID, patch pedido.OrderPatch) error
	CancelOrder(ctx context.Context, id pedido.ID) error
	AddUpdate(ctx context.Context, id pedido.ID, in pedido.NewUpdate) error
	ListUpdates(ctx context.Context, id pedido.ID) ([]pedido.Update, error)
	AddPhoto(ctx context.Context, id pedido.ID, photoURL string) error
}

// ListResponse is the order list page payload.
// swagger:model
type ListResponse struct {
	// status filter applied, empty for all but cancelled
	Status string `json:"status,omitempty"`
	// search term applied
	Q string `json:"q,omitempty"`
	// orders visible to the caller before filtering
	Total int `json:"total"`
	// orders after filtering
	Shown   int                `json:"shown"`
	Items   []pedido.OrderView `json:"items"`
	Summary pedido.Summary     `json:"summary"`
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httpx.WriteError(c, apperr.Invalid("", "invalid json"))
		return false
	}
	return true
}

func pathID(c *gin.Context) pedido.ID {
	return pedido.ID(strings.TrimSpace(c.Param("id")))
}

// listOrdersHandler godoc
// @Summary  List orders visible to the caller
// @Tags     pedidos
// @Produce  json
// @Param    status query string false "exact status, or todos"
// @Param    q      query string false "search term"
// @Success  200 {object} ListResponse
// @Failure  400 {object} httpx.HTTPError
// @Security BearerAuth
// @Router   /api/pedidos [get]
func listOrdersHandler(be orderBackend) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := mustSession(c)
		f, err := pedido.ParseFilter(c.Request.URL.Query())
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		// Always fetch everything: the badges count the whole list and the
		// cancelled orders are hidden here, not by the backend.
		orders, err := be.ListOrders(c.Request.Context(), "")
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		views := pedido.ProjectAll(orders, s.Role)
		items := pedido.ApplyFilters(views, f, s.Role)
		c.JSON(http.StatusOK, ListResponse{
			Status:  f.StatusParam(),
			Q:       strings.TrimSpace(f.Search),
			Total:   len(views),
			Shown:   len(items),
			Items:   items,
			Summary: pedido.Summarize(views),
		})
	}
}

// orderSummaryHandler godoc
// @Summary  Per-status counts and unseen activity badges
// @Tags     pedidos
// @Produce  json
// @Success  200 {object} pedido.Summary
// @Security BearerAuth
// @Router   /api/pedidos/summary [get]
func orderSummaryHandler(be orderBackend) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := mustSession(c)
		orders, err := be.ListOrders(c.Request.Context(), "")
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, pedido.Summarize(pedido.ProjectAll(orders, s.Role)))
	}
}

// glassTypesHandler godoc
// @Summary  Glass type catalogue of the new-order form
// @Tags     pedidos
// @Produce  json
// @Success  200 {object} map[string][]string
// @Security BearerAuth
// @Router   /api/pedidos/glass-types [get]
func glassTypesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"items": pedido.GlassTypes()})
	}
}

// getOrderHandler godoc
// @Summary  Order detail for the caller's role
// @Tags     pedidos
// @Produce  json
// @Param    id path string true "order id"
// @Success  200 {object} pedido.DetailView
// @Failure  404 {object} httpx.HTTPError
// @Security BearerAuth
// @Router   /api/pedidos/{id} [get]
func getOrderHandler(be orderBackend) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := mustSession(c)
		o, err := be.GetOrder(c.Request.Context(), pathID(c))
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		if !o.Status.Valid() {
			slog.Warn("order with unknown status", "order", string(o.ID), "status", string(o.Status))
		}
		c.JSON(http.StatusOK, pedido.Detail(*o, s.Role))
	}
}

// createOrderHandler godoc
// @Summary  Create an order (store users)
// @Tags     pedidos
// @Accept   json
// @Produce  json
// @Param    body body pedido.CreateOrderRequest true "new order"
// @Success  201 {object} pedido.DetailView
// @Failure  400 {object} httpx.HTTPError
// @Security BearerAuth
// @Router   /api/pedidos [post]
func createOrderHandler(be orderBackend, ev activityEmitter, now func() time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := mustSession(c)
		var req pedido.CreateOrderRequest
		if !bindJSON(c, &req) {
			return
		}
		in, err := req.Normalize(now())
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		o, err := be.CreateOrder(c.Request.Context(), in)
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		if o.Status == "" {
			o.Status = pedido.InitialStatus
		}
		p := payloadFor(o)
		p.From = ""
		ev.emit(c, pedido.EventOrderCreated, p)
		c.JSON(http.StatusCreated, pedido.Detail(*o, s.Role))
	}
}

// saveOrderHandler godoc
// @Summary  Save status, value, cost and supplier in one call (department)
// @Tags     pedidos
// @Accept   json
// @Produce  json
// @Param    id   path string                  true "order id"
// @Param    body body pedido.SaveOrderRequest true "fields to change"
// @Success  200 {object} pedido.DetailView
// @Failure  400 {object} httpx.HTTPError
// @Failure  403 {object} httpx.HTTPError
// @Failure  409 {object} httpx.HTTPError
// @Security BearerAuth
// @Router   /api/pedidos/{id} [put]
func saveOrderHandler(be orderBackend, ev activityEmitter) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := mustSession(c)
		if !s.Internal() {
			httpx.WriteError(c, apperr.ErrForbidden)
			return
		}
		var req pedido.SaveOrderRequest
		if !bindJSON(c, &req) {
			return
		}
		patch, err := req.Normalize()
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		ctx := c.Request.Context()
		id := pathID(c)
		cur, err := be.GetOrder(ctx, id)
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		if patch.Status.Set {
			if err := pedido.CheckTransition(s.Role, cur.Status, patch.Status.Value); err != nil {
				httpx.WriteError(c, err)
				return
			}
		}
		if err := be.UpdateOrder(ctx, id, patch); err != nil {
			httpx.WriteError(c, err)
			return
		}
		o, err := be.GetOrder(ctx, id)
		if err != nil {
			httpx.WriteError(c, err)
			return
		}

		if want := patch.Apply(*cur); want.Status != o.Status {
			slog.Warn("order status differs from saved value",
				"order", string(id), "want", string(want.Status), "got", string(o.Status))
		}

		p := payloadFor(o)
		p.From = cur.Status
		ev.emit(c, pedido.EventOrderSaved, p)
		if cur.Status != o.Status {
			ev.emit(c, pedido.EventStatusChanged, p)
		}
		c.JSON(http.StatusOK, pedido.Detail(*o, s.Role))
	}
}

// cancelOrderHandler godoc
// @Summary  Cancel an order, irreversible
// @Tags     pedidos
// @Accept   json
// @Produce  json
// @Param    id   path string               true "order id"
// @Param    body body pedido.CancelRequest true "confirmation"
// @Success  200 {object} pedido.DetailView
// @Failure  400 {object} httpx.HTTPError
// @Failure  409 {object} httpx.HTTPError
// @Security BearerAuth
// @Router   /api/pedidos/{id}/cancel [post]
func cancelOrderHandler(be orderBackend, ev activityEmitter) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := mustSession(c)
		var req pedido.CancelRequest
		if !bindJSON(c, &req) {
			return
		}
		if err := req.Check(); err != nil {
			httpx.WriteError(c, err)
			return
		}
		ctx := c.Request.Context()
		id := pathID(c)
		cur, err := be.GetOrder(ctx, id)
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		if err := pedido.CheckCancel(s.Role, cur.Status); err != nil {
			httpx.WriteError(c, err)
			return
		}
		if err := be.CancelOrder(ctx, id); err != nil {
			httpx.WriteError(c, err)
			return
		}
		o, err := be.GetOrder(ctx, id)
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		p := payloadFor(o)
		p.From = cur.Status
		ev.emit(c, pedido.EventOrderCancelled, p)
		c.JSON(http.StatusOK, pedido.Detail(*o, s.Role))
	}
}

// listUpdatesHandler godoc
// @Summary  Updates of an order visible to the caller
// @Tags     pedidos
// @Produce  json
// @Param    id path string true "order id"
// @Success  200 {array} pedido.Update
// @Security BearerAuth
// @Router   /api/pedidos/{id}/updates [get]
func listUpdatesHandler(be orderBackend) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := mustSession(c)
		updates, err := be.ListUpdates(c.Request.Context(), pathID(c))
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, pedido.VisibleUpdates(updates, s.Role))
	}
}

// addUpdateHandler godoc
// @Summary  Append an update (store reply or department note)
// @Tags     pedidos
// @Accept   json
// @Produce  json
// @Param    id   path string                  true "order id"
// @Param    body body pedido.AddUpdateRequest true "update"
// @Success  201 {object} pedido.DetailView
// @Failure  400 {object} httpx.HTTPError
// @Failure  409 {object} httpx.HTTPError
// @Security BearerAuth
// @Router   /api/pedidos/{id}/updates [post]
func addUpdateHandler(be orderBackend, ev activityEmitter) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := mustSession(c)
		var req pedido.AddUpdateRequest
		if !bindJSON(c, &req) {
			return
		}
		in, err := req.Normalize(s.Role)
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		ctx := c.Request.Context()
		id := pathID(c)
		cur, err := be.GetOrder(ctx, id)
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		if !pedido.CapabilitiesFor(s.Role, cur.Status).CanReply {
			httpx.WriteError(c, apperr.ErrInvalidTransition)
			return
		}
		if err := be.AddUpdate(ctx, id, in); err != nil {
			httpx.WriteError(c, err)
			return
		}
		o, err := be.GetOrder(ctx, id)
		if err != nil {
			httpx.WriteError(c, err)
			return
		}

		p := payloadFor(o)
		p.From = cur.Status
		p.UpdateKind = in.Kind
		p.VisibleToStore = in.VisibleToStore
		ev.emit(c, pedido.EventUpdateAdded, p)
		if want, moves := pedido.CommunicationTransition(cur.Status, s.Role, in.VisibleToStore); moves {
			if o.Status != want {
				slog.Warn("communication status not applied by backend",
					"order", string(id), "from", string(cur.Status), "want", string(want), "got", string(o.Status))
			} else {
				ev.emit(c, pedido.EventStatusChanged, p)
			}
		}
		c.JSON(http.StatusCreated, pedido.Detail(*o, s.Role))
	}
}

// addPhotoHandler godoc
// @Summary  Attach a photo to an order
// @Tags     pedidos
// @Accept   json
// @Produce  json
// @Param    id   path string                 true "order id"
// @Param    body body pedido.AddPhotoRequest true "photo url or data uri"
// @Success  201 {object} pedido.DetailView
// @Failure  400 {object} httpx.HTTPError
// @Security BearerAuth
// @Router   /api/pedidos/{id}/fotos [post]
func addPhotoHandler(be orderBackend, ev activityEmitter) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := mustSession(c)
		var req pedido.AddPhotoRequest
		if !bindJSON(c, &req) {
			return
		}
		if err := pedido.CheckPhoto(req.URL); err != nil {
			httpx.WriteError(c, err)
			return
		}
		ctx := c.Request.Context()
		id := pathID(c)
		cur, err := be.GetOrder(ctx, id)
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		if !pedido.CapabilitiesFor(s.Role, cur.Status).CanAddPhotos {
			httpx.WriteError(c, apperr.ErrInvalidTransition)
			return
		}
		if err := be.AddPhoto(ctx, id, strings.TrimSpace(req.URL)); err != nil {
			httpx.WriteError(c, err)
			return
		}
		o, err := be.GetOrder(ctx, id)
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		ev.emit(c, pedido.EventPhotoAdded, payloadFor(o))
		c.JSON(http.StatusCreated, pedido.Detail(*o, s.Role))
	}
}
