package main

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/vidros-portal/internal/httpx"
	"github.com/MikeMC777/vidros-portal/internal/kafka"
	"github.com/MikeMC777/vidros-portal/internal/pedido"
	"github.com/MikeMC777/vidros-portal/internal/session"
)

// activityEmitter publishes order activity events. Publishing is best effort:
// the request has already succeeded against the backend.
type activityEmitter struct {
	pub      kafka.Publisher
	producer string
}

func (e activityEmitter) emit(c *gin.Context, eventType string, p pedido.ActivityPayload) {
	if e.pub == nil {
		return
	}
	if s, ok := httpx.CurrentSession(c); ok {
		p.ActorID = string(s.UserID)
		p.ActorRole = s.Role
	}
	env, err := pedido.NewEnvelope(eventType, e.producer, httpx.GetRequestID(c), p)
	if err != nil {
		slog.Warn("build activity event", "type", eventType, "order", string(p.OrderID), "error", err)
		return
	}
	e.pub.Publish(pedido.PartitionKey(p.OrderID), kafka.MustMarshal(env))
}

func payloadFor(o *pedido.Order) pedido.ActivityPayload {
	return pedido.ActivityPayload{OrderID: o.ID, StoreID: o.StoreID, From: o.Status, To: o.Status}
}

func mustSession(c *gin.Context) *session.Session {
	s, ok := httpx.CurrentSession(c)
	if !ok {
		panic("route registered without httpx.Auth")
	}
	return s
}
