package pedido

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const TopicActivity = "pedidos.activity"

const (
	EventOrderCreated   = "OrderCreated"
	EventOrderSaved     = "OrderSaved"
	EventStatusChanged  = "StatusChanged"
	EventUpdateAdded    = "UpdateAdded"
	EventPhotoAdded     = "PhotoAdded"
	EventOrderCancelled = "OrderCancelled"
)

// Envelope wraps every activity event published by the portal.
type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	TraceID       string          `json:"trace_id,omitempty"`
	CorrelationID string          `json:"correlation_id,omitempty"`
	Payload       json.RawMessage `json:"payload"`
}

// ActivityPayload describes who did what to which order. Visibility tells
// consumers whether the store may be notified.
type ActivityPayload struct {
	OrderID        ID         `json:"order_id"`
	StoreID        ID         `json:"store_id,omitempty"`
	ActorID        string     `json:"actor_id"`
	ActorRole      Role       `json:"actor_role"`
	From           Status     `json:"from,omitempty"`
	To             Status     `json:"to,omitempty"`
	UpdateKind     UpdateKind `json:"update_kind,omitempty"`
	VisibleToStore bool       `json:"visible_to_store"`
}

func NewEnvelope(eventType, producer, traceID string, p ActivityPayload) (Envelope, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{
		EventID:       uuid.NewString(),
		EventType:     eventType,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      producer,
		TraceID:       traceID,
		CorrelationID: string(p.OrderID),
		Payload:       raw,
	}, nil
}

// PartitionKey keeps all events of an order on one partition, in order.
func PartitionKey(orderID ID) []byte { return []byte(orderID) }
