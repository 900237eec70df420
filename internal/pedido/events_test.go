package pedido

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/vidros-portal/internal/kafka"
)

func TestNewEnvelope(t *testing.T) {
	p := ActivityPayload{
		OrderID:        "42",
		StoreID:        "7",
		ActorID:        "3",
		ActorRole:      RoleDepartment,
		From:           StatusResponded,
		To:             StatusAwaitingReply,
		UpdateKind:     KindPrice,
		VisibleToStore: true,
	}
	env, err := NewEnvelope(EventStatusChanged, "vidros-portal", "rid-1", p)
	require.NoError(t, err)
	assert.NotEmpty(t, env.EventID)
	assert.Equal(t, EventStatusChanged, env.EventType)
	assert.Equal(t, 1, env.EventVersion)
	assert.Equal(t, "rid-1", env.TraceID)
	assert.Equal(t, "42", env.CorrelationID)
	assert.False(t, env.OccurredAt.IsZero())

	var wire Envelope
	require.NoError(t, json.Unmarshal(kafka.MustMarshal(env), &wire))
	got, err := kafka.UnwrapPayload[ActivityPayload](wire.Payload)
	require.NoError(t, err)
	assert.Equal(t, p, got)

	other, err := NewEnvelope(EventStatusChanged, "vidros-portal", "", p)
	require.NoError(t, err)
	assert.NotEqual(t, env.EventID, other.EventID)
}

func TestPartitionKey(t *testing.T) {
	assert.Equal(t, []byte("42"), PartitionKey("42"))
}
