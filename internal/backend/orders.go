package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/MikeMC777/vidros-portal/internal/pedido"
)

func orderPath(id pedido.ID, rest ...string) string {
	p := "/api/pedidos/" + url.PathEscape(string(id))
	for _, r := range rest {
		p += "/" + r
	}
	return p
}

// ListOrders returns the orders visible to the caller. An empty status asks
// for all of them.
func (c *Client) ListOrders(ctx context.Context, status string) ([]pedido.Order, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	var out []pedido.Order
	if err := c.do(ctx, http.MethodGet, "/api/pedidos", q, nil, &out); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return out, nil
}

// GetOrder fetches one order with its photos and updates. The backend clears
// the new-activity flag as a side effect.
func (c *Client) GetOrder(ctx context.Context, id pedido.ID) (*pedido.Order, error) {
	var o pedido.Order
	if err := c.do(ctx, http.MethodGet, orderPath(id), nil, nil, &o); err != nil {
		return nil, fmt.Errorf("get order %s: %w", id, err)
	}
	return &o, nil
}

func (c *Client) CreateOrder(ctx context.Context, in pedido.NewOrder) (*pedido.Order, error) {
	var o pedido.Order
	if err := c.do(ctx, http.MethodPost, "/api/pedidos", nil, in, &o); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return &o, nil
}

// UpdateOrder sends a partial body; keys absent from patch are untouched.
func (c *Client) UpdateOrder(ctx context.Context, id pedido.ID, patch pedido.OrderPatch) error {
	if err := c.do(ctx, http.MethodPut, orderPath(id), nil, patch.Body(), nil); err != nil {
		return fmt.Errorf("update order %s: %w", id, err)
	}
	return nil
}

func (c *Client) CancelOrder(ctx context.Context, id pedido.ID) error {
	if err := c.do(ctx, http.MethodDelete, orderPath(id), nil, nil, nil); err != nil {
		return fmt.Errorf("cancel order %s: %w", id, err)
	}
	return nil
}

func (c *Client) AddUpdate(ctx context.Context, id pedido.ID, in pedido.NewUpdate) error {
	if err := c.do(ctx, http.MethodPost, orderPath(id, "updates"), nil, in, nil); err != nil {
		return fmt.Errorf("add update to %s: %w", id, err)
	}
	return nil
}

func (c *Client) ListUpdates(ctx context.Context, id pedido.ID) ([]pedido.Update, error) {
	var out []pedido.Update
	if err := c.do(ctx, http.MethodGet, orderPath(id, "updates"), nil, nil, &out); err != nil {
		return nil, fmt.Errorf("list updates of %s: %w", id, err)
	}
	return out, nil
}

func (c *Client) AddPhoto(ctx context.Context, id pedido.ID, photoURL string) error {
	body := pedido.AddPhotoRequest{URL: photoURL}
	if err := c.do(ctx, http.MethodPost, orderPath(id, "fotos"), nil, body, nil); err != nil {
		return fmt.Errorf("add photo to %s: %w", id, err)
	}
	return nil
}
