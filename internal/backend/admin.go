package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/MikeMC777/vidros-portal/internal/loja"
	"github.com/MikeMC777/vidros-portal/internal/pedido"
	"github.com/MikeMC777/vidros-portal/internal/user"
)

// StatusCount is one row of the per-status order totals.
type StatusCount struct {
	Status pedido.Status `json:"status"`
	Count  int           `json:"count"`
}

// Stats backs the admin dashboard.
type Stats struct {
	TotalStores    int           `json:"total_lojas"`
	TotalUsers     int           `json:"total_users"`
	TotalOrders    int           `json:"total_pedidos"`
	OrdersByStatus []StatusCount `json:"pedidos_por_status"`
}

// Pending is the number of orders still waiting for the department.
func (s Stats) Pending() int {
	for _, c := range s.OrdersByStatus {
		if c.Status == pedido.StatusPending {
			return c.Count
		}
	}
	return 0
}

func (c *Client) GetStats(ctx context.Context) (*Stats, error) {
	var s Stats
	if err := c.do(ctx, http.MethodGet, "/api/admin/stats", nil, nil, &s); err != nil {
		return nil, fmt.Errorf("get stats: %w", err)
	}
	return &s, nil
}

// Stores returns the backend store catalogue as a loja.Repository.
func (c *Client) Stores() loja.Repository { return storeRepo{c} }

type storeRepo struct{ c *Client }

func storePath(id pedido.ID) string { return "/api/admin/lojas/" + url.PathEscape(string(id)) }

func (r storeRepo) List(ctx context.Context) ([]loja.Store, error) {
	var out []loja.Store
	if err := r.c.do(ctx, http.MethodGet, "/api/admin/lojas", nil, nil, &out); err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	return out, nil
}

func (r storeRepo) Create(ctx context.Context, in loja.StoreRequest) (*loja.Store, error) {
	var s loja.Store
	if err := r.c.do(ctx, http.MethodPost, "/api/admin/lojas", nil, in, &s); err != nil {
		return nil, fmt.Errorf("create store: %w", err)
	}
	return &s, nil
}

func (r storeRepo) Update(ctx context.Context, id pedido.ID, in loja.StoreRequest) (*loja.Store, error) {
	var s loja.Store
	if err := r.c.do(ctx, http.MethodPut, storePath(id), nil, in, &s); err != nil {
		return nil, fmt.Errorf("update store %s: %w", id, err)
	}
	return &s, nil
}

func (r storeRepo) Delete(ctx context.Context, id pedido.ID) error {
	if err := r.c.do(ctx, http.MethodDelete, storePath(id), nil, nil, nil); err != nil {
		return fmt.Errorf("delete store %s: %w", id, err)
	}
	return nil
}

// Users returns the backend user directory as a user.Repository.
func (c *Client) Users() user.Repository { return userRepo{c} }

type userRepo struct{ c *Client }

func userPath(id pedido.ID) string { return "/api/admin/users/" + url.PathEscape(string(id)) }

func (r userRepo) List(ctx context.Context) ([]user.User, error) {
	var out []user.User
	if err := r.c.do(ctx, http.MethodGet, "/api/admin/users", nil, nil, &out); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return out, nil
}

func (r userRepo) Create(ctx context.Context, in user.Payload) (*user.User, error) {
	var u user.User
	if err := r.c.do(ctx, http.MethodPost, "/api/admin/users", nil, in, &u); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &u, nil
}

func (r userRepo) Update(ctx context.Context, id pedido.ID, in user.Payload) (*user.User, error) {
	var u user.User
	if err := r.c.do(ctx, http.MethodPut, userPath(id), nil, in, &u); err != nil {
		return nil, fmt.Errorf("update user %s: %w", id, err)
	}
	return &u, nil
}

func (r userRepo) Delete(ctx context.Context, id pedido.ID) error {
	if err := r.c.do(ctx, http.MethodDelete, userPath(id), nil, nil, nil); err != nil {
		return fmt.Errorf("delete user %s: %w", id, err)
	}
	return nil
}

func (r userRepo) ResetPassword(ctx context.Context, id pedido.ID, newPassword string) error {
	body := map[string]string{"new_password": newPassword}
	if err := r.c.do(ctx, http.MethodPost, userPath(id)+"/reset-password", nil, body, nil); err != nil {
		return fmt.Errorf("reset password %s: %w", id, err)
	}
	return nil
}
