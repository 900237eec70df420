package backend

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/MikeMC777/vidros-portal/internal/apperr"
	"github.com/MikeMC777/vidros-portal/internal/pedido"
	"github.com/MikeMC777/vidros-portal/internal/session"
)

// LoginRequest payload of the login form.
// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email"    example:"loja@vidros.pt"`
	Password string `json:"password" example:"segredo1"`
}

type loginResponse struct {
	Token string `json:"token"`
	User  struct {
		ID        pedido.ID   `json:"id"`
		Name      string      `json:"name"`
		Email     string      `json:"email"`
		Role      pedido.Role `json:"role"`
		StoreID   pedido.ID   `json:"loja_id"`
		StoreName string      `json:"loja_name"`
	} `json:"user"`
}

// Login checks the credentials with the backend and returns who the user is
// together with the backend token.
func (c *Client) Login(ctx context.Context, in LoginRequest) (session.Identity, string, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Email == "" || in.Password == "" {
		return session.Identity{}, "", apperr.Invalid("email", "Email e password são obrigatórios")
	}
	var out loginResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, in, &out); err != nil {
		return session.Identity{}, "", fmt.Errorf("login: %w", err)
	}
	if out.Token == "" {
		return session.Identity{}, "", fmt.Errorf("%w: login answer without token", apperr.ErrServer)
	}
	id := session.Identity{
		UserID:    out.User.ID,
		Name:      out.User.Name,
		Email:     out.User.Email,
		Role:      out.User.Role,
		StoreID:   out.User.StoreID,
		StoreName: out.User.StoreName,
	}
	return id, out.Token, nil
}
