// Package user covers admin management of portal users. Accounts live in the
// backend; this package owns the form rules.
package user

import (
	"context"

	"github.com/MikeMC777/vidros-portal/internal/pedido"
)

type User struct {
	ID        pedido.ID   `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      pedido.Role `json:"role"`
	StoreID   *pedido.ID  `json:"loja_id"`
	StoreName string      `json:"loja_name,omitempty"`
	Active    bool        `json:"active"`
}

// Repository is the user directory as exposed by the backend admin API.
type Repository interface {
	List(ctx context.Context) ([]User, error)
	Create(ctx context.Context, in Payload) (*User, error)
	Update(ctx context.Context, id pedido.ID, in Payload) (*User, error)
	Delete(ctx context.Context, id pedido.ID) error
	ResetPassword(ctx context.Context, id pedido.ID, newPassword string) error
}
