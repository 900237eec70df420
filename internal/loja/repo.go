package loja

import (
	"context"

	"github.com/MikeMC777/vidros-portal/internal/pedido"
)

// Repository is the store catalogue as exposed by the backend admin API.
type Repository interface {
	List(ctx context.Context) ([]Store, error)
	Create(ctx context.Context, in StoreRequest) (*Store, error)
	Update(ctx context.Context, id pedido.ID, in StoreRequest) (*Store, error)
	Delete(ctx context.Context, id pedido.ID) error
}
