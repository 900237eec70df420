// Package loja covers store management: the store record, its form rules and
// the spreadsheet import.
package loja

import (
	"net/mail"
	"strings"

	"github.com/MikeMC777/vidros-portal/internal/apperr"
	"github.com/MikeMC777/vidros-portal/internal/pedido"
)

type Store struct {
	ID      pedido.ID `json:"id"`
	Name    string    `json:"name"`
	Address string    `json:"address"`
	Phone   string    `json:"phone"`
	Email   string    `json:"email"`
	Active  bool      `json:"active"`
}

// StoreRequest payload of the store form (create and edit).
// swagger:model StoreRequest
type StoreRequest struct {
	Name    string `json:"name"    example:"Loja Porto"`
	Address string `json:"address" example:"Rua de Santa Catarina 100, Porto"`
	Phone   string `json:"phone"   example:"+351 220 000 000"`
	Email   string `json:"email"   example:"porto@vidros.pt"`
	Active  *bool  `json:"active,omitempty"`
}

// Normalize trims the form and checks the name and the optional email.
func (r StoreRequest) Normalize() (StoreRequest, error) {
	out := StoreRequest{
		Name:    strings.TrimSpace(r.Name),
		Address: strings.TrimSpace(r.Address),
		Phone:   strings.TrimSpace(r.Phone),
		Email:   strings.ToLower(strings.TrimSpace(r.Email)),
		Active:  r.Active,
	}
	if out.Name == "" {
		return StoreRequest{}, apperr.Invalid("name", "O nome da loja é obrigatório")
	}
	if out.Email != "" {
		if _, err := mail.ParseAddress(out.Email); err != nil {
			return StoreRequest{}, apperr.Invalid("email", "Email inválido")
		}
	}
	return out, nil
}

// ActiveOnly keeps the stores that can still receive users.
func ActiveOnly(stores []Store) []Store {
	out := make([]Store, 0, len(stores))
	for _, s := range stores {
		if s.Active {
			out = append(out, s)
		}
	}
	return out
}
